package appointment

import (
	"context"

	"github.com/manapixels/hair-salon-app-sub002/internal/audit"
	domain "github.com/manapixels/hair-salon-app-sub002/internal/domain/appointment"
	"github.com/manapixels/hair-salon-app-sub002/internal/httperr"
	"github.com/manapixels/hair-salon-app-sub002/internal/models"
)

// AssignStylist fixes the assignee of an any-stylist booking. Until then
// the booking occupies every stylist's grid; afterwards only the assigned
// stylist's.
type AssignStylist struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewAssignStylist(
	repo domain.Repository,
	auditDisp *audit.Dispatcher,
) *AssignStylist {
	return &AssignStylist{
		repo:  repo,
		audit: auditDisp,
	}
}

func (uc *AssignStylist) Execute(
	ctx context.Context,
	salonID uint,
	actorID *uint,
	appointmentID uint,
	stylistID uint,
) (*models.Appointment, error) {

	if _, err := uc.repo.GetStylist(ctx, salonID, stylistID); err != nil {
		return nil, httperr.ErrBusiness("stylist_not_found")
	}

	ap, err := uc.repo.AssignStylistGuarded(ctx, salonID, appointmentID, stylistID)
	if err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		SalonID:  salonID,
		UserID:   actorID,
		Action:   "appointment_stylist_assigned",
		Entity:   "appointment",
		EntityID: &ap.ID,
		Metadata: map[string]any{"stylist_id": stylistID},
	})

	return ap, nil
}
