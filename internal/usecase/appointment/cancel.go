package appointment

import (
	"context"

	"github.com/manapixels/hair-salon-app-sub002/internal/audit"
	domain "github.com/manapixels/hair-salon-app-sub002/internal/domain/appointment"
	"github.com/manapixels/hair-salon-app-sub002/internal/httperr"
	"github.com/manapixels/hair-salon-app-sub002/internal/models"
	"github.com/manapixels/hair-salon-app-sub002/internal/timezone"
)

type CancelAppointment struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewCancelAppointment(
	repo domain.Repository,
	auditDisp *audit.Dispatcher,
) *CancelAppointment {
	return &CancelAppointment{
		repo:  repo,
		audit: auditDisp,
	}
}

func (uc *CancelAppointment) Execute(
	ctx context.Context,
	salonID uint,
	actorID *uint,
	appointmentID uint,
) (*models.Appointment, error) {

	salon, err := uc.repo.GetSalonByID(ctx, salonID)
	if err != nil {
		return nil, err
	}

	ap, err := uc.repo.GetAppointmentForSalon(ctx, appointmentID, salonID)
	if err != nil {
		return nil, httperr.ErrBusiness("appointment_not_found")
	}

	return uc.cancel(ctx, salon, ap, actorID)
}

// ExecuteByReference is the public cancellation path: the reference code
// from the booking confirmation stands in for authentication.
func (uc *CancelAppointment) ExecuteByReference(
	ctx context.Context,
	salonID uint,
	reference string,
) (*models.Appointment, error) {

	salon, err := uc.repo.GetSalonByID(ctx, salonID)
	if err != nil {
		return nil, err
	}

	ap, err := uc.repo.GetAppointmentByReference(ctx, salonID, reference)
	if err != nil {
		return nil, httperr.ErrBusiness("appointment_not_found")
	}

	return uc.cancel(ctx, salon, ap, nil)
}

func (uc *CancelAppointment) cancel(
	ctx context.Context,
	salon *models.Salon,
	ap *models.Appointment,
	actorID *uint,
) (*models.Appointment, error) {

	now := timezone.NowIn(salon.Timezone)
	if err := domain.Cancel(ap, now); err != nil {
		return nil, err
	}

	if err := uc.repo.UpdateAppointment(ctx, ap); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		SalonID:  salon.ID,
		UserID:   actorID,
		Action:   "appointment_cancelled",
		Entity:   "appointment",
		EntityID: &ap.ID,
	})

	return ap, nil
}
