package schedule

import (
	"context"

	"github.com/manapixels/hair-salon-app-sub002/internal/audit"
	"github.com/manapixels/hair-salon-app-sub002/internal/cache"
	"github.com/manapixels/hair-salon-app-sub002/internal/clock"
	domain "github.com/manapixels/hair-salon-app-sub002/internal/domain/appointment"
	"github.com/manapixels/hair-salon-app-sub002/internal/httperr"
)

// ======================================================
// CLOSED DATES
// ======================================================

// ManageClosedDates handles salon-wide full-day closures (holidays).
// Closed dates live in the schedule snapshot, so every write invalidates
// the settings cache. Existing appointments on a newly closed date are
// left untouched; staff resolve them individually.
type ManageClosedDates struct {
	repo     domain.Repository
	settings *cache.Settings
	audit    *audit.Dispatcher
}

func NewManageClosedDates(
	repo domain.Repository,
	settings *cache.Settings,
	auditDisp *audit.Dispatcher,
) *ManageClosedDates {
	return &ManageClosedDates{
		repo:     repo,
		settings: settings,
		audit:    auditDisp,
	}
}

func (uc *ManageClosedDates) Add(
	ctx context.Context,
	salonID uint,
	actorID *uint,
	date string,
	reason string,
) error {

	if !clock.ValidDateKey(date) {
		return httperr.ErrBusiness("invalid_date_or_time")
	}

	if err := uc.repo.AddClosedDate(ctx, salonID, date, reason); err != nil {
		return err
	}

	uc.settings.Invalidate(ctx, salonID)

	uc.audit.Dispatch(audit.Event{
		SalonID:  salonID,
		UserID:   actorID,
		Action:   "closed_date_added",
		Entity:   "closed_date",
		Metadata: map[string]any{"date": date, "reason": reason},
	})

	return nil
}

func (uc *ManageClosedDates) Remove(
	ctx context.Context,
	salonID uint,
	actorID *uint,
	date string,
) error {

	if !clock.ValidDateKey(date) {
		return httperr.ErrBusiness("invalid_date_or_time")
	}

	if err := uc.repo.RemoveClosedDate(ctx, salonID, date); err != nil {
		return err
	}

	uc.settings.Invalidate(ctx, salonID)

	uc.audit.Dispatch(audit.Event{
		SalonID:  salonID,
		UserID:   actorID,
		Action:   "closed_date_removed",
		Entity:   "closed_date",
		Metadata: map[string]any{"date": date},
	})

	return nil
}
