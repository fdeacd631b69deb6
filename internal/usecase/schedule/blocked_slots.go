package schedule

import (
	"context"

	"github.com/manapixels/hair-salon-app-sub002/internal/audit"
	"github.com/manapixels/hair-salon-app-sub002/internal/clock"
	domain "github.com/manapixels/hair-salon-app-sub002/internal/domain/appointment"
	"github.com/manapixels/hair-salon-app-sub002/internal/httperr"
	"github.com/manapixels/hair-salon-app-sub002/internal/metrics"
)

// ======================================================
// BLOCK / UNBLOCK SLOT
// ======================================================

// ManageBlockedSlots handles the admin block/unblock operations. Both are
// idempotent: blocking a blocked slot or unblocking a free one succeeds
// without effect. Blocking is allowed even when the slot already holds a
// booking; the block only stops new ones.
type ManageBlockedSlots struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewManageBlockedSlots(
	repo domain.Repository,
	auditDisp *audit.Dispatcher,
) *ManageBlockedSlots {
	return &ManageBlockedSlots{
		repo:  repo,
		audit: auditDisp,
	}
}

func (uc *ManageBlockedSlots) Block(
	ctx context.Context,
	salonID uint,
	actorID *uint,
	date string,
	hm string,
) error {

	if err := validateSlotKey(date, hm); err != nil {
		return err
	}

	if err := uc.repo.BlockSlot(ctx, salonID, date, hm); err != nil {
		return err
	}

	metrics.IncSlotBlockOp("block")

	uc.audit.Dispatch(audit.Event{
		SalonID:  salonID,
		UserID:   actorID,
		Action:   "slot_blocked",
		Entity:   "blocked_slot",
		Metadata: map[string]any{"date": date, "time": hm},
	})

	return nil
}

func (uc *ManageBlockedSlots) Unblock(
	ctx context.Context,
	salonID uint,
	actorID *uint,
	date string,
	hm string,
) error {

	if err := validateSlotKey(date, hm); err != nil {
		return err
	}

	if err := uc.repo.UnblockSlot(ctx, salonID, date, hm); err != nil {
		return err
	}

	metrics.IncSlotBlockOp("unblock")

	uc.audit.Dispatch(audit.Event{
		SalonID:  salonID,
		UserID:   actorID,
		Action:   "slot_unblocked",
		Entity:   "blocked_slot",
		Metadata: map[string]any{"date": date, "time": hm},
	})

	return nil
}

func validateSlotKey(date, hm string) error {
	if !clock.ValidDateKey(date) {
		return httperr.ErrBusiness("invalid_date_or_time")
	}
	if _, err := clock.Parse(hm); err != nil {
		return httperr.ErrBusiness("invalid_date_or_time")
	}
	return nil
}
