package appointment

import (
	"context"
	"time"

	"github.com/manapixels/hair-salon-app-sub002/internal/cache"
	"github.com/manapixels/hair-salon-app-sub002/internal/clock"
	domain "github.com/manapixels/hair-salon-app-sub002/internal/domain/appointment"
	"github.com/manapixels/hair-salon-app-sub002/internal/domain/availability"
	"github.com/manapixels/hair-salon-app-sub002/internal/dto"
	"github.com/manapixels/hair-salon-app-sub002/internal/httperr"
	"github.com/manapixels/hair-salon-app-sub002/internal/metrics"
	"github.com/manapixels/hair-salon-app-sub002/internal/timezone"
)

// ======================================================
// INPUT
// ======================================================

type AvailabilityInput struct {
	SalonID    uint
	StylistID  *uint
	ServiceIDs []uint

	Date string // YYYY-MM-DD, interpreted in the salon's timezone
}

// ======================================================
// USE CASE
// ======================================================

type GetAvailability struct {
	repo     domain.Repository
	settings *cache.Settings
}

func NewGetAvailability(
	repo domain.Repository,
	settings *cache.Settings,
) *GetAvailability {
	return &GetAvailability{
		repo:     repo,
		settings: settings,
	}
}

func (uc *GetAvailability) Execute(
	ctx context.Context,
	in AvailabilityInput,
) (*dto.AvailabilityDTO, error) {

	metrics.IncAvailabilityRequest()

	salon, err := uc.repo.GetSalonByID(ctx, in.SalonID)
	if err != nil {
		return nil, err
	}

	dayStart, err := time.ParseInLocation(
		"2006-01-02",
		in.Date,
		timezone.Location(salon.Timezone),
	)
	if err != nil {
		return nil, httperr.ErrBusiness("invalid_date_or_time")
	}

	services, err := uc.repo.ListActiveServices(ctx, in.SalonID, in.ServiceIDs)
	if err != nil {
		return nil, err
	}

	total, _, _, err := domain.AggregateServiceSpec(services)
	if err != nil {
		return nil, err
	}

	if in.StylistID != nil {
		if _, err := uc.repo.GetStylist(ctx, in.SalonID, *in.StylistID); err != nil {
			return nil, httperr.ErrBusiness("stylist_not_found")
		}
	}

	cfg, ok := uc.settings.Get(ctx, in.SalonID)
	if !ok {
		cfg, err = uc.repo.LoadScheduleConfig(ctx, in.SalonID)
		if err != nil {
			return nil, err
		}
		uc.settings.Put(ctx, in.SalonID, cfg)
	}

	dateKey := clock.DateKey(dayStart)

	blocked, err := uc.repo.LoadBlockedSlots(ctx, in.SalonID, dateKey)
	if err != nil {
		return nil, err
	}

	bookings, err := uc.repo.ListDayBookings(
		ctx,
		in.SalonID,
		dayStart,
		dayStart.Add(24*time.Hour),
		in.StylistID,
	)
	if err != nil {
		return nil, err
	}

	slots := availability.Slots(cfg, blocked, bookings, availability.Request{
		Date:      dayStart,
		StylistID: in.StylistID,
		Duration:  clock.Minutes(total),
		Step:      clock.Minutes(salon.SlotGranularityMin),
	})

	out := &dto.AvailabilityDTO{
		Date:      dateKey,
		StylistID: in.StylistID,
		Slots:     make([]dto.TimeSlot, 0, len(slots)),
		Available: make([]string, 0, len(slots)),
	}

	for _, s := range slots {
		out.Slots = append(out.Slots, dto.TimeSlot{
			Time:      s.Time.String(),
			Available: s.Available,
		})
		if s.Available {
			out.Available = append(out.Available, s.Time.String())
		}
	}

	return out, nil
}
