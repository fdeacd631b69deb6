package appointment

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/manapixels/hair-salon-app-sub002/internal/audit"
	"github.com/manapixels/hair-salon-app-sub002/internal/cache"
	"github.com/manapixels/hair-salon-app-sub002/internal/clock"
	domain "github.com/manapixels/hair-salon-app-sub002/internal/domain/appointment"
	"github.com/manapixels/hair-salon-app-sub002/internal/httperr"
	"github.com/manapixels/hair-salon-app-sub002/internal/metrics"
	"github.com/manapixels/hair-salon-app-sub002/internal/models"
	"github.com/manapixels/hair-salon-app-sub002/internal/timezone"
)

// ======================================================
// INPUT
// ======================================================

type CreateAppointmentInput struct {
	SalonID   uint
	StylistID *uint // nil = any available stylist

	ClientName  string
	ClientPhone string
	ClientEmail string

	ServiceIDs []uint

	Date  string // YYYY-MM-DD
	Time  string // HH:MM
	Notes string

	// Source tags the booking channel for audit/metrics ("public", "admin").
	Source string

	// ActorID is the staff member acting, nil for public bookings.
	ActorID *uint
}

// ======================================================
// USE CASE
// ======================================================

type CreateAppointment struct {
	repo     domain.Repository
	settings *cache.Settings
	audit    *audit.Dispatcher
}

func NewCreateAppointment(
	repo domain.Repository,
	settings *cache.Settings,
	auditDisp *audit.Dispatcher,
) *CreateAppointment {
	return &CreateAppointment{
		repo:     repo,
		settings: settings,
		audit:    auditDisp,
	}
}

func (uc *CreateAppointment) Execute(
	ctx context.Context,
	in CreateAppointmentInput,
) (*models.Appointment, error) {

	salon, err := uc.repo.GetSalonByID(ctx, in.SalonID)
	if err != nil {
		return nil, err
	}

	loc := timezone.Location(salon.Timezone)

	start, err := time.ParseInLocation("2006-01-02 15:04", in.Date+" "+in.Time, loc)
	if err != nil {
		return nil, httperr.ErrBusiness("invalid_date_or_time")
	}

	minAdvance := salon.MinAdvanceMinutes
	if minAdvance < 0 {
		minAdvance = 0
	}
	now := timezone.NowIn(salon.Timezone)
	if start.Before(now.Add(time.Duration(minAdvance) * time.Minute)) {
		return nil, httperr.ErrBusiness("too_soon")
	}

	services, err := uc.repo.ListActiveServices(ctx, in.SalonID, in.ServiceIDs)
	if err != nil {
		return nil, err
	}

	total, procStart, procDur, err := domain.AggregateServiceSpec(services)
	if err != nil {
		return nil, err
	}

	if in.StylistID != nil {
		if _, err := uc.repo.GetStylist(ctx, in.SalonID, *in.StylistID); err != nil {
			return nil, httperr.ErrBusiness("stylist_not_found")
		}
	}

	// --------------------------------------------------
	// Open hours + blocked slots, on the current snapshot
	// --------------------------------------------------

	cfg, ok := uc.settings.Get(ctx, in.SalonID)
	if !ok {
		cfg, err = uc.repo.LoadScheduleConfig(ctx, in.SalonID)
		if err != nil {
			return nil, err
		}
		uc.settings.Put(ctx, in.SalonID, cfg)
	}

	day, open := cfg.ResolveOpenHours(start, in.StylistID)
	if !open {
		return nil, httperr.ErrBusiness("salon_closed")
	}

	startMin := clock.OfTime(start)
	endMin := startMin + clock.Minutes(total)

	step := clock.Minutes(salon.SlotGranularityMin)
	if step <= 0 {
		step = clock.DefaultStep
	}

	if startMin < day.Start || endMin > day.End {
		return nil, httperr.ErrBusiness("outside_open_hours")
	}
	if (startMin-day.Start)%step != 0 {
		return nil, httperr.ErrBusiness("invalid_slot")
	}

	blocked, err := uc.repo.LoadBlockedSlots(ctx, in.SalonID, in.Date)
	if err != nil {
		return nil, err
	}
	if blocked.Blocked(in.Date, startMin) {
		return nil, httperr.ErrBusiness("slot_blocked")
	}

	client, err := uc.repo.GetOrCreateClient(
		ctx,
		in.SalonID,
		in.ClientName,
		in.ClientPhone,
		in.ClientEmail,
	)
	if err != nil {
		return nil, err
	}

	// --------------------------------------------------
	// Authoritative write: conflict re-check + insert, atomically
	// --------------------------------------------------

	ap := &models.Appointment{
		SalonID:   in.SalonID,
		StylistID: in.StylistID,
		ClientID:  client.ID,
		Services:  services,
		Reference: uuid.NewString(),

		StartTime: start,
		EndTime:   start.Add(time.Duration(total) * time.Minute),

		TotalDurationMin:      total,
		ProcessingStartMin:    procStart,
		ProcessingDurationMin: procDur,

		Status: string(domain.InitialStatus()),
		Notes:  in.Notes,
	}

	if err := uc.repo.CreateAppointmentGuarded(ctx, ap); err != nil {
		if httperr.IsBusiness(err, "slot_conflict") || httperr.IsExclusionConflict(err) {
			metrics.IncBookingConflict()
			log.Info().
				Uint("salon_id", in.SalonID).
				Str("date", in.Date).
				Str("time", in.Time).
				Msg("booking rejected by final conflict check")
			return nil, httperr.ErrBusiness("slot_conflict")
		}
		return nil, err
	}

	metrics.IncAppointmentCreated(in.Source)

	uc.audit.Dispatch(audit.Event{
		SalonID:  in.SalonID,
		UserID:   in.ActorID,
		Action:   "appointment_created",
		Entity:   "appointment",
		EntityID: &ap.ID,
		Metadata: map[string]any{"source": in.Source},
	})

	return ap, nil
}
