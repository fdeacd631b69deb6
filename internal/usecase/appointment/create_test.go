package appointment

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/manapixels/hair-salon-app-sub002/internal/cache"
	"github.com/manapixels/hair-salon-app-sub002/internal/clock"
	"github.com/manapixels/hair-salon-app-sub002/internal/domain/availability"
	"github.com/manapixels/hair-salon-app-sub002/internal/httperr"
	"github.com/manapixels/hair-salon-app-sub002/internal/models"
)

// ======================================================
// FAKE REPOSITORY
// ======================================================

type fakeRepo struct {
	salon    *models.Salon
	services []models.Service
	stylists map[uint]*models.Stylist

	cfg      availability.Config
	blocked  *availability.BlockedSlots
	bookings []availability.Booking

	createErr error
	created   *models.Appointment
}

func (f *fakeRepo) GetSalonByID(ctx context.Context, id uint) (*models.Salon, error) {
	return f.salon, nil
}

func (f *fakeRepo) GetSalonBySlug(ctx context.Context, slug string) (*models.Salon, error) {
	return f.salon, nil
}

func (f *fakeRepo) ListActiveServices(ctx context.Context, salonID uint, ids []uint) ([]models.Service, error) {
	out := make([]models.Service, 0, len(ids))
	for _, id := range ids {
		found := false
		for _, s := range f.services {
			if s.ID == id {
				out = append(out, s)
				found = true
				break
			}
		}
		if !found {
			return nil, httperr.ErrBusiness("service_not_found")
		}
	}
	return out, nil
}

func (f *fakeRepo) GetStylist(ctx context.Context, salonID, stylistID uint) (*models.Stylist, error) {
	if s, ok := f.stylists[stylistID]; ok {
		return s, nil
	}
	return nil, httperr.ErrBusiness("stylist_not_found")
}

func (f *fakeRepo) GetOrCreateClient(ctx context.Context, salonID uint, name, phone, email string) (*models.Client, error) {
	return &models.Client{ID: 1, SalonID: salonID, Name: name, Phone: phone, Email: email}, nil
}

func (f *fakeRepo) LoadScheduleConfig(ctx context.Context, salonID uint) (availability.Config, error) {
	return f.cfg, nil
}

func (f *fakeRepo) LoadBlockedSlots(ctx context.Context, salonID uint, date string) (*availability.BlockedSlots, error) {
	if f.blocked == nil {
		return availability.NewBlockedSlots(), nil
	}
	return f.blocked, nil
}

func (f *fakeRepo) ListDayBookings(ctx context.Context, salonID uint, dayStart, dayEnd time.Time, stylistID *uint) ([]availability.Booking, error) {
	return f.bookings, nil
}

func (f *fakeRepo) CreateAppointmentGuarded(ctx context.Context, ap *models.Appointment) error {
	if f.createErr != nil {
		return f.createErr
	}
	ap.ID = 42
	f.created = ap
	return nil
}

func (f *fakeRepo) AssignStylistGuarded(ctx context.Context, salonID, appointmentID, stylistID uint) (*models.Appointment, error) {
	return nil, nil
}

func (f *fakeRepo) GetAppointmentForSalon(ctx context.Context, appointmentID, salonID uint) (*models.Appointment, error) {
	return nil, httperr.ErrBusiness("appointment_not_found")
}

func (f *fakeRepo) GetAppointmentByReference(ctx context.Context, salonID uint, reference string) (*models.Appointment, error) {
	return nil, httperr.ErrBusiness("appointment_not_found")
}

func (f *fakeRepo) UpdateAppointment(ctx context.Context, ap *models.Appointment) error {
	return nil
}

func (f *fakeRepo) ListAppointmentsForPeriod(ctx context.Context, salonID uint, stylistID *uint, start, end time.Time) ([]models.Appointment, error) {
	return nil, nil
}

func (f *fakeRepo) BlockSlot(ctx context.Context, salonID uint, date, hm string) error { return nil }

func (f *fakeRepo) UnblockSlot(ctx context.Context, salonID uint, date, hm string) error { return nil }

func (f *fakeRepo) AddClosedDate(ctx context.Context, salonID uint, date, reason string) error {
	return nil
}

func (f *fakeRepo) RemoveClosedDate(ctx context.Context, salonID uint, date string) error {
	return nil
}

// ======================================================
// FIXTURES
// ======================================================

func fullWeek(start, end string) availability.Week {
	var w availability.Week
	for i := range w {
		w[i] = availability.DayHours{
			Open:  true,
			Start: clock.MustParse(start),
			End:   clock.MustParse(end),
		}
	}
	return w
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{
		salon: &models.Salon{
			ID:                 1,
			Timezone:           "Asia/Singapore",
			SlotGranularityMin: 30,
			MinAdvanceMinutes:  60,
		},
		services: []models.Service{
			{ID: 10, SalonID: 1, Name: "Cut", DurationMin: 60, Active: true},
			{ID: 11, SalonID: 1, Name: "Colour", DurationMin: 90,
				ProcessingStartMin: 30, ProcessingDurationMin: 30, Active: true},
		},
		stylists: map[uint]*models.Stylist{
			7: {ID: 7, SalonID: 1, Name: "Mei", Active: true},
		},
		cfg: availability.Config{Week: fullWeek("09:00", "18:00")},
	}
}

func newCreateUC(repo *fakeRepo) *CreateAppointment {
	return NewCreateAppointment(repo, cache.NewSettings(nil, 0), nil)
}

// farDate is comfortably past any minimum-advance window.
const farDate = "2030-03-04"

func baseInput() CreateAppointmentInput {
	return CreateAppointmentInput{
		SalonID:     1,
		ClientName:  "Alice Tan",
		ClientPhone: "+6591234567",
		ServiceIDs:  []uint{10},
		Date:        farDate,
		Time:        "10:00",
		Source:      "public",
	}
}

// ======================================================
// TESTS
// ======================================================

func TestCreateAppointmentHappyPath(t *testing.T) {
	repo := newFakeRepo()
	uc := newCreateUC(repo)

	ap, err := uc.Execute(context.Background(), baseInput())
	require.NoError(t, err)
	require.NotNil(t, repo.created)

	assert.Equal(t, uint(42), ap.ID)
	assert.Equal(t, "scheduled", ap.Status)
	assert.NotEmpty(t, ap.Reference)
	assert.Equal(t, 60, ap.TotalDurationMin)
	assert.Nil(t, ap.StylistID)
	assert.Equal(t, 10, ap.StartTime.Hour())
	assert.Equal(t, ap.StartTime.Add(60*time.Minute), ap.EndTime)
}

func TestCreateAppointmentDenormalizesProcessingWindow(t *testing.T) {
	repo := newFakeRepo()
	uc := newCreateUC(repo)

	in := baseInput()
	in.ServiceIDs = []uint{10, 11} // cut then colour

	ap, err := uc.Execute(context.Background(), in)
	require.NoError(t, err)

	assert.Equal(t, 150, ap.TotalDurationMin)
	assert.Equal(t, 90, ap.ProcessingStartMin)
	assert.Equal(t, 30, ap.ProcessingDurationMin)
}

func TestCreateAppointmentInvalidDateTime(t *testing.T) {
	uc := newCreateUC(newFakeRepo())

	in := baseInput()
	in.Time = "10:xx"

	_, err := uc.Execute(context.Background(), in)
	assert.True(t, httperr.IsBusiness(err, "invalid_date_or_time"))
}

func TestCreateAppointmentTooSoon(t *testing.T) {
	uc := newCreateUC(newFakeRepo())

	in := baseInput()
	in.Date = "2020-01-06"

	_, err := uc.Execute(context.Background(), in)
	assert.True(t, httperr.IsBusiness(err, "too_soon"))
}

func TestCreateAppointmentUnknownService(t *testing.T) {
	uc := newCreateUC(newFakeRepo())

	in := baseInput()
	in.ServiceIDs = []uint{999}

	_, err := uc.Execute(context.Background(), in)
	assert.True(t, httperr.IsBusiness(err, "service_not_found"))
}

func TestCreateAppointmentUnknownStylist(t *testing.T) {
	uc := newCreateUC(newFakeRepo())

	in := baseInput()
	sid := uint(99)
	in.StylistID = &sid

	_, err := uc.Execute(context.Background(), in)
	assert.True(t, httperr.IsBusiness(err, "stylist_not_found"))
}

func TestCreateAppointmentClosedDate(t *testing.T) {
	repo := newFakeRepo()
	repo.cfg.ClosedDates = map[string]struct{}{farDate: {}}
	uc := newCreateUC(repo)

	_, err := uc.Execute(context.Background(), baseInput())
	assert.True(t, httperr.IsBusiness(err, "salon_closed"))
}

func TestCreateAppointmentOutsideOpenHours(t *testing.T) {
	uc := newCreateUC(newFakeRepo())

	in := baseInput()
	in.Time = "17:30" // 60 minutes runs past 18:00

	_, err := uc.Execute(context.Background(), in)
	assert.True(t, httperr.IsBusiness(err, "outside_open_hours"))
}

func TestCreateAppointmentOffGridStart(t *testing.T) {
	uc := newCreateUC(newFakeRepo())

	in := baseInput()
	in.Time = "10:15"

	_, err := uc.Execute(context.Background(), in)
	assert.True(t, httperr.IsBusiness(err, "invalid_slot"))
}

func TestCreateAppointmentBlockedSlot(t *testing.T) {
	repo := newFakeRepo()
	repo.blocked = availability.NewBlockedSlots()
	repo.blocked.Block(farDate, clock.MustParse("10:00"))
	uc := newCreateUC(repo)

	_, err := uc.Execute(context.Background(), baseInput())
	assert.True(t, httperr.IsBusiness(err, "slot_blocked"))
}

func TestCreateAppointmentGuardedConflict(t *testing.T) {
	repo := newFakeRepo()
	repo.createErr = httperr.ErrBusiness("slot_conflict")
	uc := newCreateUC(repo)

	_, err := uc.Execute(context.Background(), baseInput())
	assert.True(t, httperr.IsBusiness(err, "slot_conflict"))
	assert.Nil(t, repo.created)
}

// ======================================================
// AVAILABILITY USE CASE
// ======================================================

func TestGetAvailabilityWorkedDay(t *testing.T) {
	repo := newFakeRepo()
	repo.bookings = []availability.Booking{{
		Start:           clock.MustParse("10:00"),
		Duration:        90,
		ProcessingAfter: 30,
		ProcessingFor:   30,
	}}

	uc := NewGetAvailability(repo, cache.NewSettings(nil, 0))

	out, err := uc.Execute(context.Background(), AvailabilityInput{
		SalonID:    1,
		ServiceIDs: []uint{10}, // 60 minutes
		Date:       farDate,
	})
	require.NoError(t, err)

	assert.Equal(t, farDate, out.Date)
	assert.NotContains(t, out.Available, "10:00")
	assert.NotContains(t, out.Available, "10:30")
	assert.Contains(t, out.Available, "09:00")
	assert.Contains(t, out.Available, "11:30")
	assert.NotContains(t, out.Available, "17:30")

	// The full grid is reported alongside the bookable subset.
	assert.Len(t, out.Slots, 18)
}

func TestGetAvailabilityClosedDay(t *testing.T) {
	repo := newFakeRepo()
	repo.cfg.ClosedDates = map[string]struct{}{farDate: {}}

	uc := NewGetAvailability(repo, cache.NewSettings(nil, 0))

	out, err := uc.Execute(context.Background(), AvailabilityInput{
		SalonID:    1,
		ServiceIDs: []uint{10},
		Date:       farDate,
	})
	require.NoError(t, err)
	assert.Empty(t, out.Slots)
	assert.Empty(t, out.Available)
}

func TestGetAvailabilityBadDate(t *testing.T) {
	uc := NewGetAvailability(newFakeRepo(), cache.NewSettings(nil, 0))

	_, err := uc.Execute(context.Background(), AvailabilityInput{
		SalonID:    1,
		ServiceIDs: []uint{10},
		Date:       "04-03-2030",
	})
	assert.True(t, httperr.IsBusiness(err, "invalid_date_or_time"))
}
