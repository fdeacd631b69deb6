package repository

import (
	"context"
	"fmt"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/manapixels/hair-salon-app-sub002/internal/clock"
	domain "github.com/manapixels/hair-salon-app-sub002/internal/domain/appointment"
	"github.com/manapixels/hair-salon-app-sub002/internal/domain/availability"
	"github.com/manapixels/hair-salon-app-sub002/internal/httperr"
	"github.com/manapixels/hair-salon-app-sub002/internal/models"
)

type SalonGormRepository struct {
	db *gorm.DB
}

func NewSalonGormRepository(db *gorm.DB) *SalonGormRepository {
	return &SalonGormRepository{db: db}
}

// --------------------------------------------------
// Salon
// --------------------------------------------------

func (r *SalonGormRepository) GetSalonByID(
	ctx context.Context,
	id uint,
) (*models.Salon, error) {

	var salon models.Salon
	if err := r.db.WithContext(ctx).First(&salon, id).Error; err != nil {
		return nil, err
	}
	return &salon, nil
}

func (r *SalonGormRepository) GetSalonBySlug(
	ctx context.Context,
	slug string,
) (*models.Salon, error) {

	var salon models.Salon
	if err := r.db.WithContext(ctx).
		Where("slug = ?", slug).
		First(&salon).Error; err != nil {
		return nil, err
	}
	return &salon, nil
}

// --------------------------------------------------
// Services
// --------------------------------------------------

func (r *SalonGormRepository) ListActiveServices(
	ctx context.Context,
	salonID uint,
	serviceIDs []uint,
) ([]models.Service, error) {

	var services []models.Service
	if err := r.db.WithContext(ctx).
		Where("salon_id = ? AND active = true AND id IN ?", salonID, serviceIDs).
		Order("id ASC").
		Find(&services).Error; err != nil {
		return nil, err
	}

	if len(services) != len(serviceIDs) {
		return nil, httperr.ErrBusiness("service_not_found")
	}
	return services, nil
}

// --------------------------------------------------
// Stylist
// --------------------------------------------------

func (r *SalonGormRepository) GetStylist(
	ctx context.Context,
	salonID uint,
	stylistID uint,
) (*models.Stylist, error) {

	var stylist models.Stylist
	if err := r.db.WithContext(ctx).
		Where("id = ? AND salon_id = ? AND active = true", stylistID, salonID).
		First(&stylist).Error; err != nil {
		return nil, err
	}
	return &stylist, nil
}

// --------------------------------------------------
// Client
// --------------------------------------------------

func (r *SalonGormRepository) GetOrCreateClient(
	ctx context.Context,
	salonID uint,
	name string,
	phone string,
	email string,
) (*models.Client, error) {

	var client models.Client
	err := r.db.WithContext(ctx).
		Where("salon_id = ? AND phone = ?", salonID, phone).
		First(&client).Error

	if err == nil {
		return &client, nil
	}

	client = models.Client{
		SalonID: salonID,
		Name:    name,
		Phone:   phone,
		Email:   email,
	}

	if err := r.db.WithContext(ctx).Create(&client).Error; err != nil {
		return nil, err
	}

	return &client, nil
}

// --------------------------------------------------
// Schedule snapshot
// --------------------------------------------------

// LoadScheduleConfig assembles the engine's read-only snapshot. Malformed
// "HH:MM" values are rejected here, at load time, so the resolver only ever
// sees well-formed hours.
func (r *SalonGormRepository) LoadScheduleConfig(
	ctx context.Context,
	salonID uint,
) (availability.Config, error) {

	cfg := availability.Config{
		Overrides:   make(map[string]availability.DayHours),
		ClosedDates: make(map[string]struct{}),
		Stylists:    make(map[uint]availability.StylistHours),
	}

	var salon models.Salon
	if err := r.db.WithContext(ctx).First(&salon, salonID).Error; err != nil {
		return cfg, err
	}
	if salon.PerStylistMode {
		cfg.Mode = availability.PerStylist
	}

	var hours []models.SalonHours
	if err := r.db.WithContext(ctx).
		Where("salon_id = ?", salonID).
		Find(&hours).Error; err != nil {
		return cfg, err
	}
	for _, h := range hours {
		day, err := parseDayHours(h.IsOpen, h.OpeningTime, h.ClosingTime)
		if err != nil {
			return cfg, fmt.Errorf("salon hours weekday %d: %w", h.Weekday, err)
		}
		if h.Weekday >= 0 && h.Weekday < 7 {
			cfg.Week[h.Weekday] = day
		}
	}

	var overrides []models.ScheduleOverride
	if err := r.db.WithContext(ctx).
		Where("salon_id = ?", salonID).
		Find(&overrides).Error; err != nil {
		return cfg, err
	}
	for _, ov := range overrides {
		day, err := parseDayHours(ov.IsOpen, ov.OpeningTime, ov.ClosingTime)
		if err != nil {
			return cfg, fmt.Errorf("schedule override %s: %w", ov.Date, err)
		}
		cfg.Overrides[ov.Date] = day
	}

	var closed []models.ClosedDate
	if err := r.db.WithContext(ctx).
		Where("salon_id = ?", salonID).
		Find(&closed).Error; err != nil {
		return cfg, err
	}
	for _, cd := range closed {
		cfg.ClosedDates[cd.Date] = struct{}{}
	}

	var stylists []models.Stylist
	if err := r.db.WithContext(ctx).
		Where("salon_id = ? AND active = true", salonID).
		Find(&stylists).Error; err != nil {
		return cfg, err
	}

	for _, st := range stylists {
		sh := availability.StylistHours{
			HasOwnHours:  st.UseOwnHours,
			BlockedDates: make(map[string]struct{}),
		}

		var blockedDates []models.StylistBlockedDate
		if err := r.db.WithContext(ctx).
			Where("stylist_id = ?", st.ID).
			Find(&blockedDates).Error; err != nil {
			return cfg, err
		}
		for _, bd := range blockedDates {
			sh.BlockedDates[bd.Date] = struct{}{}
		}

		if st.UseOwnHours {
			var stHours []models.StylistHours
			if err := r.db.WithContext(ctx).
				Where("stylist_id = ?", st.ID).
				Find(&stHours).Error; err != nil {
				return cfg, err
			}
			for _, h := range stHours {
				day, err := parseDayHours(h.IsOpen, h.OpeningTime, h.ClosingTime)
				if err != nil {
					return cfg, fmt.Errorf("stylist %d hours weekday %d: %w", st.ID, h.Weekday, err)
				}
				if h.Weekday >= 0 && h.Weekday < 7 {
					sh.Week[h.Weekday] = day
				}
			}
		}

		cfg.Stylists[st.ID] = sh
	}

	return cfg, nil
}

func parseDayHours(isOpen bool, opening, closing string) (availability.DayHours, error) {
	if !isOpen {
		return availability.DayHours{}, nil
	}

	start, err := clock.Parse(opening)
	if err != nil {
		return availability.DayHours{}, err
	}
	end, err := clock.Parse(closing)
	if err != nil {
		return availability.DayHours{}, err
	}
	if start >= end {
		return availability.DayHours{}, fmt.Errorf("opening %s not before closing %s", opening, closing)
	}

	return availability.DayHours{Open: true, Start: start, End: end}, nil
}

func (r *SalonGormRepository) LoadBlockedSlots(
	ctx context.Context,
	salonID uint,
	date string,
) (*availability.BlockedSlots, error) {

	var rows []models.BlockedSlot
	if err := r.db.WithContext(ctx).
		Where("salon_id = ? AND date = ?", salonID, date).
		Find(&rows).Error; err != nil {
		return nil, err
	}

	blocked := availability.NewBlockedSlots()
	for _, row := range rows {
		t, err := clock.Parse(row.Time)
		if err != nil {
			return nil, fmt.Errorf("blocked slot %s %s: %w", row.Date, row.Time, err)
		}
		blocked.Block(row.Date, t)
	}
	return blocked, nil
}

// --------------------------------------------------
// Occupancy snapshot
// --------------------------------------------------

func (r *SalonGormRepository) ListDayBookings(
	ctx context.Context,
	salonID uint,
	dayStart time.Time,
	dayEnd time.Time,
	stylistID *uint,
) ([]availability.Booking, error) {

	apps, err := r.scanDayAppointments(r.db.WithContext(ctx), salonID, dayStart, dayEnd, stylistID, 0, false)
	if err != nil {
		return nil, err
	}
	return toBookings(apps, dayStart), nil
}

// scanDayAppointments fetches the day's scheduled rows. An appointment with
// no assigned stylist matches every stylist query: its assignee is not fixed
// yet, so it holds a slot on all grids.
func (r *SalonGormRepository) scanDayAppointments(
	tx *gorm.DB,
	salonID uint,
	dayStart time.Time,
	dayEnd time.Time,
	stylistID *uint,
	excludeID uint,
	lock bool,
) ([]models.Appointment, error) {

	q := tx.
		Model(&models.Appointment{}).
		Where(
			"salon_id = ? AND status = ? AND start_time >= ? AND start_time < ?",
			salonID, string(domain.StatusScheduled), dayStart, dayEnd,
		)

	if stylistID != nil {
		q = q.Where("stylist_id = ? OR stylist_id IS NULL", *stylistID)
	}
	if excludeID != 0 {
		q = q.Where("id <> ?", excludeID)
	}
	if lock {
		q = q.Clauses(clause.Locking{Strength: "UPDATE"})
	}

	var apps []models.Appointment
	if err := q.Order("start_time ASC").Find(&apps).Error; err != nil {
		return nil, err
	}
	return apps, nil
}

func toBookings(apps []models.Appointment, dayStart time.Time) []availability.Booking {
	out := make([]availability.Booking, 0, len(apps))
	for _, ap := range apps {
		out = append(out, availability.Booking{
			Start:           clock.Minutes(ap.StartTime.Sub(dayStart) / time.Minute),
			Duration:        clock.Minutes(ap.TotalDurationMin),
			ProcessingAfter: clock.Minutes(ap.ProcessingStartMin),
			ProcessingFor:   clock.Minutes(ap.ProcessingDurationMin),
			StylistID:       ap.StylistID,
		})
	}
	return out
}

func dayBounds(start time.Time) (time.Time, time.Time) {
	dayStart := time.Date(
		start.Year(), start.Month(), start.Day(),
		0, 0, 0, 0,
		start.Location(),
	)
	return dayStart, dayStart.Add(24 * time.Hour)
}

// --------------------------------------------------
// Appointment (guarded writes)
// --------------------------------------------------

// CreateAppointmentGuarded is the authoritative booking write: inside one
// transaction it locks the day's scheduled rows and re-runs the gap-aware
// overlap test against the latest data before inserting.
func (r *SalonGormRepository) CreateAppointmentGuarded(
	ctx context.Context,
	ap *models.Appointment,
) error {

	dayStart, dayEnd := dayBounds(ap.StartTime)
	cand := availability.Span{
		Start: clock.Minutes(ap.StartTime.Sub(dayStart) / time.Minute),
		End:   clock.Minutes(ap.EndTime.Sub(dayStart) / time.Minute),
	}

	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {

		apps, err := r.scanDayAppointments(tx, ap.SalonID, dayStart, dayEnd, ap.StylistID, 0, true)
		if err != nil {
			return err
		}

		occ := availability.BuildOccupancy(toBookings(apps, dayStart), ap.StylistID)
		if availability.Conflicts(occ, cand) {
			return httperr.ErrBusiness("slot_conflict")
		}

		return tx.Create(ap).Error
	})
}

// AssignStylistGuarded fixes the assignee of an any-stylist booking after
// checking the target stylist's day under lock.
func (r *SalonGormRepository) AssignStylistGuarded(
	ctx context.Context,
	salonID uint,
	appointmentID uint,
	stylistID uint,
) (*models.Appointment, error) {

	var ap models.Appointment

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {

		if err := tx.
			Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("id = ? AND salon_id = ?", appointmentID, salonID).
			First(&ap).Error; err != nil {
			return httperr.ErrBusiness("appointment_not_found")
		}

		if ap.Status != string(domain.StatusScheduled) {
			return httperr.ErrBusiness("invalid_state")
		}

		dayStart, dayEnd := dayBounds(ap.StartTime)
		cand := availability.Span{
			Start: clock.Minutes(ap.StartTime.Sub(dayStart) / time.Minute),
			End:   clock.Minutes(ap.EndTime.Sub(dayStart) / time.Minute),
		}

		apps, err := r.scanDayAppointments(tx, salonID, dayStart, dayEnd, &stylistID, ap.ID, true)
		if err != nil {
			return err
		}

		occ := availability.BuildOccupancy(toBookings(apps, dayStart), &stylistID)
		if availability.Conflicts(occ, cand) {
			return httperr.ErrBusiness("slot_conflict")
		}

		ap.StylistID = &stylistID
		return tx.Save(&ap).Error
	})

	if err != nil {
		return nil, err
	}
	return &ap, nil
}

// --------------------------------------------------
// Appointment (state change / lookup)
// --------------------------------------------------

func (r *SalonGormRepository) GetAppointmentForSalon(
	ctx context.Context,
	appointmentID uint,
	salonID uint,
) (*models.Appointment, error) {

	var ap models.Appointment
	if err := r.db.WithContext(ctx).
		Where("id = ? AND salon_id = ?", appointmentID, salonID).
		First(&ap).Error; err != nil {
		return nil, err
	}

	return &ap, nil
}

func (r *SalonGormRepository) GetAppointmentByReference(
	ctx context.Context,
	salonID uint,
	reference string,
) (*models.Appointment, error) {

	var ap models.Appointment
	if err := r.db.WithContext(ctx).
		Where("salon_id = ? AND reference = ?", salonID, reference).
		First(&ap).Error; err != nil {
		return nil, err
	}

	return &ap, nil
}

func (r *SalonGormRepository) UpdateAppointment(
	ctx context.Context,
	ap *models.Appointment,
) error {
	return r.db.WithContext(ctx).Save(ap).Error
}

func (r *SalonGormRepository) ListAppointmentsForPeriod(
	ctx context.Context,
	salonID uint,
	stylistID *uint,
	start time.Time,
	end time.Time,
) ([]models.Appointment, error) {

	q := r.db.WithContext(ctx).
		Preload("Client").
		Preload("Stylist").
		Preload("Services").
		Where(
			"salon_id = ? AND start_time >= ? AND start_time < ?",
			salonID, start, end,
		)

	if stylistID != nil {
		q = q.Where("stylist_id = ? OR stylist_id IS NULL", *stylistID)
	}

	var apps []models.Appointment
	if err := q.Order("start_time ASC").Find(&apps).Error; err != nil {
		return nil, err
	}

	return apps, nil
}

// --------------------------------------------------
// Blocked slots / closed dates
// --------------------------------------------------

func (r *SalonGormRepository) BlockSlot(
	ctx context.Context,
	salonID uint,
	date string,
	hm string,
) error {

	row := models.BlockedSlot{SalonID: salonID, Date: date, Time: hm}
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(&row).Error
}

func (r *SalonGormRepository) UnblockSlot(
	ctx context.Context,
	salonID uint,
	date string,
	hm string,
) error {

	return r.db.WithContext(ctx).
		Where("salon_id = ? AND date = ? AND time = ?", salonID, date, hm).
		Delete(&models.BlockedSlot{}).Error
}

func (r *SalonGormRepository) AddClosedDate(
	ctx context.Context,
	salonID uint,
	date string,
	reason string,
) error {

	row := models.ClosedDate{SalonID: salonID, Date: date, Reason: reason}
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(&row).Error
}

func (r *SalonGormRepository) RemoveClosedDate(
	ctx context.Context,
	salonID uint,
	date string,
) error {

	return r.db.WithContext(ctx).
		Where("salon_id = ? AND date = ?", salonID, date).
		Delete(&models.ClosedDate{}).Error
}

// Compile-time check
var _ domain.Repository = (*SalonGormRepository)(nil)
