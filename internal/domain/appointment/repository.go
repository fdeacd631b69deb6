package appointment

import (
	"context"
	"time"

	"github.com/manapixels/hair-salon-app-sub002/internal/domain/availability"
	"github.com/manapixels/hair-salon-app-sub002/internal/models"
)

type Repository interface {
	// -------- Salon --------
	GetSalonByID(
		ctx context.Context,
		id uint,
	) (*models.Salon, error)

	GetSalonBySlug(
		ctx context.Context,
		slug string,
	) (*models.Salon, error)

	// -------- Services --------
	ListActiveServices(
		ctx context.Context,
		salonID uint,
		serviceIDs []uint,
	) ([]models.Service, error)

	// -------- Stylist --------
	GetStylist(
		ctx context.Context,
		salonID uint,
		stylistID uint,
	) (*models.Stylist, error)

	// -------- Client --------
	GetOrCreateClient(
		ctx context.Context,
		salonID uint,
		name string,
		phone string,
		email string,
	) (*models.Client, error)

	// -------- Snapshots for the availability engine --------
	LoadScheduleConfig(
		ctx context.Context,
		salonID uint,
	) (availability.Config, error)

	LoadBlockedSlots(
		ctx context.Context,
		salonID uint,
		date string,
	) (*availability.BlockedSlots, error)

	ListDayBookings(
		ctx context.Context,
		salonID uint,
		dayStart time.Time,
		dayEnd time.Time,
		stylistID *uint,
	) ([]availability.Booking, error)

	// -------- Appointment (create / assign, atomic conflict check) --------
	CreateAppointmentGuarded(
		ctx context.Context,
		ap *models.Appointment,
	) error

	AssignStylistGuarded(
		ctx context.Context,
		salonID uint,
		appointmentID uint,
		stylistID uint,
	) (*models.Appointment, error)

	// -------- Appointment (state change / lookup) --------
	GetAppointmentForSalon(
		ctx context.Context,
		appointmentID uint,
		salonID uint,
	) (*models.Appointment, error)

	GetAppointmentByReference(
		ctx context.Context,
		salonID uint,
		reference string,
	) (*models.Appointment, error)

	UpdateAppointment(
		ctx context.Context,
		ap *models.Appointment,
	) error

	ListAppointmentsForPeriod(
		ctx context.Context,
		salonID uint,
		stylistID *uint,
		start time.Time,
		end time.Time,
	) ([]models.Appointment, error)

	// -------- Blocked slots / closed dates (idempotent) --------
	BlockSlot(
		ctx context.Context,
		salonID uint,
		date string,
		hm string,
	) error

	UnblockSlot(
		ctx context.Context,
		salonID uint,
		date string,
		hm string,
	) error

	AddClosedDate(
		ctx context.Context,
		salonID uint,
		date string,
		reason string,
	) error

	RemoveClosedDate(
		ctx context.Context,
		salonID uint,
		date string,
	) error
}
