package appointment

import (
	"context"
	"time"

	domain "github.com/manapixels/hair-salon-app-sub002/internal/domain/appointment"
	"github.com/manapixels/hair-salon-app-sub002/internal/dto"
	"github.com/manapixels/hair-salon-app-sub002/internal/httperr"
	"github.com/manapixels/hair-salon-app-sub002/internal/models"
	"github.com/manapixels/hair-salon-app-sub002/internal/timezone"
)

// ======================================================
// LIST BY DATE / MONTH
// ======================================================

type ListAppointments struct {
	repo domain.Repository
}

func NewListAppointments(repo domain.Repository) *ListAppointments {
	return &ListAppointments{repo: repo}
}

// ByDate returns a salon day in start-time order, optionally narrowed
// to one stylist. Any-stylist bookings are included either way.
func (uc *ListAppointments) ByDate(
	ctx context.Context,
	salonID uint,
	date string,
	stylistID *uint,
) ([]dto.AppointmentListDTO, error) {

	salon, err := uc.repo.GetSalonByID(ctx, salonID)
	if err != nil {
		return nil, err
	}

	loc := timezone.Location(salon.Timezone)

	day, err := time.ParseInLocation("2006-01-02", date, loc)
	if err != nil {
		return nil, httperr.ErrBusiness("invalid_date_or_time")
	}

	aps, err := uc.repo.ListAppointmentsForPeriod(
		ctx,
		salonID,
		stylistID,
		day,
		day.AddDate(0, 0, 1),
	)
	if err != nil {
		return nil, err
	}

	return toListDTOs(aps), nil
}

// ByMonth returns a whole calendar month, for the admin agenda view.
func (uc *ListAppointments) ByMonth(
	ctx context.Context,
	salonID uint,
	year int,
	month int,
	stylistID *uint,
) ([]dto.AppointmentListDTO, error) {

	if month < 1 || month > 12 {
		return nil, httperr.ErrBusiness("invalid_date_or_time")
	}

	salon, err := uc.repo.GetSalonByID(ctx, salonID)
	if err != nil {
		return nil, err
	}

	loc := timezone.Location(salon.Timezone)
	start := time.Date(year, time.Month(month), 1, 0, 0, 0, 0, loc)

	aps, err := uc.repo.ListAppointmentsForPeriod(
		ctx,
		salonID,
		stylistID,
		start,
		start.AddDate(0, 1, 0),
	)
	if err != nil {
		return nil, err
	}

	return toListDTOs(aps), nil
}

func toListDTOs(aps []models.Appointment) []dto.AppointmentListDTO {
	out := make([]dto.AppointmentListDTO, 0, len(aps))

	for _, ap := range aps {
		item := dto.AppointmentListDTO{
			ID:         ap.ID,
			Reference:  ap.Reference,
			StartTime:  ap.StartTime,
			EndTime:    ap.EndTime,
			Status:     ap.Status,
			ClientName: ap.Client.Name,
			Services:   make([]string, 0, len(ap.Services)),
		}

		if ap.Stylist != nil {
			item.StylistName = ap.Stylist.Name
		}
		for _, s := range ap.Services {
			item.Services = append(item.Services, s.Name)
		}

		out = append(out, item)
	}

	return out
}
