package appointment

import (
	"time"

	"github.com/manapixels/hair-salon-app-sub002/internal/httperr"
	"github.com/manapixels/hair-salon-app-sub002/internal/models"
)

// ===============================
// Domain Actions
// ===============================

func Cancel(ap *models.Appointment, now time.Time) error {
	if err := CanCancel(Status(ap.Status)); err != nil {
		return err
	}

	ap.Status = string(StatusCancelled)
	ap.CancelledAt = &now
	return nil
}

func Complete(ap *models.Appointment, now time.Time) error {
	if err := CanComplete(Status(ap.Status)); err != nil {
		return err
	}

	ap.Status = string(StatusCompleted)
	ap.CompletedAt = &now
	return nil
}

func MarkNoShow(ap *models.Appointment, now time.Time) error {
	if err := CanMarkNoShow(Status(ap.Status)); err != nil {
		return err
	}

	ap.Status = string(StatusNoShow)
	ap.NoShowAt = &now
	return nil
}

// AggregateServiceSpec folds an ordered service set into the appointment's
// occupancy footprint: total minutes plus the first declared processing
// window, offset by the services that run before it. Only one window is
// honoured, the model supports a single level of concurrency.
func AggregateServiceSpec(services []models.Service) (total, processingStart, processingDuration int, err error) {
	for _, svc := range services {
		if svc.DurationMin <= 0 {
			return 0, 0, 0, httperr.ErrBusiness("invalid_service_duration")
		}
		if svc.ProcessingDurationMin > 0 &&
			svc.ProcessingStartMin+svc.ProcessingDurationMin > svc.DurationMin {
			return 0, 0, 0, httperr.ErrBusiness("invalid_processing_window")
		}

		if svc.ProcessingDurationMin > 0 && processingDuration == 0 {
			processingStart = total + svc.ProcessingStartMin
			processingDuration = svc.ProcessingDurationMin
		}

		total += svc.DurationMin
	}

	return total, processingStart, processingDuration, nil
}
