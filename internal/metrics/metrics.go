package metrics

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
)

var (
	once sync.Once

	availabilityRequests = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "salon",
			Name:      "availability_requests_total",
			Help:      "Count of availability computations.",
		},
	)

	appointmentCreated = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "salon",
			Name:      "appointment_created_total",
			Help:      "Count of appointments created by source.",
		},
		[]string{"source"},
	)

	bookingConflicts = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "salon",
			Name:      "booking_conflicts_total",
			Help:      "Count of bookings rejected by the final conflict check.",
		},
	)

	slotBlockOps = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "salon",
			Name:      "slot_block_ops_total",
			Help:      "Count of block/unblock slot operations.",
		},
		[]string{"op"},
	)
)

// Register registers metrics (idempotent).
func Register() {
	once.Do(func() {
		prometheus.MustRegister(
			availabilityRequests,
			appointmentCreated,
			bookingConflicts,
			slotBlockOps,
		)
	})
}

func IncAvailabilityRequest() {
	availabilityRequests.Inc()
}

func IncAppointmentCreated(source string) {
	appointmentCreated.WithLabelValues(source).Inc()
}

func IncBookingConflict() {
	bookingConflicts.Inc()
}

func IncSlotBlockOp(op string) {
	slotBlockOps.WithLabelValues(op).Inc()
}
