package availability

import (
	"time"

	"github.com/manapixels/hair-salon-app-sub002/internal/clock"
)

// ======================================================
// Engine
// ======================================================

// Request asks for the bookable start times on one date. Step is the fixed
// grid granularity, independent of the requested duration.
type Request struct {
	Date      time.Time
	StylistID *uint
	Duration  clock.Minutes
	Step      clock.Minutes
}

// Slot is the ephemeral per-request view of one grid position. It is never
// cached: it depends on the live occupancy snapshot.
type Slot struct {
	Time      clock.Minutes
	Available bool
}

// Slots walks the whole grid and flags each start time. A start is bookable
// when it is not blocked, the requested duration still fits before closing,
// and the candidate interval survives the occupancy test.
func Slots(cfg Config, blocked *BlockedSlots, bookings []Booking, req Request) []Slot {
	day, open := cfg.ResolveOpenHours(req.Date, req.StylistID)
	if !open || req.Duration <= 0 {
		return nil
	}

	step := req.Step
	if step <= 0 {
		step = clock.DefaultStep
	}

	occ := BuildOccupancy(bookings, req.StylistID)
	dateKey := clock.DateKey(req.Date)

	grid := Grid(day, step)
	out := make([]Slot, 0, len(grid))

	for _, t := range grid {
		slot := Slot{Time: t}

		switch {
		case blocked.Blocked(dateKey, t):
		case t+req.Duration > day.End:
		case Conflicts(occ, Span{Start: t, End: t + req.Duration}):
		default:
			slot.Available = true
		}

		out = append(out, slot)
	}
	return out
}

// AvailableSlots returns only the bookable start times, in chronological
// order. A closed day yields an empty result, never an error.
func AvailableSlots(cfg Config, blocked *BlockedSlots, bookings []Booking, req Request) []clock.Minutes {
	slots := Slots(cfg, blocked, bookings, req)

	out := make([]clock.Minutes, 0, len(slots))
	for _, s := range slots {
		if s.Available {
			out = append(out, s.Time)
		}
	}
	return out
}
