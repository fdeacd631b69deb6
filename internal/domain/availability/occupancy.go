package availability

import (
	"sort"

	"github.com/manapixels/hair-salon-app-sub002/internal/clock"
)

// ======================================================
// Intervals
// ======================================================

// Span is a half-open [Start, End) interval within one day.
type Span struct {
	Start clock.Minutes `json:"start"`
	End   clock.Minutes `json:"end"`
}

func (s Span) Overlaps(o Span) bool {
	return s.Start < o.End && o.Start < s.End
}

func (s Span) Contains(o Span) bool {
	return o.Start >= s.Start && o.End <= s.End
}

// Intersect returns the overlapping portion of two spans.
// Only meaningful when Overlaps holds.
func (s Span) Intersect(o Span) Span {
	out := s
	if o.Start > out.Start {
		out.Start = o.Start
	}
	if o.End < out.End {
		out.End = o.End
	}
	return out
}

// ======================================================
// Occupancy index
// ======================================================

// Booking is one active appointment as the engine sees it: a start, a total
// footprint, and optionally a processing window during which the stylist is
// free to take another client (hair colour developing, etc).
type Booking struct {
	Start    clock.Minutes
	Duration clock.Minutes

	// ProcessingAfter is the offset from Start at which the passive window
	// opens; ProcessingFor is its length. Both zero means the booking
	// occupies the stylist for its whole duration.
	ProcessingAfter clock.Minutes
	ProcessingFor   clock.Minutes

	// StylistID nil means the booking has no assigned stylist yet and
	// therefore occupies every stylist's grid.
	StylistID *uint
}

// Occupied is one busy interval, possibly carrying a free sub-interval.
// Free never nests: the model supports exactly one level of concurrency.
type Occupied struct {
	Span
	Free *Span
}

// BuildOccupancy projects the day's bookings onto the grid of stylistID
// (nil = the shared salon grid). It reports facts only; whether intervals
// overlap each other is the write path's problem. Output is sorted by start.
func BuildOccupancy(bookings []Booking, stylistID *uint) []Occupied {
	out := make([]Occupied, 0, len(bookings))

	for _, b := range bookings {
		if b.Duration <= 0 {
			continue
		}
		if stylistID != nil && b.StylistID != nil && *b.StylistID != *stylistID {
			continue
		}

		occ := Occupied{Span: Span{Start: b.Start, End: b.Start + b.Duration}}

		if b.ProcessingFor > 0 && b.ProcessingAfter >= 0 &&
			b.ProcessingAfter+b.ProcessingFor <= b.Duration {
			occ.Free = &Span{
				Start: b.Start + b.ProcessingAfter,
				End:   b.Start + b.ProcessingAfter + b.ProcessingFor,
			}
		}

		out = append(out, occ)
	}

	sort.Slice(out, func(i, j int) bool { return out[i].Start < out[j].Start })
	return out
}

// Conflicts reports whether a candidate interval collides with the active
// portion of any occupied interval. Overlap is tolerated only where it falls
// entirely inside that interval's free sub-interval; the candidate's own
// processing window never relaxes the test (gaps do not stack).
func Conflicts(occ []Occupied, cand Span) bool {
	for _, o := range occ {
		if !cand.Overlaps(o.Span) {
			continue
		}
		if o.Free == nil || !o.Free.Contains(cand.Intersect(o.Span)) {
			return true
		}
	}
	return false
}
