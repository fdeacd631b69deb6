package availability

import "github.com/manapixels/hair-salon-app-sub002/internal/clock"

// Grid expands an open day into discrete candidate start times: opening
// (inclusive) stepping by step while still before closing. Whether a start
// leaves room for the requested duration is the engine's concern, not the
// grid's.
func Grid(day DayHours, step clock.Minutes) []clock.Minutes {
	if !day.Open || step <= 0 || day.Start >= day.End {
		return nil
	}

	out := make([]clock.Minutes, 0, int((day.End-day.Start)/step))
	for t := day.Start; t < day.End; t += step {
		out = append(out, t)
	}
	return out
}
