package availability

import (
	"time"

	"github.com/manapixels/hair-salon-app-sub002/internal/clock"
)

// ======================================================
// Schedule snapshot
// ======================================================

// DayHours is the resolved opening window for one day.
// Open == false means the day is closed and Start/End are meaningless.
type DayHours struct {
	Open  bool          `json:"open"`
	Start clock.Minutes `json:"start"`
	End   clock.Minutes `json:"end"`
}

// Week maps time.Weekday (Sunday == 0) to that day's template hours.
// A zero entry is a closed day: a missing weekday never fails open.
type Week [7]DayHours

// Mode selects whose schedule governs availability. It is an explicit
// parameter of the snapshot, chosen by the caller, never global state.
type Mode int

const (
	// SalonWide: one shared schedule for the whole salon.
	SalonWide Mode = iota
	// PerStylist: each stylist's own hours and blocked dates apply.
	PerStylist
)

// StylistHours is one stylist's slice of the snapshot.
type StylistHours struct {
	// HasOwnHours: the stylist keeps a custom weekly template. When false
	// the salon week applies even in per-stylist mode.
	HasOwnHours  bool                `json:"has_own_hours"`
	Week         Week                `json:"week"`
	BlockedDates map[string]struct{} `json:"blocked_dates"`
}

// Config is the read-only schedule snapshot the engine consumes.
// It is assembled fresh per request by the caller (repository or cache).
type Config struct {
	Mode        Mode                  `json:"mode"`
	Week        Week                  `json:"week"`
	Overrides   map[string]DayHours   `json:"overrides"`    // date key → replaces the weekly entry
	ClosedDates map[string]struct{}   `json:"closed_dates"` // salon fully closed
	Stylists    map[uint]StylistHours `json:"stylists"`
}

// ======================================================
// Resolver
// ======================================================

// ResolveOpenHours layers the snapshot into the effective opening window
// for date: salon closed-date → stylist blocked-date → per-day override →
// weekly template (the stylist's own template in per-stylist mode when the
// stylist keeps one). ok == false means closed.
func (c Config) ResolveOpenHours(date time.Time, stylistID *uint) (DayHours, bool) {
	key := clock.DateKey(date)

	if _, closed := c.ClosedDates[key]; closed {
		return DayHours{}, false
	}

	var stylist *StylistHours
	if stylistID != nil {
		if sh, ok := c.Stylists[*stylistID]; ok {
			if _, blocked := sh.BlockedDates[key]; blocked {
				return DayHours{}, false
			}
			stylist = &sh
		}
	}

	weekday := int(date.Weekday())

	// Stylist-specific hours win over the salon template and its overrides.
	if c.Mode == PerStylist && stylist != nil && stylist.HasOwnHours {
		day := stylist.Week[weekday]
		if !day.Open {
			return DayHours{}, false
		}
		return day, true
	}

	day := c.Week[weekday]
	if ov, ok := c.Overrides[key]; ok {
		day = ov
	}

	if !day.Open {
		return DayHours{}, false
	}
	return day, true
}
