package availability

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/manapixels/hair-salon-app-sub002/internal/clock"
)

// monday is 2026-03-02.
var monday = time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC)

func openDay(start, end string) DayHours {
	return DayHours{
		Open:  true,
		Start: clock.MustParse(start),
		End:   clock.MustParse(end),
	}
}

func salonWeek(start, end string) Week {
	var w Week
	for i := range w {
		w[i] = openDay(start, end)
	}
	return w
}

func TestResolveOpenHoursWeeklyTemplate(t *testing.T) {
	cfg := Config{Week: salonWeek("09:00", "18:00")}

	day, ok := cfg.ResolveOpenHours(monday, nil)
	require.True(t, ok)
	assert.Equal(t, clock.MustParse("09:00"), day.Start)
	assert.Equal(t, clock.MustParse("18:00"), day.End)
}

func TestResolveOpenHoursMissingWeekdayIsClosed(t *testing.T) {
	var cfg Config // zero week: every day closed

	_, ok := cfg.ResolveOpenHours(monday, nil)
	assert.False(t, ok)
}

func TestResolveOpenHoursClosedDateWins(t *testing.T) {
	cfg := Config{
		Week:        salonWeek("09:00", "18:00"),
		ClosedDates: map[string]struct{}{"2026-03-02": {}},
		// An override on a closed date must not reopen it.
		Overrides: map[string]DayHours{"2026-03-02": openDay("10:00", "16:00")},
	}

	_, ok := cfg.ResolveOpenHours(monday, nil)
	assert.False(t, ok)
}

func TestResolveOpenHoursOverrideReplacesWeekly(t *testing.T) {
	cfg := Config{
		Week:      salonWeek("09:00", "18:00"),
		Overrides: map[string]DayHours{"2026-03-02": openDay("12:00", "20:00")},
	}

	day, ok := cfg.ResolveOpenHours(monday, nil)
	require.True(t, ok)
	assert.Equal(t, clock.MustParse("12:00"), day.Start)
	assert.Equal(t, clock.MustParse("20:00"), day.End)

	// Other days keep the template.
	tuesday := monday.AddDate(0, 0, 1)
	day, ok = cfg.ResolveOpenHours(tuesday, nil)
	require.True(t, ok)
	assert.Equal(t, clock.MustParse("09:00"), day.Start)
}

func TestResolveOpenHoursClosedOverride(t *testing.T) {
	cfg := Config{
		Week:      salonWeek("09:00", "18:00"),
		Overrides: map[string]DayHours{"2026-03-02": {Open: false}},
	}

	_, ok := cfg.ResolveOpenHours(monday, nil)
	assert.False(t, ok)
}

func TestResolveOpenHoursStylistBlockedDate(t *testing.T) {
	sid := uint(7)
	cfg := Config{
		Week: salonWeek("09:00", "18:00"),
		Stylists: map[uint]StylistHours{
			sid: {BlockedDates: map[string]struct{}{"2026-03-02": {}}},
		},
	}

	_, ok := cfg.ResolveOpenHours(monday, &sid)
	assert.False(t, ok)

	// Other stylists are unaffected.
	other := uint(8)
	_, ok = cfg.ResolveOpenHours(monday, &other)
	assert.True(t, ok)

	// So is the shared salon view.
	_, ok = cfg.ResolveOpenHours(monday, nil)
	assert.True(t, ok)
}

func TestResolveOpenHoursPerStylistMode(t *testing.T) {
	sid := uint(7)
	ownWeek := salonWeek("11:00", "15:00")

	cfg := Config{
		Mode: PerStylist,
		Week: salonWeek("09:00", "18:00"),
		Stylists: map[uint]StylistHours{
			sid: {HasOwnHours: true, Week: ownWeek},
		},
	}

	day, ok := cfg.ResolveOpenHours(monday, &sid)
	require.True(t, ok)
	assert.Equal(t, clock.MustParse("11:00"), day.Start)
	assert.Equal(t, clock.MustParse("15:00"), day.End)
}

func TestResolveOpenHoursPerStylistModeWithoutOwnHours(t *testing.T) {
	sid := uint(7)
	cfg := Config{
		Mode: PerStylist,
		Week: salonWeek("09:00", "18:00"),
		Stylists: map[uint]StylistHours{
			sid: {HasOwnHours: false},
		},
	}

	// Falls back to the salon template.
	day, ok := cfg.ResolveOpenHours(monday, &sid)
	require.True(t, ok)
	assert.Equal(t, clock.MustParse("09:00"), day.Start)
}

func TestResolveOpenHoursSalonWideIgnoresOwnHours(t *testing.T) {
	sid := uint(7)
	cfg := Config{
		Mode: SalonWide,
		Week: salonWeek("09:00", "18:00"),
		Stylists: map[uint]StylistHours{
			sid: {HasOwnHours: true, Week: salonWeek("11:00", "15:00")},
		},
	}

	day, ok := cfg.ResolveOpenHours(monday, &sid)
	require.True(t, ok)
	assert.Equal(t, clock.MustParse("09:00"), day.Start)
	assert.Equal(t, clock.MustParse("18:00"), day.End)
}
