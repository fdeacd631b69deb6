package availability

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/manapixels/hair-salon-app-sub002/internal/clock"
)

func TestGrid(t *testing.T) {
	day := openDay("09:00", "11:00")

	got := Grid(day, 30)
	want := []clock.Minutes{
		clock.MustParse("09:00"),
		clock.MustParse("09:30"),
		clock.MustParse("10:00"),
		clock.MustParse("10:30"),
	}
	assert.Equal(t, want, got)
}

func TestGridUnevenClosing(t *testing.T) {
	// 09:00–10:45 with a 30-minute step: the last grid point before
	// closing is 10:30.
	got := Grid(openDay("09:00", "10:45"), 30)
	assert.Equal(t, clock.MustParse("10:30"), got[len(got)-1])
	assert.Len(t, got, 4)
}

func TestGridDegenerate(t *testing.T) {
	assert.Nil(t, Grid(DayHours{}, 30))
	assert.Nil(t, Grid(openDay("09:00", "18:00"), 0))
	assert.Nil(t, Grid(DayHours{Open: true, Start: 600, End: 600}, 30))
}

func times(ts ...string) []clock.Minutes {
	out := make([]clock.Minutes, 0, len(ts))
	for _, s := range ts {
		out = append(out, clock.MustParse(s))
	}
	return out
}

// A colour appointment at 10:00 (90 min total, stylist free 10:30–11:00
// while the colour develops) on a 09:00–18:00 day with a 30-minute grid.
// A 30-minute booking fits only inside the developing window; starts that
// touch the active head or tail stay unavailable.
func TestSlotsAroundProcessingWindow(t *testing.T) {
	cfg := Config{Week: salonWeek("09:00", "18:00")}

	bookings := []Booking{{
		Start:           clock.MustParse("10:00"),
		Duration:        90,
		ProcessingAfter: 30,
		ProcessingFor:   30,
	}}

	avail := AvailableSlots(cfg, nil, bookings, Request{
		Date:     monday,
		Duration: 30,
		Step:     30,
	})

	assert.Contains(t, avail, clock.MustParse("09:30"))
	assert.Contains(t, avail, clock.MustParse("10:30"))
	assert.Contains(t, avail, clock.MustParse("11:30"))

	assert.NotContains(t, avail, clock.MustParse("10:00"))
	assert.NotContains(t, avail, clock.MustParse("11:00"))
}

func TestSlotsLongerServiceOverflowsFreeWindow(t *testing.T) {
	cfg := Config{Week: salonWeek("09:00", "18:00")}

	bookings := []Booking{{
		Start:           clock.MustParse("10:00"),
		Duration:        90,
		ProcessingAfter: 30,
		ProcessingFor:   30,
	}}

	// A 60-minute candidate at 10:30 spills past the free window into
	// the active tail.
	avail := AvailableSlots(cfg, nil, bookings, Request{
		Date:     monday,
		Duration: 60,
		Step:     30,
	})

	assert.NotContains(t, avail, clock.MustParse("10:30"))
	assert.Contains(t, avail, clock.MustParse("11:30"))
	assert.Contains(t, avail, clock.MustParse("09:00"))
}

func TestSlotsDurationMustFitBeforeClosing(t *testing.T) {
	cfg := Config{Week: salonWeek("09:00", "18:00")}

	slots := Slots(cfg, nil, nil, Request{
		Date:     monday,
		Duration: 60,
		Step:     30,
	})
	require.NotEmpty(t, slots)

	byTime := map[clock.Minutes]bool{}
	for _, s := range slots {
		byTime[s.Time] = s.Available
	}

	// 17:30 + 60 min runs past 18:00; 17:00 still fits exactly.
	assert.False(t, byTime[clock.MustParse("17:30")])
	assert.True(t, byTime[clock.MustParse("17:00")])

	// The grid itself still lists 17:30.
	assert.Equal(t, clock.MustParse("17:30"), slots[len(slots)-1].Time)
}

func TestSlotsClosedDayIsEmpty(t *testing.T) {
	cfg := Config{
		Week:        salonWeek("09:00", "18:00"),
		ClosedDates: map[string]struct{}{"2026-03-02": {}},
	}

	slots := Slots(cfg, nil, nil, Request{Date: monday, Duration: 30, Step: 30})
	assert.Empty(t, slots)
}

func TestSlotsBlockedStartTimes(t *testing.T) {
	cfg := Config{Week: salonWeek("09:00", "18:00")}

	blocked := NewBlockedSlots()
	blocked.Block("2026-03-02", clock.MustParse("09:30"))

	avail := AvailableSlots(cfg, blocked, nil, Request{
		Date:     monday,
		Duration: 30,
		Step:     30,
	})

	assert.NotContains(t, avail, clock.MustParse("09:30"))
	assert.Contains(t, avail, clock.MustParse("09:00"))
	assert.Contains(t, avail, clock.MustParse("10:00"))

	// Blocking another date leaves this one alone.
	blocked.Block("2026-03-03", clock.MustParse("10:00"))
	avail = AvailableSlots(cfg, blocked, nil, Request{
		Date:     monday,
		Duration: 30,
		Step:     30,
	})
	assert.Contains(t, avail, clock.MustParse("10:00"))
}

func TestSlotsAnyStylistBookingOccupiesAll(t *testing.T) {
	s1 := uint(1)
	cfg := Config{Week: salonWeek("09:00", "18:00")}

	bookings := []Booking{
		{Start: clock.MustParse("10:00"), Duration: 60}, // unassigned
	}

	avail := AvailableSlots(cfg, nil, bookings, Request{
		Date:      monday,
		StylistID: &s1,
		Duration:  30,
		Step:      30,
	})

	assert.NotContains(t, avail, clock.MustParse("10:00"))
	assert.NotContains(t, avail, clock.MustParse("10:30"))
	assert.Contains(t, avail, clock.MustParse("11:00"))
}

func TestSlotsFullDayNoBookings(t *testing.T) {
	cfg := Config{Week: salonWeek("09:00", "12:00")}

	avail := AvailableSlots(cfg, nil, nil, Request{
		Date:     monday,
		Duration: 30,
		Step:     30,
	})

	assert.Equal(t, times("09:00", "09:30", "10:00", "10:30", "11:00", "11:30"), avail)
}

func TestSlotsZeroDuration(t *testing.T) {
	cfg := Config{Week: salonWeek("09:00", "18:00")}
	assert.Nil(t, Slots(cfg, nil, nil, Request{Date: monday, Duration: 0, Step: 30}))
}

func TestSlotsDefaultStep(t *testing.T) {
	cfg := Config{Week: salonWeek("09:00", "10:00")}

	slots := Slots(cfg, nil, nil, Request{Date: monday, Duration: 30})
	require.Len(t, slots, 2)
	assert.Equal(t, clock.MustParse("09:00"), slots[0].Time)
	assert.Equal(t, clock.MustParse("09:30"), slots[1].Time)
}
