package availability

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/manapixels/hair-salon-app-sub002/internal/clock"
)

func span(start, end string) Span {
	return Span{Start: clock.MustParse(start), End: clock.MustParse(end)}
}

func TestSpanOverlapsHalfOpen(t *testing.T) {
	a := span("10:00", "11:00")

	assert.True(t, a.Overlaps(span("10:30", "11:30")))
	assert.True(t, a.Overlaps(span("09:00", "10:30")))
	assert.True(t, a.Overlaps(span("10:15", "10:45")))

	// Touching endpoints do not overlap.
	assert.False(t, a.Overlaps(span("11:00", "12:00")))
	assert.False(t, a.Overlaps(span("09:00", "10:00")))
}

func TestSpanIntersect(t *testing.T) {
	a := span("10:00", "11:00")
	got := a.Intersect(span("10:30", "12:00"))
	assert.Equal(t, span("10:30", "11:00"), got)
}

func TestBuildOccupancyFiltersByStylist(t *testing.T) {
	s1, s2 := uint(1), uint(2)

	bookings := []Booking{
		{Start: clock.MustParse("09:00"), Duration: 60, StylistID: &s1},
		{Start: clock.MustParse("10:00"), Duration: 60, StylistID: &s2},
		{Start: clock.MustParse("11:00"), Duration: 60}, // unassigned
	}

	occ := BuildOccupancy(bookings, &s1)
	require.Len(t, occ, 2)
	assert.Equal(t, clock.MustParse("09:00"), occ[0].Start)
	// The unassigned booking occupies every stylist's grid.
	assert.Equal(t, clock.MustParse("11:00"), occ[1].Start)

	// The shared grid sees everything.
	occ = BuildOccupancy(bookings, nil)
	assert.Len(t, occ, 3)
}

func TestBuildOccupancySortsAndSkipsEmpty(t *testing.T) {
	bookings := []Booking{
		{Start: clock.MustParse("14:00"), Duration: 30},
		{Start: clock.MustParse("09:00"), Duration: 30},
		{Start: clock.MustParse("12:00"), Duration: 0}, // no footprint
	}

	occ := BuildOccupancy(bookings, nil)
	require.Len(t, occ, 2)
	assert.Equal(t, clock.MustParse("09:00"), occ[0].Start)
	assert.Equal(t, clock.MustParse("14:00"), occ[1].Start)
}

func TestBuildOccupancyProcessingWindow(t *testing.T) {
	bookings := []Booking{{
		Start:           clock.MustParse("10:00"),
		Duration:        90,
		ProcessingAfter: 30,
		ProcessingFor:   30,
	}}

	occ := BuildOccupancy(bookings, nil)
	require.Len(t, occ, 1)
	require.NotNil(t, occ[0].Free)
	assert.Equal(t, span("10:30", "11:00"), *occ[0].Free)
}

func TestBuildOccupancyRejectsOversizedWindow(t *testing.T) {
	// A window spilling past the end of the booking is ignored.
	bookings := []Booking{{
		Start:           clock.MustParse("10:00"),
		Duration:        60,
		ProcessingAfter: 45,
		ProcessingFor:   30,
	}}

	occ := BuildOccupancy(bookings, nil)
	require.Len(t, occ, 1)
	assert.Nil(t, occ[0].Free)
}

func TestConflictsSolidBooking(t *testing.T) {
	occ := BuildOccupancy([]Booking{
		{Start: clock.MustParse("10:00"), Duration: 60},
	}, nil)

	assert.True(t, Conflicts(occ, span("10:00", "11:00")))
	assert.True(t, Conflicts(occ, span("10:30", "11:30")))
	assert.True(t, Conflicts(occ, span("09:30", "10:30")))

	assert.False(t, Conflicts(occ, span("09:00", "10:00")))
	assert.False(t, Conflicts(occ, span("11:00", "12:00")))
}

func TestConflictsInsideFreeWindow(t *testing.T) {
	occ := BuildOccupancy([]Booking{{
		Start:           clock.MustParse("10:00"),
		Duration:        90,
		ProcessingAfter: 30,
		ProcessingFor:   30,
	}}, nil)

	// Entirely inside the 10:30–11:00 free window.
	assert.False(t, Conflicts(occ, span("10:30", "11:00")))

	// Partially outside it.
	assert.True(t, Conflicts(occ, span("10:30", "11:30")))
	assert.True(t, Conflicts(occ, span("10:00", "11:00")))
}

func TestConflictsCandidateGapDoesNotRelax(t *testing.T) {
	// The occupied interval has no free window; the fact that the
	// candidate itself would have one changes nothing.
	occ := BuildOccupancy([]Booking{
		{Start: clock.MustParse("10:00"), Duration: 60},
	}, nil)

	assert.True(t, Conflicts(occ, span("10:15", "10:45")))
}

func TestConflictsAcrossMultipleOccupied(t *testing.T) {
	occ := BuildOccupancy([]Booking{
		{
			Start:           clock.MustParse("10:00"),
			Duration:        90,
			ProcessingAfter: 30,
			ProcessingFor:   60,
		},
		{Start: clock.MustParse("10:45"), Duration: 15},
	}, nil)

	// Fits the first booking's free window but hits the second booking.
	assert.True(t, Conflicts(occ, span("10:30", "11:00")))

	// Clears both.
	assert.False(t, Conflicts(occ, span("11:00", "11:30")))
}

func TestBlockedSlots(t *testing.T) {
	b := NewBlockedSlots()

	b.Block("2026-03-02", clock.MustParse("10:00"))
	b.Block("2026-03-02", clock.MustParse("10:00")) // idempotent
	b.Block("2026-03-02", clock.MustParse("09:00"))
	b.Block("2026-03-03", clock.MustParse("14:00"))

	assert.True(t, b.Blocked("2026-03-02", clock.MustParse("10:00")))
	assert.False(t, b.Blocked("2026-03-02", clock.MustParse("11:00")))
	assert.False(t, b.Blocked("2026-03-04", clock.MustParse("10:00")))

	assert.Equal(t,
		[]clock.Minutes{clock.MustParse("09:00"), clock.MustParse("10:00")},
		b.Times("2026-03-02"),
	)

	b.Unblock("2026-03-02", clock.MustParse("10:00"))
	b.Unblock("2026-03-02", clock.MustParse("10:00")) // idempotent
	assert.False(t, b.Blocked("2026-03-02", clock.MustParse("10:00")))

	// A nil set blocks nothing.
	var nilSet *BlockedSlots
	assert.False(t, nilSet.Blocked("2026-03-02", clock.MustParse("10:00")))
	assert.Nil(t, nilSet.Times("2026-03-02"))
}
