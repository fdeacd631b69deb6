package clock

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	cases := []struct {
		in   string
		want Minutes
		ok   bool
	}{
		{"00:00", 0, true},
		{"09:00", 540, true},
		{"09:30", 570, true},
		{"23:59", 1439, true},
		{"24:00", 0, false},
		{"09:60", 0, false},
		{"9:00", 0, false},
		{"09-00", 0, false},
		{"ab:cd", 0, false},
		{"", 0, false},
		{"09:00:00", 0, false},
	}

	for _, tc := range cases {
		got, err := Parse(tc.in)
		if tc.ok {
			require.NoError(t, err, "input %q", tc.in)
			assert.Equal(t, tc.want, got, "input %q", tc.in)
		} else {
			assert.Error(t, err, "input %q", tc.in)
		}
	}
}

func TestString(t *testing.T) {
	assert.Equal(t, "09:00", Minutes(540).String())
	assert.Equal(t, "00:05", Minutes(5).String())
	assert.Equal(t, "23:59", Minutes(1439).String())
}

func TestMustParseRoundTrip(t *testing.T) {
	for _, s := range []string{"00:00", "08:15", "18:30", "23:59"} {
		assert.Equal(t, s, MustParse(s).String())
	}
}

func TestMustParsePanics(t *testing.T) {
	assert.Panics(t, func() { MustParse("25:00") })
}

func TestOfTimeAndOnDate(t *testing.T) {
	loc, err := time.LoadLocation("Asia/Singapore")
	require.NoError(t, err)

	at := time.Date(2026, 3, 2, 14, 30, 0, 0, loc)
	assert.Equal(t, MustParse("14:30"), OfTime(at))

	day := time.Date(2026, 3, 2, 0, 0, 0, 0, loc)
	anchored := MustParse("09:30").OnDate(day)
	assert.Equal(t, time.Date(2026, 3, 2, 9, 30, 0, 0, loc), anchored)
}

func TestDateKey(t *testing.T) {
	day := time.Date(2026, 3, 2, 15, 4, 5, 0, time.UTC)
	assert.Equal(t, "2026-03-02", DateKey(day))

	assert.True(t, ValidDateKey("2026-03-02"))
	assert.False(t, ValidDateKey("2026-3-2"))
	assert.False(t, ValidDateKey("02-03-2026"))
	assert.False(t, ValidDateKey("2026-13-40"))
}
