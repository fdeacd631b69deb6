package clock

import (
	"fmt"
	"time"
)

// DefaultStep is the salon-wide slot granularity in minutes.
const DefaultStep = Minutes(30)

// Minutes is a wall-clock offset since midnight. All schedule math in the
// availability engine happens on this type; "HH:MM" strings are parsed once
// at the boundary and never inside the engine.
type Minutes int

// Parse converts a strict "HH:MM" string (00:00 .. 23:59) into Minutes.
func Parse(hm string) (Minutes, error) {
	if len(hm) != 5 || hm[2] != ':' {
		return 0, fmt.Errorf("invalid time %q: want HH:MM", hm)
	}

	h, ok1 := digits2(hm[0], hm[1])
	m, ok2 := digits2(hm[3], hm[4])
	if !ok1 || !ok2 || h > 23 || m > 59 {
		return 0, fmt.Errorf("invalid time %q: want HH:MM", hm)
	}

	return Minutes(h*60 + m), nil
}

// MustParse is Parse for trusted literals (tests, defaults).
func MustParse(hm string) Minutes {
	m, err := Parse(hm)
	if err != nil {
		panic(err)
	}
	return m
}

func (m Minutes) String() string {
	return fmt.Sprintf("%02d:%02d", int(m)/60, int(m)%60)
}

// OfTime extracts the minute-of-day of t in its own location.
func OfTime(t time.Time) Minutes {
	return Minutes(t.Hour()*60 + t.Minute())
}

// OnDate anchors a minute-of-day to a concrete calendar day.
func (m Minutes) OnDate(date time.Time) time.Time {
	return time.Date(
		date.Year(), date.Month(), date.Day(),
		int(m)/60, int(m)%60, 0, 0,
		date.Location(),
	)
}

// DateKey formats a date the way closed-date and blocked-slot sets are keyed.
func DateKey(t time.Time) string {
	return t.Format("2006-01-02")
}

// ValidDateKey reports whether s is a well-formed "YYYY-MM-DD" date.
func ValidDateKey(s string) bool {
	_, err := time.Parse("2006-01-02", s)
	return err == nil
}

func digits2(a, b byte) (int, bool) {
	if a < '0' || a > '9' || b < '0' || b > '9' {
		return 0, false
	}
	return int(a-'0')*10 + int(b-'0'), true
}
