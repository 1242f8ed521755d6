package schedule

import (
	"errors"
	"math"
	"time"
)

// MaxDays caps the length of any plan.
const MaxDays = 31

// ErrInvalidRange is returned when the end date precedes the start date.
var ErrInvalidRange = errors.New("end date is before start date")

// DayCount returns min(MaxDays, ceil(end-start in days)+1).
func DayCount(start, end time.Time) (int, error) {
	if end.Before(start) {
		return 0, ErrInvalidRange
	}
	days := int(math.Ceil(end.Sub(start).Hours()/24)) + 1
	return min(days, MaxDays), nil
}

// DateForDay returns the calendar date of a 1-based day number.
func DateForDay(start time.Time, day int) time.Time {
	return startOfDay(start).AddDate(0, 0, day-1)
}

// SameDay reports whether a and b fall on the same calendar date, compared
// in a's location.
func SameDay(a, b time.Time) bool {
	b = b.In(a.Location())
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}

func startOfDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}
