package rewards

import "time"

// NextStreak moves a daily streak to today. Another entry on the same day
// keeps it, an entry on the following day extends it and anything else
// starts over at 1. A last date after today (clock skew) keeps the streak.
// The returned date is always today as a calendar date.
func NextStreak(streak int, last *time.Time, today time.Time) (int, time.Time) {
	today = CalendarDate(today)
	if last == nil {
		return 1, today
	}
	days := int(today.Sub(CalendarDate(*last)).Hours() / 24)
	switch {
	case days == 0:
		return streak, today
	case days == 1:
		return streak + 1, today
	case days > 1:
		return 1, today
	default:
		return streak, today
	}
}

// CalendarDate drops the clock part of t, keeping the date as seen in t's
// location.
func CalendarDate(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
