package matcher

import (
	"github.com/wheelpick/go-wheelpick/wheelpick"
)

// Window rejects times inside the inclusive [start, end] window, both
// given as zero-padded "HH:MM" strings. A window whose end precedes
// its start wraps around midnight, so Window("22:00", "02:00") rejects
// late evening and early morning times.
func Window(start, end string) wheelpick.TimePredicate {
	startTotal := wheelpick.ParseClockTime(start).TotalMinutes()
	endTotal := wheelpick.ParseClockTime(end).TotalMinutes()
	return func(hour, minute int) bool {
		total := wheelpick.ClockTime{Hour: hour, Minute: minute}.TotalMinutes()
		if startTotal <= endTotal {
			return total >= startTotal && total <= endTotal
		}
		return total >= startTotal || total <= endTotal
	}
}
