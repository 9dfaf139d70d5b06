package wheelpick

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// ClockTime is a wall-clock time of day. The canonical representation
// is always 24-hour; DisplayMode affects row labeling only, never the
// canonical value.
type ClockTime struct {
	Hour   int
	Minute int
}

// ParseClockTime parses a zero-padded "HH:MM" string into a ClockTime.
// The parse is lenient: a malformed hour or minute component degrades
// to 0 instead of failing, so bad input yields a visibly wrong
// selection rather than an error.
func ParseClockTime(value string) ClockTime {
	hour, minute, _ := strings.Cut(value, ":")
	return ClockTime{Hour: atoi(hour), Minute: atoi(minute)}
}

// ClockTimeAt extracts the ClockTime components of t.
func ClockTimeAt(t time.Time) ClockTime {
	return ClockTime{Hour: t.Hour(), Minute: t.Minute()}
}

// clockTimeOfTotal converts minutes since midnight back to a
// ClockTime, wrapping at 24 hours.
func clockTimeOfTotal(total int) ClockTime {
	total = ((total % minutesPerDay) + minutesPerDay) % minutesPerDay
	return ClockTime{Hour: total / 60, Minute: total % 60}
}

const minutesPerDay = 24 * 60

// TotalMinutes returns the number of minutes since midnight.
func (t ClockTime) TotalMinutes() int {
	return t.Hour*60 + t.Minute
}

// String returns the canonical zero-padded "HH:MM" representation.
func (t ClockTime) String() string {
	return fmt.Sprintf("%02d:%02d", t.Hour, t.Minute)
}

// Format returns the display representation of t under the given mode,
// e.g. "14:05" in Mode24 and "02:05 PM" in Mode12.
func (t ClockTime) Format(mode DisplayMode) string {
	if mode == Mode24 {
		return t.String()
	}
	period := "AM"
	if t.Hour >= 12 {
		period = "PM"
	}
	hour12 := t.Hour % 12
	if hour12 == 0 {
		hour12 = 12
	}
	return fmt.Sprintf("%02d:%02d %s", hour12, t.Minute, period)
}

// RoundToInterval rounds value to the nearest multiple of interval,
// half away from zero.
func RoundToInterval(value, interval int) int {
	return (value + interval/2) / interval * interval
}

// GridMinute snaps a raw minute onto the interval grid, wrapping at 60.
// Rounding 58 with interval 30 yields 0; whether the wrap carries into
// the hour is the caller's decision.
func GridMinute(minute, interval int) int {
	return RoundToInterval(minute, interval) % 60
}

// atoi implements an unsafe strconv.Atoi.
func atoi(str string) int {
	i, _ := strconv.Atoi(str)
	return i
}
