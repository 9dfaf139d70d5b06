package wheelpick

// DisplayMode selects between 24-hour and 12-hour wheel labeling.
// It never affects the canonical selected time.
type DisplayMode int

const (
	// Mode24 labels hour rows 0..23, identical to the canonical hour.
	Mode24 DisplayMode = iota
	// Mode12 labels hour rows 1..12; the canonical hour additionally
	// depends on the current AM/PM half.
	Mode12
)

// String returns the display mode label.
func (m DisplayMode) String() string {
	if m == Mode12 {
		return "12h"
	}
	return "24h"
}

// HourRows enumerates the hour-wheel row values for the given mode:
// 1..12 ascending in Mode12, 0..23 in Mode24.
func HourRows(mode DisplayMode) []int {
	if mode == Mode12 {
		rows := make([]int, 12)
		for i := range rows {
			rows[i] = i + 1
		}
		return rows
	}
	rows := make([]int, 24)
	for i := range rows {
		rows[i] = i
	}
	return rows
}

// MinuteRows enumerates the minute-wheel row values for the given
// interval: 0, interval, 2*interval, ... while below 60. The interval
// need not divide 60 evenly.
func MinuteRows(interval int) []int {
	rows := make([]int, 0, 60/interval+1)
	for m := 0; m < 60; m += interval {
		rows = append(rows, m)
	}
	return rows
}

// HourRowIndex maps a canonical hour to its zero-based hour-wheel row
// index under the given mode.
func HourRowIndex(hour int, mode DisplayMode) int {
	if mode == Mode12 {
		hour12 := hour % 12
		if hour12 == 0 {
			hour12 = 12
		}
		return hour12 - 1
	}
	return hour
}

// MinuteRowIndex maps a minute to its minute-wheel row index, snapping
// onto the interval grid first and clamping the result into the row
// range.
func MinuteRowIndex(minute, interval int) int {
	index := GridMinute(minute, interval) / interval
	return clampIndex(index, len(MinuteRows(interval)))
}

// HourForRow translates an hour-row display value back to the
// canonical hour. In Mode12 the translation uses the AM/PM half of
// currentHour: a display value of 12 maps to 0 (AM) or 12 (PM), any
// other value maps to itself (AM) or itself+12 (PM).
func HourForRow(value, currentHour int, mode DisplayMode) int {
	if mode != Mode12 {
		return value
	}
	pm := currentHour >= 12
	if value == 12 {
		if pm {
			return 12
		}
		return 0
	}
	if pm {
		return value + 12
	}
	return value
}

// clampIndex clamps a derived row index into [0, length-1].
func clampIndex(index, length int) int {
	if index < 0 {
		return 0
	}
	if index >= length {
		return length - 1
	}
	return index
}
