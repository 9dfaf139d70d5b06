package wheelpick

// TimePredicate reports whether the given canonical hour and minute
// should be rejected. Predicates must be pure and non-blocking; they
// are re-invoked on every validity check and never memoized.
// Composable implementations are located in the matcher package.
type TimePredicate func(hour, minute int) bool

// Constraints is the full set of checks applied to a candidate
// selection. An inverted range (Min after Max) is legal and simply
// leaves no valid minute in the day.
type Constraints struct {
	Min, Max       *ClockTime
	DisabledHours  map[int]struct{}
	DisableTime    TimePredicate
	MinuteInterval int
}

// disabledHourSet builds the constant-time lookup set for a
// disabled-hours list.
func disabledHourSet(hours []int) map[int]struct{} {
	if len(hours) == 0 {
		return nil
	}
	set := make(map[int]struct{}, len(hours))
	for _, h := range hours {
		set[h] = struct{}{}
	}
	return set
}

// Check reports whether t passes all four constraint checks: at or
// after Min, at or before Max, hour not disabled, and not rejected by
// the predicate.
func (c Constraints) Check(t ClockTime) bool {
	total := t.TotalMinutes()
	if c.Min != nil && total < c.Min.TotalMinutes() {
		return false
	}
	if c.Max != nil && total > c.Max.TotalMinutes() {
		return false
	}
	if _, disabled := c.DisabledHours[t.Hour]; disabled {
		return false
	}
	if c.DisableTime != nil && c.DisableTime(t.Hour, t.Minute) {
		return false
	}
	return true
}

// HourFeasible reports the coarse per-hour feasibility used to dim
// hour rows: the hour must not be disabled and must fall within the
// hour components of the current bounds.
func (c Constraints) HourFeasible(hour int) bool {
	if _, disabled := c.DisabledHours[hour]; disabled {
		return false
	}
	minHour, maxHour := 0, 23
	if c.Min != nil {
		minHour = c.Min.Hour
	}
	if c.Max != nil {
		maxHour = c.Max.Hour
	}
	return hour >= minHour && hour <= maxHour
}
