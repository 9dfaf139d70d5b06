package wheelpick

import (
	"fmt"
	"time"
)

// Bound is an optional minimum or maximum acceptable time of day.
// Implementations resolve to a concrete ClockTime against a wall-clock
// instant; relative bounds are re-resolved periodically while the
// picker is open.
type Bound interface {
	// Resolve produces the concrete bound value for the given
	// wall-clock time and minute interval.
	Resolve(now time.Time, interval int) ClockTime

	// IsRelative reports whether the bound depends on the wall clock
	// and must be kept fresh while the picker is open.
	IsRelative() bool

	// Description returns the description of the bound.
	Description() string
}

// FixedBound is a Bound anchored to an explicit time of day.
type FixedBound struct {
	Time ClockTime
}

var _ Bound = (*FixedBound)(nil)

// NewFixedBound returns a new FixedBound parsed from a zero-padded
// "HH:MM" string. The parse is lenient, see ParseClockTime.
func NewFixedBound(value string) *FixedBound {
	return &FixedBound{Time: ParseClockTime(value)}
}

// Resolve returns the fixed time unchanged.
func (b *FixedBound) Resolve(_ time.Time, _ int) ClockTime {
	return b.Time
}

// IsRelative returns false; fixed bounds never re-resolve.
func (b *FixedBound) IsRelative() bool { return false }

// Description returns the description of the FixedBound.
func (b *FixedBound) Description() string {
	return fmt.Sprintf("FixedBound at %s", b.Time)
}

// RelativeBound is a Bound anchored to the current wall-clock time,
// shifted by OffsetMinutes and optionally rounded up to the next
// minute-interval boundary.
type RelativeBound struct {
	OffsetMinutes int
	RoundUp       bool
}

var _ Bound = (*RelativeBound)(nil)

// NewRelativeBound returns a new RelativeBound with the given offset.
// When roundUp is set, the resolved minute is rounded up to the next
// multiple of the picker's minute interval, carrying into the hour
// (wrapping at 24) when rounding reaches 60.
func NewRelativeBound(offsetMinutes int, roundUp bool) *RelativeBound {
	return &RelativeBound{OffsetMinutes: offsetMinutes, RoundUp: roundUp}
}

// Resolve shifts now by the offset, wrapping modulo 24 hours, and
// applies the optional round-up.
func (b *RelativeBound) Resolve(now time.Time, interval int) ClockTime {
	t := clockTimeOfTotal(now.Hour()*60 + now.Minute() + b.OffsetMinutes)
	if b.RoundUp {
		if rem := t.Minute % interval; rem != 0 {
			t.Minute += interval - rem
			if t.Minute >= 60 {
				t.Minute = 0
				t.Hour = (t.Hour + 1) % 24
			}
		}
	}
	return t
}

// IsRelative returns true.
func (b *RelativeBound) IsRelative() bool { return true }

// Description returns the description of the RelativeBound.
func (b *RelativeBound) Description() string {
	return fmt.Sprintf("RelativeBound now%+dm, roundUp=%t", b.OffsetMinutes, b.RoundUp)
}

// resolveBound applies the nil-bound rule: an absent spec resolves to
// an absent bound.
func resolveBound(b Bound, now time.Time, interval int) *ClockTime {
	if b == nil {
		return nil
	}
	resolved := b.Resolve(now, interval)
	return &resolved
}
