package wheelpick

import "time"

// Clock provides the current wall-clock time. Relative bounds and the
// default initial selection are resolved against it; tests substitute
// a fixed implementation.
type Clock interface {
	Now() time.Time
}

// RealClock reads from the standard time package.
type RealClock struct{}

var _ Clock = (*RealClock)(nil)

// Now returns the current local time.
func (RealClock) Now() time.Time { return time.Now() }
