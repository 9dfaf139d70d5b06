package wheelpick_test

import (
	"testing"
	"time"

	"github.com/wheelpick/go-wheelpick/internal/assert"
	"github.com/wheelpick/go-wheelpick/wheelpick"
)

func wallClock(hour, minute int) time.Time {
	return time.Date(2020, 1, 1, hour, minute, 0, 0, time.UTC)
}

func TestFixedBoundResolve(t *testing.T) {
	bound := wheelpick.NewFixedBound("09:15")
	resolved := bound.Resolve(wallClock(22, 40), 30)
	assert.Equal(t, resolved, wheelpick.ClockTime{Hour: 9, Minute: 15})
	assert.False(t, bound.IsRelative())
}

func TestRelativeBoundResolve(t *testing.T) {
	tests := []struct {
		name     string
		offset   int
		roundUp  bool
		now      time.Time
		interval int
		expected wheelpick.ClockTime
	}{
		{
			name:     "no offset no rounding",
			now:      wallClock(14, 47),
			interval: 15,
			expected: wheelpick.ClockTime{Hour: 14, Minute: 47},
		},
		{
			name:     "round up carries the hour",
			roundUp:  true,
			now:      wallClock(14, 47),
			interval: 15,
			expected: wheelpick.ClockTime{Hour: 15, Minute: 0},
		},
		{
			name:     "round up on grid is identity",
			roundUp:  true,
			now:      wallClock(14, 45),
			interval: 15,
			expected: wheelpick.ClockTime{Hour: 14, Minute: 45},
		},
		{
			name:     "offset wraps minute into hour",
			offset:   30,
			now:      wallClock(9, 45),
			interval: 1,
			expected: wheelpick.ClockTime{Hour: 10, Minute: 15},
		},
		{
			name:     "offset wraps past midnight",
			offset:   90,
			now:      wallClock(23, 0),
			interval: 1,
			expected: wheelpick.ClockTime{Hour: 0, Minute: 30},
		},
		{
			name:     "negative offset wraps backwards",
			offset:   -30,
			now:      wallClock(0, 10),
			interval: 1,
			expected: wheelpick.ClockTime{Hour: 23, Minute: 40},
		},
		{
			name:     "round up at 23h wraps to midnight",
			roundUp:  true,
			now:      wallClock(23, 55),
			interval: 30,
			expected: wheelpick.ClockTime{Hour: 0, Minute: 0},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			bound := wheelpick.NewRelativeBound(tt.offset, tt.roundUp)
			assert.True(t, bound.IsRelative())
			assert.Equal(t, bound.Resolve(tt.now, tt.interval), tt.expected)
		})
	}
}

func TestBoundDescription(t *testing.T) {
	assert.Equal(t, wheelpick.NewFixedBound("08:00").Description(), "FixedBound at 08:00")
	assert.NotEqual(t, wheelpick.NewRelativeBound(15, true).Description(), "")
}
