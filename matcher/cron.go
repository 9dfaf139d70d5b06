package matcher

import (
	"fmt"
	"time"

	"github.com/gorhill/cronexpr"

	"github.com/wheelpick/go-wheelpick/wheelpick"
)

// Cron rejects times matching the minute and hour fields of a standard
// five-field cron expression, e.g. "* 12 * * *" rejects the entire
// lunch hour and "0,30 * * * *" rejects the half-hour marks. Day-level
// fields are evaluated against the current date.
func Cron(expression string) (wheelpick.TimePredicate, error) {
	expr, err := cronexpr.Parse(expression)
	if err != nil {
		return nil, fmt.Errorf("parse cron expression: %w", err)
	}
	return func(hour, minute int) bool {
		now := time.Now()
		ref := time.Date(now.Year(), now.Month(), now.Day(), hour, minute, 0, 0, now.Location())
		// ref matches the expression iff it is the first fire time
		// strictly after the preceding second.
		return expr.Next(ref.Add(-time.Second)).Equal(ref)
	}, nil
}
