// Package matcher provides composable disable-time predicates for the
// wheelpick engine. Each constructor returns a wheelpick.TimePredicate
// suitable for the Options.DisableTime field; predicates report true
// for times that must be rejected.
package matcher

import (
	"github.com/wheelpick/go-wheelpick/wheelpick"
)

// Any combines predicates with OR semantics: a time is rejected when
// any of the given predicates rejects it.
func Any(predicates ...wheelpick.TimePredicate) wheelpick.TimePredicate {
	return func(hour, minute int) bool {
		for _, predicate := range predicates {
			if predicate != nil && predicate(hour, minute) {
				return true
			}
		}
		return false
	}
}

// Hours rejects any time whose canonical hour is in the given list.
func Hours(hours ...int) wheelpick.TimePredicate {
	set := make(map[int]struct{}, len(hours))
	for _, h := range hours {
		set[h] = struct{}{}
	}
	return func(hour, _ int) bool {
		_, rejected := set[hour]
		return rejected
	}
}
