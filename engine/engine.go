// Package engine declares the contract with the system calendar engine,
// the external collaborator that owns all civil calendar math (leap
// years, month lengths, era transitions, timezone offsets). The resolver
// only calls through this interface; it never computes calendar
// arithmetic itself.
package engine

import (
	"time"

	"calendar-resolver/calendar"
	"calendar-resolver/component"
	"calendar-resolver/unit"
)

// Engine is the system calendar collaborator.
//
// Implementations must be deterministic (no dependency on wall-clock
// now) and safe for concurrent read access.
type Engine interface {
	// MaterializeInstant returns the absolute instant described by bag in
	// the given region, or nil when no valid instant exists for the
	// combination. Implementations may normalize field overflow instead of
	// detecting it; the resolver's round-trip check is what turns silent
	// normalization into an error.
	MaterializeInstant(bag component.Bag, region calendar.Region) *time.Time

	// ReadComponents derives the requested units from an instant. Total:
	// every instant has a value for every unit.
	ReadComponents(units unit.Set, at time.Time, region calendar.Region) component.Bag

	// UnitInterval reports the single occurrence of u that contains at.
	// The calendar contract guarantees one exists for every instant, so a
	// false result is a contract breach, not a data condition.
	UnitInterval(at time.Time, u unit.Unit, region calendar.Region) (Range, bool)
}

// Range is one occurrence of a calendar unit as a half-open instant
// interval [Start, End). The end instant is carried instead of a
// duration because the era unit spans more than time.Duration can hold.
type Range struct {
	// Start is the first instant of the occurrence, inclusive.
	Start time.Time
	// End is the first instant after the occurrence, exclusive.
	End time.Time
}

// Contains returns true if at lies within the interval.
func (r Range) Contains(at time.Time) bool {
	return !at.Before(r.Start) && at.Before(r.End)
}

// Duration returns the interval width. It overflows for era-sized
// intervals; callers interested in eras should compare instants instead.
func (r Range) Duration() time.Duration {
	return r.End.Sub(r.Start)
}
