// Package resolve converts symbolic calendar field bags into absolute
// instants and back, rejecting any combination the calendar engine would
// silently normalize. Naive calendar APIs turn "February 30" into
// "March 2"; this resolver materializes the instant, reads the fields
// back, and fails unless they survived the round trip unchanged.
package resolve

import (
	"fmt"
	"time"

	"calendar-resolver/calendar"
	"calendar-resolver/component"
	"calendar-resolver/engine"
	"calendar-resolver/internal/componentset"
	"calendar-resolver/unit"
)

// Resolver resolves component bags against one calendar region. It is a
// pure function of its inputs plus the immutable region; concurrent use
// is safe whenever the engine is safe for concurrent reads.
type Resolver struct {
	engine engine.Engine
	region calendar.Region
}

// New creates a Resolver for the given engine and region.
func New(eng engine.Engine, region calendar.Region) *Resolver {
	if eng == nil {
		panic("resolve: nil calendar engine")
	}

	return &Resolver{engine: eng, region: region}
}

// Region returns the resolution context this resolver operates in.
func (r *Resolver) Region() calendar.Region {
	return r.region
}

// ExactDate resolves bag into the single instant whose fields, read back
// over the matching units, equal the input. It runs a three-step
// pipeline: restrict-and-require, materialize-or-fail, then
// read-back-and-compare. Each step either produces the next step's input
// or an *InvalidComponentsError.
//
// Units in matching are the ones the caller declares significant; units
// the calendar marks lenient (era, where era is irrelevant) may be
// omitted and are filled in from the read-back instead of rejected.
func (r *Resolver) ExactDate(bag component.Bag, matching unit.Set) (time.Time, error) {
	// Declaring no unit significant is a caller bug, the same shape as an
	// empty set passed to unit.Smallest.
	if matching.IsEmpty() {
		panic("resolve: ExactDate called with an empty matching unit set")
	}

	lenient := r.region.Calendar.LenientUnits(matching)

	restricted, err := r.restrictRequired(bag, matching, lenient)
	if err != nil {
		return time.Time{}, err
	}

	at, err := r.materialize(restricted)
	if err != nil {
		return time.Time{}, err
	}

	if err := r.readBackCompare(restricted, matching, lenient, at); err != nil {
		return time.Time{}, err
	}

	return at, nil
}

// restrictRequired narrows bag to the matching units and fails if any
// non-lenient matching unit is absent.
func (r *Resolver) restrictRequired(bag component.Bag, matching, lenient unit.Set) (component.Bag, error) {
	restricted, missing := componentset.Restrict(bag, matching, lenient)
	if len(missing) > 0 {
		names := make([]string, len(missing))
		for i, u := range missing {
			names[i] = u.String()
		}

		return nil, &InvalidComponentsError{Bag: restricted, Region: r.region, Missing: names}
	}

	return restricted, nil
}

// materialize asks the engine for the instant described by the
// restricted bag.
func (r *Resolver) materialize(restricted component.Bag) (time.Time, error) {
	at := r.engine.MaterializeInstant(restricted, r.region)
	if at == nil {
		return time.Time{}, &InvalidComponentsError{Bag: restricted.Clone(), Region: r.region}
	}

	return *at, nil
}

// readBackCompare re-derives the matching units from the materialized
// instant and requires structural equality with the input. Lenient units
// the caller omitted are adopted from the read-back first, so a
// don't-care era never counts as a mismatch. Anything else that changed
// means the engine normalized the input, which is exactly the failure
// this resolver exists to surface.
func (r *Resolver) readBackCompare(restricted component.Bag, matching, lenient unit.Set, at time.Time) error {
	readBack := r.engine.ReadComponents(matching, at, r.region)

	compared := restricted.Clone()

	for _, u := range lenient.Units() {
		if compared.Has(u) {
			continue
		}

		if v, ok := readBack.Value(u); ok {
			compared.Set(u, v)
		}
	}

	if !compared.Equal(readBack) {
		return &InvalidComponentsError{Bag: restricted, Region: r.region}
	}

	return nil
}

// Range returns the half-open occurrence of the finest unit in units
// that contains at. The calendar contract guarantees every instant
// belongs to exactly one occurrence of every unit, so the engine failing
// to produce one is a broken collaborator and panics; it is never a
// caller-facing error. An empty unit set panics for the same reason.
func (r *Resolver) Range(at time.Time, units unit.Set) engine.Range {
	u := unit.Smallest(units)

	rng, ok := r.engine.UnitInterval(at, u, r.region)
	if !ok {
		panic(fmt.Sprintf("resolve: calendar engine produced no %s interval containing %s in region %s",
			u, at.Format(time.RFC3339Nano), r.region))
	}

	return rng
}
