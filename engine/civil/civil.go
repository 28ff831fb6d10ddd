// Package civil implements the calendar engine contract on top of the
// standard library time package. It covers the era-irrelevant calendars
// of the catalog: gregorian, iso8601, and buddhist (a fixed year offset
// from gregorian). Era-relevant calendars need a richer engine and are
// refused.
//
// The engine deliberately inherits time.Date's overflow normalization
// (February 30 materializes as March 1 or 2); detecting that is the
// resolver's job, not the engine's.
package civil

import (
	"fmt"
	"time"

	"calendar-resolver/calendar"
	"calendar-resolver/component"
	"calendar-resolver/engine"
	"calendar-resolver/unit"
	"calendar-resolver/utils"
)

// Era numbering for the BC/AD split calendars. The boundary sits at the
// first instant of proleptic year 1.
const (
	eraBC = 0
	eraAD = 1
)

// The buddhist calendar is gregorian shifted by a fixed year offset and
// has a single era.
const (
	eraBE              = 1
	buddhistYearOffset = 543
)

// Engine bounds for the open side of era intervals.
var (
	distantPast   = time.Date(-9999, time.January, 1, 0, 0, 0, 0, time.UTC)
	distantFuture = time.Date(10000, time.January, 1, 0, 0, 0, 0, time.UTC)
)

// Engine resolves era-irrelevant calendars via the time package.
// The zero value is ready to use; it holds no state.
type Engine struct{}

// New returns a civil Engine.
func New() *Engine {
	return &Engine{}
}

var _ engine.Engine = (*Engine)(nil)

// supported returns true for the calendars this engine can interpret.
func supported(id calendar.Identity) bool {
	switch id {
	default:
		return false
	case calendar.Gregorian, calendar.ISO8601, calendar.Buddhist:
		return true
	}
}

// MaterializeInstant builds the instant described by bag, defaulting
// absent date sub-units to 1 and absent clock units to 0. It returns nil
// for calendars this engine does not support and for field values
// outside physical bounds; values inside bounds but impossible for the
// specific month normalize, which the resolver's round trip rejects.
func (e *Engine) MaterializeInstant(bag component.Bag, region calendar.Region) *time.Time {
	if !supported(region.Calendar) {
		return nil
	}

	if !fieldsPlausible(bag, region.Calendar) {
		return nil
	}

	t := time.Date(
		astronomicalYear(bag, region.Calendar),
		time.Month(bag.ValueOr(unit.Month, 1)),
		bag.ValueOr(unit.Day, 1),
		bag.ValueOr(unit.Hour, 0),
		bag.ValueOr(unit.Minute, 0),
		bag.ValueOr(unit.Second, 0),
		bag.ValueOr(unit.Nanosecond, 0),
		region.Location,
	)

	return &t
}

// ReadComponents derives the requested units from at in the region's
// timezone. Calling it for an unsupported calendar is a caller bug.
func (e *Engine) ReadComponents(units unit.Set, at time.Time, region calendar.Region) component.Bag {
	if !supported(region.Calendar) {
		panic(fmt.Sprintf("civil: ReadComponents for unsupported calendar %q", region.Calendar))
	}

	t := at.In(region.Location)
	era, year := displayYear(t.Year(), region.Calendar)

	bag := component.NewBag()

	for _, u := range units.Units() {
		switch u {
		case unit.Nanosecond:
			bag.Set(u, t.Nanosecond())
		case unit.Second:
			bag.Set(u, t.Second())
		case unit.Minute:
			bag.Set(u, t.Minute())
		case unit.Hour:
			bag.Set(u, t.Hour())
		case unit.Day:
			bag.Set(u, t.Day())
		case unit.Month:
			bag.Set(u, int(t.Month()))
		case unit.Year:
			bag.Set(u, year)
		case unit.Era:
			bag.Set(u, era)
		}
	}

	return bag
}

// UnitInterval reports the occurrence of u containing at, truncating in
// the region's timezone so day spans follow DST transitions. It returns
// false only when asked about a calendar or unit outside its contract.
func (e *Engine) UnitInterval(at time.Time, u unit.Unit, region calendar.Region) (engine.Range, bool) {
	if !supported(region.Calendar) {
		return engine.Range{}, false
	}

	loc := region.Location
	t := at.In(loc)
	year, month, day := t.Date()

	var start, end time.Time

	switch u {
	case unit.Nanosecond:
		start = t
		end = t.Add(time.Nanosecond)
	case unit.Second:
		start = t.Truncate(time.Second)
		end = start.Add(time.Second)
	case unit.Minute:
		start = t.Truncate(time.Minute)
		end = start.Add(time.Minute)
	case unit.Hour:
		// Truncate within the instant's actual zone offset. Wall-field
		// construction would collapse the repeated hour of a DST fall-back
		// into a two-hour span, and plain Truncate misaligns in zones with
		// half-hour offsets.
		_, off := t.Zone()
		shift := time.Duration(off) * time.Second
		start = t.Add(shift).Truncate(time.Hour).Add(-shift)
		end = start.Add(time.Hour)
	case unit.Day:
		start = time.Date(year, month, day, 0, 0, 0, 0, loc)
		end = time.Date(year, month, day+1, 0, 0, 0, 0, loc)
	case unit.Month:
		start = time.Date(year, month, 1, 0, 0, 0, 0, loc)
		end = time.Date(year, month+1, 1, 0, 0, 0, 0, loc)
	case unit.Year:
		start = time.Date(year, time.January, 1, 0, 0, 0, 0, loc)
		end = time.Date(year+1, time.January, 1, 0, 0, 0, 0, loc)
	case unit.Era:
		boundary := eraBoundary(region.Calendar, loc)
		if t.Before(boundary) {
			start, end = distantPast, boundary
		} else {
			start, end = boundary, distantFuture
		}
	default:
		return engine.Range{}, false
	}

	return engine.Range{Start: start, End: end}, true
}

// fieldsPlausible bounds every set field to its physically possible
// range, independent of the specific month or year.
func fieldsPlausible(bag component.Bag, id calendar.Identity) bool {
	checks := []struct {
		u      unit.Unit
		lo, hi int
	}{
		{unit.Nanosecond, 0, int(time.Second) - 1},
		{unit.Second, 0, 59},
		{unit.Minute, 0, 59},
		{unit.Hour, 0, 23},
		{unit.Day, 1, 31},
		{unit.Month, 1, 12},
	}

	for _, c := range checks {
		if v, ok := bag.Value(c.u); ok && !utils.IsInRange(c.lo, v, c.hi) {
			return false
		}
	}

	if era, ok := bag.Value(unit.Era); ok {
		switch id {
		case calendar.Buddhist:
			if era != eraBE {
				return false
			}
		default:
			if !utils.IsInRange(eraBC, era, eraAD) {
				return false
			}
		}

		// Year numbers are 1-based within an era.
		if id != calendar.Buddhist {
			if y, ok := bag.Value(unit.Year); ok && y < 1 {
				return false
			}
		}
	}

	return true
}

// astronomicalYear maps the bag's (era, year) pair to the proleptic year
// the time package uses: ..., -1, 0, 1, 2, ... with year 1 = AD 1.
// A bag without era reads its year as already proleptic for the BC/AD
// calendars, which matches the AD numbering for every year >= 1. Era
// values were bounds-checked by fieldsPlausible before this runs.
func astronomicalYear(bag component.Bag, id calendar.Identity) int {
	year := bag.ValueOr(unit.Year, 1)

	if id == calendar.Buddhist {
		return year - buddhistYearOffset
	}

	era, ok := bag.Value(unit.Era)
	if !ok || era == eraAD {
		return year
	}

	// era == eraBC: 1 BC is proleptic year 0, 2 BC is -1, and so on.
	return 1 - year
}

// displayYear is the inverse of astronomicalYear.
func displayYear(astro int, id calendar.Identity) (era, year int) {
	if id == calendar.Buddhist {
		return eraBE, astro + buddhistYearOffset
	}

	if astro >= 1 {
		return eraAD, astro
	}

	return eraBC, 1 - astro
}

// eraBoundary is the first instant of the calendar's current era.
func eraBoundary(id calendar.Identity, loc *time.Location) time.Time {
	firstYear := 1
	if id == calendar.Buddhist {
		firstYear = 1 - buddhistYearOffset
	}

	return time.Date(firstYear, time.January, 1, 0, 0, 0, 0, loc)
}
