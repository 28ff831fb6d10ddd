package calendar

import "time"

// Region is the effective resolution context: a calendar identity plus
// the timezone and locale it is evaluated in. It travels with failure
// diagnostics so a rejected bag can be reported in human terms.
type Region struct {
	// Calendar identifies the civil calendar system.
	Calendar Identity
	// Location is the timezone all wall-clock fields are interpreted in.
	Location *time.Location
	// Locale is a BCP 47 tag used only for diagnostics, never for math.
	Locale string
}

// NewRegion builds a Region, defaulting a nil location to UTC and an
// empty locale to "en-US".
func NewRegion(cal Identity, loc *time.Location, locale string) Region {
	if loc == nil {
		loc = time.UTC
	}

	if locale == "" {
		locale = "en-US"
	}

	return Region{Calendar: cal, Location: loc, Locale: locale}
}

// String renders the region for diagnostics, e.g. "gregorian/UTC/en-US".
func (r Region) String() string {
	loc := "UTC"
	if r.Location != nil {
		loc = r.Location.String()
	}

	return r.Calendar.String() + "/" + loc + "/" + r.Locale
}
