package unit

import "strings"

//go:generate go tool stringer -type=Unit -output=unit_string.go

// Unit is a single calendar field unit, from sub-second precision up to era.
type Unit int

const (
	_ Unit = iota // skip zero value, use it as a default (invalid) value for Unit

	Nanosecond
	Second
	Minute
	Hour
	Day
	Month
	Year
	Era

	// UnitTotal is a constant that represents the total number of units defined
	UnitTotal = int(iota)
)

// IsClockUnit returns true for units that describe the time of day,
// including sub-second precision.
func (u Unit) IsClockUnit() bool {
	switch u {
	default:
		return false
	case Nanosecond, Second, Minute, Hour:
		return true
	}
}

// IsDateUnit returns true for units that describe the calendar date.
func (u Unit) IsDateUnit() bool {
	switch u {
	default:
		return false
	case Day, Month, Year, Era:
		return true
	}
}

// Parse returns the unit named by s, matching String() case-insensitively.
// The second result is false if s names no unit.
func Parse(s string) (Unit, bool) {
	for _, u := range Ascending {
		if strings.EqualFold(s, u.String()) {
			return u, true
		}
	}

	return 0, false
}
