// Package calendar declares the civil calendar identities this library
// can resolve against and their per-calendar properties. The properties
// ship as an embedded YAML catalog; identities are opaque handles whose
// calendar math lives in the engine, never here.
package calendar

import (
	"calendar-resolver/unit"
)

// Identity is an opaque handle to a civil calendar system.
type Identity int

const (
	_ Identity = iota // skip zero value, use it as a default (invalid) value for Identity

	Gregorian
	ISO8601
	Buddhist
	Japanese
	Hebrew

	// IdentityTotal is a constant that represents the total number of identities defined
	IdentityTotal = int(iota)
)

// String returns the catalog name of the identity.
func (id Identity) String() string {
	switch id {
	case Gregorian:
		return "gregorian"
	case ISO8601:
		return "iso8601"
	case Buddhist:
		return "buddhist"
	case Japanese:
		return "japanese"
	case Hebrew:
		return "hebrew"
	default:
		return "unknown"
	}
}

// EraRelevant returns true only for calendars where the era materially
// changes the meaning of a year number. Derived purely from the identity.
func (id Identity) EraRelevant() bool {
	return properties(id).EraRelevant
}

// SISecondsPerSecond returns the ratio of this calendar's second to the
// SI second; 1.0 for every Earth calendar in the shipped catalog. It is
// declared for downstream physics-safe time math and is not consulted by
// the resolution algorithms.
func (id Identity) SISecondsPerSecond() float64 {
	return properties(id).SISecondsPerSecond
}

// LenientUnits returns the subset of requested units whose absence from
// an input bag is tolerated. When era is irrelevant for this calendar,
// era is lenient whenever requested; otherwise no unit is lenient.
func (id Identity) LenientUnits(requested unit.Set) unit.Set {
	if id.EraRelevant() {
		return unit.NewSet()
	}

	if requested.Has(unit.Era) {
		return unit.NewSet(unit.Era)
	}

	return unit.NewSet()
}
