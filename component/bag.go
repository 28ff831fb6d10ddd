// Package component provides the field bag exchanged with the calendar
// engine: a partial mapping from calendar units to integer values where
// an absent unit is unset, not zero.
package component

import (
	"strconv"
	"strings"

	"calendar-resolver/unit"
)

// Bag maps calendar units to integer field values. A unit missing from
// the bag is unset; unset is distinct from a zero value.
type Bag map[unit.Unit]int

// NewBag returns an empty Bag.
func NewBag() Bag {
	return make(Bag)
}

// Set assigns the value for u.
func (b Bag) Set(u unit.Unit, value int) {
	b[u] = value
}

// Value returns the value for u and whether it is set.
func (b Bag) Value(u unit.Unit) (int, bool) {
	v, ok := b[u]
	return v, ok
}

// ValueOr returns the value for u, or fallback if u is unset.
func (b Bag) ValueOr(u unit.Unit, fallback int) int {
	if v, ok := b[u]; ok {
		return v
	}

	return fallback
}

// Has returns true if u is set.
func (b Bag) Has(u unit.Unit) bool {
	_, ok := b[u]
	return ok
}

// Len returns the number of set units.
func (b Bag) Len() int {
	return len(b)
}

// Clone returns an independent copy of the bag.
func (b Bag) Clone() Bag {
	out := make(Bag, len(b))
	for u, v := range b {
		out[u] = v
	}

	return out
}

// Restrict returns a new bag holding only the units of b that are
// members of units.
func (b Bag) Restrict(units unit.Set) Bag {
	out := make(Bag, len(b))

	for u, v := range b {
		if units.Has(u) {
			out[u] = v
		}
	}

	return out
}

// Equal returns true if both bags agree on every unit set in either:
// same set units, same values. A unit set in one bag but not the other
// is a disagreement even if the set value is zero.
func (b Bag) Equal(other Bag) bool {
	if len(b) != len(other) {
		return false
	}

	for u, v := range b {
		ov, ok := other[u]
		if !ok || ov != v {
			return false
		}
	}

	return true
}

// Units returns the set units as a unit.Set.
func (b Bag) Units() unit.Set {
	s := make(unit.Set, len(b))
	for u := range b {
		s[u] = struct{}{}
	}

	return s
}

// String renders the bag in ascending unit order for deterministic
// diagnostics, e.g. "{Day:30 Month:2 Year:2021}".
func (b Bag) String() string {
	var sb strings.Builder

	sb.WriteByte('{')

	first := true

	for _, u := range unit.Ascending {
		v, ok := b[u]
		if !ok {
			continue
		}

		if !first {
			sb.WriteByte(' ')
		}

		first = false

		sb.WriteString(u.String())
		sb.WriteByte(':')
		sb.WriteString(strconv.Itoa(v))
	}

	sb.WriteByte('}')

	return sb.String()
}
