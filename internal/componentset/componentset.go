// Package componentset validates a requested unit set against an input
// component bag: the bag is narrowed to the significant units, and every
// significant unit that is not lenient must actually be present.
package componentset

import (
	"calendar-resolver/component"
	"calendar-resolver/unit"
)

// Restrict narrows bag to the matching units and reports which required
// units are missing. Units in lenient are exempt from the presence
// check. The missing slice is in ascending unit order.
func Restrict(bag component.Bag, matching, lenient unit.Set) (component.Bag, []unit.Unit) {
	restricted := bag.Restrict(matching)

	var missing []unit.Unit

	for _, u := range matching.Units() {
		if lenient.Has(u) || restricted.Has(u) {
			continue
		}

		missing = append(missing, u)
	}

	return restricted, missing
}
