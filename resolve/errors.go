package resolve

import (
	"errors"
	"fmt"

	"calendar-resolver/calendar"
	"calendar-resolver/component"
)

// ErrInvalidComponents matches any InvalidComponentsError via errors.Is.
var ErrInvalidComponents = errors.New("invalid components for calendar region")

// InvalidComponentsError reports a component bag the calendar cannot
// represent: either required units were missing from the input, or the
// round-trip check detected that the engine normalized the fields.
// It is always recoverable by the caller; the input itself is at fault.
type InvalidComponentsError struct {
	// Bag is the rejected component bag, already restricted to the
	// significant units.
	Bag component.Bag
	// Region is the effective resolution context the bag was rejected in.
	Region calendar.Region
	// Missing lists required units absent from the input, in ascending
	// order. Empty when the round-trip check failed instead.
	Missing []string
}

// Error implements the error interface.
func (e *InvalidComponentsError) Error() string {
	if len(e.Missing) > 0 {
		return fmt.Sprintf("invalid components %s for calendar region %s: missing required units %v",
			e.Bag, e.Region, e.Missing)
	}

	return fmt.Sprintf("invalid components %s for calendar region %s", e.Bag, e.Region)
}

// Is reports a match against the ErrInvalidComponents sentinel.
func (e *InvalidComponentsError) Is(target error) bool {
	return target == ErrInvalidComponents
}
