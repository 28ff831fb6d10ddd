package unit

// Ascending is the fixed total order over all units, finest first.
// It is written out explicitly rather than derived from the constant
// values so the ranking survives any renumbering of the enum.
var Ascending = [...]Unit{
	Nanosecond,
	Second,
	Minute,
	Hour,
	Day,
	Month,
	Year,
	Era,
}

// Descending is the exact reverse of Ascending, coarsest first.
var Descending = [...]Unit{
	Era,
	Year,
	Month,
	Day,
	Hour,
	Minute,
	Second,
	Nanosecond,
}

// Smallest returns the finest unit present in s.
// An empty set is a caller bug, not bad input data, and panics.
func Smallest(s Set) Unit {
	for _, u := range Ascending {
		if s.Has(u) {
			return u
		}
	}

	panic("unit: Smallest called with an empty unit set")
}

// Largest returns the coarsest unit present in s.
// An empty set is a caller bug, not bad input data, and panics.
func Largest(s Set) Unit {
	for _, u := range Descending {
		if s.Has(u) {
			return u
		}
	}

	panic("unit: Largest called with an empty unit set")
}
