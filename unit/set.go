package unit

// Set is an unordered set of calendar units.
type Set map[Unit]struct{}

// NewSet returns a Set containing the given units.
func NewSet(units ...Unit) Set {
	s := make(Set, len(units))
	for _, u := range units {
		s[u] = struct{}{}
	}

	return s
}

// Has returns true if u is a member of the set.
func (s Set) Has(u Unit) bool {
	_, ok := s[u]
	return ok
}

// IsEmpty returns true if the set has no members.
func (s Set) IsEmpty() bool {
	return len(s) == 0
}

// Len returns the number of members.
func (s Set) Len() int {
	return len(s)
}

// Units returns the members in ascending (finest first) order,
// for deterministic iteration.
func (s Set) Units() []Unit {
	out := make([]Unit, 0, len(s))

	for _, u := range Ascending {
		if s.Has(u) {
			out = append(out, u)
		}
	}

	return out
}
