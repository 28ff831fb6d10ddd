package utils

import "cmp"

// IsInRange checks if a value is within the specified range, both inclusive.
func IsInRange[T cmp.Ordered](lo T, value T, hi T) bool {
	return lo <= value && value <= hi
}
