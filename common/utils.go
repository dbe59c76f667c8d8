package common

import "cmp"

// Coalesce returns the first non-zero value from the provided values, or the zero value if all are zero.
//
// Parameters:
//   - values: a variadic list of values to check for non-zero status
//
// Returns:
//   - T: the first non-zero value from the input, or the zero value if all are zero
func Coalesce[T comparable](values ...T) T {
	var zero T
	for _, v := range values {
		if v != zero {
			return v
		}
	}
	return zero
}

// Clamp limits v to the closed range [low, high].
//
// Parameters:
//   - v: the value to clamp
//   - low: lower bound
//   - high: upper bound
//
// Returns:
//   - T: v limited to [low, high]
func Clamp[T cmp.Ordered](v, low, high T) T {
	return min(max(v, low), high)
}
