package compare

import (
	"cmp"

	"go.llib.dev/sortkit/internal/constraints"
)

// Func is a comparison rule over T.
//
// It returns:
//   - a negative number if a is less than b,
//   - zero if they are equal,
//   - a positive number if a is greater than b.
//
// A Func must describe a consistent ordering,
// otherwise the sorting routines that depend on it can't guarantee a non-decreasing result.
type Func[T any] func(a, b T) int

// Interface defines how comparison can be implemented by a value itself.
//
// Example usage:
//
//	type Priority int
//
//	func (p Priority) Compare(other Priority) int {
//		return compare.Numbers(p, other)
//	}
type Interface[T any] interface {
	// Compare returns:
	//   -1 if receiver is less than the argument,
	//    0 if they're equal, and
	//   +1 if receiver is greater.
	Compare(T) int
}

// IsEqual reports whether two values are equal based on their comparison result.
func IsEqual(cmp int) bool {
	return cmp == 0
}

// IsLess reports whether the receiver is less than another value.
func IsLess(cmp int) bool {
	return cmp < 0
}

// IsLessOrEqual reports whether the receiver is less than or equal to another value.
func IsLessOrEqual(cmp int) bool {
	return cmp <= 0
}

// IsMore reports whether the receiver is greater than another value.
func IsMore(cmp int) bool {
	return 0 < cmp
}

// IsMoreOrEqual reports whether the receiver is more than or equal to another value.
func IsMoreOrEqual(cmp int) bool {
	return 0 <= cmp
}

// Numbers orders numeric values by their magnitude.
//
// NaN is ordered before every other value and equal to another NaN,
// so the ordering stays total for floating point input.
func Numbers[N constraints.Number](a, b N) int {
	return cmp.Compare(a, b)
}

// Characters orders characters by their code point.
// There is no locale aware collation, so every upper case ASCII letter comes before the lower case ones.
func Characters[C constraints.Character](a, b C) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}

// Comparable turns a type that knows how to compare itself into a Func.
func Comparable[T Interface[T]](a, b T) int {
	return a.Compare(b)
}

// Reverse flips the ordering of a comparison rule.
func Reverse[T any](cmp Func[T]) Func[T] {
	return func(a, b T) int { return cmp(b, a) }
}
