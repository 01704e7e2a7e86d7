// Package sorting holds the comparison sort shared by every index addressable container.
//
// The routine only talks to the container through sortable.Interface,
// so a container decides how its elements are compared, and how they are exchanged,
// while the algorithm is written once.
package sorting

import (
	"go.llib.dev/sortkit/pkg/compare"
	"go.llib.dev/sortkit/port/sortable"
)

// Sort reorders the elements of s into non-decreasing order.
//
// It is an exchange sort over adjacent elements:
// every pass moves the greatest unsorted element to the end of the unsorted range,
// and the sort finishes early when a pass does not swap anything.
// Equal elements keep their relative order.
func Sort(s sortable.Interface) {
	n := s.Len()
	for end := n - 1; 0 < end; end-- {
		var swapped bool
		for i := 0; i < end; i++ {
			if compare.IsMore(s.Compare(i, i+1)) {
				s.Swap(i, i+1)
				swapped = true
			}
		}
		if !swapped {
			return
		}
	}
}

// IsSorted reports whether s is in non-decreasing order.
func IsSorted(s sortable.Interface) bool {
	n := s.Len()
	for i := 0; i < n-1; i++ {
		if compare.IsMore(s.Compare(i, i+1)) {
			return false
		}
	}
	return true
}
