// Package sortable describes the roles a container plays when it is being sorted.
package sortable

import "iter"

//go:generate mockgen -destination ../../internal/mocks/sortable.go -package mocks go.llib.dev/sortkit/port/sortable Interface

// Interface is what the sorting routines need to reorder a container in place.
// The methods refer to elements of the underlying collection by integer index.
type Interface interface {
	// Len is the number of elements in the collection.
	Len() int
	// Compare reports the ordering between the elements with index i and j.
	// The result is negative when i comes first, zero when they are equal and positive when j comes first.
	Compare(i, j int) int
	// Swap swaps the elements with indexes i and j.
	Swap(i, j int)
}

// Container is a collection that can sort itself according to its own comparison rule,
// and expose its elements in their active order.
//
// After Sort returns, Iter must yield the elements in non-decreasing order,
// with exactly the same elements as before the sort.
type Container[T any] interface {
	Sort()
	Iter() iter.Seq[T]
	Len() int
}
