// Package collection provides ready to use sortable containers.
//
// Array backed collections share a single sort routine from the sorting package
// and differ only in the comparison rule they use for their elements.
// NumberList is the linked list counterpart, sorted with the same numeric ordering.
package collection

import (
	"iter"
	"slices"

	"go.llib.dev/sortkit/internal/constraints"
	"go.llib.dev/sortkit/pkg/compare"
	"go.llib.dev/sortkit/pkg/datastruct"
	"go.llib.dev/sortkit/pkg/sorting"
	"go.llib.dev/sortkit/port/sortable"
)

// Collection is an ordered, mutable sequence of elements, sortable by its comparison rule.
// Data holds the elements in their active order, which is the insertion order until Sort is called.
type Collection[T any] struct {
	Data []T

	cmp compare.Func[T]
}

// New creates a Collection that holds vs and sorts them by cmp.
// A nil vs results in an empty collection.
func New[T any](cmp compare.Func[T], vs ...T) *Collection[T] {
	if cmp == nil {
		panic("collection.New: nil compare.Func")
	}
	return &Collection[T]{Data: vs, cmp: cmp}
}

var (
	_ sortable.Interface      = &Collection[int]{}
	_ sortable.Container[int] = &Collection[int]{}
)

func (c *Collection[T]) Len() int {
	return len(c.Data)
}

func (c *Collection[T]) Compare(i, j int) int {
	return c.cmp(c.Data[i], c.Data[j])
}

func (c *Collection[T]) Swap(i, j int) {
	c.Data[i], c.Data[j] = c.Data[j], c.Data[i]
}

// Sort reorders Data in place into non-decreasing order.
func (c *Collection[T]) Sort() {
	sorting.Sort(c)
}

func (c *Collection[T]) Iter() iter.Seq[T] {
	return slices.Values(c.Data)
}

// ToSlice returns a copy of Data.
func (c *Collection[T]) ToSlice() []T {
	return slices.Clone(c.Data)
}

// Numbers is a collection of numeric values ordered by magnitude.
type Numbers[N constraints.Number] struct {
	Collection[N]
}

func NewNumbers[N constraints.Number](vs ...N) *Numbers[N] {
	return &Numbers[N]{Collection: Collection[N]{Data: vs, cmp: compare.Numbers[N]}}
}

// Characters is a collection of the Unicode code points of a text,
// ordered by code point value.
// With this ordering all upper case ASCII letters come before lower case ones.
type Characters struct {
	Collection[rune]
}

func NewCharacters(s string) *Characters {
	return &Characters{Collection: Collection[rune]{Data: []rune(s), cmp: compare.Characters[rune]}}
}

// String returns the characters in their current order.
func (c *Characters) String() string {
	return string(c.Data)
}

// NumberList is a linked list of numbers that sorts by magnitude.
type NumberList[N constraints.Number] struct {
	datastruct.LinkedList[N]
}

var _ sortable.Container[int] = &NumberList[int]{}

func (ll *NumberList[N]) Sort() {
	ll.SortFunc(compare.Numbers[N])
}
