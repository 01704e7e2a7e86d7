package datastruct

import (
	"fmt"
	"io"
	"iter"

	"go.llib.dev/sortkit/pkg/compare"
)

// LinkedList is an append only singly linked list.
// The zero value is an empty list ready to use.
//
// The list exclusively owns its chain of nodes,
// nodes are never shared between lists, and the chain is always acyclic.
type LinkedList[T any] struct {
	head   *llNode[T]
	tail   *llNode[T]
	length int
}

type llNode[T any] struct {
	value T
	next  *llNode[T]
}

// Add appends the values at the end of the list, in the order they were given.
func (ll *LinkedList[T]) Add(vs ...T) {
	for _, v := range vs {
		ll.add(v)
	}
}

func (ll *LinkedList[T]) add(v T) {
	n := &llNode[T]{value: v}
	if ll.tail == nil {
		ll.head = n
		ll.tail = n
	} else {
		ll.tail.next = n
		ll.tail = n
	}
	ll.length++
}

// Len returns the number of elements in the list
func (ll *LinkedList[T]) Len() int {
	if ll == nil {
		return 0
	}
	return ll.length
}

// Iter traverses the chain from head to tail.
// Every call starts a new traversal from the current head.
func (ll *LinkedList[T]) Iter() iter.Seq[T] {
	return func(yield func(T) bool) {
		if ll == nil {
			return
		}
		for current := ll.head; current != nil; current = current.next {
			if !yield(current.value) {
				return
			}
		}
	}
}

// Print writes every value on its own line in chain order.
func (ll *LinkedList[T]) Print(w io.Writer) error {
	for v := range ll.Iter() {
		if _, err := fmt.Fprintln(w, v); err != nil {
			return err
		}
	}
	return nil
}

// ToSlice copies the values into a new slice in chain order.
// An empty list yields a nil slice.
func (ll *LinkedList[T]) ToSlice() []T {
	var vs []T
	for v := range ll.Iter() {
		vs = append(vs, v)
	}
	return vs
}

// Lookup returns the value at the zero based index.
// The second return value is false when the index is out of range.
func (ll *LinkedList[T]) Lookup(index int) (T, bool) {
	if index < 0 || ll.Len() <= index {
		var zero T
		return zero, false
	}
	current := ll.head
	for i := 0; i < index; i++ {
		current = current.next
	}
	return current.value, true
}

// SortFunc reorders the list into non-decreasing order according to cmp.
//
// Nodes keep their values, only the links between them are rewired,
// so the number of nodes never changes.
// Equal values keep their relative order.
func (ll *LinkedList[T]) SortFunc(cmp compare.Func[T]) {
	if ll == nil || ll.length < 2 {
		return
	}
	ll.head = mergeSort(ll.head, cmp)
	tail := ll.head
	for tail.next != nil {
		tail = tail.next
	}
	ll.tail = tail
}

func mergeSort[T any](head *llNode[T], cmp compare.Func[T]) *llNode[T] {
	if head == nil || head.next == nil {
		return head
	}
	middle := findMiddle(head)
	right := middle.next
	middle.next = nil
	return merge(mergeSort(head, cmp), mergeSort(right, cmp), cmp)
}

// findMiddle returns the last node of the first half.
func findMiddle[T any](head *llNode[T]) *llNode[T] {
	slow, fast := head, head
	for fast.next != nil && fast.next.next != nil {
		slow = slow.next
		fast = fast.next.next
	}
	return slow
}

func merge[T any](left, right *llNode[T], cmp compare.Func[T]) *llNode[T] {
	var (
		sentinel llNode[T]
		current  = &sentinel
	)
	for left != nil && right != nil {
		// taking from the left on equality keeps the sort stable
		if compare.IsLessOrEqual(cmp(left.value, right.value)) {
			current.next = left
			left = left.next
		} else {
			current.next = right
			right = right.next
		}
		current = current.next
	}
	if left != nil {
		current.next = left
	} else {
		current.next = right
	}
	return sentinel.next
}
