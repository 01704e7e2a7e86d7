package sortablecontract

import (
	"fmt"
	"iter"
	"reflect"
	"slices"
	"testing"

	"go.llib.dev/frameless/port/contract"
	"go.llib.dev/frameless/port/option"
	"go.llib.dev/sortkit/pkg/compare"
	"go.llib.dev/sortkit/port/sortable"
	"go.llib.dev/testcase"
	"go.llib.dev/testcase/assert"
	"go.llib.dev/testcase/random"
)

// Make creates the container under test, holding the given values in the given order.
type Make[T any] func(tb testing.TB, vs []T) sortable.Container[T]

// Container asserts the behaviour every sortable.Container implementation must have.
//
// The cmp argument is the comparison rule the container is expected to sort by.
func Container[T any](cmp compare.Func[T], mk Make[T], opts ...ContainerOption[T]) contract.Contract {
	s := testcase.NewSpec(nil)
	c := option.ToConfig(opts)

	makeValues := func(t *testcase.T) []T {
		return random.Slice(t.Random.IntBetween(3, 12), func() T { return c.makeT(t) })
	}

	assertSorted := func(tb testing.TB, vs []T) {
		tb.Helper()
		for i := 0; i < len(vs)-1; i++ {
			assert.True(tb, compare.IsLessOrEqual(cmp(vs[i], vs[i+1])),
				assert.MessageF("expected non-decreasing order at index %d: %v", i, vs))
		}
	}

	s.Test("smoke", func(t *testcase.T) {
		var (
			input     = makeValues(t)
			container = mk(t, slices.Clone(input))
		)
		assert.Equal(t, len(input), container.Len())
		assert.Equal(t, input, collect(container.Iter()), "before sorting, the insertion order is the active order")

		container.Sort()

		got := collect(container.Iter())
		assertSorted(t, got)
		assert.ContainsExactly(t, input, got, "sorting must not add or lose elements")
		assert.Equal(t, len(input), container.Len())
	})

	s.Test("sorting is idempotent", func(t *testcase.T) {
		container := mk(t, makeValues(t))
		container.Sort()
		once := collect(container.Iter())
		container.Sort()
		assert.Equal(t, once, collect(container.Iter()))
	})

	s.Test("already sorted input stays the same", func(t *testcase.T) {
		input := makeValues(t)
		slices.SortStableFunc(input, cmp)
		container := mk(t, slices.Clone(input))
		container.Sort()
		assert.Equal(t, input, collect(container.Iter()))
	})

	s.Test("reversed input is sorted", func(t *testcase.T) {
		input := makeValues(t)
		slices.SortStableFunc(input, compare.Reverse(cmp))
		container := mk(t, slices.Clone(input))
		container.Sort()
		got := collect(container.Iter())
		assertSorted(t, got)
		assert.ContainsExactly(t, input, got)
	})

	s.Test("duplicates are kept", func(t *testcase.T) {
		var (
			v     = c.makeT(t)
			input = append(makeValues(t), v, v, v)
		)
		for i := len(input) - 1; 0 < i; i-- {
			j := t.Random.IntN(i + 1)
			input[i], input[j] = input[j], input[i]
		}
		container := mk(t, slices.Clone(input))
		container.Sort()
		got := collect(container.Iter())
		assertSorted(t, got)
		assert.ContainsExactly(t, input, got)
	})

	s.Test("all equal values round-trip", func(t *testcase.T) {
		var (
			v     = c.makeT(t)
			input = []T{v, v, v}
		)
		container := mk(t, slices.Clone(input))
		container.Sort()
		assert.Equal(t, input, collect(container.Iter()))
	})

	s.Test("empty container sorts to itself", func(t *testcase.T) {
		container := mk(t, nil)
		container.Sort()
		assert.Equal(t, 0, container.Len())
		assert.Empty(t, collect(container.Iter()))
	})

	s.Test("single element container sorts to itself", func(t *testcase.T) {
		v := c.makeT(t)
		container := mk(t, []T{v})
		container.Sort()
		assert.Equal(t, []T{v}, collect(container.Iter()))
	})

	s.Test("iteration can be restarted and stopped early", func(t *testcase.T) {
		container := mk(t, makeValues(t))
		container.Sort()
		assert.Equal(t, collect(container.Iter()), collect(container.Iter()))

		var n int
		for range container.Iter() {
			n++
			break
		}
		assert.Equal(t, 1, n)
	})

	return s.AsSuite(fmt.Sprintf("sortable.Container[%s]", reflect.TypeFor[T]().String()))
}

type ContainerOption[T any] interface {
	option.Option[ContainerConfig[T]]
}

type ContainerConfig[T any] struct {
	// MakeElem creates a random element for the container.
	MakeElem func(testing.TB) T
}

var _ ContainerOption[any] = ContainerConfig[any]{}

func (c ContainerConfig[T]) Configure(o *ContainerConfig[T]) {
	if c.MakeElem != nil {
		o.MakeElem = c.MakeElem
	}
}

func (c ContainerConfig[T]) makeT(tb testing.TB) T {
	if c.MakeElem != nil {
		return c.MakeElem(tb)
	}
	return testcase.ToT(&tb).Random.Make(*new(T)).(T)
}

func collect[T any](seq iter.Seq[T]) []T {
	var vs []T
	for v := range seq {
		vs = append(vs, v)
	}
	return vs
}
