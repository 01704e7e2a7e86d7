package compare_test

import (
	"math"
	"testing"

	"go.llib.dev/sortkit/pkg/compare"
	"go.llib.dev/testcase"
	"go.llib.dev/testcase/assert"
	"go.llib.dev/testcase/let"
)

func TestNumbers(t *testing.T) {
	s := testcase.NewSpec(t)

	var (
		A = let.Int(s)
		B = let.Int(s)
	)
	act := let.Act(func(t *testcase.T) int {
		cmp := compare.Numbers(A.Get(t), B.Get(t))
		t.OnFail(func() {
			t.Log("cmp:", cmp)
		})
		return cmp
	})

	s.Before(func(t *testcase.T) {
		t.OnFail(func() {
			t.Log("A:", A.Get(t))
			t.Log("B:", B.Get(t))
		})
	})

	s.Then("comparison result returned", func(t *testcase.T) {
		got := act(t)

		assert.AnyOf(t, func(a *assert.A) {
			a.Case(func(t testing.TB) { assert.Equal(t, got, -1) })
			a.Case(func(t testing.TB) { assert.Equal(t, got, 0) })
			a.Case(func(t testing.TB) { assert.Equal(t, got, 1) })
		}, "expected that result is one of -1, 0 or 1")
	})

	s.When("A is equal to B", func(s *testcase.Spec) {
		A.LetValue(s, 42)
		B.LetValue(s, 42)

		s.Then("cmp is 0", func(t *testcase.T) {
			assert.Equal(t, 0, act(t))
		})

		s.Then("equality will be true", func(t *testcase.T) {
			assert.True(t, compare.IsEqual(act(t)))
		})

		s.Then("less will be false", func(t *testcase.T) {
			assert.False(t, compare.IsLess(act(t)))
		})

		s.Then("less or equal will be true", func(t *testcase.T) {
			assert.True(t, compare.IsLessOrEqual(act(t)))
			assert.True(t, compare.IsMoreOrEqual(act(t)))
		})
	})

	s.When("A is less than B", func(s *testcase.Spec) {
		A.LetValue(s, -5)
		B.LetValue(s, 10)

		s.Then("cmp is -1", func(t *testcase.T) {
			assert.Equal(t, -1, act(t))
		})

		s.Then("less will be true", func(t *testcase.T) {
			assert.True(t, compare.IsLess(act(t)))
			assert.True(t, compare.IsLessOrEqual(act(t)))
		})

		s.Then("more will be false", func(t *testcase.T) {
			assert.False(t, compare.IsMore(act(t)))
			assert.False(t, compare.IsMoreOrEqual(act(t)))
		})
	})

	s.When("A is greater than B", func(s *testcase.Spec) {
		A.LetValue(s, 3)
		B.LetValue(s, 0)

		s.Then("cmp is 1", func(t *testcase.T) {
			assert.Equal(t, 1, act(t))
		})

		s.Then("more will be true", func(t *testcase.T) {
			assert.True(t, compare.IsMore(act(t)))
			assert.True(t, compare.IsMoreOrEqual(act(t)))
		})

		s.Then("less will be false", func(t *testcase.T) {
			assert.False(t, compare.IsLess(act(t)))
		})
	})

	s.Test("floating point values", func(t *testcase.T) {
		assert.Equal(t, -1, compare.Numbers(-0.5, 0.25))
		assert.Equal(t, 1, compare.Numbers(2.5, 2.25))
	})

	s.Test("NaN is ordered before every other value", func(t *testcase.T) {
		assert.Equal(t, -1, compare.Numbers(math.NaN(), math.Inf(-1)))
		assert.Equal(t, 1, compare.Numbers(t.Random.Float64(), math.NaN()))
		assert.Equal(t, 0, compare.Numbers(math.NaN(), math.NaN()))
	})
}

func TestCharacters(t *testing.T) {
	t.Run("code point ordering", func(t *testing.T) {
		assert.Equal(t, -1, compare.Characters('X', 'a'))
		assert.Equal(t, -1, compare.Characters('Z', 'a'))
		assert.Equal(t, 1, compare.Characters('b', 'a'))
		assert.Equal(t, 0, compare.Characters('k', 'k'))
	})
	t.Run("non ASCII code points", func(t *testing.T) {
		assert.Equal(t, -1, compare.Characters('z', 'é'))
		assert.Equal(t, 1, compare.Characters('世', 'é'))
	})
	t.Run("bytes", func(t *testing.T) {
		assert.Equal(t, -1, compare.Characters(byte('A'), byte('a')))
	})
}

type Priority int

func (p Priority) Compare(o Priority) int { return compare.Numbers(p, o) }

func TestComparable(t *testing.T) {
	assert.Equal(t, -1, compare.Comparable(Priority(1), Priority(2)))
	assert.Equal(t, 0, compare.Comparable(Priority(2), Priority(2)))
	assert.Equal(t, 1, compare.Comparable(Priority(3), Priority(2)))
}

func TestReverse(t *testing.T) {
	s := testcase.NewSpec(t)

	var (
		A = let.IntB(s, -100, 100)
		B = let.IntB(s, -100, 100)
	)

	s.Test("reversed rule gives the opposite result", func(t *testcase.T) {
		cmp := compare.Reverse(compare.Numbers[int])
		assert.Equal(t, compare.Numbers(B.Get(t), A.Get(t)), cmp(A.Get(t), B.Get(t)))
	})

	s.Test("reversing twice yields the original order", func(t *testcase.T) {
		cmp := compare.Reverse(compare.Reverse(compare.Numbers[int]))
		assert.Equal(t, compare.Numbers(A.Get(t), B.Get(t)), cmp(A.Get(t), B.Get(t)))
	})
}
