package ordered_test

import (
	"testing"

	"github.com/amp-labs/amp-typed/ordered"
	"github.com/amp-labs/amp-typed/sortable"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTreeSet(t *testing.T) {
	t.Parallel()

	s := ordered.NewTreeSet[sortable.Int]()
	require.NotNil(t, s)
	assert.True(t, s.IsEmpty())
	assert.Equal(t, 0, s.Size())
}

func TestTreeSet_Add(t *testing.T) {
	t.Parallel()

	t.Run("adds new elements", func(t *testing.T) {
		t.Parallel()

		s := ordered.NewTreeSet[sortable.Int]()
		s.Add(sortable.Int(2))
		s.Add(sortable.Int(1))

		assert.Equal(t, 2, s.Size())
		assert.True(t, s.Contains(sortable.Int(1)))
		assert.True(t, s.Contains(sortable.Int(2)))
	})

	t.Run("adding duplicate is a no-op", func(t *testing.T) {
		t.Parallel()

		s := ordered.NewTreeSet[sortable.Int]()
		s.Add(sortable.Int(1))
		s.Add(sortable.Int(1))

		assert.Equal(t, 1, s.Size())
	})

	t.Run("AddAll inserts every element", func(t *testing.T) {
		t.Parallel()

		s := ordered.NewTreeSet[sortable.Int]()
		s.AddAll(sortable.Int(3), sortable.Int(1), sortable.Int(2))

		assert.Equal(t, []sortable.Int{1, 2, 3}, s.Entries())
	})
}

func TestTreeSet_Remove(t *testing.T) {
	t.Parallel()

	s := ordered.NewTreeSet[sortable.String]()
	s.AddAll(sortable.String("a"), sortable.String("b"))

	s.Remove(sortable.String("a"))
	assert.False(t, s.Contains(sortable.String("a")))
	assert.Equal(t, 1, s.Size())

	// removing an absent element is a no-op
	s.Remove(sortable.String("zzz"))
	assert.Equal(t, 1, s.Size())
}

func TestTreeSet_Clear(t *testing.T) {
	t.Parallel()

	s := ordered.NewTreeSet[sortable.Int]()
	s.AddAll(sortable.Int(1), sortable.Int(2))
	s.Clear()

	assert.True(t, s.IsEmpty())
}

func TestTreeSet_Iteration(t *testing.T) {
	t.Parallel()

	s := ordered.NewTreeSet[sortable.Int]()
	s.AddAll(sortable.Int(5), sortable.Int(1), sortable.Int(3))

	t.Run("Seq ascends", func(t *testing.T) {
		t.Parallel()

		var got []int
		for e := range s.Seq() {
			got = append(got, int(e))
		}

		assert.Equal(t, []int{1, 3, 5}, got)
	})

	t.Run("SeqBackward descends", func(t *testing.T) {
		t.Parallel()

		var got []int
		for e := range s.SeqBackward() {
			got = append(got, int(e))
		}

		assert.Equal(t, []int{5, 3, 1}, got)
	})

	t.Run("early break stops iteration", func(t *testing.T) {
		t.Parallel()

		count := 0

		for range s.Seq() {
			count++
			if count == 2 {
				break
			}
		}

		assert.Equal(t, 2, count)
	})
}

func TestTreeSet_Clone(t *testing.T) {
	t.Parallel()

	original := ordered.NewTreeSet[sortable.Int]()
	original.Add(sortable.Int(1))

	cloned := original.Clone()
	cloned.Add(sortable.Int(2))

	assert.Equal(t, 1, original.Size())
	assert.Equal(t, 2, cloned.Size())
}

func TestTreeSet_Algebra(t *testing.T) {
	t.Parallel()

	a := ordered.NewTreeSet[sortable.Int]()
	a.AddAll(sortable.Int(1), sortable.Int(2), sortable.Int(3))

	b := ordered.NewTreeSet[sortable.Int]()
	b.AddAll(sortable.Int(2), sortable.Int(3), sortable.Int(4))

	t.Run("Union", func(t *testing.T) {
		t.Parallel()

		assert.Equal(t, []sortable.Int{1, 2, 3, 4}, a.Union(b).Entries())
	})

	t.Run("Intersection", func(t *testing.T) {
		t.Parallel()

		assert.Equal(t, []sortable.Int{2, 3}, a.Intersection(b).Entries())
	})

	t.Run("Difference", func(t *testing.T) {
		t.Parallel()

		assert.Equal(t, []sortable.Int{1}, a.Difference(b).Entries())
		assert.Equal(t, []sortable.Int{4}, b.Difference(a).Entries())
	})

	t.Run("inputs are untouched", func(t *testing.T) {
		t.Parallel()

		_ = a.Union(b)
		_ = a.Intersection(b)
		_ = a.Difference(b)

		assert.Equal(t, 3, a.Size())
		assert.Equal(t, 3, b.Size())
	})
}

func TestTreeSet_FilterAndPartition(t *testing.T) {
	t.Parallel()

	s := ordered.NewTreeSet[sortable.Int]()
	for i := 1; i <= 6; i++ {
		s.Add(sortable.Int(i))
	}

	isEven := func(e sortable.Int) bool { return int(e)%2 == 0 }

	assert.Equal(t, []sortable.Int{2, 4, 6}, s.Filter(isEven).Entries())
	assert.Equal(t, []sortable.Int{1, 3, 5}, s.FilterNot(isEven).Entries())

	matching, rest := s.Partition(isEven)
	assert.Equal(t, []sortable.Int{2, 4, 6}, matching.Entries())
	assert.Equal(t, []sortable.Int{1, 3, 5}, rest.Entries())
}

func TestTreeSet_Predicates(t *testing.T) {
	t.Parallel()

	s := ordered.NewTreeSet[sortable.Int]()
	s.AddAll(sortable.Int(1), sortable.Int(2))

	assert.True(t, s.ForAll(func(e sortable.Int) bool { return e > 0 }))
	assert.False(t, s.ForAll(func(e sortable.Int) bool { return e > 1 }))
	assert.True(t, s.Exists(func(e sortable.Int) bool { return e == 2 }))
	assert.False(t, s.Exists(func(e sortable.Int) bool { return e == 3 }))

	var collected []int

	s.ForEach(func(e sortable.Int) { collected = append(collected, int(e)) })
	assert.Equal(t, []int{1, 2}, collected)
}
