package ordered_test

import (
	"fmt"
	"math/rand"
	"testing"

	"github.com/amp-labs/amp-typed/ordered"
	"github.com/amp-labs/amp-typed/sortable"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTreeMap(t *testing.T) {
	t.Parallel()

	t.Run("creates empty map", func(t *testing.T) {
		t.Parallel()

		m := ordered.NewTreeMap[sortable.Int, string]()
		require.NotNil(t, m)
		assert.Equal(t, 0, m.Size())
		assert.True(t, m.IsEmpty())
	})

	t.Run("map is usable immediately", func(t *testing.T) {
		t.Parallel()

		m := ordered.NewTreeMap[sortable.Int, int]()
		m.Add(sortable.Int(1), 42)
		assert.Equal(t, 1, m.Size())
		assert.False(t, m.IsEmpty())
	})
}

func TestTreeMap_Add(t *testing.T) {
	t.Parallel()

	t.Run("adds new key-value pair", func(t *testing.T) {
		t.Parallel()

		m := ordered.NewTreeMap[sortable.Int, string]()
		m.Add(sortable.Int(1), "value")
		assert.Equal(t, 1, m.Size())
	})

	t.Run("updates existing key without growing", func(t *testing.T) {
		t.Parallel()

		m := ordered.NewTreeMap[sortable.Int, string]()
		m.Add(sortable.Int(1), "value1")
		m.Add(sortable.Int(1), "value2")
		assert.Equal(t, 1, m.Size())

		val, found := m.Get(sortable.Int(1))
		assert.True(t, found)
		assert.Equal(t, "value2", val)
	})

	t.Run("handles many keys", func(t *testing.T) {
		t.Parallel()

		m := ordered.NewTreeMap[sortable.Int, int]()
		for i := range 1000 {
			m.Add(sortable.Int(i), i)
		}

		assert.Equal(t, 1000, m.Size())

		for i := range 1000 {
			val, found := m.Get(sortable.Int(i))
			assert.True(t, found)
			assert.Equal(t, i, val)
		}
	})

	t.Run("maintains sorted order", func(t *testing.T) {
		t.Parallel()

		m := ordered.NewTreeMap[sortable.Int, string]()

		// Insert in random order
		keys := []int{5, 2, 8, 1, 9, 3, 7, 4, 6}
		for _, k := range keys {
			m.Add(sortable.Int(k), fmt.Sprintf("val%d", k))
		}

		expected := []int{1, 2, 3, 4, 5, 6, 7, 8, 9}
		i := 0

		for k := range m.Seq() {
			assert.Equal(t, sortable.Int(expected[i]), k)

			i++
		}

		assert.Len(t, expected, i)
	})
}

func TestTreeMap_Get(t *testing.T) {
	t.Parallel()

	t.Run("returns value for existing key", func(t *testing.T) {
		t.Parallel()

		m := ordered.NewTreeMap[sortable.Int, string]()
		m.Add(sortable.Int(1), "value")

		val, found := m.Get(sortable.Int(1))
		assert.True(t, found)
		assert.Equal(t, "value", val)
	})

	t.Run("returns zero value and false for missing key", func(t *testing.T) {
		t.Parallel()

		m := ordered.NewTreeMap[sortable.Int, string]()
		val, found := m.Get(sortable.Int(1))
		assert.False(t, found)
		assert.Empty(t, val)
	})
}

func TestTreeMap_GetOrElse(t *testing.T) {
	t.Parallel()

	m := ordered.NewTreeMap[sortable.String, int]()
	m.Add(sortable.String("a"), 1)

	assert.Equal(t, 1, m.GetOrElse(sortable.String("a"), 99))
	assert.Equal(t, 99, m.GetOrElse(sortable.String("b"), 99))
}

func TestTreeMap_Remove(t *testing.T) {
	t.Parallel()

	t.Run("removes existing key", func(t *testing.T) {
		t.Parallel()

		m := ordered.NewTreeMap[sortable.Int, string]()
		m.Add(sortable.Int(1), "value")
		m.Remove(sortable.Int(1))

		assert.Equal(t, 0, m.Size())
		assert.False(t, m.Contains(sortable.Int(1)))
	})

	t.Run("removing missing key is a no-op", func(t *testing.T) {
		t.Parallel()

		m := ordered.NewTreeMap[sortable.Int, string]()
		m.Add(sortable.Int(1), "value")
		m.Remove(sortable.Int(2))

		assert.Equal(t, 1, m.Size())
	})

	t.Run("stays consistent under random insert and delete", func(t *testing.T) {
		t.Parallel()

		m := ordered.NewTreeMap[sortable.Int, int]()
		rng := rand.New(rand.NewSource(1)) //nolint:gosec // deterministic test data

		reference := make(map[int]int)

		for range 5000 {
			k := rng.Intn(500)
			if rng.Intn(3) == 0 {
				m.Remove(sortable.Int(k))
				delete(reference, k)
			} else {
				m.Add(sortable.Int(k), k*10)
				reference[k] = k * 10
			}
		}

		assert.Equal(t, len(reference), m.Size())

		prev := -1
		for k, v := range m.Seq() {
			assert.Greater(t, int(k), prev)
			assert.Equal(t, reference[int(k)], v)

			prev = int(k)
		}
	})
}

func TestTreeMap_Clear(t *testing.T) {
	t.Parallel()

	m := ordered.NewTreeMap[sortable.Int, string]()
	m.Add(sortable.Int(1), "a")
	m.Add(sortable.Int(2), "b")
	m.Clear()

	assert.True(t, m.IsEmpty())
	assert.Equal(t, 0, m.Size())
	assert.False(t, m.Contains(sortable.Int(1)))
}

func TestTreeMap_SeqBackward(t *testing.T) {
	t.Parallel()

	m := ordered.NewTreeMap[sortable.Int, string]()
	for _, k := range []int{3, 1, 4, 1, 5, 9, 2, 6} {
		m.Add(sortable.Int(k), fmt.Sprintf("val%d", k))
	}

	expected := []int{9, 6, 5, 4, 3, 2, 1}
	i := 0

	for k := range m.SeqBackward() {
		assert.Equal(t, sortable.Int(expected[i]), k)

		i++
	}

	assert.Len(t, expected, i)
}

func TestTreeMap_KeysAndValues(t *testing.T) {
	t.Parallel()

	m := ordered.NewTreeMap[sortable.String, int]()
	m.Add(sortable.String("banana"), 2)
	m.Add(sortable.String("apple"), 1)
	m.Add(sortable.String("cherry"), 3)

	assert.Equal(t, []sortable.String{"apple", "banana", "cherry"}, m.Keys())
	assert.Equal(t, []int{1, 2, 3}, m.Values())
}

func TestTreeMap_Clone(t *testing.T) {
	t.Parallel()

	original := ordered.NewTreeMap[sortable.Int, string]()
	original.Add(sortable.Int(1), "a")
	original.Add(sortable.Int(2), "b")

	cloned := original.Clone()
	cloned.Add(sortable.Int(3), "c")

	assert.Equal(t, 2, original.Size())
	assert.Equal(t, 3, cloned.Size())
	assert.False(t, original.Contains(sortable.Int(3)))
}

func TestTreeMap_Union(t *testing.T) {
	t.Parallel()

	t.Run("combines entries from both maps", func(t *testing.T) {
		t.Parallel()

		a := ordered.NewTreeMap[sortable.Int, string]()
		a.Add(sortable.Int(1), "a1")

		b := ordered.NewTreeMap[sortable.Int, string]()
		b.Add(sortable.Int(2), "b2")

		out := a.Union(b)
		assert.Equal(t, 2, out.Size())
		assert.True(t, out.Contains(sortable.Int(1)))
		assert.True(t, out.Contains(sortable.Int(2)))
	})

	t.Run("receiver wins on collision", func(t *testing.T) {
		t.Parallel()

		a := ordered.NewTreeMap[sortable.Int, string]()
		a.Add(sortable.Int(1), "from-a")

		b := ordered.NewTreeMap[sortable.Int, string]()
		b.Add(sortable.Int(1), "from-b")

		out := a.Union(b)
		val, found := out.Get(sortable.Int(1))
		assert.True(t, found)
		assert.Equal(t, "from-a", val)
	})

	t.Run("does not modify inputs", func(t *testing.T) {
		t.Parallel()

		a := ordered.NewTreeMap[sortable.Int, string]()
		a.Add(sortable.Int(1), "a1")

		b := ordered.NewTreeMap[sortable.Int, string]()
		b.Add(sortable.Int(2), "b2")

		_ = a.Union(b)
		assert.Equal(t, 1, a.Size())
		assert.Equal(t, 1, b.Size())
	})
}

func TestTreeMap_Intersection(t *testing.T) {
	t.Parallel()

	a := ordered.NewTreeMap[sortable.Int, string]()
	a.Add(sortable.Int(1), "a1")
	a.Add(sortable.Int(2), "a2")

	b := ordered.NewTreeMap[sortable.Int, string]()
	b.Add(sortable.Int(2), "b2")
	b.Add(sortable.Int(3), "b3")

	out := a.Intersection(b)
	assert.Equal(t, 1, out.Size())

	val, found := out.Get(sortable.Int(2))
	assert.True(t, found)
	assert.Equal(t, "a2", val, "values come from the receiver")
}

func TestTreeMap_Difference(t *testing.T) {
	t.Parallel()

	a := ordered.NewTreeMap[sortable.Int, string]()
	a.Add(sortable.Int(1), "a1")
	a.Add(sortable.Int(2), "a2")

	b := ordered.NewTreeMap[sortable.Int, string]()
	b.Add(sortable.Int(2), "b2")

	out := a.Difference(b)
	assert.Equal(t, 1, out.Size())
	assert.True(t, out.Contains(sortable.Int(1)))
	assert.False(t, out.Contains(sortable.Int(2)))
}

func TestTreeMap_FilterAndPartition(t *testing.T) {
	t.Parallel()

	m := ordered.NewTreeMap[sortable.Int, int]()
	for i := 1; i <= 6; i++ {
		m.Add(sortable.Int(i), i*10)
	}

	isEven := func(k sortable.Int, _ int) bool { return int(k)%2 == 0 }

	t.Run("Filter keeps matching entries", func(t *testing.T) {
		t.Parallel()

		filtered := m.Filter(isEven)
		assert.Equal(t, []sortable.Int{2, 4, 6}, filtered.Keys())
	})

	t.Run("FilterNot keeps the complement", func(t *testing.T) {
		t.Parallel()

		filtered := m.FilterNot(isEven)
		assert.Equal(t, []sortable.Int{1, 3, 5}, filtered.Keys())
	})

	t.Run("Partition splits both ways at once", func(t *testing.T) {
		t.Parallel()

		matching, rest := m.Partition(isEven)
		assert.Equal(t, []sortable.Int{2, 4, 6}, matching.Keys())
		assert.Equal(t, []sortable.Int{1, 3, 5}, rest.Keys())
		assert.Equal(t, m.Size(), matching.Size()+rest.Size())
	})
}

func TestTreeMap_Predicates(t *testing.T) {
	t.Parallel()

	m := ordered.NewTreeMap[sortable.Int, int]()
	m.Add(sortable.Int(1), 10)
	m.Add(sortable.Int(2), 20)

	assert.True(t, m.ForAll(func(_ sortable.Int, v int) bool { return v > 0 }))
	assert.False(t, m.ForAll(func(_ sortable.Int, v int) bool { return v > 10 }))
	assert.True(t, m.Exists(func(_ sortable.Int, v int) bool { return v == 20 }))
	assert.False(t, m.Exists(func(_ sortable.Int, v int) bool { return v == 30 }))

	empty := ordered.NewTreeMap[sortable.Int, int]()
	assert.True(t, empty.ForAll(func(_ sortable.Int, _ int) bool { return false }))
	assert.False(t, empty.Exists(func(_ sortable.Int, _ int) bool { return true }))
}

func TestTreeMap_ForEach(t *testing.T) {
	t.Parallel()

	m := ordered.NewTreeMap[sortable.Int, int]()
	m.Add(sortable.Int(2), 20)
	m.Add(sortable.Int(1), 10)

	var keys []int

	sum := 0

	m.ForEach(func(k sortable.Int, v int) {
		keys = append(keys, int(k))
		sum += v
	})

	assert.Equal(t, []int{1, 2}, keys)
	assert.Equal(t, 30, sum)
}

func TestTreeMap_NaturalOrderKeys(t *testing.T) {
	t.Parallel()

	m := ordered.NewTreeMap[sortable.Natural, int]()
	m.Add(sortable.Natural("file10"), 10)
	m.Add(sortable.Natural("file2"), 2)
	m.Add(sortable.Natural("file1"), 1)

	assert.Equal(t, []sortable.Natural{"file1", "file2", "file10"}, m.Keys())

	// "file01" ties with "file1" under natural order but is a distinct key;
	// it must land as its own entry in a strictly ascending position.
	m.Add(sortable.Natural("file01"), 1)

	assert.Equal(t, 4, m.Size())
	assert.Equal(t, []sortable.Natural{"file01", "file1", "file2", "file10"}, m.Keys())
}
