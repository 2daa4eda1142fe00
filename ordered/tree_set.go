package ordered

import (
	"iter"

	"github.com/amp-labs/amp-typed/sortable"
)

// treeSet is the red-black tree implementation of Set.
// Rather than duplicating the tree machinery, it stores its elements as the
// keys of a treeMap with empty struct values.
type treeSet[E sortable.Sortable[E]] struct {
	elements *treeMap[E, struct{}]
}

// NewTreeSet creates a new empty red-black tree set.
// The set keeps elements sorted and maintains O(log n) performance for
// insertion, removal, and lookup.
func NewTreeSet[E sortable.Sortable[E]]() Set[E] {
	return newTreeSet[E]()
}

func newTreeSet[E sortable.Sortable[E]]() *treeSet[E] {
	return &treeSet[E]{elements: newTreeMap[E, struct{}]()}
}

// Add inserts an element. Adding an element already present is a no-op.
func (s *treeSet[E]) Add(element E) {
	s.elements.Add(element, struct{}{})
}

// AddAll inserts every given element.
func (s *treeSet[E]) AddAll(elements ...E) {
	for _, element := range elements {
		s.Add(element)
	}
}

// Remove deletes an element. If the element is absent, this is a no-op.
func (s *treeSet[E]) Remove(element E) {
	s.elements.Remove(element)
}

// Clear removes all elements, resetting the set to empty.
func (s *treeSet[E]) Clear() {
	s.elements.Clear()
}

// Contains reports whether the element exists in the set.
func (s *treeSet[E]) Contains(element E) bool {
	return s.elements.Contains(element)
}

// Size returns the number of elements in the set.
func (s *treeSet[E]) Size() int {
	return s.elements.Size()
}

// IsEmpty reports whether the set holds no elements.
func (s *treeSet[E]) IsEmpty() bool {
	return s.elements.IsEmpty()
}

// Seq returns an iterator over elements in ascending order.
func (s *treeSet[E]) Seq() iter.Seq[E] {
	return func(yield func(E) bool) {
		for element := range s.elements.Seq() {
			if !yield(element) {
				return
			}
		}
	}
}

// SeqBackward returns an iterator over elements in descending order.
func (s *treeSet[E]) SeqBackward() iter.Seq[E] {
	return func(yield func(E) bool) {
		for element := range s.elements.SeqBackward() {
			if !yield(element) {
				return
			}
		}
	}
}

// Entries returns all elements in ascending order.
func (s *treeSet[E]) Entries() []E {
	return s.elements.Keys()
}

// Clone returns a shallow copy of the set with the same elements.
func (s *treeSet[E]) Clone() Set[E] {
	cloned := newTreeSet[E]()
	for element := range s.Seq() {
		cloned.Add(element)
	}

	return cloned
}

// Union returns a new set with the elements of both sets.
func (s *treeSet[E]) Union(other Set[E]) Set[E] {
	out := s.Clone()

	for element := range other.Seq() {
		out.Add(element)
	}

	return out
}

// Intersection returns a new set with only the elements present in both sets.
func (s *treeSet[E]) Intersection(other Set[E]) Set[E] {
	out := newTreeSet[E]()

	for element := range s.Seq() {
		if other.Contains(element) {
			out.Add(element)
		}
	}

	return out
}

// Difference returns a new set with the receiver's elements absent from other.
func (s *treeSet[E]) Difference(other Set[E]) Set[E] {
	out := newTreeSet[E]()

	for element := range s.Seq() {
		if !other.Contains(element) {
			out.Add(element)
		}
	}

	return out
}

// Filter returns a new set with only the elements satisfying the predicate.
func (s *treeSet[E]) Filter(predicate func(element E) bool) Set[E] {
	out := newTreeSet[E]()

	for element := range s.Seq() {
		if predicate(element) {
			out.Add(element)
		}
	}

	return out
}

// FilterNot returns a new set with only the elements for which the predicate
// returns false.
func (s *treeSet[E]) FilterNot(predicate func(element E) bool) Set[E] {
	return s.Filter(func(element E) bool {
		return !predicate(element)
	})
}

// Partition splits the set into the elements satisfying the predicate and
// those that don't.
func (s *treeSet[E]) Partition(predicate func(element E) bool) (Set[E], Set[E]) {
	matching := newTreeSet[E]()
	rest := newTreeSet[E]()

	for element := range s.Seq() {
		if predicate(element) {
			matching.Add(element)
		} else {
			rest.Add(element)
		}
	}

	return matching, rest
}

// ForEach applies f to every element in ascending order.
func (s *treeSet[E]) ForEach(f func(element E)) {
	for element := range s.Seq() {
		f(element)
	}
}

// ForAll reports whether the predicate holds for every element.
// Returns true for an empty set.
func (s *treeSet[E]) ForAll(predicate func(element E) bool) bool {
	for element := range s.Seq() {
		if !predicate(element) {
			return false
		}
	}

	return true
}

// Exists reports whether at least one element satisfies the predicate.
func (s *treeSet[E]) Exists(predicate func(element E) bool) bool {
	for element := range s.Seq() {
		if predicate(element) {
			return true
		}
	}

	return false
}
