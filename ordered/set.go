package ordered

import (
	"iter"

	"github.com/amp-labs/amp-typed/sortable"
)

// Set is an ordered collection of unique elements with a total order.
// Iteration visits elements in ascending order; SeqBackward in descending
// order.
//
// Thread-safety: implementations are not thread-safe. Concurrent access must
// be synchronized by the caller.
//
//nolint:interfacebloat // Set interface intentionally carries the full container surface
type Set[E sortable.Sortable[E]] interface {
	// Add inserts an element. Adding an element already present is a no-op.
	Add(element E)

	// AddAll inserts every given element.
	AddAll(elements ...E)

	// Remove deletes an element. If the element is absent, this is a no-op.
	Remove(element E)

	// Clear removes all elements, leaving the set empty.
	Clear()

	// Contains reports whether the element exists in the set.
	Contains(element E) bool

	// Size returns the number of elements currently stored. O(1).
	Size() int

	// IsEmpty reports whether the set holds no elements.
	IsEmpty() bool

	// Seq returns an iterator over elements in ascending order.
	Seq() iter.Seq[E]

	// SeqBackward returns an iterator over elements in descending order.
	SeqBackward() iter.Seq[E]

	// Entries returns all elements in ascending order.
	Entries() []E

	// Clone returns a shallow copy of the set.
	Clone() Set[E]

	// Union returns a new set containing the elements of both sets.
	Union(other Set[E]) Set[E]

	// Intersection returns a new set containing only the elements present
	// in both sets.
	Intersection(other Set[E]) Set[E]

	// Difference returns a new set containing the receiver's elements that
	// are absent from other.
	Difference(other Set[E]) Set[E]

	// Filter returns a new set with only the elements satisfying the predicate.
	Filter(predicate func(element E) bool) Set[E]

	// FilterNot returns a new set with only the elements for which the
	// predicate returns false.
	FilterNot(predicate func(element E) bool) Set[E]

	// Partition splits the set into the elements satisfying the predicate
	// and those that don't.
	Partition(predicate func(element E) bool) (matching Set[E], rest Set[E])

	// ForEach applies f to every element in ascending order.
	ForEach(f func(element E))

	// ForAll reports whether the predicate holds for every element.
	// Returns true for an empty set.
	ForAll(predicate func(element E) bool) bool

	// Exists reports whether at least one element satisfies the predicate.
	Exists(predicate func(element E) bool) bool
}
