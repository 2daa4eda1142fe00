package typed

import (
	"iter"

	"github.com/amp-labs/amp-typed/ordered"
	"github.com/amp-labs/amp-typed/sortable"
)

// Set is an immutable set of elements of an arbitrary type K, stored under
// K's orderable surrogate S. Every mutating operation returns a new Set and
// leaves the receiver unchanged. Iteration and listings are in ascending
// surrogate order.
//
// Construct with [NewSet]; the zero Set has no codec and is not usable.
type Set[K any, S sortable.Sortable[S]] struct {
	codec   Codec[K, S]
	backing ordered.Set[S]
}

// NewSet creates an empty Set using the given conversion pair.
func NewSet[K any, S sortable.Sortable[S]](codec Codec[K, S]) Set[K, S] {
	return Set[K, S]{
		codec:   codec,
		backing: ordered.NewTreeSet[S](),
	}
}

// mutate clones the backing container, applies f to the clone, and wraps it
// in a new Set carrying the same codec.
func (s Set[K, S]) mutate(f func(backing ordered.Set[S])) Set[K, S] {
	next := s.backing.Clone()
	f(next)

	return Set[K, S]{codec: s.codec, backing: next}
}

// Codec returns the conversion pair this Set was built with.
func (s Set[K, S]) Codec() Codec[K, S] {
	return s.codec
}

// Clear returns an empty Set with the same codec.
func (s Set[K, S]) Clear() Set[K, S] {
	return Set[K, S]{codec: s.codec, backing: ordered.NewTreeSet[S]()}
}

// Add returns a Set with the element inserted. Adding an element whose
// surrogate is already present returns an equivalent Set.
func (s Set[K, S]) Add(element K) Set[K, S] {
	return s.mutate(func(backing ordered.Set[S]) {
		backing.Add(s.codec.ToSurrogate(element))
	})
}

// AddAll returns a Set with every given element inserted, in order.
func (s Set[K, S]) AddAll(elements ...K) Set[K, S] {
	return s.mutate(func(backing ordered.Set[S]) {
		for _, element := range elements {
			backing.Add(s.codec.ToSurrogate(element))
		}
	})
}

// Remove returns a Set without the element whose surrogate matches.
// Removing an absent element returns an equivalent Set; it is not an error.
func (s Set[K, S]) Remove(element K) Set[K, S] {
	return s.mutate(func(backing ordered.Set[S]) {
		backing.Remove(s.codec.ToSurrogate(element))
	})
}

// Contains reports whether an element exists under the given surrogate.
func (s Set[K, S]) Contains(element K) bool {
	return s.backing.Contains(s.codec.ToSurrogate(element))
}

// Size returns the number of elements.
func (s Set[K, S]) Size() int {
	return s.backing.Size()
}

// IsEmpty reports whether the Set holds no elements.
func (s Set[K, S]) IsEmpty() bool {
	return s.backing.IsEmpty()
}

// Seq returns an iterator over elements in ascending surrogate order, each
// reconstructed through FromSurrogate.
func (s Set[K, S]) Seq() iter.Seq[K] {
	return func(yield func(K) bool) {
		for surrogate := range s.backing.Seq() {
			if !yield(s.codec.FromSurrogate(surrogate)) {
				return
			}
		}
	}
}

// Entries returns all elements in ascending surrogate order.
func (s Set[K, S]) Entries() []K {
	entries := make([]K, 0, s.backing.Size())
	for element := range s.Seq() {
		entries = append(entries, element)
	}

	return entries
}

// Filter returns a Set with only the elements satisfying the predicate,
// carrying the same codec.
func (s Set[K, S]) Filter(predicate func(element K) bool) Set[K, S] {
	filtered := s.backing.Filter(func(surrogate S) bool {
		return predicate(s.codec.FromSurrogate(surrogate))
	})

	return Set[K, S]{codec: s.codec, backing: filtered}
}

// FilterNot returns a Set with only the elements for which the predicate
// returns false.
func (s Set[K, S]) FilterNot(predicate func(element K) bool) Set[K, S] {
	return s.Filter(func(element K) bool {
		return !predicate(element)
	})
}

// Partition splits the Set into the elements satisfying the predicate and
// those that don't. Both outputs carry the receiver's codec.
func (s Set[K, S]) Partition(predicate func(element K) bool) (matching Set[K, S], rest Set[K, S]) {
	matchingBacking, restBacking := s.backing.Partition(func(surrogate S) bool {
		return predicate(s.codec.FromSurrogate(surrogate))
	})

	return Set[K, S]{codec: s.codec, backing: matchingBacking},
		Set[K, S]{codec: s.codec, backing: restBacking}
}

// ForEach applies f to every element in ascending surrogate order.
func (s Set[K, S]) ForEach(f func(element K)) {
	for element := range s.Seq() {
		f(element)
	}
}

// ForAll reports whether the predicate holds for every element.
// Returns true for an empty Set.
func (s Set[K, S]) ForAll(predicate func(element K) bool) bool {
	for element := range s.Seq() {
		if !predicate(element) {
			return false
		}
	}

	return true
}

// Exists reports whether at least one element satisfies the predicate.
func (s Set[K, S]) Exists(predicate func(element K) bool) bool {
	for element := range s.Seq() {
		if predicate(element) {
			return true
		}
	}

	return false
}

// Union returns a Set with the elements of both sets. The result carries the
// receiver's codec.
//
// Precondition: both sets were built with the same codec. Surrogates from
// other are stored as-is and reconstructed with the receiver's FromSurrogate;
// with differing codecs the result is silently wrong (see package doc).
func (s Set[K, S]) Union(other Set[K, S]) Set[K, S] {
	return Set[K, S]{codec: s.codec, backing: s.backing.Union(other.backing)}
}

// Intersection returns a Set with only the surrogates present in both sets.
// The result carries the receiver's codec. Same codec precondition as Union.
func (s Set[K, S]) Intersection(other Set[K, S]) Set[K, S] {
	return Set[K, S]{codec: s.codec, backing: s.backing.Intersection(other.backing)}
}

// Difference returns a Set with the receiver's surrogates absent from other.
// The result carries the receiver's codec. Same codec precondition as Union.
func (s Set[K, S]) Difference(other Set[K, S]) Set[K, S] {
	return Set[K, S]{codec: s.codec, backing: s.backing.Difference(other.backing)}
}
