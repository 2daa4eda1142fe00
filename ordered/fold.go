package ordered

import (
	"github.com/amp-labs/amp-typed/sortable"
)

// Folds and value transforms live at package level because their result type
// is an extra type parameter, which Go methods cannot introduce.

// FoldLeft folds the map's entries in ascending key order.
// The accumulator is threaded left to right: f is called as f(acc, key, value).
func FoldLeft[K sortable.Sortable[K], V any, A any](
	m Map[K, V], init A, f func(acc A, key K, value V) A,
) A {
	acc := init
	for key, value := range m.Seq() {
		acc = f(acc, key, value)
	}

	return acc
}

// FoldRight folds the map's entries in descending key order.
// The accumulator is threaded right to left: f is called as f(key, value, acc).
func FoldRight[K sortable.Sortable[K], V any, A any](
	m Map[K, V], init A, f func(key K, value V, acc A) A,
) A {
	acc := init
	for key, value := range m.SeqBackward() {
		acc = f(key, value, acc)
	}

	return acc
}

// FoldLeftSet folds the set's elements in ascending order.
func FoldLeftSet[E sortable.Sortable[E], A any](
	s Set[E], init A, f func(acc A, element E) A,
) A {
	acc := init
	for element := range s.Seq() {
		acc = f(acc, element)
	}

	return acc
}

// FoldRightSet folds the set's elements in descending order.
func FoldRightSet[E sortable.Sortable[E], A any](
	s Set[E], init A, f func(element E, acc A) A,
) A {
	acc := init
	for element := range s.SeqBackward() {
		acc = f(element, acc)
	}

	return acc
}

// MapValues returns a new map with the same keys and every value transformed
// by f. The result is a red-black tree map regardless of the input's
// implementation.
func MapValues[K sortable.Sortable[K], V1 any, V2 any](
	m Map[K, V1], f func(key K, value V1) V2,
) Map[K, V2] {
	out := newTreeMap[K, V2]()

	for key, value := range m.Seq() {
		out.Add(key, f(key, value))
	}

	return out
}
