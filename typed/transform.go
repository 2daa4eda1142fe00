package typed

import (
	"github.com/amp-labs/amp-typed/ordered"
	"github.com/amp-labs/amp-typed/sortable"
)

// Operations whose result type is an extra type parameter live at package
// level, since Go methods cannot introduce type parameters.

// MapValues returns a Map with every value transformed by f, keeping the
// same codec and the same surrogate keys. Every entry is visited exactly
// once; the order of visits is unspecified.
func MapValues[K any, S sortable.Sortable[S], A any, B any](
	m Map[K, S, A], f func(key K, value A) B,
) Map[K, S, B] {
	backing := ordered.MapValues(m.backing, func(surrogate S, value A) B {
		return f(m.codec.FromSurrogate(surrogate), value)
	})

	return Map[K, S, B]{codec: m.codec, backing: backing}
}

// FoldLeft folds the map's entries in ascending surrogate order.
// The accumulator is threaded left to right: f is called as f(acc, key, value).
func FoldLeft[K any, S sortable.Sortable[S], V any, A any](
	m Map[K, S, V], init A, f func(acc A, key K, value V) A,
) A {
	return ordered.FoldLeft(m.backing, init, func(acc A, surrogate S, value V) A {
		return f(acc, m.codec.FromSurrogate(surrogate), value)
	})
}

// FoldRight folds the map's entries in descending surrogate order.
// The accumulator is threaded right to left: f is called as f(key, value, acc).
// For an order-independent f, FoldRight agrees with FoldLeft; otherwise the
// two are observably different.
func FoldRight[K any, S sortable.Sortable[S], V any, A any](
	m Map[K, S, V], init A, f func(key K, value V, acc A) A,
) A {
	return ordered.FoldRight(m.backing, init, func(surrogate S, value V, acc A) A {
		return f(m.codec.FromSurrogate(surrogate), value, acc)
	})
}

// Merge runs a three-way ordered traversal over the sorted union of the
// surrogate key sets of a and b, ascending. For each surrogate present only
// in a it calls left; only in b, right; in both, both. The accumulator is
// threaded through every step and the final value returned.
//
// Keys are reconstructed with a's FromSurrogate throughout, including for
// entries contributed only by b. Precondition: both maps were built with the
// same codec (see package doc).
func Merge[K any, S sortable.Sortable[S], V1 any, V2 any, A any](
	a Map[K, S, V1],
	b Map[K, S, V2],
	left func(key K, value V1, acc A) A,
	both func(key K, value1 V1, value2 V2, acc A) A,
	right func(key K, value V2, acc A) A,
	init A,
) A {
	return ordered.Merge(
		a.backing,
		b.backing,
		func(surrogate S, value V1, acc A) A {
			return left(a.codec.FromSurrogate(surrogate), value, acc)
		},
		func(surrogate S, value1 V1, value2 V2, acc A) A {
			return both(a.codec.FromSurrogate(surrogate), value1, value2, acc)
		},
		func(surrogate S, value V2, acc A) A {
			return right(a.codec.FromSurrogate(surrogate), value, acc)
		},
		init,
	)
}

// FoldLeftSet folds the set's elements in ascending surrogate order.
func FoldLeftSet[K any, S sortable.Sortable[S], A any](
	s Set[K, S], init A, f func(acc A, element K) A,
) A {
	return ordered.FoldLeftSet(s.backing, init, func(acc A, surrogate S) A {
		return f(acc, s.codec.FromSurrogate(surrogate))
	})
}

// FoldRightSet folds the set's elements in descending surrogate order.
func FoldRightSet[K any, S sortable.Sortable[S], A any](
	s Set[K, S], init A, f func(element K, acc A) A,
) A {
	return ordered.FoldRightSet(s.backing, init, func(surrogate S, acc A) A {
		return f(s.codec.FromSurrogate(surrogate), acc)
	})
}

// MapInto applies f to every element of source and inserts each result into
// target, returning the updated target. The results are converted with
// target's codec; source's codec only reconstructs the elements handed to f,
// so the two sets may use entirely different key and surrogate types. This is
// the one operation that changes the key/surrogate pair across a call.
func MapInto[K any, S sortable.Sortable[S], K2 any, S2 sortable.Sortable[S2]](
	f func(element K) K2, source Set[K, S], target Set[K2, S2],
) Set[K2, S2] {
	return target.mutate(func(backing ordered.Set[S2]) {
		for element := range source.Seq() {
			backing.Add(target.codec.ToSurrogate(f(element)))
		}
	})
}
