package ordered

import (
	"iter"

	"github.com/amp-labs/amp-typed/sortable"
)

// Merge runs a three-way ordered traversal over the sorted union of the key
// sets of a and b, visiting keys in ascending order. For each key present
// only in a it calls left; only in b, right; in both, both. The accumulator
// is threaded through every step and the final value returned.
//
// All pairwise map combinators can be expressed through Merge; the Map
// implementations specialize them for the common cases instead.
func Merge[K sortable.Sortable[K], V1 any, V2 any, A any](
	a Map[K, V1],
	b Map[K, V2],
	left func(key K, value V1, acc A) A,
	both func(key K, value1 V1, value2 V2, acc A) A,
	right func(key K, value V2, acc A) A,
	init A,
) A {
	nextA, stopA := iter.Pull2(a.Seq())
	defer stopA()

	nextB, stopB := iter.Pull2(b.Seq())
	defer stopB()

	keyA, valueA, okA := nextA()
	keyB, valueB, okB := nextB()

	acc := init

	for okA || okB {
		switch {
		case okA && (!okB || keyA.LessThan(keyB)):
			acc = left(keyA, valueA, acc)
			keyA, valueA, okA = nextA()
		case okB && (!okA || keyB.LessThan(keyA)):
			acc = right(keyB, valueB, acc)
			keyB, valueB, okB = nextB()
		default:
			acc = both(keyA, valueA, valueB, acc)
			keyA, valueA, okA = nextA()
			keyB, valueB, okB = nextB()
		}
	}

	return acc
}

// MergeSets is the set analogue of Merge: a three-way ordered traversal over
// the sorted union of both element sets, ascending.
func MergeSets[E sortable.Sortable[E], A any](
	a Set[E],
	b Set[E],
	left func(element E, acc A) A,
	both func(element E, acc A) A,
	right func(element E, acc A) A,
	init A,
) A {
	nextA, stopA := iter.Pull(a.Seq())
	defer stopA()

	nextB, stopB := iter.Pull(b.Seq())
	defer stopB()

	elemA, okA := nextA()
	elemB, okB := nextB()

	acc := init

	for okA || okB {
		switch {
		case okA && (!okB || elemA.LessThan(elemB)):
			acc = left(elemA, acc)
			elemA, okA = nextA()
		case okB && (!okA || elemB.LessThan(elemA)):
			acc = right(elemB, acc)
			elemB, okB = nextB()
		default:
			acc = both(elemA, acc)
			elemA, okA = nextA()
			elemB, okB = nextB()
		}
	}

	return acc
}
