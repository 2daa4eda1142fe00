// Package ordered provides ordered associative containers keyed by types that
// satisfy the sortable.Sortable total-order bound.
//
// # Overview
//
// The package defines two container interfaces, [Map] and [Set], and supplies
// red-black tree implementations of both ([NewTreeMap], [NewTreeSet]) with
// O(log n) insertion, removal, and lookup, and in-order iteration in both
// directions. Operations whose result type depends on an extra type parameter
// (folds, value transforms, and the three-way [Merge] traversal) are
// package-level functions, since Go methods cannot introduce type parameters.
//
// Containers in this package are mutable. The typed containers in
// [github.com/amp-labs/amp-typed/typed] layer persistent (copy-on-write)
// semantics on top of them via [Map.Clone] and [Set.Clone].
//
// # Collision policy
//
// The pairwise combinators Union, Intersection, and Difference resolve key
// collisions in favor of the receiver: Union keeps the receiver's value for
// keys present in both containers, and Intersection takes its values from the
// receiver.
//
// # Thread safety
//
// Implementations are not thread-safe. Concurrent writers must be
// synchronized by the caller; read-only access from multiple goroutines is
// safe once no writer is active.
package ordered
