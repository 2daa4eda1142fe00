// Package typed provides associative containers keyed by arbitrary types that
// project onto an orderable surrogate.
//
// # Overview
//
// Sorted containers need keys with a total order. Many useful key types
// (wrapper IDs, UUIDs, composite keys) have no native order, or none you want
// to store them under. The containers in this package accept any key type K
// together with a [Codec]: a pair of conversion functions projecting K onto a
// surrogate type S that satisfies sortable.Sortable. Entries are stored under
// the surrogate; every API boundary converts between key and surrogate, so
// callers only ever see K.
//
//	type TagID int
//
//	codec := typed.NewCodec(
//	    func(t TagID) sortable.Int { return sortable.Int(t) },
//	    func(s sortable.Int) TagID { return TagID(s) },
//	)
//
//	m := typed.NewMap[TagID, sortable.Int, string](codec)
//	m = m.Add(TagID(1), "a")
//
// # Codec contract
//
// The two conversion functions must be total and mutually inverse over every
// key actually used: FromSurrogate(ToSurrogate(k)) must equal k. The library
// never verifies this; a codec that drops information silently conflates keys
// (two keys with equal surrogates occupy one slot, the newest value winning).
//
// # Persistence
//
// [Map] and [Set] are immutable values: every mutating operation returns a
// new container and leaves the receiver untouched, so prior versions remain
// valid. Because no in-place mutation occurs, containers can be read from any
// number of goroutines without locking, and building new versions from a
// shared base is race-free. Internally this is copy-on-write over the ordered
// red-black tree collaborator, so each mutator costs O(n); treat these as
// value-semantic containers, not high-churn accumulators.
//
// # Combining containers
//
// Union, Intersection, Difference, Merge, and MapInto operate on two
// containers at once. They compare surrogates directly and NEVER verify that
// both containers carry the same codec. Combining containers built with
// different codecs is not detected: the result is structurally valid, but key
// reconstruction uses only one side's FromSurrogate, so keys contributed by
// the other side may be semantically wrong. Codec identity across combined
// containers is a caller precondition. [Codec.Is] offers a cheap advisory
// identity check for callers that want to assert it.
package typed
