package typed

import (
	"iter"

	"github.com/amp-labs/amp-typed/optional"
	"github.com/amp-labs/amp-typed/ordered"
	"github.com/amp-labs/amp-typed/sortable"
)

// Entry is a key-value pair, used for bulk insertion and for Entries listings.
type Entry[K any, V any] struct {
	Key   K
	Value V
}

// Map is an immutable map keyed by an arbitrary type K, stored under K's
// orderable surrogate S. Every mutating operation returns a new Map and
// leaves the receiver unchanged. Iteration and listings are in ascending
// surrogate order.
//
// Construct with [NewMap]; the zero Map has no codec and is not usable.
type Map[K any, S sortable.Sortable[S], V any] struct {
	codec   Codec[K, S]
	backing ordered.Map[S, V]
}

// NewMap creates an empty Map using the given conversion pair.
// The codec is immutable for the container's lifetime and is carried into
// every Map derived from this one.
func NewMap[K any, S sortable.Sortable[S], V any](codec Codec[K, S]) Map[K, S, V] {
	return Map[K, S, V]{
		codec:   codec,
		backing: ordered.NewTreeMap[S, V](),
	}
}

// mutate clones the backing container, applies f to the clone, and wraps it
// in a new Map carrying the same codec. Every mutating operation funnels
// through here so the receiver is never modified.
func (m Map[K, S, V]) mutate(f func(backing ordered.Map[S, V])) Map[K, S, V] {
	next := m.backing.Clone()
	f(next)

	return Map[K, S, V]{codec: m.codec, backing: next}
}

// Codec returns the conversion pair this Map was built with.
func (m Map[K, S, V]) Codec() Codec[K, S] {
	return m.codec
}

// Clear returns an empty Map with the same codec.
func (m Map[K, S, V]) Clear() Map[K, S, V] {
	return Map[K, S, V]{codec: m.codec, backing: ordered.NewTreeMap[S, V]()}
}

// Add returns a Map with the entry inserted. If a key with an equal surrogate
// is already present, the new value replaces the old one.
func (m Map[K, S, V]) Add(key K, value V) Map[K, S, V] {
	return m.mutate(func(backing ordered.Map[S, V]) {
		backing.Add(m.codec.ToSurrogate(key), value)
	})
}

// AddAll returns a Map with every entry inserted, in order. On surrogate
// collision, later entries win.
func (m Map[K, S, V]) AddAll(entries ...Entry[K, V]) Map[K, S, V] {
	return m.mutate(func(backing ordered.Map[S, V]) {
		for _, entry := range entries {
			backing.Add(m.codec.ToSurrogate(entry.Key), entry.Value)
		}
	})
}

// Remove returns a Map without the entry whose surrogate matches the key.
// Removing an absent key returns an equivalent Map; it is not an error.
func (m Map[K, S, V]) Remove(key K) Map[K, S, V] {
	return m.mutate(func(backing ordered.Map[S, V]) {
		backing.Remove(m.codec.ToSurrogate(key))
	})
}

// Update looks up the current value at the key (None if absent), applies
// updater, and returns a Map holding the result: present means set, absent
// means removed. This is the read-modify-write primitive; Add and Remove are
// its special cases.
func (m Map[K, S, V]) Update(
	key K, updater func(current optional.Value[V]) optional.Value[V],
) Map[K, S, V] {
	surrogate := m.codec.ToSurrogate(key)

	current := optional.None[V]()
	if value, found := m.backing.Get(surrogate); found {
		current = optional.Some(value)
	}

	next := updater(current)

	if value, ok := next.Get(); ok {
		return m.mutate(func(backing ordered.Map[S, V]) {
			backing.Add(surrogate, value)
		})
	}

	if current.Empty() {
		return m
	}

	return m.mutate(func(backing ordered.Map[S, V]) {
		backing.Remove(surrogate)
	})
}

// Get returns the value stored under the key's surrogate, or None if absent.
func (m Map[K, S, V]) Get(key K) optional.Value[V] {
	if value, found := m.backing.Get(m.codec.ToSurrogate(key)); found {
		return optional.Some(value)
	}

	return optional.None[V]()
}

// GetOrElse returns the value stored under the key's surrogate, or
// defaultValue if absent.
func (m Map[K, S, V]) GetOrElse(key K, defaultValue V) V {
	return m.backing.GetOrElse(m.codec.ToSurrogate(key), defaultValue)
}

// Contains reports whether an entry exists under the key's surrogate.
func (m Map[K, S, V]) Contains(key K) bool {
	return m.backing.Contains(m.codec.ToSurrogate(key))
}

// Size returns the number of entries.
func (m Map[K, S, V]) Size() int {
	return m.backing.Size()
}

// IsEmpty reports whether the Map holds no entries.
func (m Map[K, S, V]) IsEmpty() bool {
	return m.backing.IsEmpty()
}

// Seq returns an iterator over entries in ascending surrogate order, with
// each key reconstructed through FromSurrogate.
func (m Map[K, S, V]) Seq() iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		for surrogate, value := range m.backing.Seq() {
			if !yield(m.codec.FromSurrogate(surrogate), value) {
				return
			}
		}
	}
}

// Keys returns all keys in ascending surrogate order, each reconstructed
// through FromSurrogate.
func (m Map[K, S, V]) Keys() []K {
	keys := make([]K, 0, m.backing.Size())
	for key := range m.Seq() {
		keys = append(keys, key)
	}

	return keys
}

// Values returns all values in ascending surrogate order of their keys.
func (m Map[K, S, V]) Values() []V {
	return m.backing.Values()
}

// Entries returns all entries in ascending surrogate order.
func (m Map[K, S, V]) Entries() []Entry[K, V] {
	entries := make([]Entry[K, V], 0, m.backing.Size())
	for key, value := range m.Seq() {
		entries = append(entries, Entry[K, V]{Key: key, Value: value})
	}

	return entries
}

// Filter returns a Map with only the entries satisfying the predicate,
// carrying the same codec.
func (m Map[K, S, V]) Filter(predicate func(key K, value V) bool) Map[K, S, V] {
	filtered := m.backing.Filter(func(surrogate S, value V) bool {
		return predicate(m.codec.FromSurrogate(surrogate), value)
	})

	return Map[K, S, V]{codec: m.codec, backing: filtered}
}

// FilterNot returns a Map with only the entries for which the predicate
// returns false.
func (m Map[K, S, V]) FilterNot(predicate func(key K, value V) bool) Map[K, S, V] {
	return m.Filter(func(key K, value V) bool {
		return !predicate(key, value)
	})
}

// Partition splits the Map into the entries satisfying the predicate and
// those that don't. Both outputs carry the receiver's codec.
func (m Map[K, S, V]) Partition(
	predicate func(key K, value V) bool,
) (matching Map[K, S, V], rest Map[K, S, V]) {
	matchingBacking, restBacking := m.backing.Partition(func(surrogate S, value V) bool {
		return predicate(m.codec.FromSurrogate(surrogate), value)
	})

	return Map[K, S, V]{codec: m.codec, backing: matchingBacking},
		Map[K, S, V]{codec: m.codec, backing: restBacking}
}

// ForEach applies f to every entry in ascending surrogate order.
func (m Map[K, S, V]) ForEach(f func(key K, value V)) {
	for key, value := range m.Seq() {
		f(key, value)
	}
}

// ForAll reports whether the predicate holds for every entry.
// Returns true for an empty Map.
func (m Map[K, S, V]) ForAll(predicate func(key K, value V) bool) bool {
	for key, value := range m.Seq() {
		if !predicate(key, value) {
			return false
		}
	}

	return true
}

// Exists reports whether at least one entry satisfies the predicate.
func (m Map[K, S, V]) Exists(predicate func(key K, value V) bool) bool {
	for key, value := range m.Seq() {
		if predicate(key, value) {
			return true
		}
	}

	return false
}

// Union returns a Map with the entries of both maps. On surrogate collision
// the receiver's value wins. The result carries the receiver's codec.
//
// Precondition: both maps were built with the same codec. Surrogates from
// other are stored as-is and reconstructed with the receiver's FromSurrogate;
// with differing codecs the result is silently wrong (see package doc).
func (m Map[K, S, V]) Union(other Map[K, S, V]) Map[K, S, V] {
	return Map[K, S, V]{codec: m.codec, backing: m.backing.Union(other.backing)}
}

// Intersection returns a Map with only the entries whose surrogates exist in
// both maps, values taken from the receiver. The result carries the
// receiver's codec. Same codec precondition as Union.
func (m Map[K, S, V]) Intersection(other Map[K, S, V]) Map[K, S, V] {
	return Map[K, S, V]{codec: m.codec, backing: m.backing.Intersection(other.backing)}
}

// Difference returns a Map with the receiver's entries whose surrogates are
// absent from other. The result carries the receiver's codec. Same codec
// precondition as Union.
func (m Map[K, S, V]) Difference(other Map[K, S, V]) Map[K, S, V] {
	return Map[K, S, V]{codec: m.codec, backing: m.backing.Difference(other.backing)}
}
