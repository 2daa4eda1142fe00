package ordered

import (
	"iter"

	"github.com/amp-labs/amp-typed/sortable"
)

// Map is an ordered map from keys with a total order to arbitrary values.
// Iteration visits entries in ascending key order; SeqBackward visits them
// in descending key order.
//
// Thread-safety: implementations are not thread-safe. Concurrent access must
// be synchronized by the caller.
//
//nolint:interfacebloat // Map interface intentionally carries the full container surface
type Map[K sortable.Sortable[K], V any] interface {
	// Get retrieves the value for the given key.
	// Returns the value and true if the key exists, a zero value and false otherwise.
	Get(key K) (value V, found bool)

	// GetOrElse retrieves the value for the given key, or returns
	// defaultValue if the key doesn't exist.
	GetOrElse(key K, defaultValue V) V

	// Add inserts or updates a key-value pair.
	// If the key already exists, its value is replaced.
	Add(key K, value V)

	// Remove deletes the entry with the given key.
	// If the key doesn't exist, this is a no-op.
	Remove(key K)

	// Clear removes all entries, leaving the map empty.
	Clear()

	// Contains reports whether the given key exists in the map.
	Contains(key K) bool

	// Size returns the number of entries currently stored. O(1).
	Size() int

	// IsEmpty reports whether the map holds no entries.
	IsEmpty() bool

	// Seq returns an iterator over entries in ascending key order,
	// compatible with range-over-func: for k, v := range m.Seq() { ... }.
	Seq() iter.Seq2[K, V]

	// SeqBackward returns an iterator over entries in descending key order.
	SeqBackward() iter.Seq2[K, V]

	// Keys returns all keys in ascending order.
	Keys() []K

	// Values returns all values in ascending order of their keys.
	Values() []V

	// Clone returns a shallow copy of the map. Keys and values are
	// referenced as-is, not deep-copied.
	Clone() Map[K, V]

	// Union returns a new map containing all entries from both maps.
	// For keys present in both, the receiver's value wins.
	Union(other Map[K, V]) Map[K, V]

	// Intersection returns a new map containing only entries whose keys
	// exist in both maps, with values taken from the receiver.
	Intersection(other Map[K, V]) Map[K, V]

	// Difference returns a new map containing the receiver's entries whose
	// keys are absent from other.
	Difference(other Map[K, V]) Map[K, V]

	// Filter returns a new map with only the entries satisfying the predicate.
	Filter(predicate func(key K, value V) bool) Map[K, V]

	// FilterNot returns a new map with only the entries for which the
	// predicate returns false.
	FilterNot(predicate func(key K, value V) bool) Map[K, V]

	// Partition splits the map into the entries satisfying the predicate
	// and those that don't.
	Partition(predicate func(key K, value V) bool) (matching Map[K, V], rest Map[K, V])

	// ForEach applies f to every entry in ascending key order.
	ForEach(f func(key K, value V))

	// ForAll reports whether the predicate holds for every entry.
	// Returns true for an empty map.
	ForAll(predicate func(key K, value V) bool) bool

	// Exists reports whether at least one entry satisfies the predicate.
	Exists(predicate func(key K, value V) bool) bool
}
