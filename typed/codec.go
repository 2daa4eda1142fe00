package typed

import (
	"reflect"

	"github.com/amp-labs/amp-typed/sortable"
)

// Codec is the conversion pair projecting a key type K onto an orderable
// surrogate type S. It is supplied once at container construction and carried
// unchanged through every operation.
//
// Both functions must be total, and mutually inverse over the keys actually
// used: FromSurrogate(ToSurrogate(k)) == k. This is a caller contract; the
// library performs no runtime verification. A ToSurrogate that maps two
// distinct keys to the same surrogate makes them the same entry.
type Codec[K any, S sortable.Sortable[S]] struct {
	// ToSurrogate projects a key onto its storage/comparison surrogate.
	ToSurrogate func(key K) S

	// FromSurrogate reconstructs the key from its surrogate.
	FromSurrogate func(surrogate S) K
}

// NewCodec creates a Codec from the given conversion pair.
func NewCodec[K any, S sortable.Sortable[S]](
	toSurrogate func(key K) S,
	fromSurrogate func(surrogate S) K,
) Codec[K, S] {
	return Codec[K, S]{
		ToSurrogate:   toSurrogate,
		FromSurrogate: fromSurrogate,
	}
}

// Is reports whether other holds the identical conversion functions, compared
// by function identity. It is an advisory check for callers that want to
// assert codec identity before combining containers; the combining operations
// themselves never call it.
//
// The comparison is approximate: it uses the functions' code pointers, which
// the reflect documentation does not guarantee to identify a function
// uniquely. Codecs built from separately created closures may compare false
// even when they behave identically. Treat Is as a cheap sanity check, not
// semantic equality.
func (c Codec[K, S]) Is(other Codec[K, S]) bool {
	return reflect.ValueOf(c.ToSurrogate).Pointer() == reflect.ValueOf(other.ToSurrogate).Pointer() &&
		reflect.ValueOf(c.FromSurrogate).Pointer() == reflect.ValueOf(other.FromSurrogate).Pointer()
}
