package sortable

// Uint64 is a sortable wrapper type for the built-in uint64 type.
// It is useful as a surrogate for identifier types backed by unsigned
// integers (sequence numbers, snowflake IDs, and similar).
type Uint64 uint64

// Compile-time check that Uint64 implements Sortable[Uint64].
var _ Sortable[Uint64] = (*Uint64)(nil)

// Equals returns true if this Uint64 has the same value as the other Uint64.
func (u Uint64) Equals(other Uint64) bool {
	return uint64(u) == uint64(other)
}

// LessThan returns true if this Uint64 is numerically less than the other Uint64.
func (u Uint64) LessThan(other Uint64) bool {
	return uint64(u) < uint64(other)
}
