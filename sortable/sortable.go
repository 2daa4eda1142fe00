package sortable

// Sortable is the capability bound for types that participate in ordered
// containers. Implementations must provide a total order: for any pair of
// values a and b, exactly one of a.LessThan(b), b.LessThan(a), or
// a.Equals(b) holds.
type Sortable[T any] interface {
	// Equals reports whether this value and other occupy the same position
	// in the type's ordering.
	Equals(other T) bool

	// LessThan reports whether this value sorts strictly before other.
	LessThan(other T) bool
}
