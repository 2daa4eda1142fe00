package sortable

import "facette.io/natsort"

// Natural is a sortable wrapper type for strings ordered using natural sort
// order, in which digit runs compare numerically: "file2" sorts before
// "file10", where plain lexicographic order would place it after.
//
// Use [String] instead when plain byte-wise ordering is wanted.
type Natural string

// Compile-time check that Natural implements Sortable[Natural].
var _ Sortable[Natural] = (*Natural)(nil)

// Equals returns true if this Natural has the same value as the other Natural.
func (n Natural) Equals(other Natural) bool {
	return string(n) == string(other)
}

// LessThan returns true if this Natural precedes the other Natural in
// natural sort order. Values that tie under natural order but differ
// byte-wise ("file1" vs "file01") are broken lexicographically, keeping the
// order strict.
func (n Natural) LessThan(other Natural) bool {
	if n.Equals(other) {
		return false
	}

	forward := natsort.Compare(string(n), string(other))
	if forward == natsort.Compare(string(other), string(n)) {
		// natsort.Compare is non-strict: it answers true in both directions
		// for natural ties, and for equal inputs.
		return string(n) < string(other)
	}

	return forward
}
