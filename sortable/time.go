package sortable

import "time"

// Time is a sortable wrapper type for time.Time, ordered chronologically.
// Equality follows time.Time.Equal, so two instants in different locations
// compare equal when they represent the same moment.
type Time time.Time

// Compile-time check that Time implements Sortable[Time].
var _ Sortable[Time] = (*Time)(nil)

// Equals returns true if this Time and the other Time represent the same instant.
func (t Time) Equals(other Time) bool {
	return time.Time(t).Equal(time.Time(other))
}

// LessThan returns true if this Time is before the other Time.
func (t Time) LessThan(other Time) bool {
	return time.Time(t).Before(time.Time(other))
}
