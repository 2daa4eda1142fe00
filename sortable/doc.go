// Package sortable provides wrapper types for primitive types that implement
// the Sortable interface, enabling their use as keys in sorted data structures.
//
// # Overview
//
// The sortable package defines the [Sortable] interface and provides
// ready-to-use implementations for common primitive types: [Int], [Byte],
// [String], [Uint64], [Float64], [Time], and [Natural]. These types are
// designed to work as the key/element bound of the ordered collections in
// [github.com/amp-labs/amp-typed/ordered] and as the surrogate bound of the
// typed containers in [github.com/amp-labs/amp-typed/typed].
//
// The Sortable interface combines equality comparison (Equals) with ordering
// (LessThan), which together must form a total order.
//
// # Usage
//
// Use the provided wrapper types when you need sorted collections:
//
//	// Create a sorted set of integers
//	intSet := ordered.NewTreeSet[sortable.Int]()
//	intSet.Add(sortable.Int(42))
//	intSet.Add(sortable.Int(10))
//	intSet.Add(sortable.Int(25))
//
//	// Elements are returned in sorted order: 10, 25, 42
//	for val := range intSet.Seq() {
//	    fmt.Println(int(val))
//	}
//
// # Creating Custom Sortable Types
//
// To create a custom sortable type, implement the Sortable interface:
//
//	type MyType struct {
//	    Priority int
//	    Name     string
//	}
//
//	func (m MyType) Equals(other MyType) bool {
//	    return m.Priority == other.Priority && m.Name == other.Name
//	}
//
//	func (m MyType) LessThan(other MyType) bool {
//	    if m.Priority != other.Priority {
//	        return m.Priority < other.Priority
//	    }
//	    return m.Name < other.Name
//	}
//
// # Thread Safety
//
// The wrapper types in this package are value types and are inherently
// thread-safe for read operations. Collections built on top of them may not
// be thread-safe and require external synchronization for concurrent writes.
package sortable
