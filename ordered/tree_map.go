// This file contains treeMap, a red-black tree implementation of the Map
// interface: a self-balancing binary search tree that keeps entries in key
// order with O(log n) insertion, removal, and lookup.
//
// The tree enforces the usual red-black properties to stay balanced:
//  1. Every node is either red or black
//  2. The root is always black
//  3. All leaves (nil nodes) are considered black
//  4. Red nodes cannot have red children
//  5. Every path from root to leaf contains the same number of black nodes

package ordered

import (
	"fmt"
	"iter"

	"github.com/amp-labs/amp-typed/sortable"
	"github.com/amp-labs/amp-typed/zero"
)

// nodeColor is the color of a red-black tree node. Black is represented as
// true so that the zero value of a node is black.
type nodeColor bool

const (
	black, red nodeColor = true, false
)

// String returns a human-readable representation of the node color.
func (c nodeColor) String() string {
	if c == black {
		return "Black"
	}

	return "Red"
}

// mapNode is a single node in the red-black tree: a key-value pair plus the
// links and color used for balancing.
type mapNode[K sortable.Sortable[K], V any] struct {
	key    K
	value  V
	color  nodeColor
	left   *mapNode[K, V]
	right  *mapNode[K, V]
	parent *mapNode[K, V]
}

// String returns a string representation of the node showing its key and color.
func (n *mapNode[K, V]) String() string {
	return fmt.Sprintf("(%#v : %s)", n.key, n.color)
}

// ascend runs an in-order traversal of the subtree rooted at n, yielding
// entries in ascending key order. Returns false if yield stopped traversal.
func (n *mapNode[K, V]) ascend(yield func(K, V) bool) bool {
	if n == nil {
		return true
	}

	if !n.left.ascend(yield) {
		return false
	}

	if !yield(n.key, n.value) {
		return false
	}

	return n.right.ascend(yield)
}

// descend runs a reverse in-order traversal of the subtree rooted at n,
// yielding entries in descending key order.
func (n *mapNode[K, V]) descend(yield func(K, V) bool) bool {
	if n == nil {
		return true
	}

	if !n.right.descend(yield) {
		return false
	}

	if !yield(n.key, n.value) {
		return false
	}

	return n.left.descend(yield)
}

// isRed reports whether the node is red. nil nodes are black by convention.
func isRed[K sortable.Sortable[K], V any](n *mapNode[K, V]) bool {
	return n != nil && n.color == red
}

// treeMap is the red-black tree implementation of Map.
// It additionally maintains a node count so Size is O(1).
type treeMap[K sortable.Sortable[K], V any] struct {
	root  *mapNode[K, V]
	count int
}

// NewTreeMap creates a new empty red-black tree map.
// The map keeps entries sorted by key and maintains O(log n) performance for
// insertion, removal, and lookup.
func NewTreeMap[K sortable.Sortable[K], V any]() Map[K, V] {
	return newTreeMap[K, V]()
}

func newTreeMap[K sortable.Sortable[K], V any]() *treeMap[K, V] {
	return &treeMap[K, V]{}
}

// lookup returns the node holding key, or nil if absent.
func (t *treeMap[K, V]) lookup(key K) *mapNode[K, V] {
	node := t.root
	for node != nil {
		switch {
		case key.Equals(node.key):
			return node
		case key.LessThan(node.key):
			node = node.left
		default:
			node = node.right
		}
	}

	return nil
}

// Get retrieves the value associated with the given key.
func (t *treeMap[K, V]) Get(key K) (V, bool) {
	if node := t.lookup(key); node != nil {
		return node.value, true
	}

	return zero.Value[V](), false
}

// GetOrElse retrieves the value for the given key, or defaultValue if absent.
func (t *treeMap[K, V]) GetOrElse(key K, defaultValue V) V {
	if value, found := t.Get(key); found {
		return value
	}

	return defaultValue
}

// Add inserts or updates a key-value pair. If the key already exists its
// value is replaced; otherwise the new node is inserted and the tree is
// rebalanced to restore the red-black properties.
func (t *treeMap[K, V]) Add(key K, value V) {
	var parent *mapNode[K, V]

	node := t.root
	for node != nil {
		parent = node

		switch {
		case key.Equals(node.key):
			node.value = value

			return
		case key.LessThan(node.key):
			node = node.left
		default:
			node = node.right
		}
	}

	inserted := &mapNode[K, V]{key: key, value: value, parent: parent}
	t.count++

	if parent == nil {
		inserted.color = black
		t.root = inserted

		return
	}

	if key.LessThan(parent.key) {
		parent.left = inserted
	} else {
		parent.right = inserted
	}

	t.insertFixup(inserted)
}

// Remove deletes the entry with the given key, rebalancing afterwards.
// If the key doesn't exist, this is a no-op.
//
// nolint:varnamelen // Standard red-black tree variable names from CLRS
func (t *treeMap[K, V]) Remove(key K) {
	z := t.lookup(key)
	if z == nil {
		return
	}

	t.count--

	y := z
	yOriginalColor := y.color

	var x *mapNode[K, V]

	switch {
	case z.left == nil:
		x = z.right
		t.transplant(z, z.right)
	case z.right == nil:
		x = z.left
		t.transplant(z, z.left)
	default:
		y = minimum(z.right)
		yOriginalColor = y.color
		x = y.right

		if y.parent == z {
			if x != nil {
				x.parent = y
			}
		} else {
			t.transplant(y, y.right)
			y.right = z.right
			y.right.parent = y
		}

		t.transplant(z, y)

		y.left = z.left
		y.left.parent = y
		y.color = z.color
	}

	if yOriginalColor == black {
		t.deleteFixup(x)
	}
}

// Clear removes all entries, resetting the map to empty.
func (t *treeMap[K, V]) Clear() {
	t.root = nil
	t.count = 0
}

// Contains reports whether the map contains the given key.
func (t *treeMap[K, V]) Contains(key K) bool {
	return t.lookup(key) != nil
}

// Size returns the number of entries in the map.
func (t *treeMap[K, V]) Size() int {
	return t.count
}

// IsEmpty reports whether the map holds no entries.
func (t *treeMap[K, V]) IsEmpty() bool {
	return t.count == 0
}

// Seq returns an iterator over entries in ascending key order.
func (t *treeMap[K, V]) Seq() iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		t.root.ascend(yield)
	}
}

// SeqBackward returns an iterator over entries in descending key order.
func (t *treeMap[K, V]) SeqBackward() iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		t.root.descend(yield)
	}
}

// Keys returns all keys in ascending order.
func (t *treeMap[K, V]) Keys() []K {
	keys := make([]K, 0, t.count)
	for key := range t.Seq() {
		keys = append(keys, key)
	}

	return keys
}

// Values returns all values in ascending order of their keys.
func (t *treeMap[K, V]) Values() []V {
	values := make([]V, 0, t.count)
	for _, value := range t.Seq() {
		values = append(values, value)
	}

	return values
}

// Clone returns a shallow copy of the map with the same entries.
func (t *treeMap[K, V]) Clone() Map[K, V] {
	cloned := newTreeMap[K, V]()
	for key, value := range t.Seq() {
		cloned.Add(key, value)
	}

	return cloned
}

// Union returns a new map with the entries of both maps.
// For keys present in both, the receiver's value wins.
func (t *treeMap[K, V]) Union(other Map[K, V]) Map[K, V] {
	out := t.Clone()

	for key, value := range other.Seq() {
		if !out.Contains(key) {
			out.Add(key, value)
		}
	}

	return out
}

// Intersection returns a new map with only the entries whose keys exist in
// both maps. Values are taken from the receiver.
func (t *treeMap[K, V]) Intersection(other Map[K, V]) Map[K, V] {
	out := newTreeMap[K, V]()

	for key, value := range t.Seq() {
		if other.Contains(key) {
			out.Add(key, value)
		}
	}

	return out
}

// Difference returns a new map with the receiver's entries whose keys are
// absent from other.
func (t *treeMap[K, V]) Difference(other Map[K, V]) Map[K, V] {
	out := newTreeMap[K, V]()

	for key, value := range t.Seq() {
		if !other.Contains(key) {
			out.Add(key, value)
		}
	}

	return out
}

// Filter returns a new map with only the entries satisfying the predicate.
func (t *treeMap[K, V]) Filter(predicate func(key K, value V) bool) Map[K, V] {
	out := newTreeMap[K, V]()

	for key, value := range t.Seq() {
		if predicate(key, value) {
			out.Add(key, value)
		}
	}

	return out
}

// FilterNot returns a new map with only the entries for which the predicate
// returns false.
func (t *treeMap[K, V]) FilterNot(predicate func(key K, value V) bool) Map[K, V] {
	return t.Filter(func(key K, value V) bool {
		return !predicate(key, value)
	})
}

// Partition splits the map into the entries satisfying the predicate and
// those that don't.
func (t *treeMap[K, V]) Partition(predicate func(key K, value V) bool) (Map[K, V], Map[K, V]) {
	matching := newTreeMap[K, V]()
	rest := newTreeMap[K, V]()

	for key, value := range t.Seq() {
		if predicate(key, value) {
			matching.Add(key, value)
		} else {
			rest.Add(key, value)
		}
	}

	return matching, rest
}

// ForEach applies f to every entry in ascending key order.
func (t *treeMap[K, V]) ForEach(f func(key K, value V)) {
	for key, value := range t.Seq() {
		f(key, value)
	}
}

// ForAll reports whether the predicate holds for every entry.
// Returns true for an empty map.
func (t *treeMap[K, V]) ForAll(predicate func(key K, value V) bool) bool {
	for key, value := range t.Seq() {
		if !predicate(key, value) {
			return false
		}
	}

	return true
}

// Exists reports whether at least one entry satisfies the predicate.
func (t *treeMap[K, V]) Exists(predicate func(key K, value V) bool) bool {
	for key, value := range t.Seq() {
		if predicate(key, value) {
			return true
		}
	}

	return false
}

// rotateLeft performs a left rotation around node x:
//
//	  x                y
//	 / \              / \
//	A   y      =>    x   C
//	   / \          / \
//	  B   C        A   B
//
// nolint:varnamelen // Standard red-black tree variable names from CLRS
func (t *treeMap[K, V]) rotateLeft(x *mapNode[K, V]) {
	if x == nil || x.right == nil {
		return
	}

	y := x.right
	x.right = y.left

	if y.left != nil {
		y.left.parent = x
	}

	y.parent = x.parent

	switch {
	case x.parent == nil:
		t.root = y
	case x == x.parent.left:
		x.parent.left = y
	default:
		x.parent.right = y
	}

	y.left = x
	x.parent = y
}

// rotateRight performs a right rotation around node y:
//
//	    y              x
//	   / \            / \
//	  x   C   =>     A   y
//	 / \                / \
//	A   B              B   C
//
// nolint:varnamelen // Standard red-black tree variable names from CLRS
func (t *treeMap[K, V]) rotateRight(y *mapNode[K, V]) {
	if y == nil || y.left == nil {
		return
	}

	x := y.left
	y.left = x.right

	if x.right != nil {
		x.right.parent = y
	}

	x.parent = y.parent

	switch {
	case y.parent == nil:
		t.root = x
	case y == y.parent.left:
		y.parent.left = x
	default:
		y.parent.right = x
	}

	x.right = y
	y.parent = x
}

// insertFixup restores the red-black properties after inserting a node.
// New nodes are inserted red, which can violate the rule that red nodes have
// no red children; violations are repaired by recoloring and rotating, moving
// up the tree until none remain.
//
// nolint:varnamelen,nestif // Standard red-black tree variable names; algorithm shape
func (t *treeMap[K, V]) insertFixup(z *mapNode[K, V]) {
	for z.parent != nil && z.parent.color == red {
		grandparent := z.parent.parent

		if z.parent == grandparent.left {
			uncle := grandparent.right
			if isRed(uncle) {
				z.parent.color = black
				uncle.color = black
				grandparent.color = red
				z = grandparent
			} else {
				if z == z.parent.right {
					z = z.parent
					t.rotateLeft(z)
				}

				z.parent.color = black
				grandparent.color = red
				t.rotateRight(grandparent)
			}
		} else {
			uncle := grandparent.left
			if isRed(uncle) {
				z.parent.color = black
				uncle.color = black
				grandparent.color = red
				z = grandparent
			} else {
				if z == z.parent.left {
					z = z.parent
					t.rotateRight(z)
				}

				z.parent.color = black
				grandparent.color = red
				t.rotateLeft(grandparent)
			}
		}
	}

	t.root.color = black
}

// deleteFixup restores the red-black properties after removing a black node,
// which shortens the black-height of one subtree. The repair examines the
// sibling (w) of the deficient node and recolors or rotates until the
// deficiency is resolved or pushed to the root.
//
// nolint:varnamelen,dupl // Standard red-black tree variable names; symmetric cases
func (t *treeMap[K, V]) deleteFixup(x *mapNode[K, V]) {
	if x == nil {
		return
	}

	for x != t.root && x.color == black {
		if x == x.parent.left {
			w := x.parent.right
			if isRed(w) {
				w.color = black
				x.parent.color = red
				t.rotateLeft(x.parent)
				w = x.parent.right
			}

			if w == nil {
				break
			}

			if !isRed(w.left) && !isRed(w.right) {
				w.color = red
				x = x.parent // deficiency moves up

				continue
			}

			if isRed(w.left) && !isRed(w.right) {
				w.left.color = black
				w.color = red
				t.rotateRight(w)
				w = x.parent.right
			}

			if isRed(w.right) {
				w.color = x.parent.color
				x.parent.color = black
				w.right.color = black
				t.rotateLeft(x.parent)
				x = t.root
			}
		} else {
			w := x.parent.left
			if isRed(w) {
				w.color = black
				x.parent.color = red
				t.rotateRight(x.parent)
				w = x.parent.left
			}

			if w == nil {
				break
			}

			if !isRed(w.left) && !isRed(w.right) {
				w.color = red
				x = x.parent // deficiency moves up

				continue
			}

			if isRed(w.right) && !isRed(w.left) {
				w.right.color = black
				w.color = red
				t.rotateLeft(w)
				w = x.parent.left
			}

			if isRed(w.left) {
				w.color = x.parent.color
				x.parent.color = black
				w.left.color = black
				t.rotateRight(x.parent)
				x = t.root
			}
		}
	}

	x.color = black
}

// transplant replaces the subtree rooted at u with the subtree rooted at v.
// Helper for node deletion.
func (t *treeMap[K, V]) transplant(u *mapNode[K, V], v *mapNode[K, V]) {
	switch {
	case u.parent == nil:
		t.root = v
	case u == u.parent.left:
		u.parent.left = v
	default:
		u.parent.right = v
	}

	if v != nil {
		v.parent = u.parent
	}
}

// minimum returns the node with the smallest key in the subtree rooted at n:
// the leftmost node. Used during deletion to find the in-order successor.
func minimum[K sortable.Sortable[K], V any](n *mapNode[K, V]) *mapNode[K, V] {
	for n.left != nil {
		n = n.left
	}

	return n
}
