package tree

// Box is a shared, mutable, heap-allocated cell holding exactly one node
// value. Two Box pointers may alias the same cell; a Set through one is
// visible through the other. This is what lets a value-type node be linked
// both downward (from a child container) and upward (from a parent
// reference) without the two copies drifting apart.
//
// A nil *Box is the absent cell. Calling Value, Ptr, or Set on it panics;
// absence is for callers to check, not for the cell to absorb.
//
// Wrapping and unwrapping are explicit. There is intentionally no implicit
// conversion between T and Box[T]: for large node values such conversions
// hide expensive copies.
type Box[T any] struct {
	val T
}

// NewBox wraps v in a fresh cell. The cell takes its own copy of v.
func NewBox[T any](v T) *Box[T] {
	return &Box[T]{val: v}
}

// Value returns a copy of the contained value.
func (b *Box[T]) Value() T {
	return b.val
}

// Ptr returns a pointer to the contained value for in-place mutation.
// The pointer stays valid for the lifetime of the cell.
func (b *Box[T]) Ptr() *T {
	return &b.val
}

// Set replaces the contained value. Every alias of the cell observes the
// replacement.
func (b *Box[T]) Set(v T) {
	b.val = v
}

// Same reports whether b and other are the same cell (identity equality).
// Structural equality of contents is deliberately not provided here;
// callers that want it compare Value results themselves. Algorithms such as
// sibling exclusion depend on identity and would be wrong under structural
// comparison when sibling values are content-identical.
func (b *Box[T]) Same(other *Box[T]) bool {
	return b == other
}

// KeyedBox is a Box additionally tagged with an immutable lookup key, set
// at construction and read many times. It is the stored cell of the Dict
// child container, so a single allocation serves both "child accessible by
// key" and "child as graph node with identity". The embedded Box is the
// node's identity: &kb.Box aliases the same cell.
type KeyedBox[K comparable, T any] struct {
	Box[T]
	key K
}

// NewKeyedBox wraps v in a fresh cell tagged with key.
func NewKeyedBox[K comparable, T any](key K, v T) *KeyedBox[K, T] {
	return &KeyedBox[K, T]{Box: Box[T]{val: v}, key: key}
}

// Key returns the immutable key the cell was constructed with.
func (b *KeyedBox[K, T]) Key() K {
	return b.key
}
