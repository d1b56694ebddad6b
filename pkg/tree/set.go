package tree

import "iter"

// Set is the injected child-storage strategy. Algorithms only ever need the
// two operations here; anything storage-specific (index access, key lookup,
// mutation) lives on the concrete container.
//
// All returns the children in the container's deterministic order. The
// sequence is finite, re-rangeable, and must not be consumed while the
// container is being mutated.
type Set[N any] interface {
	Len() int
	All() iter.Seq[*Box[N]]
}

// KeyedLookup is the optional fast-descent capability. Searches probe their
// Set for it and fall back to a linear key scan when absent, which is what
// makes downward search O(depth) for Dict children but O(depth x branching)
// for Slice or List children.
type KeyedLookup[K comparable, N any] interface {
	ByKey(K) (*Box[N], bool)
}

// ---------------------------------------------------------------------------
// Slice: fixed array of cells
// ---------------------------------------------------------------------------

// Slice is the fixed-shape child container: an array of cells populated at
// construction. Fastest to iterate; conventionally immutable afterwards.
// A nil *Slice enumerates as empty.
type Slice[N any] struct {
	cells []*Box[N]
}

// NewSlice wraps each value in a fresh cell.
func NewSlice[N any](vals ...N) *Slice[N] {
	s := &Slice[N]{cells: make([]*Box[N], len(vals))}
	for i, v := range vals {
		s.cells[i] = NewBox(v)
	}
	return s
}

// SliceOf builds a Slice from existing cells without re-wrapping them.
func SliceOf[N any](cells ...*Box[N]) *Slice[N] {
	return &Slice[N]{cells: cells}
}

func (s *Slice[N]) Len() int {
	if s == nil {
		return 0
	}
	return len(s.cells)
}

// At returns the i-th cell. Out-of-range i panics.
func (s *Slice[N]) At(i int) *Box[N] {
	return s.cells[i]
}

func (s *Slice[N]) All() iter.Seq[*Box[N]] {
	return func(yield func(*Box[N]) bool) {
		if s == nil {
			return
		}
		for _, c := range s.cells {
			if !yield(c) {
				return
			}
		}
	}
}

// ---------------------------------------------------------------------------
// Dict: keyed dictionary of cells
// ---------------------------------------------------------------------------

// Dict is the keyed child container: unique keys, O(1) lookup, and explicit
// insertion order so that All is deterministic (Go map iteration order is
// randomized and would leak into every traversal). A nil *Dict enumerates
// as empty.
type Dict[K comparable, N any] struct {
	order []*KeyedBox[K, N]
	index map[K]*KeyedBox[K, N]
}

// NewDict returns an empty Dict.
func NewDict[K comparable, N any]() *Dict[K, N] {
	return &Dict[K, N]{index: make(map[K]*KeyedBox[K, N])}
}

// Put inserts v under key and returns its cell. If the key is already
// present the existing cell's contents are replaced; the cell identity and
// insertion position are preserved, so parent links held elsewhere stay
// valid.
func (d *Dict[K, N]) Put(key K, v N) *KeyedBox[K, N] {
	if d.index == nil {
		d.index = make(map[K]*KeyedBox[K, N])
	}
	if cell, ok := d.index[key]; ok {
		cell.Set(v)
		return cell
	}
	cell := NewKeyedBox(key, v)
	d.index[key] = cell
	d.order = append(d.order, cell)
	return cell
}

func (d *Dict[K, N]) Len() int {
	if d == nil {
		return 0
	}
	return len(d.order)
}

// ByKey returns the cell stored under key.
func (d *Dict[K, N]) ByKey(key K) (*Box[N], bool) {
	if d == nil {
		return nil, false
	}
	cell, ok := d.index[key]
	if !ok {
		return nil, false
	}
	return &cell.Box, true
}

func (d *Dict[K, N]) All() iter.Seq[*Box[N]] {
	return func(yield func(*Box[N]) bool) {
		if d == nil {
			return
		}
		for _, cell := range d.order {
			if !yield(&cell.Box) {
				return
			}
		}
	}
}

// Keys returns the keys in insertion order.
func (d *Dict[K, N]) Keys() iter.Seq[K] {
	return func(yield func(K) bool) {
		if d == nil {
			return
		}
		for _, cell := range d.order {
			if !yield(cell.Key()) {
				return
			}
		}
	}
}

// Pairs returns key/cell pairs in insertion order.
func (d *Dict[K, N]) Pairs() iter.Seq2[K, *Box[N]] {
	return func(yield func(K, *Box[N]) bool) {
		if d == nil {
			return
		}
		for _, cell := range d.order {
			if !yield(cell.Key(), &cell.Box) {
				return
			}
		}
	}
}

// ---------------------------------------------------------------------------
// List: mutable ordered sequence of cells
// ---------------------------------------------------------------------------

// List is the mutation-oriented child container: an ordered sequence
// supporting insertion and removal after construction. Mutating a List
// while a traversal over it is in progress is undefined behavior. A nil
// *List enumerates as empty.
type List[N any] struct {
	cells []*Box[N]
}

// NewList wraps each value in a fresh cell.
func NewList[N any](vals ...N) *List[N] {
	l := &List[N]{cells: make([]*Box[N], 0, len(vals))}
	for _, v := range vals {
		l.cells = append(l.cells, NewBox(v))
	}
	return l
}

func (l *List[N]) Len() int {
	if l == nil {
		return 0
	}
	return len(l.cells)
}

// At returns the i-th cell. Out-of-range i panics.
func (l *List[N]) At(i int) *Box[N] {
	return l.cells[i]
}

// Append adds an existing cell at the end.
func (l *List[N]) Append(cell *Box[N]) {
	l.cells = append(l.cells, cell)
}

// AppendValue wraps v in a fresh cell, appends it, and returns it.
func (l *List[N]) AppendValue(v N) *Box[N] {
	cell := NewBox(v)
	l.cells = append(l.cells, cell)
	return cell
}

// Insert places cell at position i, shifting later cells right.
// i must be in [0, Len()].
func (l *List[N]) Insert(i int, cell *Box[N]) {
	l.cells = append(l.cells, nil)
	copy(l.cells[i+1:], l.cells[i:])
	l.cells[i] = cell
}

// RemoveAt removes and returns the i-th cell. Out-of-range i panics.
func (l *List[N]) RemoveAt(i int) *Box[N] {
	cell := l.cells[i]
	l.cells = append(l.cells[:i], l.cells[i+1:]...)
	return cell
}

// Remove removes the given cell by identity and reports whether it was
// present. Content-equal but distinct cells are untouched.
func (l *List[N]) Remove(cell *Box[N]) bool {
	for i, c := range l.cells {
		if c.Same(cell) {
			l.RemoveAt(i)
			return true
		}
	}
	return false
}

func (l *List[N]) All() iter.Seq[*Box[N]] {
	return func(yield func(*Box[N]) bool) {
		if l == nil {
			return
		}
		for _, c := range l.cells {
			if !yield(c) {
				return
			}
		}
	}
}

// Compile-time checks that every container satisfies the strategy contracts.
var _ Set[int] = (*Slice[int])(nil)
var _ Set[int] = (*Dict[string, int])(nil)
var _ Set[int] = (*List[int])(nil)
var _ KeyedLookup[string, int] = (*Dict[string, int])(nil)
