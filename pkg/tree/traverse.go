package tree

import "iter"

// Traversals are lazy: nothing is visited until the sequence is ranged, and
// the consumer breaking out of the range is the only cancellation mechanism.
// The start node itself is never yielded; traversing a leaf yields nothing.
//
// Precondition: the graph reachable from start is acyclic. There is no cycle
// detection here; a cyclic graph loops forever. See VerifyAcyclic for an
// opt-in construction-time check.

// childSet reads the current child container of the node in b.
func childSet[N Childed[N]](b *Box[N]) Set[N] {
	return (*b.Ptr()).ChildSet()
}

// BreadthFirst enumerates the descendants of start in level order: all
// direct children first, in container order, then all grandchildren grouped
// by parent, and so on level by level.
func BreadthFirst[N Childed[N]](start *Box[N]) iter.Seq[*Box[N]] {
	return func(yield func(*Box[N]) bool) {
		if start == nil {
			return
		}
		queue := []*Box[N]{start}
		for len(queue) > 0 {
			cur := queue[0]
			queue = queue[1:]
			for c := range childSet(cur).All() {
				if !yield(c) {
					return
				}
				queue = append(queue, c)
			}
		}
	}
}

// DepthFirst enumerates the descendants of start in pre-order: each child
// immediately followed by its full subtree, before the next sibling.
func DepthFirst[N Childed[N]](start *Box[N]) iter.Seq[*Box[N]] {
	return func(yield func(*Box[N]) bool) {
		if start == nil {
			return
		}
		depthFirst(start, yield)
	}
}

func depthFirst[N Childed[N]](b *Box[N], yield func(*Box[N]) bool) bool {
	for c := range childSet(b).All() {
		if !yield(c) {
			return false
		}
		if !depthFirst(c, yield) {
			return false
		}
	}
	return true
}

// Ancestors walks upward from n's parent to the root. The start node is not
// yielded, mirroring the downward traversals.
func Ancestors[N Parented[N]](n *Box[N]) iter.Seq[*Box[N]] {
	return func(yield func(*Box[N]) bool) {
		if n == nil {
			return
		}
		for cur := (*n.Ptr()).ParentBox(); cur != nil; cur = (*cur.Ptr()).ParentBox() {
			if !yield(cur) {
				return
			}
		}
	}
}

// BreadthFirstKeys enumerates descendant keys in level order. The key type
// is not inferrable from the argument, so callers name it:
// BreadthFirstKeys[string](root).
func BreadthFirstKeys[K comparable, N KeyedNode[N, K]](start *Box[N]) iter.Seq[K] {
	return Selected(BreadthFirst(start), keyOf[K, N])
}

// DepthFirstKeys enumerates descendant keys in pre-order.
func DepthFirstKeys[K comparable, N KeyedNode[N, K]](start *Box[N]) iter.Seq[K] {
	return Selected(DepthFirst(start), keyOf[K, N])
}

// BreadthFirstKeyed enumerates key/cell pairs in level order, for use with
// pair predicates via Filtered2.
func BreadthFirstKeyed[K comparable, N KeyedNode[N, K]](start *Box[N]) iter.Seq2[K, *Box[N]] {
	return pairs[K](BreadthFirst(start))
}

// DepthFirstKeyed enumerates key/cell pairs in pre-order.
func DepthFirstKeyed[K comparable, N KeyedNode[N, K]](start *Box[N]) iter.Seq2[K, *Box[N]] {
	return pairs[K](DepthFirst(start))
}

// BreadthFirstValues enumerates descendant payloads in level order. As with
// the key enumerations, the payload type is named explicitly:
// BreadthFirstValues[string](root).
func BreadthFirstValues[V any, N ValuedNode[N, V]](start *Box[N]) iter.Seq[V] {
	return Selected(BreadthFirst(start), valueOf[V, N])
}

// DepthFirstValues enumerates descendant payloads in pre-order.
func DepthFirstValues[V any, N ValuedNode[N, V]](start *Box[N]) iter.Seq[V] {
	return Selected(DepthFirst(start), valueOf[V, N])
}

func keyOf[K comparable, N KeyedNode[N, K]](b *Box[N]) K {
	return (*b.Ptr()).Key()
}

func valueOf[V any, N ValuedNode[N, V]](b *Box[N]) V {
	return (*b.Ptr()).Value()
}

func pairs[K comparable, N KeyedNode[N, K]](seq iter.Seq[*Box[N]]) iter.Seq2[K, *Box[N]] {
	return func(yield func(K, *Box[N]) bool) {
		for b := range seq {
			if !yield((*b.Ptr()).Key(), b) {
				return
			}
		}
	}
}
