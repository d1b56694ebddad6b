package tree

import (
	"fmt"
	"slices"
	"strings"
)

// The capability contracts below are independent and freely composable: a
// concrete node type is a plain struct with value-receiver methods that opts
// into any subset of them. Algorithms are constrained on exactly the
// contracts they need, so combining capabilities costs nothing at runtime.

// Childed is the one children contract. The three child-storage strategies
// (fixed Slice, keyed Dict, mutable List) are Set implementations, not
// separate contracts, so every algorithm is written once.
//
// ChildSet must never return a nil interface; a node with no children
// returns its (possibly nil-pointer) container, which enumerates as empty.
type Childed[N any] interface {
	ChildSet() Set[N]
}

// Parented exposes a node's optional parent cell; nil means the node is a
// root. If node B is reachable as a child of node A, B's parent cell must be
// the same cell as A's (Box.Same), not a copy holding an equal value. The
// data structure does not enforce this; it is an obligation on
// tree-construction code, checkable after the fact with VerifyParentLinks.
type Parented[N any] interface {
	ParentBox() *Box[N]
}

// Keyed exposes a node's immutable name within its parent. A node stored in
// a parent Dict under key k is expected, by convention, to also report k
// here; the two are not mechanically linked.
type Keyed[K comparable] interface {
	Key() K
}

// Valued exposes an arbitrary payload, read-only from the algorithms'
// point of view and independent of tree shape.
type Valued[V any] interface {
	Value() V
}

// Leveled exposes a stored distance from the root (root = 0). The field is
// written by tree construction and never verified or updated by traversal.
type Leveled interface {
	Depth() int
}

// FileTyped marks a node as a file or a directory. Nothing in this package
// reads or writes real files; the flag is plain data.
type FileTyped interface {
	IsFile() bool
}

// SegmentValue is the contract a path-segment type must satisfy: equality
// and a string form. pathutil.Segment satisfies it; the core does not depend
// on that package.
type SegmentValue interface {
	comparable
	fmt.Stringer
}

// PathSegmented exposes the node's path segment.
type PathSegmented[S SegmentValue] interface {
	PathSegment() S
}

// Common contract combinations used by the algorithms.
type (
	// KeyedNode has children and a key: downward search, key enumeration.
	KeyedNode[N any, K comparable] interface {
		Childed[N]
		Keyed[K]
	}

	// ParentKeyedNode has a parent and a key: upward search.
	ParentKeyedNode[N any, K comparable] interface {
		Parented[N]
		Keyed[K]
	}

	// Linked has both directions: siblings, parent-link verification.
	Linked[N any] interface {
		Childed[N]
		Parented[N]
	}

	// LinkedKeyedNode supports the all-matches upward search.
	LinkedKeyedNode[N any, K comparable] interface {
		Childed[N]
		Parented[N]
		Keyed[K]
	}

	// FileNode supports file/directory counting.
	FileNode[N any] interface {
		Childed[N]
		FileTyped
	}

	// ValuedNode supports payload enumeration.
	ValuedNode[N, V any] interface {
		Childed[N]
		Valued[V]
	}
)

// IsLeaf reports whether n has no children.
func IsLeaf[N Childed[N]](n N) bool {
	return n.ChildSet().Len() == 0
}

// HasParent reports whether n has a parent cell.
func HasParent[N Parented[N]](n N) bool {
	return n.ParentBox() != nil
}

// IsRoot reports whether n is a root (no parent cell).
func IsRoot[N Parented[N]](n N) bool {
	return n.ParentBox() == nil
}

// IsDir reports whether n is a directory (not a file).
func IsDir[N FileTyped](n N) bool {
	return !n.IsFile()
}

// RelativePath joins the path segments from the root down to n, separated by
// sep. The segment type is not inferrable from the arguments, so callers
// name it explicitly: RelativePath[pathutil.Segment](n, "/").
func RelativePath[S SegmentValue, N interface {
	Parented[N]
	PathSegmented[S]
}](n *Box[N], sep string) string {
	if n == nil {
		return ""
	}
	var segs []string
	for cur := n; cur != nil; cur = (*cur.Ptr()).ParentBox() {
		segs = append(segs, (*cur.Ptr()).PathSegment().String())
	}
	slices.Reverse(segs)
	return strings.Join(segs, sep)
}
