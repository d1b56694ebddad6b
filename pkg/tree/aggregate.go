package tree

import "iter"

// Aggregations are single-pass, O(N) in the descendant count, implemented
// as recursive accumulation into a pointer so no intermediate slices are
// merged on the way up.

// CountDescendants returns the total number of descendants of b: children,
// grandchildren, and so on. Direct-child count is ChildSet().Len().
func CountDescendants[N Childed[N]](b *Box[N]) int {
	var n int
	if b != nil {
		countDescendants(b, &n)
	}
	return n
}

func countDescendants[N Childed[N]](b *Box[N], acc *int) {
	set := childSet(b)
	*acc += set.Len()
	for c := range set.All() {
		countDescendants(c, acc)
	}
}

// CountLeaves returns the number of descendants of b that have no children
// of their own. b itself is never counted, so CountLeaves of a leaf is 0.
func CountLeaves[N Childed[N]](b *Box[N]) int {
	var n int
	if b != nil {
		countLeaves(b, &n)
	}
	return n
}

func countLeaves[N Childed[N]](b *Box[N], acc *int) {
	for c := range childSet(b).All() {
		if childSet(c).Len() == 0 {
			*acc++
		} else {
			countLeaves(c, acc)
		}
	}
}

// CountFiles returns the number of descendants of b flagged as files.
func CountFiles[N FileNode[N]](b *Box[N]) int {
	var n int
	if b != nil {
		countByFlag(b, true, &n)
	}
	return n
}

// CountDirs returns the number of descendants of b flagged as directories.
func CountDirs[N FileNode[N]](b *Box[N]) int {
	var n int
	if b != nil {
		countByFlag(b, false, &n)
	}
	return n
}

func countByFlag[N FileNode[N]](b *Box[N], wantFile bool, acc *int) {
	for c := range childSet(b).All() {
		if (*c.Ptr()).IsFile() == wantFile {
			*acc++
		}
		countByFlag(c, wantFile, acc)
	}
}

// Descendants collects every descendant of b into a slice in the same level
// order BreadthFirst yields. This is the safe default; DescendantsSized is
// the pre-sized alternative.
func Descendants[N Childed[N]](b *Box[N]) []*Box[N] {
	var out []*Box[N]
	for c := range BreadthFirst(b) {
		out = append(out, c)
	}
	return out
}

// DescendantsSized collects every descendant of b using the two-pass
// count-then-fill pattern: one pass to compute the exact size, one
// allocation, one index-fill pass. Worth it on hot paths with large trees;
// the tree must not change between the two passes.
func DescendantsSized[N Childed[N]](b *Box[N]) []*Box[N] {
	out := make([]*Box[N], CountDescendants(b))
	i := 0
	for c := range BreadthFirst(b) {
		out[i] = c
		i++
	}
	return out
}

// Siblings returns b's parent's children minus b itself, excluded by cell
// identity so that content-identical siblings survive. A root has no
// siblings; that is an empty result, not an error.
func Siblings[N Linked[N]](b *Box[N]) []*Box[N] {
	if b == nil {
		return nil
	}
	parent := (*b.Ptr()).ParentBox()
	if parent == nil {
		return nil
	}
	set := childSet(parent)
	out := make([]*Box[N], 0, set.Len())
	for c := range set.All() {
		if !c.Same(b) {
			out = append(out, c)
		}
	}
	return out
}

// EnumerateSiblings is the lazy variant of Siblings: same cells, same
// order, no slice.
func EnumerateSiblings[N Linked[N]](b *Box[N]) iter.Seq[*Box[N]] {
	return func(yield func(*Box[N]) bool) {
		if b == nil {
			return
		}
		parent := (*b.Ptr()).ParentBox()
		if parent == nil {
			return
		}
		for c := range childSet(parent).All() {
			if !c.Same(b) && !yield(c) {
				return
			}
		}
	}
}

// SiblingCount returns len(Siblings(b)) without building the slice:
// max(0, parent child count - 1), or 0 for a root.
func SiblingCount[N Linked[N]](b *Box[N]) int {
	if b == nil {
		return 0
	}
	parent := (*b.Ptr()).ParentBox()
	if parent == nil {
		return 0
	}
	n := childSet(parent).Len()
	if n == 0 {
		return 0
	}
	return n - 1
}

// SiblingsFunc is the unwrapped-value variant: given a bare node value and
// its parent cell, it returns the sibling values for which eq(v, sibling)
// is false. Because exclusion is structural here, every sibling whose value
// equals v is dropped, not just one; prefer Siblings when cell identity is
// available.
func SiblingsFunc[N Childed[N]](v N, parent *Box[N], eq func(N, N) bool) []N {
	if parent == nil {
		return nil
	}
	set := childSet(parent)
	out := make([]N, 0, set.Len())
	for c := range set.All() {
		if cv := c.Value(); !eq(v, cv) {
			out = append(out, cv)
		}
	}
	return out
}
