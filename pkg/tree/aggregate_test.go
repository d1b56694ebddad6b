package tree

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestCountDescendantsMatchesTraversal(t *testing.T) {
	root := newKeyRoot(0)
	a := addKeyChild(root, 1)
	b := addKeyChild(root, 2)
	addKeyChild(a, 3)
	addKeyChild(a, 4)
	addKeyChild(addKeyChild(b, 5), 6)

	for _, start := range []*Box[keyNode]{root, a, b} {
		var dfs int
		for range DepthFirst(start) {
			dfs++
		}
		if got := CountDescendants(start); got != dfs {
			t.Errorf("CountDescendants = %d, DFS yielded %d", got, dfs)
		}
	}

	if got := CountDescendants(root); got != 6 {
		t.Errorf("CountDescendants(root) = %d, want 6", got)
	}
}

func TestCountLeaves(t *testing.T) {
	root := newKeyRoot(0)
	a := addKeyChild(root, 1)
	addKeyChild(root, 2) // leaf
	addKeyChild(a, 3)    // leaf
	addKeyChild(a, 4)    // leaf

	if got := CountLeaves(root); got != 3 {
		t.Errorf("CountLeaves(root) = %d, want 3", got)
	}

	// Cross-check against a filtered traversal.
	var manual int
	for b := range DepthFirst(root) {
		if IsLeaf(b.Value()) {
			manual++
		}
	}
	if got := CountLeaves(root); got != manual {
		t.Errorf("CountLeaves = %d, filtered traversal found %d", got, manual)
	}

	// A leaf has no descendants, so zero leaves below it.
	leaf := addKeyChild(a, 5)
	if got := CountLeaves(leaf); got != 0 {
		t.Errorf("CountLeaves(leaf) = %d, want 0", got)
	}
}

func TestCountFilesAndDirs(t *testing.T) {
	dir := newFsRoot("docs")
	addFsChild(dir, "a.txt", true)
	addFsChild(dir, "b.txt", true)
	addFsChild(dir, "c.txt", true)

	if got := CountFiles(dir); got != 3 {
		t.Errorf("CountFiles = %d, want 3", got)
	}
	if got := CountDirs(dir); got != 0 {
		t.Errorf("CountDirs = %d, want 0", got)
	}

	sub := addFsChild(dir, "drafts", false)
	addFsChild(sub, "d.txt", true)

	if got := CountFiles(dir); got != 4 {
		t.Errorf("CountFiles after nesting = %d, want 4", got)
	}
	if got := CountDirs(dir); got != 1 {
		t.Errorf("CountDirs after nesting = %d, want 1", got)
	}
}

func TestDescendantsMatchesBreadthFirst(t *testing.T) {
	root := newKeyRoot(0)
	a := addKeyChild(root, 1)
	addKeyChild(root, 2)
	addKeyChild(a, 3)

	want := collectKeys(root, BreadthFirst[keyNode])

	var got []int
	for _, b := range Descendants(root) {
		got = append(got, (*b.Ptr()).Key())
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Descendants order (-bfs +got):\n%s", diff)
	}
}

func TestDescendantsSizedEqualsGrowable(t *testing.T) {
	root := newKeyRoot(0)
	a := addKeyChild(root, 1)
	b := addKeyChild(root, 2)
	addKeyChild(a, 3)
	addKeyChild(b, 4)
	addKeyChild(b, 5)

	grow := Descendants(root)
	sized := DescendantsSized(root)

	if len(grow) != len(sized) {
		t.Fatalf("lengths differ: growable %d, sized %d", len(grow), len(sized))
	}
	for i := range grow {
		if !grow[i].Same(sized[i]) {
			t.Errorf("cell %d differs between growable and sized collection", i)
		}
	}

	// Leaf: sized path must produce an empty, non-nil slice of exact size 0.
	leaf, _ := FindPathFromRoot(root, []int{0, 1, 3})
	if got := DescendantsSized(leaf); len(got) != 0 {
		t.Errorf("DescendantsSized(leaf) has %d cells, want 0", len(got))
	}
}

func TestSiblings(t *testing.T) {
	// Three content-identical siblings: identity-based exclusion must drop
	// exactly the node itself, not its equal-valued siblings.
	parent := newFsRoot("dir")
	s1 := addFsChild(parent, "same", true)
	s2 := addFsChild(parent, "same", true)
	s3 := addFsChild(parent, "same", true)

	sibs := Siblings(s2)
	if len(sibs) != 2 {
		t.Fatalf("Siblings returned %d cells, want 2", len(sibs))
	}
	if !sibs[0].Same(s1) || !sibs[1].Same(s3) {
		t.Error("Siblings did not return the two other cells")
	}
	for _, s := range sibs {
		if s.Same(s2) {
			t.Error("Siblings contains the node itself")
		}
	}

	if got, want := SiblingCount(s2), parent.Value().ChildSet().Len()-1; got != want {
		t.Errorf("SiblingCount = %d, want %d", got, want)
	}
}

func TestEnumerateSiblingsMatchesSlice(t *testing.T) {
	parent := newFsRoot("dir")
	addFsChild(parent, "a", true)
	mid := addFsChild(parent, "b", true)
	addFsChild(parent, "c", false)

	want := Siblings(mid)
	var got []*Box[fsNode]
	for s := range EnumerateSiblings(mid) {
		got = append(got, s)
	}

	if len(got) != len(want) {
		t.Fatalf("lazy enumeration yielded %d cells, slice has %d", len(got), len(want))
	}
	for i := range want {
		if !got[i].Same(want[i]) {
			t.Errorf("cell %d differs between lazy and slice siblings", i)
		}
	}

	root := newFsRoot("r")
	for range EnumerateSiblings(root) {
		t.Fatal("EnumerateSiblings of a root yielded a node")
	}
}

func TestRootHasNoSiblings(t *testing.T) {
	root := newFsRoot("r")
	if got := Siblings(root); len(got) != 0 {
		t.Errorf("Siblings(root) returned %d cells, want 0", len(got))
	}
	if got := SiblingCount(root); got != 0 {
		t.Errorf("SiblingCount(root) = %d, want 0", got)
	}
}

func TestOnlyChildHasNoSiblings(t *testing.T) {
	parent := newFsRoot("dir")
	only := addFsChild(parent, "one", true)

	if got := Siblings(only); len(got) != 0 {
		t.Errorf("Siblings(only child) returned %d cells, want 0", len(got))
	}
	if got := SiblingCount(only); got != 0 {
		t.Errorf("SiblingCount(only child) = %d, want 0", got)
	}
}

func TestSiblingsFuncIsValueBased(t *testing.T) {
	parent := newFsRoot("dir")
	addFsChild(parent, "same", true)
	self := addFsChild(parent, "same", true)
	addFsChild(parent, "other", true)

	eq := func(a, b fsNode) bool { return a.name == b.name && a.file == b.file }

	// Structural exclusion drops every content-equal sibling, which is the
	// documented hazard of the unwrapped-value variant.
	sibs := SiblingsFunc(self.Value(), (*self.Ptr()).ParentBox(), eq)
	if len(sibs) != 1 {
		t.Fatalf("SiblingsFunc returned %d values, want 1", len(sibs))
	}
	if sibs[0].name != "other" {
		t.Errorf("surviving sibling = %q, want %q", sibs[0].name, "other")
	}
}
