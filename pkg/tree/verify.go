package tree

import (
	"fmt"
	"strconv"
)

// The traversal and search algorithms trust two invariants they never
// check: the graph is acyclic, and every child's parent cell is the same
// cell as its enclosing parent. Verify is the opt-in check for code that
// builds trees by hand; it is read-only and never mutates the tree.

// Issue describes a single structural finding. Path is the slash-joined
// child-index path from the verification root to the offending node, or
// "root" for the root itself.
type Issue struct {
	Path    string
	Message string
}

func (i Issue) String() string {
	return fmt.Sprintf("%s: %s", i.Path, i.Message)
}

// Verify runs both structural checks on the tree rooted at root and
// returns every finding. An empty result means the tree upholds the
// invariants the algorithms assume.
func Verify[N Linked[N]](root *Box[N]) []Issue {
	issues := VerifyAcyclic(root)
	issues = append(issues, VerifyParentLinks(root)...)
	return issues
}

// VerifyAcyclic checks that the child graph reachable from root contains no
// cycle, using DFS with 3-color marking: white = unvisited, gray = on the
// current DFS path, black = fully explored. Meeting a gray cell again means
// a cycle. One cycle finding is sufficient; the walk stops early.
func VerifyAcyclic[N Childed[N]](root *Box[N]) []Issue {
	if root == nil {
		return nil
	}

	const (
		white = iota
		gray
		black
	)

	color := make(map[*Box[N]]int)
	var issues []Issue

	var visit func(b *Box[N], path string) bool
	visit = func(b *Box[N], path string) bool {
		switch color[b] {
		case black:
			return false
		case gray:
			issues = append(issues, Issue{
				Path:    path,
				Message: "cycle detected: cell is its own descendant",
			})
			return true
		}

		color[b] = gray
		i := 0
		for c := range childSet(b).All() {
			if visit(c, childPath(path, i)) {
				return true
			}
			i++
		}
		color[b] = black
		return false
	}

	visit(root, "root")
	return issues
}

// VerifyParentLinks checks that every child reachable from root carries a
// parent cell identical (Box.Same) to the cell it was reached through. A
// parent link holding a copy of the parent value breaks upward search and
// sibling enumeration silently; this surfaces it.
func VerifyParentLinks[N Linked[N]](root *Box[N]) []Issue {
	if root == nil {
		return nil
	}

	var issues []Issue
	seen := make(map[*Box[N]]bool)

	var visit func(b *Box[N], path string)
	visit = func(b *Box[N], path string) {
		if seen[b] {
			return
		}
		seen[b] = true

		i := 0
		for c := range childSet(b).All() {
			cp := childPath(path, i)
			switch parent := (*c.Ptr()).ParentBox(); {
			case parent == nil:
				issues = append(issues, Issue{
					Path:    cp,
					Message: "child has no parent link",
				})
			case !parent.Same(b):
				issues = append(issues, Issue{
					Path:    cp,
					Message: "parent link points at a different cell than the enclosing parent",
				})
			}
			visit(c, cp)
			i++
		}
	}

	visit(root, "root")
	return issues
}

func childPath(parent string, i int) string {
	if parent == "root" {
		return strconv.Itoa(i)
	}
	return parent + "/" + strconv.Itoa(i)
}
