package tree

import "iter"

// Test node shapes. Each one is a plain struct opting into the contracts a
// scenario needs; together they cover all three child containers.

// keyNode: keyed dictionary children plus parent link and int key.
type keyNode struct {
	key      int
	parent   *Box[keyNode]
	children *Dict[int, keyNode]
}

func (n keyNode) Key() int { return n.key }

func (n keyNode) ChildSet() Set[keyNode] { return n.children }

func (n keyNode) ParentBox() *Box[keyNode] { return n.parent }

func newKeyRoot(key int) *Box[keyNode] {
	return NewBox(keyNode{key: key, children: NewDict[int, keyNode]()})
}

func addKeyChild(parent *Box[keyNode], key int) *Box[keyNode] {
	p := parent.Ptr()
	if p.children == nil {
		p.children = NewDict[int, keyNode]()
	}
	cell := p.children.Put(key, keyNode{
		key:      key,
		parent:   parent,
		children: NewDict[int, keyNode](),
	})
	return &cell.Box
}

// arrNode: fixed Slice children, int key, no parent. Exercises the
// linear-scan key lookup fallback.
type arrNode struct {
	key      int
	children *Slice[arrNode]
}

func (n arrNode) Key() int { return n.key }

func (n arrNode) ChildSet() Set[arrNode] { return n.children }

func newArrNode(key int, children ...*Box[arrNode]) *Box[arrNode] {
	return NewBox(arrNode{key: key, children: SliceOf(children...)})
}

// seg is a minimal SegmentValue for path tests.
type seg string

func (s seg) String() string { return string(s) }

// fsNode: mutable List children, parent link, file flag, path segment.
type fsNode struct {
	name     seg
	file     bool
	parent   *Box[fsNode]
	children *List[fsNode]
}

func (n fsNode) ChildSet() Set[fsNode] { return n.children }

func (n fsNode) ParentBox() *Box[fsNode] { return n.parent }

func (n fsNode) IsFile() bool { return n.file }

func (n fsNode) PathSegment() seg { return n.name }

func newFsRoot(name string) *Box[fsNode] {
	return NewBox(fsNode{name: seg(name), children: &List[fsNode]{}})
}

func addFsChild(parent *Box[fsNode], name string, file bool) *Box[fsNode] {
	p := parent.Ptr()
	if p.children == nil {
		p.children = &List[fsNode]{}
	}
	cell := NewBox(fsNode{
		name:     seg(name),
		file:     file,
		parent:   parent,
		children: &List[fsNode]{},
	})
	p.children.Append(cell)
	return cell
}

// vNode: fixed Slice children with a payload and a stored depth.
type vNode struct {
	val      string
	depth    int
	children *Slice[vNode]
}

func (n vNode) Value() string { return n.val }

func (n vNode) Depth() int { return n.depth }

func (n vNode) ChildSet() Set[vNode] { return n.children }

// scenarioTree builds the reference shape used across traversal and search
// tests:
//
//	root(0)
//	  a(1)
//	    c(3)
//	  b(2)
//	    d(4)
func scenarioTree() (root, a, b, c, d *Box[keyNode]) {
	root = newKeyRoot(0)
	a = addKeyChild(root, 1)
	b = addKeyChild(root, 2)
	c = addKeyChild(a, 3)
	d = addKeyChild(b, 4)
	return root, a, b, c, d
}

func collectKeys(root *Box[keyNode], order func(*Box[keyNode]) iter.Seq[*Box[keyNode]]) []int {
	var keys []int
	for b := range order(root) {
		keys = append(keys, (*b.Ptr()).Key())
	}
	return keys
}
