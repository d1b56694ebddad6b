// Package tree is a trait-based toolkit for building and traversing
// tree-shaped data of lightweight value types.
//
// There is no base node type. A concrete node is a plain struct that opts
// into any subset of the capability contracts (Childed, Parented, Keyed,
// Valued, Leveled, FileTyped, PathSegmented); every algorithm in this
// package is a free function constrained on exactly the contracts it needs,
// so dispatch is resolved at compile time.
//
// Nodes are linked through Box cells: shared, mutable, heap-allocated
// wrappers that let a value-type node be referenced both from its parent's
// child container and from its children's parent links without the copies
// drifting apart.
//
// All algorithms assume the graph is an acyclic tree with consistent parent
// back-references. Neither invariant is checked during traversal or search;
// feeding a cyclic graph to a traversal loops forever. Callers constructing
// trees by hand can run Verify once after construction to check both.
//
// The package is single-threaded: concurrent reads of an unchanging tree are
// safe, but any structural mutation concurrent with a traversal is undefined
// behavior, exactly as mutating a slice while ranging over it.
package tree
