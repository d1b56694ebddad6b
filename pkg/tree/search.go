package tree

// Key-path searches. A key path is an ordered key sequence naming one node
// per level. Key comparison is the key type's == throughout; there is no
// comparer injection point, so a key type needing case-insensitive matching
// must fold case in its own representation.
//
// A miss is an absent result (nil, false), never an error, and an empty key
// sequence is defined as a miss.

// FindPathFromRoot descends from root along keys. The start node itself
// must match keys[0]; each following key must match a child of the current
// node. On success the node matching the last key is returned, so a
// one-element path that matches returns root itself.
//
// Cost is O(len(keys)) when child containers support KeyedLookup (Dict) and
// O(len(keys) x branching) otherwise.
func FindPathFromRoot[N KeyedNode[N, K], K comparable](root *Box[N], keys []K) (*Box[N], bool) {
	if root == nil || len(keys) == 0 {
		return nil, false
	}
	if (*root.Ptr()).Key() != keys[0] {
		return nil, false
	}
	return descend(root, keys[1:])
}

// FindPathFromChildren is FindPathFromRoot without the self check: keys[0]
// must match one of start's children.
func FindPathFromChildren[N KeyedNode[N, K], K comparable](start *Box[N], keys []K) (*Box[N], bool) {
	if start == nil || len(keys) == 0 {
		return nil, false
	}
	return descend(start, keys)
}

func descend[N KeyedNode[N, K], K comparable](cur *Box[N], keys []K) (*Box[N], bool) {
	for _, k := range keys {
		next, ok := childByKey(cur, k)
		if !ok {
			return nil, false
		}
		cur = next
	}
	return cur, true
}

// childByKey finds the child of b with the given key, taking the O(1)
// container lookup when the child Set offers one and scanning otherwise.
func childByKey[N KeyedNode[N, K], K comparable](b *Box[N], key K) (*Box[N], bool) {
	set := childSet(b)
	if kl, ok := set.(KeyedLookup[K, N]); ok {
		return kl.ByKey(key)
	}
	for c := range set.All() {
		if (*c.Ptr()).Key() == key {
			return c, true
		}
	}
	return nil, false
}

// FindPathUpward walks from start toward the root. The last element of keys
// must match start itself, the second-to-last its parent, and so on; on
// success the root-most matched ancestor (the node matching keys[0]) is
// returned. Any length >= 1 is supported: a one-element path checks only
// start, and a full-chain match ending exactly at the tree root is fine.
func FindPathUpward[N ParentKeyedNode[N, K], K comparable](start *Box[N], keys []K) (*Box[N], bool) {
	if start == nil || len(keys) == 0 {
		return nil, false
	}
	cur := start
	for i := len(keys) - 1; ; i-- {
		if (*cur.Ptr()).Key() != keys[i] {
			return nil, false
		}
		if i == 0 {
			return cur, true
		}
		cur = (*cur.Ptr()).ParentBox()
		if cur == nil {
			return nil, false
		}
	}
}

// FindAllFromRoot runs the FindPathFromRoot probe anchored at root and at
// every descendant, collecting every hit.
//
// This is the documented slow path: each of the N subtree nodes triggers an
// O(depth) downward probe, O(N x len(keys)) in total and quadratic-ish when
// the path length tracks tree depth. Prefer FindAllUpward, which matches
// the same sub-paths with a cheap upward walk per node.
func FindAllFromRoot[N KeyedNode[N, K], K comparable](root *Box[N], keys []K) []*Box[N] {
	if root == nil || len(keys) == 0 {
		return nil
	}
	var hits []*Box[N]
	if hit, ok := FindPathFromRoot(root, keys); ok {
		hits = append(hits, hit)
	}
	for b := range BreadthFirst(root) {
		if hit, ok := FindPathFromRoot(b, keys); ok {
			hits = append(hits, hit)
		}
	}
	return hits
}

// FindAllFromChildren is FindAllFromRoot with the probe anchored at every
// descendant but not at root itself. Same cost caveat.
func FindAllFromChildren[N KeyedNode[N, K], K comparable](root *Box[N], keys []K) []*Box[N] {
	if root == nil || len(keys) == 0 {
		return nil
	}
	var hits []*Box[N]
	for b := range BreadthFirst(root) {
		if hit, ok := FindPathFromRoot(b, keys); ok {
			hits = append(hits, hit)
		}
	}
	return hits
}

// FindAllUpward collects every node in the subtree (root included) whose
// upward key chain matches keys: the node itself matches the last key, its
// parent the one before, and so on. Each hit is the deepest node of its
// match, so callers can re-verify by walking parent links upward.
//
// Each probe walks at most len(keys) parent links, so the whole search is
// O(N x len(keys)) with a small constant and no per-level child scans; this
// is the recommended all-matches search.
func FindAllUpward[N LinkedKeyedNode[N, K], K comparable](root *Box[N], keys []K) []*Box[N] {
	if root == nil || len(keys) == 0 {
		return nil
	}
	var hits []*Box[N]
	if _, ok := FindPathUpward(root, keys); ok {
		hits = append(hits, root)
	}
	for b := range BreadthFirst(root) {
		if _, ok := FindPathUpward(b, keys); ok {
			hits = append(hits, b)
		}
	}
	return hits
}
