// select.go — the Select engine (spec §4.7): divide-and-conquer descent
// from a component's root cluster to a single base cluster, steered by
// the listener's SelectQuestion.
//
// Grounded on builder's path-walking helpers for the notion of
// "descend until a leaf edge is found", adapted to consult a caller
// predicate at every internal node instead of walking a fixed index.

package toptree

// Select exposes v, then repeatedly consults the listener's
// SelectQuestion to descend from the component root to a single base
// cluster, firing Split on each internal node before descending past
// it. Returns the base cluster's two endpoint vertices, or ok=false if
// v is isolated (its component has no edges at all).
//
// Complexity: O(depth) to expose (see Expose), then O(depth) to
// descend.
func (t *TopTree) Select(v *Vertex) (a, b *Vertex, ok bool) {
	c, result := t.Expose(v)
	if result == SingleVertex {
		return nil, nil, false
	}
	return t.selectDescend(c.idx, false)
}

// Select2 restricts the search to the tree path between u and v: at
// every internal node where exactly one child is a point cluster, the
// descent automatically takes the path child without consulting
// SelectQuestion (spec §4.7). Returns ok=false if u and v are not in
// the same component, or if u == v (no path of positive length).
//
// Complexity: O(size of the shared component) to expose, then
// O(path length) to descend.
func (t *TopTree) Select2(u, v *Vertex) (a, b *Vertex, ok bool) {
	if u.id == v.id {
		return nil, nil, false
	}
	left, _, result := t.Expose2(u, v)
	if result != CommonComponent {
		return nil, nil, false
	}
	return t.selectDescend(left.idx, true)
}

// selectDescend walks down from node to a base cluster. When
// restrictToPath is set, a node with exactly one Path-kind child
// descends into that child automatically; otherwise (or when both
// children share a kind) SelectQuestion is consulted.
func (t *TopTree) selectDescend(node int, restrictToPath bool) (a, b *Vertex, ok bool) {
	for {
		n := &t.nodes[node]
		switch n.variant {
		case variantBase:
			return t.vertices[n.bu], t.vertices[n.bv], true
		case variantLeaf:
			return nil, nil, false
		}

		t.fireSplitOn(node)
		lk, rk := t.nodes[n.left].kind, t.nodes[n.right].kind

		var next int
		if restrictToPath && lk != rk {
			if lk == KindPath {
				next = n.left
			} else {
				next = n.right
			}
		} else {
			lc := t.newClusterHandle(n.left, true)
			rc := t.newClusterHandle(n.right, true)
			switch t.listener.SelectQuestion(lc, rc, t.classify(node)) {
			case SelectLeft:
				next = n.left
			default:
				next = n.right
			}
		}
		node = next
	}
}
