// cluster_node.go — the cluster-node arena: allocation, disposal, and
// the parent/child/boundary wiring primitives (spec §4.2).
//
// Grounded on core/methods.go's CRUD-with-invariant-checks shape
// (AddVertex/RemoveVertex validate then mutate a map-backed store);
// adapted here to an index-addressed slice arena per spec §9, and on
// other_examples/21276670_qntx-gods__avltree-avltree.go.go's
// parent/left/right node shape, which the rotation library in
// rotate.go consumes.

package toptree

// allocNode reserves an arena slot, reusing a freed one when available.
func (t *TopTree) allocNode() int {
	var idx int
	if n := len(t.freeNodes); n > 0 {
		idx = t.freeNodes[n-1]
		t.freeNodes = t.freeNodes[:n-1]
		t.nodes[idx].gen++
	} else {
		idx = len(t.nodes)
		t.nodes = append(t.nodes, clusterNode{})
	}
	t.nodes[idx] = clusterNode{
		variant: t.nodes[idx].variant, // overwritten by caller
		gen:     t.nodes[idx].gen,
		left:    noIndex, right: noIndex,
		fosterL: noIndex, fosterR: noIndex,
		parent: noIndex, parentRole: roleNone,
		compressedVertex: noIndex,
		bu:                noIndex, bv: noIndex,
		alive: true,
	}
	return idx
}

// newBase creates a base cluster representing one edge between u and v.
func (t *TopTree) newBase(u, v int, info interface{}) int {
	idx := t.allocNode()
	n := &t.nodes[idx]
	n.variant = variantBase
	n.kind = KindPath
	n.bu, n.bv = u, v
	n.info = info
	t.touchAnchor(u, idx)
	t.touchAnchor(v, idx)
	return idx
}

// newLeaf creates a degenerate point cluster anchored at v with no
// children, used when v has no further branch to fold in.
func (t *TopTree) newLeaf(v int) int {
	idx := t.allocNode()
	n := &t.nodes[idx]
	n.variant = variantLeaf
	n.kind = KindPoint
	n.bu, n.bv = v, noIndex
	t.touchAnchor(v, idx)
	return idx
}

// newCompress creates a compress node joining left and right as proper
// children, sharing compressedVertex. kind/bu/bv are filled in by the
// caller via recomputeShape (rotate.go).
func (t *TopTree) newCompress(left, right, compressedVertex int) int {
	idx := t.allocNode()
	n := &t.nodes[idx]
	n.variant = variantCompress
	n.compressedVertex = compressedVertex
	t.setChild(idx, roleLeftProper, left)
	t.setChild(idx, roleRightProper, right)
	return idx
}

// newRake creates a rake node attaching left (a point cluster) onto
// right (a path cluster) at right's left boundary.
func (t *TopTree) newRake(left, right int) int {
	idx := t.allocNode()
	n := &t.nodes[idx]
	n.variant = variantRake
	t.setChild(idx, roleLeftProper, left)
	t.setChild(idx, roleRightProper, right)
	return idx
}

// dispose frees an arena slot. The node must already be detached from
// any parent and have no live children referencing it.
func (t *TopTree) dispose(idx int) {
	t.nodes[idx].alive = false
	t.nodes[idx].info = nil
	t.freeNodes = append(t.freeNodes, idx)
}

// setChild attaches child as parent's node in the given role, updating
// both sides' pointers. child may be noIndex to clear a slot.
func (t *TopTree) setChild(parent int, r role, child int) {
	p := &t.nodes[parent]
	switch r {
	case roleLeftProper:
		p.left = child
	case roleRightProper:
		p.right = child
	case roleLeftFoster:
		p.fosterL = child
	case roleRightFoster:
		p.fosterR = child
	default:
		t.errInconsistentCluster("setChild: invalid role")
	}
	if child != noIndex {
		t.nodes[child].parent = parent
		t.nodes[child].parentRole = r
	}
}

// boundaries returns node's logical (bu, bv) pair, already reflecting
// the reversed flag (bv is noIndex for a Point-kind node).
func (t *TopTree) boundaries(node int) (int, int) {
	n := &t.nodes[node]
	if n.reversed {
		return n.bv, n.bu
	}
	return n.bu, n.bv
}

// setBoundaries sets node's stored (bu, bv), in storage order (i.e. as
// if reversed were false); callers that need to set the *logical*
// pair while reversed is set should clear reversed first.
func (t *TopTree) setBoundaries(node int, bu, bv int) {
	t.nodes[node].bu = bu
	t.nodes[node].bv = bv
	if bu != noIndex {
		t.touchAnchor(bu, node)
	}
	if bv != noIndex {
		t.touchAnchor(bv, node)
	}
}

// touchAnchor opportunistically records node as a live cluster touching
// vertex v. It does not need to be canonical: see Vertex.anchor's doc.
func (t *TopTree) touchAnchor(v, node int) {
	t.vertices[v].anchor = node
}

// root walks up from node to its component's root cluster.
func (t *TopTree) root(node int) int {
	for t.nodes[node].parent != noIndex {
		node = t.nodes[node].parent
	}
	return node
}

// isRoot reports whether node has no parent.
func (t *TopTree) isRoot(node int) bool { return t.nodes[node].parent == noIndex }
