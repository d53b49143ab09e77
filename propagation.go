// propagation.go — lazy reversal, dirty-marking, and the classify/
// Create/Destroy/Join/Split dispatch that bridges the arena to Listener
// (spec §4.3).
//
// Two lazy bits live on every node: reversed and dirty. pushDown moves
// both from a node to its proper children before either is inspected in
// a way that cares about orientation or freshness, matching spec §4.3's
// contract: "before inspecting a node's own boundaries' order, push down
// reversed to both proper children... before inspecting or modifying
// the user info of a node, its parent chain must have been
// split-propagated downward."
//
// classify implements the seven-case connection-type table from spec
// §4.3. Compress nodes in this engine's construction mostly combine
// two path children; rotate.go's absorbFoster builds PointAndPath (a
// raked branch aggregate on the left), and PathAndPoint arises when a
// rotation or pushDown reorders such a node's children.
// Rake nodes fold a vertex's branches pairwise (see build.go's
// combineBranches): the first round pairs raw branches directly
// (LPointAndRPoint), a later round's odd carry pairs a raw branch
// against an accumulator (LPointOverRPoint/RPointOverLPoint), and once
// four or more branches are present two accumulators are themselves
// paired (PointAndPoint).

package toptree

// pushDown clears node's reversed bit without changing its logical
// boundaries: a reversed Path-kind compress node swaps its stored bu/bv
// and its two proper children (with their fosterL/fosterR annotation),
// and toggles the reversed bit of each Path-kind child, so that reading
// the children left to right follows the node's logical orientation. On
// a Point-kind node only the bit is cleared; base and leaf nodes keep
// theirs. It does not recurse — callers climb a known ancestor chain and
// call this once per node on the way down.
func (t *TopTree) pushDown(node int) {
	n := &t.nodes[node]
	if !n.reversed || n.variant == variantBase || n.variant == variantLeaf {
		return
	}
	n.reversed = false
	if n.kind != KindPath || n.variant != variantCompress {
		return
	}
	n.bu, n.bv = n.bv, n.bu
	left, right := n.left, n.right
	t.setChild(node, roleLeftProper, right)
	t.setChild(node, roleRightProper, left)
	n.fosterL, n.fosterR = n.fosterR, n.fosterL
	// fosterL/fosterR (when set) alias whichever of left/right already
	// holds that child; looping over them too would flip the same node
	// twice and cancel out.
	for _, child := range []int{n.left, n.right} {
		if t.nodes[child].kind == KindPath {
			t.nodes[child].reversed = !t.nodes[child].reversed
		}
	}
}

// ancestors returns the chain from the component root down to node,
// inclusive, root first.
func (t *TopTree) ancestorsToRoot(node int) []int {
	chain := []int{node}
	for t.nodes[node].parent != noIndex {
		node = t.nodes[node].parent
		chain = append(chain, node)
	}
	// reverse in place: chain is currently node..root, we want root..node
	for i, j := 0, len(chain)-1; i < j; i, j = i+1, j-1 {
		chain[i], chain[j] = chain[j], chain[i]
	}
	return chain
}

// propagateToRoot pushes reversed/dirty from the component root down to
// node, firing Split on every dirty ancestor along the way, so that
// node (and the path to it) reflects an up-to-date, correctly-oriented
// view before a public operation begins mutating it.
func (t *TopTree) propagateToRoot(node int) {
	for _, a := range t.ancestorsToRoot(node) {
		t.pushDown(a)
		if t.nodes[a].dirty {
			t.fireSplitOn(a)
		}
	}
}

// classify names the connection type under which parent's two proper
// children were combined.
func (t *TopTree) classify(parent int) ConnType {
	n := &t.nodes[parent]
	lk, rk := t.nodes[n.left].kind, t.nodes[n.right].kind
	if n.variant != variantRake {
		switch {
		case lk == KindPath && rk == KindPath:
			return PathAndPath
		case lk == KindPath && rk == KindPoint:
			return PathAndPoint
		case lk == KindPoint && rk == KindPath:
			return PointAndPath
		default:
			t.errInconsistentCluster("compress node with two point children")
		}
	}
	switch {
	case lk == KindPoint && rk == KindPoint:
		return PointAndPoint
	case lk == KindPath && rk == KindPath:
		return LPointAndRPoint
	case lk == KindPoint && rk == KindPath:
		return RPointOverLPoint
	default: // lk == KindPath && rk == KindPoint
		return LPointOverRPoint
	}
}

// fireCreate announces that idx just materialized.
func (t *TopTree) fireCreate(idx int) {
	c := t.newClusterHandle(idx, true)
	t.listener.Create(c, t.nodes[idx].kind)
}

// fireDestroy announces that idx is about to disappear. Callers must
// detach idx from its parent/children before calling fireDestroy if
// those links would otherwise be inspected again.
func (t *TopTree) fireDestroy(idx int) {
	c := t.newClusterHandle(idx, true)
	t.listener.Destroy(c, t.nodes[idx].kind)
}

// fireJoinOn recomputes parent's info from its (already clean) proper
// children and clears parent's dirty bit.
func (t *TopTree) fireJoinOn(parent int) {
	n := &t.nodes[parent]
	conn := t.classify(parent)
	pc := t.newClusterHandle(parent, true)
	lc := t.newClusterHandle(n.left, true)
	rc := t.newClusterHandle(n.right, true)
	t.listener.Join(pc, lc, rc, conn)
	n.dirty = false
}

// fireSplitOn pushes parent's info into its proper children just
// before parent is dismantled or mutated, and marks parent dirty (its
// info is no longer authoritative until the next Join).
func (t *TopTree) fireSplitOn(parent int) {
	n := &t.nodes[parent]
	conn := t.classify(parent)
	pc := t.newClusterHandle(parent, true)
	lc := t.newClusterHandle(n.left, true)
	rc := t.newClusterHandle(n.right, true)
	t.listener.Split(lc, rc, pc, conn)
	n.dirty = true
}
