// rotate.go — the Rotation/Rake Library (spec §4.4): the splay-style
// rotations expose.go's exposeOne/exposeTwo drive a cluster up through
// its compress chain and then its rake chain, plus the structural
// (non-callback) boundary recomputation that keeps a compress/rake
// node's (kind, bu, bv, compressedVertex) consistent with its
// children's shape, and the rake/foster combinators build.go's
// recursive construction uses.
//
// Grounded on other_examples/21276670_qntx-gods__avltree-avltree.go.go's
// parent-aware node shape (parent/left/right with role-tagged children)
// and its rotate-then-fix-up-ancestors shape, generalized here to the
// two cluster variants (compress, rake) this engine builds and to the
// Join/Split callback discipline spec §4.3/§4.8 requires around every
// structural change.

package toptree

// rotate promotes x over its parent y, the single local move every
// splayCompress/splayRake step is built from. x and y must be the same
// variant (compress or rake): rotate never crosses a compress/rake
// boundary, matching spec §4.4's "defined only for two-compress-node or
// two-rake-node pairs".
//
// Before touching any pointer, the whole root..x chain is propagated
// (reversed pushed down, Split fired on anything dirty) so that every
// node rotate is about to read or move already reflects its
// orientation and has surrendered its aggregate to its children.
// Afterwards y then x (deepest first, since x ends up on top) have
// their shape recomputed and Join re-fired.
func (t *TopTree) rotate(x int) {
	y := t.nodes[x].parent
	if y == noIndex {
		t.errInconsistentCluster("rotate: x has no parent")
		return
	}
	if t.nodes[x].variant != t.nodes[y].variant {
		t.errInconsistentCluster("rotate: x and y are not the same variant")
		return
	}

	t.propagateToRoot(x)

	z := t.nodes[y].parent
	zRole := t.nodes[y].parentRole
	xRole := t.nodes[x].parentRole

	switch xRole {
	case roleLeftProper:
		b := t.nodes[x].right
		t.setChild(y, roleLeftProper, b)
		t.setChild(x, roleRightProper, y)
	case roleRightProper:
		b := t.nodes[x].left
		t.setChild(y, roleRightProper, b)
		t.setChild(x, roleLeftProper, y)
	default:
		t.errInconsistentCluster("rotate: x is not a proper child of y")
		return
	}

	if z == noIndex {
		t.nodes[x].parent = noIndex
		t.nodes[x].parentRole = roleNone
	} else {
		t.setChild(z, zRole, x)
	}

	t.recomputeShape(y)
	t.recomputeShape(x)
	t.fireJoinOn(y)
	t.fireJoinOn(x)
}

// splayWithin repeatedly rotates x toward the root of the longest chain
// of ancestors sharing variant v, using the classical zig/zig-zig/
// zig-zag case split, and returns wherever x ends up (the top of that
// chain: either the whole component's root, or the node just below the
// first ancestor of a different variant).
func (t *TopTree) splayWithin(x int, v variant) int {
	for {
		y := t.nodes[x].parent
		if y == noIndex || t.nodes[y].variant != v {
			return x
		}
		z := t.nodes[y].parent
		if z == noIndex || t.nodes[z].variant != v {
			t.rotate(x) // zig
			continue
		}
		if t.nodes[x].parentRole == t.nodes[y].parentRole {
			t.rotate(y) // zig-zig
			t.rotate(x)
		} else {
			t.rotate(x) // zig-zag
			t.rotate(x)
		}
	}
}

// splayCompress moves x to the root of its compress chain. x must be a
// compress node.
func (t *TopTree) splayCompress(x int) int { return t.splayWithin(x, variantCompress) }

// splayRake moves x to the root of its rake chain. x must be a rake
// node.
func (t *TopTree) splayRake(x int) int { return t.splayWithin(x, variantRake) }

// recomputeShape derives node's (kind, bu, bv, compressedVertex) purely
// from its left/right children's current shape, per the boundary rules
// of spec §4.3's classification table, and keeps both boundary
// vertices' anchor pointed at node (see types.go's Vertex.anchor and
// cluster_node.go's touchAnchor) so the next exposeOne has a live
// starting point to climb from. It performs no callback; callers fire
// Create/Join separately once a subtree's final shape is settled (see
// build.go), or Join again after a rotate has changed it.
func (t *TopTree) recomputeShape(node int) {
	n := &t.nodes[node]
	if n.variant == variantBase || n.variant == variantLeaf {
		return
	}
	lu, lv := t.boundaries(n.left)
	ru, rv := t.boundaries(n.right)
	lk, rk := t.nodes[n.left].kind, t.nodes[n.right].kind

	if n.variant == variantCompress {
		switch {
		case lk == KindPath && rk == KindPath:
			n.kind = KindPath
			n.bu, n.bv = lu, rv
			n.compressedVertex = lv
		case lk == KindPath && rk == KindPoint:
			n.kind = KindPath
			n.bu, n.bv = lu, lv
			n.compressedVertex = ru
		case lk == KindPoint && rk == KindPath:
			n.kind = KindPath
			n.bu, n.bv = ru, rv
			n.compressedVertex = lu
		default:
			t.errInconsistentCluster("recomputeShape: compress node with two point children")
			return
		}
		n.reversed = false
		t.touchAnchor(n.bu, node)
		if n.bv != noIndex {
			t.touchAnchor(n.bv, node)
		}
		return
	}

	// variantRake
	if lu != ru {
		t.errInconsistentCluster("recomputeShape: rake children do not share an attach vertex")
		return
	}
	n.kind = KindPoint
	n.bu, n.bv = lu, noIndex
	n.compressedVertex = lu
	n.reversed = false
	t.touchAnchor(n.bu, node)
}

// orientLeftBoundary flips cluster's reversed bit, if needed, so that
// its logical left boundary is w. w must be one of cluster's current
// boundaries.
func (t *TopTree) orientLeftBoundary(cluster, w int) {
	bu, _ := t.boundaries(cluster)
	if bu != w {
		t.nodes[cluster].reversed = !t.nodes[cluster].reversed
	}
}

// rakePair structurally combines a and b, two clusters sharing exactly
// one attach vertex w, into a single rake node. Both a and b are
// reoriented so w is each one's logical left boundary before combining,
// matching the normalization classify documents. Returns the new rake
// node's index; shape is filled in via recomputeShape, no callback
// fired.
func (t *TopTree) rakePair(a, b, w int) int {
	t.orientLeftBoundary(a, w)
	t.orientLeftBoundary(b, w)
	idx := t.newRake(a, b)
	t.recomputeShape(idx)
	return idx
}

// absorbFoster wraps main (a path cluster) together with foster (a
// point cluster hanging off one of main's boundaries) into a new
// compress node, so that foster's aggregate rides along with main
// without extending the path it represents. side records which of
// main's boundaries foster attaches to, for fosterL/fosterR bookkeeping
// on the returned wrapper. Structural only; no callback fired.
func (t *TopTree) absorbFoster(main, foster int) int {
	mu, _ := t.boundaries(main)
	fu, _ := t.boundaries(foster)
	var idx int
	if fu == mu {
		idx = t.newCompress(foster, main, fu)
		t.recomputeShape(idx)
		t.nodes[idx].fosterL = foster
		t.nodes[idx].fosterR = noIndex
	} else {
		idx = t.newCompress(main, foster, fu)
		t.recomputeShape(idx)
		t.nodes[idx].fosterR = foster
		t.nodes[idx].fosterL = noIndex
	}
	return idx
}

// fosterProperSwap exchanges which of compress node x's two children is
// treated as the path continuation: it physically swaps x's left and
// right proper children (and their fosterL/fosterR annotation) in
// place, then fires one Split/Join pair so the listener observes x's
// shape settle exactly once. Unlike orientLeftBoundary (a logical flip
// of which end is "left"), this changes which child's vertex set
// dissolves into compressedVertex and which extends x's own boundary —
// the move expose.go's exposeTwo needs when the vertex it still has to
// reach turns out to be one hop into x's foster side rather than its
// main side.
func (t *TopTree) fosterProperSwap(x int) {
	n := &t.nodes[x]
	if n.variant != variantCompress {
		t.errInconsistentCluster("fosterProperSwap: not a compress node")
		return
	}
	t.propagateToRoot(x)
	t.fireSplitOn(x)
	left, right := n.left, n.right
	t.setChild(x, roleLeftProper, right)
	t.setChild(x, roleRightProper, left)
	n.fosterL, n.fosterR = n.fosterR, n.fosterL
	t.recomputeShape(x)
	t.fireJoinOn(x)
}
