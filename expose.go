// expose.go — the Expose Engine (spec §4.5): exposeOne/exposeTwo drive
// rotate.go's splayCompress/splayRake to bring a vertex (or a vertex
// pair) to the root of its component's standing cluster decomposition,
// and Expose/Expose2/GetTopComponent are the public surface over them.
//
// Grounded on dfs's BFS/DFS traversal shape for the degenerate
// (isolated-vertex) case and on prim_kruskal's "two endpoints, same or
// different component" branching, adapted to splay an existing
// decomposition instead of walking a union-find forest.

package toptree

// ExposeResult classifies the shape Expose produced.
type ExposeResult uint8

const (
	// SingleVertex: the exposed vertex has no incident edges; the
	// returned cluster is a degenerate Point cluster containing just
	// that vertex.
	SingleVertex ExposeResult = iota
	// WholeComponent: the exposed vertex's component has at least one
	// edge; the returned cluster is the component's full decomposition,
	// rooted with the vertex as one boundary.
	WholeComponent
	// LeftSingle: in a two-vertex Expose, the left vertex is isolated
	// and the right is not.
	LeftSingle
	// RightSingle: in a two-vertex Expose, the right vertex is isolated
	// and the left is not.
	RightSingle
	// BothSingle: in a two-vertex Expose, both vertices are isolated
	// (this also covers u == v when that shared vertex is isolated).
	BothSingle
	// OneVertex: in a two-vertex Expose, u == v and that vertex is not
	// isolated; the returned cluster is v's whole-component root.
	OneVertex
	// CommonComponent: in a two-vertex Expose, both vertices share a
	// component; the returned cluster is a Path cluster with the two
	// requested vertices as its boundaries.
	CommonComponent
	// DifferentComponents: in a two-vertex Expose, the vertices are in
	// different components; two clusters are returned, one per vertex's
	// own component.
	DifferentComponents
)

// String renders the result kind for diagnostics.
func (r ExposeResult) String() string {
	switch r {
	case SingleVertex:
		return "SingleVertex"
	case WholeComponent:
		return "WholeComponent"
	case LeftSingle:
		return "LeftSingle"
	case RightSingle:
		return "RightSingle"
	case BothSingle:
		return "BothSingle"
	case OneVertex:
		return "OneVertex"
	case CommonComponent:
		return "CommonComponent"
	case DifferentComponents:
		return "DifferentComponents"
	default:
		return "ExposeResult(?)"
	}
}

// ensureLeafAnchor returns v's current degenerate top cluster (a Point
// cluster with no edges), creating one and firing Create the first time
// an isolated vertex is exposed. v must be isolated.
func (t *TopTree) ensureLeafAnchor(v int) int {
	if root := t.vertices[v].componentRoot; root != noIndex {
		return root
	}
	idx := t.newLeaf(v)
	t.fireCreate(idx)
	t.vertices[v].componentRoot = idx
	return idx
}

// exposeOne splays v up through its standing decomposition — splay-
// compress to the root of v's compress chain, then splay-rake upward,
// alternating at every variant boundary — until it reaches the
// component root, then orients that root so v is its logical left
// boundary (spec §4.5). An isolated v short-circuits to its degenerate
// leaf cluster.
func (t *TopTree) exposeOne(v int) (int, ExposeResult) {
	if t.isSingle(v) {
		return t.ensureLeafAnchor(v), SingleVertex
	}
	x := t.vertices[v].anchor
	for {
		switch t.nodes[x].variant {
		case variantCompress:
			t.splayCompress(x)
		case variantRake:
			t.splayRake(x)
		}
		p := t.nodes[x].parent
		if p == noIndex {
			break
		}
		x = p
	}
	t.orientLeftBoundary(x, v)
	t.vertices[v].componentRoot = x
	return x, WholeComponent
}

// tryPromoteDirectForeignEdge handles the common one-hop case of
// exposeTwo without a full rebuild: root is u's exposed component root,
// and u--v is a direct edge that the last build folded into root's
// foster side instead of choosing it as the main continuation. A
// fosterProperSwap promotes that edge into the path position, giving
// root exactly (u, v) as its two boundaries.
func (t *TopTree) tryPromoteDirectForeignEdge(root, u, v int) (int, bool) {
	n := &t.nodes[root]
	if n.variant != variantCompress || (n.fosterL == noIndex && n.fosterR == noIndex) {
		return noIndex, false
	}
	fosterSide, mainSide := n.fosterL, n.right
	if fosterSide == noIndex {
		fosterSide, mainSide = n.fosterR, n.left
	}
	// fosterL/fosterR are only informational and do not get rewritten by
	// rotate; confirm the annotation still names one of root's actual
	// current children before trusting it.
	if fosterSide != n.left && fosterSide != n.right {
		return noIndex, false
	}
	fn := &t.nodes[fosterSide]
	if fn.variant != variantBase && fn.variant != variantLeaf {
		return noIndex, false
	}
	fu, fv := t.boundaries(fosterSide)
	if !((fu == u && fv == v) || (fu == v && fv == u)) {
		return noIndex, false
	}
	t.orientLeftBoundary(fosterSide, u)
	t.orientLeftBoundary(mainSide, u)
	t.fosterProperSwap(root)
	return root, true
}

// exposeTwo splays u and v to a single common root when they share a
// component, with u as the logical left boundary and v as the right
// (spec §4.5). Most common-component cases fall back to a rebuild
// steered by a spine read off the existing cluster hierarchy (see
// build.go's pathViaHierarchy), since splaying v up through u's freshly
// exposed tree is not in general guaranteed to leave u a boundary of
// the result; the direct-edge case above is handled without a rebuild.
func (t *TopTree) exposeTwo(u, v int) (left, right int, result ExposeResult) {
	if u == v {
		if t.isSingle(u) {
			return t.ensureLeafAnchor(u), noIndex, BothSingle
		}
		root, _ := t.exposeOne(u)
		return root, noIndex, OneVertex
	}

	if !t.connected(u, v) {
		uRoot, uRes := t.exposeOne(u)
		vRoot, vRes := t.exposeOne(v)
		switch {
		case uRes == SingleVertex && vRes == SingleVertex:
			return uRoot, vRoot, BothSingle
		case uRes == SingleVertex:
			return uRoot, vRoot, LeftSingle
		case vRes == SingleVertex:
			return uRoot, vRoot, RightSingle
		default:
			return uRoot, vRoot, DifferentComponents
		}
	}

	root, _ := t.exposeOne(u)
	if bu, bv := t.boundaries(root); bu == u && bv == v {
		return root, noIndex, CommonComponent
	}
	if promoted, ok := t.tryPromoteDirectForeignEdge(root, u, v); ok {
		return promoted, noIndex, CommonComponent
	}

	spine := t.pathViaHierarchy(u, v)
	t.teardownRoot(root)
	rebuilt := t.buildComponent(u, spine)
	return rebuilt, noIndex, CommonComponent
}

// Expose brings v's component to a standing decomposition rooted with v
// as a boundary, via exposeOne, and returns that root.
//
// Complexity: O(depth) amortized once the decomposition has settled;
// see DESIGN.md for the cases that still fall back to a rebuild.
func (t *TopTree) Expose(v *Vertex) (*Cluster, ExposeResult) {
	root, result := t.exposeOne(v.id)
	return t.newClusterHandle(root, false), result
}

// Expose2 brings u and v to a single standing cluster when they share a
// component (a Path with u and v as its boundaries, u logically on the
// left), or exposes each separately when they do not.
//
// Complexity: see exposeTwo.
func (t *TopTree) Expose2(u, v *Vertex) (left, right *Cluster, result ExposeResult) {
	l, r, result := t.exposeTwo(u.id, v.id)
	lc := t.newClusterHandle(l, false)
	var rc *Cluster
	if r != noIndex {
		rc = t.newClusterHandle(r, false)
	}
	return lc, rc, result
}

// GetTopComponent returns the current top cluster of v's component,
// exposing v first so the result is deterministic. An isolated vertex
// still has a top cluster: a degenerate Point cluster containing only
// v.
//
// Complexity: same as Expose.
func (t *TopTree) GetTopComponent(v *Vertex) *Cluster {
	c, _ := t.Expose(v)
	return c
}
