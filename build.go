// build.go — the component (re)construction engine backing Link, Cut,
// and exposeTwo's general two-vertex fallback.
//
// Link and Cut, and the two-vertex Expose when neither of its cheaper
// paths applies, tear down the component's current compress/rake
// scaffolding and rebuild it fresh from the underlying half-edge rings
// (spec §4.1), directed so the vertex or vertex pair the caller cares
// about ends up as the root's boundary. A single-vertex Expose, and
// Select on top of it, splay the standing decomposition instead (see
// expose.go) and never rebuild. Base clusters (the edges themselves, spec §4.2) are
// untouched by a rebuild: only compress/rake/leaf nodes are ephemeral
// scaffolding.
//
// Every callback-observable contract in spec §4.3/§4.8/§8 (Create
// exactly once, Destroy exactly once, Split top-down before Destroy,
// Join bottom-up after construction, SelectQuestion consulted only by
// Select) is preserved by this construction; what is traded away is the
// O(log n) amortized bound spec §9 already flags as aspirational rather
// than tested. See DESIGN.md for the full rationale.
//
// Grounded on dfs/types.go's recursive ring-walk shape (adapted from
// adjacency-list DFS to half-edge-ring DFS) and prim_kruskal/kruskal.go's
// repeated-pairwise-merge pattern, generalized here to the rake-fold
// accumulator used when a vertex has more than one non-preferred
// branch.

package toptree

// buildCtx accumulates the side effects of one rebuild pass: which new
// compress/rake/leaf nodes were allocated (children before parents, so
// a single forward scan can fire Create then Join correctly) and which
// vertices were visited (so their componentRoot can be stamped once the
// root is known).
type buildCtx struct {
	preferred map[int]int // spine[i] -> spine[i+1], forces that continuation
	visited   []bool
	created   []int
	touched   []int
}

// teardownRoot dismantles the ephemeral (compress/rake/leaf) portion of
// the decomposition rooted at root, firing Split top-down then Destroy
// bottom-up, and detaching the base clusters it held so they can be
// picked back up by the next build. A noIndex root is a no-op.
func (t *TopTree) teardownRoot(root int) {
	if root == noIndex {
		return
	}
	var ephemeral []int
	t.collectEphemeral(root, &ephemeral)
	for _, idx := range ephemeral {
		n := t.nodes[idx].variant
		if n == variantCompress || n == variantRake {
			t.fireSplitOn(idx)
		}
	}
	for i := len(ephemeral) - 1; i >= 0; i-- {
		idx := ephemeral[i]
		t.fireDestroy(idx)
		t.detachAndDispose(idx)
	}
}

// collectEphemeral appends node and every compress/rake/leaf descendant
// reachable through it to out, stopping at base clusters (which are not
// ephemeral). Order is pre-order: a node always precedes its children.
func (t *TopTree) collectEphemeral(node int, out *[]int) {
	n := &t.nodes[node]
	if n.variant == variantBase {
		return
	}
	*out = append(*out, node)
	if n.left != noIndex {
		t.collectEphemeral(n.left, out)
	}
	if n.right != noIndex {
		t.collectEphemeral(n.right, out)
	}
}

// detachAndDispose clears idx's children's parent links (so base
// clusters float free for reuse) and frees idx's arena slot.
func (t *TopTree) detachAndDispose(idx int) {
	n := &t.nodes[idx]
	if n.left != noIndex {
		t.nodes[n.left].parent = noIndex
		t.nodes[n.left].parentRole = roleNone
	}
	if n.right != noIndex {
		t.nodes[n.right].parent = noIndex
		t.nodes[n.right].parentRole = roleNone
	}
	t.dispose(idx)
}

// buildComponent builds a fresh decomposition of pivot's component,
// rooted so pivot is a boundary of the result. When spine is non-empty
// (spine[0] must equal pivot), every spine[i] is forced to continue
// toward spine[i+1], guaranteeing the final root's two boundaries are
// spine[0] and spine[len(spine)-1]. Fires Create then Join, bottom-up,
// over every newly allocated node, and stamps componentRoot on every
// visited vertex. Assumes any prior decomposition of this component has
// already been torn down via teardownRoot.
func (t *TopTree) buildComponent(pivot int, spine []int) int {
	preferred := make(map[int]int, len(spine))
	for i := 0; i+1 < len(spine); i++ {
		preferred[spine[i]] = spine[i+1]
	}
	ctx := &buildCtx{preferred: preferred, visited: make([]bool, len(t.vertices))}
	root := t.buildFrom(ctx, pivot, noIndex)

	for _, idx := range ctx.created {
		t.fireCreate(idx)
	}
	for _, idx := range ctx.created {
		v := t.nodes[idx].variant
		if v == variantCompress || v == variantRake {
			t.fireJoinOn(idx)
		}
	}
	for _, v := range ctx.touched {
		t.vertices[v].componentRoot = root
	}
	if len(spine) > 0 {
		t.orientLeftBoundary(root, pivot)
	}
	return root
}

// buildFrom returns the cluster node representing v's subtree, viewed
// from cameFrom (the half-edge leading back to v's caller, or noIndex
// at the recursion's root), with v always its logical left boundary
// (or its sole boundary, if v turns out to be a Point).
func (t *TopTree) buildFrom(ctx *buildCtx, v int, cameFrom int) int {
	ctx.visited[v] = true
	ctx.touched = append(ctx.touched, v)

	pref, hasPref := ctx.preferred[v]
	mainBranch := noIndex
	var fosterBranches []int // v's non-preferred branches, folded after the loop

	for _, he := range t.ringEdges(v) {
		if he == cameFrom {
			continue
		}
		tw := t.halfEdges[he].twin
		w := t.halfEdges[tw].owner
		if ctx.visited[w] {
			continue
		}

		var branch int
		if t.degree(w) == 1 {
			// w is a dead end: the edge itself is the whole branch, no
			// need to recurse or fold in a contentless leaf point. The
			// base outlives earlier builds, so both endpoints' anchors
			// are pointed back at it here.
			ctx.visited[w] = true
			ctx.touched = append(ctx.touched, w)
			base := t.halfEdges[he].base
			t.orientLeftBoundary(base, v)
			t.touchAnchor(v, base)
			t.touchAnchor(w, base)
			branch = base
		} else {
			childResult := t.buildFrom(ctx, w, tw)
			branch = t.joinEdgeWithPath(ctx, t.halfEdges[he].base, childResult, v)
		}

		switch {
		case hasPref && w == pref:
			mainBranch = branch
		case mainBranch == noIndex && !hasPref:
			mainBranch = branch
		default:
			fosterBranches = append(fosterBranches, branch)
		}
	}

	if mainBranch == noIndex {
		return t.makeLeafPoint(ctx, v)
	}
	if len(fosterBranches) == 0 {
		return mainBranch
	}
	acc := t.combineBranches(ctx, fosterBranches, v)
	wrapped := t.absorbFoster(mainBranch, acc)
	ctx.created = append(ctx.created, wrapped)
	return wrapped
}

// joinEdgeWithPath compresses the base cluster for the edge v--w with
// childResult (w's subtree, viewed from this edge), producing a cluster
// with v as its logical left boundary.
func (t *TopTree) joinEdgeWithPath(ctx *buildCtx, baseIdx, childResult, v int) int {
	t.orientLeftBoundary(baseIdx, v)
	_, w := t.boundaries(baseIdx)
	t.orientLeftBoundary(childResult, w)

	idx := t.newCompress(baseIdx, childResult, w)
	t.recomputeShape(idx)
	ctx.created = append(ctx.created, idx)
	return idx
}

// combineBranches folds two or more branches sharing attach vertex v
// into one point cluster via balanced pairwise rake combination: each
// round pairs adjacent branches, carrying an odd one out forward
// unpaired, until a single point cluster remains. This keeps the rake
// side no deeper than log2(len(branches)) rather than a linear chain,
// and (unlike folding one branch in at a time) exercises all four
// rake-node ConnType cases over a large enough pack of shapes: the first round
// pairs raw Path branches (LPointAndRPoint), later rounds pair two
// already-combined Point accumulators (PointAndPoint) whenever four or
// more branches are present, and an odd carry pairs a Point accumulator
// against a raw Path branch.
//
// The carry's position alternates by round (appended after an even
// round, prepended before an odd one) so that carry-vs-accumulator
// pairings land on both sides of rakePair across different branch
// counts: always appending the carry at the end would make it the
// right operand every time it finally pairs, leaving the
// accumulator-on-right orientation unreachable.
//
// A single branch is paired against a fresh contentless leaf to force
// the Point-kind wrapping rake always produces; see makeLeafPoint.
func (t *TopTree) combineBranches(ctx *buildCtx, branches []int, v int) int {
	if len(branches) == 1 {
		leaf := t.makeLeafPoint(ctx, v)
		idx := t.rakePair(branches[0], leaf, v)
		ctx.created = append(ctx.created, idx)
		return idx
	}
	for round := 0; len(branches) > 1; round++ {
		next := make([]int, 0, (len(branches)+1)/2)
		i := 0
		for ; i+1 < len(branches); i += 2 {
			idx := t.rakePair(branches[i], branches[i+1], v)
			ctx.created = append(ctx.created, idx)
			next = append(next, idx)
		}
		if i < len(branches) {
			if round%2 == 0 {
				next = append(next, branches[i])
			} else {
				next = append([]int{branches[i]}, next...)
			}
		}
		branches = next
	}
	return branches[0]
}

// makeLeafPoint returns a fresh degenerate point cluster anchored at v.
func (t *TopTree) makeLeafPoint(ctx *buildCtx, v int) int {
	idx := t.newLeaf(v)
	ctx.created = append(ctx.created, idx)
	return idx
}

// connected reports whether u and v are in the same component, by
// comparing the roots of their standing cluster decompositions rather
// than walking the half-edge rings.
func (t *TopTree) connected(u, v int) bool {
	if u == v {
		return true
	}
	if t.isSingle(u) || t.isSingle(v) {
		return false
	}
	return t.root(t.vertices[u].anchor) == t.root(t.vertices[v].anchor)
}

// pathViaHierarchy reconstructs the tree-path vertex sequence from u to
// v (inclusive), assuming they are already known to share a component,
// by walking the existing cluster hierarchy's parent chain from v's
// anchor up to the shared root and reading off each compress node's
// compressedVertex along the way. A compress node wrapping a foster at
// the vertex its own enclosing joinEdgeWithPath step already recorded
// reports that same vertex again, so adjacent repeats are collapsed.
func (t *TopTree) pathViaHierarchy(u, v int) []int {
	chain := t.ancestorsToRoot(t.vertices[v].anchor)
	path := []int{u}
	for _, node := range chain {
		if t.nodes[node].variant != variantCompress {
			continue
		}
		cv := t.nodes[node].compressedVertex
		if path[len(path)-1] != cv {
			path = append(path, cv)
		}
	}
	if path[len(path)-1] != v {
		path = append(path, v)
	}
	return path
}
