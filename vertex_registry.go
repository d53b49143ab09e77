// vertex_registry.go — vertex creation and the half-edge adjacency ring
// (spec §4.1).
//
// Grounded on core/methods_vertices.go's CRUD-with-free-list shape and
// core/adjacency_list.go's cyclic-ring adjacency representation; adapted
// to an arena-indexed ring (prev/next are ints, not pointers) to match
// the rest of the package per spec §9.

package toptree

// CreateVertex adds a new isolated vertex carrying info and returns its
// handle. The new vertex is its own singleton component.
//
// Complexity: O(1).
func (t *TopTree) CreateVertex(info interface{}) *Vertex {
	idx := len(t.vertices)
	v := &Vertex{
		id:            idx,
		info:          info,
		ringHead:      noIndex,
		anchor:        noIndex,
		componentRoot: noIndex,
	}
	t.vertices = append(t.vertices, v)
	t.numVertices++
	t.numComponents++
	return v
}

// degree returns v's incident edge count.
func (t *TopTree) degree(v int) int { return t.vertices[v].degree }

// isSingle reports whether v has no incident edges.
func (t *TopTree) isSingle(v int) bool { return t.vertices[v].degree == 0 }

// allocHalfEdge reserves a half-edge slot, reusing a freed one when
// available.
func (t *TopTree) allocHalfEdge() int {
	if n := len(t.freeHalfEdges); n > 0 {
		idx := t.freeHalfEdges[n-1]
		t.freeHalfEdges = t.freeHalfEdges[:n-1]
		return idx
	}
	idx := len(t.halfEdges)
	t.halfEdges = append(t.halfEdges, halfEdge{})
	return idx
}

// insertHalfEdge inserts a new half-edge for vertex v into v's ring,
// immediately after the half-edge whose twin lands on vertex after (or
// at the head, if after is noIndex and the ring is non-empty, or as the
// sole element if the ring is empty). It returns the new half-edge's
// index, or NoSuchNeighbor if after is not noIndex and no half-edge of
// v currently points at after.
func (t *TopTree) insertHalfEdge(v int, after int, base int) (int, error) {
	vx := t.vertices[v]
	he := t.allocHalfEdge()
	t.halfEdges[he] = halfEdge{owner: v, twin: noIndex, base: base, alive: true}

	if vx.ringHead == noIndex {
		t.halfEdges[he].prev = he
		t.halfEdges[he].next = he
		vx.ringHead = he
		vx.degree++
		return he, nil
	}

	anchor := noIndex
	if after == noIndex {
		anchor = vx.ringHead
	} else {
		cur := vx.ringHead
		for {
			if t.halfEdges[cur].twin != noIndex && t.halfEdges[t.halfEdges[cur].twin].owner == after {
				anchor = cur
				break
			}
			cur = t.halfEdges[cur].next
			if cur == vx.ringHead {
				break
			}
		}
		if anchor == noIndex {
			t.freeHalfEdges = append(t.freeHalfEdges, he)
			return noIndex, NoSuchNeighbor
		}
	}

	nxt := t.halfEdges[anchor].next
	t.halfEdges[he].prev = anchor
	t.halfEdges[he].next = nxt
	t.halfEdges[anchor].next = he
	t.halfEdges[nxt].prev = he
	vx.degree++
	return he, nil
}

// removeHalfEdge unlinks he from its owner's ring and frees its slot.
func (t *TopTree) removeHalfEdge(he int) {
	h := &t.halfEdges[he]
	vx := t.vertices[h.owner]
	if h.next == he {
		vx.ringHead = noIndex
	} else {
		t.halfEdges[h.prev].next = h.next
		t.halfEdges[h.next].prev = h.prev
		if vx.ringHead == he {
			vx.ringHead = h.next
		}
	}
	vx.degree--
	h.alive = false
	t.freeHalfEdges = append(t.freeHalfEdges, he)
}

// neighborEdge returns the half-edge of u whose twin lands on v, or
// noIndex if u and v are not directly adjacent.
func (t *TopTree) neighborEdge(u, v int) int {
	vx := t.vertices[u]
	if vx.ringHead == noIndex {
		return noIndex
	}
	cur := vx.ringHead
	for {
		tw := t.halfEdges[cur].twin
		if tw != noIndex && t.halfEdges[tw].owner == v {
			return cur
		}
		cur = t.halfEdges[cur].next
		if cur == vx.ringHead {
			return noIndex
		}
	}
}

// ringEdges returns every live half-edge index in v's ring.
func (t *TopTree) ringEdges(v int) []int {
	vx := t.vertices[v]
	if vx.ringHead == noIndex {
		return nil
	}
	out := make([]int, 0, vx.degree)
	cur := vx.ringHead
	for {
		out = append(out, cur)
		cur = t.halfEdges[cur].next
		if cur == vx.ringHead {
			break
		}
	}
	return out
}
