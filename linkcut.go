// linkcut.go — Link (three arities) and Cut (spec §4.1/§6).
//
// Grounded on builder/impl_path.go's validate-then-mutate edge
// insertion and core/methods.go's symmetric half-edge wiring; unlike
// the teacher, validation must complete for *both* ring positions
// before any half-edge is inserted, since link(u, au, v, bv, info)
// can legitimately fail on the second ring after the first would have
// succeeded, and spec §7 requires state to be unchanged on error.

package toptree

// Link joins u and v with a new edge carrying info, inserting the new
// half-edge at an arbitrary position in each endpoint's adjacency ring.
// Returns SelfLoop if u == v, AlreadyConnected if u and v already share
// a component.
//
// Complexity: O(size of the resulting component).
func (t *TopTree) Link(u, v *Vertex, info interface{}) error {
	return t.link(u, v, nil, nil, info)
}

// LinkAfter joins u and v like Link, but inserts the new half-edge in
// v's ring immediately after the half-edge to afterInV. Returns
// NoSuchNeighbor if afterInV is not currently adjacent to v.
//
// Complexity: O(size of the resulting component).
func (t *TopTree) LinkAfter(u, v, afterInV *Vertex, info interface{}) error {
	return t.link(u, v, nil, afterInV, info)
}

// LinkBetween joins u and v like Link, but inserts the new half-edge in
// u's ring immediately after afterInU and in v's ring immediately after
// afterInV. Returns NoSuchNeighbor if either is not currently adjacent
// to its respective vertex.
//
// Complexity: O(size of the resulting component).
func (t *TopTree) LinkBetween(u, afterInU, v, afterInV *Vertex, info interface{}) error {
	return t.link(u, v, afterInU, afterInV, info)
}

func (t *TopTree) link(u, v, afterInU, afterInV *Vertex, info interface{}) (err error) {
	if u.id == v.id {
		return SelfLoop
	}
	if t.connected(u.id, v.id) {
		return AlreadyConnected
	}

	afterU, afterV := noIndex, noIndex
	if afterInU != nil {
		afterU = afterInU.id
		if t.neighborEdge(u.id, afterU) == noIndex {
			return NoSuchNeighbor
		}
	}
	if afterInV != nil {
		afterV = afterInV.id
		if t.neighborEdge(v.id, afterV) == noIndex {
			return NoSuchNeighbor
		}
	}

	defer t.guardInconsistency(&err)

	t.teardownRoot(u.componentRoot)
	if v.componentRoot != u.componentRoot {
		t.teardownRoot(v.componentRoot)
	}

	base := t.newBase(u.id, v.id, info)
	heU, ierr := t.insertHalfEdge(u.id, afterU, base)
	if ierr != nil {
		t.errInconsistentCluster("link: validated neighbor rejected by insertHalfEdge")
	}
	heV, ierr := t.insertHalfEdge(v.id, afterV, base)
	if ierr != nil {
		t.errInconsistentCluster("link: validated neighbor rejected by insertHalfEdge")
	}
	t.halfEdges[heU].twin = heV
	t.halfEdges[heV].twin = heU

	t.fireCreate(base)

	t.numEdges++
	t.numComponents--

	t.buildComponent(u.id, nil)
	return nil
}

// Cut removes the edge directly joining u and v. Returns NoSuchEdge if
// they are not directly adjacent.
//
// Complexity: O(size of the pre-cut component).
func (t *TopTree) Cut(u, v *Vertex) (err error) {
	he := t.neighborEdge(u.id, v.id)
	if he == noIndex {
		return NoSuchEdge
	}
	base := t.halfEdges[he].base
	tw := t.halfEdges[he].twin

	defer t.guardInconsistency(&err)

	t.teardownRoot(u.componentRoot)

	t.fireDestroy(base)
	t.removeHalfEdge(he)
	t.removeHalfEdge(tw)
	t.dispose(base)

	t.numEdges--
	t.numComponents++

	if t.isSingle(u.id) {
		u.componentRoot = noIndex
		u.anchor = noIndex
	} else {
		t.buildComponent(u.id, nil)
	}
	if t.isSingle(v.id) {
		v.componentRoot = noIndex
		v.anchor = noIndex
	} else {
		t.buildComponent(v.id, nil)
	}
	return nil
}
