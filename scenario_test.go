package toptree_test

// Black-box end-to-end scenarios, one per concrete example in spec §8.
// Each scenario gets its own minimal Listener, defined in this file.
//
// Grounded on dfs/dfs_test.go's plain *testing.T + testify/assert style
// and fixture-builder-function shape.

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/katalvlaran/toptree"
)

type weight float64

// pathLenListener sums edge weight along a path; the rake side always
// zeroes since none of these scenarios branch.
type pathLenListener struct{}

func (pathLenListener) Create(c *toptree.Cluster, kind toptree.ClusterKind) {
	raw, _ := c.Info()
	if w, ok := raw.(weight); ok {
		_ = c.SetInfo(float64(w))
	}
}
func (pathLenListener) Destroy(*toptree.Cluster, toptree.ClusterKind) {}
func (pathLenListener) Join(parent, left, right *toptree.Cluster, conn toptree.ConnType) {
	li, _ := left.Info()
	ri, _ := right.Info()
	ll, _ := li.(float64)
	rl, _ := ri.(float64)
	switch conn {
	case toptree.PathAndPath:
		_ = parent.SetInfo(ll + rl)
	case toptree.PathAndPoint:
		_ = parent.SetInfo(ll)
	case toptree.PointAndPath:
		_ = parent.SetInfo(rl)
	default:
		_ = parent.SetInfo(0.0)
	}
}
func (pathLenListener) Split(*toptree.Cluster, *toptree.Cluster, *toptree.Cluster, toptree.ConnType) {
}
func (pathLenListener) SelectQuestion(*toptree.Cluster, *toptree.Cluster, toptree.ConnType) toptree.SelectSide {
	return toptree.SelectLeft
}

func length(c *toptree.Cluster) float64 {
	info, _ := c.Info()
	l, _ := info.(float64)
	return l
}

// Scenario 1: path length.
func TestScenarioPathLength(t *testing.T) {
	tr := toptree.NewTopTree(toptree.WithListener(pathLenListener{}))
	vs := make([]*toptree.Vertex, 5)
	for i := range vs {
		vs[i] = tr.CreateVertex(i + 1)
	}
	for i := 1; i < len(vs); i++ {
		assert.NoError(t, tr.Link(vs[i-1], vs[i], weight(1)))
	}

	top, _, _ := tr.Expose2(vs[0], vs[4])
	assert.Equal(t, 4.0, length(top))
}

// Scenario 2: cut splits components.
func TestScenarioCutSplitsComponents(t *testing.T) {
	tr := toptree.NewTopTree(toptree.WithListener(pathLenListener{}))
	vs := make([]*toptree.Vertex, 5)
	for i := range vs {
		vs[i] = tr.CreateVertex(i + 1)
	}
	for i := 1; i < len(vs); i++ {
		assert.NoError(t, tr.Link(vs[i-1], vs[i], weight(1)))
	}

	assert.NoError(t, tr.Cut(vs[2], vs[3]))
	assert.Equal(t, 2, tr.NumComponents())

	_, _, result := tr.Expose2(vs[0], vs[4])
	assert.Equal(t, toptree.DifferentComponents, result)

	left, _, result := tr.Expose2(vs[0], vs[2])
	assert.Equal(t, toptree.CommonComponent, result)
	assert.Equal(t, 2.0, length(left))

	left, _, result = tr.Expose2(vs[3], vs[4])
	assert.Equal(t, toptree.CommonComponent, result)
	assert.Equal(t, 1.0, length(left))
}

// maxEdgeListener picks the heavier side on a PathAndPath join and
// steers Select the same way; no rake node is ever reached on a pure
// path.
type maxEdgeListener struct{}

func (maxEdgeListener) Create(c *toptree.Cluster, kind toptree.ClusterKind) {
	raw, _ := c.Info()
	if w, ok := raw.(weight); ok {
		_ = c.SetInfo(float64(w))
	}
}
func (maxEdgeListener) Destroy(*toptree.Cluster, toptree.ClusterKind) {}
func (maxEdgeListener) Join(parent, left, right *toptree.Cluster, conn toptree.ConnType) {
	li, _ := left.Info()
	ri, _ := right.Info()
	lw, _ := li.(float64)
	rw, _ := ri.(float64)
	switch conn {
	case toptree.PathAndPath:
		if lw >= rw {
			_ = parent.SetInfo(lw)
		} else {
			_ = parent.SetInfo(rw)
		}
	case toptree.PathAndPoint:
		_ = parent.SetInfo(lw)
	case toptree.PointAndPath:
		_ = parent.SetInfo(rw)
	default:
		_ = parent.SetInfo(0.0)
	}
}
func (maxEdgeListener) Split(*toptree.Cluster, *toptree.Cluster, *toptree.Cluster, toptree.ConnType) {
}
func (maxEdgeListener) SelectQuestion(left, right *toptree.Cluster, conn toptree.ConnType) toptree.SelectSide {
	li, _ := left.Info()
	ri, _ := right.Info()
	lw, _ := li.(float64)
	rw, _ := ri.(float64)
	if lw >= rw {
		return toptree.SelectLeft
	}
	return toptree.SelectRight
}

// Scenario 3: max edge on path.
func TestScenarioMaxEdgeOnPath(t *testing.T) {
	tr := toptree.NewTopTree(toptree.WithListener(maxEdgeListener{}))
	names := []interface{}{"a", "b", "c", "d", "e"}
	vs := make([]*toptree.Vertex, len(names))
	for i, n := range names {
		vs[i] = tr.CreateVertex(n)
	}
	weights := []weight{3, 7, 2, 5}
	for i, w := range weights {
		assert.NoError(t, tr.Link(vs[i], vs[i+1], w))
	}

	a, b, ok := tr.Select2(vs[0], vs[4])
	assert.True(t, ok)
	assert.ElementsMatch(t, []interface{}{"b", "c"}, []interface{}{a.Info(), b.Info()})
}

// diamInfo is a cluster's diameter aggregate: path length between its
// boundaries, each boundary's eccentricity, and the diameter inside it.
type diamInfo struct{ Len, EccA, EccB, Diam float64 }

type diameterListener struct{}

func (diameterListener) Create(c *toptree.Cluster, kind toptree.ClusterKind) {
	raw, _ := c.Info()
	if w, ok := raw.(weight); ok {
		d := float64(w)
		_ = c.SetInfo(diamInfo{Len: d, EccA: d, EccB: d, Diam: d})
	}
}
func (diameterListener) Destroy(*toptree.Cluster, toptree.ClusterKind) {}
func dmax(a, b float64) float64 {
	if b > a {
		return b
	}
	return a
}
func (diameterListener) Join(parent, left, right *toptree.Cluster, conn toptree.ConnType) {
	li, _ := left.Info()
	ri, _ := right.Info()
	l, _ := li.(diamInfo)
	r, _ := ri.(diamInfo)
	switch conn {
	case toptree.PathAndPath:
		_ = parent.SetInfo(diamInfo{
			Len:  l.Len + r.Len,
			EccA: dmax(l.EccA, l.Len+r.EccA),
			EccB: dmax(r.EccB, r.Len+l.EccB),
			Diam: dmax(dmax(l.Diam, r.Diam), l.EccB+r.EccA),
		})
	case toptree.PathAndPoint:
		_ = parent.SetInfo(diamInfo{
			Len:  l.Len,
			EccA: dmax(l.EccA, l.Len+r.EccA),
			EccB: dmax(l.EccB, r.EccA),
			Diam: dmax(dmax(l.Diam, r.Diam), l.EccB+r.EccA),
		})
	case toptree.PointAndPath:
		_ = parent.SetInfo(diamInfo{
			Len:  r.Len,
			EccA: dmax(l.EccA, r.EccA),
			EccB: dmax(r.EccB, l.EccA+r.Len),
			Diam: dmax(dmax(l.Diam, r.Diam), l.EccA+r.EccA),
		})
	default:
		_ = parent.SetInfo(diamInfo{
			EccA: dmax(l.EccA, r.EccA),
			Diam: dmax(dmax(l.Diam, r.Diam), l.EccA+r.EccA),
		})
	}
}
func (diameterListener) Split(*toptree.Cluster, *toptree.Cluster, *toptree.Cluster, toptree.ConnType) {
}
func (diameterListener) SelectQuestion(*toptree.Cluster, *toptree.Cluster, toptree.ConnType) toptree.SelectSide {
	return toptree.SelectLeft
}

// Scenario 4: diameter, tree 1-2-3-4 with a 3-5 branch, every edge
// length 1.
func TestScenarioDiameter(t *testing.T) {
	tr := toptree.NewTopTree(toptree.WithListener(diameterListener{}))
	vs := make([]*toptree.Vertex, 5)
	for i := range vs {
		vs[i] = tr.CreateVertex(i + 1)
	}
	assert.NoError(t, tr.Link(vs[0], vs[1], weight(1)))
	assert.NoError(t, tr.Link(vs[1], vs[2], weight(1)))
	assert.NoError(t, tr.Link(vs[2], vs[3], weight(1)))
	assert.NoError(t, tr.Link(vs[2], vs[4], weight(1)))

	top := tr.GetTopComponent(vs[0])
	info, err := top.Info()
	assert.NoError(t, err)
	assert.Equal(t, 3.0, info.(diamInfo).Diam)
}

// weightedSizeListener tracks cumulative edge weight instead of a raw
// base-cluster count, so the "median" lands on the edge containing the
// heaviest nearby vertex rather than the structural midpoint.
type weightedSizeListener struct{ target float64 }

func (*weightedSizeListener) Create(c *toptree.Cluster, kind toptree.ClusterKind) {
	raw, _ := c.Info()
	if w, ok := raw.(weight); ok {
		_ = c.SetInfo(float64(w))
	}
}
func (*weightedSizeListener) Destroy(*toptree.Cluster, toptree.ClusterKind) {}
func (*weightedSizeListener) Join(parent, left, right *toptree.Cluster, conn toptree.ConnType) {
	li, _ := left.Info()
	ri, _ := right.Info()
	ls, _ := li.(float64)
	rs, _ := ri.(float64)
	switch conn {
	case toptree.PathAndPoint:
		_ = parent.SetInfo(ls)
	case toptree.PointAndPath:
		_ = parent.SetInfo(rs)
	default:
		_ = parent.SetInfo(ls + rs)
	}
}
func (*weightedSizeListener) Split(*toptree.Cluster, *toptree.Cluster, *toptree.Cluster, toptree.ConnType) {
}
func (m *weightedSizeListener) SelectQuestion(left, right *toptree.Cluster, conn toptree.ConnType) toptree.SelectSide {
	switch conn {
	case toptree.PathAndPoint:
		return toptree.SelectLeft
	case toptree.PointAndPath:
		return toptree.SelectRight
	default:
		li, _ := left.Info()
		ls, _ := li.(float64)
		if m.target < ls {
			return toptree.SelectLeft
		}
		m.target -= ls
		return toptree.SelectRight
	}
}

// Scenario 5: dynamic median over a weighted path 1..7 with vertex
// weights 1,1,5,1,1,1,1 (vertex i's weight rides the edge that ends at
// i); select(1) must land on the pair containing vertex 3.
func TestScenarioDynamicMedian(t *testing.T) {
	listener := &weightedSizeListener{}
	tr := toptree.NewTopTree(toptree.WithListener(listener))
	vs := make([]*toptree.Vertex, 7)
	for i := range vs {
		vs[i] = tr.CreateVertex(i + 1)
	}
	vertexWeights := []weight{1, 1, 5, 1, 1, 1, 1}
	var total float64
	for i := 1; i < len(vs); i++ {
		w := vertexWeights[i]
		assert.NoError(t, tr.Link(vs[i-1], vs[i], w))
		total += float64(w)
	}
	listener.target = total / 2

	a, b, ok := tr.Select(vs[0])
	assert.True(t, ok)
	assert.True(t, a.Info() == 3 || b.Info() == 3, "expected the median pair to contain vertex 3, got (%v, %v)", a.Info(), b.Info())
}

// Scenario 6: self-loop rejected.
func TestScenarioSelfLoopRejected(t *testing.T) {
	tr := toptree.NewTopTree(toptree.WithListener(pathLenListener{}))
	v := tr.CreateVertex(1)
	err := tr.Link(v, v, weight(1))
	assert.ErrorIs(t, err, toptree.SelfLoop)
}

// Scenario 7: already-connected rejected.
func TestScenarioAlreadyConnectedRejected(t *testing.T) {
	tr := toptree.NewTopTree(toptree.WithListener(pathLenListener{}))
	vs := make([]*toptree.Vertex, 3)
	for i := range vs {
		vs[i] = tr.CreateVertex(i + 1)
	}
	assert.NoError(t, tr.Link(vs[0], vs[1], weight(1)))
	assert.NoError(t, tr.Link(vs[1], vs[2], weight(1)))

	err := tr.Link(vs[0], vs[2], weight(1))
	assert.ErrorIs(t, err, toptree.AlreadyConnected)
}

// Scenario 8: illegal access to a cluster handle that stopped being
// the top of its component after a later mutation.
func TestScenarioIllegalAccess(t *testing.T) {
	tr := toptree.NewTopTree(toptree.WithListener(pathLenListener{}))
	vs := make([]*toptree.Vertex, 3)
	for i := range vs {
		vs[i] = tr.CreateVertex(i + 1)
	}
	assert.NoError(t, tr.Link(vs[0], vs[1], weight(1)))

	stale := tr.GetTopComponent(vs[0])
	_, err := stale.Info()
	assert.NoError(t, err)

	assert.NoError(t, tr.Link(vs[1], vs[2], weight(1)))

	_, err = stale.Info()
	assert.ErrorIs(t, err, toptree.IllegalAccess)
}
