package toptree

// White-box property tests cross-checking a randomly edited TopTree
// against internal/refgraph's brute-force oracle: connectivity
// agreement, edge-count agreement, a whole-tree weight aggregate, and a
// reversed-boundary round trip via Expose2. This is what resolves
// DESIGN.md's Open Question (b) (the foster-becomes-proper reversed-bit
// swap) with more than a hand proof.
//
// Grounded on dfs/dfs_test.go's plain *testing.T + testify/assert style
// and on builder/config_test.go's table-of-seeds randomized-construction
// pattern.

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/katalvlaran/toptree/internal/refgraph"
)

// testEdge is the edge payload the white-box tests pass to Link. They
// cannot use internal/forestgen's EdgeInfo: forestgen imports this
// package, so importing it from an in-package test is an import cycle.
type testEdge struct {
	Weight float64
}

// totalWeightInfo sums every edge weight reachable from a cluster
// regardless of ConnType. Unlike pathLength-style aggregates (see
// scenario_test.go's pathLenListener), rake contributions are never dropped here,
// so a whole component's top cluster always reports the sum of every
// edge currently in that component.
type totalWeightInfo struct {
	Weight float64
}

type totalWeightListener struct{}

func (totalWeightListener) Create(c *Cluster, kind ClusterKind) {
	raw, _ := c.Info()
	if w, ok := raw.(testEdge); ok {
		_ = c.SetInfo(totalWeightInfo{Weight: w.Weight})
	}
}

func (totalWeightListener) Destroy(*Cluster, ClusterKind) {}

func weightOfCluster(info interface{}) float64 {
	if w, ok := info.(totalWeightInfo); ok {
		return w.Weight
	}
	return 0
}

func (totalWeightListener) Join(parent, left, right *Cluster, conn ConnType) {
	li, _ := left.Info()
	ri, _ := right.Info()
	_ = parent.SetInfo(totalWeightInfo{Weight: weightOfCluster(li) + weightOfCluster(ri)})
}

func (totalWeightListener) Split(*Cluster, *Cluster, *Cluster, ConnType) {}

func (totalWeightListener) SelectQuestion(*Cluster, *Cluster, ConnType) SelectSide {
	return SelectLeft
}

// lcgWalk is a tiny deterministic PRNG local to this file, used only to
// pick edit targets; internal/forestgen owns the actual tree-shape RNG.
type lcgWalk struct{ state uint64 }

func (w *lcgWalk) intn(bound int) int {
	w.state = w.state*6364136223846793005 + 1442695040888963407
	return int(w.state>>33) % bound
}

// TestPropertyConnectivityAndEdgeCountAgreeWithOracle grows a random
// spanning tree, then repeatedly cuts and relinks edges, asserting
// after every mutation that every vertex pair's connectivity and the
// live edge count agree with internal/refgraph's brute-force mirror.
func TestPropertyConnectivityAndEdgeCountAgreeWithOracle(t *testing.T) {
	const n = 20
	for seed := int64(0); seed < 6; seed++ {
		tr := NewTopTree(WithListener(totalWeightListener{}))
		oracle := refgraph.New()
		walk := &lcgWalk{state: uint64(seed)*2654435761 + 1}

		vs := make([]*Vertex, n)
		for i := 0; i < n; i++ {
			vs[i] = tr.CreateVertex(i)
			oracle.EnsureVertex(i)
		}

		edges := make([][2]int, 0, n-1)
		for i := 1; i < n; i++ {
			parent := walk.intn(i)
			w := float64(1 + walk.intn(5))
			assert.NoError(t, tr.Link(vs[i], vs[parent], testEdge{Weight: w}))
			oracle.AddEdge(i, parent, w)
			edges = append(edges, [2]int{i, parent})
		}
		assertConnectivityAgrees(t, tr, oracle, vs)
		assertWholeTreeWeight(t, tr, vs[0], oracle)

		for k := 0; k < n/2; k++ {
			ei := walk.intn(len(edges))
			u, v := edges[ei][0], edges[ei][1]
			assert.NoError(t, tr.Cut(vs[u], vs[v]))
			oracle.RemoveEdge(u, v)
			assertConnectivityAgrees(t, tr, oracle, vs)

			target := walk.intn(n)
			for target == u || tr.connected(u, target) {
				target = walk.intn(n)
			}
			w := float64(1 + walk.intn(5))
			assert.NoError(t, tr.Link(vs[u], vs[target], testEdge{Weight: w}))
			oracle.AddEdge(u, target, w)
			edges[ei] = [2]int{u, target}

			assertConnectivityAgrees(t, tr, oracle, vs)
			assertWholeTreeWeight(t, tr, vs[0], oracle)
		}
	}
}

// assertConnectivityAgrees checks every vertex pair's connectivity and
// the live edge count against the oracle.
func assertConnectivityAgrees(t *testing.T, tr *TopTree, oracle *refgraph.Graph, vs []*Vertex) {
	t.Helper()

	gotEdges := 0
	for _, v := range vs {
		gotEdges += tr.degree(v.ID())
	}
	gotEdges /= 2
	assert.Equal(t, oracle.NumEdges(), gotEdges, "edge count disagreement")

	for i, a := range vs {
		for _, b := range vs[i+1:] {
			want := oracle.Connected(a.ID(), b.ID())
			got := tr.connected(a.ID(), b.ID())
			assert.Equalf(t, want, got, "connectivity(%d,%d) disagreement", a.ID(), b.ID())
		}
	}
}

// assertWholeTreeWeight asserts the top cluster's total-weight
// aggregate matches the sum of every edge weight the oracle currently
// has on record. Only meaningful when every vertex shares one
// component, which every call site here guarantees.
func assertWholeTreeWeight(t *testing.T, tr *TopTree, anchor *Vertex, oracle *refgraph.Graph) {
	t.Helper()

	top := tr.GetTopComponent(anchor)
	info, err := top.Info()
	assert.NoError(t, err)

	var want float64
	for _, e := range oracle.Edges() {
		want += e.Weight
	}
	assert.InDelta(t, want, weightOfCluster(info), 1e-9, "whole-tree weight disagreement")
}

// TestPropertyExposeReversedRoundTrip builds a random tree, then for
// every vertex pair checks that Expose2(u, v) and Expose2(v, u) report
// swapped boundaries and the same path weight, and that the weight
// matches internal/refgraph's brute-force path reconstruction. This is
// the cross-check DESIGN.md's Open Question (b) resolution relies on
// for the foster-becomes-proper reversed-bit swap.
func TestPropertyExposeReversedRoundTrip(t *testing.T) {
	const n = 14
	for seed := int64(0); seed < 6; seed++ {
		tr := NewTopTree(WithListener(totalWeightListener{}))
		oracle := refgraph.New()
		walk := &lcgWalk{state: uint64(seed)*2246822519 + 3266489917}

		vs := make([]*Vertex, n)
		for i := 0; i < n; i++ {
			vs[i] = tr.CreateVertex(i)
			oracle.EnsureVertex(i)
		}
		for i := 1; i < n; i++ {
			parent := walk.intn(i)
			w := float64(1 + walk.intn(9))
			assert.NoError(t, tr.Link(vs[i], vs[parent], testEdge{Weight: w}))
			oracle.AddEdge(i, parent, w)
		}

		for i, u := range vs {
			for _, v := range vs[i+1:] {
				fwd, _, result := tr.Expose2(u, v)
				assert.Equal(t, CommonComponent, result)
				fwdInfo, err := fwd.Info()
				assert.NoError(t, err)
				fwdBu, _ := fwd.Bu()
				fwdBv, _ := fwd.Bv()
				assert.Equal(t, u.ID(), fwdBu.ID())
				assert.Equal(t, v.ID(), fwdBv.ID())

				rev, _, result2 := tr.Expose2(v, u)
				assert.Equal(t, CommonComponent, result2)
				revInfo, err := rev.Info()
				assert.NoError(t, err)
				revBu, _ := rev.Bu()
				revBv, _ := rev.Bv()
				assert.Equal(t, v.ID(), revBu.ID())
				assert.Equal(t, u.ID(), revBv.ID())

				assert.InDeltaf(t, weightOfCluster(fwdInfo), weightOfCluster(revInfo), 1e-9,
					"path weight differs between Expose2(%d,%d) and Expose2(%d,%d)",
					u.ID(), v.ID(), v.ID(), u.ID())

				want, ok := oracle.PathWeight(u.ID(), v.ID())
				assert.True(t, ok)
				assert.InDelta(t, want, weightOfCluster(fwdInfo), 1e-9,
					"path weight disagrees with oracle")
			}
		}
	}
}
