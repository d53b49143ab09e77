// Package refgraph is a brute-force reference oracle for property tests:
// a plain adjacency-map mirror of whatever Link/Cut sequence is also
// applied to a toptree.TopTree, answering the same connectivity, path,
// and diameter questions by brute force so tests can cross-check the
// tree's O(1)/O(log n) answers against an obviously-correct O(n) one.
//
// Grounded on core/types.go's Graph struct (vertex set + adjacency map)
// and core/methods.go's CRUD shape for AddEdge/RemoveEdge; the
// union-find used for NumComponents is the disjoint-set-with-path-
// compression idiom from prim_kruskal/kruskal.go, rebuilt from scratch
// on each query rather than incrementally maintained, since union-find
// has no efficient "undo a union" operation and Cut needs one — building
// fresh is O(n) but the oracle only ever has to outrun correctness, not
// the tree's own complexity. The path/diameter walker is an iterative
// breadth-first search over the adjacency map, relying on the oracle
// only ever seeing forests (one path between any two vertices).
package refgraph

// Graph mirrors an undirected forest: a set of vertex ids and a
// symmetric adjacency map of edge weights.
type Graph struct {
	adj map[int]map[int]float64
}

// New returns an empty reference graph.
func New() *Graph {
	return &Graph{adj: make(map[int]map[int]float64)}
}

// EnsureVertex registers id if it is not already present, with no
// incident edges. Idempotent.
func (g *Graph) EnsureVertex(id int) {
	if _, ok := g.adj[id]; !ok {
		g.adj[id] = make(map[int]float64)
	}
}

// AddEdge records an undirected edge u--v with the given weight.
// Both endpoints must already exist (EnsureVertex them first).
func (g *Graph) AddEdge(u, v int, weight float64) {
	g.adj[u][v] = weight
	g.adj[v][u] = weight
}

// RemoveEdge deletes the edge u--v, if present.
func (g *Graph) RemoveEdge(u, v int) {
	delete(g.adj[u], v)
	delete(g.adj[v], u)
}

// Degree returns the number of edges incident to v.
func (g *Graph) Degree(v int) int { return len(g.adj[v]) }

// unionFind is the classic disjoint-set with path compression and union
// by rank, rebuilt fresh per query (see package doc).
type unionFind struct {
	parent map[int]int
	rank   map[int]int
}

func newUnionFind(vertices []int) *unionFind {
	uf := &unionFind{parent: make(map[int]int, len(vertices)), rank: make(map[int]int, len(vertices))}
	for _, v := range vertices {
		uf.parent[v] = v
	}
	return uf
}

func (uf *unionFind) find(x int) int {
	for uf.parent[x] != x {
		uf.parent[x] = uf.parent[uf.parent[x]] // path halving
		x = uf.parent[x]
	}
	return x
}

func (uf *unionFind) union(a, b int) {
	ra, rb := uf.find(a), uf.find(b)
	if ra == rb {
		return
	}
	if uf.rank[ra] < uf.rank[rb] {
		ra, rb = rb, ra
	}
	uf.parent[rb] = ra
	if uf.rank[ra] == uf.rank[rb] {
		uf.rank[ra]++
	}
}

func (g *Graph) vertexIDs() []int {
	ids := make([]int, 0, len(g.adj))
	for id := range g.adj {
		ids = append(ids, id)
	}
	return ids
}

func (g *Graph) buildUnionFind() *unionFind {
	uf := newUnionFind(g.vertexIDs())
	for u, nbrs := range g.adj {
		for v := range nbrs {
			uf.union(u, v)
		}
	}
	return uf
}

// Connected reports whether u and v are in the same component.
func (g *Graph) Connected(u, v int) bool {
	if u == v {
		return true
	}
	uf := g.buildUnionFind()
	return uf.find(u) == uf.find(v)
}

// NumComponents counts connected components, including isolated
// vertices.
func (g *Graph) NumComponents() int {
	uf := g.buildUnionFind()
	roots := make(map[int]bool)
	for _, v := range g.vertexIDs() {
		roots[uf.find(v)] = true
	}
	return len(roots)
}

// NumEdges returns the number of undirected edges currently recorded.
func (g *Graph) NumEdges() int {
	total := 0
	for _, nbrs := range g.adj {
		total += len(nbrs)
	}
	return total / 2
}

// Edge is one undirected edge, reported once regardless of adjacency
// direction.
type Edge struct {
	U, V   int
	Weight float64
}

// Edges returns every undirected edge currently recorded, each once.
func (g *Graph) Edges() []Edge {
	edges := make([]Edge, 0, g.NumEdges())
	for u, nbrs := range g.adj {
		for v, w := range nbrs {
			if u < v {
				edges = append(edges, Edge{U: u, V: v, Weight: w})
			}
		}
	}
	return edges
}

// Path returns the unique tree-path's vertex sequence from u to v
// (inclusive, u first), or ok=false if they are not connected.
func (g *Graph) Path(u, v int) (path []int, ok bool) {
	if u == v {
		return []int{u}, true
	}
	parent := make(map[int]int)
	visited := map[int]bool{u: true}
	queue := []int{u}
	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		if cur == v {
			break
		}
		for w := range g.adj[cur] {
			if visited[w] {
				continue
			}
			visited[w] = true
			parent[w] = cur
			queue = append(queue, w)
		}
	}
	if !visited[v] {
		return nil, false
	}
	for cur := v; ; cur = parent[cur] {
		path = append(path, cur)
		if cur == u {
			break
		}
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}
	return path, true
}

// PathWeight sums edge weights along the tree-path from u to v. ok is
// false if they are not connected.
func (g *Graph) PathWeight(u, v int) (weight float64, ok bool) {
	path, ok := g.Path(u, v)
	if !ok {
		return 0, false
	}
	for i := 1; i < len(path); i++ {
		weight += g.adj[path[i-1]][path[i]]
	}
	return weight, true
}

// farthest runs a weighted BFS/DFS from src and returns the farthest
// vertex reached and its distance, restricted to src's component.
func (g *Graph) farthest(src int) (int, float64) {
	dist := map[int]float64{src: 0}
	visited := map[int]bool{src: true}
	queue := []int{src}
	best, bestDist := src, 0.0
	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		if dist[cur] > bestDist {
			best, bestDist = cur, dist[cur]
		}
		for w, weight := range g.adj[cur] {
			if visited[w] {
				continue
			}
			visited[w] = true
			dist[w] = dist[cur] + weight
			queue = append(queue, w)
		}
	}
	return best, bestDist
}

// Diameter returns the weighted diameter (longest vertex-to-vertex
// distance) of the component containing v, via the standard
// double-sweep technique (valid because every component here is a
// tree: no cycles, so two BFS/DFS sweeps suffice).
func (g *Graph) Diameter(v int) float64 {
	a, _ := g.farthest(v)
	_, d := g.farthest(a)
	return d
}
