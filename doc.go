// Package toptree implements a fully dynamic top tree over an unrooted
// forest of vertex-labeled, edge-labeled trees.
//
// What
//
//   - Online edge insertion (Link) and deletion (Cut).
//   - Path/tree queries focused on one or two user-chosen endpoints
//     (Expose), returning a root *Cluster the caller can read aggregate
//     information from.
//   - User-driven divide-and-conquer search over a component or a path
//     (Select), guided by a caller-supplied predicate.
//
// For every connected component, the engine maintains a hierarchical
// decomposition into clusters: base clusters (one per edge), compress
// clusters (concatenating two paths through a shared vertex), and rake
// clusters (attaching a subtree to a path vertex). Aggregate
// information — path length, running sums, diameters, markers,
// anything semigroup-shaped — is recomputed bottom-up from a changed
// base cluster to its component's root cluster, via the Listener
// callback protocol (Create/Destroy/Join/Split/SelectQuestion).
//
// Why
//
//   - A union-find answers "are u and v connected" but nothing about
//     the path between them. A top tree answers both, and keeps
//     answering them correctly as the forest is edited online.
//   - Aggregate queries (path length, heaviest edge, diameter, running
//     median) are expressed once, as a Listener, and apply uniformly
//     across Link, Cut, and Expose without the caller re-deriving them
//     from scratch after every edit.
//
// Concurrency
//
//   - Single-threaded cooperative: every exported method runs to
//     completion on the caller's goroutine. There is no intended
//     concurrency between mutators of one TopTree; independent TopTree
//     values are trivially independent. See NewTopTree.
//
// Complexity
//
//   - A single-vertex Expose drives rotate.go's splayCompress/splayRake
//     directly over the standing decomposition: O(depth of the current
//     decomposition), no rebuild. Link, Cut, and the less common
//     two-vertex Expose cases instead rebuild the affected component's
//     cluster decomposition from its half-edge rings, costing O(size of
//     the affected component(s)) rather than the O(log n) amortized
//     bound a fully persistent splay-based top tree achieves. Within one
//     rebuild, the rake side of the decomposition is folded pairwise
//     (build.go's combineBranches) so a vertex with k non-preferred
//     branches contributes O(log k) of cluster depth, but the compress
//     (spine) side follows the underlying DFS tree shape directly and is
//     not separately rebalanced, so Select's descent after a rebuild is
//     O(depth of the rebuilt spine), not a guaranteed O(log n). See
//     DESIGN.md's "Rotation-driven Expose, and where a rebuild still
//     backs it".
//
// Errors
//
//   - User-caused errors (AlreadyConnected, NoSuchEdge, NoSuchNeighbor,
//     SelfLoop, IllegalAccess) are returned, never panicked, and leave
//     the tree unchanged. Engine-internal consistency failures panic —
//     they indicate a bug in this package, not in caller input.
package toptree
