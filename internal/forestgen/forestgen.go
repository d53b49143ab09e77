// Package forestgen builds small forests on toptree.TopTree instances for
// tests: paths, stars, and random recursive trees, each with
// configurable edge weights.
//
// Grounded on builder/config.go's functional-option config shape
// (rng/weightFn resolved once, then applied in a deterministic
// pass) and builder/weight_fn.go's WeightFn distributions; adapted from
// core.Graph's AddVertex/AddEdge to toptree.CreateVertex/Link, and from
// builder/impl_path.go / builder/impl_star.go's vertex+edge emission
// order. RandomTree's "attach new vertex to a uniformly random existing
// one" growth is the same stub-growth idea builder/impl_random_regular.go
// uses for its stub-matching loop, simplified here since a tree has no
// degree target to hit — just a parent pick per new vertex.
package forestgen

import (
	"math/rand"

	"github.com/katalvlaran/toptree"
)

// WeightFn produces an edge weight given an RNG source (nil means
// deterministic).
type WeightFn func(rng *rand.Rand) float64

// EdgeInfo is the default payload forestgen attaches to each edge it
// creates via Link; listeners that key off edge weight read Weight.
type EdgeInfo struct {
	Weight float64
}

// config mirrors builder.builderConfig: resolved once from defaults plus
// options, then consulted throughout one constructor call.
type config struct {
	rng      *rand.Rand
	weightFn WeightFn
}

// Option customizes a forestgen constructor call.
type Option func(*config)

func newConfig(opts ...Option) *config {
	cfg := &config{
		rng:      nil,
		weightFn: func(*rand.Rand) float64 { return 1 },
	}
	for _, opt := range opts {
		opt(cfg)
	}
	return cfg
}

// WithSeed seeds a fresh deterministic RNG for this constructor call.
func WithSeed(seed int64) Option {
	return func(cfg *config) { cfg.rng = rand.New(rand.NewSource(seed)) }
}

// WithRand injects an explicit RNG source. A nil rng is a no-op.
func WithRand(rng *rand.Rand) Option {
	return func(cfg *config) {
		if rng != nil {
			cfg.rng = rng
		}
	}
}

// WithConstantWeight makes every edge carry the fixed weight w.
func WithConstantWeight(w float64) Option {
	return func(cfg *config) { cfg.weightFn = func(*rand.Rand) float64 { return w } }
}

// WithUniformWeight samples each edge weight uniformly from [min, max).
// If the constructor call has no RNG (no WithSeed/WithRand option), it
// falls back to the midpoint, matching builder/weight_fn.go's
// nil-rng-means-deterministic convention.
func WithUniformWeight(min, max float64) Option {
	return func(cfg *config) {
		cfg.weightFn = func(rng *rand.Rand) float64 {
			if rng == nil {
				return (min + max) / 2
			}
			return min + rng.Float64()*(max-min)
		}
	}
}

// Path creates n vertices on tr and links them 0-1-2-...-(n-1),
// returning the vertices in order. Panics if n < 1 or a Link fails —
// both indicate a malformed call from test code, not a runtime
// condition callers should branch on.
func Path(tr *toptree.TopTree, n int, opts ...Option) []*toptree.Vertex {
	if n < 1 {
		panic("forestgen: Path requires n >= 1")
	}
	cfg := newConfig(opts...)
	vs := make([]*toptree.Vertex, n)
	for i := 0; i < n; i++ {
		vs[i] = tr.CreateVertex(nil)
	}
	for i := 1; i < n; i++ {
		w := cfg.weightFn(cfg.rng)
		if err := tr.Link(vs[i-1], vs[i], EdgeInfo{Weight: w}); err != nil {
			panic("forestgen: Path: " + err.Error())
		}
	}
	return vs
}

// Star creates n vertices on tr, vs[0] the hub, vs[1..n-1] leaves, each
// linked hub-to-leaf. Panics if n < 1.
func Star(tr *toptree.TopTree, n int, opts ...Option) []*toptree.Vertex {
	if n < 1 {
		panic("forestgen: Star requires n >= 1")
	}
	cfg := newConfig(opts...)
	vs := make([]*toptree.Vertex, n)
	for i := 0; i < n; i++ {
		vs[i] = tr.CreateVertex(nil)
	}
	for i := 1; i < n; i++ {
		w := cfg.weightFn(cfg.rng)
		if err := tr.Link(vs[0], vs[i], EdgeInfo{Weight: w}); err != nil {
			panic("forestgen: Star: " + err.Error())
		}
	}
	return vs
}

// RandomTree creates n vertices on tr and links each vertex i (for
// i >= 1) to a uniformly random vertex among 0..i-1 (the standard
// "random recursive tree" process; its shapes are not uniformly
// distributed over labeled trees). Requires an RNG: pass WithSeed or WithRand, else it
// panics, matching builder/impl_random_regular.go's "rng is required"
// gate for stochastic constructors.
func RandomTree(tr *toptree.TopTree, n int, opts ...Option) []*toptree.Vertex {
	if n < 1 {
		panic("forestgen: RandomTree requires n >= 1")
	}
	cfg := newConfig(opts...)
	if cfg.rng == nil {
		panic("forestgen: RandomTree requires WithSeed or WithRand")
	}
	vs := make([]*toptree.Vertex, n)
	for i := 0; i < n; i++ {
		vs[i] = tr.CreateVertex(nil)
	}
	for i := 1; i < n; i++ {
		parent := cfg.rng.Intn(i)
		w := cfg.weightFn(cfg.rng)
		if err := tr.Link(vs[i], vs[parent], EdgeInfo{Weight: w}); err != nil {
			panic("forestgen: RandomTree: " + err.Error())
		}
	}
	return vs
}
