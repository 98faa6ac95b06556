// Copyright (C) 2026 The mph Authors.
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU Affero General Public License for more details.
//
// You should have received a copy of the GNU Affero General Public License
// along with this program.  If not, see <http://www.gnu.org/licenses/>.

package mph

import (
	"log"

	"github.com/chmhash/mph/ints"
)

// Tunables controls the build loop's randomized search: how aggressively
// it grows the graph and how long it is willing to keep trying before
// giving up. The zero value is not valid; use DefaultTunables.
type Tunables struct {
	// NMaxMult caps the graph order as a multiple of its initial size
	// (key count + 1). Once a growth step brings the order to
	// NMaxMult*initial or beyond, Build fails with ErrBuildExceeded.
	NMaxMult int
	// GrowEvery is the number of failed iterations between graph
	// growth attempts.
	GrowEvery int
	// GrowMul and GrowDiv express the fractional growth factor
	// (GrowMul/GrowDiv) applied to the graph order every GrowEvery
	// iterations.
	GrowMul, GrowDiv int
}

// DefaultTunables are the reference values from the CHM construction
// literature and its original implementation.
var DefaultTunables = Tunables{
	NMaxMult:  650,
	GrowEvery: 5,
	GrowMul:   1075,
	GrowDiv:   1024,
}

// BuildStats collects diagnostic counters during a Build call. Passing a
// non-nil *BuildStats to WithStats never changes the outcome of Build;
// it only fills in the counters for inspection afterward. The counts are
// cumulative across every iteration of that one Build call; StackPeak is
// the high-water mark over all iterations, and FinalOrder, AdjacencyMin
// and AdjacencyMax describe the last iteration's graph.
type BuildStats struct {
	Iterations       int
	VerticesExplored int
	PRNGDraws        int
	HashInvocations  int
	FinalOrder       int
	StackPeak        int
	EdgeReallocs     int
	EdgeReallocBytes int64
	SaltReallocs     int
	SaltReallocBytes int64
	AdjacencyMin     int
	AdjacencyMax     int
}

type buildConfig struct {
	rand     RandSource
	stats    *BuildStats
	prealloc int
	logger   *log.Logger
	tunables Tunables
}

// Option configures a single Build call.
type Option func(*buildConfig)

// WithRandSource overrides the PRNG Build draws salt from. The default
// is a process-wide, OS-seeded source shared (safely) across calls that
// don't supply their own.
func WithRandSource(r RandSource) Option {
	return func(c *buildConfig) { c.rand = r }
}

// WithStats arranges for Build to fill stats with diagnostic counters.
func WithStats(stats *BuildStats) Option {
	return func(c *buildConfig) { c.stats = stats }
}

// WithAdjacencyPrealloc sets the number of adjacency slots a freshly
// grown vertex starts with. It is a pure memory/allocator-traffic
// trade-off and never changes Build's outcome or a Table's Lookup
// results.
func WithAdjacencyPrealloc(p int) Option {
	return func(c *buildConfig) { c.prealloc = p }
}

// WithLogger sets the logger Build uses for its diagnostic warning when
// the build loop exceeds its ceiling. A nil logger disables the warning.
// InputSet's zero-length-key warning goes to the logger passed to
// NewInputSet instead.
func WithLogger(l *log.Logger) Option {
	return func(c *buildConfig) { c.logger = l }
}

// WithTunables overrides the default growth-schedule constants.
func WithTunables(t Tunables) Option {
	return func(c *buildConfig) { c.tunables = t }
}

func newBuildConfig(opts []Option) buildConfig {
	cfg := buildConfig{tunables: DefaultTunables, logger: log.Default()}
	for _, o := range opts {
		o(&cfg)
	}
	if cfg.rand == nil {
		cfg.rand = defaultSource()
	}
	return cfg
}

// Build constructs a minimal perfect hash Table over every key currently
// in in. On success, ownership of in's records moves into the returned
// Table and in is left empty (but still valid: callers may keep using
// it, e.g. to Add new keys for a future build). On failure (ErrEmptyInput
// or ErrBuildExceeded) in is left exactly as it was.
func Build(in *InputSet, opts ...Option) (*Table, error) {
	cfg := newBuildConfig(opts)

	k := in.Len()
	if k == 0 {
		return nil, ErrEmptyInput
	}

	n := k + 1
	nInitial := n
	nScaled := n * cfg.tunables.GrowDiv

	g := newGraph(cfg.prealloc)
	g.ensureOrder(n)

	var f1, f2 hashState

	t := 1
	for {
		if t > 1 && (t-1)%cfg.tunables.GrowEvery == 0 {
			nScaled = (nScaled * cfg.tunables.GrowMul) / cfg.tunables.GrowDiv
			nNext := nScaled / cfg.tunables.GrowDiv
			n = ints.Max(n, nNext)
			g.ensureOrder(n)
			if n >= cfg.tunables.NMaxMult*nInitial {
				if cfg.stats != nil {
					cfg.stats.Iterations = t - 1
					cfg.stats.FinalOrder = n
				}
				if cfg.logger != nil {
					cfg.logger.Printf("mph: build exceeded %d iterations without an acyclic graph (order %d)", t-1, n)
				}
				return nil, ErrBuildExceeded
			}
		}

		g.wipe()
		f1.reset(n)
		f2.reset(n)

		for i := 0; i < k; i++ {
			key := in.records[i].key
			r1 := f1.hash(cfg.rand, key, cfg.stats)
			r2 := f2.hash(cfg.rand, key, cfg.stats)
			g.biconnect(r1, r2, i, cfg.stats)
		}

		if g.resolve(cfg.stats) {
			break
		}
		t++
	}

	selfCheck(in.records[:k], &f1, &f2, g.vertices, n)

	values := make([]int, n)
	for i, v := range g.vertices {
		values[i] = v.value
	}

	tbl := &Table{
		keys:   in.records[:k:k],
		f1:     f1,
		f2:     f2,
		values: values,
	}
	in.records = in.records[k:k]

	if cfg.stats != nil {
		cfg.stats.Iterations = t
		cfg.stats.FinalOrder = n
		lo, hi := g.adjacencyExtrema()
		cfg.stats.AdjacencyMin, cfg.stats.AdjacencyMax = lo, hi
	}

	return tbl, nil
}

// selfCheck re-derives each key's index from the frozen hash state and
// the resolved vertex values and panics if it ever disagrees with the
// key's position. This is the build's own witness of correctness: it
// always holds for a graph resolve reported as acyclic, so a failure
// here means a bug in hashState, graph, or resolve, not bad input.
func selfCheck(records []inputRecord, f1, f2 *hashState, vertices []vertex, n int) {
	for i, rec := range records {
		r1 := f1.hashFrozen(rec.key)
		r2 := f2.hashFrozen(rec.key)
		v := (vertices[r1].value + vertices[r2].value) % n
		if v != i {
			panic("mph: self-check failed: resolved labeling does not reproduce key order")
		}
	}
}
