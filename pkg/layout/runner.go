package layout

import (
	"context"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/strata/pkg/cache"
	"github.com/matzehuels/strata/pkg/graph"
	"github.com/matzehuels/strata/pkg/graphio"
	"github.com/matzehuels/strata/pkg/observability"
)

// Runner encapsulates layout execution with caching.
// Both CLI and API use this to avoid duplicating caching logic.
//
// The Runner is stateless except for the cache and logger; it does not
// store layout results. Multiple goroutines can safely share a Runner.
type Runner struct {
	Cache  cache.Cache
	Keyer  cache.Keyer
	Logger *log.Logger
}

// NewRunner creates a runner with the given cache and keyer.
// If keyer is nil, a DefaultKeyer is used.
// If cache is nil, a NullCache is used (caching disabled).
func NewRunner(c cache.Cache, keyer cache.Keyer, logger *log.Logger) *Runner {
	if keyer == nil {
		keyer = cache.NewDefaultKeyer()
	}
	if c == nil {
		c = cache.NewNullCache()
	}
	if logger == nil {
		logger = log.Default()
	}
	return &Runner{
		Cache:  c,
		Keyer:  keyer,
		Logger: logger,
	}
}

// Result contains the outputs of a layout run.
type Result struct {
	// Layout holds the computed coordinates.
	Layout graphio.Layout

	// GraphHash is the content hash of the input graph.
	GraphHash string

	// Duration is the time spent computing (zero on a cache hit).
	Duration time.Duration

	// CacheHit reports whether the layout came from cache.
	CacheHit bool
}

// Layout computes coordinates for g with caching.
//
// The cache key combines the content hash of the graph with the layout
// settings from its config, so graphs that differ only in spacing or
// ranker are cached separately. On a hit the graph itself is left
// untouched and the cached layout is returned.
func (r *Runner) Layout(ctx context.Context, g *graph.Graph) (*Result, error) {
	graphData, err := graphio.MarshalGraph(g)
	if err != nil {
		return nil, err
	}
	graphHash := cache.Hash(graphData)

	cfg := g.Config()
	cacheKey := r.Keyer.LayoutKey(graphHash, cache.LayoutKeyOpts{
		Ranker:  cfg.Ranker,
		Align:   cfg.Align,
		NodeSep: cfg.NodeSep,
		EdgeSep: cfg.EdgeSep,
		RankSep: cfg.RankSep,
	})

	if data, hit, err := r.Cache.Get(ctx, cacheKey); err == nil && hit {
		cached, err := graphio.UnmarshalLayout(data)
		if err == nil {
			observability.Cache().OnCacheHit(ctx, "layout")
			r.Logger.Debug("layout cache hit", "hash", graphHash[:12])
			return &Result{Layout: cached, GraphHash: graphHash, CacheHit: true}, nil
		}
		// Corrupt entry, fall through to recompute
	}
	observability.Cache().OnCacheMiss(ctx, "layout")

	start := time.Now()
	Apply(ctx, g)
	result := &Result{
		Layout:    graphio.ExportLayout(g),
		GraphHash: graphHash,
		Duration:  time.Since(start),
	}

	r.Logger.Info("computed layout",
		"nodes", g.NodeCount(),
		"edges", g.EdgeCount(),
		"duration", result.Duration)

	if data, err := graphio.MarshalLayout(result.Layout); err == nil {
		if err := r.Cache.Set(ctx, cacheKey, data, cache.TTLLayout); err == nil {
			observability.Cache().OnCacheSet(ctx, "layout", len(data))
		}
	}

	return result, nil
}

// Close releases resources held by the runner (primarily the cache).
func (r *Runner) Close() error {
	if r.Cache != nil {
		return r.Cache.Close()
	}
	return nil
}
