package pipeline

import (
	"context"
	"fmt"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/holomap/pkg/cache"
	"github.com/matzehuels/holomap/pkg/graph"
	"github.com/matzehuels/holomap/pkg/layout"
	"github.com/matzehuels/holomap/pkg/observability"
	"github.com/matzehuels/holomap/pkg/render"
)

// Cache lifetimes for pipeline stages.
const (
	TTLGraph    = 24 * time.Hour
	TTLArtifact = 7 * 24 * time.Hour
)

// Runner encapsulates pipeline execution with caching.
// Both CLI and API use this to avoid duplicating fetch and caching logic.
//
// The Runner is stateless except for its provider, cache and logger. Multiple
// goroutines can safely use the same Runner with different options.
type Runner struct {
	Provider Provider
	Cache    cache.Cache
	Keyer    cache.Keyer
	Logger   *log.Logger
}

// NewRunner creates a runner that reads from p.
// If keyer is nil, a DefaultKeyer is used.
// If cache is nil, a NullCache is used (caching disabled).
func NewRunner(p Provider, c cache.Cache, keyer cache.Keyer, logger *log.Logger) *Runner {
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
		Provider: p,
		Cache:    c,
		Keyer:    keyer,
		Logger:   logger,
	}
}

// Execute runs the complete fetch → layout → render pipeline with caching.
func (r *Runner) Execute(ctx context.Context, opts Options) (*Result, error) {
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return nil, err
	}

	result := &Result{}

	// Stages 1 and 2: Fetch + Layout
	g, hit, err := r.GraphWithCacheInfo(ctx, opts, result)
	if err != nil {
		return nil, err
	}
	result.Graph = g
	result.CacheInfo.GraphHit = hit
	result.Stats.NodeCount = len(g.Nodes)
	result.Stats.EdgeCount = len(g.Edges)
	result.Stats.Placeholders = len(g.Placeholders())

	data, err := graph.MarshalGraph(g)
	if err != nil {
		return nil, fmt.Errorf("serialize graph: %w", err)
	}
	result.GraphHash = cache.Hash(data)

	// Stage 3: Render
	renderStart := time.Now()
	artifacts, renderHit, err := r.RenderWithCacheInfo(ctx, g, result.GraphHash, opts)
	if err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}
	result.Artifacts = artifacts
	result.Stats.RenderTime = time.Since(renderStart)
	result.CacheInfo.RenderHit = renderHit

	r.Logger.Info("rendered outputs",
		"formats", opts.Formats,
		"cached", renderHit,
		"duration", result.Stats.RenderTime)

	return result, nil
}

// GraphWithCacheInfo returns the laid-out graph for opts and whether it came
// from the cache. Fetch and layout statistics are recorded on res when it is
// not nil. Graphs built from a degraded catalog are not cached.
func (r *Runner) GraphWithCacheInfo(ctx context.Context, opts Options, res *Result) (graph.Graph, bool, error) {
	if res == nil {
		res = &Result{}
	}
	cacheKey := r.Keyer.GraphKey(opts.CharacterID, opts.Layout)

	if !opts.Refresh {
		if data, hit, err := r.Cache.Get(ctx, cacheKey); err == nil && hit {
			if g, err := graph.UnmarshalGraph(data); err == nil {
				r.Logger.Debug("graph cache hit", "character", opts.CharacterID)
				return g, true, nil
			}
		}
	}

	hooks := observability.Pipeline()

	// Stage 1: Fetch
	fetchStart := time.Now()
	hooks.OnFetchStart(ctx, opts.CharacterID)
	in, err := Fetch(ctx, r.Provider, opts.CharacterID, opts.Refresh)
	res.Stats.FetchTime = time.Since(fetchStart)
	hooks.OnFetchComplete(ctx, opts.CharacterID, res.Stats.FetchTime, err)
	if err != nil {
		return graph.Graph{}, false, err
	}
	for _, w := range in.Warnings {
		r.Logger.Warn(w, "character", opts.CharacterID)
	}
	res.Warnings = append(res.Warnings, in.Warnings...)
	res.Stats.Films = len(in.Films)
	res.Stats.Starships = len(in.Starships)

	r.Logger.Info("fetched character",
		"name", in.Character.Name,
		"films", len(in.Character.Films),
		"catalog_films", len(in.Films),
		"catalog_starships", len(in.Starships),
		"duration", res.Stats.FetchTime)

	// Stage 2: Layout
	layoutStart := time.Now()
	hooks.OnLayoutStart(ctx, opts.CharacterID, len(in.Character.Films))
	g := layout.Generate(in.Character, in.Films, in.Starships, layout.WithConfig(opts.Layout))
	res.Stats.LayoutTime = time.Since(layoutStart)
	placeholders := g.Placeholders()
	hooks.OnLayoutComplete(ctx, len(g.Nodes), len(g.Edges), len(placeholders), res.Stats.LayoutTime)

	for _, n := range placeholders {
		r.Logger.Warn("placeholder node", "id", n.ID, "label", n.Data.Label)
	}
	r.Logger.Info("computed layout",
		"nodes", len(g.Nodes),
		"edges", len(g.Edges),
		"duration", res.Stats.LayoutTime)

	if len(in.Warnings) == 0 {
		if data, err := graph.MarshalGraph(g); err == nil {
			_ = r.Cache.Set(ctx, cacheKey, data, TTLGraph)
		}
	}
	return g, false, nil
}

// Graph is a convenience wrapper that calls GraphWithCacheInfo and discards
// the cache hit info.
func (r *Runner) Graph(ctx context.Context, opts Options) (graph.Graph, error) {
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return graph.Graph{}, err
	}
	g, _, err := r.GraphWithCacheInfo(ctx, opts, nil)
	return g, err
}

// RenderWithCacheInfo generates artifacts with caching and returns cache hit info.
// Artifacts are keyed by the graph hash, so identical graphs share artifacts
// across characters and layout settings.
func (r *Runner) RenderWithCacheInfo(ctx context.Context, g graph.Graph, graphHash string, opts Options) (map[string][]byte, bool, error) {
	if err := render.ValidateFormats(opts.Formats); err != nil {
		return nil, false, err
	}
	if opts.Detailed {
		graphHash += "-detailed"
	}

	artifacts := make(map[string][]byte, len(opts.Formats))
	allCached := true
	for _, format := range opts.Formats {
		data, hit, err := r.Cache.Get(ctx, r.Keyer.ArtifactKey(graphHash, format))
		if err != nil || !hit {
			allCached = false
			break
		}
		artifacts[format] = data
	}
	if allCached {
		return artifacts, true, nil
	}

	rendered, err := render.RenderAll(ctx, g, opts.Formats, render.Options{Detailed: opts.Detailed})
	if err != nil {
		return nil, false, err
	}
	for format, data := range rendered {
		_ = r.Cache.Set(ctx, r.Keyer.ArtifactKey(graphHash, format), data, TTLArtifact)
	}
	return rendered, false, nil
}

// Characters returns one page of the character collection.
func (r *Runner) Characters(ctx context.Context, page int, refresh bool) ([]CharacterSummary, bool, error) {
	res, err := Characters(ctx, r.Provider, page, refresh)
	if err != nil {
		return nil, false, err
	}
	out := make([]CharacterSummary, 0, len(res.Results))
	for _, c := range res.Results {
		out = append(out, CharacterSummary{ID: c.ID, Name: c.Name, Films: len(c.Films)})
	}
	return out, res.HasNext(), nil
}

// CharacterSummary is one row of a character listing.
type CharacterSummary struct {
	ID    int    `json:"id"`
	Name  string `json:"name"`
	Films int    `json:"films"`
}

// Close releases resources held by the runner (primarily the cache).
func (r *Runner) Close() error {
	if r.Cache != nil {
		return r.Cache.Close()
	}
	return nil
}
