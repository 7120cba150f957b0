// Package pipeline provides the fetch → layout → render pipeline for holomap.
//
// This package implements the complete pipeline used by both the CLI and the
// HTTP server. By centralizing this logic, both entry points treat missing
// data, caching and errors the same way.
//
// # Architecture
//
// The pipeline consists of three stages:
//
//  1. Fetch: Load the character and the film and starship catalogs from a
//     [Provider]. The three requests run concurrently.
//  2. Layout: Place the character, its films and their starships with
//     [layout.Generate].
//  3. Render: Encode the graph in each requested format (json, yaml, dot, svg).
//
// # Missing Data
//
// A character that cannot be fetched fails the run. A film or starship
// catalog that cannot be fetched is replaced by an empty catalog and
// reported in [Result.Warnings]; the layout then shows placeholder films and
// no starships.
//
// # Usage
//
//	runner := pipeline.NewRunner(swapiClient, cache, nil, logger)
//	result, err := runner.Execute(ctx, pipeline.Options{
//	    CharacterID: 1,
//	    Formats:     []string{"json", "svg"},
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	svg := result.Artifacts["svg"]
//
// [layout.Generate]: github.com/matzehuels/holomap/pkg/layout.Generate
package pipeline

import (
	"time"

	herrors "github.com/matzehuels/holomap/pkg/errors"
	"github.com/matzehuels/holomap/pkg/graph"
	"github.com/matzehuels/holomap/pkg/layout"
	"github.com/matzehuels/holomap/pkg/render"
)

// DefaultFormats is used when Options.Formats is empty.
var DefaultFormats = []string{render.FormatJSON}

// =============================================================================
// Options - Pipeline Configuration
// =============================================================================

// Options contains all configuration for one pipeline run.
// This struct supports JSON serialization for API requests.
type Options struct {
	// Fetch options
	CharacterID int  `json:"character_id"`
	Refresh     bool `json:"refresh,omitempty"`

	// Layout options. A zero value selects layout.DefaultConfig.
	Layout layout.Config `json:"layout"`

	// Render options
	Formats  []string `json:"formats,omitempty"`
	Detailed bool     `json:"detailed,omitempty"`
}

// ValidateAndSetDefaults fills unset fields and validates the result.
func (o *Options) ValidateAndSetDefaults() error {
	if err := herrors.ValidateCharacterID(o.CharacterID); err != nil {
		return err
	}
	if len(o.Formats) == 0 {
		o.Formats = DefaultFormats
	}
	if err := render.ValidateFormats(o.Formats); err != nil {
		return err
	}
	if o.Layout == (layout.Config{}) {
		o.Layout = layout.DefaultConfig()
	}
	if o.Layout.StarshipScope == "" {
		o.Layout.StarshipScope = layout.ScopePerFilm
	}
	if err := o.Layout.Validate(); err != nil {
		return herrors.Wrap(herrors.ErrCodeInvalidConfig, err, "invalid layout")
	}
	return nil
}

// =============================================================================
// Result
// =============================================================================

// Result holds everything a pipeline run produced.
type Result struct {
	Graph     graph.Graph
	GraphHash string
	Artifacts map[string][]byte
	Warnings  []string
	Stats     Stats
	CacheInfo CacheInfo
}

// Stats describes one run.
type Stats struct {
	FetchTime    time.Duration
	LayoutTime   time.Duration
	RenderTime   time.Duration
	Films        int // films in the catalog
	Starships    int // starships in the catalog
	NodeCount    int
	EdgeCount    int
	Placeholders int
}

// CacheInfo reports which stages were served from the cache.
type CacheInfo struct {
	GraphHit  bool // fetch and layout were skipped
	RenderHit bool // every requested artifact came from the cache
}
