// Package pkg provides the core libraries for holomap radial graphs.
//
// # Overview
//
// Holomap places a Star Wars character at the center of a radial graph, its
// films on an inner ring and the starships of each film fanned out on an
// outer ring. The pkg directory is organized into these areas:
//
//  1. [catalog] and [graph] - Data model (SWAPI entities in, positioned graph out)
//  2. [layout] - The radial layout generator
//  3. [integrations] - SWAPI access with caching, retries and rate limiting
//  4. [pipeline] - Orchestration (fetch → layout → render)
//  5. [render] and [server] - Output formats and the HTTP API
//  6. [cache], [config], [errors], [observability] - Infrastructure
//
// # Architecture
//
// The typical data flow through holomap:
//
//	SWAPI (people, films, starships)
//	         ↓
//	    [integrations/swapi] package (paginated, cached fetch)
//	         ↓
//	    [layout] package (film ring + starship fans)
//	         ↓
//	    [render] package (json, yaml, dot, svg)
//
// # Quick Start
//
// Generate a graph from data already in memory:
//
//	import (
//	    "github.com/matzehuels/holomap/pkg/catalog"
//	    "github.com/matzehuels/holomap/pkg/layout"
//	)
//
//	g := layout.Generate(
//	    catalog.Character{ID: 1, Name: "Luke Skywalker", Films: []int{1}},
//	    []catalog.Film{{ID: 1, Title: "A New Hope"}},
//	    []catalog.Starship{{ID: 12, Name: "X-wing", Films: []int{1}}},
//	)
//
// Or run the whole pipeline against SWAPI:
//
//	client := swapi.NewClient(cache.NewNullCache(), 0)
//	runner := pipeline.NewRunner(client, nil, nil, nil)
//	result, err := runner.Execute(ctx, pipeline.Options{CharacterID: 1})
//
// [catalog]: github.com/matzehuels/holomap/pkg/catalog
// [graph]: github.com/matzehuels/holomap/pkg/graph
// [layout]: github.com/matzehuels/holomap/pkg/layout
// [integrations]: github.com/matzehuels/holomap/pkg/integrations
// [integrations/swapi]: github.com/matzehuels/holomap/pkg/integrations/swapi
// [pipeline]: github.com/matzehuels/holomap/pkg/pipeline
// [render]: github.com/matzehuels/holomap/pkg/render
// [server]: github.com/matzehuels/holomap/pkg/server
// [cache]: github.com/matzehuels/holomap/pkg/cache
// [config]: github.com/matzehuels/holomap/pkg/config
// [errors]: github.com/matzehuels/holomap/pkg/errors
// [observability]: github.com/matzehuels/holomap/pkg/observability
package pkg
