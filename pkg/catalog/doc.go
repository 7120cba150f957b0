// Package catalog defines the SWAPI entities that feed the layout generator.
//
// # Overview
//
// A [Character] references the films it appears in by id; a [Starship]
// references its films the same way. The layout generator never resolves those
// references over the network: callers hand it a complete film and starship
// catalog, usually fetched by [swapi.Client].
//
// # Lookups
//
// [FilmIndex] and [IndexStarshipsByFilm] build read-only lookup tables over a
// catalog slice. Both preserve the order of the input slice so downstream
// consumers stay deterministic.
//
// # Concurrency
//
// All types are plain values. The index types are safe for concurrent reads
// once built.
//
// [swapi.Client]: github.com/matzehuels/holomap/pkg/integrations/swapi.Client
package catalog
