// Package layout computes the radial character graph.
//
// # Overview
//
// [Generate] takes one character, the film catalog and the starship catalog
// and returns a fully positioned [graph.Graph]:
//
//   - the character sits at the center C
//   - films sit on a ring of radius FilmRadius, the first one straight above C
//     and the rest evenly spaced clockwise around the full circle
//   - each film's starships fan out on a ring of radius StarshipRadius,
//     spread over an arc of width Arc centered on the film's angle
//
// Film i of n sits at angle
//
//	θ_i = 2π·i/n − π/2
//
// and starship j of the m ships featured in that film at
//
//	φ_j = θ_i − Arc/2 + Arc·j/max(m−1, 1)
//
// except that a lone starship sits exactly at θ_i.
//
// # Dangling References
//
// A film id missing from the catalog still produces a film node, labelled
// "Film {id}" and flagged as a placeholder. A starship with no name is
// labelled "Starship {id}". Generation never fails.
//
// # Starship Scope
//
// By default ([ScopePerFilm]) a starship featured in two of the character's
// films is drawn twice, once next to each film. [ScopeGlobal] draws it once,
// next to the first film that features it, with an edge from every film.
//
// # Determinism
//
// Output depends only on input values: node and edge ids are derived from
// SWAPI ids (see [graph.FilmID] and friends), and iteration follows input
// order. Two calls with equal inputs marshal to identical bytes.
//
// # Concurrency
//
// Generate keeps no state and never mutates its inputs, so it is safe to call
// from many goroutines at once.
package layout
