// Package graph provides the positioned node-link format produced by the
// layout generator.
//
// This package defines the canonical wire format for holomap diagrams, used
// for JSON and YAML files, API responses, and every renderer.
//
// # Core Types
//
//   - [Graph]: nodes plus edges
//   - [Node]: a positioned character, film or starship with its card payload
//   - [Edge]: a directed character-film or film-starship relationship
//
// # Identifiers
//
// Ids are pure functions of SWAPI ids, never of memory addresses:
//
//	graph.CharacterID(1, "")          // "character-1"
//	graph.FilmID(4)                   // "film-4"
//	graph.ScopedStarshipID(4, 10)     // "film-4-starship-10"
//	graph.EdgeID("film-4", graph.EdgeFilmStarship, "film-4-starship-10")
//
// # Serialization
//
//	{
//	  "nodes": [{"id": "film-4", "type": "film", "position": {"x": 400, "y": -50}, "data": {...}}],
//	  "edges": [{"id": "...", "source": "character-1", "target": "film-4", "type": "character-film"}]
//	}
//
// Common operations:
//
//	data, _ := graph.MarshalGraph(g)         // Graph → []byte
//	parsed, _ := graph.UnmarshalGraph(data)  // []byte → Graph
//	graph.WriteGraphFile(g, "luke.json")     // Graph → File
//
// # Concurrency
//
// Graph values are not safe for concurrent mutation. Readers may share a
// graph freely.
package graph
