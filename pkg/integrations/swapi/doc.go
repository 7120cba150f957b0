// Package swapi provides an HTTP client for the Star Wars API.
//
// # Overview
//
// This package fetches characters, films and starships from a SWAPI
// deployment, by default https://sw-api.starnavi.io. Any mirror serving the
// same JSON shapes with integer ids works; select it with [WithBaseURL].
//
// # Usage
//
//	client := swapi.NewClient(c, 24*time.Hour)
//
//	luke, err := client.Character(ctx, 1, false)
//	films, err := client.Films(ctx, false)
//	ships, err := client.Starships(ctx, false)
//
// # Pagination
//
// Collection endpoints are paginated. [Client.Characters] returns a single
// page; [Client.Films] and [Client.Starships] walk pages 1, 2, ... until a
// page reports no next page, up to the page limit set with [WithMaxPages].
// A failed page fails the whole collection: callers never see a partial
// catalog.
//
// # Caching
//
// Single characters, character pages and complete collections are cached
// under the "swapi" namespace. Pass refresh=true to bypass the cache.
package swapi
