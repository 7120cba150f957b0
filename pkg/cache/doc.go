// Package cache provides the byte-level cache shared by the data provider
// client and the rendering pipeline.
//
// # Backends
//
//   - [FileCache]: one JSON file per entry under ~/.cache/holomap/ (CLI default)
//   - [RedisCache]: Redis for server deployments running several instances
//   - [NullCache]: caches nothing, used for --no-cache and backend "none"
//
// All backends implement [Cache]. Entries carry a TTL; a TTL of zero means
// the entry never expires. Backends that can enumerate their entries also
// implement [Clearer].
//
// # Keys
//
// A [Keyer] builds keys for the three kinds of cached data: raw provider
// responses, generated graphs and rendered artifacts. Wrap a keyer with
// [NewScopedKeyer] and [SourceScope] to keep two data sources from sharing
// entries.
package cache
