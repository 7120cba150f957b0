// Package integrations provides HTTP clients for the data providers holomap
// reads characters, films and starships from.
//
// # Overview
//
// Each provider has its own subpackage:
//
//   - [swapi]: the Star Wars API (sw-api.starnavi.io and compatible mirrors)
//
// # Client Pattern
//
// Provider clients follow a consistent pattern:
//
//	client := swapi.NewClient(c, 24*time.Hour)
//	ch, err := client.Character(ctx, 1, false)  // false = use cache
//
// Clients handle:
//   - HTTP requests with retry and rate limiting
//   - Response caching through [cache.Cache] with a configurable TTL
//   - Pagination of collection endpoints
//
// # Shared Infrastructure
//
// The [Client] type provides the shared HTTP functionality: default headers,
// a token bucket rate limiter, retry of transient failures via
// [httputil.Retry] and JSON response caching. Requests report to the
// [observability] HTTP and cache hooks.
//
// [swapi]: github.com/matzehuels/holomap/pkg/integrations/swapi
// [cache.Cache]: github.com/matzehuels/holomap/pkg/cache.Cache
// [httputil.Retry]: github.com/matzehuels/holomap/pkg/httputil.Retry
// [observability]: github.com/matzehuels/holomap/pkg/observability
package integrations
