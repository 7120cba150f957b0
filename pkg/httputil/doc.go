// Package httputil provides HTTP utilities for the data provider clients.
//
// # Retry
//
// [Retry] wraps a request with automatic retry for transient failures:
//
//   - Network errors
//   - 5xx server errors
//
// Only errors wrapped in [RetryableError] are retried. Anything else,
// including 404 responses, is returned after the first attempt:
//
//	err := httputil.Retry(ctx, 3, time.Second, func() error {
//	    resp, err := http.Get(url)
//	    if err != nil {
//	        return &httputil.RetryableError{Err: err}
//	    }
//	    ...
//	})
//
// The delay doubles after each failed attempt. Cancelling ctx aborts the
// wait and returns ctx.Err().
//
// # Rate limits
//
// SWAPI answers 429 when a client is too eager. The provider client fills
// [RetryableError].After from the Retry-After header via [ParseRetryAfter],
// and [Retry] waits at least that long, capped at [MaxRetryAfter].
// Response caching lives in package cache.
package httputil
