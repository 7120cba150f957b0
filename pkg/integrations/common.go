package integrations

import (
	"errors"
	"net/http"
	"net/url"
	"time"
)

// Defaults for provider clients.
const (
	DefaultTimeout    = 10 * time.Second
	DefaultRetries    = 3
	DefaultRetryDelay = time.Second
	DefaultRateLimit  = 10.0 // requests per second
)

var (
	// ErrNotFound is returned when a resource doesn't exist at the provider.
	ErrNotFound = errors.New("resource not found")

	// ErrNetwork is returned for HTTP failures (timeouts, connection errors, 5xx responses).
	ErrNetwork = errors.New("network error")

	// ErrRateLimited is returned when the provider answers 429.
	ErrRateLimited = errors.New("rate limited")
)

// NewHTTPClient creates an HTTP client with the given timeout.
// A zero timeout selects DefaultTimeout.
func NewHTTPClient(timeout time.Duration) *http.Client {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &http.Client{Timeout: timeout}
}

// splitURL returns the host and path of a request URL for hooks and logs.
func splitURL(raw string) (host, path string) {
	u, err := url.Parse(raw)
	if err != nil {
		return "", raw
	}
	return u.Host, u.Path
}
