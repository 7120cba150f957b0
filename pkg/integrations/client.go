package integrations

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"golang.org/x/time/rate"

	"github.com/matzehuels/holomap/pkg/cache"
	"github.com/matzehuels/holomap/pkg/httputil"
	"github.com/matzehuels/holomap/pkg/observability"
)

// Client provides shared HTTP functionality for data provider clients.
// It handles caching, retry logic, rate limiting and common request headers.
type Client struct {
	http       *http.Client
	cache      cache.Cache
	keyer      cache.Keyer
	namespace  string
	ttl        time.Duration
	headers    map[string]string
	limiter    *rate.Limiter
	retries    int
	retryDelay time.Duration
}

// ClientOption configures a Client.
type ClientOption func(*Client)

// WithHTTPClient sets a custom HTTP client.
func WithHTTPClient(hc *http.Client) ClientOption {
	return func(c *Client) { c.http = hc }
}

// WithRateLimit caps outgoing requests per second. Zero or less disables
// limiting.
func WithRateLimit(rps float64) ClientOption {
	return func(c *Client) {
		if rps <= 0 {
			c.limiter = nil
			return
		}
		c.limiter = rate.NewLimiter(rate.Limit(rps), 1)
	}
}

// WithRetry sets the number of attempts and the initial backoff delay.
func WithRetry(attempts int, delay time.Duration) ClientOption {
	return func(c *Client) {
		c.retries = attempts
		c.retryDelay = delay
	}
}

// WithKeyer sets the keyer used to build cache keys. The CLI passes a
// [cache.ScopedKeyer] so entries from different base URLs never mix.
func WithKeyer(k cache.Keyer) ClientOption {
	return func(c *Client) { c.keyer = k }
}

// NewClient creates a Client with the given cache and default headers.
// Cached values live for ttl under keys prefixed with namespace.
// Headers are applied to all requests made through this client.
// Pass nil for headers if no default headers are needed, and nil for c
// to disable caching.
func NewClient(c cache.Cache, namespace string, ttl time.Duration, headers map[string]string, opts ...ClientOption) *Client {
	if c == nil {
		c = cache.NewNullCache()
	}
	client := &Client{
		http:       NewHTTPClient(DefaultTimeout),
		cache:      c,
		keyer:      cache.NewDefaultKeyer(),
		namespace:  namespace,
		ttl:        ttl,
		headers:    headers,
		limiter:    rate.NewLimiter(rate.Limit(DefaultRateLimit), 1),
		retries:    DefaultRetries,
		retryDelay: DefaultRetryDelay,
	}
	for _, opt := range opts {
		opt(client)
	}
	return client
}

// Cached retrieves a value from cache or executes fetch and caches the result.
// If refresh is true, the cache is bypassed and fetch is always called.
// The fetch function should populate v; on success, v is stored in the cache.
func (c *Client) Cached(ctx context.Context, key string, refresh bool, v any, fetch func() error) error {
	key = c.keyer.HTTPKey(c.namespace, key)
	hooks := observability.Cache()

	if !refresh {
		data, ok, err := c.cache.Get(ctx, key)
		if err == nil && ok && json.Unmarshal(data, v) == nil {
			hooks.OnCacheHit(ctx, "http")
			return nil
		}
		hooks.OnCacheMiss(ctx, "http")
	}

	if err := httputil.Retry(ctx, c.retries, c.retryDelay, fetch); err != nil {
		return err
	}

	if data, err := json.Marshal(v); err == nil {
		if c.cache.Set(ctx, key, data, c.ttl) == nil {
			hooks.OnCacheSet(ctx, "http", len(data))
		}
	}
	return nil
}

// Get performs an HTTP GET request and JSON-decodes the response into v.
// It uses the client's default headers. Retries are left to [Client.Cached].
func (c *Client) Get(ctx context.Context, url string, v any) error {
	return c.GetWithHeaders(ctx, url, nil, v)
}

// GetWithHeaders performs an HTTP GET with additional headers merged with defaults.
// Request-specific headers override client defaults for the same key.
func (c *Client) GetWithHeaders(ctx context.Context, url string, headers map[string]string, v any) error {
	body, err := c.doRequest(ctx, url, headers)
	if err != nil {
		return err
	}
	defer body.Close()
	if err := json.NewDecoder(body).Decode(v); err != nil {
		return fmt.Errorf("decode %s: %w", url, err)
	}
	return nil
}

func (c *Client) doRequest(ctx context.Context, url string, headers map[string]string) (io.ReadCloser, error) {
	if c.limiter != nil {
		if err := c.limiter.Wait(ctx); err != nil {
			return nil, err
		}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "application/json")
	for k, v := range c.headers {
		req.Header.Set(k, v)
	}
	for k, v := range headers {
		req.Header.Set(k, v)
	}

	hooks := observability.HTTP()
	host, path := splitURL(url)
	hooks.OnRequest(ctx, http.MethodGet, host, path)
	start := time.Now()

	resp, err := c.http.Do(req)
	if err != nil {
		hooks.OnError(ctx, http.MethodGet, host, path, err)
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
		return nil, &httputil.RetryableError{Err: fmt.Errorf("%w: %v", ErrNetwork, err)}
	}
	hooks.OnResponse(ctx, http.MethodGet, host, path, resp.StatusCode, time.Since(start))

	if err := checkStatus(resp.StatusCode); err != nil {
		resp.Body.Close()
		var re *httputil.RetryableError
		if resp.StatusCode == http.StatusTooManyRequests && errors.As(err, &re) {
			re.After = httputil.ParseRetryAfter(resp.Header.Get("Retry-After"))
		}
		return nil, err
	}
	return resp.Body, nil
}

func checkStatus(code int) error {
	switch {
	case code == http.StatusOK:
		return nil
	case code == http.StatusNotFound:
		return ErrNotFound
	case code == http.StatusTooManyRequests:
		return &httputil.RetryableError{Err: fmt.Errorf("%w: status %d", ErrRateLimited, code)}
	case code >= 500:
		return &httputil.RetryableError{Err: fmt.Errorf("%w: status %d", ErrNetwork, code)}
	default:
		return fmt.Errorf("%w: status %d", ErrNetwork, code)
	}
}
