package swapi

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/matzehuels/holomap/pkg/cache"
	"github.com/matzehuels/holomap/pkg/catalog"
	"github.com/matzehuels/holomap/pkg/integrations"
)

// Defaults for the public deployment.
const (
	DefaultBaseURL  = "https://sw-api.starnavi.io"
	DefaultMaxPages = 100
)

// ErrTooManyPages is returned when a collection does not end within the
// page limit.
var ErrTooManyPages = errors.New("too many pages")

// Client provides access to the Star Wars API.
// It handles HTTP requests with caching, rate limiting and automatic retries.
//
// All methods are safe for concurrent use by multiple goroutines.
type Client struct {
	*integrations.Client
	baseURL  string
	maxPages int
}

type settings struct {
	baseURL  string
	maxPages int
	http     []integrations.ClientOption
}

// Option configures a Client.
type Option func(*settings)

// WithBaseURL points the client at another SWAPI deployment.
func WithBaseURL(url string) Option {
	return func(s *settings) { s.baseURL = url }
}

// WithMaxPages bounds how many pages a collection fetch may walk.
func WithMaxPages(n int) Option {
	return func(s *settings) { s.maxPages = n }
}

// WithHTTPOptions passes options to the shared HTTP client.
func WithHTTPOptions(opts ...integrations.ClientOption) Option {
	return func(s *settings) { s.http = append(s.http, opts...) }
}

// NewClient creates a SWAPI client with the given cache backend.
//
// Parameters:
//   - backend: Cache backend for HTTP response caching (nil disables caching)
//   - cacheTTL: How long responses are cached (typical: 1-24 hours)
func NewClient(backend cache.Cache, cacheTTL time.Duration, opts ...Option) *Client {
	s := settings{baseURL: DefaultBaseURL, maxPages: DefaultMaxPages}
	for _, opt := range opts {
		opt(&s)
	}
	if s.maxPages < 1 {
		s.maxPages = DefaultMaxPages
	}
	headers := map[string]string{
		"User-Agent": "holomap/1.0 (https://github.com/matzehuels/holomap)",
	}
	return &Client{
		Client:   integrations.NewClient(backend, "swapi", cacheTTL, headers, s.http...),
		baseURL:  s.baseURL,
		maxPages: s.maxPages,
	}
}

// BaseURL returns the deployment the client talks to.
func (c *Client) BaseURL() string { return c.baseURL }

// Character retrieves one character by id.
//
// Returns:
//   - the character on success
//   - [integrations.ErrNotFound] if no character has that id
//   - [integrations.ErrNetwork] for HTTP failures (timeout, 5xx, etc.)
func (c *Client) Character(ctx context.Context, id int, refresh bool) (catalog.Character, error) {
	var ch catalog.Character
	err := c.Cached(ctx, "people/"+strconv.Itoa(id), refresh, &ch, func() error {
		err := c.Get(ctx, fmt.Sprintf("%s/people/%d/", c.baseURL, id), &ch)
		if errors.Is(err, integrations.ErrNotFound) {
			return fmt.Errorf("%w: character %d", err, id)
		}
		return err
	})
	if err != nil {
		return catalog.Character{}, err
	}
	return ch, nil
}

// Characters retrieves one page of the character collection. Pages start
// at 1.
func (c *Client) Characters(ctx context.Context, page int, refresh bool) (catalog.Page[catalog.Character], error) {
	var p catalog.Page[catalog.Character]
	err := c.Cached(ctx, "people?page="+strconv.Itoa(page), refresh, &p, func() error {
		return c.getPage(ctx, "people", page, &p)
	})
	if err != nil {
		return catalog.Page[catalog.Character]{}, err
	}
	return p, nil
}

// Films retrieves the complete film catalog.
func (c *Client) Films(ctx context.Context, refresh bool) ([]catalog.Film, error) {
	var films []catalog.Film
	err := c.Cached(ctx, "films", refresh, &films, func() error {
		var err error
		films, err = collect[catalog.Film](ctx, c, "films")
		return err
	})
	return films, err
}

// Starships retrieves the complete starship catalog.
func (c *Client) Starships(ctx context.Context, refresh bool) ([]catalog.Starship, error) {
	var ships []catalog.Starship
	err := c.Cached(ctx, "starships", refresh, &ships, func() error {
		var err error
		ships, err = collect[catalog.Starship](ctx, c, "starships")
		return err
	})
	return ships, err
}

func (c *Client) getPage(ctx context.Context, resource string, page int, v any) error {
	url := fmt.Sprintf("%s/%s/?page=%d", c.baseURL, resource, page)
	if err := c.Get(ctx, url, v); err != nil {
		return fmt.Errorf("%s page %d: %w", resource, page, err)
	}
	return nil
}

// collect walks a paginated collection from page 1 until the last page.
func collect[T any](ctx context.Context, c *Client, resource string) ([]T, error) {
	var all []T
	for page := 1; page <= c.maxPages; page++ {
		var p catalog.Page[T]
		if err := c.getPage(ctx, resource, page, &p); err != nil {
			return nil, err
		}
		all = append(all, p.Results...)
		if !p.HasNext() {
			if all == nil {
				all = []T{}
			}
			return all, nil
		}
	}
	return nil, fmt.Errorf("%w: %s exceeds %d pages", ErrTooManyPages, resource, c.maxPages)
}
