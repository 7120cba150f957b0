package cache

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"strconv"
	"time"
)

// Cache stores opaque byte values by key.
type Cache interface {
	// Get returns the value stored under key. A miss is reported as
	// ok=false with a nil error.
	Get(ctx context.Context, key string) (data []byte, ok bool, err error)

	// Set stores data under key for ttl. A zero ttl never expires.
	Set(ctx context.Context, key string, data []byte, ttl time.Duration) error

	// Delete removes key. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error

	// Close releases the backend's resources.
	Close() error
}

// Clearer is implemented by caches that can drop every entry they own.
type Clearer interface {
	// Clear removes all entries and reports how many were removed.
	Clear(ctx context.Context) (int, error)
}

// NullCache is the backend behind --no-cache and backend = "none". Every
// lookup misses and writes are dropped, so the pipeline always refetches.
// It does not implement [Clearer].
type NullCache struct{}

// NewNullCache returns a cache that stores nothing.
func NewNullCache() Cache { return NullCache{} }

func (NullCache) Get(context.Context, string) ([]byte, bool, error) { return nil, false, nil }
func (NullCache) Set(context.Context, string, []byte, time.Duration) error { return nil }
func (NullCache) Delete(context.Context, string) error { return nil }
func (NullCache) Close() error { return nil }

// Keyer generates cache keys.
type Keyer interface {
	// HTTPKey returns the key of a raw provider response.
	HTTPKey(namespace, key string) string
	// GraphKey returns the key of a generated character graph. opts holds
	// every input that changes the layout and is hashed into the key.
	GraphKey(characterID int, opts any) string
	// ArtifactKey returns the key of a graph rendered to format.
	ArtifactKey(graphHash, format string) string
}

// DefaultKeyer implements Keyer with readable prefixes.
type DefaultKeyer struct{}

// NewDefaultKeyer returns the default keyer.
func NewDefaultKeyer() Keyer {
	return DefaultKeyer{}
}

// HTTPKey returns "http:{namespace}:{key}".
func (DefaultKeyer) HTTPKey(namespace, key string) string {
	return "http:" + namespace + ":" + key
}

// GraphKey returns "graph:{id}:{hash(opts)}".
func (DefaultKeyer) GraphKey(characterID int, opts any) string {
	return hashKey("graph:"+strconv.Itoa(characterID), opts)
}

// ArtifactKey returns "artifact:{graphHash}:{format}".
func (DefaultKeyer) ArtifactKey(graphHash, format string) string {
	return "artifact:" + graphHash + ":" + format
}

// ScopedKeyer prefixes every key of an inner Keyer. The CLI scopes keys to
// the SWAPI base URL so a mirror never reads entries fetched from another.
type ScopedKeyer struct {
	inner  Keyer
	prefix string
}

// NewScopedKeyer prefixes the keys of inner, or of the default keyer when
// inner is nil.
func NewScopedKeyer(inner Keyer, prefix string) Keyer {
	if inner == nil {
		inner = NewDefaultKeyer()
	}
	return &ScopedKeyer{inner: inner, prefix: prefix}
}

// SourceScope returns the prefix used for entries fetched from source. It is
// short and stable, and never contains the URL itself.
func SourceScope(source string) string {
	return "src:" + Hash([]byte(source))[:12] + ":"
}

func (k *ScopedKeyer) HTTPKey(namespace, key string) string {
	return k.prefix + k.inner.HTTPKey(namespace, key)
}

func (k *ScopedKeyer) GraphKey(characterID int, opts any) string {
	return k.prefix + k.inner.GraphKey(characterID, opts)
}

func (k *ScopedKeyer) ArtifactKey(graphHash, format string) string {
	return k.prefix + k.inner.ArtifactKey(graphHash, format)
}

// Hash returns the hex SHA-256 digest of data. Graph hashes and file cache
// paths are both derived from it.
func Hash(data []byte) string {
	sum := sha256.Sum256(data)
	return hex.EncodeToString(sum[:])
}

// hashKey appends the digest of the JSON form of opts to prefix. Layout
// options are plain structs, so marshalling cannot fail in practice.
func hashKey(prefix string, opts any) string {
	data, _ := json.Marshal(opts)
	return prefix + ":" + Hash(data)
}
