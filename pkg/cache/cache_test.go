package cache

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func TestNullCache(t *testing.T) {
	ctx := context.Background()
	c := NewNullCache()
	defer c.Close()

	// Get always returns miss
	data, hit, err := c.Get(ctx, "key")
	if err != nil {
		t.Fatalf("Get error: %v", err)
	}
	if hit {
		t.Error("NullCache.Get should always return miss")
	}
	if data != nil {
		t.Error("NullCache.Get should return nil data")
	}

	// Set does nothing (no error)
	if err := c.Set(ctx, "key", []byte("value"), time.Hour); err != nil {
		t.Errorf("Set error: %v", err)
	}

	// Still a miss after Set
	_, hit, _ = c.Get(ctx, "key")
	if hit {
		t.Error("NullCache should not store data")
	}

	// Delete does nothing (no error)
	if err := c.Delete(ctx, "key"); err != nil {
		t.Errorf("Delete error: %v", err)
	}

	// "cache clear" reports a disabled cache instead of clearing zero entries
	if _, ok := c.(Clearer); ok {
		t.Error("NullCache should not implement Clearer")
	}
}

func TestHash(t *testing.T) {
	// Test determinism
	h1 := Hash([]byte("hello"))
	h2 := Hash([]byte("hello"))
	if h1 != h2 {
		t.Error("Hash should be deterministic")
	}

	// Test different inputs produce different hashes
	h3 := Hash([]byte("world"))
	if h1 == h3 {
		t.Error("Different inputs should produce different hashes")
	}

	// Test hash length (SHA-256 produces 64 hex chars)
	if len(h1) != 64 {
		t.Errorf("Hash length should be 64, got %d", len(h1))
	}
}

func TestFileCache(t *testing.T) {
	ctx := context.Background()
	c, err := NewFileCache(t.TempDir())
	if err != nil {
		t.Fatalf("NewFileCache: %v", err)
	}
	defer c.Close()

	if _, hit, err := c.Get(ctx, "missing"); hit || err != nil {
		t.Fatalf("Get(missing) = hit %v, err %v", hit, err)
	}

	if err := c.Set(ctx, "people/1", []byte(`{"name":"Luke"}`), time.Hour); err != nil {
		t.Fatalf("Set: %v", err)
	}
	data, hit, err := c.Get(ctx, "people/1")
	if err != nil || !hit {
		t.Fatalf("Get after Set = hit %v, err %v", hit, err)
	}
	if !bytes.Equal(data, []byte(`{"name":"Luke"}`)) {
		t.Errorf("Get data = %s", data)
	}

	if err := c.Delete(ctx, "people/1"); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if _, hit, _ := c.Get(ctx, "people/1"); hit {
		t.Error("entry should be gone after Delete")
	}
	if err := c.Delete(ctx, "people/1"); err != nil {
		t.Errorf("Delete of missing key should not fail: %v", err)
	}
}

func TestFileCacheExpiry(t *testing.T) {
	ctx := context.Background()
	c, _ := NewFileCache(t.TempDir())

	if err := c.Set(ctx, "k", []byte("v"), time.Nanosecond); err != nil {
		t.Fatalf("Set: %v", err)
	}
	time.Sleep(5 * time.Millisecond)
	if _, hit, _ := c.Get(ctx, "k"); hit {
		t.Error("expired entry should miss")
	}

	// Zero TTL never expires
	if err := c.Set(ctx, "forever", []byte("v"), 0); err != nil {
		t.Fatalf("Set: %v", err)
	}
	if _, hit, _ := c.Get(ctx, "forever"); !hit {
		t.Error("zero TTL entry should hit")
	}
}

func TestFileCacheCorruptEntry(t *testing.T) {
	ctx := context.Background()
	c, _ := NewFileCache(t.TempDir())

	path := c.path("broken")
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte("not json"), 0644); err != nil {
		t.Fatal(err)
	}

	if _, hit, err := c.Get(ctx, "broken"); hit || err != nil {
		t.Errorf("corrupt entry = hit %v, err %v; want miss", hit, err)
	}
	if _, err := os.Stat(path); !os.IsNotExist(err) {
		t.Error("corrupt entry should be removed")
	}
}

func TestFileCacheClear(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()
	c, _ := NewFileCache(dir)

	for _, k := range []string{"a", "b", "c"} {
		if err := c.Set(ctx, k, []byte(k), time.Hour); err != nil {
			t.Fatalf("Set(%s): %v", k, err)
		}
	}

	n, err := c.Clear(ctx)
	if err != nil {
		t.Fatalf("Clear: %v", err)
	}
	if n != 3 {
		t.Errorf("Clear removed %d entries, want 3", n)
	}
	if _, hit, _ := c.Get(ctx, "a"); hit {
		t.Error("entry should be gone after Clear")
	}
	if c.Dir() != dir {
		t.Errorf("Dir() = %s, want %s", c.Dir(), dir)
	}

	// Clearing an empty cache is fine
	if n, err := c.Clear(ctx); n != 0 || err != nil {
		t.Errorf("second Clear = %d, %v", n, err)
	}
}

func TestDefaultKeyer(t *testing.T) {
	k := NewDefaultKeyer()

	if got := k.HTTPKey("swapi", "people/1"); got != "http:swapi:people/1" {
		t.Errorf("HTTPKey unexpected: %s", got)
	}

	type opts struct{ Radius float64 }
	gk1 := k.GraphKey(1, opts{Radius: 350})
	gk2 := k.GraphKey(1, opts{Radius: 400})
	if gk1 == gk2 {
		t.Error("Different options should produce different graph keys")
	}
	if gk1 != k.GraphKey(1, opts{Radius: 350}) {
		t.Error("GraphKey should be deterministic")
	}
	if !strings.HasPrefix(gk1, "graph:1:") {
		t.Errorf("GraphKey prefix unexpected: %s", gk1)
	}

	if got := k.ArtifactKey("abc", "svg"); got != "artifact:abc:svg" {
		t.Errorf("ArtifactKey unexpected: %s", got)
	}
}

func TestScopedKeyer(t *testing.T) {
	scoped := NewScopedKeyer(NewDefaultKeyer(), "mirror:")

	if got := scoped.HTTPKey("swapi", "films"); got != "mirror:http:swapi:films" {
		t.Errorf("ScopedKeyer HTTPKey unexpected: %s", got)
	}
	if got := scoped.ArtifactKey("h", "json"); got != "mirror:artifact:h:json" {
		t.Errorf("ScopedKeyer ArtifactKey unexpected: %s", got)
	}
	if got := scoped.GraphKey(4, nil); !strings.HasPrefix(got, "mirror:graph:4:") {
		t.Errorf("ScopedKeyer GraphKey should be prefixed: %s", got)
	}
}

func TestSourceScope(t *testing.T) {
	a := SourceScope("https://swapi.dev/api")
	b := SourceScope("http://localhost:9000/api")
	if a == b {
		t.Fatalf("different sources share scope %q", a)
	}
	if a != SourceScope("https://swapi.dev/api") {
		t.Error("SourceScope should be stable")
	}
	if !strings.HasPrefix(a, "src:") || strings.Contains(a, "swapi.dev") {
		t.Errorf("SourceScope(%q) = %q", "https://swapi.dev/api", a)
	}

	ka := NewScopedKeyer(nil, a).HTTPKey("swapi", "films")
	kb := NewScopedKeyer(nil, b).HTTPKey("swapi", "films")
	if ka == kb {
		t.Errorf("scoped keys collide: %s", ka)
	}
}

func TestScopedKeyerNilInner(t *testing.T) {
	// Should use DefaultKeyer when inner is nil
	scoped := NewScopedKeyer(nil, "prefix:")
	key := scoped.HTTPKey("test", "key")
	if key != "prefix:http:test:key" {
		t.Errorf("Unexpected key with nil inner: %s", key)
	}
}

// TestRedisCache runs against a live server named by HOLOMAP_TEST_REDIS_URL.
func TestRedisCache(t *testing.T) {
	url := os.Getenv("HOLOMAP_TEST_REDIS_URL")
	if url == "" {
		t.Skip("HOLOMAP_TEST_REDIS_URL not set")
	}
	ctx := context.Background()

	c, err := NewRedisCache(ctx, url)
	if err != nil {
		t.Fatalf("NewRedisCache: %v", err)
	}
	defer c.Close()
	c.prefix = "holomap-test:" + t.Name() + ":"
	defer c.Clear(ctx)

	if err := c.Set(ctx, "k", []byte("v"), time.Minute); err != nil {
		t.Fatalf("Set: %v", err)
	}
	data, hit, err := c.Get(ctx, "k")
	if err != nil || !hit || string(data) != "v" {
		t.Fatalf("Get = %q, %v, %v", data, hit, err)
	}
	if err := c.Delete(ctx, "k"); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if _, hit, _ := c.Get(ctx, "k"); hit {
		t.Error("entry should be gone after Delete")
	}
}

func TestNewRedisCacheBadURL(t *testing.T) {
	if _, err := NewRedisCache(context.Background(), "not-a-url"); err == nil {
		t.Error("NewRedisCache should reject a malformed URL")
	}
}
