package observability

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
)

func TestPrometheusHooks(t *testing.T) {
	ctx := context.Background()
	reg := prometheus.NewRegistry()
	h := NewPrometheusHooks(reg)

	h.OnFetchComplete(ctx, 1, time.Millisecond, nil)
	h.OnFetchComplete(ctx, 2, time.Millisecond, errors.New("boom"))
	h.OnLayoutComplete(ctx, 12, 11, 2, time.Microsecond)
	h.OnRenderComplete(ctx, []string{"svg"}, time.Millisecond, nil)
	h.OnCacheHit(ctx, "http")
	h.OnCacheMiss(ctx, "http")
	h.OnCacheSet(ctx, "http", 512)
	h.OnResponse(ctx, "GET", "sw-api.starnavi.io", "/films/", 200, time.Millisecond)
	h.OnError(ctx, "GET", "sw-api.starnavi.io", "/films/", errors.New("reset"))

	checks := []struct {
		name string
		c    prometheus.Collector
		want float64
	}{
		{"fetch ok", h.FetchTotal.WithLabelValues("ok"), 1},
		{"fetch error", h.FetchTotal.WithLabelValues("error"), 1},
		{"placeholders", h.Placeholders, 2},
		{"render ok", h.RenderTotal.WithLabelValues("ok"), 1},
		{"cache hit", h.CacheOps.WithLabelValues("http", "hit"), 1},
		{"cache miss", h.CacheOps.WithLabelValues("http", "miss"), 1},
		{"cache bytes", h.CacheBytes, 512},
		{"upstream 200", h.UpstreamTotal.WithLabelValues("sw-api.starnavi.io", "200"), 1},
		{"upstream error", h.UpstreamTotal.WithLabelValues("sw-api.starnavi.io", "error"), 1},
	}
	for _, c := range checks {
		if got := testutil.ToFloat64(c.c); got != c.want {
			t.Errorf("%s = %v, want %v", c.name, got, c.want)
		}
	}

	if n := testutil.CollectAndCount(h.GraphNodes); n != 1 {
		t.Errorf("graph nodes histogram series = %d, want 1", n)
	}
}

func TestPrometheusHooksInstall(t *testing.T) {
	Reset()
	defer Reset()

	h := NewPrometheusHooks(prometheus.NewRegistry())
	h.Install()

	if Pipeline() != PipelineHooks(h) || Cache() != CacheHooks(h) || HTTP() != HTTPHooks(h) {
		t.Error("Install should register the hooks globally")
	}
}
