package observability

import (
	"context"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// PrometheusHooks records pipeline, cache and HTTP events as Prometheus
// metrics. A single value implements all three hook interfaces.
type PrometheusHooks struct {
	FetchTotal      *prometheus.CounterVec
	FetchDuration   prometheus.Histogram
	LayoutDuration  prometheus.Histogram
	GraphNodes      prometheus.Histogram
	Placeholders    prometheus.Counter
	RenderTotal     *prometheus.CounterVec
	RenderDuration  prometheus.Histogram
	CacheOps        *prometheus.CounterVec
	CacheBytes      prometheus.Counter
	UpstreamTotal   *prometheus.CounterVec
	UpstreamLatency *prometheus.HistogramVec
}

// NewPrometheusHooks registers the holomap metrics with reg.
func NewPrometheusHooks(reg prometheus.Registerer) *PrometheusHooks {
	f := promauto.With(reg)
	return &PrometheusHooks{
		FetchTotal: f.NewCounterVec(
			prometheus.CounterOpts{
				Name: "holomap_fetch_total",
				Help: "Character fetches by outcome",
			},
			[]string{"outcome"},
		),
		FetchDuration: f.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "holomap_fetch_duration_seconds",
				Help:    "Time spent fetching a character with its film and starship catalogs",
				Buckets: prometheus.DefBuckets,
			},
		),
		LayoutDuration: f.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "holomap_layout_duration_seconds",
				Help:    "Time spent computing a radial layout",
				Buckets: prometheus.ExponentialBuckets(0.00001, 4, 8),
			},
		),
		GraphNodes: f.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "holomap_graph_nodes",
				Help:    "Number of nodes in generated graphs",
				Buckets: prometheus.LinearBuckets(0, 20, 10),
			},
		),
		Placeholders: f.NewCounter(
			prometheus.CounterOpts{
				Name: "holomap_placeholder_nodes_total",
				Help: "Nodes synthesized for references missing from the catalogs",
			},
		),
		RenderTotal: f.NewCounterVec(
			prometheus.CounterOpts{
				Name: "holomap_render_total",
				Help: "Render runs by outcome",
			},
			[]string{"outcome"},
		),
		RenderDuration: f.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "holomap_render_duration_seconds",
				Help:    "Time spent rendering all requested formats",
				Buckets: prometheus.DefBuckets,
			},
		),
		CacheOps: f.NewCounterVec(
			prometheus.CounterOpts{
				Name: "holomap_cache_operations_total",
				Help: "Cache lookups and writes by key type and result",
			},
			[]string{"key_type", "result"},
		),
		CacheBytes: f.NewCounter(
			prometheus.CounterOpts{
				Name: "holomap_cache_written_bytes_total",
				Help: "Bytes written to the cache",
			},
		),
		UpstreamTotal: f.NewCounterVec(
			prometheus.CounterOpts{
				Name: "holomap_upstream_requests_total",
				Help: "Requests to the data provider by host and status",
			},
			[]string{"host", "status"},
		),
		UpstreamLatency: f.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "holomap_upstream_request_duration_seconds",
				Help:    "Latency of data provider requests",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"host"},
		),
	}
}

// Install registers h as the global pipeline, cache and HTTP hooks.
func (h *PrometheusHooks) Install() {
	SetPipelineHooks(h)
	SetCacheHooks(h)
	SetHTTPHooks(h)
}

func outcome(err error) string {
	if err != nil {
		return "error"
	}
	return "ok"
}

func (h *PrometheusHooks) OnFetchStart(context.Context, int) {}

func (h *PrometheusHooks) OnFetchComplete(_ context.Context, _ int, d time.Duration, err error) {
	h.FetchTotal.WithLabelValues(outcome(err)).Inc()
	h.FetchDuration.Observe(d.Seconds())
}

func (h *PrometheusHooks) OnLayoutStart(context.Context, int, int) {}

func (h *PrometheusHooks) OnLayoutComplete(_ context.Context, nodes, _, placeholders int, d time.Duration) {
	h.LayoutDuration.Observe(d.Seconds())
	h.GraphNodes.Observe(float64(nodes))
	h.Placeholders.Add(float64(placeholders))
}

func (h *PrometheusHooks) OnRenderStart(context.Context, []string) {}

func (h *PrometheusHooks) OnRenderComplete(_ context.Context, _ []string, d time.Duration, err error) {
	h.RenderTotal.WithLabelValues(outcome(err)).Inc()
	h.RenderDuration.Observe(d.Seconds())
}

func (h *PrometheusHooks) OnCacheHit(_ context.Context, keyType string) {
	h.CacheOps.WithLabelValues(keyType, "hit").Inc()
}

func (h *PrometheusHooks) OnCacheMiss(_ context.Context, keyType string) {
	h.CacheOps.WithLabelValues(keyType, "miss").Inc()
}

func (h *PrometheusHooks) OnCacheSet(_ context.Context, keyType string, size int) {
	h.CacheOps.WithLabelValues(keyType, "set").Inc()
	h.CacheBytes.Add(float64(size))
}

func (h *PrometheusHooks) OnRequest(context.Context, string, string, string) {}

func (h *PrometheusHooks) OnResponse(_ context.Context, _, host, _ string, status int, d time.Duration) {
	h.UpstreamTotal.WithLabelValues(host, strconv.Itoa(status)).Inc()
	h.UpstreamLatency.WithLabelValues(host).Observe(d.Seconds())
}

func (h *PrometheusHooks) OnError(_ context.Context, _, host, _ string, _ error) {
	h.UpstreamTotal.WithLabelValues(host, "error").Inc()
}

var (
	_ PipelineHooks = (*PrometheusHooks)(nil)
	_ CacheHooks    = (*PrometheusHooks)(nil)
	_ HTTPHooks     = (*PrometheusHooks)(nil)
)
