// Package server exposes the holomap pipeline over HTTP.
//
// Routes:
//
//	GET /healthz                          build information
//	GET /api/characters?page=N            one page of characters
//	GET /api/characters/{id}/graph        rendered graph (format=json|yaml|dot|svg)
//	GET /metrics                          Prometheus metrics, when a registry is set
//
// Errors are returned as JSON objects with a code and a message; the status
// code follows [errors.HTTPStatus].
package server

import (
	"context"
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/charmbracelet/log"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/matzehuels/holomap/pkg/buildinfo"
	herrors "github.com/matzehuels/holomap/pkg/errors"
	"github.com/matzehuels/holomap/pkg/layout"
	"github.com/matzehuels/holomap/pkg/pipeline"
	"github.com/matzehuels/holomap/pkg/render"
)

// DefaultAddr is the listen address used when none is configured.
const DefaultAddr = ":8080"

// Server serves graphs produced by a pipeline.Runner.
type Server struct {
	Runner   *pipeline.Runner
	Layout   layout.Config
	Logger   *log.Logger
	Registry *prometheus.Registry // nil disables /metrics

	router chi.Router
}

// New creates a server. A zero layout selects layout.DefaultConfig.
func New(runner *pipeline.Runner, cfg layout.Config, logger *log.Logger, reg *prometheus.Registry) *Server {
	if logger == nil {
		logger = log.Default()
	}
	if cfg == (layout.Config{}) {
		cfg = layout.DefaultConfig()
	}
	s := &Server{Runner: runner, Layout: cfg, Logger: logger, Registry: reg}
	s.router = s.routes()
	return s
}

func (s *Server) routes() chi.Router {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)
	r.Use(s.logRequests)

	r.Get("/healthz", s.handleHealth)
	r.Route("/api/characters", func(r chi.Router) {
		r.Get("/", s.handleCharacters)
		r.Get("/{id}/graph", s.handleGraph)
	})
	if s.Registry != nil {
		r.Handle("/metrics", promhttp.HandlerFor(s.Registry, promhttp.HandlerOpts{}))
	}
	return r
}

// ServeHTTP implements http.Handler.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

// ListenAndServe serves on addr until ctx is canceled, then shuts down
// gracefully.
func (s *Server) ListenAndServe(ctx context.Context, addr string) error {
	if addr == "" {
		addr = DefaultAddr
	}
	srv := &http.Server{
		Addr:              addr,
		Handler:           s,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		s.Logger.Info("listening", "addr", addr)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		s.Logger.Info("shutting down")
		return srv.Shutdown(shutdownCtx)
	}
}

func (s *Server) logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		start := time.Now()
		next.ServeHTTP(ww, r)
		s.Logger.Debug("request",
			"method", r.Method,
			"path", r.URL.Path,
			"status", ww.Status(),
			"bytes", ww.BytesWritten(),
			"request_id", middleware.GetReqID(r.Context()),
			"duration", time.Since(start))
	})
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	info := buildinfo.Get()
	writeJSON(w, http.StatusOK, map[string]string{
		"status":  "ok",
		"version": info.Version,
		"commit":  info.Commit,
		"date":    info.Date,
	})
}

type charactersResponse struct {
	Page    int                         `json:"page"`
	Next    bool                        `json:"next"`
	Results []pipeline.CharacterSummary `json:"results"`
}

func (s *Server) handleCharacters(w http.ResponseWriter, r *http.Request) {
	page := 1
	if v := r.URL.Query().Get("page"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			s.writeError(w, herrors.New(herrors.ErrCodeInvalidPage, "invalid page %q", v))
			return
		}
		page = n
	}

	rows, next, err := s.Runner.Characters(r.Context(), page, queryBool(r, "refresh"))
	if err != nil {
		s.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, charactersResponse{Page: page, Next: next, Results: rows})
}

func (s *Server) handleGraph(w http.ResponseWriter, r *http.Request) {
	id, err := herrors.ParseCharacterID(chi.URLParam(r, "id"))
	if err != nil {
		s.writeError(w, err)
		return
	}
	format := r.URL.Query().Get("format")
	if format == "" {
		format = render.FormatJSON
	}
	if err := herrors.ValidateFormat(format, render.Formats); err != nil {
		s.writeError(w, err)
		return
	}

	res, err := s.Runner.Execute(r.Context(), pipeline.Options{
		CharacterID: id,
		Layout:      s.Layout,
		Formats:     []string{format},
		Detailed:    queryBool(r, "detailed"),
		Refresh:     queryBool(r, "refresh"),
	})
	if err != nil {
		s.writeError(w, err)
		return
	}

	w.Header().Set("Content-Type", render.ContentType(format))
	w.Header().Set("X-Graph-Hash", res.GraphHash)
	if len(res.Warnings) > 0 {
		w.Header().Set("X-Degraded", "true")
	}
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(res.Artifacts[format])
}

type errorResponse struct {
	Code  herrors.Code `json:"code"`
	Error string       `json:"error"`
}

func (s *Server) writeError(w http.ResponseWriter, err error) {
	status := herrors.HTTPStatus(err)
	if status >= http.StatusInternalServerError {
		s.Logger.Error("request failed", "err", err)
	}
	code := herrors.GetCode(err)
	if code == "" {
		code = herrors.ErrCodeInternal
	}
	writeJSON(w, status, errorResponse{Code: code, Error: herrors.UserMessage(err)})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func queryBool(r *http.Request, key string) bool {
	b, _ := strconv.ParseBool(r.URL.Query().Get(key))
	return b
}
