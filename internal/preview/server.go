package preview

import (
	"bytes"
	"context"
	"encoding/json"
	stderrors "errors"
	"log/slog"
	"net/http"
	"sync"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/vango-dev/arbor/internal/errors"
	"github.com/vango-dev/arbor/pkg/dom"
	"github.com/vango-dev/arbor/pkg/manifest"
	"github.com/vango-dev/arbor/pkg/render"
	"github.com/vango-dev/arbor/pkg/telemetry"
	"github.com/vango-dev/arbor/pkg/tree"
)

// Config configures the preview server.
type Config struct {
	// ManifestPath is the manifest file to serve.
	ManifestPath string

	// Loader parses the manifest. Defaults to a loader without components.
	Loader *manifest.Loader

	// Title is the page title.
	Title string

	Addr        string
	MetricsPath string
	Watch       bool

	// MarkerComments renders region markers as comments.
	MarkerComments bool

	// Target is the id of the mount element.
	Target string

	Logger *slog.Logger
}

// Server serves one mounted manifest.
type Server struct {
	config   Config
	logger   *slog.Logger
	registry *prometheus.Registry
	renderer *render.Renderer
	hub      *Hub

	// mu serializes every access to the session and its stores.
	mu       sync.Mutex
	manifest *manifest.Manifest
	doc      *dom.Document
	session  *tree.Session
	target   *dom.Node
}

// NewServer loads the manifest and mounts it.
func NewServer(cfg Config) (*Server, error) {
	if cfg.Logger == nil {
		cfg.Logger = slog.Default()
	}
	if cfg.Loader == nil {
		cfg.Loader = manifest.NewLoader(manifest.WithLogger(cfg.Logger))
	}
	if cfg.MetricsPath == "" {
		cfg.MetricsPath = "/metrics"
	}
	if cfg.Target == "" {
		cfg.Target = "arbor-root"
	}

	m, err := cfg.Loader.Load(cfg.ManifestPath)
	if err != nil {
		return nil, err
	}

	registry := prometheus.NewRegistry()
	registry.MustRegister(collectors.NewGoCollector())

	s := &Server{
		config:   cfg,
		logger:   cfg.Logger,
		registry: registry,
		renderer: render.NewRenderer(render.Config{MarkerComments: cfg.MarkerComments}),
		hub:      NewHub(),
		manifest: m,
		doc:      dom.NewDocument(),
	}
	s.session = tree.NewSession(s.doc,
		tree.WithLogger(cfg.Logger),
		tree.WithRecorder(telemetry.NewRecorder(telemetry.WithRegistry(registry))),
		tree.WithTracer(telemetry.Tracer("")),
	)
	s.target = s.doc.CreateElement("div")
	s.target.SetProp("id", cfg.Target)
	s.doc.Body().AppendChild(s.target)
	s.session.Mount(m.Description(), s.target)
	return s, nil
}

// Handler returns the HTTP routes.
func (s *Server) Handler() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)
	r.Use(s.logRequests)

	r.Get("/", s.handlePage)
	r.Get("/ws", func(w http.ResponseWriter, req *http.Request) {
		s.hub.HandleWebSocket(w, req, s.body)
	})
	r.Get("/stores", s.handleStores)
	r.Post("/stores/{name}", s.handleSet)
	r.Method(http.MethodGet, s.config.MetricsPath, promhttp.HandlerFor(s.registry, promhttp.HandlerOpts{}))
	return r
}

// Hub returns the update hub.
func (s *Server) Hub() *Hub { return s.hub }

// ListenAndServe serves until ctx is cancelled.
func (s *Server) ListenAndServe(ctx context.Context) error {
	if s.config.Watch {
		if err := s.Watch(ctx); err != nil {
			return err
		}
	}

	srv := &http.Server{
		Addr:              s.config.Addr,
		Handler:           s.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
	}
	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("preview server listening", "addr", s.config.Addr, "manifest", s.config.ManifestPath)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	s.hub.Close()
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return err
	}
	if err := <-errCh; !stderrors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

// Set assigns a store and pushes the new body to every client.
func (s *Server) Set(name string, value any) error {
	s.mu.Lock()
	if err := s.manifest.Set(name, value); err != nil {
		s.mu.Unlock()
		return err
	}
	if err := s.session.Flush(); err != nil {
		s.mu.Unlock()
		return err
	}
	body := s.renderBody()
	s.mu.Unlock()

	s.hub.Broadcast(body)
	return nil
}

// Reload reads the manifest again and remounts it, carrying over the values
// of stores that still exist. On error the mounted tree is kept.
func (s *Server) Reload() error {
	m, err := s.config.Loader.Load(s.config.ManifestPath)
	if err != nil {
		s.logger.Error("manifest reload failed", "error", err)
		return err
	}

	s.mu.Lock()
	m.Restore(s.manifest.Snapshot())
	s.manifest = m
	s.session.Mount(m.Description(), s.target)
	body := s.renderBody()
	s.mu.Unlock()

	s.logger.Info("manifest reloaded", "file", s.config.ManifestPath)
	s.hub.Broadcast(body)
	return nil
}

func (s *Server) handlePage(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")

	s.mu.Lock()
	defer s.mu.Unlock()
	sr := render.NewStreamingRenderer(w, render.Config{MarkerComments: s.config.MarkerComments})
	if err := sr.RenderPage(render.Page{
		Body:       s.target,
		Title:      s.config.Title,
		LiveReload: "/ws",
	}); err != nil {
		s.logger.Error("page render failed", "error", err)
	}
}

func (s *Server) handleStores(w http.ResponseWriter, _ *http.Request) {
	s.mu.Lock()
	snapshot := s.manifest.Snapshot()
	s.mu.Unlock()

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(snapshot); err != nil {
		s.logger.Error("encode stores", "error", err)
	}
}

func (s *Server) handleSet(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "name")

	var value any
	if err := json.NewDecoder(r.Body).Decode(&value); err != nil {
		http.Error(w, "body must be a JSON value", http.StatusBadRequest)
		return
	}

	if err := s.Set(name, value); err != nil {
		var ae *errors.ArborError
		if stderrors.As(err, &ae) && ae.Code == "E122" {
			http.Error(w, ae.Error(), http.StatusNotFound)
			return
		}
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// body renders the mounted content under the lock.
func (s *Server) body() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.renderBody()
}

// renderBody must be called with s.mu held.
func (s *Server) renderBody() string {
	var buf bytes.Buffer
	if err := s.renderer.RenderChildren(&buf, s.target); err != nil {
		s.logger.Error("body render failed", "error", err)
	}
	return buf.String()
}

func (s *Server) logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		next.ServeHTTP(ww, r)
		s.logger.Debug("request",
			"method", r.Method,
			"path", r.URL.Path,
			"status", ww.Status(),
			"duration", time.Since(start),
			"request_id", middleware.GetReqID(r.Context()),
		)
	})
}
