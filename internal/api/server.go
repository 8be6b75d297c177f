// Package api provides the HTTP API server and handlers for the launch planner.
package api

import (
	"io"
	"log/slog"
	"net/http"

	"github.com/danielgtaylor/huma/v2"
	"github.com/danielgtaylor/huma/v2/adapters/humachi"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/goccy/go-json"

	"github.com/launchplanner/launchplanner-server/internal/http/response"
	"github.com/launchplanner/launchplanner-server/internal/metrics"
	"github.com/launchplanner/launchplanner-server/internal/ratelimit"
	"github.com/launchplanner/launchplanner-server/internal/sse"
	"github.com/launchplanner/launchplanner-server/internal/store"
)

// Options holds the HTTP settings that come from configuration.
type Options struct {
	CORSOrigins        []string
	RateLimitPerMinute int // 0 disables limiting
}

// Server holds dependencies for HTTP handlers.
type Server struct {
	store      *store.Store
	services   *Services
	sseManager *sse.Manager
	metrics    *metrics.Metrics
	limiter    *ratelimit.KeyedRateLimiter
	router     *chi.Mux
	api        huma.API
	logger     *slog.Logger
}

// NewServer creates a new HTTP server with all routes configured.
func NewServer(st *store.Store, services *Services, sseManager *sse.Manager, m *metrics.Metrics, opts Options, logger *slog.Logger) *Server {
	s := &Server{
		store:      st,
		services:   services,
		sseManager: sseManager,
		metrics:    m,
		router:     chi.NewRouter(),
		logger:     logger,
	}
	if opts.RateLimitPerMinute > 0 {
		s.limiter = ratelimit.PerMinute(opts.RateLimitPerMinute)
	}

	s.setupMiddleware(opts)

	s.api = humachi.New(s.router, newHumaConfig())
	RegisterErrorHandler()

	s.registerRoutes()

	return s
}

// newHumaConfig returns the OpenAPI config shared by the server and tests.
// Bodies are encoded with goccy/go-json and no $schema links are injected,
// so responses are the bare records clients expect.
func newHumaConfig() huma.Config {
	cfg := huma.DefaultConfig("Launch Planner API", "1.0.0")
	cfg.Info.Description = "Plan product launches, track their goals and capture leads."
	cfg.CreateHooks = nil

	jsonFormat := huma.Format{
		Marshal: func(w io.Writer, v any) error {
			return json.NewEncoder(w).Encode(v)
		},
		Unmarshal: json.Unmarshal,
	}
	cfg.Formats = map[string]huma.Format{
		"application/json": jsonFormat,
		"json":             jsonFormat,
	}
	return cfg
}

// ServeHTTP implements http.Handler.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

// Close stops background work owned by the server.
func (s *Server) Close() {
	if s.limiter != nil {
		s.limiter.Stop()
	}
}

// setupMiddleware configures middleware stack.
func (s *Server) setupMiddleware(opts Options) {
	s.router.Use(middleware.RequestID)
	s.router.Use(middleware.RealIP)
	s.router.Use(requestLogger(s.logger))
	s.router.Use(middleware.Recoverer)
	if s.metrics != nil {
		s.router.Use(s.metrics.Middleware)
	}
	if len(opts.CORSOrigins) > 0 {
		s.router.Use(cors.Handler(cors.Options{
			AllowedOrigins: opts.CORSOrigins,
			AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions},
			AllowedHeaders: []string{"Accept", "Content-Type", "X-Request-Id"},
			ExposedHeaders: []string{"Content-Disposition", "X-Request-Id"},
			MaxAge:         300,
		}))
	}
	if s.limiter != nil {
		s.router.Use(RateLimitMiddleware(s.limiter, s.logger))
	}

	s.router.NotFound(func(w http.ResponseWriter, r *http.Request) {
		response.NotFound(w, "no route for "+r.Method+" "+r.URL.Path, s.logger)
	})
	s.router.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		response.Error(w, http.StatusMethodNotAllowed, "METHOD_NOT_ALLOWED", r.Method+" is not allowed on "+r.URL.Path, s.logger)
	})
}

// registerRoutes configures all HTTP routes.
func (s *Server) registerRoutes() {
	s.registerHealthRoutes()
	s.registerProductRoutes()
	s.registerGoalRoutes()
	s.registerLeadRoutes()
	s.registerMaintenanceRoutes()

	if s.sseManager != nil {
		s.router.Get("/api/events", sse.NewHandler(s.sseManager, s.logger).ServeHTTP)
	}
	if s.metrics != nil {
		s.router.Handle("/metrics", s.metrics.Handler())
	}
}
