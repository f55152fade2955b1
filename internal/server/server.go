package server

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/kdarade/portfolio/internal/contact"
	"github.com/kdarade/portfolio/internal/content"
)

// Config holds server configuration.
type Config struct {
	Port           int
	AllowedOrigins []string
	AllowAll       bool // allow all CORS origins (dev mode)
}

// Deps are the collaborators the server renders and submits through.
// Profile and Forms are required.
type Deps struct {
	Logger   *zap.Logger
	Profile  *content.Profile
	Forms    *contact.Registry
	Metrics  *contact.Metrics
	Registry *prometheus.Registry
}

// Server serves the portfolio page and its contact endpoints.
type Server struct {
	cfg        Config
	logger     *zap.Logger
	profile    *content.Profile
	forms      *contact.Registry
	metrics    *contact.Metrics
	registry   *prometheus.Registry
	requests   *prometheus.CounterVec
	router     chi.Router
	httpServer *http.Server
}

// New creates a server. A nil Logger logs nothing; a nil Registry gets a
// private one; nil Metrics are registered with the Registry.
func New(cfg Config, deps Deps) *Server {
	s := &Server{
		cfg:      cfg,
		logger:   deps.Logger,
		profile:  deps.Profile,
		forms:    deps.Forms,
		metrics:  deps.Metrics,
		registry: deps.Registry,
	}
	if s.logger == nil {
		s.logger = zap.NewNop()
	}
	if s.registry == nil {
		s.registry = prometheus.NewRegistry()
	}
	if s.metrics == nil {
		s.metrics = contact.NewMetrics(s.registry, metricsNamespace)
	}
	s.requests = newRequestCounter(s.registry)

	s.router = s.buildRouter()
	s.httpServer = &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.Port),
		Handler:           s.router,
		ReadHeaderTimeout: 10 * time.Second,
		WriteTimeout:      120 * time.Second,
		IdleTimeout:       120 * time.Second,
	}
	return s
}

// buildRouter creates and configures the chi router with all routes.
func (s *Server) buildRouter() chi.Router {
	r := chi.NewRouter()

	// Middleware
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(requestLogger(s.logger))
	r.Use(s.countRequests)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(60 * time.Second))

	// CORS
	corsOpts := cors.Options{
		AllowedOrigins:   s.cfg.AllowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Content-Type"},
		AllowCredentials: true,
		MaxAge:           300,
	}
	if s.cfg.AllowAll {
		corsOpts.AllowedOrigins = []string{"*"}
	}
	r.Use(cors.Handler(corsOpts))

	// Health check
	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})
	r.Method(http.MethodGet, "/metrics", promhttp.HandlerFor(s.registry, promhttp.HandlerOpts{}))
	r.Handle("/assets/*", assetHandler())

	r.Group(func(r chi.Router) {
		r.Use(s.withSession)
		r.Get("/", s.handleIndex)
		r.Post("/contact", s.handleContactForm)
		r.Post("/api/contact", s.handleContactAPI)
	})
	r.Post("/theme", handleTheme)

	return r
}

// Handler returns the root HTTP handler.
func (s *Server) Handler() http.Handler { return s.router }

// Addr returns the address the server listens on.
func (s *Server) Addr() string { return s.httpServer.Addr }

// Start begins listening on the configured port. It returns
// http.ErrServerClosed after Shutdown.
func (s *Server) Start() error {
	s.logger.Info("portfolio server listening", zap.String("addr", s.httpServer.Addr))
	return s.httpServer.ListenAndServe()
}

// Shutdown gracefully shuts down the server.
func (s *Server) Shutdown(ctx context.Context) error {
	return s.httpServer.Shutdown(ctx)
}
