// Package server exposes board generation over an HTTP JSON API.
//
// Endpoints:
//
//	GET  /healthz            liveness probe
//	GET  /v1/dice            list built-in dice sets
//	POST /v1/boards          constrained generation
//	POST /v1/boards/replay   recover the word list of an exact board
//
// Seeded generation requests are cached: the result of a fixed request never
// changes, so repeat requests are served from the configured cache backend.
package server

import (
	"net/http"
	"time"

	"github.com/charmbracelet/log"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/tilesmith/boggen/pkg/cache"
	"github.com/tilesmith/boggen/pkg/generate"
)

// DefaultCacheTTL is how long generated boards stay cached.
const DefaultCacheTTL = 24 * time.Hour

// Server handles the board generation API.
type Server struct {
	gen    *generate.Generator
	cache  cache.Cache
	keyer  cache.Keyer
	logger *log.Logger
	ttl    time.Duration
}

// Options configures optional server collaborators.
type Options struct {
	// Cache stores finished generation results. Nil disables caching.
	Cache cache.Cache

	// Keyer derives cache keys. Nil uses the default keyer.
	Keyer cache.Keyer

	// Logger receives request and generation logs. Nil uses log.Default().
	Logger *log.Logger

	// CacheTTL overrides DefaultCacheTTL when positive.
	CacheTTL time.Duration
}

// New creates a server around a generator.
func New(gen *generate.Generator, opts Options) *Server {
	if opts.Cache == nil {
		opts.Cache = cache.NewNullCache()
	}
	if opts.Keyer == nil {
		opts.Keyer = cache.NewDefaultKeyer()
	}
	if opts.Logger == nil {
		opts.Logger = log.Default()
	}
	ttl := opts.CacheTTL
	if ttl <= 0 {
		ttl = DefaultCacheTTL
	}
	return &Server{
		gen:    gen,
		cache:  opts.Cache,
		keyer:  opts.Keyer,
		logger: opts.Logger,
		ttl:    ttl,
	}
}

// Router builds the HTTP handler.
func (s *Server) Router() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)
	r.Use(s.logRequests)

	r.Get("/healthz", s.handleHealth)
	r.Get("/v1/dice", s.handleListDice)
	r.Post("/v1/boards", s.handleGenerate)
	r.Post("/v1/boards/replay", s.handleReplay)

	return r
}

// logRequests logs one line per request with status and duration.
func (s *Server) logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		next.ServeHTTP(ww, r)
		s.logger.Debug("request",
			"method", r.Method,
			"path", r.URL.Path,
			"status", ww.Status(),
			"duration", time.Since(start).Round(time.Millisecond))
	})
}
