package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/tsc11539/amazon-shortener/internal/canonical"
	"github.com/tsc11539/amazon-shortener/internal/config"
)

// Router registers GET handlers. chi.Router satisfies it.
type Router interface {
	Get(pattern string, h http.HandlerFunc)
}

// NewRouter creates and configures a new HTTP router.
func NewRouter(cfg *config.Config, vars config.Vars) http.Handler {
	r := chi.NewRouter()

	// Middleware stack
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(RequestLogger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(cfg.RequestTimeout))
	if cfg.RateLimit.Enabled() {
		r.Use(RateLimiter(cfg.RateLimit.RequestsPerSecond, cfg.RateLimit.Burst))
	}

	// Health check endpoints
	r.Get("/healthz", healthzHandler)
	r.Get("/readyz", readyzHandler)

	Register(r, vars, canonical.NewShortener(cfg.RedirectHost))

	return r
}

// Register mounts the shortener routes on r.
func Register(r Router, vars config.Vars, s canonical.Shortener) {
	h := &handlers{vars: vars, shortener: s}

	r.Get("/", h.root)
	r.Get("/shorten", h.shorten)
	r.Get("/worker-version", h.workerVersion)
}

type handlers struct {
	vars      config.Vars
	shortener canonical.Shortener
}
