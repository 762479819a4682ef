package httpapi

import (
	"net/http"
	"time"

	"agendas-mcp/internal/dataset"
	"agendas-mcp/internal/observability/metrics"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog/log"
)

// Config holds router dependencies.
type Config struct {
	Store          *dataset.Store
	Metrics        *metrics.DashboardMetrics
	MetricsHandler http.Handler
}

// New creates a chi router with every API route configured.
func New(cfg *Config) http.Handler {
	h := &Handler{store: cfg.Store, metrics: cfg.Metrics}

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(RequestLogger)
	r.Use(middleware.Recoverer)

	r.Get("/health", h.Health)
	if cfg.MetricsHandler != nil {
		r.Method(http.MethodGet, "/metrics", cfg.MetricsHandler)
	}

	r.Route("/api", func(r chi.Router) {
		r.Get("/status", h.Status)
		r.Post("/reload", h.Reload)
		r.Get("/options", h.Options)
		r.Get("/dashboard", h.Dashboard)
		r.Get("/kpis", h.KPIs)
		r.Get("/specialties", h.Specialties)
		r.Get("/professionals", h.Professionals)
		r.Get("/blocked", h.Blocked)
		r.Get("/series", h.Series)
	})
	return r
}

// RequestLogger emits one structured log line per HTTP request.
func RequestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		next.ServeHTTP(ww, r)
		log.Info().
			Str("method", r.Method).
			Str("path", r.URL.Path).
			Str("request_id", middleware.GetReqID(r.Context())).
			Int("status", ww.Status()).
			Int("bytes", ww.BytesWritten()).
			Int64("duration_ms", time.Since(start).Milliseconds()).
			Msg("request completed")
	})
}
