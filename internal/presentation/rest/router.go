package rest

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// NewRouter assembles the full HTTP surface: API routes, health probes, and
// the metrics endpoint.
func NewRouter(health *HealthHandler, docs *DocumentHandler) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(metricsMiddleware)

	health.RegisterRoutes(r)
	docs.RegisterRoutes(r)
	r.Method(http.MethodGet, "/metrics", promhttp.Handler())

	return r
}
