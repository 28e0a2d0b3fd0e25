/*
server.go - HTTP router and middleware configuration

PURPOSE:
  Wires URLs to handlers. chi router with the usual middleware stack:
  Logger, Recoverer, RequestID, CORS.

ROUTES:
  /api/*   Dashboard data endpoints (see handlers.go)
  /        Minimal index page listing the endpoints

SEE ALSO:
  - handlers.go: handler implementations
  - cmd/server/main.go: server startup
*/
package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
)

// NewRouter creates a new router with all routes configured.
func NewRouter(h *Handler) *chi.Mux {
	r := chi.NewRouter()

	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.RequestID)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type"},
	}))

	r.Route("/api", func(r chi.Router) {
		r.Get("/filters", h.GetFilters)
		r.Get("/metrics", h.GetMetrics)
		r.Get("/regions", h.GetRegions)
		r.Get("/zones", h.GetZones)
		r.Get("/breakdown", h.GetBreakdown)
		r.Get("/pivot", h.GetPivot)
		r.Get("/records", h.GetRecords)
		r.Get("/dashboard", h.GetDashboard)
		r.Get("/export", h.ExportCSV)
	})

	r.Get("/", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html")
		w.Write([]byte(`<!DOCTYPE html>
<html>
<head><title>Power Infrastructure Dashboard</title></head>
<body style="font-family: system-ui; max-width: 800px; margin: 50px auto; padding: 20px;">
<h1>Power Infrastructure Dashboard API</h1>
<p>Filter any endpoint with repeated <code>region</code> and <code>zone</code> query parameters.</p>
<ul>
<li><a href="/api/filters">/api/filters</a> - Filter option sets</li>
<li><a href="/api/dashboard">/api/dashboard</a> - Full dashboard payload</li>
<li><a href="/api/metrics">/api/metrics</a> - Headline totals</li>
<li><a href="/api/records">/api/records</a> - Raw filtered rows</li>
<li><a href="/api/export">/api/export</a> - CSV download</li>
</ul>
</body>
</html>`))
	})

	return r
}
