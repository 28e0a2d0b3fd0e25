/*
handlers.go - HTTP handlers for the asset dashboard

PURPOSE:
  Serves the chart-ready outputs of the domain core. Every data endpoint
  runs the same pipeline: cached table -> selection from query params ->
  filter -> aggregate -> serialize.

ENDPOINTS:
  GET /api/filters     Option sets for the two multi-selects
  GET /api/metrics     Four labeled totals
  GET /api/regions     Grouped summary by region (bar chart)
  GET /api/zones       Grouped summary by zone (bar chart)
  GET /api/breakdown   Asset-type distribution with shares (pie chart)
  GET /api/pivot       Dense region x zone grid (heatmap)
  GET /api/records     Raw filtered rows (scatter plot, data table)
  GET /api/dashboard   All of the above in one payload
  GET /api/export      Filtered rows as a CSV download

SELECTION:
  Repeated "region" and "zone" query params, comma-separated values
  accepted. An absent param means the full observed domain; a param present
  with an empty value means the empty selection (empty view).

ERROR HANDLING:
  Load failures surface as JSON errors, never as an empty dashboard:
  - 503: database unreachable (assets.ErrConnection)
  - 500: query failure or anything else

SEE ALSO:
  - dto.go: response shapes
  - server.go: router and middleware
*/
package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"github.com/msedcl/asset-dashboard/assets"
)

// Handler holds the handlers' single dependency: the process-wide table
// cache. Handlers never touch the database directly.
type Handler struct {
	Cache *assets.Cache
}

// NewHandler creates a handler over the given cache.
func NewHandler(cache *assets.Cache) *Handler {
	return &Handler{Cache: cache}
}

// view loads the cached table and applies the request's selection.
func (h *Handler) view(r *http.Request) (assets.Table, error) {
	table, err := h.Cache.Get(r.Context())
	if err != nil {
		return nil, err
	}
	regions, zones := parseSelection(r.URL.Query(), assets.OptionsOf(table))
	return assets.Filter(table, regions, zones), nil
}

// parseSelection turns query params into the two membership sets. Absent
// params default to the full observed domain; present-but-empty params
// yield an empty set.
func parseSelection(q url.Values, opts assets.Options) (regions, zones assets.Set) {
	return paramSet(q, "region", opts.Regions), paramSet(q, "zone", opts.Zones)
}

func paramSet(q url.Values, name string, all []string) assets.Set {
	values, ok := q[name]
	if !ok {
		return assets.NewSet(all...)
	}
	set := assets.Set{}
	for _, v := range values {
		for _, part := range strings.Split(v, ",") {
			if part = strings.TrimSpace(part); part != "" {
				set[part] = struct{}{}
			}
		}
	}
	return set
}

// GetFilters returns the option sets for the two multi-select controls.
func (h *Handler) GetFilters(w http.ResponseWriter, r *http.Request) {
	table, err := h.Cache.Get(r.Context())
	if err != nil {
		writeLoadError(w, err)
		return
	}
	opts := assets.OptionsOf(table)
	writeJSON(w, http.StatusOK, FiltersDTO{Regions: opts.Regions, Zones: opts.Zones})
}

// GetMetrics returns the four labeled totals over the filtered view.
func (h *Handler) GetMetrics(w http.ResponseWriter, r *http.Request) {
	view, err := h.view(r)
	if err != nil {
		writeLoadError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, metricsOf(assets.Totals(view)))
}

// GetRegions returns the grouped summary by region.
func (h *Handler) GetRegions(w http.ResponseWriter, r *http.Request) {
	view, err := h.view(r)
	if err != nil {
		writeLoadError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, assets.ByRegion(view))
}

// GetZones returns the grouped summary by zone.
func (h *Handler) GetZones(w http.ResponseWriter, r *http.Request) {
	view, err := h.view(r)
	if err != nil {
		writeLoadError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, assets.ByZone(view))
}

// GetBreakdown returns the asset-type distribution with percentage shares.
func (h *Handler) GetBreakdown(w http.ResponseWriter, r *http.Request) {
	view, err := h.view(r)
	if err != nil {
		writeLoadError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, assets.Breakdown(assets.Totals(view)))
}

// GetPivot returns the dense region x zone grid.
func (h *Handler) GetPivot(w http.ResponseWriter, r *http.Request) {
	view, err := h.view(r)
	if err != nil {
		writeLoadError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, assets.PivotOf(view))
}

// GetRecords returns the raw filtered rows.
func (h *Handler) GetRecords(w http.ResponseWriter, r *http.Request) {
	view, err := h.view(r)
	if err != nil {
		writeLoadError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, view)
}

// GetDashboard returns the whole per-selection payload in one response.
func (h *Handler) GetDashboard(w http.ResponseWriter, r *http.Request) {
	view, err := h.view(r)
	if err != nil {
		writeLoadError(w, err)
		return
	}
	totals := assets.Totals(view)
	writeJSON(w, http.StatusOK, DashboardDTO{
		Metrics:   metricsOf(totals),
		ByRegion:  assets.ByRegion(view),
		ByZone:    assets.ByZone(view),
		Breakdown: assets.Breakdown(totals),
		Pivot:     assets.PivotOf(view),
		Records:   view,
	})
}

// ExportCSV streams the filtered view as a CSV attachment.
func (h *Handler) ExportCSV(w http.ResponseWriter, r *http.Request) {
	view, err := h.view(r)
	if err != nil {
		writeLoadError(w, err)
		return
	}
	w.Header().Set("Content-Type", assets.ExportMIME)
	w.Header().Set("Content-Disposition",
		fmt.Sprintf("attachment; filename=%q", assets.ExportFilename))
	if err := assets.WriteCSV(w, view); err != nil {
		// Headers are gone; the best we can do is log via the middleware
		// and let the client see a truncated body.
		return
	}
}

func writeLoadError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, assets.ErrConnection):
		writeError(w, http.StatusServiceUnavailable, "database unreachable", err)
	case errors.Is(err, assets.ErrQuery):
		writeError(w, http.StatusInternalServerError, "asset query failed", err)
	default:
		writeError(w, http.StatusInternalServerError, "failed to load asset data", err)
	}
}

func writeJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

func writeError(w http.ResponseWriter, status int, message string, err error) {
	resp := ErrorResponse{Error: message}
	if err != nil {
		resp.Details = err.Error()
	}
	writeJSON(w, status, resp)
}
