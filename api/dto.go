/*
dto.go - Response types for the dashboard API

PURPOSE:
  Defines the JSON structures handed to the front end. They decouple the
  domain types from the external contract; chart-ready shapes live here,
  computation lives in the assets package.

NAMING CONVENTION:
  *DTO: response types returned to clients.

SEE ALSO:
  - handlers.go: builds these from the filtered view
*/
package api

import "github.com/msedcl/asset-dashboard/assets"

// MetricDTO is one labeled headline metric.
type MetricDTO struct {
	Label string `json:"label"`
	Value int64  `json:"value"`
}

// FiltersDTO lists the option sets for the two multi-select controls. The
// default selection is the full set of each.
type FiltersDTO struct {
	Regions []string `json:"regions"`
	Zones   []string `json:"zones"`
}

// DashboardDTO is the full per-selection payload: everything a front end
// renders on one filter change. Records double as the scatter plot input
// (dtc vs substation, colored by region, zone/circle on hover) and the raw
// data table.
type DashboardDTO struct {
	Metrics   []MetricDTO    `json:"metrics"`
	ByRegion  []assets.Group `json:"by_region"`
	ByZone    []assets.Group `json:"by_zone"`
	Breakdown []assets.Slice `json:"breakdown"`
	Pivot     assets.Pivot   `json:"pivot"`
	Records   assets.Table   `json:"records"`
}

// ErrorResponse is the JSON error envelope.
type ErrorResponse struct {
	Error   string `json:"error"`
	Details string `json:"details,omitempty"`
}

func metricsOf(totals assets.Counts) []MetricDTO {
	return []MetricDTO{
		{Label: "Total Substations", Value: totals.Substations},
		{Label: "Total DTCs", Value: totals.DTCs},
		{Label: "Total HT Poles", Value: totals.HTPoles},
		{Label: "Total LT Poles", Value: totals.LTPoles},
	}
}
