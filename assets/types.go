/*
Package assets is the domain core of the asset dashboard.

PURPOSE:
  Holds the in-memory snapshot of the asset_data table, the filter and
  aggregation operations that drive every metric and chart, the CSV
  extract, and the process-wide table cache.

DATA FLOW:
  store adapter -> Cache (load once) -> Filter -> Totals/ByRegion/ByZone/
  PivotOf/Breakdown -> api handlers

DESIGN:
  Everything downstream of the load is a pure function: a filtered view is
  a fresh slice over shared immutable records, and every summary is
  recomputed per request. Nothing in this package touches the database or
  the network.

SEE ALSO:
  - store/postgres, store/sqlite: Loader implementations
  - api/handlers.go: HTTP delivery of these outputs
*/
package assets

// Record is one row of the asset_data table. Rows carry no identity and are
// interchangeable units of aggregation. Circle is display-only; it never
// participates in filtering or grouping.
type Record struct {
	Region      string `json:"region_name"`
	Zone        string `json:"z_name"`
	Circle      string `json:"c_name"`
	Substations int64  `json:"substation"`
	DTCs        int64  `json:"dtc"`
	HTPoles     int64  `json:"ht_pole"`
	LTPoles     int64  `json:"lt_pole"`
}

// Table is the full in-memory snapshot of asset_data, in load order.
// Immutable after load: derived views reslice and copy, never mutate.
type Table []Record

// Counts holds the four summed asset columns. The zero value is a valid
// all-zero summary.
type Counts struct {
	Substations int64 `json:"substation"`
	DTCs        int64 `json:"dtc"`
	HTPoles     int64 `json:"ht_pole"`
	LTPoles     int64 `json:"lt_pole"`
}

func (c *Counts) add(r Record) {
	c.Substations += r.Substations
	c.DTCs += r.DTCs
	c.HTPoles += r.HTPoles
	c.LTPoles += r.LTPoles
}

// GrandTotal is the sum of all four columns.
func (c Counts) GrandTotal() int64 {
	return c.Substations + c.DTCs + c.HTPoles + c.LTPoles
}

// Set is a membership set of category values.
type Set map[string]struct{}

// NewSet builds a Set from the given values.
func NewSet(values ...string) Set {
	s := make(Set, len(values))
	for _, v := range values {
		s[v] = struct{}{}
	}
	return s
}

// Has reports whether v is a member.
func (s Set) Has(v string) bool {
	_, ok := s[v]
	return ok
}

// Options are the distinct category values observed in a table, in
// first-seen order. They populate the two filter controls; the default
// selection is the full set of each.
type Options struct {
	Regions []string `json:"regions"`
	Zones   []string `json:"zones"`
}

// OptionsOf scans the table once and collects its distinct regions and
// zones in first-seen order.
func OptionsOf(table Table) Options {
	var opts Options
	seenRegion := make(map[string]struct{})
	seenZone := make(map[string]struct{})
	for _, r := range table {
		if _, ok := seenRegion[r.Region]; !ok {
			seenRegion[r.Region] = struct{}{}
			opts.Regions = append(opts.Regions, r.Region)
		}
		if _, ok := seenZone[r.Zone]; !ok {
			seenZone[r.Zone] = struct{}{}
			opts.Zones = append(opts.Zones, r.Zone)
		}
	}
	return opts
}
