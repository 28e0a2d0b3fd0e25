/*
aggregate.go - Summaries over a filtered view

Every operation here is a pure function of its view: totals for the four
headline metrics, grouped summaries for the two bar charts, the dense
region × zone pivot for the heatmap, and the asset-type breakdown for the
pie chart.

ORDERING:
  Grouped summaries and pivot axes use first-seen order, i.e. the order
  categories appear in the view. Load order is stable, so results are
  deterministic for a given table and selection.
*/
package assets

import "github.com/shopspring/decimal"

// Group is one partition of a grouped summary.
type Group struct {
	Key string `json:"key"`
	Counts
}

// Totals sums the four asset columns across the view. An empty view yields
// all-zero totals.
func Totals(view Table) Counts {
	var t Counts
	for _, r := range view {
		t.add(r)
	}
	return t
}

// ByRegion partitions the view by region and sums each partition.
func ByRegion(view Table) []Group {
	return groupBy(view, func(r Record) string { return r.Region })
}

// ByZone partitions the view by zone and sums each partition.
func ByZone(view Table) []Group {
	return groupBy(view, func(r Record) string { return r.Zone })
}

func groupBy(view Table, key func(Record) string) []Group {
	groups := make([]Group, 0)
	index := make(map[string]int)
	for _, r := range view {
		k := key(r)
		i, ok := index[k]
		if !ok {
			i = len(groups)
			index[k] = i
			groups = append(groups, Group{Key: k})
		}
		groups[i].add(r)
	}
	return groups
}

// Pivot is the dense region × zone grid behind the heatmap. Regions and
// Zones hold the distinct values observed in the view, in first-seen order;
// Cells[i][j] sums the rows with Regions[i] and Zones[j]. Combinations with
// no rows are present as zero cells, so the grid always covers the full
// observed cross-product.
type Pivot struct {
	Regions []string   `json:"regions"`
	Zones   []string   `json:"zones"`
	Cells   [][]Counts `json:"cells"`
}

// PivotOf cross-tabulates the view by (region, zone).
func PivotOf(view Table) Pivot {
	opts := OptionsOf(view)
	p := Pivot{
		Regions: opts.Regions,
		Zones:   opts.Zones,
		Cells:   make([][]Counts, len(opts.Regions)),
	}

	rowIndex := make(map[string]int, len(p.Regions))
	for i, region := range p.Regions {
		rowIndex[region] = i
		p.Cells[i] = make([]Counts, len(p.Zones))
	}
	colIndex := make(map[string]int, len(p.Zones))
	for j, zone := range p.Zones {
		colIndex[zone] = j
	}

	for _, r := range view {
		p.Cells[rowIndex[r.Region]][colIndex[r.Zone]].add(r)
	}
	return p
}

// Slice is one asset type's share of the filtered grand total, as rendered
// by the distribution pie chart.
type Slice struct {
	Label string          `json:"label"`
	Total int64           `json:"total"`
	Share decimal.Decimal `json:"share"`
}

// Breakdown expands totals into the four asset-type slices. Share is the
// percentage of the grand total, rounded to two places; an all-zero totals
// yields zero shares rather than dividing by zero.
func Breakdown(t Counts) []Slice {
	slices := []Slice{
		{Label: "Substations", Total: t.Substations},
		{Label: "DTCs", Total: t.DTCs},
		{Label: "HT Poles", Total: t.HTPoles},
		{Label: "LT Poles", Total: t.LTPoles},
	}

	grand := t.GrandTotal()
	if grand == 0 {
		for i := range slices {
			slices[i].Share = decimal.Zero
		}
		return slices
	}

	hundred := decimal.NewFromInt(100)
	divisor := decimal.NewFromInt(grand)
	for i := range slices {
		slices[i].Share = decimal.NewFromInt(slices[i].Total).Mul(hundred).DivRound(divisor, 2)
	}
	return slices
}
