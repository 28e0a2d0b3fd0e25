package assets_test

import (
	"reflect"
	"testing"

	"github.com/msedcl/asset-dashboard/assets"
)

// sampleTable is the worked example: three rows across two regions and two
// zones. Reused by the aggregation tests.
func sampleTable() assets.Table {
	return assets.Table{
		{Region: "A", Zone: "X", Substations: 2, DTCs: 1, HTPoles: 0, LTPoles: 0},
		{Region: "A", Zone: "Y", Substations: 3, DTCs: 0, HTPoles: 1, LTPoles: 0},
		{Region: "B", Zone: "X", Substations: 0, DTCs: 5, HTPoles: 0, LTPoles: 2},
	}
}

func TestFilter(t *testing.T) {
	table := sampleTable()

	tests := []struct {
		name    string
		regions assets.Set
		zones   assets.Set
		want    assets.Table
	}{
		{
			name:    "single region both zones",
			regions: assets.NewSet("A"),
			zones:   assets.NewSet("X", "Y"),
			want:    table[:2],
		},
		{
			name:    "full domain is identity",
			regions: assets.NewSet("A", "B"),
			zones:   assets.NewSet("X", "Y"),
			want:    table,
		},
		{
			name:    "empty regions matches nothing",
			regions: assets.NewSet(),
			zones:   assets.NewSet("X", "Y"),
			want:    assets.Table{},
		},
		{
			name:    "empty zones matches nothing",
			regions: assets.NewSet("A", "B"),
			zones:   assets.NewSet(),
			want:    assets.Table{},
		},
		{
			name:    "unknown values match zero rows",
			regions: assets.NewSet("C"),
			zones:   assets.NewSet("X", "Y"),
			want:    assets.Table{},
		},
		{
			name:    "both predicates must hold",
			regions: assets.NewSet("B"),
			zones:   assets.NewSet("Y"),
			want:    assets.Table{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := assets.Filter(table, tt.regions, tt.zones)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Filter() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestFilterReturnsOnlyMatchingRows(t *testing.T) {
	table := sampleTable()
	regions := assets.NewSet("A")
	zones := assets.NewSet("X")

	for _, r := range assets.Filter(table, regions, zones) {
		if !regions.Has(r.Region) || !zones.Has(r.Zone) {
			t.Errorf("row %v escaped the selection", r)
		}
	}
}

func TestOptionsOfFirstSeenOrder(t *testing.T) {
	opts := assets.OptionsOf(sampleTable())

	if !reflect.DeepEqual(opts.Regions, []string{"A", "B"}) {
		t.Errorf("Regions = %v, want [A B]", opts.Regions)
	}
	if !reflect.DeepEqual(opts.Zones, []string{"X", "Y"}) {
		t.Errorf("Zones = %v, want [X Y]", opts.Zones)
	}
}

func TestOptionsOfEmptyTable(t *testing.T) {
	opts := assets.OptionsOf(nil)
	if len(opts.Regions) != 0 || len(opts.Zones) != 0 {
		t.Errorf("expected empty options, got %v", opts)
	}
}
