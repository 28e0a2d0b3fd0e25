package assets_test

import (
	"bytes"
	"encoding/csv"
	"strconv"
	"testing"

	"github.com/msedcl/asset-dashboard/assets"
)

func TestWriteCSVRoundTrip(t *testing.T) {
	view := assets.Table{
		{Region: "A", Zone: "X", Circle: "C1", Substations: 2, DTCs: 1},
		{Region: "A", Zone: "Y", Circle: "C2", Substations: 3, HTPoles: 1},
		{Region: "B", Zone: "X", Circle: "C3", DTCs: 5, LTPoles: 2},
	}

	var buf bytes.Buffer
	if err := assets.WriteCSV(&buf, view); err != nil {
		t.Fatalf("WriteCSV() error: %v", err)
	}

	records, err := csv.NewReader(&buf).ReadAll()
	if err != nil {
		t.Fatalf("exported CSV does not parse: %v", err)
	}

	header := []string{"region_name", "z_name", "c_name", "substation", "dtc", "ht_pole", "lt_pole"}
	if len(records) != len(view)+1 {
		t.Fatalf("expected %d lines, got %d", len(view)+1, len(records))
	}
	for i, col := range header {
		if records[0][i] != col {
			t.Errorf("header[%d] = %q, want %q", i, records[0][i], col)
		}
	}

	for i, r := range view {
		row := records[i+1]
		if row[0] != r.Region || row[1] != r.Zone || row[2] != r.Circle {
			t.Errorf("row %d categories = %v, want %v", i, row[:3], r)
		}
		for j, want := range []int64{r.Substations, r.DTCs, r.HTPoles, r.LTPoles} {
			got, err := strconv.ParseInt(row[3+j], 10, 64)
			if err != nil {
				t.Fatalf("row %d column %d is not an integer: %v", i, 3+j, err)
			}
			if got != want {
				t.Errorf("row %d column %d = %d, want %d", i, 3+j, got, want)
			}
		}
	}
}

func TestWriteCSVEmptyView(t *testing.T) {
	var buf bytes.Buffer
	if err := assets.WriteCSV(&buf, assets.Table{}); err != nil {
		t.Fatalf("WriteCSV() error: %v", err)
	}
	if buf.String() != "region_name,z_name,c_name,substation,dtc,ht_pole,lt_pole\n" {
		t.Errorf("empty view should export just the header, got %q", buf.String())
	}
}
