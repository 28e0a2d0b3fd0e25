package assets

import (
	"encoding/csv"
	"io"
	"strconv"
)

// ExportFilename is the download name offered for the filtered extract.
const ExportFilename = "filtered_power_infrastructure_data.csv"

// ExportMIME is the media type of the extract.
const ExportMIME = "text/csv"

var csvHeader = []string{"region_name", "z_name", "c_name", "substation", "dtc", "ht_pole", "lt_pole"}

// WriteCSV serializes the view as comma-separated text: one header row,
// one row per record in view order, no index column. The output round-trips
// exactly back into the view's rows and values.
func WriteCSV(w io.Writer, view Table) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(csvHeader); err != nil {
		return err
	}
	for _, r := range view {
		row := []string{
			r.Region,
			r.Zone,
			r.Circle,
			strconv.FormatInt(r.Substations, 10),
			strconv.FormatInt(r.DTCs, 10),
			strconv.FormatInt(r.HTPoles, 10),
			strconv.FormatInt(r.LTPoles, 10),
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}
