package assets

// Filter returns the subsequence of table whose region is in regions AND
// whose zone is in zones, preserving table order. An empty regions or zones
// set matches nothing; values absent from the table simply match zero rows.
// Filter never fails: it is total over its input domain.
func Filter(table Table, regions, zones Set) Table {
	view := make(Table, 0, len(table))
	for _, r := range table {
		if regions.Has(r.Region) && zones.Has(r.Zone) {
			view = append(view, r)
		}
	}
	return view
}
