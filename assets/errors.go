package assets

import "errors"

// Sentinel errors for the load path, matched with errors.Is. Store adapters
// wrap driver failures into one of these; filtering and aggregation have no
// error conditions at all.
var (
	// ErrConnection is returned when the database cannot be reached or
	// refuses the credentials. Unrecoverable at the point of occurrence:
	// no retry, no partial data.
	ErrConnection = errors.New("database connection failed")

	// ErrQuery is returned when the asset query is rejected, typically a
	// missing table or column. Same policy: the load aborts and the error
	// surfaces to the caller.
	ErrQuery = errors.New("asset query failed")
)
