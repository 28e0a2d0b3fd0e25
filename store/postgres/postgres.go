/*
Package postgres is the PostgreSQL data source adapter.

PURPOSE:
  Loads the asset_data table into an assets.Table. This is the only
  component that talks to the production database, and it does exactly one
  thing: run the fixed asset query and materialize every row.

DRIVER:
  pgx via its database/sql adapter. Connection settings (host, database,
  user, password, port) come from the environment through config.

ERROR TAXONOMY:
  Reachability and authentication failures wrap assets.ErrConnection;
  query execution and scan failures wrap assets.ErrQuery. A load is a
  single attempt with no retry and no partial result, bounded by the
  configured timeout.

SEE ALSO:
  - store/sqlite: same contract for local runs and tests
  - assets/cache.go: memoizes the loaded table
*/
package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib"

	"github.com/msedcl/asset-dashboard/assets"
)

const loadQuery = `SELECT region_name, z_name, c_name, substation, dtc, ht_pole, lt_pole FROM asset_data`

// DefaultTimeout bounds a whole load (connect + query + scan) when the
// config does not set one.
const DefaultTimeout = 10 * time.Second

// Config carries the connection settings, supplied via environment.
type Config struct {
	Host     string
	Database string
	User     string
	Password string
	Port     int
	Timeout  time.Duration
}

func (cfg Config) dsn() string {
	return fmt.Sprintf("host=%s port=%d dbname=%s user=%s password=%s",
		cfg.Host, cfg.Port, cfg.Database, cfg.User, cfg.Password)
}

// Store implements assets.Loader against PostgreSQL.
type Store struct {
	db      *sql.DB
	timeout time.Duration
}

// Open creates the connection pool. The database is not contacted until
// Load, so invalid credentials surface there, not here.
func Open(cfg Config) (*Store, error) {
	db, err := sql.Open("pgx", cfg.dsn())
	if err != nil {
		return nil, fmt.Errorf("%w: %v", assets.ErrConnection, err)
	}
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &Store{db: db, timeout: timeout}, nil
}

// Close releases the connection pool.
func (s *Store) Close() error {
	return s.db.Close()
}

// Load pings the database, executes the fixed asset query, and materializes
// all rows. The result set is closed unconditionally, including on scan
// failure. NULL cells scan to empty strings and zero counts.
func (s *Store) Load(ctx context.Context) (assets.Table, error) {
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	if err := s.db.PingContext(ctx); err != nil {
		return nil, fmt.Errorf("%w: %v", assets.ErrConnection, err)
	}

	rows, err := s.db.QueryContext(ctx, loadQuery)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", assets.ErrQuery, err)
	}
	defer rows.Close()

	table, err := scanTable(rows)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", assets.ErrQuery, err)
	}
	return table, nil
}

func scanTable(rows *sql.Rows) (assets.Table, error) {
	var table assets.Table
	for rows.Next() {
		var (
			region, zone, circle            sql.NullString
			substation, dtc, htPole, ltPole sql.NullInt64
		)
		if err := rows.Scan(&region, &zone, &circle, &substation, &dtc, &htPole, &ltPole); err != nil {
			return nil, err
		}
		table = append(table, assets.Record{
			Region:      region.String,
			Zone:        zone.String,
			Circle:      circle.String,
			Substations: substation.Int64,
			DTCs:        dtc.Int64,
			HTPoles:     htPole.Int64,
			LTPoles:     ltPole.Int64,
		})
	}
	return table, rows.Err()
}
