/*
Package sqlite is a SQLite-backed data source adapter.

PURPOSE:
  Implements the same Loader contract as store/postgres against a local
  SQLite file (or ":memory:"), so the dashboard can run without a
  PostgreSQL instance. Used for demos and as the store under test.

SCHEMA:
  A single asset_data table mirroring the production columns. The schema is
  auto-migrated on New().

WAL MODE:
  The database is opened with WAL so the server's concurrent readers do not
  block each other.

USAGE:
  store, err := sqlite.New(":memory:")
  if err != nil {
      log.Fatal(err)
  }
  defer store.Close()
  err = store.Insert(ctx, sqlite.Demo())

SEE ALSO:
  - store/postgres: the production adapter
  - assets/cache.go: memoizes the loaded table
*/
package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	_ "github.com/mattn/go-sqlite3"

	"github.com/msedcl/asset-dashboard/assets"
)

const loadQuery = `SELECT region_name, z_name, c_name, substation, dtc, ht_pole, lt_pole FROM asset_data`

// Store implements assets.Loader using SQLite.
type Store struct {
	db *sql.DB
}

// New opens the database at path and migrates the schema. Use ":memory:"
// for an in-memory database.
func New(path string) (*Store, error) {
	db, err := sql.Open("sqlite3", path+"?_journal_mode=WAL")
	if err != nil {
		return nil, fmt.Errorf("%w: %v", assets.ErrConnection, err)
	}

	store := &Store{db: db}
	if err := store.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to migrate database: %w", err)
	}
	return store, nil
}

// Close closes the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) migrate() error {
	schema := `
	-- Mirrors the production asset_data table, which carries no
	-- constraints; NULL cells are normalized at scan time instead.
	CREATE TABLE IF NOT EXISTS asset_data (
		region_name TEXT,
		z_name      TEXT,
		c_name      TEXT,
		substation  INTEGER,
		dtc         INTEGER,
		ht_pole     INTEGER,
		lt_pole     INTEGER
	);`
	_, err := s.db.Exec(schema)
	return err
}

// Insert appends records to asset_data in one transaction.
func (s *Store) Insert(ctx context.Context, records []assets.Record) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("%w: %v", assets.ErrQuery, err)
	}
	defer tx.Rollback()

	stmt, err := tx.PrepareContext(ctx, `
		INSERT INTO asset_data (region_name, z_name, c_name, substation, dtc, ht_pole, lt_pole)
		VALUES (?, ?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return fmt.Errorf("%w: %v", assets.ErrQuery, err)
	}
	defer stmt.Close()

	for _, r := range records {
		if _, err := stmt.ExecContext(ctx, r.Region, r.Zone, r.Circle,
			r.Substations, r.DTCs, r.HTPoles, r.LTPoles); err != nil {
			return fmt.Errorf("%w: %v", assets.ErrQuery, err)
		}
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("%w: %v", assets.ErrQuery, err)
	}
	return nil
}

// Load executes the fixed asset query and materializes all rows, with the
// same error taxonomy as the PostgreSQL adapter.
func (s *Store) Load(ctx context.Context) (assets.Table, error) {
	if err := s.db.PingContext(ctx); err != nil {
		return nil, fmt.Errorf("%w: %v", assets.ErrConnection, err)
	}

	rows, err := s.db.QueryContext(ctx, loadQuery)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", assets.ErrQuery, err)
	}
	defer rows.Close()

	var table assets.Table
	for rows.Next() {
		var (
			region, zone, circle            sql.NullString
			substation, dtc, htPole, ltPole sql.NullInt64
		)
		if err := rows.Scan(&region, &zone, &circle, &substation, &dtc, &htPole, &ltPole); err != nil {
			return nil, fmt.Errorf("%w: %v", assets.ErrQuery, err)
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
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %v", assets.ErrQuery, err)
	}
	return table, nil
}
