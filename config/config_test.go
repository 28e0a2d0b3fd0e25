package config

import (
	"testing"
	"time"
)

func TestLoadDefaults(t *testing.T) {
	cfg := Load()

	if cfg.Port != 8080 {
		t.Errorf("Port = %d, want 8080", cfg.Port)
	}
	if cfg.Driver != DriverPostgres {
		t.Errorf("Driver = %q, want %q", cfg.Driver, DriverPostgres)
	}
	if cfg.Database.Port != 5432 {
		t.Errorf("Database.Port = %d, want 5432", cfg.Database.Port)
	}
	if cfg.Database.Timeout != 10*time.Second {
		t.Errorf("Database.Timeout = %v, want 10s", cfg.Database.Timeout)
	}
}

func TestLoadFromEnvironment(t *testing.T) {
	t.Setenv("DB_HOST", "db.internal")
	t.Setenv("DB_NAME", "assets")
	t.Setenv("DB_USER", "dash")
	t.Setenv("DB_PASSWORD", "secret")
	t.Setenv("DB_PORT", "5433")
	t.Setenv("DB_TIMEOUT", "3s")
	t.Setenv("PORT", "9000")

	cfg := Load()

	if cfg.Port != 9000 {
		t.Errorf("Port = %d, want 9000", cfg.Port)
	}
	db := cfg.Database
	if db.Host != "db.internal" || db.Name != "assets" || db.User != "dash" || db.Password != "secret" {
		t.Errorf("unexpected database config: %+v", db)
	}
	if db.Port != 5433 {
		t.Errorf("Database.Port = %d, want 5433", db.Port)
	}
	if db.Timeout != 3*time.Second {
		t.Errorf("Database.Timeout = %v, want 3s", db.Timeout)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		cfg     Config
		wantErr bool
	}{
		{
			name: "postgres with full settings",
			cfg: Config{
				Driver:   DriverPostgres,
				Database: DatabaseConfig{Host: "h", Name: "n", User: "u"},
			},
		},
		{
			name:    "postgres missing host",
			cfg:     Config{Driver: DriverPostgres, Database: DatabaseConfig{Name: "n", User: "u"}},
			wantErr: true,
		},
		{
			name: "sqlite with path",
			cfg:  Config{Driver: DriverSQLite, SQLitePath: ":memory:"},
		},
		{
			name:    "sqlite without path",
			cfg:     Config{Driver: DriverSQLite},
			wantErr: true,
		},
		{
			name:    "unknown driver",
			cfg:     Config{Driver: "oracle"},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}
