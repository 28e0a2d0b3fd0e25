/*
main.go - Application entry point

PURPOSE:
  Starts the power infrastructure asset dashboard server: loads
  configuration, opens the data source, warms the table cache, and serves
  the dashboard API with graceful shutdown.

CONFIGURATION:
  Environment (see config package): DB_HOST, DB_NAME, DB_USER, DB_PASSWORD,
  DB_PORT, DB_TIMEOUT, DB_DRIVER, SQLITE_PATH, PORT.

COMMAND-LINE FLAGS (override the environment):
  -port     HTTP server port
  -driver   Database driver: postgres (default) or sqlite3
  -db       SQLite database path, ":memory:" accepted
  -seed     Seed the SQLite database with demo data before serving

GRACEFUL SHUTDOWN:
  On SIGINT/SIGTERM: stop accepting connections, drain for up to 30s,
  close the database, exit.

EXAMPLES:
  # Against PostgreSQL
  DB_HOST=db.internal DB_NAME=assets DB_USER=dash DB_PASSWORD=... ./server

  # Local demo without a database server
  ./server -driver=sqlite3 -db=":memory:" -seed

SEE ALSO:
  - api/server.go: router configuration
  - store/postgres, store/sqlite: data source adapters
*/
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/msedcl/asset-dashboard/api"
	"github.com/msedcl/asset-dashboard/assets"
	"github.com/msedcl/asset-dashboard/config"
	"github.com/msedcl/asset-dashboard/store/postgres"
	"github.com/msedcl/asset-dashboard/store/sqlite"
)

func main() {
	cfg := config.Load()

	port := flag.Int("port", cfg.Port, "HTTP server port")
	driver := flag.String("driver", cfg.Driver, "Database driver: postgres or sqlite3")
	dbPath := flag.String("db", cfg.SQLitePath, "SQLite database path (sqlite3 driver only)")
	seed := flag.Bool("seed", false, "Seed the SQLite database with demo data")
	flag.Parse()

	cfg.Port = *port
	cfg.Driver = *driver
	cfg.SQLitePath = *dbPath

	if err := cfg.Validate(); err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}

	loader, closer, err := openStore(cfg, *seed)
	if err != nil {
		log.Fatalf("Failed to open data source: %v", err)
	}
	defer closer.Close()

	cache := assets.NewCache(loader)

	// Warm the cache so the first request doesn't pay for the load. A
	// failure here is not fatal: it is reported again, per request, by the
	// API layer.
	if table, err := cache.Get(context.Background()); err != nil {
		log.Printf("Warning: initial load failed: %v", err)
	} else {
		log.Printf("Loaded %d asset rows", len(table))
	}

	router := api.NewRouter(api.NewHandler(cache))

	server := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Port),
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		log.Printf("Dashboard serving on http://localhost:%d", cfg.Port)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server failed: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		log.Fatalf("Server forced to shutdown: %v", err)
	}

	log.Println("Server stopped")
}

// openStore constructs the configured data source adapter.
func openStore(cfg config.Config, seed bool) (assets.Loader, io.Closer, error) {
	switch cfg.Driver {
	case config.DriverSQLite:
		store, err := sqlite.New(cfg.SQLitePath)
		if err != nil {
			return nil, nil, err
		}
		if seed {
			if err := store.Insert(context.Background(), sqlite.Demo()); err != nil {
				store.Close()
				return nil, nil, err
			}
		}
		return store, store, nil
	default:
		store, err := postgres.Open(postgres.Config{
			Host:     cfg.Database.Host,
			Database: cfg.Database.Name,
			User:     cfg.Database.User,
			Password: cfg.Database.Password,
			Port:     cfg.Database.Port,
			Timeout:  cfg.Database.Timeout,
		})
		if err != nil {
			return nil, nil, err
		}
		return store, store, nil
	}
}
