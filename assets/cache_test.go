package assets_test

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/msedcl/asset-dashboard/assets"
)

// countingLoader serves a fixed table and counts how many loads ran,
// optionally failing the first n calls.
type countingLoader struct {
	table    assets.Table
	failures int32
	calls    atomic.Int32
}

func (l *countingLoader) Load(ctx context.Context) (assets.Table, error) {
	n := l.calls.Add(1)
	if n <= l.failures {
		return nil, assets.ErrConnection
	}
	return l.table, nil
}

func TestCacheLoadsOnce(t *testing.T) {
	loader := &countingLoader{table: sampleTable()}
	cache := assets.NewCache(loader)
	ctx := context.Background()

	for i := 0; i < 5; i++ {
		table, err := cache.Get(ctx)
		if err != nil {
			t.Fatalf("Get() error: %v", err)
		}
		if len(table) != len(loader.table) {
			t.Fatalf("Get() returned %d rows, want %d", len(table), len(loader.table))
		}
	}

	if got := loader.calls.Load(); got != 1 {
		t.Errorf("loader ran %d times, want 1", got)
	}
}

func TestCacheAtMostOnceUnderConcurrency(t *testing.T) {
	loader := &countingLoader{table: sampleTable()}
	cache := assets.NewCache(loader)

	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			table, err := cache.Get(context.Background())
			if err != nil {
				t.Errorf("Get() error: %v", err)
				return
			}
			// Every reader must observe the fully populated table.
			if len(table) != 3 {
				t.Errorf("Get() returned partial table: %d rows", len(table))
			}
		}()
	}
	wg.Wait()

	if got := loader.calls.Load(); got != 1 {
		t.Errorf("loader ran %d times, want 1", got)
	}
}

func TestCacheDoesNotCacheFailures(t *testing.T) {
	loader := &countingLoader{table: sampleTable(), failures: 1}
	cache := assets.NewCache(loader)
	ctx := context.Background()

	if _, err := cache.Get(ctx); !errors.Is(err, assets.ErrConnection) {
		t.Fatalf("first Get() error = %v, want ErrConnection", err)
	}

	table, err := cache.Get(ctx)
	if err != nil {
		t.Fatalf("second Get() error: %v", err)
	}
	if len(table) != 3 {
		t.Fatalf("second Get() returned %d rows, want 3", len(table))
	}

	// The successful load is now memoized.
	if _, err := cache.Get(ctx); err != nil {
		t.Fatalf("third Get() error: %v", err)
	}
	if got := loader.calls.Load(); got != 2 {
		t.Errorf("loader ran %d times, want 2", got)
	}
}
