// Package cache provides result caching for simulation runs.
//
// The engine is deterministic: the same scenario always produces the same
// flattened report. The dashboard-style workflow re-requests the same
// parameter sets constantly (every slider release), so runs are cached under
// a hash of the scenario's canonical encoding and replayed instead of
// re-simulated.
//
// Three backends are provided:
//   - FileCache: per-user cache directory, for CLI use
//   - RedisCache: shared cache for hosted deployments
//   - NullCache: caching disabled, for tests and --no-cache
package cache

import (
	"context"
	"encoding/json"
	"time"

	"github.com/collectorsed/collectorsed/pkg/scenario"
)

// TTLRun is how long cached run results live. Runs are deterministic, so the
// TTL only bounds disk growth, not staleness.
const TTLRun = 7 * 24 * time.Hour

// Cache stores encoded run results keyed by scenario hash.
// Implementations must tolerate concurrent use from multiple processes; the
// values are immutable once written, so last-write-wins is acceptable.
type Cache interface {
	// Get retrieves a value. The second return reports whether the key was
	// present and unexpired.
	Get(ctx context.Context, key string) ([]byte, bool, error)

	// Set stores a value. A non-positive ttl stores it without expiry.
	Set(ctx context.Context, key string, data []byte, ttl time.Duration) error

	// Delete removes a value. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error

	// Close releases any backend resources.
	Close() error
}

// Key derives the cache key for a scenario from its canonical JSON encoding.
// Identical parameter sets hash identically regardless of how they were
// loaded.
func Key(sc scenario.Scenario) string {
	// The name is a display label, not a parameter: two scenarios differing
	// only by name are the same run.
	sc.Name = ""
	data, _ := json.Marshal(sc)
	return "run:" + Hash(data)
}
