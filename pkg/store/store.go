// Package store archives completed simulation runs.
//
// A [Run] is an immutable record of one finished simulation: the scenario
// that produced it, the flattened report, and execution counters. Archiving
// is distinct from result caching: the cache trades recomputation for speed
// and may evict freely, while the archive is the durable record a host
// environment lists, reloads, and compares across runs.
//
// Two backends are provided: [MemoryStore] for tests and single-shot CLI
// use, and [MongoStore] for hosted deployments.
package store

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/collectorsed/collectorsed/pkg/scenario"
	"github.com/collectorsed/collectorsed/pkg/sed"
)

// Run is one archived simulation run.
type Run struct {
	ID        string            `json:"id" bson:"_id"`
	Name      string            `json:"name,omitempty" bson:"name,omitempty"`
	CreatedAt time.Time         `json:"created_at" bson:"created_at"`
	Scenario  scenario.Scenario `json:"scenario" bson:"scenario"`
	Passes    int               `json:"passes" bson:"passes"`
	Sweeps    int               `json:"sweeps" bson:"sweeps"`
	Rows      []sed.Row         `json:"rows" bson:"rows"`
}

// Summary is the listing form of a run, without the row table.
type Summary struct {
	ID        string    `json:"id" bson:"_id"`
	Name      string    `json:"name,omitempty" bson:"name,omitempty"`
	CreatedAt time.Time `json:"created_at" bson:"created_at"`
	CellCount int       `json:"cell_count" bson:"cell_count"`
	Passes    int       `json:"passes" bson:"passes"`
}

// NewRun builds an archive record for a completed simulation with a fresh
// UUID and the current UTC timestamp.
func NewRun(sc scenario.Scenario, rows []sed.Row, passes, sweeps int) *Run {
	return &Run{
		ID:        uuid.NewString(),
		Name:      sc.Name,
		CreatedAt: time.Now().UTC(),
		Scenario:  sc,
		Passes:    passes,
		Sweeps:    sweeps,
		Rows:      rows,
	}
}

// summary derives the listing form of a run.
func (r *Run) summary() Summary {
	return Summary{
		ID:        r.ID,
		Name:      r.Name,
		CreatedAt: r.CreatedAt,
		CellCount: r.Scenario.CellCount,
		Passes:    r.Passes,
	}
}

// Store persists completed runs.
type Store interface {
	// SaveRun stores a run. Saving an existing ID overwrites it.
	SaveRun(ctx context.Context, run *Run) error

	// GetRun loads a run by ID. Returns a RUN_NOT_FOUND coded error for
	// unknown IDs.
	GetRun(ctx context.Context, id string) (*Run, error)

	// ListRuns returns summaries of the most recent runs, newest first.
	// A non-positive limit lists everything.
	ListRuns(ctx context.Context, limit int) ([]Summary, error)

	// DeleteRun removes a run by ID. Returns a RUN_NOT_FOUND coded error
	// for unknown IDs.
	DeleteRun(ctx context.Context, id string) error

	// Close releases any backend resources.
	Close(ctx context.Context) error
}
