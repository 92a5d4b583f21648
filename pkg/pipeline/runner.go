package pipeline

import (
	"bytes"
	"context"
	"encoding/json"
	"time"

	"github.com/charmbracelet/log"

	"github.com/collectorsed/collectorsed/pkg/cache"
	"github.com/collectorsed/collectorsed/pkg/errors"
	sedio "github.com/collectorsed/collectorsed/pkg/io"
	"github.com/collectorsed/collectorsed/pkg/observability"
	"github.com/collectorsed/collectorsed/pkg/sed"
	"github.com/collectorsed/collectorsed/pkg/store"
)

// RunData is the cache payload: the flattened report plus the execution
// counters the summary surface reports.
type RunData struct {
	Rows   []sed.Row `json:"rows"`
	Passes int       `json:"passes"`
	Sweeps int       `json:"sweeps"`
}

// Runner encapsulates pipeline execution with caching and archiving.
//
// The Runner is stateless except for the cache, store, and logger - it
// doesn't hold run results. Multiple goroutines can safely use the same
// Runner with different options.
type Runner struct {
	Cache  cache.Cache
	Store  store.Store
	Logger *log.Logger
}

// NewRunner creates a runner with the given cache and store.
// If cache is nil, a NullCache is used (caching disabled).
// If store is nil, runs are not archived.
func NewRunner(c cache.Cache, s store.Store, logger *log.Logger) *Runner {
	if c == nil {
		c = cache.NewNullCache()
	}
	if logger == nil {
		logger = log.Default()
	}
	return &Runner{
		Cache:  c,
		Store:  s,
		Logger: logger,
	}
}

// Execute runs the complete simulate → report → export pipeline with caching.
func (r *Runner) Execute(ctx context.Context, opts Options) (*Result, error) {
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return nil, err
	}
	r.applyLogger(&opts)

	result := &Result{
		Artifacts: make(map[string][]byte),
	}

	// Stage 1+2: Simulate and flatten, via the cache when possible.
	simStart := time.Now()
	run, hit, err := r.SimulateWithCacheInfo(ctx, opts)
	if err != nil {
		return nil, err
	}
	result.Rows = run.Rows
	result.Stats.SimulateTime = time.Since(simStart)
	result.Stats.Passes = run.Passes
	result.Stats.Sweeps = run.Sweeps
	result.Stats.RowCount = len(run.Rows)
	result.CacheInfo.RunHit = hit

	r.Logger.Info("simulated section",
		"cells", opts.Scenario.CellCount,
		"passes", run.Passes,
		"sweeps", run.Sweeps,
		"rows", len(run.Rows),
		"cached", hit,
		"duration", result.Stats.SimulateTime)

	// Archive before export so the run ID is available either way.
	if r.Store != nil && !opts.NoArchive {
		rec := store.NewRun(opts.Scenario, run.Rows, run.Passes, run.Sweeps)
		if err := r.Store.SaveRun(ctx, rec); err != nil {
			observability.Store().OnStoreError(ctx, "save", err)
			return nil, errors.Wrap(errors.ErrCodeInternal, err, "archiving run")
		}
		observability.Store().OnRunSaved(ctx, rec.ID, len(rec.Rows))
		result.RunID = rec.ID
		r.Logger.Info("archived run", "id", rec.ID)
	}

	// Stage 3: Export.
	exportStart := time.Now()
	for _, format := range opts.Formats {
		data, err := encodeRows(run.Rows, format)
		if err != nil {
			return nil, errors.Wrap(errors.ErrCodeInternal, err, "exporting %s", format)
		}
		result.Artifacts[format] = data
	}
	result.Stats.ExportTime = time.Since(exportStart)

	r.Logger.Info("exported report",
		"formats", opts.Formats,
		"duration", result.Stats.ExportTime)

	return result, nil
}

// SimulateWithCacheInfo produces the flattened report for a scenario, using
// the cache when possible, and reports whether the result was a cache hit.
func (r *Runner) SimulateWithCacheInfo(ctx context.Context, opts Options) (RunData, bool, error) {
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return RunData{}, false, err
	}
	r.applyLogger(&opts)

	key := cache.Key(opts.Scenario)

	// Try cache first (unless refresh requested)
	if !opts.Refresh {
		if data, hit, err := r.Cache.Get(ctx, key); err == nil && hit {
			var cached RunData
			if err := json.Unmarshal(data, &cached); err == nil {
				observability.Cache().OnCacheHit(ctx, "run")
				return cached, true, nil
			}
			// Corrupt entry: fall through and recompute.
		}
		observability.Cache().OnCacheMiss(ctx, "run")
	}

	run, err := r.simulate(ctx, opts)
	if err != nil {
		return RunData{}, false, err
	}

	// Cache the result
	if !opts.Refresh {
		if data, err := json.Marshal(run); err == nil {
			_ = r.Cache.Set(ctx, key, data, cache.TTLRun)
			observability.Cache().OnCacheSet(ctx, "run", len(data))
		}
	}

	return run, false, nil
}

// simulate builds a fresh section, runs the collector over the scenario's
// working range pass by pass, and flattens the result.
func (r *Runner) simulate(ctx context.Context, opts Options) (RunData, error) {
	start := time.Now()
	observability.Simulation().OnRunStart(ctx, opts.Scenario.CellCount)

	section, err := opts.Scenario.Section()
	if err != nil {
		observability.Simulation().OnRunComplete(ctx, 0, 0, time.Since(start), err)
		return RunData{}, err
	}

	// Passes run one cell at a time so the per-pass redistribution hook can
	// fire with that pass's sweep count. Labels continue across calls, so
	// this is equivalent to one Run over the full range.
	lo, hi := opts.Scenario.Bounds()
	if lo < 0 {
		lo = 0
	}
	if hi > section.CellCount() {
		hi = section.CellCount()
	}
	var cells []int
	for i := lo; i < hi; i++ {
		cells = append(cells, i)
	}
	cells = append(cells, opts.Scenario.ExtraCells...)

	for _, i := range cells {
		before := section.TotalSweeps()
		if err := section.Run(i, i+1); err != nil {
			observability.Simulation().OnRunComplete(ctx, section.Passes(), section.TotalSweeps(), time.Since(start), err)
			return RunData{}, err
		}
		observability.Simulation().OnRedistributeComplete(ctx, i, section.TotalSweeps()-before)
	}

	run := RunData{
		Rows:   section.Flatten(),
		Passes: section.Passes(),
		Sweeps: section.TotalSweeps(),
	}
	observability.Simulation().OnRunComplete(ctx, run.Passes, run.Sweeps, time.Since(start), nil)
	return run, nil
}

// encodeRows renders the row table in one export format.
func encodeRows(rows []sed.Row, format string) ([]byte, error) {
	var buf bytes.Buffer
	switch format {
	case FormatJSON:
		if err := sedio.WriteJSON(rows, &buf); err != nil {
			return nil, err
		}
	case FormatCSV:
		if err := sedio.WriteCSV(rows, &buf); err != nil {
			return nil, err
		}
	default:
		return nil, ValidateFormat(format)
	}
	return buf.Bytes(), nil
}

// Close releases resources held by the runner (the cache and the store).
func (r *Runner) Close(ctx context.Context) error {
	var firstErr error
	if r.Cache != nil {
		if err := r.Cache.Close(); err != nil {
			firstErr = err
		}
	}
	if r.Store != nil {
		if err := r.Store.Close(ctx); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	return firstErr
}

// applyLogger sets the runner's logger on options if not already set.
func (r *Runner) applyLogger(opts *Options) {
	if opts.Logger == nil {
		opts.Logger = r.Logger
	}
}
