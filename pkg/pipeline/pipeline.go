// Package pipeline provides the core run pipeline for collectorsed.
//
// This package implements the complete simulate → report → export pipeline
// that can be used by CLI, API, and worker components. By centralizing this
// logic, we ensure consistent behavior across all entry points and avoid code
// duplication.
//
// # Architecture
//
// The pipeline consists of three stages:
//
//  1. Simulate: Run the collector over the section per the scenario
//  2. Report: Flatten the section's layer stacks into the row table
//  3. Export: Encode the table in the requested formats (JSON, CSV)
//
// Simulation results are cached by scenario hash, and completed runs are
// archived to a store when one is configured.
//
// # Usage
//
// Create a Runner and execute the pipeline:
//
//	runner := pipeline.NewRunner(cache, store, logger)
//	opts := pipeline.Options{
//	    Scenario: scenario.Default(),
//	    Formats:  []string{"json"},
//	}
//	result, err := runner.Execute(ctx, opts)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	report := result.Artifacts["json"]
package pipeline

import (
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/collectorsed/collectorsed/pkg/errors"
	"github.com/collectorsed/collectorsed/pkg/scenario"
	"github.com/collectorsed/collectorsed/pkg/sed"
)

// Format constants for output formats.
const (
	FormatJSON = "json"
	FormatCSV  = "csv"
)

// ValidFormats is the set of supported output formats.
var ValidFormats = map[string]bool{
	FormatJSON: true,
	FormatCSV:  true,
}

// Options contains all configuration for one pipeline run.
// This struct supports JSON serialization for API requests.
type Options struct {
	// Scenario is the full parameter set of the run.
	Scenario scenario.Scenario `json:"scenario"`

	// Formats selects the export encodings. Defaults to JSON only.
	Formats []string `json:"formats,omitempty"`

	// Refresh bypasses the cache and recomputes the run.
	Refresh bool `json:"refresh,omitempty"`

	// NoArchive skips writing the run to the store.
	NoArchive bool `json:"no_archive,omitempty"`

	// Runtime options (not serialized)
	Logger *log.Logger `json:"-"`

	// validated tracks whether ValidateAndSetDefaults has been called.
	validated bool `json:"-"`
}

// Result contains the outputs of a pipeline run.
type Result struct {
	// RunID is the archive ID, empty when archiving was skipped.
	RunID string

	// Rows is the flattened report.
	Rows []sed.Row

	// Artifacts contains exported encodings keyed by format.
	Artifacts map[string][]byte

	// Stats contains timing and size information.
	Stats Stats

	// CacheInfo tracks whether the run came from the cache.
	CacheInfo CacheInfo
}

// Stats contains pipeline execution statistics.
type Stats struct {
	Passes       int
	Sweeps       int
	RowCount     int
	SimulateTime time.Duration
	ExportTime   time.Duration
}

// CacheInfo tracks cache participation for the run.
type CacheInfo struct {
	RunHit bool // Whether the flattened report came from cache
}

// ValidateFormat checks that a format is valid.
func ValidateFormat(format string) error {
	if !ValidFormats[format] {
		return errors.New(errors.ErrCodeInvalidFormat, "invalid format: %q (must be one of: json, csv)", format)
	}
	return nil
}

// ValidateFormats checks that all formats are valid.
func ValidateFormats(formats []string) error {
	for _, f := range formats {
		if err := ValidateFormat(f); err != nil {
			return err
		}
	}
	return nil
}

// ValidateAndSetDefaults checks the scenario and formats and applies defaults.
// This method is idempotent - calling it multiple times has the same effect
// as calling it once.
func (o *Options) ValidateAndSetDefaults() error {
	if o.validated {
		return nil
	}
	if err := o.Scenario.Validate(); err != nil {
		return err
	}
	if len(o.Formats) == 0 {
		o.Formats = []string{FormatJSON}
	}
	if err := ValidateFormats(o.Formats); err != nil {
		return err
	}
	if o.Logger == nil {
		o.Logger = log.NewWithOptions(io.Discard, log.Options{})
	}
	o.validated = true
	return nil
}
