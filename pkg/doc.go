// Package pkg provides the core libraries for collectorsed sediment simulation.
//
// # Overview
//
// Collectorsed models a seafloor collector vehicle working a one-dimensional
// section of sediment: each pass cuts material from a cell's layer stack,
// conveys part of it up the riser, settles part of it back in place, and
// redistributes the rest across neighboring cells until it has all settled.
// The pkg directory is organized into four areas:
//
//  1. [sed] - The simulation engine (layers, beds, cells, sections, reports)
//  2. [scenario] - TOML scenario files describing one run's parameter set
//  3. [pipeline] - Orchestration (simulate → report → export) with caching
//  4. [cache], [store] - Result caching and the run archive
//
// # Architecture
//
// The typical data flow through collectorsed:
//
//	Scenario file (TOML)
//	         ↓
//	    [scenario] package (parse, validate, build section)
//	         ↓
//	    [sed] package (collector passes + redistribution)
//	         ↓
//	    [pipeline] package (cache, archive, export)
//	         ↓
//	    JSON/CSV report
//
// # Quick Start
//
// Run a scenario and export the flattened report:
//
//	import (
//	    "context"
//	    "github.com/collectorsed/collectorsed/pkg/pipeline"
//	    "github.com/collectorsed/collectorsed/pkg/scenario"
//	)
//
//	sc, _ := scenario.Load("scenario.toml")
//	runner := pipeline.NewRunner(nil, nil, nil)
//	result, _ := runner.Execute(context.Background(), pipeline.Options{
//	    Scenario: sc,
//	    Formats:  []string{"json"},
//	})
//	report := result.Artifacts["json"]
//
// Or drive the engine directly:
//
//	import "github.com/collectorsed/collectorsed/pkg/sed"
//
//	section, _ := sed.NewSection(sed.SectionConfig{CellCount: 50})
//	_ = section.RunAll()
//	rows := section.Flatten()
//
// # Main Packages
//
// [sed] - The engine. A Section holds a row of Cells; each Cell owns a
// SedimentBed, an ordered stack of Layers. Collector passes cut, settle, and
// redistribute mass; Flatten derives the reporting table.
//
// [scenario] - The on-disk run description: every engine parameter plus the
// collector's working range, loaded from TOML over reference defaults and
// validated before a section is built.
//
// [pipeline] - The simulate → report → export pipeline shared by all entry
// points, with result caching and optional run archiving.
//
// [cache] - Run-result caching keyed by scenario hash. File, Redis, and null
// backends.
//
// [store] - The durable run archive. Memory and MongoDB backends.
//
// [io] - JSON and CSV import/export for flattened reports.
//
// [errors] - Coded errors shared across the CLI and library surfaces, plus
// scenario parameter validators.
//
// [observability] - Hook interfaces for instrumenting simulation, cache, and
// archive events without binding to a metrics backend.
//
// [buildinfo] - Build-time version information set via ldflags.
//
// # Testing
//
// Run tests:
//
//	go test ./pkg/...          # All tests
//	go test ./pkg/sed/...      # Engine only
//	go test -run Example       # Examples only
//
// [sed]: https://pkg.go.dev/github.com/collectorsed/collectorsed/pkg/sed
// [scenario]: https://pkg.go.dev/github.com/collectorsed/collectorsed/pkg/scenario
// [pipeline]: https://pkg.go.dev/github.com/collectorsed/collectorsed/pkg/pipeline
// [cache]: https://pkg.go.dev/github.com/collectorsed/collectorsed/pkg/cache
// [store]: https://pkg.go.dev/github.com/collectorsed/collectorsed/pkg/store
// [io]: https://pkg.go.dev/github.com/collectorsed/collectorsed/pkg/io
// [errors]: https://pkg.go.dev/github.com/collectorsed/collectorsed/pkg/errors
// [observability]: https://pkg.go.dev/github.com/collectorsed/collectorsed/pkg/observability
// [buildinfo]: https://pkg.go.dev/github.com/collectorsed/collectorsed/pkg/buildinfo
package pkg
