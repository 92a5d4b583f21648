// Package sed implements a one-dimensional mass-balance model of a seafloor
// collector vehicle working a row of cross-section cells.
//
// The model is deliberately abstract: a [Section] is a fixed row of [Cell]
// values, each owning a [SedimentBed] stack of [Layer] slabs. Applying the
// collector to a cell cuts material from the top of its bed, sends a fraction
// up the riser and out of the model, settles a share back onto the cell, and
// queues the remainder for the left and right neighbors. A synchronous
// fixed-point sweep then redistributes the queued mass across the row until
// every pending transfer falls below the convergence threshold.
//
// # Mass conservation
//
// Total mass is conserved up to three deliberate, bounded leaks:
//
//  1. the riser fraction removed at the moment of cutting,
//  2. mass pushed past either end of the row, and
//  3. pending transfers below the convergence threshold, dropped at
//     quiescence.
//
// # Usage
//
// Build a section, run the collector, and flatten the result for reporting:
//
//	s, err := sed.NewSection(sed.SectionConfig{
//	    CellCount: 50,
//	    Cell:      sed.DefaultCellParams(),
//	    Collector: sed.CollectorParams{CutDepth: 0.1},
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	if err := s.RunAll(); err != nil {
//	    log.Fatal(err)
//	}
//	rows := s.Flatten()
//
// A Section and its cells are owned by a single run: none of the types in
// this package are safe for concurrent use.
package sed
