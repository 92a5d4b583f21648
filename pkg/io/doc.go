// Package io provides JSON and CSV import and export for flattened reports.
//
// # Overview
//
// The simulation's reporting surface is a flat row table ([sed.Row]): one row
// per layer per cell, annotated with the derived values a charting layer
// needs. This package serializes that table for:
//
//   - Handing results to external plotting and analysis tools
//   - Archival alongside the run store's database documents
//   - Round-trip reloading: export a run, re-import it, chart it again
//
// # JSON Format
//
// The format is a single object with a "rows" array:
//
//	{
//	  "rows": [
//	    {"cell_index": 0, "top": 0, "bottom": -0.2, "kind": "bed", ...}
//	  ]
//	}
//
// Use [ExportJSON] / [WriteJSON] to produce it and [ImportJSON] / [ReadJSON]
// to consume it. Round trips are lossless.
//
// # CSV Format
//
// [ExportCSV] / [WriteCSV] emit one header line followed by one record per
// row, for spreadsheet and pandas-style consumers. CSV export is one-way:
// there is no CSV importer.
package io
