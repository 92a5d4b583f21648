package io

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/collectorsed/collectorsed/pkg/sed"
)

type report struct {
	Rows []sed.Row `json:"rows"`
}

// csvHeader lists the CSV columns, matching the JSON field names.
var csvHeader = []string{
	"cell_index",
	"top",
	"bottom",
	"kind",
	"label",
	"origin_cell",
	"thickness",
	"total_settled_thickness",
	"proximity",
}

// WriteJSON encodes a flattened report as JSON and writes it to w.
// The output can be re-imported with [ReadJSON] for round-trip processing.
func WriteJSON(rows []sed.Row, w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(report{Rows: rows}); err != nil {
		return fmt.Errorf("encode: %w", err)
	}
	return nil
}

// ExportJSON writes a flattened report to a JSON file at path.
// This is a convenience wrapper around [WriteJSON] for file-based output.
func ExportJSON(rows []sed.Row, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer f.Close()
	return WriteJSON(rows, f)
}

// WriteCSV encodes a flattened report as CSV and writes it to w, one header
// line followed by one record per row.
func WriteCSV(rows []sed.Row, w io.Writer) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(csvHeader); err != nil {
		return fmt.Errorf("write header: %w", err)
	}
	for _, r := range rows {
		record := []string{
			strconv.Itoa(r.CellIndex),
			strconv.FormatFloat(r.Top, 'g', -1, 64),
			strconv.FormatFloat(r.Bottom, 'g', -1, 64),
			r.Kind,
			r.Label,
			strconv.Itoa(r.OriginCell),
			strconv.FormatFloat(r.Thickness, 'g', -1, 64),
			strconv.FormatFloat(r.TotalSettledThickness, 'g', -1, 64),
			strconv.Itoa(r.Proximity),
		}
		if err := cw.Write(record); err != nil {
			return fmt.Errorf("write row %d: %w", r.CellIndex, err)
		}
	}
	cw.Flush()
	if err := cw.Error(); err != nil {
		return fmt.Errorf("flush: %w", err)
	}
	return nil
}

// ExportCSV writes a flattened report to a CSV file at path.
// This is a convenience wrapper around [WriteCSV] for file-based output.
func ExportCSV(rows []sed.Row, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer f.Close()
	return WriteCSV(rows, f)
}
