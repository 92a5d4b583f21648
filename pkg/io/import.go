package io

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/collectorsed/collectorsed/pkg/sed"
)

// ReadJSON decodes a flattened report from r.
//
// The input must be a JSON object with a "rows" array in the format produced
// by [WriteJSON]. ReadJSON returns an error if the JSON is malformed. It does
// not close r, and the returned slice is independent of the input.
func ReadJSON(r io.Reader) ([]sed.Row, error) {
	var data report
	if err := json.NewDecoder(r).Decode(&data); err != nil {
		return nil, fmt.Errorf("decode: %w", err)
	}
	return data.Rows, nil
}

// ImportJSON reads a JSON report file at path and returns the decoded rows.
//
// ImportJSON opens the file, decodes it using [ReadJSON], and closes the
// file. Errors wrap the underlying cause with the file path for context.
func ImportJSON(path string) ([]sed.Row, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()
	return ReadJSON(f)
}
