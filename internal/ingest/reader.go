// Package ingest reads tabular scenario sources into raw rows. It performs
// no validation beyond the header check; every cell is surfaced as a
// trimmed string for the normalizer to interpret.
package ingest

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/lance13c/testforge/internal/scenario"
)

// Sentinel errors for the two ways a source can be rejected outright.
var (
	ErrSourceUnreadable = errors.New("scenario source is not a readable table")
	ErrHeaderMissing    = errors.New("required column ScenarioKey is missing")
)

// Result carries the raw rows plus per-row warnings from ingestion.
type Result struct {
	Rows     []scenario.Row
	Warnings []string
}

// Read loads a scenario source, choosing the parser by file extension.
// Supported formats are .xlsx workbooks and .csv files.
func Read(path string) (*Result, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".xlsx":
		return ReadExcel(path)
	case ".csv":
		return ReadCSV(path)
	default:
		return nil, fmt.Errorf("%w: unsupported extension %q", ErrSourceUnreadable, filepath.Ext(path))
	}
}

// fromRecords converts a header row plus data records into scenario rows.
// Cells are trimmed, short records are padded with empty cells, and rows
// with an empty ScenarioKey are skipped with a warning carrying the source
// line. The header row itself is consumed, never emitted.
func fromRecords(records [][]string) (*Result, error) {
	if len(records) == 0 {
		return nil, fmt.Errorf("%w: source has no header row", ErrHeaderMissing)
	}

	header := records[0]
	columns := make(map[int]string, len(header))
	known := make(map[string]bool, len(scenario.Columns))
	for _, name := range scenario.Columns {
		known[name] = true
	}

	hasKey := false
	for i, name := range header {
		name = strings.TrimSpace(name)
		if !known[name] {
			continue // columns outside the template set are ignored
		}
		columns[i] = name
		if name == scenario.ColScenarioKey {
			hasKey = true
		}
	}
	if !hasKey {
		return nil, ErrHeaderMissing
	}

	result := &Result{}
	for rowIdx, record := range records[1:] {
		line := rowIdx + 2 // 1-based, counting the header

		cells := make(map[string]string, len(columns))
		for i, name := range columns {
			if i < len(record) {
				cells[name] = strings.TrimSpace(record[i])
			} else {
				cells[name] = ""
			}
		}

		if cells[scenario.ColScenarioKey] == "" {
			if !recordEmpty(record) {
				result.Warnings = append(result.Warnings, fmt.Sprintf("line %d: skipped row with empty ScenarioKey", line))
			}
			continue
		}

		result.Rows = append(result.Rows, scenario.Row{Line: line, Cells: cells})
	}

	return result, nil
}

func recordEmpty(record []string) bool {
	for _, cell := range record {
		if strings.TrimSpace(cell) != "" {
			return false
		}
	}
	return true
}
