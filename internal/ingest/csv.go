package ingest

import (
	"encoding/csv"
	"fmt"
	"os"
)

// ReadCSV loads scenario rows from a comma-separated file. Records may have
// ragged lengths; short rows read as empty cells.
func ReadCSV(path string) (*Result, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrSourceUnreadable, err)
	}
	defer file.Close()

	reader := csv.NewReader(file)
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true

	records, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrSourceUnreadable, err)
	}

	return fromRecords(records)
}
