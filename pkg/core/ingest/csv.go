// Package ingest reduces supported document formats to the raw cell grid
// consumed by the statement normalizer.
package ingest

import (
	"encoding/csv"
	"fmt"
	"io"

	"finhealth/pkg/core/statement"
)

// ReadCSV parses CSV content into a grid. Rows may have varying lengths;
// the normalizer tolerates ragged grids.
func ReadCSV(r io.Reader) (statement.Grid, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true

	records, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("csv parsing error: %w", err)
	}
	if len(records) == 0 {
		return nil, fmt.Errorf("csv contains no rows")
	}

	grid := make(statement.Grid, len(records))
	for i, rec := range records {
		grid[i] = rec
	}
	return grid, nil
}
