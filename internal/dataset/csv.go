package dataset

import (
	"encoding/csv"
	"fmt"
	"io"
)

// WriteCSV writes a header line and one comma-separated line per row.
// Nulls become empty fields.
func WriteCSV(w io.Writer, ds *Dataset) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(ds.columns); err != nil {
		return err
	}

	record := make([]string, len(ds.columns))
	for _, r := range ds.rows {
		for i, v := range r {
			record[i] = FormatValue(v)
		}
		if err := cw.Write(record); err != nil {
			return err
		}
	}

	cw.Flush()
	return cw.Error()
}

// ReadCSV parses text written by WriteCSV. Every non-empty cell is read
// back as a string; empty cells are nulls.
func ReadCSV(r io.Reader, name string) (*Dataset, error) {
	cr := csv.NewReader(r)
	records, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("read csv %q: %w", name, err)
	}
	if len(records) == 0 {
		return nil, fmt.Errorf("read csv %q: missing header", name)
	}

	header := records[0]
	rows := make([][]any, 0, len(records)-1)
	for _, rec := range records[1:] {
		row := make([]any, len(rec))
		for i, cell := range rec {
			if cell != "" {
				row[i] = cell
			}
		}
		rows = append(rows, row)
	}
	return New(name, header, rows)
}
