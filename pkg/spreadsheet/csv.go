package spreadsheet

import (
	"bytes"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
)

var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

func previewCSV(data []byte, limit int) (*Table, error) {
	r := csv.NewReader(bytes.NewReader(bytes.TrimPrefix(data, utf8BOM)))
	r.FieldsPerRecord = -1
	r.LazyQuotes = true

	header, err := r.Read()
	if errors.Is(err, io.EOF) {
		return &Table{Columns: []string{}, Rows: []Row{}}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read csv header: %w", err)
	}

	table := &Table{Columns: headerNames(header), Rows: make([]Row, 0, limit)}
	for len(table.Rows) < limit {
		record, err := r.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read csv row %d: %w", len(table.Rows)+1, err)
		}

		// Short records leave their trailing columns out of the row.
		row := make(Row, len(record))
		for i, value := range record {
			if i >= len(table.Columns) {
				break
			}
			row[table.Columns[i]] = value
		}
		table.Rows = append(table.Rows, row)
	}
	return table, nil
}
