package spreadsheet

import (
	"bytes"
	"strings"

	"github.com/xuri/excelize/v2"
)

type workbook interface {
	SheetNames() []string
	// ReadRows returns up to max non-blank rows of sheet, header included.
	ReadRows(sheet string, max int) ([][]string, error)
	Close() error
}

type excelWorkbook struct {
	f *excelize.File
}

func openWorkbook(data []byte) (workbook, error) {
	f, err := excelize.OpenReader(bytes.NewReader(data))
	if err != nil {
		return nil, err
	}
	return &excelWorkbook{f: f}, nil
}

func (w *excelWorkbook) SheetNames() []string {
	return w.f.GetSheetList()
}

func (w *excelWorkbook) ReadRows(sheet string, max int) ([][]string, error) {
	rows, err := w.f.Rows(sheet)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out [][]string
	for len(out) < max && rows.Next() {
		cols, err := rows.Columns()
		if err != nil {
			return nil, err
		}
		if isBlank(cols) {
			continue
		}
		out = append(out, cols)
	}
	return out, rows.Error()
}

func (w *excelWorkbook) Close() error {
	return w.f.Close()
}

func previewWorkbook(wb workbook, limit int) (*Table, error) {
	sheets := wb.SheetNames()
	if len(sheets) == 0 {
		return nil, ErrNoSheetFound
	}

	rows, err := wb.ReadRows(sheets[0], limit+1)
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return &Table{Columns: []string{}, Rows: []Row{}}, nil
	}

	table := &Table{Columns: headerNames(rows[0]), Rows: make([]Row, 0, len(rows)-1)}
	for _, cells := range rows[1:] {
		row := make(Row, len(table.Columns))
		for i, col := range table.Columns {
			if i < len(cells) {
				row[col] = cells[i]
			} else {
				row[col] = ""
			}
		}
		table.Rows = append(table.Rows, row)
	}
	return table, nil
}

func isBlank(cells []string) bool {
	for _, c := range cells {
		if strings.TrimSpace(c) != "" {
			return false
		}
	}
	return true
}
