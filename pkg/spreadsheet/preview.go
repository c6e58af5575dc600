// Package spreadsheet turns an uploaded CSV or Excel file into a short
// preview: the header row becomes the column names and at most a fixed
// number of data rows are returned.
package spreadsheet

import (
	"errors"
	"fmt"
	"path"
	"strings"
)

const DefaultRowLimit = 50

var (
	ErrUnsupportedFileType = errors.New("unsupported file type")
	ErrNoSheetFound        = errors.New("no sheet found")
)

// Row maps a column name to its cell value.
type Row map[string]string

type Table struct {
	Columns []string `json:"columns"`
	Rows    []Row    `json:"rows"`
}

type Format string

const (
	FormatCSV  Format = "csv"
	FormatXLSX Format = "xlsx"
)

// DetectFormat picks the parser from the file extension, case-insensitively.
// Legacy .xls names are routed to the workbook parser.
func DetectFormat(name string) (Format, error) {
	switch strings.ToLower(path.Ext(name)) {
	case ".csv":
		return FormatCSV, nil
	case ".xlsx", ".xls":
		return FormatXLSX, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnsupportedFileType, path.Ext(name))
	}
}

// Preview parses data according to the extension of name and returns at
// most limit rows. A non-positive limit means DefaultRowLimit.
func Preview(name string, data []byte, limit int) (*Table, error) {
	if limit <= 0 {
		limit = DefaultRowLimit
	}

	format, err := DetectFormat(name)
	if err != nil {
		return nil, err
	}

	switch format {
	case FormatCSV:
		return previewCSV(data, limit)
	default:
		wb, err := openWorkbook(data)
		if err != nil {
			return nil, fmt.Errorf("open workbook %s: %w", name, err)
		}
		defer wb.Close()
		return previewWorkbook(wb, limit)
	}
}

// headerNames fills blank header cells with their column letter and
// disambiguates repeated names with a numeric suffix.
func headerNames(cells []string) []string {
	seen := make(map[string]int, len(cells))
	out := make([]string, len(cells))
	for i, c := range cells {
		name := strings.TrimSpace(c)
		if name == "" {
			name = columnLetter(i)
		}
		if n, dup := seen[name]; dup {
			seen[name] = n + 1
			name = fmt.Sprintf("%s_%d", name, n)
		} else {
			seen[name] = 1
		}
		out[i] = name
	}
	return out
}

func columnLetter(index int) string {
	name := ""
	for n := index + 1; n > 0; n = (n - 1) / 26 {
		name = string(rune('A'+(n-1)%26)) + name
	}
	return name
}
