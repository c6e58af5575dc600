package dto

import "insights-console-be/pkg/spreadsheet"

type UploadResponse struct {
	Path string `json:"path"`
}

type PreviewResponse struct {
	Path    string            `json:"path"`
	Columns []string          `json:"columns"`
	Rows    []spreadsheet.Row `json:"rows"`
	Count   int               `json:"count"`
}
