package backend

import (
	"encoding/json"
	"strconv"
	"strings"
)

// DataTypeStoredExcel marks a data entry that points at an uploaded file.
const DataTypeStoredExcel = "supabase_excel"

type DataRef struct {
	Type string `json:"type"`
	Path string `json:"path"`
}

type InvokeRequest struct {
	Data   []DataRef         `json:"data"`
	Config map[string]string `json:"config"`
}

type InvokeResponse struct {
	SessionID *string         `json:"session_id"`
	Analysis  string          `json:"analysis"`
	Insights  []InsightRecord `json:"insights"`
	Tags      []string        `json:"tags"`
	Response  string          `json:"response"`
	Error     *string         `json:"error"`
}

type HistoryItem struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type ChatRequest struct {
	Question  string        `json:"question"`
	SessionID string        `json:"session_id"`
	History   []HistoryItem `json:"history"`
}

type ChatResponse struct {
	Response string `json:"response"`
}

type ChartPoint struct {
	Name  string `json:"name"`
	Value Number `json:"value"`
}

type InsightRecord struct {
	Label   string       `json:"label"`
	Value   string       `json:"value"`
	Trend   string       `json:"trend"`
	Context string       `json:"context"`
	Data    []ChartPoint `json:"data"`
}

type SessionRecord struct {
	SessionID            string          `json:"session_id"`
	ChatHistory          []HistoryItem   `json:"chat_history"`
	CategorizedInsights  []InsightRecord `json:"categorized_insights"`
	OriginalFilePath     *string         `json:"original_file_path,omitempty"`
	CreatedAt            *string         `json:"created_at,omitempty"`
	InitialAnalysis      *string         `json:"initial_analysis,omitempty"`
	DataframeStoragePath string          `json:"dataframe_storage_path,omitempty"`
}

type sessionsEnvelope struct {
	Sessions []SessionRecord `json:"sessions"`
}

// Number accepts chart values the model produced either as JSON numbers or
// as numeric strings ("1,200", "$5000"). Anything unparseable decodes to 0.
type Number float64

func (n *Number) UnmarshalJSON(b []byte) error {
	var f float64
	if err := json.Unmarshal(b, &f); err == nil {
		*n = Number(f)
		return nil
	}

	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		*n = 0
		return nil
	}
	s = strings.Map(func(r rune) rune {
		if (r >= '0' && r <= '9') || r == '.' || r == '-' {
			return r
		}
		return -1
	}, s)
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		f = 0
	}
	*n = Number(f)
	return nil
}
