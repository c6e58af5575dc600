package dto

import "time"

type ChatMessageResponse struct {
	Role string `json:"role"`
	Text string `json:"text"`
}

type ChatTranscriptResponse struct {
	SessionId string                `json:"session_id"`
	Messages  []ChatMessageResponse `json:"messages"`
	Message   string                `json:"message,omitempty"`
}

type SendChatRequest struct {
	Message string `json:"message"`
}

type ChartPointResponse struct {
	Name  string  `json:"name"`
	Value float64 `json:"value"`
}

type InsightResponse struct {
	Index     int                  `json:"index"`
	Label     string               `json:"label"`
	Value     string               `json:"value"`
	Trend     string               `json:"trend"`
	Context   string               `json:"context"`
	ChartData []ChartPointResponse `json:"chart_data"`
}

type InsightBoardResponse struct {
	SessionId string            `json:"session_id"`
	ChartKind string            `json:"chart_kind"`
	Insights  []InsightResponse `json:"insights"`
	Message   string            `json:"message,omitempty"`
}

type SetChartKindRequest struct {
	Kind string `json:"kind" validate:"required"`
}

type SessionSummaryResponse struct {
	SessionId        string     `json:"session_id"`
	OriginalFilePath string     `json:"original_file_path,omitempty"`
	CreatedAt        *time.Time `json:"created_at,omitempty"`
	InsightCount     int        `json:"insight_count"`
	MessageCount     int        `json:"message_count"`
	Redirect         string     `json:"redirect"`
}
