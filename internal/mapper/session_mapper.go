package mapper

import (
	"strings"
	"time"

	"insights-console-be/internal/entity"
	"insights-console-be/pkg/backend"
)

type SessionMapper struct{}

func NewSessionMapper() *SessionMapper {
	return &SessionMapper{}
}

// Timestamps arrive from the backend with or without a zone offset.
var timestampLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05.999999",
	"2006-01-02 15:04:05.999999-07:00",
	"2006-01-02 15:04:05",
}

func (m *SessionMapper) RecordToEntity(r *backend.SessionRecord) *entity.Session {
	if r == nil {
		return nil
	}

	s := &entity.Session{
		Id:       r.SessionID,
		Messages: m.HistoryToMessages(r.ChatHistory),
		Insights: m.InsightsToEntities(r.CategorizedInsights),
	}
	if r.OriginalFilePath != nil {
		s.OriginalFilePath = *r.OriginalFilePath
	}
	if r.InitialAnalysis != nil {
		s.InitialAnalysis = *r.InitialAnalysis
	}
	if r.CreatedAt != nil {
		s.CreatedAt = parseTimestamp(*r.CreatedAt)
	}
	return s
}

func (m *SessionMapper) HistoryToMessages(items []backend.HistoryItem) []entity.ChatMessage {
	out := make([]entity.ChatMessage, 0, len(items))
	for _, it := range items {
		out = append(out, entity.ChatMessage{Role: toRole(it.Role), Text: it.Content})
	}
	return out
}

// MessagesToHistory keeps only the user and assistant turns.
func (m *SessionMapper) MessagesToHistory(msgs []entity.ChatMessage) []backend.HistoryItem {
	out := make([]backend.HistoryItem, 0, len(msgs))
	for _, msg := range msgs {
		if msg.Role != entity.ChatRoleUser && msg.Role != entity.ChatRoleAssistant {
			continue
		}
		out = append(out, backend.HistoryItem{Role: string(msg.Role), Content: msg.Text})
	}
	return out
}

func (m *SessionMapper) InsightsToEntities(records []backend.InsightRecord) []entity.Insight {
	out := make([]entity.Insight, 0, len(records))
	for _, r := range records {
		points := make([]entity.ChartPoint, 0, len(r.Data))
		for _, p := range r.Data {
			points = append(points, entity.ChartPoint{Name: p.Name, Value: float64(p.Value)})
		}
		out = append(out, entity.Insight{
			Label:     r.Label,
			Value:     r.Value,
			Trend:     ToTrend(r.Trend),
			Context:   r.Context,
			ChartData: points,
		})
	}
	return out
}

// ToTrend normalises the backend's free-form trend string.
func ToTrend(raw string) entity.Trend {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "up":
		return entity.TrendUp
	case "down":
		return entity.TrendDown
	case "stable":
		return entity.TrendStable
	default:
		return entity.TrendUnknown
	}
}

func toRole(raw string) entity.ChatRole {
	switch strings.ToLower(raw) {
	case "user":
		return entity.ChatRoleUser
	case "assistant":
		return entity.ChatRoleAssistant
	default:
		return entity.ChatRoleSystem
	}
}

func parseTimestamp(raw string) *time.Time {
	for _, layout := range timestampLayouts {
		if t, err := time.Parse(layout, raw); err == nil {
			return &t
		}
	}
	return nil
}
