package mapper

import (
	"testing"

	"insights-console-be/internal/entity"
	"insights-console-be/pkg/backend"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func strPtr(s string) *string { return &s }

func TestRecordToEntity(t *testing.T) {
	m := NewSessionMapper()
	rec := &backend.SessionRecord{
		SessionID: "s1",
		ChatHistory: []backend.HistoryItem{
			{Role: "user", Content: "hi"},
			{Role: "assistant", Content: "hello"},
			{Role: "tool", Content: "ignored role"},
		},
		CategorizedInsights: []backend.InsightRecord{
			{Label: "Revenue", Value: "$10k", Trend: "UP", Data: []backend.ChartPoint{{Name: "Jan", Value: 3}}},
			{Label: "Churn", Value: "2%", Trend: "sideways"},
		},
		OriginalFilePath: strPtr("private/uploads/sales.xlsx"),
		CreatedAt:        strPtr("2024-05-01T10:00:00.123456"),
	}

	s := m.RecordToEntity(rec)
	require.NotNil(t, s)
	assert.Equal(t, "s1", s.Id)
	assert.Equal(t, "private/uploads/sales.xlsx", s.OriginalFilePath)
	require.NotNil(t, s.CreatedAt)
	assert.Equal(t, 2024, s.CreatedAt.Year())

	require.Len(t, s.Messages, 3)
	assert.Equal(t, entity.ChatRoleSystem, s.Messages[2].Role)

	require.Len(t, s.Insights, 2)
	assert.Equal(t, entity.TrendUp, s.Insights[0].Trend)
	assert.Equal(t, entity.TrendUnknown, s.Insights[1].Trend)
	assert.Equal(t, []entity.ChartPoint{{Name: "Jan", Value: 3}}, s.Insights[0].ChartData)
}

func TestMessagesToHistoryDropsSystemTurns(t *testing.T) {
	m := NewSessionMapper()
	history := m.MessagesToHistory([]entity.ChatMessage{
		{Role: entity.ChatRoleSystem, Text: "analysis"},
		{Role: entity.ChatRoleUser, Text: "q"},
		{Role: entity.ChatRoleAssistant, Text: "a"},
	})

	assert.Equal(t, []backend.HistoryItem{
		{Role: "user", Content: "q"},
		{Role: "assistant", Content: "a"},
	}, history)
}
