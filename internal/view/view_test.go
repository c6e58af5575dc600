package view

import (
	"testing"

	"insights-console-be/internal/entity"
	"insights-console-be/pkg/chart"

	"github.com/stretchr/testify/assert"
)

func TestChatLateFetchIsDiscarded(t *testing.T) {
	c := NewChat()
	first := c.Begin()
	second := c.Begin()

	assert.True(t, c.Resolve(second, []entity.ChatMessage{{Role: entity.ChatRoleUser, Text: "fresh"}}, ""))
	assert.False(t, c.Resolve(first, []entity.ChatMessage{{Role: entity.ChatRoleUser, Text: "stale"}}, ""))

	assert.Equal(t, "fresh", c.Messages()[0].Text)
}

func TestChatAppendAfterResolve(t *testing.T) {
	c := NewChat()
	assert.False(t, c.Loaded())

	tok := c.Begin()
	c.Resolve(tok, nil, "No session data found.")
	assert.Equal(t, "No session data found.", c.Notice())

	c.Append(entity.ChatMessage{Role: entity.ChatRoleUser, Text: "hi"})

	assert.True(t, c.Loaded())
	assert.Empty(t, c.Notice())
	assert.Len(t, c.Messages(), 1)
}

func TestInsightsKeepChartKindAcrossRefresh(t *testing.T) {
	v := NewInsights()
	assert.Equal(t, chart.KindBar, v.ChartKind())

	v.SetChartKind(chart.KindPie)
	v.Resolve(v.Begin(), []entity.Insight{{Label: "Revenue"}}, "")

	assert.Equal(t, chart.KindPie, v.ChartKind())
	assert.Len(t, v.Insights(), 1)
}
