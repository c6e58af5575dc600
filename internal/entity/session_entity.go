package entity

import "time"

type ChatRole string

const (
	ChatRoleUser      ChatRole = "user"
	ChatRoleAssistant ChatRole = "assistant"
	ChatRoleSystem    ChatRole = "system"
)

type ChatMessage struct {
	Role ChatRole
	Text string
}

type Trend string

const (
	TrendUp      Trend = "up"
	TrendDown    Trend = "down"
	TrendStable  Trend = "stable"
	TrendUnknown Trend = "unknown"
)

type ChartPoint struct {
	Name  string
	Value float64
}

type Insight struct {
	Label     string
	Value     string
	Trend     Trend
	Context   string
	ChartData []ChartPoint
}

// Session is the dashboard's read model of a completed analysis.
type Session struct {
	Id               string
	OriginalFilePath string
	InitialAnalysis  string
	CreatedAt        *time.Time
	Messages         []ChatMessage
	Insights         []Insight
}
