package service

import (
	"context"
	"errors"
	"fmt"
	"io"

	"insights-console-be/internal/dto"
	"insights-console-be/internal/entity"
	"insights-console-be/internal/mapper"
	"insights-console-be/internal/pkg/logger"
	"insights-console-be/internal/repository/memory"
	"insights-console-be/internal/view"
	"insights-console-be/pkg/chart"
	"insights-console-be/pkg/wizard"
)

var ErrInsightNotFound = errors.New("insight not found")

type IInsightService interface {
	Mount(ctx context.Context, sessionID string) (*dto.InsightBoardResponse, error)
	SetChartKind(ctx context.Context, sessionID, kind string) (*dto.InsightBoardResponse, error)
	// ExportChart draws insight index of the session in the view's current
	// chart kind.
	ExportChart(ctx context.Context, sessionID string, index int, w io.Writer) error
	List(ctx context.Context) ([]dto.SessionSummaryResponse, error)
}

type insightService struct {
	views    *memory.ViewRepository
	sessions SessionSource
	mapper   *mapper.SessionMapper
	logger   logger.ILogger
}

func NewInsightService(views *memory.ViewRepository, sessions SessionSource, log logger.ILogger) IInsightService {
	return &insightService{
		views:    views,
		sessions: sessions,
		mapper:   mapper.NewSessionMapper(),
		logger:   log,
	}
}

func (s *insightService) Mount(ctx context.Context, sessionID string) (*dto.InsightBoardResponse, error) {
	v := s.views.Insights(sessionID)
	s.refresh(ctx, sessionID, v)
	return board(sessionID, v), nil
}

func (s *insightService) refresh(ctx context.Context, sessionID string, v *view.Insights) {
	tok := v.Begin()

	rec, err := s.sessions.Session(ctx, sessionID)
	if err != nil {
		s.logger.Error("INSIGHTS", "Failed to load session", map[string]interface{}{
			"session_id": sessionID,
			"error":      err.Error(),
		})
		v.Resolve(tok, nil, NoSessionDataMessage)
		return
	}

	if !v.Resolve(tok, s.mapper.InsightsToEntities(rec.CategorizedInsights), "") {
		s.logger.Debug("INSIGHTS", "Discarded superseded session fetch", map[string]interface{}{"session_id": sessionID})
	}
}

func (s *insightService) SetChartKind(ctx context.Context, sessionID, kind string) (*dto.InsightBoardResponse, error) {
	k, err := chart.ParseKind(kind)
	if err != nil {
		return nil, err
	}
	v := s.views.Insights(sessionID)
	v.SetChartKind(k)
	if !v.Loaded() {
		s.refresh(ctx, sessionID, v)
	}
	return board(sessionID, v), nil
}

func (s *insightService) ExportChart(ctx context.Context, sessionID string, index int, w io.Writer) error {
	v := s.views.Insights(sessionID)
	if !v.Loaded() {
		s.refresh(ctx, sessionID, v)
	}

	insights := v.Insights()
	if index < 0 || index >= len(insights) {
		return fmt.Errorf("%w: %d", ErrInsightNotFound, index)
	}

	in := insights[index]
	points := make([]chart.Point, 0, len(in.ChartData))
	for _, p := range in.ChartData {
		points = append(points, chart.Point{Name: p.Name, Value: p.Value})
	}
	return chart.RenderPNG(w, v.ChartKind(), in.Label, points)
}

// List summarises every session the backend knows about.
func (s *insightService) List(ctx context.Context) ([]dto.SessionSummaryResponse, error) {
	records, err := s.sessions.Sessions(ctx)
	if err != nil {
		return nil, err
	}

	out := make([]dto.SessionSummaryResponse, 0, len(records))
	for i := range records {
		session := s.mapper.RecordToEntity(&records[i])
		out = append(out, dto.SessionSummaryResponse{
			SessionId:        session.Id,
			OriginalFilePath: session.OriginalFilePath,
			CreatedAt:        session.CreatedAt,
			InsightCount:     len(session.Insights),
			MessageCount:     len(session.Messages),
			Redirect:         wizard.DashboardPath(session.Id),
		})
	}
	return out, nil
}

func board(sessionID string, v *view.Insights) *dto.InsightBoardResponse {
	insights := v.Insights()
	out := make([]dto.InsightResponse, 0, len(insights))
	for i, in := range insights {
		out = append(out, toInsightResponse(i, in))
	}
	return &dto.InsightBoardResponse{
		SessionId: sessionID,
		ChartKind: string(v.ChartKind()),
		Insights:  out,
		Message:   v.Notice(),
	}
}

func toInsightResponse(index int, in entity.Insight) dto.InsightResponse {
	points := make([]dto.ChartPointResponse, 0, len(in.ChartData))
	for _, p := range in.ChartData {
		points = append(points, dto.ChartPointResponse{Name: p.Name, Value: p.Value})
	}
	return dto.InsightResponse{
		Index:     index,
		Label:     in.Label,
		Value:     in.Value,
		Trend:     string(in.Trend),
		Context:   in.Context,
		ChartData: points,
	}
}
