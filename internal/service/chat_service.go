package service

import (
	"context"
	"strings"

	"insights-console-be/internal/dto"
	"insights-console-be/internal/entity"
	"insights-console-be/internal/mapper"
	"insights-console-be/internal/pkg/logger"
	"insights-console-be/internal/repository/memory"
	"insights-console-be/internal/view"
	"insights-console-be/pkg/backend"
	"insights-console-be/pkg/events"
)

const (
	NoSessionDataMessage = "No session data found."
	chatFailurePrefix    = "⚠️ Sorry, something went wrong: "
)

// SessionSource is the part of the backend client the dashboard views read.
type SessionSource interface {
	Session(ctx context.Context, sessionID string) (*backend.SessionRecord, error)
	Sessions(ctx context.Context) ([]backend.SessionRecord, error)
}

// ChatAnswerer is the part of the backend client that answers questions.
type ChatAnswerer interface {
	Chat(ctx context.Context, req *backend.ChatRequest) (*backend.ChatResponse, error)
}

type IChatService interface {
	// Mount reloads the transcript from the backend, replacing what the
	// view held.
	Mount(ctx context.Context, sessionID string) (*dto.ChatTranscriptResponse, error)
	Send(ctx context.Context, sessionID, message string) (*dto.ChatTranscriptResponse, error)
}

type chatService struct {
	views     *memory.ViewRepository
	sessions  SessionSource
	answerer  ChatAnswerer
	mapper    *mapper.SessionMapper
	publisher IPublisherService
	logger    logger.ILogger
}

func NewChatService(
	views *memory.ViewRepository,
	sessions SessionSource,
	answerer ChatAnswerer,
	publisher IPublisherService,
	log logger.ILogger,
) IChatService {
	return &chatService{
		views:     views,
		sessions:  sessions,
		answerer:  answerer,
		mapper:    mapper.NewSessionMapper(),
		publisher: publisher,
		logger:    log,
	}
}

func (s *chatService) Mount(ctx context.Context, sessionID string) (*dto.ChatTranscriptResponse, error) {
	v := s.views.Chat(sessionID)
	tok := v.Begin()

	rec, err := s.sessions.Session(ctx, sessionID)
	if err != nil {
		s.logger.Error("CHAT", "Failed to load session", map[string]interface{}{
			"session_id": sessionID,
			"error":      err.Error(),
		})
		v.Resolve(tok, nil, NoSessionDataMessage)
		return transcript(sessionID, v), nil
	}

	session := s.mapper.RecordToEntity(rec)
	var messages []entity.ChatMessage
	if session.InitialAnalysis != "" {
		messages = append(messages, entity.ChatMessage{Role: entity.ChatRoleSystem, Text: session.InitialAnalysis})
	}
	messages = append(messages, session.Messages...)

	if !v.Resolve(tok, messages, "") {
		s.logger.Debug("CHAT", "Discarded superseded session fetch", map[string]interface{}{"session_id": sessionID})
	}
	return transcript(sessionID, v), nil
}

// Send ignores blank messages. Otherwise the user message is appended at
// once and the reply, or a warning when the backend fails, follows it.
func (s *chatService) Send(ctx context.Context, sessionID, message string) (*dto.ChatTranscriptResponse, error) {
	v := s.views.Chat(sessionID)
	if strings.TrimSpace(message) == "" {
		return transcript(sessionID, v), nil
	}

	if !v.Loaded() {
		// A client that posts before mounting still gets the stored history.
		if _, err := s.Mount(ctx, sessionID); err != nil {
			return nil, err
		}
	}

	history := s.mapper.MessagesToHistory(v.Messages())
	v.Append(entity.ChatMessage{Role: entity.ChatRoleUser, Text: message})

	resp, err := s.answerer.Chat(ctx, &backend.ChatRequest{
		Question:  message,
		SessionID: sessionID,
		History:   history,
	})
	if err != nil {
		s.logger.Error("CHAT", "Chat request failed", map[string]interface{}{
			"session_id": sessionID,
			"error":      err.Error(),
		})
		v.Append(entity.ChatMessage{Role: entity.ChatRoleAssistant, Text: chatFailurePrefix + err.Error()})
		return transcript(sessionID, v), nil
	}

	v.Append(entity.ChatMessage{Role: entity.ChatRoleAssistant, Text: resp.Response})
	publishQuietly(ctx, s.publisher, events.New(events.TypeChatAnswered, map[string]interface{}{
		"session_id": sessionID,
	}), nil)

	return transcript(sessionID, v), nil
}

func transcript(sessionID string, v *view.Chat) *dto.ChatTranscriptResponse {
	msgs := v.Messages()
	out := make([]dto.ChatMessageResponse, 0, len(msgs))
	for _, m := range msgs {
		out = append(out, dto.ChatMessageResponse{Role: string(m.Role), Text: m.Text})
	}
	return &dto.ChatTranscriptResponse{
		SessionId: sessionID,
		Messages:  out,
		Message:   v.Notice(),
	}
}
