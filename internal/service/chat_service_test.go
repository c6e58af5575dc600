package service

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"insights-console-be/internal/repository/memory"
	"insights-console-be/pkg/backend"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeBackend struct {
	mu        sync.Mutex
	session   *backend.SessionRecord
	sessions  []backend.SessionRecord
	fetchErr  error
	chatErr   error
	answers   []string
	chatCalls []backend.ChatRequest
}

func (b *fakeBackend) Session(_ context.Context, id string) (*backend.SessionRecord, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.fetchErr != nil {
		return nil, b.fetchErr
	}
	rec := *b.session
	rec.SessionID = id
	return &rec, nil
}

func (b *fakeBackend) Sessions(context.Context) ([]backend.SessionRecord, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.fetchErr != nil {
		return nil, b.fetchErr
	}
	return b.sessions, nil
}

func (b *fakeBackend) Chat(_ context.Context, req *backend.ChatRequest) (*backend.ChatResponse, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.chatCalls = append(b.chatCalls, *req)
	if b.chatErr != nil {
		return nil, b.chatErr
	}
	answer := "ok"
	if len(b.answers) > 0 {
		answer, b.answers = b.answers[0], b.answers[1:]
	}
	return &backend.ChatResponse{Response: answer}, nil
}

func newChatFixture(b *fakeBackend) IChatService {
	return NewChatService(memory.NewViewRepository(time.Hour), b, b, nil, nopLogger)
}

func TestChatMountReplacesTranscript(t *testing.T) {
	analysis := "Sales are up."
	b := &fakeBackend{session: &backend.SessionRecord{
		InitialAnalysis: &analysis,
		ChatHistory:     []backend.HistoryItem{{Role: "user", Content: "hi"}, {Role: "assistant", Content: "hello"}},
	}}
	svc := newChatFixture(b)

	res, err := svc.Mount(context.Background(), "s1")
	require.NoError(t, err)
	require.Len(t, res.Messages, 3)
	assert.Equal(t, "system", res.Messages[0].Role)
	assert.Equal(t, "hello", res.Messages[2].Text)
	assert.Empty(t, res.Message)

	// Mounting again replaces rather than appends.
	res, err = svc.Mount(context.Background(), "s1")
	require.NoError(t, err)
	assert.Len(t, res.Messages, 3)
}

func TestChatMountFailureResolvesEmpty(t *testing.T) {
	b := &fakeBackend{fetchErr: errors.New("connection refused")}
	svc := newChatFixture(b)

	res, err := svc.Mount(context.Background(), "s1")
	require.NoError(t, err)
	assert.Empty(t, res.Messages)
	assert.Equal(t, NoSessionDataMessage, res.Message)
}

func TestBlankMessageIsNoOp(t *testing.T) {
	b := &fakeBackend{session: &backend.SessionRecord{}}
	svc := newChatFixture(b)
	_, err := svc.Mount(context.Background(), "s1")
	require.NoError(t, err)

	res, err := svc.Send(context.Background(), "s1", "   \n\t")
	require.NoError(t, err)
	assert.Empty(t, res.Messages)
	assert.Empty(t, b.chatCalls)
}

func TestTwoSequentialSends(t *testing.T) {
	b := &fakeBackend{session: &backend.SessionRecord{}, answers: []string{"first answer", "second answer"}}
	svc := newChatFixture(b)
	ctx := context.Background()

	_, err := svc.Send(ctx, "s1", "first question")
	require.NoError(t, err)
	res, err := svc.Send(ctx, "s1", "second question")
	require.NoError(t, err)

	var roles, texts []string
	for _, m := range res.Messages {
		roles = append(roles, m.Role)
		texts = append(texts, m.Text)
	}
	assert.Equal(t, []string{"user", "assistant", "user", "assistant"}, roles)
	assert.Equal(t, []string{"first question", "first answer", "second question", "second answer"}, texts)

	require.Len(t, b.chatCalls, 2)
	assert.Empty(t, b.chatCalls[0].History)
	assert.Equal(t, "s1", b.chatCalls[1].SessionID)
	assert.Equal(t, "second question", b.chatCalls[1].Question)
	assert.Equal(t, []backend.HistoryItem{
		{Role: "user", Content: "first question"},
		{Role: "assistant", Content: "first answer"},
	}, b.chatCalls[1].History)
}

func TestChatFailureAppendsWarning(t *testing.T) {
	b := &fakeBackend{session: &backend.SessionRecord{}, chatErr: &backend.StatusError{Code: 500, Body: "boom"}}
	svc := newChatFixture(b)

	res, err := svc.Send(context.Background(), "s1", "why?")
	require.NoError(t, err)
	require.Len(t, res.Messages, 2)
	assert.Equal(t, "assistant", res.Messages[1].Role)
	assert.Contains(t, res.Messages[1].Text, "⚠️ Sorry, something went wrong: ")
	assert.Contains(t, res.Messages[1].Text, "boom")
}

func TestSendAfterFailedMountClearsNotice(t *testing.T) {
	b := &fakeBackend{fetchErr: errors.New("connection refused"), answers: []string{"still here"}}
	svc := newChatFixture(b)

	res, err := svc.Send(context.Background(), "s1", "anyone?")
	require.NoError(t, err)
	require.Len(t, res.Messages, 2)
	assert.Equal(t, "still here", res.Messages[1].Text)
	assert.Empty(t, res.Message)
}
