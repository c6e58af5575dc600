package backend

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNonSuccessStatusBecomesStatusError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		io.WriteString(w, `{"detail":"Session abc not found."}`)
	}))
	defer srv.Close()

	_, err := NewClient(srv.URL, nil).Session(context.Background(), "abc")

	var statusErr *StatusError
	require.True(t, errors.As(err, &statusErr))
	assert.Equal(t, http.StatusNotFound, statusErr.Code)
	assert.Contains(t, statusErr.Body, "not found")
}

func TestSessionDecodesLooseChartValues(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/session/a%2Fb", r.URL.EscapedPath())
		io.WriteString(w, `{
			"session_id":"a/b",
			"chat_history":[{"role":"user","content":"hi"}],
			"categorized_insights":[{"label":"Revenue","value":"$1,000","trend":"up","context":"last month",
				"data":[{"name":"Q1","value":5000},{"name":"Q2","value":"$1,200.50"},{"name":"Q3","value":"n/a"}]}]
		}`)
	}))
	defer srv.Close()

	rec, err := NewClient(srv.URL, nil).Session(context.Background(), "a/b")
	require.NoError(t, err)

	require.Len(t, rec.CategorizedInsights, 1)
	points := rec.CategorizedInsights[0].Data
	assert.Equal(t, Number(5000), points[0].Value)
	assert.Equal(t, Number(1200.5), points[1].Value)
	assert.Equal(t, Number(0), points[2].Value)
	assert.Equal(t, []HistoryItem{{Role: "user", Content: "hi"}}, rec.ChatHistory)
}

func TestSessionsEmptyList(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		io.WriteString(w, `{"sessions":null}`)
	}))
	defer srv.Close()

	sessions, err := NewClient(srv.URL, nil).Sessions(context.Background())
	require.NoError(t, err)
	assert.Empty(t, sessions)
	assert.NotNil(t, sessions)
}

func TestForwardReturnsRawBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)
		w.Header().Set("Content-Type", "text/plain")
		w.WriteHeader(http.StatusUnprocessableEntity)
		w.Write(body)
	}))
	defer srv.Close()

	resp, err := NewClient(srv.URL, nil).Forward(context.Background(), "/invoke", "", []byte(`{"raw":true}`))
	require.NoError(t, err)
	assert.False(t, resp.OK())
	assert.Equal(t, http.StatusUnprocessableEntity, resp.StatusCode)
	assert.Equal(t, `{"raw":true}`, string(resp.Body))
	assert.Equal(t, "text/plain", resp.ContentType)
}
