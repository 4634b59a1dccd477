package gemini

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"Bricklix/internal/config"
)

func newTestClient(t *testing.T, url string) *Client {
	t.Helper()
	conf := &config.Config{}
	conf.Gemini.ApiKey = "test-key"
	conf.Gemini.Model = "gemini-test"
	conf.Gemini.BaseURL = url
	conf.Gemini.MaxRetries = 5

	c := New(conf, slog.New(slog.NewTextHandler(io.Discard, nil)))
	c.backoff = func(int) time.Duration { return 0 }
	return c
}

func candidateBody(text string) string {
	return `{"candidates":[{"content":{"parts":[{"text":` + mustMarshal(text) + `}]}}]}`
}

func mustMarshal(s string) string {
	b, _ := json.Marshal(s)
	return string(b)
}

func TestAnswerQuestionSendsWireFormat(t *testing.T) {
	var gotPath, gotKey string
	var gotBody map[string]any

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotKey = r.URL.Query().Get("key")
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))
		w.Write([]byte(candidateBody("We build software.")))
	}))
	defer server.Close()

	c := newTestClient(t, server.URL)
	text, err := c.AnswerQuestion(context.Background(), "What do you do?")
	require.NoError(t, err)
	require.Equal(t, "We build software.", text)

	require.Equal(t, "/models/gemini-test:generateContent", gotPath)
	require.Equal(t, "test-key", gotKey)

	contents := gotBody["contents"].([]any)
	require.Len(t, contents, 1)
	parts := contents[0].(map[string]any)["parts"].([]any)
	require.Equal(t, `The user asks: "What do you do?"`, parts[0].(map[string]any)["text"])

	system := gotBody["systemInstruction"].(map[string]any)
	sysText := system["parts"].([]any)[0].(map[string]any)["text"].(string)
	require.Contains(t, sysText, "Bricklix")
	require.Contains(t, sysText, "Machine Learning Solutions")
}

func TestGenerateRetriesOnServerErrors(t *testing.T) {
	attempts := 0
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		attempts++
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	c := newTestClient(t, server.URL)
	_, err := c.AnswerQuestion(context.Background(), "hi")
	require.Error(t, err)
	require.Contains(t, err.Error(), "after 5 attempts")
	require.Equal(t, 5, attempts)
}

func TestGenerateRecoversAfterRateLimit(t *testing.T) {
	attempts := 0
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		attempts++
		if attempts < 3 {
			w.WriteHeader(http.StatusTooManyRequests)
			return
		}
		w.Write([]byte(candidateBody("recovered")))
	}))
	defer server.Close()

	c := newTestClient(t, server.URL)
	text, err := c.GenerateIdeas(context.Background(), "AI Integration")
	require.NoError(t, err)
	require.Equal(t, "recovered", text)
	require.Equal(t, 3, attempts)
}

func TestGenerateDoesNotRetryClientErrors(t *testing.T) {
	attempts := 0
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		attempts++
		w.WriteHeader(http.StatusBadRequest)
		w.Write([]byte(`{"error":"bad request"}`))
	}))
	defer server.Close()

	c := newTestClient(t, server.URL)
	_, err := c.AnswerQuestion(context.Background(), "hi")
	require.Error(t, err)
	require.Equal(t, 1, attempts)
}

func TestGenerateRejectsEmptyCandidates(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"candidates":[]}`))
	}))
	defer server.Close()

	c := newTestClient(t, server.URL)
	_, err := c.AnswerQuestion(context.Background(), "hi")
	require.Error(t, err)
	require.Contains(t, err.Error(), "no candidates")
}

func TestGenerateHonorsContextDuringBackoff(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer server.Close()

	c := newTestClient(t, server.URL)
	c.backoff = func(int) time.Duration { return time.Minute }

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	_, err := c.AnswerQuestion(ctx, "hi")
	require.ErrorIs(t, err, context.DeadlineExceeded)
}
