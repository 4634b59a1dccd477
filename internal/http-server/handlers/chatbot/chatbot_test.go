package chatbot

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/require"

	"Bricklix/bot/chat"
	"Bricklix/entity"
	"Bricklix/internal/lib/api/response"
)

type stubCore struct {
	views map[string]*entity.ChatView
	busy  bool
	reset []string
}

func (s *stubCore) view(sessionID string) *entity.ChatView {
	if v, ok := s.views[sessionID]; ok {
		return v
	}
	v := &entity.ChatView{SessionID: sessionID, CurrentStep: "main"}
	if s.views == nil {
		s.views = make(map[string]*entity.ChatView)
	}
	s.views[sessionID] = v
	return v
}

func (s *stubCore) OpenChat(_ context.Context, sessionID string) (*entity.ChatView, error) {
	v := s.view(sessionID)
	v.IsOpen = true
	return v, nil
}

func (s *stubCore) CloseChat(_ context.Context, sessionID string) error {
	s.view(sessionID).IsOpen = false
	return nil
}

func (s *stubCore) GetChat(_ context.Context, sessionID string) (*entity.ChatView, error) {
	return s.view(sessionID), nil
}

func (s *stubCore) ResetChat(_ context.Context, sessionID string) error {
	s.reset = append(s.reset, sessionID)
	return nil
}

func (s *stubCore) ChatText(_ context.Context, sessionID, text string) (*entity.ChatView, error) {
	if s.busy {
		return s.view(sessionID), chat.ErrBusy
	}
	v := s.view(sessionID)
	v.Messages = append(v.Messages, entity.Message{Sender: entity.SenderUser, Content: entity.TextContent(text)})
	return v, nil
}

func (s *stubCore) ChatAction(_ context.Context, sessionID, kind, detailID, serviceName, label string) (*entity.ChatView, error) {
	if s.busy {
		return s.view(sessionID), chat.ErrBusy
	}
	v := s.view(sessionID)
	v.CurrentStep = kind
	return v, nil
}

func doJSON(t *testing.T, handler http.HandlerFunc, target string, body any) *httptest.ResponseRecorder {
	t.Helper()
	raw, err := json.Marshal(body)
	require.NoError(t, err)
	req := httptest.NewRequest(http.MethodPost, target, bytes.NewReader(raw))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	handler(rec, req)
	return rec
}

func decodeView(t *testing.T, rec *httptest.ResponseRecorder) entity.ChatView {
	t.Helper()
	var resp struct {
		Status string          `json:"status"`
		Data   entity.ChatView `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.Equal(t, response.StatusOK, resp.Status)
	return resp.Data
}

func TestOpenMintsSessionID(t *testing.T) {
	core := &stubCore{}
	rec := doJSON(t, Open(slog.New(slog.NewTextHandler(io.Discard, nil)), core), "/chat/open", OpenRequest{})

	require.Equal(t, http.StatusOK, rec.Code)
	view := decodeView(t, rec)
	require.NotEmpty(t, view.SessionID)
	require.True(t, view.IsOpen)
}

func TestOpenKeepsGivenSessionID(t *testing.T) {
	core := &stubCore{}
	rec := doJSON(t, Open(slog.New(slog.NewTextHandler(io.Discard, nil)), core), "/chat/open", OpenRequest{SessionID: "s1"})

	view := decodeView(t, rec)
	require.Equal(t, "s1", view.SessionID)
}

func TestMessageRequiresSessionAndText(t *testing.T) {
	core := &stubCore{}
	handler := Message(slog.New(slog.NewTextHandler(io.Discard, nil)), core)

	rec := doJSON(t, handler, "/chat/message", MessageRequest{Text: "hi"})
	var resp response.Response
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.Equal(t, response.StatusError, resp.Status)

	rec = doJSON(t, handler, "/chat/message", MessageRequest{SessionID: "s1"})
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.Equal(t, response.StatusError, resp.Status)

	rec = doJSON(t, handler, "/chat/message", MessageRequest{SessionID: "s1", Text: "hi"})
	view := decodeView(t, rec)
	require.Len(t, view.Messages, 1)
}

func TestBusyReturnsConflict(t *testing.T) {
	core := &stubCore{busy: true}

	rec := doJSON(t, Message(slog.New(slog.NewTextHandler(io.Discard, nil)), core), "/chat/message",
		MessageRequest{SessionID: "s1", Text: "hi"})
	require.Equal(t, http.StatusConflict, rec.Code)

	rec = doJSON(t, Action(slog.New(slog.NewTextHandler(io.Discard, nil)), core), "/chat/action",
		ActionRequest{SessionID: "s1", Action: chat.ActionServices})
	require.Equal(t, http.StatusConflict, rec.Code)
}

func TestResetViaRouter(t *testing.T) {
	core := &stubCore{}

	router := chi.NewRouter()
	router.Delete("/chat/{sessionID}", Reset(slog.New(slog.NewTextHandler(io.Discard, nil)), core))

	req := httptest.NewRequest(http.MethodDelete, "/chat/s1", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, []string{"s1"}, core.reset)
}
