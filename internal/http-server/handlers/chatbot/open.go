package chatbot

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/render"
	"github.com/google/uuid"

	"Bricklix/internal/lib/api/response"
	"Bricklix/internal/lib/sl"
)

type OpenRequest struct {
	SessionID string `json:"session_id"`
}

// Open starts or resumes a widget session. A request without a session id
// gets a fresh one minted.
func Open(log *slog.Logger, handler Core) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		mod := sl.Module("http.handlers.chatbot")

		logger := log.With(
			mod,
			slog.String("request_id", middleware.GetReqID(r.Context())),
		)

		if handler == nil {
			logger.Error("chatbot not available")
			render.JSON(w, r, response.Error("Chatbot not available"))
			return
		}

		var req OpenRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			logger.Error("failed to decode request body", sl.Err(err))
			render.JSON(w, r, response.Error("Invalid request body"))
			return
		}

		if req.SessionID == "" {
			req.SessionID = uuid.NewString()
		}
		logger = logger.With(slog.String("session_id", req.SessionID))

		view, err := handler.OpenChat(r.Context(), req.SessionID)
		if err != nil {
			logger.Error("open chat", sl.Err(err))
			render.JSON(w, r, response.Error(fmt.Sprintf("Open failed: %v", err)))
			return
		}
		logger.Debug("chat opened")

		render.JSON(w, r, response.Ok(view))
	}
}
