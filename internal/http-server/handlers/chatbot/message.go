package chatbot

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/render"

	"Bricklix/bot/chat"
	"Bricklix/internal/lib/api/response"
	"Bricklix/internal/lib/sl"
)

type MessageRequest struct {
	SessionID string `json:"session_id"`
	Text      string `json:"text"`
}

// Message handles a free-text turn from the visitor.
func Message(log *slog.Logger, handler Core) http.HandlerFunc {
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

		var req MessageRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			logger.Error("failed to decode request body", sl.Err(err))
			render.JSON(w, r, response.Error("Invalid request body"))
			return
		}

		if req.SessionID == "" {
			logger.Error("no session id provided")
			render.JSON(w, r, response.Error("No session id provided"))
			return
		}
		if req.Text == "" {
			logger.Error("no text provided")
			render.JSON(w, r, response.Error("No text provided"))
			return
		}
		logger = logger.With(slog.String("session_id", req.SessionID))

		view, err := handler.ChatText(r.Context(), req.SessionID, req.Text)
		if err != nil {
			if errors.Is(err, chat.ErrBusy) {
				render.Status(r, http.StatusConflict)
				render.JSON(w, r, response.Error(err.Error()))
				return
			}
			logger.Error("chat message", sl.Err(err))
			render.JSON(w, r, response.Error(fmt.Sprintf("Message failed: %v", err)))
			return
		}
		logger.Debug("chat message handled")

		render.JSON(w, r, response.Ok(view))
	}
}
