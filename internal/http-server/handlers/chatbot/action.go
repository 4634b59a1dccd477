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

type ActionRequest struct {
	SessionID   string `json:"session_id"`
	Action      string `json:"action"`
	DetailID    string `json:"detail_id,omitempty"`
	ServiceName string `json:"service_name,omitempty"`
	Label       string `json:"label,omitempty"`
}

// Action handles a quick-action click from the widget.
func Action(log *slog.Logger, handler Core) http.HandlerFunc {
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

		var req ActionRequest
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
		if req.Action == "" {
			logger.Error("no action provided")
			render.JSON(w, r, response.Error("No action provided"))
			return
		}
		logger = logger.With(
			slog.String("session_id", req.SessionID),
			slog.String("action", req.Action),
		)

		view, err := handler.ChatAction(r.Context(), req.SessionID, req.Action, req.DetailID, req.ServiceName, req.Label)
		if err != nil {
			if errors.Is(err, chat.ErrBusy) {
				render.Status(r, http.StatusConflict)
				render.JSON(w, r, response.Error(err.Error()))
				return
			}
			logger.Error("chat action", sl.Err(err))
			render.JSON(w, r, response.Error(fmt.Sprintf("Action failed: %v", err)))
			return
		}
		logger.Debug("chat action handled")

		render.JSON(w, r, response.Ok(view))
	}
}
