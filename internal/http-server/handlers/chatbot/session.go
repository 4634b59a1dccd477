package chatbot

import (
	"fmt"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/render"

	"Bricklix/internal/lib/api/response"
	"Bricklix/internal/lib/sl"
)

// Get returns the session state for a widget that is re-rendering.
func Get(log *slog.Logger, handler Core) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logger, sessionID, ok := sessionLogger(log, w, r, handler)
		if !ok {
			return
		}

		view, err := handler.GetChat(r.Context(), sessionID)
		if err != nil {
			logger.Error("get chat", sl.Err(err))
			render.JSON(w, r, response.Error(fmt.Sprintf("Get failed: %v", err)))
			return
		}

		render.JSON(w, r, response.Ok(view))
	}
}

// Reset discards the session entirely.
func Reset(log *slog.Logger, handler Core) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logger, sessionID, ok := sessionLogger(log, w, r, handler)
		if !ok {
			return
		}

		if err := handler.ResetChat(r.Context(), sessionID); err != nil {
			logger.Error("reset chat", sl.Err(err))
			render.JSON(w, r, response.Error(fmt.Sprintf("Reset failed: %v", err)))
			return
		}
		logger.Info("chat reset")

		render.JSON(w, r, response.Ok("Session reset"))
	}
}

// Close collapses the widget, keeping the transcript.
func Close(log *slog.Logger, handler Core) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logger, sessionID, ok := sessionLogger(log, w, r, handler)
		if !ok {
			return
		}

		if err := handler.CloseChat(r.Context(), sessionID); err != nil {
			logger.Error("close chat", sl.Err(err))
			render.JSON(w, r, response.Error(fmt.Sprintf("Close failed: %v", err)))
			return
		}

		render.JSON(w, r, response.Ok("Session closed"))
	}
}

func sessionLogger(log *slog.Logger, w http.ResponseWriter, r *http.Request, handler Core) (*slog.Logger, string, bool) {
	mod := sl.Module("http.handlers.chatbot")

	logger := log.With(
		mod,
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	if handler == nil {
		logger.Error("chatbot not available")
		render.JSON(w, r, response.Error("Chatbot not available"))
		return nil, "", false
	}

	sessionID := chi.URLParam(r, "sessionID")
	if sessionID == "" {
		logger.Error("no session id provided")
		render.JSON(w, r, response.Error("No session id provided"))
		return nil, "", false
	}

	return logger.With(slog.String("session_id", sessionID)), sessionID, true
}
