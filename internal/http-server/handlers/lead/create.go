package lead

import (
	"fmt"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/render"

	"Bricklix/entity"
	"Bricklix/internal/lib/api/response"
	"Bricklix/internal/lib/sl"
)

// Create accepts a complete lead posted by the site and forwards it to the
// sales inbox.
func Create(log *slog.Logger, handler Core) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		mod := sl.Module("http.handlers.lead")

		logger := log.With(
			mod,
			slog.String("request_id", middleware.GetReqID(r.Context())),
		)

		if handler == nil {
			logger.Error("lead pipeline not available")
			render.JSON(w, r, response.Error("Lead pipeline not available"))
			return
		}

		var lead entity.Lead
		if err := render.Bind(r, &lead); err != nil {
			logger.Error("invalid lead", sl.Err(err))
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error("Missing required fields"))
			return
		}

		logger = logger.With(slog.String("email", lead.Email))

		if err := handler.CreateLead(r.Context(), lead); err != nil {
			logger.Error("create lead", sl.Err(err))
			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, response.Error(fmt.Sprintf("Send failed: %v", err)))
			return
		}
		logger.Info("lead created")

		render.JSON(w, r, response.Ok("Lead sent successfully"))
	}
}
