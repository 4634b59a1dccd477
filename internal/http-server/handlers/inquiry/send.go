package inquiry

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/render"

	"Bricklix/entity"
	"Bricklix/internal/lib/api/response"
	"Bricklix/internal/lib/sl"
)

// Send accepts a contact-form inquiry and forwards it to the sales inbox.
func Send(log *slog.Logger, handler Core) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		mod := sl.Module("http.handlers.inquiry")

		logger := log.With(
			mod,
			slog.String("request_id", middleware.GetReqID(r.Context())),
		)

		if handler == nil {
			logger.Error("inquiry pipeline not available")
			render.JSON(w, r, response.Error("Inquiry pipeline not available"))
			return
		}

		var inq entity.Inquiry
		if err := render.Bind(r, &inq); err != nil {
			logger.Error("invalid inquiry", sl.Err(err))
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error("First name, last name, and email are required."))
			return
		}

		logger = logger.With(
			slog.String("email", inq.Email),
			slog.String("type", inq.TypeLabel()),
		)

		if err := handler.SendInquiry(r.Context(), inq); err != nil {
			logger.Error("send inquiry", sl.Err(err))
			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, response.Error("Failed to send email. Please try again later."))
			return
		}
		logger.Info("inquiry sent")

		render.JSON(w, r, response.Ok("Inquiry sent successfully!"))
	}
}
