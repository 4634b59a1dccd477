package lead

import (
	"fmt"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/render"

	"Bricklix/internal/lib/api/response"
	"Bricklix/internal/lib/sl"
)

// List returns archived leads, newest first. Admin only.
func List(log *slog.Logger, handler Core) http.HandlerFunc {
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

		limit := parseQueryInt(r, "limit", 50)
		offset := parseQueryInt(r, "offset", 0)

		records, err := handler.ListLeads(r.Context(), limit, offset)
		if err != nil {
			logger.Error("list leads", sl.Err(err))
			render.JSON(w, r, response.Error(fmt.Sprintf("List failed: %v", err)))
			return
		}

		render.JSON(w, r, response.Ok(records))
	}
}

func parseQueryInt(r *http.Request, name string, def int64) int64 {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return def
	}
	v, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || v < 0 {
		return def
	}
	return v
}
