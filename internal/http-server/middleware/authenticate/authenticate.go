package authenticate

import (
	"fmt"
	"log/slog"
	"net/http"
	"strings"

	"github.com/go-chi/render"

	"Bricklix/internal/lib/api/response"
	"Bricklix/internal/lib/sl"
)

// Authenticate resolves an admin API key to its owner's username.
type Authenticate interface {
	CheckApiKey(key string) (string, error)
}

// New guards admin routes. The key arrives in the X-Api-Key header or as an
// Authorization Bearer token.
func New(log *slog.Logger, auth Authenticate) func(next http.Handler) http.Handler {
	mod := sl.Module("middleware.authenticate")
	log.With(mod).Info("authenticate middleware initialized")

	return func(next http.Handler) http.Handler {

		fn := func(w http.ResponseWriter, r *http.Request) {
			logger := log.With(mod)

			key := r.Header.Get("X-Api-Key")
			if key == "" {
				header := r.Header.Get("Authorization")
				if strings.HasPrefix(header, "Bearer ") {
					key = strings.TrimPrefix(header, "Bearer ")
				}
			}
			if key == "" {
				logger.With(sl.Err(fmt.Errorf("api key not found"))).Warn("auth failed")
				authFailed(w, r, "API key not found")
				return
			}

			if auth == nil {
				authFailed(w, r, "Unauthorized: authentication not enabled")
				return
			}

			username, err := auth.CheckApiKey(key)
			if err != nil {
				logger.With(sl.Secret("key", key), sl.Err(err)).Warn("auth failed")
				authFailed(w, r, "Unauthorized: invalid API key")
				return
			}

			w.Header().Set("X-User", username)
			next.ServeHTTP(w, r)
		}

		return http.HandlerFunc(fn)
	}
}

func authFailed(w http.ResponseWriter, r *http.Request, message string) {
	render.Status(r, http.StatusUnauthorized)
	render.JSON(w, r, response.Error(message))
}
