package middleware

import (
	"context"
	"net/http"
	"time"

	"inkwell/app/models"
	"inkwell/app/services"

	"github.com/rs/zerolog"
)

type contextKey int

const principalKey contextKey = iota

// statusRecorder captures the response status for the request log.
type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (w *statusRecorder) WriteHeader(status int) {
	w.status = status
	w.ResponseWriter.WriteHeader(status)
}

// Logger logs method, path, status and duration of each request.
func Logger(log zerolog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
			next.ServeHTTP(rec, r)
			log.Info().
				Str("method", r.Method).
				Str("path", r.URL.Path).
				Int("status", rec.status).
				Dur("duration", time.Since(start)).
				Msg("request")
		})
	}
}

// Recoverer recovers from panics and logs the error
func Recoverer(log zerolog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				if err := recover(); err != nil {
					log.Error().Interface("panic", err).Str("path", r.URL.Path).Msg("panic recovered")
					http.Error(w, "Internal Server Error", http.StatusInternalServerError)
				}
			}()
			next.ServeHTTP(w, r)
		})
	}
}

// ResolvePrincipal reads the session cookie, resolves it to a user and puts
// the result in the request context. Handlers pull it out with Principal and
// pass it explicitly into the services; nothing below this layer reads
// ambient request state.
func ResolvePrincipal(users *services.UserService, cookieName string, log zerolog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			var token string
			if cookie, err := r.Cookie(cookieName); err == nil {
				token = cookie.Value
			}

			user, err := users.CurrentUser(token)
			if err != nil {
				log.Error().Err(err).Msg("failed to resolve session")
				http.Error(w, "Internal Server Error", http.StatusInternalServerError)
				return
			}

			if user != nil {
				r = r.WithContext(context.WithValue(r.Context(), principalKey, user))
			}
			next.ServeHTTP(w, r)
		})
	}
}

// Principal returns the authenticated user for the request, or nil for
// anonymous access.
func Principal(r *http.Request) *models.User {
	user, _ := r.Context().Value(principalKey).(*models.User)
	return user
}
