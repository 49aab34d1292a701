package http

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/rs/zerolog/log"

	"github.com/vasiliy-maslov/shop-backend/internal/auth"
	"github.com/vasiliy-maslov/shop-backend/internal/user"
)

type contextKey string

const currentUserKey contextKey = "currentUser"

// RequireAuth проверяет bearer-токен и кладёт пользователя в контекст запроса.
func RequireAuth(authSvc auth.Service) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			header := r.Header.Get("Authorization")
			if header == "" {
				respondWithError(w, http.StatusUnauthorized, "Missing authorization header")
				return
			}

			token, ok := strings.CutPrefix(header, "Bearer ")
			if !ok {
				respondWithError(w, http.StatusUnauthorized, "Invalid authorization header")
				return
			}

			u, err := authSvc.CurrentUser(r.Context(), token)
			if err != nil {
				log.Warn().Err(err).Msg("Failed to resolve current user from token")
				respondWithError(w, mapErrorToStatusCode(err), clientAuthMessage(err))
				return
			}

			ctx := context.WithValue(r.Context(), currentUserKey, u)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// CurrentUser достаёт пользователя, положенного RequireAuth.
func CurrentUser(ctx context.Context) (*user.User, bool) {
	u, ok := ctx.Value(currentUserKey).(*user.User)
	return u, ok
}

func clientAuthMessage(err error) string {
	switch {
	case errors.Is(err, auth.ErrTokenExpired):
		return "Token expired"
	case errors.Is(err, auth.ErrTokenPayload):
		return "Could not validate credentials"
	case errors.Is(err, user.ErrNotFound):
		return "Could not find user"
	default:
		return "Invalid token"
	}
}
