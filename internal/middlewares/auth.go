package middlewares

import (
	"context"
	"errors"
	"net/http"

	"github.com/sbilibin2017/idea-board/internal/logger"
	"github.com/sbilibin2017/idea-board/internal/models"
	"github.com/sbilibin2017/idea-board/internal/services"
)

//go:generate mockgen -source=auth.go -destination=mock_auth.go -package=middlewares

// TokenExtractor reads the raw token from a request.
type TokenExtractor interface {
	GetTokenFromRequest(ctx context.Context, r *http.Request) (string, error)
}

// UserResolver maps a token to the stored user it names.
type UserResolver interface {
	ResolveUser(ctx context.Context, tokenString string) (*models.UserDB, error)
}

type usernameKey struct{}

// WithUsername returns a copy of ctx carrying the authenticated username.
func WithUsername(ctx context.Context, username string) context.Context {
	return context.WithValue(ctx, usernameKey{}, username)
}

// UsernameFromContext returns the username stored by AuthMiddleware.
func UsernameFromContext(ctx context.Context) (string, bool) {
	username, ok := ctx.Value(usernameKey{}).(string)
	return username, ok && username != ""
}

// AuthMiddleware admits only requests carrying a token that resolves to a stored user.
func AuthMiddleware(extractor TokenExtractor, resolver UserResolver) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()

			tokenString, err := extractor.GetTokenFromRequest(ctx, r)
			if err != nil {
				logger.Log.Errorw("authorization failed", "err", err)
				w.Header().Set("WWW-Authenticate", "Bearer")
				writeError(w, http.StatusUnauthorized, "Not authenticated")
				return
			}

			user, err := resolver.ResolveUser(ctx, tokenString)
			if err != nil {
				switch {
				case errors.Is(err, services.ErrUnauthorized):
					w.Header().Set("WWW-Authenticate", "Bearer")
					writeError(w, http.StatusUnauthorized, "Invalid token")
				case errors.Is(err, services.ErrUserNotFound):
					writeError(w, http.StatusNotFound, "User not found")
				default:
					logger.Log.Errorw("failed to resolve user", "err", err)
					writeError(w, http.StatusInternalServerError, "Internal server error")
				}
				return
			}

			next.ServeHTTP(w, r.WithContext(WithUsername(ctx, user.Username)))
		})
	}
}
