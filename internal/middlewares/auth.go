package middlewares

//go:generate mockgen -source=auth.go -destination=mock_auth.go -package=middlewares

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/sbilibin2017/syllabus-builder/internal/logger"
	"github.com/sbilibin2017/syllabus-builder/internal/models"
	"github.com/sbilibin2017/syllabus-builder/internal/services"
)

// Authenticator resolves an Authorization header to a user.
type Authenticator interface {
	Authenticate(ctx context.Context, authorization string) (*models.User, error)
}

// AuthMiddleware returns a middleware that requires a valid bearer session.
// The resolved user is available to handlers through UserFromContext.
func AuthMiddleware(auth Authenticator) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()

			user, err := auth.Authenticate(ctx, r.Header.Get("Authorization"))
			if err != nil {
				status, detail := authFailure(err)
				if status == http.StatusInternalServerError {
					logger.Log.Errorw("authorization failed", "err", err)
				} else {
					logger.Log.Infow("authorization failed", "err", err)
				}
				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(status)
				json.NewEncoder(w).Encode(models.ErrorResponse{Detail: detail})
				return
			}

			next.ServeHTTP(w, r.WithContext(ContextWithUser(ctx, user)))
		})
	}
}

func authFailure(err error) (int, string) {
	switch {
	case errors.Is(err, services.ErrMissingAuthorization):
		return http.StatusUnauthorized, "Missing authorization header"
	case errors.Is(err, services.ErrInvalidSession):
		return http.StatusUnauthorized, "Invalid session token"
	case errors.Is(err, services.ErrUserGone):
		return http.StatusUnauthorized, "User not found"
	case errors.Is(err, services.ErrUnauthorized):
		return http.StatusUnauthorized, "Unauthorized"
	default:
		return http.StatusInternalServerError, "Internal server error"
	}
}

// contextKey is an unexported type for keys in context
type contextKey struct{ name string }

var userKey = contextKey{"user"}

// ContextWithUser stores the authenticated user in the context
func ContextWithUser(ctx context.Context, user *models.User) context.Context {
	return context.WithValue(ctx, userKey, user)
}

// UserFromContext retrieves the authenticated user from the context. Returns nil if not present.
func UserFromContext(ctx context.Context) *models.User {
	user, _ := ctx.Value(userKey).(*models.User)
	return user
}
