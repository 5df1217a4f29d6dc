package handlers

//go:generate mockgen -source=logout.go -destination=mock_logout.go -package=handlers

import (
	"context"
	"net/http"

	"github.com/sbilibin2017/syllabus-builder/internal/logger"
	"github.com/sbilibin2017/syllabus-builder/internal/middlewares"
	"github.com/sbilibin2017/syllabus-builder/internal/models"
)

// Logouter defines the interface that the service must implement.
type Logouter interface {
	Logout(ctx context.Context, authorization string) error
}

// NewLogoutHandler returns an HTTP handler that revokes the caller's session.
// It always answers {"ok": true}, with or without a token.
// @Summary Logout
// @Description Deletes the sessions holding the bearer token, if any
// @Tags auth
// @Produce json
// @Success 200 {object} models.LogoutResponse
// @Router /auth/logout [post]
// @Security BearerAuth
func NewLogoutHandler(svc Logouter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := svc.Logout(r.Context(), r.Header.Get("Authorization")); err != nil {
			logger.Log.Errorw("logout failed", "request_id", middlewares.RequestIDFromContext(r.Context()), "error", err)
		}
		writeJSON(w, http.StatusOK, models.LogoutResponse{OK: true})
	}
}
