package handlers

//go:generate mockgen -source=login.go -destination=mock_login.go -package=handlers

import (
	"context"
	"errors"
	"net/http"

	"github.com/sbilibin2017/syllabus-builder/internal/models"
	"github.com/sbilibin2017/syllabus-builder/internal/services"
)

// Loginer defines the interface that the service must implement.
type Loginer interface {
	Login(ctx context.Context, email, password string) (string, models.UserSummary, error)
}

// NewLoginHandler returns an HTTP handler for user login.
// @Summary Login
// @Description Checks credentials and opens a new session. Earlier sessions stay valid.
// @Tags auth
// @Accept json
// @Produce json
// @Param loginRequest body models.LoginRequest true "User login request"
// @Success 200 {object} models.AuthResponse "Session token and user"
// @Failure 400 {object} models.ErrorResponse "Invalid credentials / invalid request"
// @Failure 422 {object} models.ErrorResponse "Validation error"
// @Failure 500 {object} models.ErrorResponse "Internal server error"
// @Router /auth/login [post]
func NewLoginHandler(svc Loginer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req models.LoginRequest
		if !decodeRequest(w, r, &req) {
			return
		}

		token, user, err := svc.Login(r.Context(), req.Email, req.Password)
		if err != nil {
			if errors.Is(err, services.ErrInvalidCredentials) {
				writeError(w, http.StatusBadRequest, "Invalid credentials")
				return
			}
			writeInternalError(w, r, err)
			return
		}

		writeJSON(w, http.StatusOK, models.AuthResponse{Token: token, User: user})
	}
}
