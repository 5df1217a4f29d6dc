package handlers

//go:generate mockgen -source=register.go -destination=mock_register.go -package=handlers

import (
	"context"
	"errors"
	"net/http"

	"github.com/sbilibin2017/syllabus-builder/internal/models"
	"github.com/sbilibin2017/syllabus-builder/internal/services"
)

// Registerer defines the interface that the service must implement.
type Registerer interface {
	Register(ctx context.Context, name, email, password string) (string, models.UserSummary, error)
}

// NewRegisterHandler returns an HTTP handler for user registration.
// @Summary Register a new user
// @Description Creates a user account and opens a first session. Emails are compared case-insensitively.
// @Tags auth
// @Accept json
// @Produce json
// @Param registerRequest body models.RegisterRequest true "User registration request"
// @Success 200 {object} models.AuthResponse "Session token and user"
// @Failure 400 {object} models.ErrorResponse "Email already registered / invalid request"
// @Failure 422 {object} models.ErrorResponse "Validation error"
// @Failure 500 {object} models.ErrorResponse "Internal server error"
// @Router /auth/register [post]
func NewRegisterHandler(svc Registerer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req models.RegisterRequest
		if !decodeRequest(w, r, &req) {
			return
		}

		token, user, err := svc.Register(r.Context(), req.Name, req.Email, req.Password)
		if err != nil {
			switch {
			case errors.Is(err, services.ErrEmailTaken):
				writeError(w, http.StatusBadRequest, "Email already registered")
			default:
				writeInternalError(w, r, err)
			}
			return
		}

		writeJSON(w, http.StatusOK, models.AuthResponse{Token: token, User: user})
	}
}
