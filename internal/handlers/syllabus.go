package handlers

//go:generate mockgen -source=syllabus.go -destination=mock_syllabus.go -package=handlers

import (
	"context"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/sbilibin2017/syllabus-builder/internal/middlewares"
	"github.com/sbilibin2017/syllabus-builder/internal/models"
	"github.com/sbilibin2017/syllabus-builder/internal/services"
)

// SyllabusCreator defines the interface that the service must implement.
type SyllabusCreator interface {
	Create(ctx context.Context, ownerID string, req models.SyllabusCreateRequest) (*models.Syllabus, error)
}

// SyllabusLister defines the interface that the service must implement.
type SyllabusLister interface {
	List(ctx context.Context, ownerID string) ([]models.Syllabus, error)
}

// SyllabusGetter defines the interface that the service must implement.
type SyllabusGetter interface {
	Get(ctx context.Context, ownerID, id string) (*models.Syllabus, error)
}

// NewCreateSyllabusHandler returns an HTTP handler that creates a syllabus owned by the caller.
// @Summary Create a syllabus
// @Description Stores a syllabus for the authenticated user. Only title is required.
// @Tags syllabi
// @Accept json
// @Produce json
// @Param syllabusRequest body models.SyllabusCreateRequest true "Syllabus"
// @Success 200 {object} models.Syllabus "Created syllabus"
// @Failure 400 {object} models.ErrorResponse "Invalid request"
// @Failure 401 {object} models.ErrorResponse "Unauthorized"
// @Failure 422 {object} models.ErrorResponse "Validation error"
// @Failure 500 {object} models.ErrorResponse "Internal server error"
// @Router /syllabi [post]
// @Security BearerAuth
func NewCreateSyllabusHandler(svc SyllabusCreator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		user, ok := requireUser(w, r)
		if !ok {
			return
		}

		var req models.SyllabusCreateRequest
		if !decodeRequest(w, r, &req) {
			return
		}

		syllabus, err := svc.Create(r.Context(), user.ID, req)
		if err != nil {
			writeInternalError(w, r, err)
			return
		}

		writeJSON(w, http.StatusOK, syllabus)
	}
}

// NewListSyllabiHandler returns an HTTP handler listing the caller's syllabi.
// @Summary List syllabi
// @Description Returns the authenticated user's syllabi, newest first
// @Tags syllabi
// @Produce json
// @Success 200 {array} models.Syllabus
// @Failure 401 {object} models.ErrorResponse "Unauthorized"
// @Failure 500 {object} models.ErrorResponse "Internal server error"
// @Router /syllabi [get]
// @Security BearerAuth
func NewListSyllabiHandler(svc SyllabusLister) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		user, ok := requireUser(w, r)
		if !ok {
			return
		}

		syllabi, err := svc.List(r.Context(), user.ID)
		if err != nil {
			writeInternalError(w, r, err)
			return
		}

		writeJSON(w, http.StatusOK, syllabi)
	}
}

// NewGetSyllabusHandler returns an HTTP handler for a single syllabus.
// Syllabi owned by someone else are reported as missing.
// @Summary Get a syllabus
// @Tags syllabi
// @Produce json
// @Param id path string true "Syllabus id"
// @Success 200 {object} models.Syllabus
// @Failure 401 {object} models.ErrorResponse "Unauthorized"
// @Failure 404 {object} models.ErrorResponse "Not found"
// @Failure 500 {object} models.ErrorResponse "Internal server error"
// @Router /syllabi/{id} [get]
// @Security BearerAuth
func NewGetSyllabusHandler(svc SyllabusGetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		user, ok := requireUser(w, r)
		if !ok {
			return
		}

		syllabus, err := svc.Get(r.Context(), user.ID, chi.URLParam(r, "id"))
		if err != nil {
			if errors.Is(err, services.ErrNotFound) {
				writeError(w, http.StatusNotFound, "Not found")
				return
			}
			writeInternalError(w, r, err)
			return
		}

		writeJSON(w, http.StatusOK, syllabus)
	}
}

// requireUser fails closed when the auth middleware did not run.
func requireUser(w http.ResponseWriter, r *http.Request) (*models.User, bool) {
	user := middlewares.UserFromContext(r.Context())
	if user == nil {
		writeError(w, http.StatusUnauthorized, "Missing authorization header")
		return nil, false
	}
	return user, true
}
