package handlers

import (
	"net/http"

	"github.com/sbilibin2017/syllabus-builder/internal/models"
)

// NewRootHandler returns an HTTP handler identifying the API.
// @Summary API banner
// @Tags meta
// @Produce json
// @Success 200 {object} models.MessageResponse
// @Router / [get]
func NewRootHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, models.MessageResponse{Message: "SaaS Syllabus Builder API"})
	}
}

// NewSchemaHandler returns an HTTP handler describing the stored document shapes.
// @Summary Document schemas
// @Description JSON schema of the user, session and syllabus documents
// @Tags meta
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Router /schema [get]
func NewSchemaHandler() http.HandlerFunc {
	schemas := models.Schemas()
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, schemas)
	}
}
