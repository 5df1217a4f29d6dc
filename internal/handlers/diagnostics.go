package handlers

//go:generate mockgen -source=diagnostics.go -destination=mock_diagnostics.go -package=handlers

import (
	"context"
	"net/http"

	"github.com/sbilibin2017/syllabus-builder/internal/models"
)

// Diagnoser defines the interface that the service must implement.
type Diagnoser interface {
	Diagnose(ctx context.Context) models.Diagnostics
}

// NewDiagnosticsHandler returns an HTTP handler reporting store connectivity.
// @Summary Backend diagnostics
// @Description Reports whether the document store is configured and reachable
// @Tags meta
// @Produce json
// @Success 200 {object} models.Diagnostics
// @Router /test [get]
func NewDiagnosticsHandler(svc Diagnoser) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, svc.Diagnose(r.Context()))
	}
}
