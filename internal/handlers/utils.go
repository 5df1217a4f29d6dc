package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-playground/validator/v10"

	"github.com/sbilibin2017/syllabus-builder/internal/logger"
	"github.com/sbilibin2017/syllabus-builder/internal/middlewares"
	"github.com/sbilibin2017/syllabus-builder/internal/models"
)

const maxErrorRunes = 50

var validate = validator.New()

// decodeRequest decodes and validates a JSON body into dst.
// On failure it writes the error response and returns false.
func decodeRequest(w http.ResponseWriter, r *http.Request, dst any) bool {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		logger.Log.Infow("invalid request body", "request_id", middlewares.RequestIDFromContext(r.Context()), "path", r.URL.Path, "error", err)
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return false
	}

	if err := validate.Struct(dst); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) {
			logger.Log.Infow("request validation failed", "request_id", middlewares.RequestIDFromContext(r.Context()), "path", r.URL.Path, "error", err)
			writeError(w, http.StatusUnprocessableEntity, verrs.Error())
			return false
		}
		writeInternalError(w, r, err)
		return false
	}
	return true
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logger.Log.Errorw("failed to encode response", "error", err)
	}
}

func writeError(w http.ResponseWriter, status int, detail string) {
	writeJSON(w, status, models.ErrorResponse{Detail: detail})
}

// writeInternalError reports a store failure without exposing more than
// the first characters of the error.
func writeInternalError(w http.ResponseWriter, r *http.Request, err error) {
	logger.Log.Errorw("internal server error", "request_id", middlewares.RequestIDFromContext(r.Context()), "error", err)
	msg := []rune(err.Error())
	if len(msg) > maxErrorRunes {
		msg = msg[:maxErrorRunes]
	}
	writeError(w, http.StatusInternalServerError, "Internal server error: "+string(msg))
}
