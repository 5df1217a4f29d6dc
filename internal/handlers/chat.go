package handlers

import (
	"net/http"

	"github.com/sbilibin2017/syllabus-builder/internal/models"
	"github.com/sbilibin2017/syllabus-builder/internal/outline"
)

// NewChatHandler returns an HTTP handler for the outline assistant.
// @Summary Generate a course outline
// @Description Deterministically builds a weekly outline and the prompt it was derived from
// @Tags ai
// @Accept json
// @Produce json
// @Param chatRequest body models.ChatRequest true "Course metadata"
// @Success 200 {object} models.ChatResponse
// @Failure 400 {object} models.ErrorResponse "Invalid request"
// @Failure 401 {object} models.ErrorResponse "Unauthorized"
// @Failure 422 {object} models.ErrorResponse "Validation error"
// @Router /ai/chat [post]
// @Security BearerAuth
func NewChatHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if _, ok := requireUser(w, r); !ok {
			return
		}

		var req models.ChatRequest
		if !decodeRequest(w, r, &req) {
			return
		}

		res := outline.Generate(outline.Input{
			CourseTitle: req.CourseTitle,
			Subject:     req.Subject,
			Level:       req.Level,
			Goals:       req.Goals,
			Constraints: req.Constraints,
		})

		writeJSON(w, http.StatusOK, models.ChatResponse{Prompt: res.Prompt, Outline: res.Outline})
	}
}
