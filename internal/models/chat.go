package models

// ChatRequest represents the JSON body for the outline assistant
// swagger:model ChatRequest
type ChatRequest struct {
	// Course title
	// required: true
	// example: Intro to Biology
	CourseTitle string `json:"course_title" validate:"required"`

	// Subject
	// example: Science
	Subject *string `json:"subject"`

	// Level
	// example: Beginner
	Level *string `json:"level"`

	// Course goals
	Goals []string `json:"goals"`

	// Constraints on the course
	// example: Two sessions per week
	Constraints *string `json:"constraints"`
}

// ChatResponse carries the composed prompt and the generated outline
// swagger:model ChatResponse
type ChatResponse struct {
	// Composed instructions
	Prompt string `json:"prompt"`

	// Weekly topics
	Outline []string `json:"outline"`
}
