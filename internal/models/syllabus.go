package models

// WeekPlan is a single week of a syllabus
// swagger:model WeekPlan
type WeekPlan struct {
	// Week number
	// example: 1
	Week int `json:"week"`

	// Topics covered in the week
	Topics []string `json:"topics"`

	// Reading list
	Readings []string `json:"readings"`

	// Assignments due
	Assignments []string `json:"assignments"`
}

// Syllabus is a document of the "syllabus" collection and the API representation of it
// swagger:model Syllabus
type Syllabus struct {
	// Syllabus id
	ID string `json:"id"`

	// Owner user id
	OwnerID string `json:"owner_id"`

	// Course title
	// example: Intro to Biology
	Title string `json:"title"`

	// Course code
	// example: BIO-101
	CourseCode *string `json:"course_code"`

	// Course description
	Description *string `json:"description"`

	// Learning objectives
	Objectives []string `json:"objectives"`

	// Level
	// example: Beginner
	Level *string `json:"level"`

	// Subject
	// example: Science
	Subject *string `json:"subject"`

	// Course length in weeks
	// example: 12
	DurationWeeks *int `json:"duration_weeks"`

	// Weekly plans
	Weeks []WeekPlan `json:"weeks"`

	// Creation timestamp
	CreatedAt string `json:"created_at"`

	// Last update timestamp
	UpdatedAt string `json:"updated_at"`
}

// SyllabusCreateRequest represents the JSON body for creating a syllabus
// swagger:model SyllabusCreateRequest
type SyllabusCreateRequest struct {
	// Course title
	// required: true
	// example: Intro to Biology
	Title string `json:"title" validate:"required"`

	// Course code
	// example: BIO-101
	CourseCode *string `json:"course_code"`

	// Course description
	Description *string `json:"description"`

	// Learning objectives
	Objectives []string `json:"objectives"`

	// Level
	// example: Beginner
	Level *string `json:"level"`

	// Subject
	// example: Science
	Subject *string `json:"subject"`

	// Course length in weeks
	// example: 12
	DurationWeeks *int `json:"duration_weeks"`

	// Weekly plans
	Weeks []WeekPlan `json:"weeks"`
}
