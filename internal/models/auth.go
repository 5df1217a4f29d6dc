package models

// RegisterRequest represents the JSON body for user registration
// swagger:model RegisterRequest
type RegisterRequest struct {
	// Full name
	// required: true
	// example: Ada Lovelace
	Name string `json:"name" validate:"required"`

	// Email
	// required: true
	// example: ada@example.com
	Email string `json:"email" validate:"required"`

	// Password
	// required: true
	// example: secret123
	Password string `json:"password" validate:"required"`
}

// LoginRequest represents the JSON body for user login
// swagger:model LoginRequest
type LoginRequest struct {
	// Email
	// required: true
	// example: ada@example.com
	Email string `json:"email" validate:"required"`

	// Password
	// required: true
	// example: secret123
	Password string `json:"password" validate:"required"`
}

// AuthResponse is returned by register and login
// swagger:model AuthResponse
type AuthResponse struct {
	// Bearer session token
	Token string `json:"token"`

	// Authenticated user
	User UserSummary `json:"user"`
}

// LogoutResponse is returned by logout
// swagger:model LogoutResponse
type LogoutResponse struct {
	// Always true
	// example: true
	OK bool `json:"ok"`
}

// ErrorResponse is the body of every error response
// swagger:model ErrorResponse
type ErrorResponse struct {
	// Human readable error
	// example: Invalid credentials
	Detail string `json:"detail"`
}

// MessageResponse is returned by the root endpoint
// swagger:model MessageResponse
type MessageResponse struct {
	// example: SaaS Syllabus Builder API
	Message string `json:"message"`
}
