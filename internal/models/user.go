package models

// User is a document of the "user" collection.
type User struct {
	ID           string `json:"id"`            // Generated document id
	Name         string `json:"name"`          // Full name
	Email        string `json:"email"`         // Lowercased email, unique by convention
	PasswordSalt string `json:"password_salt"` // Random hex salt
	PasswordHash string `json:"password_hash"` // Hex digest of salt and password
	CreatedAt    string `json:"created_at"`    // ISO-8601 creation timestamp
	UpdatedAt    string `json:"updated_at"`    // ISO-8601 update timestamp
}

// Summary returns the public view of the user.
func (u *User) Summary() UserSummary {
	return UserSummary{ID: u.ID, Name: u.Name, Email: u.Email}
}

// UserSummary is the user representation returned by the auth endpoints
// swagger:model UserSummary
type UserSummary struct {
	// User id
	// example: 5b1d9a52-7a57-4c57-9a49-3f0a4d5e7c11
	ID string `json:"id"`

	// Full name
	// example: Ada Lovelace
	Name string `json:"name"`

	// Email address
	// example: ada@example.com
	Email string `json:"email"`
}
