package models

// Diagnostics is the body of the /test endpoint
// swagger:model Diagnostics
type Diagnostics struct {
	// example: ✅ Running
	Backend string `json:"backend"`

	// example: ✅ Connected & Working
	Database string `json:"database"`

	// Whether DATABASE_URL is set
	// example: ✅ Set
	DatabaseURL string `json:"database_url"`

	// Whether DATABASE_NAME is set
	// example: ❌ Not Set
	DatabaseName string `json:"database_name"`

	// example: Connected
	ConnectionStatus string `json:"connection_status"`

	// First collections found in the store
	Collections []string `json:"collections"`
}
