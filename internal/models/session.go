package models

// Session is a document of the "session" collection.
// ExpiresAt is recorded for clients but is not enforced by authentication.
type Session struct {
	ID        string  `json:"id"`         // Generated document id
	UserID    string  `json:"user_id"`    // Id of the owning user
	Token     string  `json:"token"`      // Opaque bearer token
	UserAgent *string `json:"user_agent"` // Client user agent, currently never recorded
	CreatedAt string  `json:"created_at"` // ISO-8601 creation timestamp
	ExpiresAt string  `json:"expires_at"` // ISO-8601 advisory expiry
}

// CachedSession is what the session cache keeps for a token.
type CachedSession struct {
	SessionID string `json:"session_id"`
	UserID    string `json:"user_id"`
}
