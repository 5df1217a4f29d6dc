package models

// Domain event types.
const (
	EventUserRegistered  = "user.registered"
	EventSessionCreated  = "session.created"
	EventSessionRevoked  = "session.revoked"
	EventSyllabusCreated = "syllabus.created"
)

// Event is a domain event published to the event stream.
type Event struct {
	EventID    string `json:"event_id"`              // Unique event identifier
	Type       string `json:"type"`                  // One of the Event* constants
	UserID     string `json:"user_id,omitempty"`     // Acting user, if known
	ResourceID string `json:"resource_id,omitempty"` // Affected document id
	Timestamp  int64  `json:"timestamp"`             // Unix seconds
}
