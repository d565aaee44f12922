package domain

import (
	"encoding/json"
	"time"
)

// AuditRecord is a before/after snapshot of one successful mutation.
// Records are written fire-and-forget; a failed write never rolls back the
// operation it describes.
type AuditRecord struct {
	AuditID    string          `json:"auditID"` // Primary key (UUID)
	ChurchID   string          `json:"churchID"`
	ActorID    string          `json:"actorID"`
	Action     string          `json:"action"`     // e.g. "journal.approve"
	EntityType string          `json:"entityType"` // e.g. "journal"
	EntityID   string          `json:"entityID"`
	Before     json.RawMessage `json:"before,omitempty"`
	After      json.RawMessage `json:"after,omitempty"`
	RecordedAt time.Time       `json:"recordedAt"`
}
