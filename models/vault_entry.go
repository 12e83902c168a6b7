package models

import "time"

// Vault entry categories. Artifacts converted on a finished session map
// note -> learning; code and external pass through unchanged. Project logs
// are appended directly, outside any session.
const (
	VaultLearning = "learning"
	VaultCode     = "code"
	VaultExternal = "external"
	VaultProject  = "project"
)

// VaultEntry is a permanent record in the append-only vault: the durable
// form an artifact takes when a focus session finishes successfully, or a
// project log appended directly. Entries are never updated or deleted and
// are read most-recent-first.
type VaultEntry struct {
	// ID is the client-generated UUID of the entry.
	ID string `json:"id"`

	// OwnerID is the account this entry exclusively belongs to.
	OwnerID int64 `json:"owner_id"`

	// Category is one of the Vault* constants above.
	Category string `json:"category"`

	// Title is a short human-readable label.
	Title string `json:"title"`

	// Content is the body of the record. Encrypted at rest in the local
	// store; plaintext everywhere above the storage boundary.
	Content string `json:"content"`

	// Tags are free-form labels. A code artifact's language, when present,
	// is carried over as a tag during conversion.
	Tags []string `json:"tags,omitempty"`

	// FocusSessionID and IntentID record provenance for entries produced by
	// a finished session. Empty for direct project logs.
	FocusSessionID string `json:"focus_session_id,omitempty"`
	IntentID       string `json:"intent_id,omitempty"`

	CreatedAt time.Time `json:"created_at"`
}
