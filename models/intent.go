package models

import "time"

// IntentStatus describes where an intent sits in its lifecycle.
// An intent is born declared, is locked to in_focus when a focus session
// begins against it, and ends resolved when the reflection gate (or an
// explicit resolution without focus) closes the loop.
type IntentStatus string

const (
	// IntentDeclared means the intent exists but no focus session has been
	// started against it yet. The owner may still change their mind.
	IntentDeclared IntentStatus = "declared"

	// IntentInFocus means a focus session is (or was) running against the
	// intent. A new intent cannot be declared until this one resolves.
	IntentInFocus IntentStatus = "in_focus"

	// IntentResolved is terminal. Resolved intents are immutable and live
	// in the append-only history.
	IntentResolved IntentStatus = "resolved"
)

// Intent is a user-authored declaration of what to work on.
// At most one intent per owner may be in a non-resolved status at any time.
type Intent struct {
	// ID is the client-generated UUID of the intent.
	ID string `json:"id"`

	// OwnerID is the account this intent exclusively belongs to.
	OwnerID int64 `json:"owner_id"`

	// Declaration is the free-text statement of what the owner chose to
	// work on. Trimmed, never empty.
	Declaration string `json:"declaration"`

	// Status is the current lifecycle stage.
	Status IntentStatus `json:"status"`

	// DeclaredAt is when the intent was created.
	DeclaredAt time.Time `json:"declared_at"`

	// ResolvedAt is when the intent entered the resolved status.
	// Nil while the intent is still live.
	ResolvedAt *time.Time `json:"resolved_at,omitempty"`
}
