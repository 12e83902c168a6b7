package models

import "time"

// Reflection is the mandatory retrospective statement closing the loop on a
// focus session. Created exactly once per terminal session that is not
// deferred, immutable once created.
//
// All three free-text fields are trimmed but otherwise unvalidated: the step
// is mandatory, the content is not.
type Reflection struct {
	// ID is the client-generated UUID of the reflection.
	ID string `json:"id"`

	// OwnerID is the account this reflection exclusively belongs to.
	OwnerID int64 `json:"owner_id"`

	// FocusSessionID references the session being reflected on.
	FocusSessionID string `json:"focus_session_id"`

	// IntentSnapshot is the intent text the session was working against.
	IntentSnapshot string `json:"intent_snapshot"`

	// Outcome mirrors how the session ended (finished or abandoned).
	Outcome FocusOutcome `json:"outcome"`

	// OutcomeDescription is the owner's account of what happened.
	OutcomeDescription string `json:"outcome_description"`

	// MistakePattern names a recurring mistake the owner noticed.
	MistakePattern string `json:"mistake_pattern"`

	// Insight is the takeaway the owner wants to carry forward.
	Insight string `json:"insight"`

	CreatedAt time.Time `json:"created_at"`
}

// ReflectionInput carries the three free-text fields of a reflection as
// entered by the owner, before trimming.
type ReflectionInput struct {
	OutcomeDescription string `json:"outcome_description"`
	MistakePattern     string `json:"mistake_pattern"`
	Insight            string `json:"insight"`
}
