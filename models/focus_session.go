package models

import "time"

// FocusSessionStatus describes the state-machine position of a focus session:
// no-session -> active -> {finished | abandoned}.
type FocusSessionStatus string

const (
	// SessionActive means the session is the owner's current working episode.
	SessionActive FocusSessionStatus = "active"

	// SessionFinished is terminal: the session was closed with proof.
	SessionFinished FocusSessionStatus = "finished"

	// SessionAbandoned is terminal: the session was closed without proof.
	// Abandoning is always available and never blocked.
	SessionAbandoned FocusSessionStatus = "abandoned"
)

// FocusOutcome records how a terminal session ended. Empty until the session
// leaves the active status.
type FocusOutcome string

const (
	OutcomeFinished  FocusOutcome = "finished"
	OutcomeAbandoned FocusOutcome = "abandoned"
)

// FocusSession is one working episode tied to exactly one intent.
// At most one session per owner may be active at any time. Terminal sessions
// are immutable except for the one-time reflection flag transition.
type FocusSession struct {
	// ID is the client-generated UUID of the session.
	ID string `json:"id"`

	// OwnerID is the account this session exclusively belongs to.
	OwnerID int64 `json:"owner_id"`

	// IntentID references the intent the session was started against.
	IntentID string `json:"intent_id"`

	// IntentSnapshot is the intent declaration text captured at session
	// start. Immune to later edits of the intent itself.
	IntentSnapshot string `json:"intent_snapshot"`

	// StartedAt is when the session began.
	StartedAt time.Time `json:"started_at"`

	// EndedAt is when the session reached a terminal status. Nil while active.
	EndedAt *time.Time `json:"ended_at,omitempty"`

	// Status is the state-machine position of the session.
	Status FocusSessionStatus `json:"status"`

	// Outcome is how the session ended. Empty while the session is active.
	Outcome FocusOutcome `json:"outcome,omitempty"`

	// Proof is the owner's completion statement. Required (non-blank) when
	// the outcome is finished, empty otherwise.
	Proof string `json:"proof,omitempty"`

	// ReflectionSubmitted is set once the mandatory reflection for this
	// session has been recorded.
	ReflectionSubmitted bool `json:"reflection_submitted"`

	// ReflectionDeferred is set when the owner postponed the reflection.
	// The session is archived immediately and the reflection obligation
	// moves to the pending queue.
	ReflectionDeferred bool `json:"reflection_deferred"`

	// Artifacts is the snapshot of the ephemeral artifact collection taken
	// at the moment the session closed. Empty while the session is active.
	Artifacts []FocusArtifact `json:"artifacts,omitempty"`
}
