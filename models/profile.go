package models

// Mode is the coarse activity flag mirrored to the account store: ACTIVE
// while an intent is live, IDLE otherwise.
type Mode string

const (
	ModeActive Mode = "ACTIVE"
	ModeIdle   Mode = "IDLE"
)

// Profile holds the durable account fields the engine reads and writes
// through the account adapter. The account store owns these fields; the
// engine keeps a working copy for the active owner.
type Profile struct {
	// OwnerID is the account the profile belongs to.
	OwnerID int64 `json:"owner_id"`

	// Name is the display name of the owner.
	Name string `json:"name"`

	// Role is the owner's self-described role (student, engineer, ...).
	Role string `json:"role,omitempty"`

	// Verified gates all aura rewards and decay: an unverified owner's
	// score never moves.
	Verified bool `json:"verified"`

	// Mode is the coarse activity flag.
	Mode Mode `json:"mode"`

	// Domain is the learning domain assigned once during onboarding by the
	// external goal classifier.
	Domain string `json:"domain,omitempty"`

	// DomainConfidence is the classifier's confidence in Domain, in [0, 1].
	DomainConfidence float64 `json:"domain_confidence,omitempty"`
}

// Classification is the result of the external goal classifier: a domain
// label and the classifier's confidence in it.
type Classification struct {
	Domain     string  `json:"domain"`
	Confidence float64 `json:"confidence"`
}
