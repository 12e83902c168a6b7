package models

// AuraScoreMax and AuraScoreMin bound the engagement score. Every mutation
// clamps into this range.
const (
	AuraScoreMin float64 = 0
	AuraScoreMax float64 = 100
)

// AuraHistoryEntry is one point of the rolling score history. Date is a
// calendar day in "2006-01-02" form; at most one entry exists per day.
type AuraHistoryEntry struct {
	Date  string  `json:"date"`
	Score float64 `json:"score"`
}

// AuraState is the owner-scoped engagement score with its rolling history.
//
// The score is rewarded when a verified owner creates a permanent record and
// decays with elapsed days of inactivity: one missed day is forgiven, every
// further missed day costs a fixed amount, and the score never overshoots
// zero.
type AuraState struct {
	// OwnerID is the account this state exclusively belongs to.
	OwnerID int64 `json:"owner_id"`

	// Score is the current engagement score, clamped to [0, 100].
	Score float64 `json:"score"`

	// History holds the most recent score points, most-recent-first,
	// capped in length. Today's entry is upserted on every mutation.
	History []AuraHistoryEntry `json:"history,omitempty"`

	// LastDecayCheck is the calendar day ("2006-01-02") the decay rule was
	// last evaluated. The rule runs at most once per day.
	LastDecayCheck string `json:"last_decay_check,omitempty"`

	// Streak counts consecutive calendar days with verified activity.
	// Reset to zero whenever decay applies.
	Streak int `json:"streak"`
}

// ClampAuraScore forces v into the [AuraScoreMin, AuraScoreMax] range.
func ClampAuraScore(v float64) float64 {
	if v < AuraScoreMin {
		return AuraScoreMin
	}
	if v > AuraScoreMax {
		return AuraScoreMax
	}
	return v
}
