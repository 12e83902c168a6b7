package engine

import (
	"context"
)

// NeedsOnboarding reports whether the owner still has to state a learning
// goal: true until the external classifier has assigned a domain.
func (e *SessionEngine) NeedsOnboarding() bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.profile.Domain == ""
}

// CompleteOnboarding sends the owner's free-text learning goal to the
// external classifier and stores the resulting domain on the profile,
// writing it through to the account store.
//
// The classifier is consulted exactly once per account: a repeat call on an
// already classified profile is rejected. A classifier failure leaves the
// profile untouched so onboarding can be retried.
func (e *SessionEngine) CompleteOnboarding(ctx context.Context, goalText string) bool {
	e.mu.Lock()
	defer e.mu.Unlock()

	if !e.guard.Authenticated() {
		e.logger.Warn().Msg("onboarding rejected: no authenticated owner")
		return false
	}
	if e.profile.Domain != "" {
		e.logger.Warn().
			Int64("owner_id", e.ownerID).
			Str("domain", e.profile.Domain).
			Msg("onboarding rejected: domain already assigned")
		return false
	}

	goal, ok := trimmed(goalText)
	if !ok {
		e.logger.Warn().Msg("onboarding rejected: empty goal")
		return false
	}

	classification, err := e.classifier.Classify(ctx, goal)
	if err != nil {
		e.logger.Error().Err(err).
			Int64("owner_id", e.ownerID).
			Msg("onboarding aborted: classifier call failed")
		return false
	}

	e.profile.Domain = classification.Domain
	e.profile.DomainConfidence = classification.Confidence

	if err = e.accounts.UpdateProfile(ctx, e.profile); err != nil {
		e.logger.Warn().Err(err).
			Int64("owner_id", e.ownerID).
			Msg("domain write-through to account store failed")
	}

	e.logger.Info().
		Int64("owner_id", e.ownerID).
		Str("domain", classification.Domain).
		Float64("confidence", classification.Confidence).
		Msg("onboarding completed")
	return true
}
