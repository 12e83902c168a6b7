package engine

import (
	"context"
	"fmt"
	"time"

	"github.com/dchas/praxis/models"
)

// BeginFocus opens a working session against the active intent.
//
// Guard rejections (logged, no state change, returns false):
//   - no authenticated owner;
//   - a session already occupies the active slot, running or awaiting its
//     reflection;
//   - no active intent, or the intent is not in declared status.
//
// On success the intent locks to in_focus, the session captures a snapshot
// of the declaration text, and any stale ephemeral artifacts are cleared.
func (e *SessionEngine) BeginFocus(ctx context.Context) bool {
	e.mu.Lock()
	defer e.mu.Unlock()

	if !e.guard.Authenticated() {
		e.logger.Warn().Msg("begin focus rejected: no authenticated owner")
		return false
	}

	// A foreign-owner session is discarded here before the slot check.
	if session := e.guardedSession(); session != nil {
		e.logger.Warn().
			Str("session_id", session.ID).
			Str("status", string(session.Status)).
			Msg("begin focus rejected: session slot is occupied")
		return false
	}

	intent := e.guardedIntent()
	if intent == nil {
		e.logger.Warn().Msg("begin focus rejected: no active intent")
		return false
	}
	if intent.Status != models.IntentDeclared {
		e.logger.Warn().
			Str("intent_id", intent.ID).
			Str("status", string(intent.Status)).
			Msg("begin focus rejected: intent is not eligible")
		return false
	}

	session := models.FocusSession{
		ID:             e.uuid.Generate(),
		OwnerID:        e.guard.Owner(),
		IntentID:       intent.ID,
		IntentSnapshot: intent.Declaration,
		StartedAt:      e.now(),
		Status:         models.SessionActive,
	}

	intent.Status = models.IntentInFocus
	e.activeSession = &session
	e.artifacts = nil // clear stale ephemeral artifacts

	e.logger.Info().
		Str("session_id", session.ID).
		Str("intent_id", intent.ID).
		Msg("focus session started")
	return true
}

// FinishFocus closes the active session as successfully completed.
//
// Finishing is deliberately harder than abandoning: it requires at least one
// artifact as proof of work and a non-blank proof statement. Any unmet
// precondition logs a warning and returns false without touching state.
//
// On success the artifact collection is snapshotted into the session,
// converted into permanent vault entries (note maps to the learning
// category, other types pass through; a code artifact's language joins the
// tags), the aura reward is applied for each record, and the ephemeral
// collection is cleared. The session stays in the active slot awaiting its
// reflection.
func (e *SessionEngine) FinishFocus(ctx context.Context, proofText string) bool {
	e.mu.Lock()
	defer e.mu.Unlock()

	session := e.guardedSession()
	if session == nil || session.Status != models.SessionActive {
		e.logger.Warn().Msg("finish focus rejected: no active session")
		return false
	}

	artifacts := e.guardedArtifacts()
	if len(artifacts) == 0 {
		e.logger.Warn().
			Str("session_id", session.ID).
			Msg("finish focus rejected: no artifacts to convert")
		return false
	}

	proof, ok := trimmed(proofText)
	if !ok {
		e.logger.Warn().
			Str("session_id", session.ID).
			Msg("finish focus rejected: empty proof")
		return false
	}

	now := e.now()
	entries := make([]models.VaultEntry, 0, len(artifacts))
	for _, artifact := range artifacts {
		entry, err := e.convertArtifact(artifact, now)
		if err != nil {
			e.logger.Error().Err(err).
				Str("session_id", session.ID).
				Str("artifact_id", artifact.ID).
				Msg("finish focus aborted: artifact conversion failed")
			return false
		}
		entries = append(entries, entry)
	}

	if err := e.storages.Vault.Append(ctx, entries...); err != nil {
		e.logger.Error().Err(err).
			Str("session_id", session.ID).
			Msg("finish focus aborted: failed to persist permanent records")
		return false
	}

	session.EndedAt = &now
	session.Status = models.SessionFinished
	session.Outcome = models.OutcomeFinished
	session.Proof = proof
	session.Artifacts = append([]models.FocusArtifact(nil), artifacts...)
	e.artifacts = nil

	e.applyReward(ctx, e.cfg.KnowledgeReward*float64(len(entries)))

	e.logger.Info().
		Str("session_id", session.ID).
		Int("records", len(entries)).
		Msg("focus session finished")
	return true
}

// AbandonFocus closes the active session without proof. It is the universal
// cancellation path: always available while a session is active, with no
// artifact or proof requirement, and it can never be blocked.
//
// The artifact collection is snapshotted into the session for reference but
// produces no permanent records, and is then cleared unconditionally. The
// session stays in the active slot awaiting its reflection.
func (e *SessionEngine) AbandonFocus(ctx context.Context) bool {
	e.mu.Lock()
	defer e.mu.Unlock()

	session := e.guardedSession()
	if session == nil || session.Status != models.SessionActive {
		e.logger.Warn().Msg("abandon focus rejected: no active session")
		return false
	}

	now := e.now()
	session.EndedAt = &now
	session.Status = models.SessionAbandoned
	session.Outcome = models.OutcomeAbandoned
	session.Artifacts = append([]models.FocusArtifact(nil), e.guardedArtifacts()...)
	e.artifacts = nil

	e.logger.Info().
		Str("session_id", session.ID).
		Msg("focus session abandoned")
	return true
}

// convertArtifact builds the permanent form of an artifact. Content is
// encrypted for at-rest storage here, at the boundary to the vault.
func (e *SessionEngine) convertArtifact(artifact models.FocusArtifact, now time.Time) (models.VaultEntry, error) {
	category := string(artifact.Type)
	if artifact.Type == models.ArtifactNote {
		category = models.VaultLearning
	}

	var tags []string
	if artifact.Language != "" {
		tags = append(tags, artifact.Language)
	}

	content := artifact.Content
	if artifact.Type == models.ArtifactExternal && artifact.URL != "" {
		content = artifact.URL + "\n" + artifact.Content
	}

	sealed, err := e.cipher.Encrypt(content)
	if err != nil {
		return models.VaultEntry{}, fmt.Errorf("encrypt artifact content: %w", err)
	}

	return models.VaultEntry{
		ID:             e.uuid.Generate(),
		OwnerID:        artifact.OwnerID,
		Category:       category,
		Title:          artifact.Title,
		Content:        sealed,
		Tags:           tags,
		FocusSessionID: artifact.FocusSessionID,
		IntentID:       e.activeSession.IntentID,
		CreatedAt:      now,
	}, nil
}
