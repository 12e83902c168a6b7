package engine

import (
	"context"
	"errors"
	"strings"

	"github.com/dchas/praxis/internal/store"
	"github.com/dchas/praxis/models"
)

// SubmitReflection records the mandatory closing statement for the session
// occupying the active slot and closes the whole loop: the reflection is
// persisted, the session is archived, the intent resolves into history, and
// the mode flag returns to IDLE.
//
// The gate is reachable only when a terminal session awaits its reflection.
// The three free-text fields are trimmed but accepted even when empty: the
// step is mandatory, the content is not.
func (e *SessionEngine) SubmitReflection(ctx context.Context, input models.ReflectionInput) bool {
	e.mu.Lock()
	defer e.mu.Unlock()

	session := e.guardedSession()
	if session == nil || session.Status == models.SessionActive {
		e.logger.Warn().Msg("submit reflection rejected: no closed session awaiting reflection")
		return false
	}
	if session.ReflectionSubmitted {
		e.logger.Warn().
			Str("session_id", session.ID).
			Msg("submit reflection rejected: reflection already submitted")
		return false
	}

	now := e.now()
	reflection := models.Reflection{
		ID:                 e.uuid.Generate(),
		OwnerID:            session.OwnerID,
		FocusSessionID:     session.ID,
		IntentSnapshot:     session.IntentSnapshot,
		Outcome:            session.Outcome,
		OutcomeDescription: strings.TrimSpace(input.OutcomeDescription),
		MistakePattern:     strings.TrimSpace(input.MistakePattern),
		Insight:            strings.TrimSpace(input.Insight),
		CreatedAt:          now,
	}

	// One transaction: a failed archive leaves nothing durable, so the
	// retry cannot duplicate the reflection.
	session.ReflectionSubmitted = true
	if err := e.storages.History.ArchiveSessionWithReflection(ctx, *session, reflection); err != nil {
		session.ReflectionSubmitted = false
		e.logger.Error().Err(err).
			Str("session_id", session.ID).
			Msg("submit reflection aborted: failed to archive session with reflection")
		return false
	}

	e.resolveIntentForSession(ctx, session)
	e.activeSession = nil
	e.artifacts = nil
	e.setMode(ctx, models.ModeIdle)

	e.logger.Info().
		Str("session_id", session.ID).
		Str("reflection_id", reflection.ID).
		Msg("reflection submitted, loop closed")
	return true
}

// DeferReflection archives the closed session immediately without a
// reflection. The obligation is not waived: the session joins the pending
// reflections queue and the intent stays formally unresolved until
// SubmitDeferredReflection completes it.
func (e *SessionEngine) DeferReflection(ctx context.Context) bool {
	e.mu.Lock()
	defer e.mu.Unlock()

	session := e.guardedSession()
	if session == nil || session.Status == models.SessionActive {
		e.logger.Warn().Msg("defer reflection rejected: no closed session awaiting reflection")
		return false
	}
	if session.ReflectionSubmitted {
		e.logger.Warn().
			Str("session_id", session.ID).
			Msg("defer reflection rejected: reflection already submitted")
		return false
	}

	session.ReflectionDeferred = true
	if err := e.storages.History.AppendSession(ctx, *session); err != nil {
		session.ReflectionDeferred = false
		e.logger.Error().Err(err).
			Str("session_id", session.ID).
			Msg("defer reflection aborted: failed to archive session")
		return false
	}

	// The intent leaves the active slot unresolved; it is archived as-is so
	// the deferred submission can resolve it later.
	if intent := e.guardedIntent(); intent != nil && intent.ID == session.IntentID {
		if err := e.storages.History.AppendIntent(ctx, *intent); err != nil {
			e.logger.Error().Err(err).
				Str("intent_id", intent.ID).
				Msg("failed to archive unresolved intent on deferral")
		}
		e.activeIntent = nil
	}

	e.activeSession = nil
	e.artifacts = nil
	e.setMode(ctx, models.ModeIdle)

	e.logger.Info().
		Str("session_id", session.ID).
		Msg("reflection deferred, session archived with pending obligation")
	return true
}

// PendingReflections lists archived sessions whose reflection was deferred
// and is still owed, oldest obligation first.
func (e *SessionEngine) PendingReflections(ctx context.Context) ([]models.FocusSession, error) {
	if !e.guard.Authenticated() {
		return nil, ErrNoAuthenticatedOwner
	}
	return e.storages.History.PendingReflections(ctx, e.ownerID)
}

// SubmitDeferredReflection satisfies a previously deferred reflection
// obligation for an archived session, resolving its intent in the process.
func (e *SessionEngine) SubmitDeferredReflection(ctx context.Context, sessionID string, input models.ReflectionInput) bool {
	e.mu.Lock()
	defer e.mu.Unlock()

	if !e.guard.Authenticated() {
		e.logger.Warn().Msg("deferred reflection rejected: no authenticated owner")
		return false
	}

	session, err := e.storages.History.GetSession(ctx, sessionID, e.ownerID)
	if err != nil {
		e.logger.Warn().Err(err).
			Str("session_id", sessionID).
			Msg("deferred reflection rejected: session not found")
		return false
	}
	if !session.ReflectionDeferred || session.ReflectionSubmitted {
		e.logger.Warn().
			Str("session_id", sessionID).
			Msg("deferred reflection rejected: no pending obligation")
		return false
	}

	now := e.now()
	reflection := models.Reflection{
		ID:                 e.uuid.Generate(),
		OwnerID:            session.OwnerID,
		FocusSessionID:     session.ID,
		IntentSnapshot:     session.IntentSnapshot,
		Outcome:            session.Outcome,
		OutcomeDescription: strings.TrimSpace(input.OutcomeDescription),
		MistakePattern:     strings.TrimSpace(input.MistakePattern),
		Insight:            strings.TrimSpace(input.Insight),
		CreatedAt:          now,
	}

	if err := e.storages.History.CompleteDeferredReflection(ctx, reflection); err != nil {
		e.logger.Error().Err(err).
			Str("session_id", sessionID).
			Msg("deferred reflection aborted: failed to persist reflection")
		return false
	}

	if err := e.storages.History.ResolveIntent(ctx, session.IntentID, e.ownerID, now); err != nil {
		// The intent may already be resolved; anything else is logged and
		// tolerated, the reflection obligation itself is satisfied.
		if !errors.Is(err, store.ErrIntentNotFound) {
			e.logger.Error().Err(err).
				Str("intent_id", session.IntentID).
				Msg("failed to resolve intent for deferred reflection")
		}
	}

	e.logger.Info().
		Str("session_id", sessionID).
		Str("reflection_id", reflection.ID).
		Msg("deferred reflection submitted")
	return true
}

// Reflections returns the owner's recorded reflections, most recent first.
func (e *SessionEngine) Reflections(ctx context.Context) ([]models.Reflection, error) {
	if !e.guard.Authenticated() {
		return nil, ErrNoAuthenticatedOwner
	}
	return e.storages.History.ListReflections(ctx, e.ownerID)
}

// resolveIntentForSession resolves the active intent tied to the given
// session into history. A missing or foreign intent is tolerated: the
// reflection gate must never trap the user. Callers must hold e.mu.
func (e *SessionEngine) resolveIntentForSession(ctx context.Context, session *models.FocusSession) {
	intent := e.guardedIntent()
	if intent == nil || intent.ID != session.IntentID {
		e.logger.Warn().
			Str("session_id", session.ID).
			Msg("no matching active intent to resolve at reflection")
		return
	}

	resolvedAt := e.now()
	intent.Status = models.IntentResolved
	intent.ResolvedAt = &resolvedAt

	if err := e.storages.History.AppendIntent(ctx, *intent); err != nil {
		e.logger.Error().Err(err).
			Str("intent_id", intent.ID).
			Msg("failed to archive resolved intent at reflection")
	}
	e.activeIntent = nil
}
