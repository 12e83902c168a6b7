package engine

import (
	"context"

	"github.com/dchas/praxis/models"
)

// DeclareIntent creates the owner's single active intent from the given
// declaration text.
//
// Guard rejections (logged, no state change, returns false):
//   - blank text after trimming;
//   - no authenticated owner;
//   - an existing intent already in focus (the session must be closed and
//     reflected on before a new intent can be declared).
//
// An existing intent still in declared status is auto-resolved into history
// first: changing your mind before starting costs nothing. On success the
// owner's mode flag flips to ACTIVE.
func (e *SessionEngine) DeclareIntent(ctx context.Context, text string) bool {
	e.mu.Lock()
	defer e.mu.Unlock()

	declaration, ok := trimmed(text)
	if !ok {
		e.logger.Warn().Msg("declare intent rejected: empty declaration")
		return false
	}
	if !e.guard.Authenticated() {
		e.logger.Warn().Msg("declare intent rejected: no authenticated owner")
		return false
	}

	if current := e.guardedIntent(); current != nil {
		if current.Status == models.IntentInFocus {
			e.logger.Warn().
				Str("intent_id", current.ID).
				Msg("declare intent rejected: current intent is in focus")
			return false
		}
		if !e.autoAbandonPriorIntent(ctx) {
			return false
		}
	}

	intent := models.Intent{
		ID:          e.uuid.Generate(),
		OwnerID:     e.guard.Owner(),
		Declaration: declaration,
		Status:      models.IntentDeclared,
		DeclaredAt:  e.now(),
	}
	e.activeIntent = &intent
	e.setMode(ctx, models.ModeActive)

	e.logger.Info().
		Str("intent_id", intent.ID).
		Int64("owner_id", intent.OwnerID).
		Msg("intent declared")
	return true
}

// AutoAbandonPriorIntent is the named transition behind the implicit
// resolution that happens when a new intent replaces one that never entered
// focus. The prior intent moves to history as resolved, with no penalty.
func (e *SessionEngine) autoAbandonPriorIntent(ctx context.Context) bool {
	prior := e.activeIntent
	resolvedAt := e.now()
	prior.Status = models.IntentResolved
	prior.ResolvedAt = &resolvedAt

	if err := e.storages.History.AppendIntent(ctx, *prior); err != nil {
		// Roll the in-memory transition back so a retry sees the
		// original declared intent.
		prior.Status = models.IntentDeclared
		prior.ResolvedAt = nil
		e.logger.Error().Err(err).
			Str("intent_id", prior.ID).
			Msg("auto-abandon failed to archive prior intent")
		return false
	}

	e.activeIntent = nil
	e.logger.Info().
		Str("intent_id", prior.ID).
		Msg("prior intent auto-abandoned into history")
	return true
}

// ResolveIntentWithoutFocus resolves the active intent straight into history
// without a focus session ever having run. Allowed only while the intent is
// still in declared status; resets the mode flag to IDLE.
func (e *SessionEngine) ResolveIntentWithoutFocus(ctx context.Context) bool {
	e.mu.Lock()
	defer e.mu.Unlock()

	intent := e.guardedIntent()
	if intent == nil {
		e.logger.Warn().Msg("resolve intent rejected: no active intent")
		return false
	}
	if intent.Status != models.IntentDeclared {
		e.logger.Warn().
			Str("intent_id", intent.ID).
			Str("status", string(intent.Status)).
			Msg("resolve intent rejected: intent is not in declared status")
		return false
	}

	resolvedAt := e.now()
	intent.Status = models.IntentResolved
	intent.ResolvedAt = &resolvedAt

	if err := e.storages.History.AppendIntent(ctx, *intent); err != nil {
		intent.Status = models.IntentDeclared
		intent.ResolvedAt = nil
		e.logger.Error().Err(err).
			Str("intent_id", intent.ID).
			Msg("failed to archive resolved intent")
		return false
	}

	e.activeIntent = nil
	e.setMode(ctx, models.ModeIdle)

	e.logger.Info().
		Str("intent_id", intent.ID).
		Msg("intent resolved without focus")
	return true
}

// IntentHistory returns the owner's resolved intents, most recent first.
func (e *SessionEngine) IntentHistory(ctx context.Context) ([]models.Intent, error) {
	if !e.guard.Authenticated() {
		return nil, ErrNoAuthenticatedOwner
	}
	return e.storages.History.ListIntents(ctx, e.ownerID)
}
