package engine

import (
	"context"

	"github.com/dchas/praxis/models"
)

// VaultEntries returns the owner's permanent records, most recent first,
// with content decrypted for display. An entry whose content fails to
// decrypt is returned with empty content and logged rather than dropped:
// the record itself is still real.
func (e *SessionEngine) VaultEntries(ctx context.Context) ([]models.VaultEntry, error) {
	if !e.guard.Authenticated() {
		return nil, ErrNoAuthenticatedOwner
	}

	entries, err := e.storages.Vault.List(ctx, e.ownerID)
	if err != nil {
		return nil, err
	}

	opened := entries[:0]
	for _, entry := range entries {
		if !e.guard.Owns(entry.OwnerID) {
			e.logger.Warn().
				Str("entry_id", entry.ID).
				Msg("owner mismatch in vault listing, entry dropped")
			continue
		}

		plain, decErr := e.cipher.Decrypt(entry.Content)
		if decErr != nil {
			e.logger.Error().Err(decErr).
				Str("entry_id", entry.ID).
				Msg("failed to decrypt vault entry content")
			entry.Content = ""
		} else {
			entry.Content = plain
		}
		opened = append(opened, entry)
	}

	return opened, nil
}

// AddProjectLog appends a permanent project record directly, outside any
// focus session, and applies the project reward. Requires an authenticated
// owner and a non-blank title; content may be empty.
func (e *SessionEngine) AddProjectLog(ctx context.Context, titleText, contentText string, tags []string) bool {
	e.mu.Lock()
	defer e.mu.Unlock()

	if !e.guard.Authenticated() {
		e.logger.Warn().Msg("project log rejected: no authenticated owner")
		return false
	}

	title, ok := trimmed(titleText)
	if !ok {
		e.logger.Warn().Msg("project log rejected: empty title")
		return false
	}

	sealed, err := e.cipher.Encrypt(contentText)
	if err != nil {
		e.logger.Error().Err(err).
			Int64("owner_id", e.ownerID).
			Msg("project log aborted: failed to encrypt content")
		return false
	}

	entry := models.VaultEntry{
		ID:        e.uuid.Generate(),
		OwnerID:   e.ownerID,
		Category:  models.VaultProject,
		Title:     title,
		Content:   sealed,
		Tags:      append([]string(nil), tags...),
		CreatedAt: e.now(),
	}

	if err = e.storages.Vault.Append(ctx, entry); err != nil {
		e.logger.Error().Err(err).
			Str("entry_id", entry.ID).
			Msg("project log aborted: failed to persist record")
		return false
	}

	e.applyReward(ctx, e.cfg.ProjectReward)

	e.logger.Info().
		Str("entry_id", entry.ID).
		Msg("project log recorded")
	return true
}

// SessionHistory returns the owner's archived sessions, most recent first.
func (e *SessionEngine) SessionHistory(ctx context.Context) ([]models.FocusSession, error) {
	if !e.guard.Authenticated() {
		return nil, ErrNoAuthenticatedOwner
	}
	return e.storages.History.ListSessions(ctx, e.ownerID)
}
