package engine

import (
	"context"

	"github.com/dchas/praxis/models"
)

// ArtifactInput carries the user-editable fields of a proof-of-work
// artifact.
type ArtifactInput struct {
	Type             models.ArtifactType
	Title            string
	Content          string
	Language         string
	PreviewSupported bool
	URL              string
}

// AddArtifact creates an artifact in the ephemeral collection of the active
// session. Rejected (logged, returns false) when no session is active, the
// type is unknown, or the title is blank after trimming.
func (e *SessionEngine) AddArtifact(ctx context.Context, input ArtifactInput) (models.FocusArtifact, bool) {
	e.mu.Lock()
	defer e.mu.Unlock()

	session := e.guardedSession()
	if session == nil || session.Status != models.SessionActive {
		e.logger.Warn().Msg("add artifact rejected: no active session")
		return models.FocusArtifact{}, false
	}
	if !models.KnownArtifactType(input.Type) {
		e.logger.Warn().
			Str("type", string(input.Type)).
			Msg("add artifact rejected: unknown artifact type")
		return models.FocusArtifact{}, false
	}

	title, ok := trimmed(input.Title)
	if !ok {
		e.logger.Warn().Msg("add artifact rejected: empty title")
		return models.FocusArtifact{}, false
	}

	now := e.now()
	artifact := models.FocusArtifact{
		ID:               e.uuid.Generate(),
		OwnerID:          e.guard.Owner(),
		FocusSessionID:   session.ID,
		Type:             input.Type,
		Title:            title,
		Content:          input.Content,
		Language:         input.Language,
		PreviewSupported: input.PreviewSupported,
		URL:              input.URL,
		CreatedAt:        now,
		UpdatedAt:        now,
	}
	e.artifacts = append(e.artifacts, artifact)

	e.logger.Debug().
		Str("artifact_id", artifact.ID).
		Str("session_id", session.ID).
		Str("type", string(artifact.Type)).
		Msg("artifact added")
	return artifact, true
}

// UpdateArtifact edits an artifact of the active session in place. The type
// of an existing artifact cannot change. Rejected when no session is active
// or the artifact id is unknown.
func (e *SessionEngine) UpdateArtifact(ctx context.Context, artifactID string, input ArtifactInput) bool {
	e.mu.Lock()
	defer e.mu.Unlock()

	session := e.guardedSession()
	if session == nil || session.Status != models.SessionActive {
		e.logger.Warn().Msg("update artifact rejected: no active session")
		return false
	}

	title, ok := trimmed(input.Title)
	if !ok {
		e.logger.Warn().Msg("update artifact rejected: empty title")
		return false
	}

	for i := range e.guardedArtifacts() {
		if e.artifacts[i].ID != artifactID {
			continue
		}

		e.artifacts[i].Title = title
		e.artifacts[i].Content = input.Content
		e.artifacts[i].Language = input.Language
		e.artifacts[i].PreviewSupported = input.PreviewSupported
		e.artifacts[i].URL = input.URL
		e.artifacts[i].UpdatedAt = e.now()

		e.logger.Debug().
			Str("artifact_id", artifactID).
			Msg("artifact updated")
		return true
	}

	e.logger.Warn().
		Str("artifact_id", artifactID).
		Msg("update artifact rejected: artifact not found")
	return false
}

// DeleteArtifact removes an artifact from the ephemeral collection of the
// active session.
func (e *SessionEngine) DeleteArtifact(ctx context.Context, artifactID string) bool {
	e.mu.Lock()
	defer e.mu.Unlock()

	session := e.guardedSession()
	if session == nil || session.Status != models.SessionActive {
		e.logger.Warn().Msg("delete artifact rejected: no active session")
		return false
	}

	artifacts := e.guardedArtifacts()
	for i := range artifacts {
		if artifacts[i].ID != artifactID {
			continue
		}

		e.artifacts = append(artifacts[:i], artifacts[i+1:]...)
		e.logger.Debug().
			Str("artifact_id", artifactID).
			Msg("artifact deleted")
		return true
	}

	e.logger.Warn().
		Str("artifact_id", artifactID).
		Msg("delete artifact rejected: artifact not found")
	return false
}

// Artifacts returns a copy of the ephemeral artifact collection of the
// active session, oldest first. Empty when no session is active.
func (e *SessionEngine) Artifacts() []models.FocusArtifact {
	e.mu.Lock()
	defer e.mu.Unlock()

	if session := e.guardedSession(); session == nil || session.Status != models.SessionActive {
		return nil
	}
	return append([]models.FocusArtifact(nil), e.guardedArtifacts()...)
}
