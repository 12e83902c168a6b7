package models

import "time"

// ArtifactType defines the kind of proof-of-work an artifact carries.
type ArtifactType string

const (
	// ArtifactNote is a free-text note written during the session.
	ArtifactNote ArtifactType = "note"

	// ArtifactCode is a code snippet, optionally tagged with a language.
	ArtifactCode ArtifactType = "code"

	// ArtifactExternal is a link to work hosted elsewhere (repo, doc, demo).
	ArtifactExternal ArtifactType = "external"
)

// KnownArtifactType reports whether t is one of the supported artifact types.
func KnownArtifactType(t ArtifactType) bool {
	switch t {
	case ArtifactNote, ArtifactCode, ArtifactExternal:
		return true
	}
	return false
}

// FocusArtifact is an ephemeral proof-of-work unit scoped to the currently
// active focus session. Artifacts can be created, edited, and deleted freely
// while the owning session is active; on session close the collection is
// snapshotted into the session record and then cleared unconditionally.
type FocusArtifact struct {
	// ID is the client-generated UUID of the artifact.
	ID string `json:"id"`

	// OwnerID is the account this artifact exclusively belongs to.
	OwnerID int64 `json:"owner_id"`

	// FocusSessionID references the session the artifact was created in.
	FocusSessionID string `json:"focus_session_id"`

	// Type is the kind of proof the artifact carries.
	Type ArtifactType `json:"type"`

	// Title is a short human-readable label.
	Title string `json:"title"`

	// Content is the body of the artifact: note text, code, or a link
	// description depending on Type.
	Content string `json:"content"`

	// Language optionally names the programming language of a code artifact.
	Language string `json:"language,omitempty"`

	// PreviewSupported marks code artifacts whose language the UI can render
	// with highlighting.
	PreviewSupported bool `json:"preview_supported,omitempty"`

	// URL optionally points at external work for ArtifactExternal items.
	URL string `json:"url,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
