package store

import (
	"context"
	"time"

	"github.com/dchas/praxis/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// VaultRepository is the append-only sink for permanent records. Entries are
// never updated or deleted; reads return most-recent-first.
type VaultRepository interface {
	Append(ctx context.Context, entries ...models.VaultEntry) error
	List(ctx context.Context, ownerID int64) ([]models.VaultEntry, error)

	// MostRecentDate returns the creation time of the owner's newest entry.
	// Returns ErrNoVaultEntries when the owner has no records at all.
	MostRecentDate(ctx context.Context, ownerID int64) (time.Time, error)
}

// HistoryRepository persists the resolved side of the session lifecycle:
// resolved intents, archived sessions, and reflections.
type HistoryRepository interface {
	AppendIntent(ctx context.Context, intent models.Intent) error
	ResolveIntent(ctx context.Context, intentID string, ownerID int64, resolvedAt time.Time) error
	ListIntents(ctx context.Context, ownerID int64) ([]models.Intent, error)

	AppendSession(ctx context.Context, session models.FocusSession) error
	ListSessions(ctx context.Context, ownerID int64) ([]models.FocusSession, error)
	GetSession(ctx context.Context, sessionID string, ownerID int64) (models.FocusSession, error)

	// PendingReflections returns archived sessions whose reflection was
	// deferred and has not been submitted yet, oldest first.
	PendingReflections(ctx context.Context, ownerID int64) ([]models.FocusSession, error)

	// ArchiveSessionWithReflection writes the reflection and the session
	// archive in one transaction. Either both rows land or neither does,
	// so a failed archive can be retried without duplicating the
	// reflection.
	ArchiveSessionWithReflection(ctx context.Context, session models.FocusSession, reflection models.Reflection) error

	// CompleteDeferredReflection writes the reflection and flips the
	// archived session's reflection_submitted flag in one transaction.
	// Returns ErrSessionNotFound when no archived session matches.
	CompleteDeferredReflection(ctx context.Context, reflection models.Reflection) error

	ListReflections(ctx context.Context, ownerID int64) ([]models.Reflection, error)
}

// AuraRepository persists the owner-scoped engagement score state.
type AuraRepository interface {
	// Get loads the owner's aura state. Returns ErrAuraStateNotFound when
	// no state has been saved yet.
	Get(ctx context.Context, ownerID int64) (models.AuraState, error)

	// Save upserts the owner's aura state.
	Save(ctx context.Context, state models.AuraState) error
}

// KeyRepository persists the per-owner key-derivation salt for the local
// content cipher.
type KeyRepository interface {
	// Salt returns the owner's stored salt. Returns ErrSaltNotFound on the
	// first login on this device.
	Salt(ctx context.Context, ownerID int64) ([]byte, error)
	SaveSalt(ctx context.Context, ownerID int64, salt []byte) error
}
