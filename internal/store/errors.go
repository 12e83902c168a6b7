package store

import "errors"

var (
	// ErrAuraStateNotFound is returned when no aura row exists yet for the
	// owner. Callers start from the zero state.
	ErrAuraStateNotFound = errors.New("aura state not found")

	// ErrNoVaultEntries is returned by MostRecentDate when the owner has no
	// permanent records at all.
	ErrNoVaultEntries = errors.New("no vault entries")

	// ErrSessionNotFound is returned when the requested archived session
	// does not exist for the owner.
	ErrSessionNotFound = errors.New("session not found")

	// ErrIntentNotFound is returned when the requested archived intent does
	// not exist for the owner.
	ErrIntentNotFound = errors.New("intent not found")

	// ErrSaltNotFound is returned when the owner has no key salt persisted
	// yet (first login on this device).
	ErrSaltNotFound = errors.New("owner key salt not found")
)
