package engine

import "errors"

var (
	// ErrNoAuthenticatedOwner is returned by the constructor when no owner
	// id is available to scope the engine to.
	ErrNoAuthenticatedOwner = errors.New("no authenticated owner")

	// ErrLoadAuraState is returned by the constructor when the persisted
	// aura state cannot be loaded.
	ErrLoadAuraState = errors.New("load aura state")
)
