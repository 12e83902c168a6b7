package config

import "errors"

// Validation errors returned by [StructuredConfig.validate] when required
// configuration groups are incomplete or invalid.
var (
	// ErrInvalidStorageConfigs indicates invalid local storage settings
	// (for example, empty DSN or unsupported in-memory DSN).
	ErrInvalidStorageConfigs = errors.New("invalid storage configuration")
	// ErrInvalidAccountConfigs indicates invalid account adapter settings
	// (for example, missing base URL or request timeout).
	ErrInvalidAccountConfigs = errors.New("invalid account configuration")
	// ErrInvalidAuraConfigs indicates invalid aura tuning values
	// (for example, non-positive rewards or decay rate).
	ErrInvalidAuraConfigs = errors.New("invalid aura configuration")
	// ErrInvalidWorkerConfigs indicates invalid background job settings
	// (for example, zero decay check interval).
	ErrInvalidWorkerConfigs = errors.New("invalid worker configuration")
)
