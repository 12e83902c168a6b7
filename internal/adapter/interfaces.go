// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Denis Chastukhin

// Package adapter provides transport-layer abstractions for the external
// collaborators of the engine: the account store that authenticates users
// and keeps durable profile fields, and the goal classifier consumed once
// during onboarding.
//
// The primary abstraction is [AccountAdapter], which decouples the engine
// from the underlying protocol. The package ships HTTP/REST implementations
// built on resty.
//
// Error values defined in errors.go are mapped from HTTP status codes by
// mapHTTPError so that callers can use [errors.Is] for transport-agnostic
// error handling (e.g. [ErrUnauthorized] for 401).
package adapter

import (
	"context"

	"github.com/dchas/praxis/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/adapter_mock.go -package=mock

// AccountAdapter defines transport-agnostic communication with the account
// store. Implementations are responsible for serialisation, authentication
// header management, and mapping transport-level errors to the sentinel
// values defined in this package.
type AccountAdapter interface {
	// SetToken stores the bearer token that will be attached to all
	// subsequent authenticated requests. It is called immediately after a
	// successful Register or Login.
	SetToken(token string)

	// Token returns the bearer token currently stored in the adapter, or an
	// empty string if no token has been set yet.
	Token() string

	// Register creates a new account with the provided credentials. On
	// success it stores the returned bearer token via SetToken and returns
	// the issued token with the new owner id. Returns an error if the
	// request fails or the store responds with a non-2xx status.
	Register(ctx context.Context, user models.User) (models.Token, error)

	// Login authenticates the user against the account store. On success it
	// stores the returned bearer token via SetToken and returns the issued
	// token with the owner id. Returns an error if the request fails or the
	// store responds with a non-2xx status.
	Login(ctx context.Context, user models.User) (models.Token, error)

	// Profile fetches the durable profile fields of the given owner,
	// including the verification flag that gates all aura movement.
	Profile(ctx context.Context, ownerID int64) (models.Profile, error)

	// UpdateProfile writes profile fields (mode flag, onboarding domain)
	// back to the account store.
	UpdateProfile(ctx context.Context, profile models.Profile) error
}

// GoalClassifier is the external keyword-scoring collaborator that maps a
// free-text learning goal to a domain label. The engine treats it as a pure
// function consumed once during onboarding.
type GoalClassifier interface {
	Classify(ctx context.Context, text string) (models.Classification, error)
}
