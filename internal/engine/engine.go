// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Denis Chastukhin

// Package engine implements the session lifecycle and aura scoring core:
// intent declaration, the focus session state machine with its proof-of-work
// artifact collection, the mandatory reflection gate, and the bounded
// engagement score with reward and decay rules.
//
// A [SessionEngine] is scoped to exactly one owner and constructed fresh on
// login, so isolation between sequentially logged-in accounts is structural
// rather than a filtering convention. On top of that, every accessor runs
// through the [Guard]: state stamped with a foreign owner id is discarded
// and reported as absent, never returned.
//
// Every mutating operation is a synchronous check-then-set transition: it
// either completes fully or rejects as a logged no-op. The engine never
// panics and never uses errors as control flow for guard rejections.
package engine

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/dchas/praxis/internal/adapter"
	"github.com/dchas/praxis/internal/config"
	"github.com/dchas/praxis/internal/crypto"
	"github.com/dchas/praxis/internal/logger"
	"github.com/dchas/praxis/internal/store"
	"github.com/dchas/praxis/internal/utils"
	"github.com/dchas/praxis/models"
)

// dateLayout is the calendar-day format used by the aura history and the
// once-per-day decay bookkeeping.
const dateLayout = "2006-01-02"

// SessionEngine is the owner-scoped lifecycle core. The active intent, the
// active focus session, and the in-progress artifact collection live only in
// memory and are intentionally excluded from the durable snapshot: a session
// must complete within one process lifetime. Resolved history, permanent
// records, and aura state persist through [store.Storages].
type SessionEngine struct {
	ownerID    int64
	guard      *Guard
	storages   *store.Storages
	accounts   adapter.AccountAdapter
	classifier adapter.GoalClassifier
	cipher     crypto.ContentCipher
	cfg        config.Aura
	logger     *logger.Logger
	uuid       *utils.UUIDGenerator

	// now is swapped in tests to pin the clock.
	now func() time.Time

	// mu serialises every transition so precondition checks and their
	// mutations are atomic with respect to interleaved UI callbacks.
	mu            sync.Mutex
	activeIntent  *models.Intent
	activeSession *models.FocusSession
	artifacts     []models.FocusArtifact
	profile       models.Profile
	aura          models.AuraState
}

// NewSessionEngine adopts ownerID as the active owner and rehydrates the
// owner's durable state: profile fields from the account store and aura
// state from the local snapshot. Ephemeral focus state always starts empty.
//
// A profile fetch failure is tolerated (the engine starts unverified and
// logs a warning); a failure to load persisted aura state is not.
func NewSessionEngine(
	ctx context.Context,
	ownerID int64,
	guard *Guard,
	storages *store.Storages,
	accounts adapter.AccountAdapter,
	classifier adapter.GoalClassifier,
	cipher crypto.ContentCipher,
	cfg config.Aura,
	log *logger.Logger,
) (*SessionEngine, error) {
	if ownerID == 0 {
		return nil, ErrNoAuthenticatedOwner
	}

	guard.SetOwner(ownerID)

	e := &SessionEngine{
		ownerID:    ownerID,
		guard:      guard,
		storages:   storages,
		accounts:   accounts,
		classifier: classifier,
		cipher:     cipher,
		cfg:        cfg,
		logger:     log,
		uuid:       utils.NewUUIDGenerator(),
		now:        time.Now,
	}

	profile, err := accounts.Profile(ctx, ownerID)
	if err != nil {
		log.Warn().Err(err).
			Int64("owner_id", ownerID).
			Msg("profile fetch failed, starting with an unverified profile")
		profile = models.Profile{OwnerID: ownerID, Mode: models.ModeIdle}
	}
	e.profile = profile

	aura, err := storages.Aura.Get(ctx, ownerID)
	if errors.Is(err, store.ErrAuraStateNotFound) {
		aura = models.AuraState{OwnerID: ownerID}
	} else if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrLoadAuraState, err)
	}
	e.aura = aura

	return e, nil
}

// OwnerID returns the owner this engine is scoped to.
func (e *SessionEngine) OwnerID() int64 {
	return e.ownerID
}

// Profile returns a copy of the engine's working profile.
func (e *SessionEngine) Profile() models.Profile {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.profile
}

// ActiveIntent returns a copy of the active intent, or nil when there is
// none. Foreign-owner state is discarded before the read returns.
func (e *SessionEngine) ActiveIntent() *models.Intent {
	e.mu.Lock()
	defer e.mu.Unlock()

	intent := e.guardedIntent()
	if intent == nil {
		return nil
	}
	cp := *intent
	return &cp
}

// ActiveSession returns a copy of the session currently occupying the active
// slot (running or awaiting its reflection), or nil.
func (e *SessionEngine) ActiveSession() *models.FocusSession {
	e.mu.Lock()
	defer e.mu.Unlock()

	session := e.guardedSession()
	if session == nil {
		return nil
	}
	cp := *session
	cp.Artifacts = append([]models.FocusArtifact(nil), session.Artifacts...)
	return &cp
}

// guardedIntent returns the active intent if it belongs to the current
// owner. A foreign-owner intent is leaked state: it is dropped and reported
// as absent. Callers must hold e.mu.
func (e *SessionEngine) guardedIntent() *models.Intent {
	if e.activeIntent == nil {
		return nil
	}
	if !e.guard.Owns(e.activeIntent.OwnerID) {
		e.activeIntent = nil
		return nil
	}
	return e.activeIntent
}

// guardedSession is the session counterpart of guardedIntent. Callers must
// hold e.mu.
func (e *SessionEngine) guardedSession() *models.FocusSession {
	if e.activeSession == nil {
		return nil
	}
	if !e.guard.Owns(e.activeSession.OwnerID) {
		e.activeSession = nil
		e.artifacts = nil
		return nil
	}
	return e.activeSession
}

// guardedArtifacts filters the ephemeral collection down to entities owned
// by the current owner, dropping leaked items in place. Callers must hold
// e.mu.
func (e *SessionEngine) guardedArtifacts() []models.FocusArtifact {
	if len(e.artifacts) == 0 {
		return nil
	}

	kept := e.artifacts[:0]
	for _, a := range e.artifacts {
		if e.guard.Owns(a.OwnerID) {
			kept = append(kept, a)
		}
	}
	e.artifacts = kept
	return e.artifacts
}

// setMode flips the coarse activity flag and writes it through to the
// account store. A write-through failure is logged and tolerated: the
// engine's working copy stays authoritative for this process. Callers must
// hold e.mu.
func (e *SessionEngine) setMode(ctx context.Context, mode models.Mode) {
	e.profile.Mode = mode
	if err := e.accounts.UpdateProfile(ctx, e.profile); err != nil {
		e.logger.Warn().Err(err).
			Int64("owner_id", e.ownerID).
			Str("mode", string(mode)).
			Msg("mode write-through to account store failed")
	}
}

// trimmed reports the trimmed form of s and whether anything is left.
func trimmed(s string) (string, bool) {
	t := strings.TrimSpace(s)
	return t, t != ""
}
