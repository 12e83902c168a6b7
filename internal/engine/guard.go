package engine

import (
	"sync/atomic"

	"github.com/dchas/praxis/internal/logger"
)

// Guard is the identity guard: the single process-wide pointer to the
// authenticated owner. Every owner-scoped read and write in the engine runs
// through it, and any entity stamped with a different owner id is treated as
// leaked state: discarded, logged, never returned.
//
// The pointer is swapped atomically on login and logout. A swap to a
// different id obligates the caller to tear down and rebuild all owner-scoped
// state (the session engine is constructed per owner, so this falls out of
// the construction path).
type Guard struct {
	ownerID atomic.Int64 // 0 means nobody is authenticated
	logger  *logger.Logger
}

func NewGuard(log *logger.Logger) *Guard {
	return &Guard{logger: log}
}

// SetOwner adopts the given owner id and reports whether the active owner
// actually changed. A change means all previously owned in-memory state is
// stale and must be discarded by the caller.
func (g *Guard) SetOwner(id int64) (changed bool) {
	prev := g.ownerID.Swap(id)
	if prev != id && prev != 0 {
		g.logger.Info().
			Int64("previous_owner", prev).
			Int64("owner", id).
			Msg("active owner switched, previously owned state is stale")
	}
	return prev != id
}

// ClearOwner drops the active owner on logout.
func (g *Guard) ClearOwner() {
	g.ownerID.Store(0)
}

// Owner returns the active owner id, or 0 when nobody is authenticated.
func (g *Guard) Owner() int64 {
	return g.ownerID.Load()
}

// Authenticated reports whether an owner is currently set.
func (g *Guard) Authenticated() bool {
	return g.ownerID.Load() != 0
}

// Owns reports whether entityOwnerID matches the active owner. A mismatch is
// a leak: it is logged and the caller must discard the offending entity and
// behave as though it never existed.
func (g *Guard) Owns(entityOwnerID int64) bool {
	owner := g.ownerID.Load()
	if owner == 0 || entityOwnerID != owner {
		g.logger.Warn().
			Int64("owner", owner).
			Int64("entity_owner", entityOwnerID).
			Msg("owner mismatch detected, discarding leaked state")
		return false
	}
	return true
}
