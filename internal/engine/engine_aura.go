package engine

import (
	"context"
	"errors"
	"time"

	"github.com/dchas/praxis/internal/store"
	"github.com/dchas/praxis/models"
)

// Aura returns a copy of the owner's current engagement state.
func (e *SessionEngine) Aura() models.AuraState {
	e.mu.Lock()
	defer e.mu.Unlock()

	cp := e.aura
	cp.History = append([]models.AuraHistoryEntry(nil), e.aura.History...)
	return cp
}

// CheckAndApplyDecay evaluates the daily inactivity rule. It is safe to call
// as often as the caller likes: the rule applies at most once per calendar
// day and is a no-op on every later call that day.
//
// The evaluation order is fixed:
//  1. an unverified owner is skipped entirely, the day is not marked;
//  2. a day already marked as checked is a no-op;
//  3. an owner with no permanent records yet is marked checked, no decay;
//  4. the single most recent missed day is forgiven;
//  5. beyond that, every missed day costs DecayPerDay, floored at zero.
//
// A decay that fires resets the streak and writes a history point for today.
func (e *SessionEngine) CheckAndApplyDecay(ctx context.Context) bool {
	e.mu.Lock()
	defer e.mu.Unlock()

	if !e.guard.Authenticated() {
		e.logger.Warn().Msg("decay check rejected: no authenticated owner")
		return false
	}
	if !e.profile.Verified {
		// Unverified owners carry a frozen score. Deliberately not marked
		// as checked: the day is re-evaluated if verification lands later.
		return false
	}

	today := e.now().UTC().Format(dateLayout)
	if e.aura.LastDecayCheck == today {
		return false
	}

	lastActivity, err := e.storages.Vault.MostRecentDate(ctx, e.ownerID)
	if errors.Is(err, store.ErrNoVaultEntries) {
		e.aura.LastDecayCheck = today
		e.persistAura(ctx)
		return false
	}
	if err != nil {
		e.logger.Error().Err(err).
			Int64("owner_id", e.ownerID).
			Msg("decay check aborted: failed to read most recent activity")
		return false
	}

	missed := daysBetween(lastActivity.UTC().Format(dateLayout), today)
	if missed <= 1 {
		// Activity today, or a single grace day.
		e.aura.LastDecayCheck = today
		e.persistAura(ctx)
		return false
	}

	decay := float64(missed-1) * e.cfg.DecayPerDay
	if decay > e.aura.Score {
		decay = e.aura.Score
	}

	e.aura.Score = models.ClampAuraScore(e.aura.Score - decay)
	e.aura.Streak = 0
	e.aura.LastDecayCheck = today
	e.upsertHistory(today)
	e.persistAura(ctx)

	e.logger.Info().
		Int64("owner_id", e.ownerID).
		Int("days_missed", missed).
		Float64("decay", decay).
		Float64("score", e.aura.Score).
		Msg("inactivity decay applied")
	return true
}

// applyReward credits the score for freshly created permanent records. The
// reward is gated on the verified flag, clamped at the upper bound, and the
// first reward of a calendar day extends the streak. Callers must hold e.mu.
func (e *SessionEngine) applyReward(ctx context.Context, amount float64) {
	if !e.profile.Verified {
		e.logger.Debug().
			Int64("owner_id", e.ownerID).
			Msg("reward skipped: owner is not verified")
		return
	}
	if amount <= 0 {
		return
	}

	today := e.now().UTC().Format(dateLayout)
	firstToday := len(e.aura.History) == 0 || e.aura.History[0].Date != today

	e.aura.Score = models.ClampAuraScore(e.aura.Score + amount)
	if firstToday {
		e.aura.Streak++
	}
	e.upsertHistory(today)
	e.persistAura(ctx)

	e.logger.Info().
		Int64("owner_id", e.ownerID).
		Float64("reward", amount).
		Float64("score", e.aura.Score).
		Int("streak", e.aura.Streak).
		Msg("aura reward applied")
}

// upsertHistory writes today's score point, replacing an existing entry for
// the same day, and trims the history to the configured cap. History is
// most-recent-first. Callers must hold e.mu.
func (e *SessionEngine) upsertHistory(today string) {
	point := models.AuraHistoryEntry{Date: today, Score: e.aura.Score}

	if len(e.aura.History) > 0 && e.aura.History[0].Date == today {
		e.aura.History[0] = point
	} else {
		e.aura.History = append([]models.AuraHistoryEntry{point}, e.aura.History...)
	}

	if limit := e.cfg.HistoryCap; limit > 0 && len(e.aura.History) > limit {
		e.aura.History = e.aura.History[:limit]
	}
}

// persistAura writes the working aura state through to the snapshot store.
// Failures are logged and tolerated: the in-memory state is authoritative
// for this process and the next successful write catches up. Callers must
// hold e.mu.
func (e *SessionEngine) persistAura(ctx context.Context) {
	e.aura.OwnerID = e.ownerID
	if err := e.storages.Aura.Save(ctx, e.aura); err != nil {
		e.logger.Error().Err(err).
			Int64("owner_id", e.ownerID).
			Msg("failed to persist aura state")
	}
}

// daysBetween counts whole calendar days from one "2006-01-02" date to a
// later one. Malformed input counts as zero days.
func daysBetween(from, to string) int {
	a, err := parseDay(from)
	if err != nil {
		return 0
	}
	b, err := parseDay(to)
	if err != nil {
		return 0
	}
	return int(b.Sub(a).Hours() / 24)
}

func parseDay(s string) (time.Time, error) {
	return time.ParseInLocation(dateLayout, s, time.UTC)
}
