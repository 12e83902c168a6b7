package engine

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/dchas/praxis/internal/store"
	"github.com/dchas/praxis/models"
)

// ── Rewards ──────────────────────────────────────────────────────────────────

func TestApplyReward_VerifiedOwnerGainsScore(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	e, m := newTestEngine(t, ctrl)
	ctx := context.Background()

	m.cipher.EXPECT().Encrypt(gomock.Any()).Return("sealed", nil)
	m.vault.EXPECT().Append(ctx, gomock.Any()).Return(nil)
	m.aura.EXPECT().Save(gomock.Any(), gomock.Any()).Return(nil)

	require.True(t, e.AddProjectLog(ctx, "wired the storage layer", "details", nil))

	aura := e.Aura()
	assert.Equal(t, 3.0, aura.Score, "project log reward")
	assert.Equal(t, 1, aura.Streak)
	require.Len(t, aura.History, 1)
	assert.Equal(t, "2026-03-14", aura.History[0].Date)
	assert.Equal(t, 3.0, aura.History[0].Score)
}

func TestApplyReward_UnverifiedOwnerScoreIsFrozen(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	e, m := newTestEngine(t, ctrl)
	e.profile.Verified = false
	ctx := context.Background()

	m.cipher.EXPECT().Encrypt(gomock.Any()).Return("sealed", nil)
	m.vault.EXPECT().Append(ctx, gomock.Any()).Return(nil)
	// No aura.Save expected: the record is created, the score never moves.

	require.True(t, e.AddProjectLog(ctx, "still unverified", "", nil))

	aura := e.Aura()
	assert.Equal(t, 0.0, aura.Score)
	assert.Empty(t, aura.History)
	assert.Equal(t, 0, aura.Streak)
}

func TestApplyReward_ClampedAtUpperBound(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	e, m := newTestEngine(t, ctrl)
	e.aura.Score = 99
	ctx := context.Background()

	m.cipher.EXPECT().Encrypt(gomock.Any()).Return("sealed", nil)
	m.vault.EXPECT().Append(ctx, gomock.Any()).Return(nil)
	m.aura.EXPECT().Save(gomock.Any(), gomock.Any()).Return(nil)

	require.True(t, e.AddProjectLog(ctx, "over the top", "", nil))
	assert.Equal(t, models.AuraScoreMax, e.Aura().Score)
}

func TestApplyReward_StreakCountsOncePerDay(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	e, m := newTestEngine(t, ctrl)
	ctx := context.Background()

	m.cipher.EXPECT().Encrypt(gomock.Any()).Return("sealed", nil).Times(2)
	m.vault.EXPECT().Append(ctx, gomock.Any()).Return(nil).Times(2)
	m.aura.EXPECT().Save(gomock.Any(), gomock.Any()).Return(nil).Times(2)

	require.True(t, e.AddProjectLog(ctx, "morning log", "", nil))
	require.True(t, e.AddProjectLog(ctx, "evening log", "", nil))

	aura := e.Aura()
	assert.Equal(t, 6.0, aura.Score, "both rewards count")
	assert.Equal(t, 1, aura.Streak, "streak extends once per day")
	assert.Len(t, aura.History, 1, "one history point per day, upserted")
	assert.Equal(t, 6.0, aura.History[0].Score)
}

func TestUpsertHistory_CapIsEnforced(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	e, _ := newTestEngine(t, ctrl)
	e.cfg.HistoryCap = 3
	for _, date := range []string{"2026-03-13", "2026-03-12", "2026-03-11"} {
		e.aura.History = append(e.aura.History, models.AuraHistoryEntry{Date: date, Score: 1})
	}

	e.mu.Lock()
	e.upsertHistory("2026-03-14")
	e.mu.Unlock()

	require.Len(t, e.aura.History, 3)
	assert.Equal(t, "2026-03-14", e.aura.History[0].Date, "newest first")
	assert.Equal(t, "2026-03-12", e.aura.History[2].Date, "oldest entry trimmed")
}

// ── Decay ────────────────────────────────────────────────────────────────────

func lastActivityDaysAgo(days int) time.Time {
	return testClock.AddDate(0, 0, -days)
}

func TestCheckAndApplyDecay_OneMissedDayIsForgiven(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	e, m := newTestEngine(t, ctrl)
	e.aura.Score = 40
	ctx := context.Background()

	m.vault.EXPECT().MostRecentDate(ctx, testOwnerID).Return(lastActivityDaysAgo(1), nil)
	m.aura.EXPECT().Save(gomock.Any(), gomock.Any()).Return(nil)

	assert.False(t, e.CheckAndApplyDecay(ctx), "grace day, no decay")

	aura := e.Aura()
	assert.Equal(t, 40.0, aura.Score)
	assert.Equal(t, "2026-03-14", aura.LastDecayCheck, "day marked as evaluated")
}

func TestCheckAndApplyDecay_ThreeMissedDaysCostTen(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	e, m := newTestEngine(t, ctrl)
	e.aura.Score = 40
	e.aura.Streak = 7
	ctx := context.Background()

	m.vault.EXPECT().MostRecentDate(ctx, testOwnerID).Return(lastActivityDaysAgo(3), nil)
	m.aura.EXPECT().Save(gomock.Any(), gomock.Any()).Return(nil)

	assert.True(t, e.CheckAndApplyDecay(ctx))

	aura := e.Aura()
	assert.Equal(t, 30.0, aura.Score, "(3-1) missed days x 5")
	assert.Equal(t, 0, aura.Streak, "decay resets the streak")
	require.Len(t, aura.History, 1)
	assert.Equal(t, 30.0, aura.History[0].Score, "decayed score recorded for today")
}

func TestCheckAndApplyDecay_NeverOvershootsZero(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	e, m := newTestEngine(t, ctrl)
	e.aura.Score = 7
	ctx := context.Background()

	m.vault.EXPECT().MostRecentDate(ctx, testOwnerID).Return(lastActivityDaysAgo(30), nil)
	m.aura.EXPECT().Save(gomock.Any(), gomock.Any()).Return(nil)

	assert.True(t, e.CheckAndApplyDecay(ctx))
	assert.Equal(t, 0.0, e.Aura().Score)
}

func TestCheckAndApplyDecay_IdempotentWithinADay(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	e, m := newTestEngine(t, ctrl)
	e.aura.Score = 40
	ctx := context.Background()

	// The vault and the snapshot store are consulted exactly once.
	m.vault.EXPECT().MostRecentDate(ctx, testOwnerID).Return(lastActivityDaysAgo(3), nil)
	m.aura.EXPECT().Save(gomock.Any(), gomock.Any()).Return(nil)

	assert.True(t, e.CheckAndApplyDecay(ctx))
	assert.False(t, e.CheckAndApplyDecay(ctx), "second run the same day is a no-op")
	assert.False(t, e.CheckAndApplyDecay(ctx))
	assert.Equal(t, 30.0, e.Aura().Score, "decay applied exactly once")
}

func TestCheckAndApplyDecay_UnverifiedOwnerSkipped(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	e, _ := newTestEngine(t, ctrl)
	e.profile.Verified = false
	e.aura.Score = 40

	assert.False(t, e.CheckAndApplyDecay(context.Background()))

	aura := e.Aura()
	assert.Equal(t, 40.0, aura.Score)
	assert.Empty(t, aura.LastDecayCheck, "day not marked: re-evaluated if verification lands")
}

func TestCheckAndApplyDecay_NoRecordsMeansNoDecay(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	e, m := newTestEngine(t, ctrl)
	e.aura.Score = 40
	ctx := context.Background()

	m.vault.EXPECT().MostRecentDate(ctx, testOwnerID).Return(time.Time{}, store.ErrNoVaultEntries)
	m.aura.EXPECT().Save(gomock.Any(), gomock.Any()).Return(nil)

	assert.False(t, e.CheckAndApplyDecay(ctx))

	aura := e.Aura()
	assert.Equal(t, 40.0, aura.Score)
	assert.Equal(t, "2026-03-14", aura.LastDecayCheck)
}

func TestCheckAndApplyDecay_ActivityTodayIsSafe(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	e, m := newTestEngine(t, ctrl)
	e.aura.Score = 55
	ctx := context.Background()

	m.vault.EXPECT().MostRecentDate(ctx, testOwnerID).Return(testClock.Add(-2*time.Hour), nil)
	m.aura.EXPECT().Save(gomock.Any(), gomock.Any()).Return(nil)

	assert.False(t, e.CheckAndApplyDecay(ctx))
	assert.Equal(t, 55.0, e.Aura().Score)
}

// ── daysBetween ──────────────────────────────────────────────────────────────

func TestDaysBetween(t *testing.T) {
	assert.Equal(t, 0, daysBetween("2026-03-14", "2026-03-14"))
	assert.Equal(t, 1, daysBetween("2026-03-13", "2026-03-14"))
	assert.Equal(t, 3, daysBetween("2026-03-11", "2026-03-14"))
	assert.Equal(t, 31, daysBetween("2026-01-31", "2026-03-03"))
	assert.Equal(t, 0, daysBetween("garbage", "2026-03-14"))
}
