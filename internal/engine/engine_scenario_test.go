package engine

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/dchas/praxis/models"
)

// Full-loop walkthroughs: the individual operation tests pin the edge cases,
// these follow an owner through whole days of use.

func TestScenario_DeclareFocusFinishReflect(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	e, m := newTestEngine(t, ctrl)
	m.expectModeWrite()
	ctx := context.Background()

	// Morning: one intent, one session.
	require.True(t, e.DeclareIntent(ctx, "understand how the scheduler steals work"))
	require.True(t, e.BeginFocus(ctx))
	assert.Equal(t, models.IntentInFocus, e.ActiveIntent().Status)

	_, ok := e.AddArtifact(ctx, ArtifactInput{
		Type:    models.ArtifactNote,
		Title:   "work stealing summary",
		Content: "each P steals half the victim's runq",
	})
	require.True(t, ok)
	_, ok = e.AddArtifact(ctx, ArtifactInput{
		Type:     models.ArtifactCode,
		Title:    "runq trace experiment",
		Content:  "func main() { ... }",
		Language: "go",
	})
	require.True(t, ok)

	m.cipher.EXPECT().Encrypt(gomock.Any()).Return("sealed", nil).Times(2)

	var archived []models.VaultEntry
	m.vault.EXPECT().
		Append(ctx, gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, entries ...models.VaultEntry) error {
			archived = entries
			return nil
		})
	m.aura.EXPECT().Save(gomock.Any(), gomock.Any()).Return(nil)

	require.True(t, e.FinishFocus(ctx, "read runtime/proc.go end to end"))
	require.Len(t, archived, 2)

	session := e.ActiveSession()
	require.NotNil(t, session, "finished session waits in the slot for its reflection")
	assert.Equal(t, models.SessionFinished, session.Status)
	assert.Empty(t, e.Artifacts(), "artifacts were converted, not kept")
	assert.Equal(t, 4.0, e.Aura().Score, "2 records x knowledge reward")
	assert.Equal(t, 1, e.Aura().Streak)

	// The loop is not closed until the reflection lands.
	assert.False(t, e.BeginFocus(ctx), "slot blocked until the reflection is in")

	m.history.EXPECT().ArchiveSessionWithReflection(ctx, gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, s models.FocusSession, r models.Reflection) error {
			assert.True(t, s.ReflectionSubmitted)
			assert.Equal(t, s.ID, r.FocusSessionID)
			return nil
		})
	m.history.EXPECT().AppendIntent(ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, intent models.Intent) error {
			assert.Equal(t, models.IntentResolved, intent.Status)
			return nil
		})

	require.True(t, e.SubmitReflection(ctx, models.ReflectionInput{
		OutcomeDescription: "traced a steal end to end",
		Insight:            "the scheduler is just queues",
	}))

	assert.Nil(t, e.ActiveSession())
	assert.Nil(t, e.ActiveIntent())
	assert.Equal(t, models.ModeIdle, e.Profile().Mode)

	// Evening: ready for the next loop.
	assert.True(t, e.DeclareIntent(ctx, "now the memory allocator"))
}

func TestScenario_AbandonDeferAndSettleLater(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	e, m := newTestEngine(t, ctrl)
	m.expectModeWrite()
	ctx := context.Background()

	require.True(t, e.DeclareIntent(ctx, "finish the parser rewrite"))
	require.True(t, e.BeginFocus(ctx))
	require.True(t, e.AbandonFocus(ctx))

	sessionID := e.ActiveSession().ID

	// Defer instead of reflecting: the session is archived with the
	// obligation open and the intent stays unresolved.
	m.history.EXPECT().AppendSession(ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, s models.FocusSession) error {
			assert.Equal(t, models.SessionAbandoned, s.Status)
			assert.True(t, s.ReflectionDeferred)
			assert.False(t, s.ReflectionSubmitted)
			return nil
		})
	m.history.EXPECT().AppendIntent(ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, intent models.Intent) error {
			assert.NotEqual(t, models.IntentResolved, intent.Status)
			return nil
		})

	require.True(t, e.DeferReflection(ctx))
	assert.Nil(t, e.ActiveSession())

	// The slot is free, but the debt is visible.
	m.history.EXPECT().PendingReflections(ctx, testOwnerID).
		Return([]models.FocusSession{{ID: sessionID, OwnerID: testOwnerID}}, nil)

	pending, err := e.PendingReflections(ctx)
	require.NoError(t, err)
	require.Len(t, pending, 1)

	// Settle the debt from the pending list.
	gomock.InOrder(
		m.history.EXPECT().GetSession(ctx, sessionID, testOwnerID).
			Return(models.FocusSession{
				ID:                 sessionID,
				OwnerID:            testOwnerID,
				IntentID:           "whatever",
				Status:             models.SessionAbandoned,
				ReflectionDeferred: true,
			}, nil),
		m.history.EXPECT().CompleteDeferredReflection(ctx, gomock.Any()).
			DoAndReturn(func(_ context.Context, r models.Reflection) error {
				assert.Equal(t, sessionID, r.FocusSessionID)
				return nil
			}),
		m.history.EXPECT().ResolveIntent(ctx, "whatever", testOwnerID, testClock).Return(nil),
	)

	require.True(t, e.SubmitDeferredReflection(ctx, sessionID, models.ReflectionInput{
		OutcomeDescription: "got distracted, stopped early",
		MistakePattern:     "started without a concrete first step",
	}))
}

func TestScenario_OwnerSwitchDropsEphemeralState(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	e, m := newTestEngine(t, ctrl)
	m.expectModeWrite()
	ctx := context.Background()

	require.True(t, e.DeclareIntent(ctx, "first owner's plan"))
	require.True(t, e.BeginFocus(ctx))

	// Another owner authenticates on the shared guard. The first engine's
	// in-memory state no longer belongs to the active owner.
	e.guard.SetOwner(testOwnerID + 1)

	assert.Nil(t, e.ActiveIntent(), "foreign intent never surfaces")
	assert.Nil(t, e.ActiveSession())
	assert.Empty(t, e.Artifacts())
	assert.False(t, e.FinishFocus(ctx, "proof"), "no session to finish for this owner")
	_, ok := e.AddArtifact(ctx, ArtifactInput{Type: models.ArtifactNote, Title: "sneak"})
	assert.False(t, ok)
	_ = m
}
