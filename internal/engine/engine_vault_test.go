package engine

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/dchas/praxis/models"
)

// ── Vault listing ────────────────────────────────────────────────────────────

func TestVaultEntries_DecryptsContentForDisplay(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	e, m := newTestEngine(t, ctrl)
	ctx := context.Background()

	m.vault.EXPECT().List(ctx, testOwnerID).Return([]models.VaultEntry{
		{ID: "v-1", OwnerID: testOwnerID, Category: models.VaultLearning, Title: "goroutine leaks", Content: "sealed-1"},
		{ID: "v-2", OwnerID: testOwnerID, Category: models.VaultProject, Title: "cache layer", Content: "sealed-2"},
	}, nil)
	m.cipher.EXPECT().Decrypt("sealed-1").Return("watch the done channel", nil)
	m.cipher.EXPECT().Decrypt("sealed-2").Return("shipped the LRU", nil)

	entries, err := e.VaultEntries(ctx)
	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.Equal(t, "watch the done channel", entries[0].Content)
	assert.Equal(t, "shipped the LRU", entries[1].Content)
}

func TestVaultEntries_UndecryptableEntryKeptWithoutContent(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	e, m := newTestEngine(t, ctrl)
	ctx := context.Background()

	m.vault.EXPECT().List(ctx, testOwnerID).Return([]models.VaultEntry{
		{ID: "v-1", OwnerID: testOwnerID, Title: "corrupted", Content: "garbage"},
	}, nil)
	m.cipher.EXPECT().Decrypt("garbage").Return("", errors.New("cipher: message authentication failed"))

	entries, err := e.VaultEntries(ctx)
	require.NoError(t, err)
	require.Len(t, entries, 1, "the record itself is still real")
	assert.Empty(t, entries[0].Content)
	assert.Equal(t, "corrupted", entries[0].Title)
}

func TestVaultEntries_ForeignEntriesFilteredOut(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	e, m := newTestEngine(t, ctrl)
	ctx := context.Background()

	m.vault.EXPECT().List(ctx, testOwnerID).Return([]models.VaultEntry{
		{ID: "v-1", OwnerID: testOwnerID, Content: "sealed-1"},
		{ID: "v-2", OwnerID: testOwnerID + 7, Content: "sealed-2"},
	}, nil)
	m.cipher.EXPECT().Decrypt("sealed-1").Return("mine", nil)

	entries, err := e.VaultEntries(ctx)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "v-1", entries[0].ID)
}

func TestVaultEntries_RequiresAuthentication(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	e, _ := newTestEngine(t, ctrl)
	e.guard.ClearOwner()

	_, err := e.VaultEntries(context.Background())
	assert.ErrorIs(t, err, ErrNoAuthenticatedOwner)
}

// ── Project log ──────────────────────────────────────────────────────────────

func TestAddProjectLog_AppendsEncryptedRecord(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	e, m := newTestEngine(t, ctrl)
	ctx := context.Background()

	m.cipher.EXPECT().Encrypt("set up CI for the side project").Return("sealed", nil)
	m.vault.EXPECT().
		Append(ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, entry models.VaultEntry) error {
			assert.NotEmpty(t, entry.ID)
			assert.Equal(t, testOwnerID, entry.OwnerID)
			assert.Equal(t, models.VaultProject, entry.Category)
			assert.Equal(t, "pipeline", entry.Title)
			assert.Equal(t, "sealed", entry.Content, "content is stored encrypted")
			assert.Equal(t, []string{"ci", "infra"}, entry.Tags)
			assert.Equal(t, testClock, entry.CreatedAt)
			return nil
		})
	m.aura.EXPECT().Save(gomock.Any(), gomock.Any()).Return(nil)

	require.True(t, e.AddProjectLog(ctx, "  pipeline  ", "set up CI for the side project", []string{"ci", "infra"}))
	assert.Equal(t, 3.0, e.Aura().Score, "project reward applied")
}

func TestAddProjectLog_EmptyTitleRejected(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	e, _ := newTestEngine(t, ctrl)

	assert.False(t, e.AddProjectLog(context.Background(), "   ", "content", nil))
	assert.Equal(t, 0.0, e.Aura().Score)
}

func TestAddProjectLog_PersistFailureSkipsReward(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	e, m := newTestEngine(t, ctrl)
	ctx := context.Background()

	m.cipher.EXPECT().Encrypt(gomock.Any()).Return("sealed", nil)
	m.vault.EXPECT().Append(ctx, gomock.Any()).Return(errors.New("disk full"))

	assert.False(t, e.AddProjectLog(ctx, "pipeline", "content", nil))
	assert.Equal(t, 0.0, e.Aura().Score, "no reward without a persisted record")
}
