package store

import (
	"context"
	"database/sql"
	"errors"
	"strings"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"

	"github.com/dchas/praxis/internal/logger"
	"github.com/dchas/praxis/models"
)

func newTestAuraRepo(t *testing.T) (*auraRepository, sqlmock.Sqlmock, *sql.DB) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to create sqlmock: %v", err)
	}
	l := logger.Nop()
	repo := &auraRepository{
		DB:     &DB{DB: db, logger: l},
		logger: l,
	}
	return repo, mock, db
}

func TestAuraGet_Success(t *testing.T) {
	repo, mock, db := newTestAuraRepo(t)
	defer db.Close()

	ctx := context.Background()

	rows := sqlmock.
		NewRows([]string{"owner_id", "score", "history", "last_decay_check", "streak"}).
		AddRow(42, 37.5, `[{"date":"2026-03-10","score":37.5}]`, "2026-03-11", 4)

	mock.ExpectQuery("SELECT owner_id, score, history").
		WithArgs(int64(42)).
		WillReturnRows(rows)

	state, err := repo.Get(ctx, 42)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if state.Score != 37.5 {
		t.Errorf("expected score 37.5, got %v", state.Score)
	}
	if state.Streak != 4 {
		t.Errorf("expected streak 4, got %d", state.Streak)
	}
	if len(state.History) != 1 || state.History[0].Date != "2026-03-10" {
		t.Errorf("expected decoded history, got %+v", state.History)
	}
}

func TestAuraGet_NotFound(t *testing.T) {
	repo, mock, db := newTestAuraRepo(t)
	defer db.Close()

	ctx := context.Background()

	mock.ExpectQuery("SELECT owner_id, score, history").
		WithArgs(int64(42)).
		WillReturnError(sql.ErrNoRows)

	_, err := repo.Get(ctx, 42)
	if !errors.Is(err, ErrAuraStateNotFound) {
		t.Fatalf("expected ErrAuraStateNotFound, got %v", err)
	}
}

func TestAuraGet_BadHistoryJSON(t *testing.T) {
	repo, mock, db := newTestAuraRepo(t)
	defer db.Close()

	ctx := context.Background()

	rows := sqlmock.
		NewRows([]string{"owner_id", "score", "history", "last_decay_check", "streak"}).
		AddRow(42, 0.0, `{broken`, "", 0)

	mock.ExpectQuery("SELECT owner_id, score, history").
		WillReturnRows(rows)

	_, err := repo.Get(ctx, 42)
	if err == nil || !strings.Contains(err.Error(), "failed to decode aura history") {
		t.Fatalf("expected history decode error, got %v", err)
	}
}

func TestAuraSave_UpsertsState(t *testing.T) {
	repo, mock, db := newTestAuraRepo(t)
	defer db.Close()

	ctx := context.Background()
	state := models.AuraState{
		OwnerID:        42,
		Score:          30,
		History:        []models.AuraHistoryEntry{{Date: "2026-03-14", Score: 30}},
		LastDecayCheck: "2026-03-14",
		Streak:         0,
	}

	mock.ExpectExec("INSERT INTO aura_state").
		WithArgs(state.OwnerID, state.Score, `[{"date":"2026-03-14","score":30}]`,
			state.LastDecayCheck, state.Streak).
		WillReturnResult(sqlmock.NewResult(1, 1))

	if err := repo.Save(ctx, state); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet expectations: %v", err)
	}
}

func TestAuraSave_ExecError(t *testing.T) {
	repo, mock, db := newTestAuraRepo(t)
	defer db.Close()

	ctx := context.Background()

	mock.ExpectExec("INSERT INTO aura_state").
		WillReturnError(errors.New("database is locked"))

	err := repo.Save(ctx, models.AuraState{OwnerID: 42})
	if err == nil || !strings.Contains(err.Error(), "failed to save aura state") {
		t.Fatalf("expected wrapped save error, got %v", err)
	}
}
