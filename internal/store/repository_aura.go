package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"

	"github.com/dchas/praxis/internal/logger"
	"github.com/dchas/praxis/models"
)

type auraRepository struct {
	*DB
	logger *logger.Logger
}

func NewAuraRepository(db *DB, logger *logger.Logger) AuraRepository {
	return &auraRepository{
		DB:     db,
		logger: logger,
	}
}

func (a *auraRepository) Get(ctx context.Context, ownerID int64) (models.AuraState, error) {
	log := logger.FromContext(ctx)

	query, args, err := sq.Select("owner_id", "score", "history", "last_decay_check", "streak").
		From("aura_state").
		Where(sq.Eq{"owner_id": ownerID}).
		ToSql()
	if err != nil {
		return models.AuraState{}, fmt.Errorf("failed to build aura select: %w", err)
	}

	var state models.AuraState
	var history string

	err = a.DB.QueryRowContext(ctx, query, args...).Scan(
		&state.OwnerID,
		&state.Score,
		&history,
		&state.LastDecayCheck,
		&state.Streak,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return models.AuraState{}, ErrAuraStateNotFound
	}
	if err != nil {
		log.Err(err).
			Str("func", "auraRepository.Get").
			Int64("owner_id", ownerID).
			Msg("failed to query aura state")
		return models.AuraState{}, fmt.Errorf("failed to query aura state: %w", err)
	}

	if err = json.Unmarshal([]byte(history), &state.History); err != nil {
		return models.AuraState{}, fmt.Errorf("failed to decode aura history: %w", err)
	}

	return state, nil
}

func (a *auraRepository) Save(ctx context.Context, state models.AuraState) error {
	log := logger.FromContext(ctx)

	history, err := json.Marshal(state.History)
	if err != nil {
		return fmt.Errorf("failed to encode aura history: %w", err)
	}

	query, args, err := sq.Insert("aura_state").
		Columns("owner_id", "score", "history", "last_decay_check", "streak").
		Values(state.OwnerID, state.Score, string(history), state.LastDecayCheck, state.Streak).
		Suffix(`ON CONFLICT (owner_id) DO UPDATE SET
			score = excluded.score,
			history = excluded.history,
			last_decay_check = excluded.last_decay_check,
			streak = excluded.streak`).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build aura upsert: %w", err)
	}

	if _, err = a.DB.ExecContext(ctx, query, args...); err != nil {
		log.Err(err).
			Str("func", "auraRepository.Save").
			Int64("owner_id", state.OwnerID).
			Msg("failed to execute upsert for aura state")
		return fmt.Errorf("failed to save aura state: %w", err)
	}

	return nil
}
