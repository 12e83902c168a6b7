package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"

	"github.com/dchas/praxis/internal/logger"
	"github.com/dchas/praxis/models"
)

type vaultRepository struct {
	*DB
	logger *logger.Logger
}

func NewVaultRepository(db *DB, logger *logger.Logger) VaultRepository {
	return &vaultRepository{
		DB:     db,
		logger: logger,
	}
}

func (v *vaultRepository) Append(ctx context.Context, entries ...models.VaultEntry) error {
	log := logger.FromContext(ctx)

	for _, entry := range entries {
		tags, err := json.Marshal(entry.Tags)
		if err != nil {
			return fmt.Errorf("failed to encode tags (id=%s): %w", entry.ID, err)
		}

		query, args, err := sq.Insert("vault_entries").
			Columns("id", "owner_id", "category", "title", "content", "tags",
				"focus_session_id", "intent_id", "created_at").
			Values(entry.ID, entry.OwnerID, entry.Category, entry.Title, entry.Content,
				string(tags), entry.FocusSessionID, entry.IntentID, entry.CreatedAt).
			ToSql()
		if err != nil {
			return fmt.Errorf("failed to build vault insert: %w", err)
		}

		if _, err = v.DB.ExecContext(ctx, query, args...); err != nil {
			log.Err(err).
				Str("func", "vaultRepository.Append").
				Int64("owner_id", entry.OwnerID).
				Str("id", entry.ID).
				Msg("failed to execute insert for vault entry")
			return fmt.Errorf("failed to append vault entry (id=%s): %w", entry.ID, err)
		}
	}

	return nil
}

func (v *vaultRepository) List(ctx context.Context, ownerID int64) ([]models.VaultEntry, error) {
	log := logger.FromContext(ctx)

	query, args, err := sq.Select("id", "owner_id", "category", "title", "content", "tags",
		"focus_session_id", "intent_id", "created_at").
		From("vault_entries").
		Where(sq.Eq{"owner_id": ownerID}).
		OrderBy("created_at DESC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build vault select: %w", err)
	}

	rows, err := v.DB.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).
			Str("func", "vaultRepository.List").
			Int64("owner_id", ownerID).
			Msg("failed to execute query for vault entries")
		return nil, fmt.Errorf("failed to query vault entries: %w", err)
	}
	defer rows.Close()

	var entries []models.VaultEntry

	for rows.Next() {
		var entry models.VaultEntry
		var tags string

		scanErr := rows.Scan(
			&entry.ID,
			&entry.OwnerID,
			&entry.Category,
			&entry.Title,
			&entry.Content,
			&tags,
			&entry.FocusSessionID,
			&entry.IntentID,
			&entry.CreatedAt,
		)
		if scanErr != nil {
			log.Err(scanErr).
				Str("func", "vaultRepository.List").
				Int64("owner_id", ownerID).
				Msg("failed to scan vault entry row")
			return nil, fmt.Errorf("failed to scan vault entry row: %w", scanErr)
		}

		if err = json.Unmarshal([]byte(tags), &entry.Tags); err != nil {
			return nil, fmt.Errorf("failed to decode tags (id=%s): %w", entry.ID, err)
		}

		entries = append(entries, entry)
	}

	if rowsErr := rows.Err(); rowsErr != nil {
		log.Err(rowsErr).
			Str("func", "vaultRepository.List").
			Int64("owner_id", ownerID).
			Msg("rows iteration error")
		return nil, fmt.Errorf("rows iteration error: %w", rowsErr)
	}

	return entries, nil
}

func (v *vaultRepository) MostRecentDate(ctx context.Context, ownerID int64) (time.Time, error) {
	log := logger.FromContext(ctx)

	query, args, err := sq.Select("created_at").
		From("vault_entries").
		Where(sq.Eq{"owner_id": ownerID}).
		OrderBy("created_at DESC").
		Limit(1).
		ToSql()
	if err != nil {
		return time.Time{}, fmt.Errorf("failed to build most-recent-date select: %w", err)
	}

	var createdAt time.Time
	err = v.DB.QueryRowContext(ctx, query, args...).Scan(&createdAt)
	if errors.Is(err, sql.ErrNoRows) {
		return time.Time{}, ErrNoVaultEntries
	}
	if err != nil {
		log.Err(err).
			Str("func", "vaultRepository.MostRecentDate").
			Int64("owner_id", ownerID).
			Msg("failed to query most recent vault entry date")
		return time.Time{}, fmt.Errorf("failed to query most recent vault entry date: %w", err)
	}

	return createdAt, nil
}
