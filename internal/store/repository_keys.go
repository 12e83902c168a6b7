package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"

	"github.com/dchas/praxis/internal/logger"
)

type keyRepository struct {
	*DB
	logger *logger.Logger
}

func NewKeyRepository(db *DB, logger *logger.Logger) KeyRepository {
	return &keyRepository{
		DB:     db,
		logger: logger,
	}
}

func (k *keyRepository) Salt(ctx context.Context, ownerID int64) ([]byte, error) {
	query, args, err := sq.Select("salt").
		From("owner_keys").
		Where(sq.Eq{"owner_id": ownerID}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build salt select: %w", err)
	}

	var salt []byte
	err = k.DB.QueryRowContext(ctx, query, args...).Scan(&salt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrSaltNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to query owner key salt: %w", err)
	}

	return salt, nil
}

func (k *keyRepository) SaveSalt(ctx context.Context, ownerID int64, salt []byte) error {
	query, args, err := sq.Insert("owner_keys").
		Columns("owner_id", "salt").
		Values(ownerID, salt).
		Suffix("ON CONFLICT (owner_id) DO UPDATE SET salt = excluded.salt").
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build salt upsert: %w", err)
	}

	if _, err = k.DB.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("failed to save owner key salt: %w", err)
	}

	return nil
}
