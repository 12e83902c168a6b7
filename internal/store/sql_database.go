package store

import (
	"database/sql"

	"github.com/dchas/praxis/internal/logger"
	"github.com/dchas/praxis/migrations"
)

type DB struct {
	*sql.DB
	logger *logger.Logger
}

func (db *DB) Migrate() error {
	return migrations.Migrate(db.DB)
}
