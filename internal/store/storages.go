package store

import (
	"context"
	"fmt"

	"github.com/dchas/praxis/internal/config"
	"github.com/dchas/praxis/internal/logger"
)

// Storages groups all local snapshot repositories into a single value that
// can be passed around the engine. The snapshot database persists only the
// durable side of the engine: resolved history, permanent records, aura
// state, and key material. Ephemeral focus state never lands here.
type Storages struct {
	// Vault is the append-only repository for permanent records.
	Vault VaultRepository

	// History persists resolved intents, archived sessions, and reflections.
	History HistoryRepository

	// Aura persists the owner-scoped engagement score state.
	Aura AuraRepository

	// Keys persists the per-owner content key salt.
	Keys KeyRepository
}

// NewStorages initialises the local storage layer using the supplied
// configuration and logger. It performs the following steps:
//  1. Opens an SQLite connection to the file path specified in cfg.DB.DSN,
//     creating the database file if it does not yet exist.
//  2. Runs pending schema migrations via [DB.Migrate].
//  3. Constructs and returns a [Storages] value wired to fresh repositories.
//
// Returns an error if the database connection cannot be established or if
// migration fails.
func NewStorages(cfg config.Storage, logger *logger.Logger) (*Storages, error) {
	logger.Info().Msg("creating new storages...")

	db, err := NewConnectSQLite(context.Background(), cfg.DB, logger)
	if err != nil {
		return nil, fmt.Errorf("sqlite connection error: %w", err)
	}

	if err := db.Migrate(); err != nil {
		return nil, fmt.Errorf("migration failed: %w", err)
	}

	return &Storages{
		Vault:   NewVaultRepository(db, logger),
		History: NewHistoryRepository(db, logger),
		Aura:    NewAuraRepository(db, logger),
		Keys:    NewKeyRepository(db, logger),
	}, nil
}
