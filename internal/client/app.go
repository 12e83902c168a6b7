// Package client wires the application together for one interactive run:
// authentication via the account store, local key derivation, engine
// construction for the logged-in owner, the background decay job, and the
// TUI main loop. A logout tears the per-owner pieces down and restarts the
// flow so the next owner gets a fresh engine.
package client

import (
	"context"
	"errors"
	"fmt"

	"github.com/dchas/praxis/internal/adapter"
	"github.com/dchas/praxis/internal/config"
	"github.com/dchas/praxis/internal/crypto"
	"github.com/dchas/praxis/internal/engine"
	"github.com/dchas/praxis/internal/logger"
	"github.com/dchas/praxis/internal/store"
	"github.com/dchas/praxis/internal/tui"
	"github.com/dchas/praxis/internal/workers"
)

type App struct {
	cfg        *config.StructuredConfig
	storages   *store.Storages
	accounts   adapter.AccountAdapter
	classifier adapter.GoalClassifier
	keychain   crypto.KeyChainService
	cipher     crypto.ContentCipher
	guard      *engine.Guard
	ui         *tui.TUI
	logger     *logger.Logger
}

func NewApp(
	cfg *config.StructuredConfig,
	storages *store.Storages,
	accounts adapter.AccountAdapter,
	classifier adapter.GoalClassifier,
	ui *tui.TUI,
	log *logger.Logger,
) (*App, error) {
	return &App{
		cfg:        cfg,
		storages:   storages,
		accounts:   accounts,
		classifier: classifier,
		keychain:   crypto.NewKeyChainService(),
		cipher:     crypto.NewContentCipher(),
		guard:      engine.NewGuard(log),
		ui:         ui,
		logger:     log,
	}, nil
}

// Run drives one login-to-logout cycle and recurses on logout. Returns nil
// when the owner quits the program.
func (a *App) Run() error {
	ctx := context.Background()

	ownerID, password, err := a.ui.LoginFlow(ctx)
	if err != nil {
		if errors.Is(err, tui.ErrUserQuit) {
			return nil
		}
		return err
	}

	if err = a.unlockContentKey(ctx, ownerID, password); err != nil {
		return err
	}

	eng, err := engine.NewSessionEngine(
		ctx,
		ownerID,
		a.guard,
		a.storages,
		a.accounts,
		a.classifier,
		a.cipher,
		a.cfg.Aura,
		a.logger,
	)
	if err != nil {
		return fmt.Errorf("create session engine: %w", err)
	}

	jobs := workers.NewWorkers(
		workers.NewDecayJob(eng, a.cfg.Workers.DecayCheckInterval),
	)
	jobs.Start(ctx)
	defer jobs.Stop()

	logout, err := a.ui.MainLoop(ctx, eng)
	if err != nil {
		return err
	}
	if logout {
		jobs.Stop()
		a.teardownOwner()
		return a.Run()
	}

	return nil
}

// unlockContentKey derives the local content key from the owner's password
// and the per-owner salt, creating the salt on the first login on this
// device.
func (a *App) unlockContentKey(ctx context.Context, ownerID int64, password string) error {
	salt, err := a.storages.Keys.Salt(ctx, ownerID)
	if errors.Is(err, store.ErrSaltNotFound) {
		salt, err = a.keychain.GenerateSalt()
		if err != nil {
			return fmt.Errorf("generate content key salt: %w", err)
		}
		if err = a.storages.Keys.SaveSalt(ctx, ownerID, salt); err != nil {
			return fmt.Errorf("persist content key salt: %w", err)
		}
	} else if err != nil {
		return fmt.Errorf("load content key salt: %w", err)
	}

	a.cipher.SetKey(a.keychain.DeriveKey(password, salt))
	return nil
}

// teardownOwner clears the per-owner state before the next login: the owner
// guard, the bearer token, and the content key.
func (a *App) teardownOwner() {
	a.guard.ClearOwner()
	a.accounts.SetToken("")
	a.cipher.SetKey(nil)
}
