package tui

import (
	"context"
	"errors"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/dchas/praxis/internal/adapter"
	"github.com/dchas/praxis/internal/engine"
	"github.com/dchas/praxis/internal/logger"
)

var ErrUserQuit = errors.New("user quit the program")

type TUI struct {
	accounts adapter.AccountAdapter
	version  string
}

func New(accounts adapter.AccountAdapter, version string, _ *logger.Logger) (*TUI, error) {
	return &TUI{accounts: accounts, version: version}, nil
}

// LoginFlow runs the pre-engine part of the UI: the start menu with login
// and registration pages. On success it returns the authenticated owner id
// and the password the owner typed, which the caller needs for local key
// derivation. Returns ErrUserQuit when the owner quits at the menu.
func (t *TUI) LoginFlow(ctx context.Context) (ownerID int64, password string, err error) {
	pages := map[string]tea.Model{
		"menu":     NewMenuModel(t.version),
		"login":    NewLoginModel(ctx, t.accounts),
		"register": NewRegisterModel(ctx, t.accounts),
	}

	root := NewRootModel(pages, "menu")
	finalModel, runErr := tea.NewProgram(root, tea.WithAltScreen()).Run()
	if runErr != nil {
		return 0, "", runErr
	}

	result, ok := finalModel.(RootModel)
	if !ok {
		return 0, "", tea.ErrProgramKilled
	}
	if result.quitByUser {
		return 0, "", ErrUserQuit
	}

	return result.resultOwnerID, result.resultPassword, nil
}

// MainLoop runs the working part of the UI against a constructed engine:
// onboarding if still needed, then the home screen with the intent, focus,
// reflection, vault, and history flows. Returns logout=true when the owner
// chose to switch accounts rather than quit.
func (t *TUI) MainLoop(ctx context.Context, eng *engine.SessionEngine) (logout bool, err error) {
	model := newMainLoopModel(ctx, eng)
	finalModel, runErr := tea.NewProgram(model, tea.WithAltScreen()).Run()
	if runErr != nil {
		return false, runErr
	}

	result, ok := finalModel.(mainLoopModel)
	if !ok {
		return false, tea.ErrProgramKilled
	}
	return result.logout, nil
}

// LoginResult finalizes the login/register flow. Password travels with the
// result because the local content key is derived from it after the UI
// hands control back.
type LoginResult struct {
	Err      error
	Username string
	OwnerID  int64
	Password string
}

// RegisterSuccessNotice is shown on the menu after a successful registration.
type RegisterSuccessNotice struct {
	Username string
}

// NavigateTo switches the login-flow router to another page, optionally
// delivering a payload message to it.
type NavigateTo struct {
	Page    string
	Payload tea.Msg
}
