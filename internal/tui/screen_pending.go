package tui

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/dchas/praxis/models"
)

type pendingLoadedMsg struct {
	sessions []models.FocusSession
	err      error
}

// pendingState lists archived sessions whose reflection is still owed,
// oldest obligation first. Selecting one opens the reflection form against
// that session.
type pendingState struct {
	sessions []models.FocusSession
	idx      int
	loading  bool
	errMsg   string
}

func newPendingState() pendingState {
	return pendingState{loading: true}
}

func (m mainLoopModel) cmdLoadPending() tea.Cmd {
	ctx := m.ctx
	eng := m.engine
	return func() tea.Msg {
		sessions, err := eng.PendingReflections(ctx)
		return pendingLoadedMsg{sessions: sessions, err: err}
	}
}

func (m mainLoopModel) updatePending(msg tea.Msg) (tea.Model, tea.Cmd) {
	if loaded, ok := msg.(pendingLoadedMsg); ok {
		m.pending.loading = false
		if loaded.err != nil {
			m.pending.errMsg = loaded.err.Error()
			return m, nil
		}
		m.pending.sessions = loaded.sessions
		if m.pending.idx >= len(m.pending.sessions) {
			m.pending.idx = 0
		}
		return m, nil
	}

	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch keyMsg.String() {
	case "esc":
		m.screen = screenHome
	case "up", "k":
		if m.pending.idx > 0 {
			m.pending.idx--
		}
	case "down", "j":
		if m.pending.idx < len(m.pending.sessions)-1 {
			m.pending.idx++
		}
	case "enter":
		if m.pending.idx < len(m.pending.sessions) {
			m.screen = screenReflection
			m.reflection = newReflectionState(m.pending.sessions[m.pending.idx].ID)
			m.clearNotices()
		}
	}

	return m, nil
}

func (m mainLoopModel) viewPending() string {
	var b strings.Builder

	if m.pending.loading {
		return renderPage("PENDING REFLECTIONS", "Loading...", "esc: back")
	}

	if len(m.pending.sessions) == 0 {
		b.WriteString("No reflections owed. Well done.\n")
	}
	for i, session := range m.pending.sessions {
		cursor := " "
		if i == m.pending.idx {
			cursor = ">"
		}
		b.WriteString(cursor + " (" + string(session.Outcome) + ") " + fitText(session.IntentSnapshot, 36) +
			"  " + helpStyle.Render(session.StartedAt.Format("2006-01-02")) + "\n")
	}

	if m.status != "" {
		b.WriteString("\n" + statusStyle.Render("OK: "+m.status))
	}
	if m.pending.errMsg != "" {
		b.WriteString("\n" + errorStyle.Render(m.pending.errMsg))
	}

	return renderPage("PENDING REFLECTIONS", strings.TrimRight(b.String(), "\n"),
		"enter: reflect │ ↑/↓: navigate │ esc: back")
}
