package tui

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/dchas/praxis/models"
)

type historyLoadedMsg struct {
	intents     []models.Intent
	sessions    []models.FocusSession
	reflections []models.Reflection
	err         error
}

type historyTab int

const (
	historyTabSessions historyTab = iota
	historyTabIntents
	historyTabReflections
	historyTabCount
)

type historyState struct {
	intents     []models.Intent
	sessions    []models.FocusSession
	reflections []models.Reflection
	tab         historyTab
	idx         int
	loading     bool
	errMsg      string
}

func newHistoryState() historyState {
	return historyState{loading: true}
}

func (m mainLoopModel) cmdLoadHistory() tea.Cmd {
	ctx := m.ctx
	eng := m.engine
	return func() tea.Msg {
		sessions, err := eng.SessionHistory(ctx)
		if err != nil {
			return historyLoadedMsg{err: err}
		}
		intents, err := eng.IntentHistory(ctx)
		if err != nil {
			return historyLoadedMsg{err: err}
		}
		reflections, err := eng.Reflections(ctx)
		if err != nil {
			return historyLoadedMsg{err: err}
		}
		return historyLoadedMsg{intents: intents, sessions: sessions, reflections: reflections}
	}
}

func (m mainLoopModel) updateHistory(msg tea.Msg) (tea.Model, tea.Cmd) {
	if loaded, ok := msg.(historyLoadedMsg); ok {
		m.history.loading = false
		if loaded.err != nil {
			m.history.errMsg = loaded.err.Error()
			return m, nil
		}
		m.history.intents = loaded.intents
		m.history.sessions = loaded.sessions
		m.history.reflections = loaded.reflections
		return m, nil
	}

	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch keyMsg.String() {
	case "esc":
		m.screen = screenHome
	case "tab":
		m.history.tab = (m.history.tab + 1) % historyTabCount
		m.history.idx = 0
	case "up", "k":
		if m.history.idx > 0 {
			m.history.idx--
		}
	case "down", "j":
		if m.history.idx < m.history.listLen()-1 {
			m.history.idx++
		}
	}

	return m, nil
}

func (s *historyState) listLen() int {
	switch s.tab {
	case historyTabIntents:
		return len(s.intents)
	case historyTabReflections:
		return len(s.reflections)
	default:
		return len(s.sessions)
	}
}

func (m mainLoopModel) viewHistory() string {
	var b strings.Builder

	if m.history.loading {
		return renderPage("HISTORY", "Loading...", "esc: back")
	}

	tabs := []string{"Sessions", "Intents", "Reflections"}
	tabs[m.history.tab] = "[" + tabs[m.history.tab] + "]"
	b.WriteString(strings.Join(tabs, "  ") + "\n\n")

	switch m.history.tab {
	case historyTabSessions:
		if len(m.history.sessions) == 0 {
			b.WriteString("No sessions yet.\n")
		}
		for i, session := range m.history.sessions {
			cursor := " "
			if i == m.history.idx {
				cursor = ">"
			}
			flags := checkbox(session.ReflectionSubmitted) + " reflected"
			b.WriteString(cursor + " (" + string(session.Outcome) + ") " +
				fitText(session.IntentSnapshot, 28) + "  " + helpStyle.Render(flags) + "\n")
		}
	case historyTabIntents:
		if len(m.history.intents) == 0 {
			b.WriteString("No intents yet.\n")
		}
		for i, intent := range m.history.intents {
			cursor := " "
			if i == m.history.idx {
				cursor = ">"
			}
			b.WriteString(cursor + " [" + string(intent.Status) + "] " +
				fitText(intent.Declaration, 32) + "  " +
				helpStyle.Render(intent.DeclaredAt.Format("2006-01-02")) + "\n")
		}
	case historyTabReflections:
		if len(m.history.reflections) == 0 {
			b.WriteString("No reflections yet.\n")
		}
		for i, refl := range m.history.reflections {
			cursor := " "
			if i == m.history.idx {
				cursor = ">"
			}
			line := cursor + " (" + string(refl.Outcome) + ") " +
				fitText(refl.IntentSnapshot, 28) + "  " +
				helpStyle.Render(refl.CreatedAt.Format("2006-01-02")) + "\n"
			b.WriteString(line)
			if i == m.history.idx && refl.Insight != "" {
				b.WriteString("   " + helpStyle.Render("insight: "+fitText(refl.Insight, 44)) + "\n")
			}
		}
	}

	if m.history.errMsg != "" {
		b.WriteString("\n" + errorStyle.Render(m.history.errMsg))
	}

	return renderPage("HISTORY", strings.TrimRight(b.String(), "\n"),
		"tab: switch │ ↑/↓: navigate │ esc: back")
}
