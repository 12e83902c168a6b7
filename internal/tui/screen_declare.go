package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

type declareState struct {
	input  textinput.Model
	errMsg string
}

func newDeclareState() declareState {
	input := textinput.New()
	input.Placeholder = "What will you work on?"
	input.CharLimit = 200
	input.Width = 50
	input.Focus()
	return declareState{input: input}
}

func (m mainLoopModel) updateDeclare(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if ok {
		switch keyMsg.String() {
		case "esc":
			m.screen = screenHome
			return m, nil
		case "enter":
			text := m.declare.input.Value()
			if m.engine.DeclareIntent(m.ctx, text) {
				m.screen = screenHome
				m.status = "Intent declared"
				return m, nil
			}
			m.declare.errMsg = "Cannot declare: empty text or an intent is locked in focus"
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.declare.input, cmd = m.declare.input.Update(msg)
	return m, cmd
}

func (m mainLoopModel) viewDeclare() string {
	var b strings.Builder

	if prior := m.engine.ActiveIntent(); prior != nil {
		b.WriteString(helpStyle.Render("Replacing: " + fitText(prior.Declaration, 44)))
		b.WriteString("\n\n")
	}

	b.WriteString("[")
	b.WriteString(m.declare.input.View())
	b.WriteString("]\n")

	if m.declare.errMsg != "" {
		b.WriteString("\n" + errorStyle.Render("Error: "+m.declare.errMsg))
	}

	return renderPage("DECLARE INTENT", strings.TrimRight(b.String(), "\n"), "esc: back │ enter: declare")
}
