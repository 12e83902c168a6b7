package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/dchas/praxis/models"
)

// reflectionState is the mandatory closing form shown after a session
// reaches a terminal status. With an empty sessionID it closes the session
// in the active slot; with one set it satisfies a deferred obligation from
// the pending queue.
type reflectionState struct {
	sessionID string

	inputs []textinput.Model
	focus  int
	errMsg string
}

var reflectionLabels = []string{"What happened", "Mistake noticed", "Insight"}

func newReflectionState(sessionID string) reflectionState {
	inputs := make([]textinput.Model, len(reflectionLabels))
	for i, label := range reflectionLabels {
		in := textinput.New()
		in.Placeholder = strings.ToLower(label)
		in.CharLimit = 500
		in.Width = 50
		inputs[i] = in
	}
	inputs[0].Focus()

	return reflectionState{sessionID: sessionID, inputs: inputs}
}

func (m mainLoopModel) updateReflection(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if ok {
		switch keyMsg.String() {
		case "tab":
			m.reflection.focusNext()
			return m, nil
		case "shift+tab":
			m.reflection.focusPrev()
			return m, nil
		case "ctrl+d":
			// Defer only applies to the active-slot gate; a deferred
			// obligation cannot be deferred again.
			if m.reflection.sessionID != "" {
				m.screen = screenPending
				return m, m.cmdLoadPending()
			}
			if m.engine.DeferReflection(m.ctx) {
				m.screen = screenHome
				m.status = "Reflection deferred"
				return m, nil
			}
			m.reflection.errMsg = "Nothing to defer"
			return m, nil
		case "enter":
			input := models.ReflectionInput{
				OutcomeDescription: m.reflection.inputs[0].Value(),
				MistakePattern:     m.reflection.inputs[1].Value(),
				Insight:            m.reflection.inputs[2].Value(),
			}

			var submitted bool
			if m.reflection.sessionID == "" {
				submitted = m.engine.SubmitReflection(m.ctx, input)
			} else {
				submitted = m.engine.SubmitDeferredReflection(m.ctx, m.reflection.sessionID, input)
			}
			if !submitted {
				m.reflection.errMsg = "Could not record the reflection"
				return m, nil
			}

			if m.reflection.sessionID != "" {
				m.screen = screenPending
				m.status = "Reflection recorded"
				return m, m.cmdLoadPending()
			}
			m.screen = screenHome
			m.status = "Reflection recorded, loop closed"
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.reflection.inputs[m.reflection.focus], cmd = m.reflection.inputs[m.reflection.focus].Update(msg)
	return m, cmd
}

func (m mainLoopModel) viewReflection() string {
	var b strings.Builder

	if m.reflection.sessionID == "" {
		if session := m.engine.ActiveSession(); session != nil {
			b.WriteString("Session " + string(session.Outcome) + ": " + fitText(session.IntentSnapshot, 40) + "\n\n")
		}
	}

	for i, label := range reflectionLabels {
		b.WriteString(label + "\n[")
		b.WriteString(m.reflection.inputs[i].View())
		b.WriteString("]\n")
	}

	if m.reflection.errMsg != "" {
		b.WriteString("\n" + errorStyle.Render("Error: "+m.reflection.errMsg))
	}

	hotKeys := "tab: next field │ enter: submit │ ctrl+d: defer"
	if m.reflection.sessionID != "" {
		hotKeys = "tab: next field │ enter: submit │ ctrl+d: back"
	}
	return renderPage("REFLECTION", strings.TrimRight(b.String(), "\n"), hotKeys)
}

func (s *reflectionState) focusNext() {
	s.inputs[s.focus].Blur()
	s.focus = (s.focus + 1) % len(s.inputs)
	s.inputs[s.focus].Focus()
}

func (s *reflectionState) focusPrev() {
	s.inputs[s.focus].Blur()
	s.focus = (s.focus - 1 + len(s.inputs)) % len(s.inputs)
	s.inputs[s.focus].Focus()
}
