package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/dchas/praxis/models"
)

// focusState drives the running-session screen: the artifact list plus the
// inline proof prompt shown when the owner tries to finish.
type focusState struct {
	idx         int
	finishing   bool
	proofInput  textinput.Model
	errMsg      string
	localStatus string
}

func newFocusState() focusState {
	proof := textinput.New()
	proof.Placeholder = "What did you complete?"
	proof.CharLimit = 300
	proof.Width = 50
	return focusState{proofInput: proof}
}

func (m mainLoopModel) updateFocus(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	if m.focus.finishing {
		switch keyMsg.String() {
		case "esc":
			m.focus.finishing = false
			m.focus.errMsg = ""
			return m, nil
		case "enter":
			if m.engine.FinishFocus(m.ctx, m.focus.proofInput.Value()) {
				m.screen = screenReflection
				m.reflection = newReflectionState("")
				return m, nil
			}
			m.focus.errMsg = "Cannot finish: add at least one artifact and a proof statement"
			return m, nil
		}
		var cmd tea.Cmd
		m.focus.proofInput, cmd = m.focus.proofInput.Update(msg)
		return m, cmd
	}

	artifacts := m.engine.Artifacts()

	switch keyMsg.String() {
	case "esc":
		// The session keeps running; the owner just returns home.
		m.screen = screenHome
		return m, nil
	case "up", "k":
		if m.focus.idx > 0 {
			m.focus.idx--
		}
	case "down", "j":
		if m.focus.idx < len(artifacts)-1 {
			m.focus.idx++
		}
	case "a":
		m.screen = screenArtifactForm
		m.artifactForm = newArtifactFormState("")
	case "e":
		if m.focus.idx < len(artifacts) {
			a := artifacts[m.focus.idx]
			m.screen = screenArtifactForm
			m.artifactForm = newArtifactFormStateFrom(a)
		}
	case "x":
		if m.focus.idx < len(artifacts) {
			if m.engine.DeleteArtifact(m.ctx, artifacts[m.focus.idx].ID) {
				m.focus.localStatus = "Artifact deleted"
				if m.focus.idx > 0 {
					m.focus.idx--
				}
			}
		}
	case "F":
		m.focus.finishing = true
		m.focus.errMsg = ""
		m.focus.proofInput.Focus()
		return m, textinput.Blink
	case "A":
		// Abandoning is never blocked.
		if m.engine.AbandonFocus(m.ctx) {
			m.screen = screenReflection
			m.reflection = newReflectionState("")
		}
	}

	return m, nil
}

func (m mainLoopModel) viewFocus() string {
	var b strings.Builder

	session := m.engine.ActiveSession()
	if session == nil {
		return renderPage("FOCUS", "No active session", "esc: back")
	}

	b.WriteString("Intent: " + fitText(session.IntentSnapshot, 46) + "\n\n")

	artifacts := m.engine.Artifacts()
	if len(artifacts) == 0 {
		b.WriteString(helpStyle.Render("No artifacts yet. Finishing requires at least one.") + "\n")
	}
	for i, a := range artifacts {
		cursor := " "
		if i == m.focus.idx {
			cursor = ">"
		}
		line := cursor + " [" + string(a.Type) + "] " + fitText(a.Title, 36)
		if a.Type == models.ArtifactCode && a.Language != "" {
			line += "  (" + a.Language + ")"
		}
		b.WriteString(line + "\n")
	}

	if m.focus.finishing {
		b.WriteString("\nProof: [")
		b.WriteString(m.focus.proofInput.View())
		b.WriteString("]\n")
		b.WriteString(helpStyle.Render("enter: finish │ esc: cancel") + "\n")
	}

	if m.focus.localStatus != "" {
		b.WriteString("\n" + statusStyle.Render(m.focus.localStatus))
	}
	if m.focus.errMsg != "" {
		b.WriteString("\n" + errorStyle.Render(m.focus.errMsg))
	}

	return renderPage("FOCUS SESSION", strings.TrimRight(b.String(), "\n"),
		"a: add │ e: edit │ x: delete │ F: finish │ A: abandon │ esc: home")
}
