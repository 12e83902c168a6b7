package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// Onboarding asks for a free-text learning goal once per account; the
// external classifier turns it into a domain label. The screen cannot be
// skipped until classification succeeds.
type onboardingState struct {
	input      textinput.Model
	submitting bool
	errMsg     string
}

func newOnboardingState() onboardingState {
	input := textinput.New()
	input.Placeholder = "I want to learn..."
	input.CharLimit = 200
	input.Width = 50
	input.Focus()
	return onboardingState{input: input}
}

func (m mainLoopModel) updateOnboarding(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if ok && keyMsg.String() == "enter" {
		if m.onboarding.submitting {
			return m, nil
		}
		goal := strings.TrimSpace(m.onboarding.input.Value())
		if goal == "" {
			m.onboarding.errMsg = "State a goal to continue"
			return m, nil
		}

		if m.engine.CompleteOnboarding(m.ctx, goal) {
			m.screen = screenHome
			m.status = "Welcome! Your domain: " + m.engine.Profile().Domain
			return m, nil
		}
		m.onboarding.errMsg = "Classification failed, try again"
		return m, nil
	}

	var cmd tea.Cmd
	m.onboarding.input, cmd = m.onboarding.input.Update(msg)
	return m, cmd
}

func (m mainLoopModel) viewOnboarding() string {
	var b strings.Builder
	b.WriteString("What do you want to learn?\n\n")
	b.WriteString("[")
	b.WriteString(m.onboarding.input.View())
	b.WriteString("]\n")

	if m.onboarding.errMsg != "" {
		b.WriteString("\n" + errorStyle.Render("Error: "+m.onboarding.errMsg))
	}

	return renderPage("ONBOARDING", strings.TrimRight(b.String(), "\n"), "enter: submit")
}
