package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// projectLogState is the direct vault-append form for project progress,
// recorded outside any focus session.
type projectLogState struct {
	title   textinput.Model
	tags    textinput.Model
	content textarea.Model
	focus   int
	errMsg  string
}

func newProjectLogState() projectLogState {
	title := textinput.New()
	title.Placeholder = "what moved forward"
	title.CharLimit = 120
	title.Width = 40
	title.Focus()

	tags := textinput.New()
	tags.Placeholder = "tags, comma separated (optional)"
	tags.CharLimit = 120
	tags.Width = 40

	content := textarea.New()
	content.Placeholder = "details (optional)"
	content.SetWidth(50)
	content.SetHeight(5)

	return projectLogState{title: title, tags: tags, content: content}
}

func (m mainLoopModel) updateProjectLog(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if ok {
		switch keyMsg.String() {
		case "esc":
			m.screen = screenHome
			return m, nil
		case "tab":
			m.project.focusNext()
			return m, nil
		case "shift+tab":
			m.project.focusPrev()
			return m, nil
		case "ctrl+s":
			var tags []string
			for _, t := range strings.Split(m.project.tags.Value(), ",") {
				if t = strings.TrimSpace(t); t != "" {
					tags = append(tags, t)
				}
			}

			if m.engine.AddProjectLog(m.ctx, m.project.title.Value(), m.project.content.Value(), tags) {
				m.screen = screenHome
				m.status = "Project log recorded"
				return m, nil
			}
			m.project.errMsg = "Cannot save: a title is required"
			return m, nil
		}
	}

	cmd := m.project.updateFocused(msg)
	return m, cmd
}

func (s *projectLogState) updateFocused(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	switch s.focus {
	case 0:
		s.title, cmd = s.title.Update(msg)
	case 1:
		s.tags, cmd = s.tags.Update(msg)
	case 2:
		s.content, cmd = s.content.Update(msg)
	}
	return cmd
}

func (s *projectLogState) focusNext() {
	s.setFocus((s.focus + 1) % 3)
}

func (s *projectLogState) focusPrev() {
	s.setFocus((s.focus + 2) % 3)
}

func (s *projectLogState) setFocus(focus int) {
	s.title.Blur()
	s.tags.Blur()
	s.content.Blur()

	s.focus = focus
	switch focus {
	case 0:
		s.title.Focus()
	case 1:
		s.tags.Focus()
	case 2:
		s.content.Focus()
	}
}

func (m mainLoopModel) viewProjectLog() string {
	var b strings.Builder

	b.WriteString("Title [" + m.project.title.View() + "]\n")
	b.WriteString("Tags  [" + m.project.tags.View() + "]\n")
	b.WriteString("Details\n")
	b.WriteString(m.project.content.View())
	b.WriteString("\n")

	if m.project.errMsg != "" {
		b.WriteString("\n" + errorStyle.Render("Error: "+m.project.errMsg))
	}

	return renderPage("PROJECT LOG", strings.TrimRight(b.String(), "\n"),
		"tab: next field │ ctrl+s: save │ esc: back")
}
