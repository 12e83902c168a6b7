package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/dchas/praxis/internal/engine"
	"github.com/dchas/praxis/models"
)

var artifactTypes = []models.ArtifactType{
	models.ArtifactNote,
	models.ArtifactCode,
	models.ArtifactExternal,
}

// artifactFormState is the add/edit form for a proof-of-work artifact. The
// type is chosen first and becomes immutable when editing an existing
// artifact; the remaining fields depend on it.
type artifactFormState struct {
	editingID string
	typeIdx   int

	title    textinput.Model
	language textinput.Model
	url      textinput.Model
	content  textarea.Model

	focus  int
	errMsg string
}

func newArtifactFormState(editingID string) artifactFormState {
	title := textinput.New()
	title.Placeholder = "title"
	title.CharLimit = 120
	title.Width = 40

	language := textinput.New()
	language.Placeholder = "language (optional)"
	language.CharLimit = 30
	language.Width = 40

	url := textinput.New()
	url.Placeholder = "https://..."
	url.CharLimit = 300
	url.Width = 40

	content := textarea.New()
	content.Placeholder = "content"
	content.SetWidth(50)
	content.SetHeight(6)

	return artifactFormState{
		editingID: editingID,
		title:     title,
		language:  language,
		url:       url,
		content:   content,
	}
}

func newArtifactFormStateFrom(a models.FocusArtifact) artifactFormState {
	s := newArtifactFormState(a.ID)
	for i, t := range artifactTypes {
		if t == a.Type {
			s.typeIdx = i
		}
	}
	s.title.SetValue(a.Title)
	s.language.SetValue(a.Language)
	s.url.SetValue(a.URL)
	s.content.SetValue(a.Content)
	return s
}

func (m mainLoopModel) updateArtifactForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if ok {
		switch keyMsg.String() {
		case "esc":
			m.screen = screenFocus
			return m, nil
		case "tab":
			m.artifactForm.focusNext()
			return m, nil
		case "shift+tab":
			m.artifactForm.focusPrev()
			return m, nil
		case "left", "right":
			// Type selection, only while creating and only on the type row.
			if m.artifactForm.focus == 0 && m.artifactForm.editingID == "" {
				if keyMsg.String() == "left" && m.artifactForm.typeIdx > 0 {
					m.artifactForm.typeIdx--
				}
				if keyMsg.String() == "right" && m.artifactForm.typeIdx < len(artifactTypes)-1 {
					m.artifactForm.typeIdx++
				}
				return m, nil
			}
		case "ctrl+s":
			input := engine.ArtifactInput{
				Type:     artifactTypes[m.artifactForm.typeIdx],
				Title:    m.artifactForm.title.Value(),
				Content:  m.artifactForm.content.Value(),
				Language: strings.TrimSpace(m.artifactForm.language.Value()),
				URL:      strings.TrimSpace(m.artifactForm.url.Value()),
			}

			var saved bool
			if m.artifactForm.editingID == "" {
				_, saved = m.engine.AddArtifact(m.ctx, input)
			} else {
				saved = m.engine.UpdateArtifact(m.ctx, m.artifactForm.editingID, input)
			}
			if !saved {
				m.artifactForm.errMsg = "Cannot save: a title is required"
				return m, nil
			}

			m.screen = screenFocus
			m.focus.localStatus = "Artifact saved"
			return m, nil
		}
	}

	cmd := m.artifactForm.updateFocused(msg)
	return m, cmd
}

func (s *artifactFormState) updateFocused(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	switch s.focus {
	case 1:
		s.title, cmd = s.title.Update(msg)
	case 2:
		s.language, cmd = s.language.Update(msg)
	case 3:
		s.url, cmd = s.url.Update(msg)
	case 4:
		s.content, cmd = s.content.Update(msg)
	}
	return cmd
}

func (s *artifactFormState) focusNext() {
	s.setFocus((s.focus + 1) % 5)
}

func (s *artifactFormState) focusPrev() {
	s.setFocus((s.focus + 4) % 5)
}

func (s *artifactFormState) setFocus(focus int) {
	s.title.Blur()
	s.language.Blur()
	s.url.Blur()
	s.content.Blur()

	s.focus = focus
	switch focus {
	case 1:
		s.title.Focus()
	case 2:
		s.language.Focus()
	case 3:
		s.url.Focus()
	case 4:
		s.content.Focus()
	}
}

func (m mainLoopModel) viewArtifactForm() string {
	var b strings.Builder
	s := m.artifactForm

	title := "ADD ARTIFACT"
	if s.editingID != "" {
		title = "EDIT ARTIFACT"
	}

	b.WriteString("Type     ")
	for i, t := range artifactTypes {
		marker := " "
		if i == s.typeIdx {
			marker = ">"
		}
		b.WriteString(marker + string(t) + " ")
	}
	if s.editingID != "" {
		b.WriteString(helpStyle.Render(" (fixed)"))
	}
	b.WriteString("\n")

	b.WriteString("Title    [" + s.title.View() + "]\n")
	if artifactTypes[s.typeIdx] == models.ArtifactCode {
		b.WriteString("Language [" + s.language.View() + "]\n")
	}
	if artifactTypes[s.typeIdx] == models.ArtifactExternal {
		b.WriteString("URL      [" + s.url.View() + "]\n")
	}
	b.WriteString("Content\n")
	b.WriteString(s.content.View())
	b.WriteString("\n")

	if s.errMsg != "" {
		b.WriteString("\n" + errorStyle.Render("Error: "+s.errMsg))
	}

	return renderPage(title, strings.TrimRight(b.String(), "\n"),
		"tab: next field │ ←/→: type │ ctrl+s: save │ esc: cancel")
}
