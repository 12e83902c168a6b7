package tui

import (
	"strings"

	"github.com/atotto/clipboard"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/dchas/praxis/models"
)

type vaultLoadedMsg struct {
	entries []models.VaultEntry
	err     error
}

type vaultState struct {
	entries []models.VaultEntry
	idx     int
	loading bool
	detail  bool
	status  string
	errMsg  string
}

func newVaultState() vaultState {
	return vaultState{loading: true}
}

func (m mainLoopModel) cmdLoadVault() tea.Cmd {
	ctx := m.ctx
	eng := m.engine
	return func() tea.Msg {
		entries, err := eng.VaultEntries(ctx)
		return vaultLoadedMsg{entries: entries, err: err}
	}
}

func (m mainLoopModel) updateVault(msg tea.Msg) (tea.Model, tea.Cmd) {
	if loaded, ok := msg.(vaultLoadedMsg); ok {
		m.vault.loading = false
		if loaded.err != nil {
			m.vault.errMsg = loaded.err.Error()
			return m, nil
		}
		m.vault.entries = loaded.entries
		if m.vault.idx >= len(m.vault.entries) {
			m.vault.idx = 0
		}
		return m, nil
	}

	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	if m.vault.detail {
		switch keyMsg.String() {
		case "esc":
			m.vault.detail = false
		case "c":
			if m.vault.idx < len(m.vault.entries) {
				if err := clipboard.WriteAll(m.vault.entries[m.vault.idx].Content); err != nil {
					m.vault.errMsg = "Copy failed: " + err.Error()
					return m, nil
				}
				m.vault.status = "Copied"
			}
		}
		return m, nil
	}

	switch keyMsg.String() {
	case "esc":
		m.screen = screenHome
	case "up", "k":
		if m.vault.idx > 0 {
			m.vault.idx--
		}
	case "down", "j":
		if m.vault.idx < len(m.vault.entries)-1 {
			m.vault.idx++
		}
	case "enter":
		if m.vault.idx < len(m.vault.entries) {
			m.vault.detail = true
		}
	}

	return m, nil
}

func (m mainLoopModel) viewVault() string {
	var b strings.Builder

	if m.vault.loading {
		return renderPage("VAULT", "Loading...", "esc: back")
	}

	if m.vault.detail && m.vault.idx < len(m.vault.entries) {
		entry := m.vault.entries[m.vault.idx]
		b.WriteString(entry.Title + "\n")
		b.WriteString(helpStyle.Render("["+entry.Category+"]  "+entry.CreatedAt.Format("2006-01-02 15:04")) + "\n")
		if len(entry.Tags) > 0 {
			b.WriteString(helpStyle.Render("tags: "+strings.Join(entry.Tags, ", ")) + "\n")
		}
		b.WriteString("\n")
		b.WriteString(valueOrDash(entry.Content))
		if m.vault.status != "" {
			b.WriteString("\n\n" + statusStyle.Render(m.vault.status))
		}
		return renderPage("VAULT ENTRY", strings.TrimRight(b.String(), "\n"), "c: copy content │ esc: back")
	}

	if len(m.vault.entries) == 0 {
		b.WriteString("The vault is empty. Finish a focus session to fill it.\n")
	}
	for i, entry := range m.vault.entries {
		cursor := " "
		if i == m.vault.idx {
			cursor = ">"
		}
		b.WriteString(cursor + " [" + entry.Category + "] " + fitText(entry.Title, 34) +
			"  " + helpStyle.Render(entry.CreatedAt.Format("2006-01-02")) + "\n")
	}

	if m.vault.errMsg != "" {
		b.WriteString("\n" + errorStyle.Render(m.vault.errMsg))
	}

	return renderPage("VAULT", strings.TrimRight(b.String(), "\n"), "enter: open │ ↑/↓: navigate │ esc: back")
}
