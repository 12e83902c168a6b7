package tui

import (
	"context"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/dchas/praxis/internal/engine"
	"github.com/dchas/praxis/models"
)

type screen int

const (
	screenHome screen = iota
	screenOnboarding
	screenDeclare
	screenFocus
	screenArtifactForm
	screenReflection
	screenVault
	screenProjectLog
	screenPending
	screenHistory
)

// mainLoopModel is the working part of the UI. It routes between the home
// screen and the flow screens; all domain decisions live in the engine, the
// model only renders state and relays commands.
type mainLoopModel struct {
	ctx    context.Context
	engine *engine.SessionEngine

	screen screen
	status string
	errMsg string
	logout bool

	onboarding   onboardingState
	declare      declareState
	focus        focusState
	artifactForm artifactFormState
	reflection   reflectionState
	vault        vaultState
	project      projectLogState
	pending      pendingState
	history      historyState
}

func newMainLoopModel(ctx context.Context, eng *engine.SessionEngine) mainLoopModel {
	m := mainLoopModel{
		ctx:    ctx,
		engine: eng,
		screen: screenHome,
	}
	if eng.NeedsOnboarding() {
		m.screen = screenOnboarding
		m.onboarding = newOnboardingState()
	}
	return m
}

func (m mainLoopModel) Init() tea.Cmd {
	return nil
}

func (m mainLoopModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok && keyMsg.String() == "ctrl+c" {
		return m, tea.Quit
	}

	switch m.screen {
	case screenOnboarding:
		return m.updateOnboarding(msg)
	case screenDeclare:
		return m.updateDeclare(msg)
	case screenFocus:
		return m.updateFocus(msg)
	case screenArtifactForm:
		return m.updateArtifactForm(msg)
	case screenReflection:
		return m.updateReflection(msg)
	case screenVault:
		return m.updateVault(msg)
	case screenProjectLog:
		return m.updateProjectLog(msg)
	case screenPending:
		return m.updatePending(msg)
	case screenHistory:
		return m.updateHistory(msg)
	}
	return m.updateHome(msg)
}

func (m mainLoopModel) View() string {
	switch m.screen {
	case screenOnboarding:
		return m.viewOnboarding()
	case screenDeclare:
		return m.viewDeclare()
	case screenFocus:
		return m.viewFocus()
	case screenArtifactForm:
		return m.viewArtifactForm()
	case screenReflection:
		return m.viewReflection()
	case screenVault:
		return m.viewVault()
	case screenProjectLog:
		return m.viewProjectLog()
	case screenPending:
		return m.viewPending()
	case screenHistory:
		return m.viewHistory()
	}
	return m.viewHome()
}

// ── Home ─────────────────────────────────────────────────────────────────────

func (m mainLoopModel) updateHome(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch keyMsg.String() {
	case "q":
		return m, tea.Quit
	case "L":
		m.logout = true
		return m, tea.Quit
	case "i":
		// Declare is only reachable when the engine would accept it, but
		// the rejection path is harmless: the engine logs and refuses.
		m.screen = screenDeclare
		m.declare = newDeclareState()
		m.clearNotices()
	case "r":
		if m.engine.ResolveIntentWithoutFocus(m.ctx) {
			m.status = "Intent resolved"
			m.errMsg = ""
		} else {
			m.errMsg = "Nothing to resolve: no declared intent"
		}
	case "f":
		if m.engine.BeginFocus(m.ctx) {
			m.screen = screenFocus
			m.focus = newFocusState()
			m.clearNotices()
		} else {
			m.errMsg = "Cannot start focus: declare an intent first"
		}
	case "enter":
		// Re-enter the running session, or the reflection gate of a
		// closed one.
		session := m.engine.ActiveSession()
		if session == nil {
			return m, nil
		}
		if session.Status == models.SessionActive {
			m.screen = screenFocus
			m.focus = newFocusState()
		} else {
			m.screen = screenReflection
			m.reflection = newReflectionState("")
		}
		m.clearNotices()
	case "v":
		m.screen = screenVault
		m.vault = newVaultState()
		m.clearNotices()
		return m, m.cmdLoadVault()
	case "p":
		m.screen = screenProjectLog
		m.project = newProjectLogState()
		m.clearNotices()
	case "d":
		m.screen = screenPending
		m.pending = newPendingState()
		m.clearNotices()
		return m, m.cmdLoadPending()
	case "h":
		m.screen = screenHistory
		m.history = newHistoryState()
		m.clearNotices()
		return m, m.cmdLoadHistory()
	}

	return m, nil
}

func (m mainLoopModel) viewHome() string {
	var b strings.Builder

	profile := m.engine.Profile()
	aura := m.engine.Aura()

	name := profile.Name
	if name == "" {
		name = "learner"
	}
	b.WriteString("Hello, " + name)
	if profile.Domain != "" {
		b.WriteString("  (" + profile.Domain + ")")
	}
	if !profile.Verified {
		b.WriteString("  " + helpStyle.Render("unverified: aura is frozen"))
	}
	b.WriteString("\n\n")

	b.WriteString("Aura   " + formatScore(aura.Score))
	if aura.Streak > 0 {
		b.WriteString("   streak " + itoa(aura.Streak))
	}
	b.WriteString("\n")
	if len(aura.History) > 0 {
		b.WriteString(helpStyle.Render("       " + sparkline(aura.History)))
		b.WriteString("\n")
	}
	b.WriteString("\n")

	intent := m.engine.ActiveIntent()
	session := m.engine.ActiveSession()
	switch {
	case session != nil && session.Status == models.SessionActive:
		b.WriteString("In focus: " + fitText(session.IntentSnapshot, 46) + "\n")
		b.WriteString(helpStyle.Render("enter: back to session") + "\n")
	case session != nil:
		b.WriteString("Session closed (" + string(session.Outcome) + "), reflection pending\n")
		b.WriteString(helpStyle.Render("enter: reflect") + "\n")
	case intent != nil:
		b.WriteString("Intent: " + fitText(intent.Declaration, 46) + "\n")
		b.WriteString(helpStyle.Render("f: start focus │ r: resolve without focus") + "\n")
	default:
		b.WriteString("No intent declared\n")
		b.WriteString(helpStyle.Render("i: declare intent") + "\n")
	}

	if m.status != "" {
		b.WriteString("\n" + statusStyle.Render("OK: "+m.status))
	}
	if m.errMsg != "" {
		b.WriteString("\n" + errorStyle.Render(m.errMsg))
	}

	return renderPage("PRAXIS", strings.TrimRight(b.String(), "\n"),
		"i: intent │ f: focus │ v: vault │ p: project log │ d: pending │ h: history │ L: logout │ q: quit")
}

func (m *mainLoopModel) clearNotices() {
	m.status = ""
	m.errMsg = ""
}
