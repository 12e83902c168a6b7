package tui

import (
	"fmt"
	"strings"

	"github.com/dchas/praxis/models"
)

const uiDivider = "──────────────────────────────────────────────────────"

func renderPage(title, data, hotKeys string) string {
	var b strings.Builder

	b.WriteString(titleStyle.Render(title))
	b.WriteString("\n")
	b.WriteString("  ")
	b.WriteString(uiDivider)
	b.WriteString("\n\n")

	if strings.TrimSpace(data) != "" {
		for _, line := range strings.Split(data, "\n") {
			b.WriteString("  ")
			b.WriteString(line)
			b.WriteString("\n")
		}
	} else {
		b.WriteString("  -\n")
	}

	b.WriteString("\n")
	b.WriteString("  ")
	b.WriteString(uiDivider)
	b.WriteString("\n")

	if strings.TrimSpace(hotKeys) != "" {
		b.WriteString("  ")
		b.WriteString(helpStyle.Render(hotKeys))
		b.WriteString("\n")
	}
	b.WriteString("  ")
	b.WriteString(helpStyle.Render("ctrl+c: quit"))

	return b.String()
}

func valueOrDash(v string) string {
	if v == "" {
		return "-"
	}
	return v
}

func fitText(v string, max int) string {
	if max <= 0 || len(v) <= max {
		return v
	}
	if max <= 3 {
		return v[:max]
	}
	return v[:max-3] + "..."
}

func checkbox(on bool) string {
	if on {
		return "[x]"
	}
	return "[ ]"
}

func formatScore(score float64) string {
	return fmt.Sprintf("%.1f", score)
}

func itoa(v int) string {
	return fmt.Sprintf("%d", v)
}

// sparkline renders the score history (most-recent-first) as a left-to-right
// oldest-to-newest row of block characters.
func sparkline(history []models.AuraHistoryEntry) string {
	blocks := []rune("▁▂▃▄▅▆▇█")

	var b strings.Builder
	for i := len(history) - 1; i >= 0; i-- {
		idx := int(history[i].Score / models.AuraScoreMax * float64(len(blocks)-1))
		if idx < 0 {
			idx = 0
		}
		if idx >= len(blocks) {
			idx = len(blocks) - 1
		}
		b.WriteRune(blocks[idx])
	}
	return b.String()
}
