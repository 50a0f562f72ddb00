package dashboard

import (
	"fmt"
	"strings"

	"github.com/statuskit/sysmon/internal/ui"
)

// View renders the watch screen.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder

	header := headerStyle.Render("sysmon") + " " +
		mutedStyle.Render(fmt.Sprintf("every %s", m.interval))
	b.WriteString(header)
	b.WriteString("\n\n")

	switch {
	case !m.sampled:
		b.WriteString(fmt.Sprintf("%s %s\n", m.spin.View(), mutedStyle.Render(ui.SymbolPending+" sampling…")))
	case m.err != nil:
		b.WriteString(errorStyle.Render(ui.SymbolFail+" "+m.err.Error()) + "\n")
	default:
		b.WriteString(lineStyle.Render(ui.SymbolSample+" "+m.line) + "\n")
	}

	if len(m.history) > 0 {
		b.WriteString("\n")
		// Newest history first, directly under the live line.
		for i := len(m.history) - 1; i >= 0; i-- {
			b.WriteString(mutedStyle.Render("  "+m.history[i]) + "\n")
		}
	}

	b.WriteString("\n")
	b.WriteString(helpStyle.Render("q quit • r refresh"))
	b.WriteString("\n")

	return b.String()
}
