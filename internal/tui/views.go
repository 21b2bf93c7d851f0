package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/chequeflow/chequeflow/internal/cli"
	"github.com/chequeflow/chequeflow/internal/layout"
)

var (
	titleBarStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(cli.PrimaryColor)

	infoBarStyle = lipgloss.NewStyle().
			Foreground(cli.SubtleColor)

	statusStyle = lipgloss.NewStyle().
			Foreground(cli.InfoColor)

	dragStyle = lipgloss.NewStyle().
			Foreground(cli.WarningColor).
			Bold(true)
)

// View renders the UI: a two-line header, the cheque canvas, and a
// status/help footer.
func (m Model) View() string {
	if m.quitting {
		return ""
	}
	if m.width == 0 {
		return "measuring terminal..."
	}

	cfg := m.engine.Config()

	var b strings.Builder
	b.WriteString(titleBarStyle.Render("chequeflow — " + layout.PresetLabel(cfg.PresetID)))
	b.WriteString("\n")
	b.WriteString(infoBarStyle.Render(fmt.Sprintf(
		"lang %s · font %s %dpt · field %s · offset %.1f,%.1f mm",
		cfg.Language, cfg.Font.Family, cfg.Font.Size,
		m.selectedField(), cfg.Offset.X, cfg.Offset.Y,
	)))
	b.WriteString("\n")

	b.WriteString(m.renderer.Render(m.cheque()))
	b.WriteString("\n")

	if field, dragging := m.engine.Dragging(); dragging {
		b.WriteString(dragStyle.Render("● dragging " + string(field)))
	} else if warn := m.warnings.Last(); warn != "" {
		b.WriteString(cli.WarningStyle.Render(cli.WarningIcon + " " + warn))
	} else if m.status != "" {
		b.WriteString(statusStyle.Render(m.status))
	}
	b.WriteString("\n")
	b.WriteString(m.help.View(m.keymap))

	return b.String()
}
