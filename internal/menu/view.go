package menu

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/JonathanEhlinger/superflush/internal/ui"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ui.ColorPrimary).
			Padding(0, 1)

	selectedStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ui.ColorPrimary)

	itemStyle = lipgloss.NewStyle().
			Foreground(ui.ColorMuted)

	okStyle = lipgloss.NewStyle().
		Foreground(ui.ColorPrimary)

	warnStyle = lipgloss.NewStyle().
			Foreground(ui.ColorWarn)
)

func (m Model) renderView() string {
	var s strings.Builder

	s.WriteString(titleStyle.Render("Superflush — Privacy Cleanup"))
	s.WriteString("\n\n")

	for i, label := range actionLabels {
		if action(i) == m.cursor {
			s.WriteString(selectedStyle.Render("  ▸ " + label))
		} else {
			s.WriteString(itemStyle.Render("    " + label))
		}
		s.WriteString("\n")
	}
	s.WriteString("\n")

	switch {
	case m.running:
		s.WriteString("  " + m.spin.View() + itemStyle.Render("Working…"))
		s.WriteString("\n")
	case m.hasRun:
		style := okStyle
		if !m.resultOK {
			style = warnStyle
		}
		for _, line := range m.result {
			s.WriteString(style.Render("  " + line))
			s.WriteString("\n")
		}
	}

	s.WriteString("\n")
	s.WriteString(ui.Muted("  " + actionHints[m.cursor]))
	s.WriteString("\n")
	s.WriteString(ui.Muted("  ↑/↓ select · enter run · q quit"))
	s.WriteString("\n")

	return s.String()
}
