// Package ui holds the shared lipgloss palette and result renderers used
// by the CLI commands and the interactive menu.
package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/JonathanEhlinger/superflush/internal/core"
)

// ─── Palette ─────────────────────────────────────────────────────────────────

var (
	ColorPrimary = lipgloss.AdaptiveColor{Light: "#16a34a", Dark: "#4ade80"}
	ColorMuted   = lipgloss.AdaptiveColor{Light: "#6b7280", Dark: "#9ca3af"}
	ColorWarn    = lipgloss.AdaptiveColor{Light: "#ca8a04", Dark: "#facc15"}
	ColorError   = lipgloss.AdaptiveColor{Light: "#dc2626", Dark: "#f87171"}
)

var (
	successStyle = lipgloss.NewStyle().Foreground(ColorPrimary).Bold(true)
	warnStyle    = lipgloss.NewStyle().Foreground(ColorWarn)
	errorStyle   = lipgloss.NewStyle().Foreground(ColorError).Bold(true)
	mutedStyle   = lipgloss.NewStyle().Foreground(ColorMuted)
)

// ─── Renderers ───────────────────────────────────────────────────────────────

// RenderResult renders a flush-style result: one success or error line.
func RenderResult(res core.OperationResult) string {
	if res.Succeeded {
		return successStyle.Render("✓ " + res.Message)
	}
	return errorStyle.Render("✗ " + res.Message)
}

// RenderErrors renders the outcome of a per-item operation. No errors is
// success; partial failure is a warning listing each individual item,
// never a blanket failure.
func RenderErrors(successMsg string, errs []string) string {
	if len(errs) == 0 {
		return successStyle.Render("✓ " + successMsg)
	}

	var s strings.Builder
	s.WriteString(warnStyle.Render(fmt.Sprintf("! completed with %d issue(s):", len(errs))))
	for _, e := range errs {
		s.WriteString("\n")
		s.WriteString(warnStyle.Render("  - " + e))
	}
	return s.String()
}

// Muted renders secondary text.
func Muted(s string) string {
	return mutedStyle.Render(s)
}
