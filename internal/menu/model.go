// Package menu is the interactive terminal front-end: a bubbletea menu
// over the four engine operations. It renders structured results and
// owns no cleanup logic.
package menu

import (
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/JonathanEhlinger/superflush/internal/engine"
	"github.com/JonathanEhlinger/superflush/internal/ui"
)

// ─── Action enumeration ──────────────────────────────────────────────────────

// action identifies one menu entry.
type action int

const (
	actionFlush action = iota
	actionBrowsers
	actionSignOut
	actionAll
)

// actionLabels is the display label for each action.
var actionLabels = []string{
	"Flush DNS",
	"Clear Browser Data",
	"Sign Out Services",
	"Run All",
}

// actionHints describe each action in the footer.
var actionHints = []string{
	"Flushes the system DNS cache (requires admin on Windows)",
	"Deletes history, cookies, and cache for Chrome, Edge, and Firefox",
	"Signs out of supported desktop services (e.g. GitHub Desktop)",
	"Performs all cleanup actions above",
}

// ─── Messages ────────────────────────────────────────────────────────────────

// doneMsg carries the rendered outcome of a finished operation.
type doneMsg struct {
	lines []string
	ok    bool
}

// ─── Model ───────────────────────────────────────────────────────────────────

// Model is the bubbletea model for the main menu.
type Model struct {
	eng      *engine.Engine
	cursor   action
	spin     spinner.Model
	running  bool
	result   []string
	resultOK bool
	hasRun   bool
	width    int
	quitting bool
}

// New creates the menu over the given engine.
func New(eng *engine.Engine) Model {
	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = lipgloss.NewStyle().Foreground(ui.ColorPrimary)
	return Model{eng: eng, spin: sp, width: 80}
}

// runAction executes one operation off the Update loop. Operations block
// without timeouts, so the spinner keeps the terminal responsive while a
// child process runs.
func runAction(eng *engine.Engine, a action) tea.Cmd {
	return func() tea.Msg {
		switch a {
		case actionFlush:
			res := eng.FlushDNS()
			return doneMsg{lines: []string{res.Message}, ok: res.Succeeded}
		case actionBrowsers:
			errs := eng.ClearBrowserData()
			if len(errs) == 0 {
				return doneMsg{lines: []string{"Browser data cleared successfully."}, ok: true}
			}
			return doneMsg{lines: errs}
		case actionSignOut:
			errs := eng.SignOutServices()
			if len(errs) == 0 {
				return doneMsg{lines: []string{"Signed out of services successfully."}, ok: true}
			}
			return doneMsg{lines: errs}
		default:
			rep := eng.RunAll()
			return doneMsg{lines: rep.Lines(), ok: rep.Clean()}
		}
	}
}

// ─── tea.Model interface ─────────────────────────────────────────────────────

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {

	case tea.WindowSizeMsg:
		m.width = msg.Width
		return m, nil

	case tea.KeyMsg:
		if m.running {
			// Ignore everything but quit while an operation runs.
			if msg.String() == "ctrl+c" {
				m.quitting = true
				return m, tea.Quit
			}
			return m, nil
		}
		switch msg.String() {
		case "q", "esc", "ctrl+c":
			m.quitting = true
			return m, tea.Quit
		case "up", "k":
			if m.cursor > 0 {
				m.cursor--
			}
		case "down", "j":
			if int(m.cursor) < len(actionLabels)-1 {
				m.cursor++
			}
		case "enter", " ":
			m.running = true
			m.result = nil
			return m, tea.Batch(m.spin.Tick, runAction(m.eng, m.cursor))
		}
		return m, nil

	case spinner.TickMsg:
		if !m.running {
			return m, nil
		}
		var cmd tea.Cmd
		m.spin, cmd = m.spin.Update(msg)
		return m, cmd

	case doneMsg:
		m.running = false
		m.hasRun = true
		m.result = msg.lines
		m.resultOK = msg.ok
		return m, nil
	}

	return m, nil
}

func (m Model) View() string {
	if m.quitting {
		return ""
	}
	return m.renderView()
}
