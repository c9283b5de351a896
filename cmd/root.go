package cmd

import (
	"fmt"
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/mattn/go-isatty"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/JonathanEhlinger/superflush/internal/config"
	"github.com/JonathanEhlinger/superflush/internal/engine"
	"github.com/JonathanEhlinger/superflush/internal/menu"
	"github.com/JonathanEhlinger/superflush/internal/oplog"
	"github.com/JonathanEhlinger/superflush/internal/platform"
)

var (
	// Global flags
	debug   bool
	cfgFile string

	// Diagnostic logger, configured per-invocation from --debug. Distinct
	// from the append-only failure log the operations write to.
	logger zerolog.Logger

	// Version info populated from main
	appVersion = "dev"
	appCommit  = "none"
	appDate    = "unknown"
)

// SetVersionInfo sets build-time version information.
func SetVersionInfo(version, commit, date string) {
	appVersion = version
	appCommit = commit
	appDate = date
}

var rootCmd = &cobra.Command{
	Use:   "superflush",
	Short: "Advanced account sign-out and DNS cleanup",
	Long: `Superflush - Advanced Account Sign-Out & DNS Cleanup.

Flushes the system DNS cache, deletes browser history, cookies, and
cache for Chrome, Edge, and Firefox, and signs out of desktop services.`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		logger = newLogger(debug)
	},
	Run: func(cmd *cobra.Command, args []string) {
		// When invoked without subcommand on a terminal, show the
		// interactive menu; otherwise print help.
		if !isatty.IsTerminal(os.Stdout.Fd()) {
			_ = cmd.Help()
			return
		}
		runInteractiveMenu()
	},
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "Show detailed operation logs")
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "Path to overrides file (default: ./superflush.yaml)")

	// Register all subcommands
	rootCmd.AddCommand(flushCmd)
	rootCmd.AddCommand(browsersCmd)
	rootCmd.AddCommand(signoutCmd)
	rootCmd.AddCommand(allCmd)
	rootCmd.AddCommand(statusCmd)
	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(completionCmd)
}

// newLogger builds the console diagnostics logger. Disabled unless
// --debug is set; the failure log is unaffected either way.
func newLogger(debug bool) zerolog.Logger {
	level := zerolog.Disabled
	if debug {
		level = zerolog.DebugLevel
	}
	out := zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339}
	return zerolog.New(out).Level(level).With().Timestamp().Logger()
}

// newEngine loads the configuration for the detected platform and wires
// the engine to the append-only failure log.
func newEngine() (*engine.Engine, error) {
	kind := platform.Detect()
	cfg, err := config.Load(kind, cfgFile)
	if err != nil {
		return nil, err
	}

	logger.Debug().
		Str("platform", kind.String()).
		Str("log_file", cfg.LogFile).
		Int("browsers", len(cfg.Browsers)).
		Int("services", len(cfg.Services)).
		Msg("engine configured")

	return engine.New(cfg, oplog.NewFileLogger(cfg.LogFile)), nil
}

// fatal prints an error and exits.
func fatal(err error) {
	fmt.Fprintln(os.Stderr, "Error:", err)
	os.Exit(1)
}

// runInteractiveMenu launches the full-screen interactive main menu.
func runInteractiveMenu() {
	eng, err := newEngine()
	if err != nil {
		fatal(err)
	}
	if _, err := tea.NewProgram(menu.New(eng)).Run(); err != nil {
		fatal(err)
	}
}
