package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/JonathanEhlinger/superflush/internal/core"
	"github.com/JonathanEhlinger/superflush/internal/engine"
	"github.com/JonathanEhlinger/superflush/internal/ui"
)

var browsersDryRun bool

var browsersCmd = &cobra.Command{
	Use:   "browsers",
	Short: "Clear browser data",
	Long:  "Deletes history, cookies, saved logins, and cache for Chrome, Edge, and Firefox profiles found on this machine.",
	Run: func(cmd *cobra.Command, args []string) {
		eng, err := newEngine()
		if err != nil {
			fatal(err)
		}

		if browsersDryRun {
			previewBrowsers(eng)
			return
		}

		errs := eng.ClearBrowserData()
		fmt.Println(ui.RenderErrors("Browser data cleared successfully.", errs))
		if len(errs) > 0 {
			os.Exit(1)
		}
	},
}

func init() {
	browsersCmd.Flags().BoolVar(&browsersDryRun, "dry-run", false, "Preview what would be deleted without deleting")
}

// previewBrowsers prints the deletion plan with per-item sizes.
func previewBrowsers(eng *engine.Engine) {
	dels := eng.PreviewBrowserData()
	if len(dels) == 0 {
		fmt.Println(ui.Muted("Nothing to delete: no known browser artifacts found."))
		return
	}

	var total int64
	for _, d := range dels {
		fmt.Printf("  %-8s %-10s %s\n", d.Browser, core.FormatSize(d.Size), d.Path)
		total += d.Size
	}
	fmt.Println(ui.Muted(fmt.Sprintf("Would free %s across %d item(s).", core.FormatSize(total), len(dels))))
}
