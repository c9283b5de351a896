package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/JonathanEhlinger/superflush/internal/ui"
)

var allCmd = &cobra.Command{
	Use:   "all",
	Short: "Run every cleanup action",
	Long:  "Flushes DNS, clears browser data, and signs out of desktop services in sequence, then prints a combined report.",
	Run: func(cmd *cobra.Command, args []string) {
		eng, err := newEngine()
		if err != nil {
			fatal(err)
		}

		rep := eng.RunAll()
		fmt.Println(ui.RenderResult(rep.Flush))
		fmt.Println(ui.RenderErrors("Browser data cleared successfully.", rep.BrowserErrors))
		fmt.Println(ui.RenderErrors("Signed out of services successfully.", rep.ServiceErrors))
		if !rep.Clean() {
			os.Exit(1)
		}
	},
}
