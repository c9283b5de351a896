package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/JonathanEhlinger/superflush/internal/ui"
)

var flushCmd = &cobra.Command{
	Use:   "flush",
	Short: "Flush the DNS resolver cache",
	Long:  "Dispatches the OS-appropriate DNS cache flush command. Requires administrator privileges on Windows.",
	Run: func(cmd *cobra.Command, args []string) {
		eng, err := newEngine()
		if err != nil {
			fatal(err)
		}

		res := eng.FlushDNS()
		fmt.Println(ui.RenderResult(res))
		if !res.Succeeded {
			os.Exit(1)
		}
	},
}
