package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/JonathanEhlinger/superflush/internal/ui"
)

var signoutCmd = &cobra.Command{
	Use:   "signout",
	Short: "Sign out of desktop services",
	Long:  "Deletes cached service credential files and, on Windows, removes matching generic entries from the Credential Manager.",
	Run: func(cmd *cobra.Command, args []string) {
		eng, err := newEngine()
		if err != nil {
			fatal(err)
		}

		errs := eng.SignOutServices()
		fmt.Println(ui.RenderErrors("Signed out of services successfully.", errs))
		if len(errs) > 0 {
			os.Exit(1)
		}
	},
}
