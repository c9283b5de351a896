package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/JonathanEhlinger/superflush/internal/platform"
	"github.com/JonathanEhlinger/superflush/internal/ui"
)

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show platform and privilege status",
	Long:  "Prints the detected OS, host details, and whether the process is elevated.",
	Run: func(cmd *cobra.Command, args []string) {
		kind := platform.Detect()
		fmt.Printf("  Platform:  %s\n", kind)

		if info, err := platform.Describe(); err == nil {
			fmt.Printf("  Host:      %s\n", info.Hostname)
			fmt.Printf("  OS:        %s\n", info.OS)
			fmt.Printf("  Uptime:    %s\n", info.Uptime.Round(time.Second))
		}

		if platform.IsElevated() {
			fmt.Println("  Elevated:  yes")
		} else {
			fmt.Println("  Elevated:  no")
			if kind == platform.Windows {
				fmt.Println(ui.Muted("  Note: flushing DNS on Windows requires an elevated prompt."))
			}
		}
	},
}
