package cmd

import (
	"fmt"

	"github.com/clideps/clideps/src/internal/tui"
	"github.com/spf13/cobra"
)

// Version can be set at build time using ldflags
var Version = "dev"

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Show the clideps version",
	Run: func(cmd *cobra.Command, args []string) {
		content := fmt.Sprintf("clideps %s", tui.RenderVersion(Version))
		fmt.Println(tui.RenderInfoBox(content))
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
