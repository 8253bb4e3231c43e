package cmd

import (
	"github.com/clideps/clideps/src/internal/path"
	"github.com/clideps/clideps/src/internal/platform"
	"github.com/clideps/clideps/src/internal/report"
	"github.com/spf13/cobra"
)

var platformCmd = &cobra.Command{
	Use:   "platform",
	Short: "Show the detected platform",
	Run: func(cmd *cobra.Command, args []string) {
		report.Platform(cmd.OutOrStdout(), platform.Current(), platform.Describe(), path.DetectShell())
	},
}

func init() {
	rootCmd.AddCommand(platformCmd)
}
