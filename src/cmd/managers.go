package cmd

import (
	"context"
	"fmt"
	"io"

	"github.com/clideps/clideps/src/internal/discovery"
	"github.com/clideps/clideps/src/internal/platform"
	"github.com/clideps/clideps/src/internal/report"
	"github.com/clideps/clideps/src/internal/ui"
	"github.com/spf13/cobra"
)

var managersCmd = &cobra.Command{
	Use:   "managers",
	Short: "List the package managers installed on this system",
	RunE: func(cmd *cobra.Command, args []string) error {
		env, err := loadEnvironment()
		if err != nil {
			return err
		}
		d := discovery.New(env.catalog,
			discovery.WithRunner(env.runner),
			discovery.WithParallelism(env.settings.Parallelism),
		)
		runManagers(cmd.Context(), cmd.OutOrStdout(), d)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(managersCmd)
}

func runManagers(ctx context.Context, w io.Writer, d *discovery.Discoverer) {
	spinner := ui.NewSpinner(fmt.Sprintf("Detecting package managers on %s", platform.Current()))
	spinner.Start()
	results := d.Discover(ctx)

	if len(results) == 0 {
		spinner.Warning("No supported package managers found")
		return
	}
	spinner.Success(fmt.Sprintf("Found %d package managers", len(results)))
	report.Managers(w, results)
}
