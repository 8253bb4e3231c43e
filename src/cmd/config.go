package cmd

import (
	"fmt"
	"os"

	"github.com/clideps/clideps/src/internal/config"
	"github.com/clideps/clideps/src/internal/ui"
	"github.com/spf13/cobra"
)

var configInitForce bool

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage clideps settings",
}

var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Write a settings file with the default values",
	RunE: func(cmd *cobra.Command, args []string) error {
		paths := config.DefaultPaths()
		file := configFile
		if file == "" {
			if err := paths.EnsureRoot(); err != nil {
				return fmt.Errorf("failed to create %s: %w", paths.Root, err)
			}
			file = paths.Config
		}
		return runConfigInit(file, configInitForce)
	},
}

func init() {
	configInitCmd.Flags().BoolVarP(&configInitForce, "force", "f", false, "Overwrite an existing settings file")
	configCmd.AddCommand(configInitCmd)
	rootCmd.AddCommand(configCmd)
}

func runConfigInit(file string, force bool) error {
	if _, err := os.Stat(file); err == nil && !force {
		return fmt.Errorf("%s already exists (use --force to overwrite)", file)
	}
	if err := config.DefaultSettings().Save(file); err != nil {
		return fmt.Errorf("failed to write %s: %w", file, err)
	}
	ui.Success("Wrote default settings to %s", ui.Highlight(file))
	return nil
}
