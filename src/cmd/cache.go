package cmd

import (
	"strconv"

	"github.com/clideps/clideps/src/internal/catalog"
	"github.com/clideps/clideps/src/internal/config"
	"github.com/clideps/clideps/src/internal/ui"
	"github.com/spf13/cobra"
)

var cacheCmd = &cobra.Command{
	Use:   "cache",
	Short: "Manage cached remote catalogs",
}

var cacheClearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Remove cached remote catalogs",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runCacheClear(config.DefaultPaths().Cache)
	},
}

func init() {
	cacheCmd.AddCommand(cacheClearCmd)
	rootCmd.AddCommand(cacheCmd)
}

func runCacheClear(dir string) error {
	ui.Progress("Removing cached catalogs from %s", dir)
	removed, err := catalog.ClearCache(dir)
	if err != nil {
		return err
	}
	if removed == 0 {
		ui.Info("No cached catalogs to remove")
		return nil
	}
	ui.Success("Removed %s cached catalogs", ui.Highlight(strconv.Itoa(removed)))
	return nil
}
