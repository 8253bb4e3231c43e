// Package cmd implements the CLI commands for clideps
package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/clideps/clideps/src/internal/catalog"
	"github.com/clideps/clideps/src/internal/checker"
	"github.com/clideps/clideps/src/internal/config"
	"github.com/clideps/clideps/src/internal/resolve"
	"github.com/clideps/clideps/src/internal/runner"
	"github.com/clideps/clideps/src/internal/tui"
	"github.com/clideps/clideps/src/internal/ui"
	"github.com/spf13/cobra"
)

var (
	verbose      bool
	configFile   string
	catalogFiles []string
	probeTimeout time.Duration
	jobs         int
	refresh      bool
)

// errMissingMandatory makes the process exit non-zero after the report has
// already explained what is missing.
var errMissingMandatory = errors.New("mandatory packages are missing")

var rootCmd = &cobra.Command{
	Use:           "clideps",
	Short:         "Check for the command-line tools and libraries a project needs",
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		if verbose {
			ui.SetVerbose(true)
		}
	},
}

func Execute() {
	// Check for --version or -v flag before Cobra parses
	for _, arg := range os.Args[1:] {
		if arg == "--version" || arg == "-v" {
			versionCmd.Run(versionCmd, []string{})
			return
		}
	}

	ui.CheckVerboseEnv()
	tui.Init()

	if err := rootCmd.ExecuteContext(context.Background()); err != nil {
		if !errors.Is(err, errMissingMandatory) {
			ui.Error("%v", err)
			if hint := errorHint(err); hint != "" {
				ui.Info("%s", hint)
			}
		}
		os.Exit(1)
	}
}

// errorHint suggests a next step for errors the user can fix.
func errorHint(err error) string {
	switch {
	case catalog.IsUnknownPackage(err):
		return "Run 'clideps info' to list the known packages, or add the package to a clideps.yml catalog"
	case resolve.IsDuplicateRequest(err):
		return "Request each package at one severity only"
	case catalog.IsInvalidCatalog(err):
		return "Fix the catalog files listed by 'clideps --verbose' and try again"
	case checker.IsAlreadyRegistered(err):
		return "A package has two checkers registered; this is a bug in clideps"
	}
	return ""
}

func init() {
	rootCmd.CompletionOptions.HiddenDefaultCmd = true

	flags := rootCmd.PersistentFlags()
	flags.BoolVar(&verbose, "verbose", false, "Enable verbose output for debugging")
	flags.StringVar(&configFile, "config", "", "Settings file (default ~/.clideps/config.toml)")
	flags.StringArrayVar(&catalogFiles, "catalog", nil, "Extra catalog file or http(s) URL to apply (repeatable)")
	flags.DurationVar(&probeTimeout, "timeout", 0, "Timeout for each probe (default from settings, 10s)")
	flags.IntVarP(&jobs, "jobs", "j", 0, "Number of probes to run at once (default from settings, 4)")
	flags.BoolVar(&refresh, "refresh", false, "Fetch remote catalogs even if a cached copy is fresh")

	rootCmd.SetUsageFunc(customUsage)
	rootCmd.SetHelpFunc(func(cmd *cobra.Command, args []string) {
		_ = customUsage(cmd)
	})
}

// environment is what every command needs: settings and the catalog they
// select, and a runner bounded by the probe timeout.
type environment struct {
	paths    *config.Paths
	settings *config.Settings
	catalog  *catalog.Catalog
	runner   runner.Runner
}

// loadEnvironment reads settings and builds the catalog. Command-line
// flags override settings.
func loadEnvironment() (*environment, error) {
	paths := config.DefaultPaths()

	file := configFile
	if file == "" {
		file = paths.Config
	}
	settings, err := config.LoadSettings(file)
	if err != nil {
		return nil, err
	}
	if probeTimeout > 0 {
		settings.ProbeTimeout.Duration = probeTimeout
	}
	if jobs > 0 {
		settings.Parallelism = jobs
	}

	overlays := config.CatalogOverlays(paths, settings, catalogFiles...)
	ui.Debug("Catalog overlays: %v", overlays)
	ttl := settings.CacheTTL.Duration
	if refresh {
		ttl = 0
	}
	cat, err := catalog.LoadCached(paths.Cache, ttl, overlays...)
	if err != nil {
		return nil, fmt.Errorf("failed to load catalog: %w", err)
	}

	return &environment{
		paths:    paths,
		settings: settings,
		catalog:  cat,
		runner:   runner.NewSystemRunner(settings.ProbeTimeout.Duration),
	}, nil
}

func customUsage(cmd *cobra.Command) error {
	const tableWidth = 95

	headerTable := tui.NewTable("")
	headerTable.SetTitle(cmd.Short)
	headerTable.HideHeader()
	headerTable.SetMinWidth(tableWidth)
	if cmd.Long != "" {
		headerTable.AddRow(cmd.Long)
	} else {
		headerTable.AddRow("clideps verifies that the tools, libraries and package managers a program relies on")
		headerTable.AddRow("are installed, and tells you how to install whatever is missing. It never installs anything.")
	}
	fmt.Println(headerTable.Render())
	fmt.Println()

	if cmd.HasAvailableSubCommands() {
		table := tui.NewTable("Command", "Description")
		table.SetTitle("Available Commands")
		table.SetMinWidth(tableWidth)
		for _, c := range cmd.Commands() {
			if c.Hidden || c.Name() == "completion" || c.Name() == "help" {
				continue
			}
			table.AddRow(c.Name(), c.Short)
		}
		fmt.Println(table.Render())
		fmt.Println()
	}

	fmt.Println(tui.RenderMuted("Usage: " + cmd.UseLine()))
	if cmd.HasAvailableFlags() {
		fmt.Println()
		fmt.Println(cmd.Flags().FlagUsages())
	}
	return nil
}
