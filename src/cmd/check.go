package cmd

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/clideps/clideps/src/internal/checker"
	"github.com/clideps/clideps/src/internal/discovery"
	"github.com/clideps/clideps/src/internal/platform"
	"github.com/clideps/clideps/src/internal/report"
	"github.com/clideps/clideps/src/internal/resolve"
	"github.com/clideps/clideps/src/internal/tui"
	"github.com/clideps/clideps/src/internal/ui"
	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"
)

var (
	checkRecommended []string
	checkOptional    []string
	checkNoHints     bool
)

var checkCmd = &cobra.Command{
	Use:   "check [package...]",
	Short: "Check which packages are installed",
	Long: `Check whether packages are installed. Named packages are mandatory;
use --recommended and --optional for softer dependencies. With no packages at
all, every package in the catalog is checked as optional.

Exits with status 1 when a mandatory package is missing.`,
	Example: `  clideps check ripgrep jq
  clideps check ffmpeg --recommended imagemagick --optional libmagic
  clideps check`,
	RunE: func(cmd *cobra.Command, args []string) error {
		env, err := loadEnvironment()
		if err != nil {
			return err
		}
		req := resolve.Request{
			Mandatory:   args,
			Recommended: checkRecommended,
			Optional:    checkOptional,
		}
		return runCheck(cmd.Context(), cmd.OutOrStdout(), env, req, !checkNoHints)
	},
}

func init() {
	checkCmd.Flags().StringSliceVarP(&checkRecommended, "recommended", "r", nil, "Recommended packages (comma-separated)")
	checkCmd.Flags().StringSliceVarP(&checkOptional, "optional", "o", nil, "Optional packages (comma-separated)")
	checkCmd.Flags().BoolVar(&checkNoHints, "no-hints", false, "Don't suggest install commands for missing packages")
	rootCmd.AddCommand(checkCmd)
}

func runCheck(ctx context.Context, w io.Writer, env *environment, req resolve.Request, hints bool) error {
	reg := checker.NewRegistry()
	if err := checker.RegisterBuiltins(reg, env.runner); err != nil {
		return err
	}

	opts := []resolve.Option{
		resolve.WithRunner(env.runner),
		resolve.WithParallelism(env.settings.Parallelism),
		resolve.WithProbeTimeout(env.settings.ProbeTimeout.Duration),
	}

	// Validate up front so the progress bar knows its size.
	deps, err := resolve.New(env.catalog, reg, opts...).Dependencies(req)
	if err != nil {
		return err
	}
	if ui.IsTerminal() && len(deps) > 1 {
		bar := progressbar.NewOptions(len(deps),
			progressbar.OptionSetWriter(os.Stderr),
			progressbar.OptionSetDescription("Checking packages"),
			progressbar.OptionClearOnFinish(),
		)
		opts = append(opts, resolve.WithProgress(func(done, total int) {
			_ = bar.Set(done)
		}))
	}

	res, err := resolve.New(env.catalog, reg, opts...).Check(ctx, req)
	if err != nil {
		return err
	}

	report.Check(w, res)
	ui.Info("%s", report.Summary(res))

	if hints && len(res.Missing()) > 0 {
		plat := platform.Current()
		d := discovery.New(env.catalog,
			discovery.WithRunner(env.runner),
			discovery.WithPlatform(plat),
			discovery.WithParallelism(env.settings.Parallelism),
		)
		var installed []discovery.Result
		_ = ui.WithSpinner("Detecting package managers", func() error {
			installed = d.Discover(ctx)
			return nil
		})
		report.InstallHints(w, env.catalog, plat, res.Missing(), installed)
	}

	if res.HasMissingRequired() {
		names := make([]string, len(res.MissingRequired))
		for i, p := range res.MissingRequired {
			names[i] = p.Name
		}
		fmt.Fprintln(w, tui.RenderWarningBox("Missing mandatory packages: "+strings.Join(names, ", ")))
		return errMissingMandatory
	}
	return nil
}
