package cmd

import (
	"fmt"
	"io"
	"slices"

	"github.com/clideps/clideps/src/internal/catalog"
	"github.com/clideps/clideps/src/internal/report"
	"github.com/spf13/cobra"
)

var infoYAML bool

var infoCmd = &cobra.Command{
	Use:   "info [package...]",
	Short: "Show package details and install commands",
	Long: `Show the commands a package provides and how to install it with each
package manager. With no arguments, every package in the catalog is shown.`,
	Example: `  clideps info ripgrep
  clideps info ffmpeg imagemagick --yaml`,
	RunE: func(cmd *cobra.Command, args []string) error {
		env, err := loadEnvironment()
		if err != nil {
			return err
		}
		return runInfo(cmd.OutOrStdout(), env.catalog, args, infoYAML)
	},
}

func init() {
	infoCmd.Flags().BoolVar(&infoYAML, "yaml", false, "Print the catalog entries as YAML")
	rootCmd.AddCommand(infoCmd)
}

func runInfo(w io.Writer, cat *catalog.Catalog, names []string, asYAML bool) error {
	if len(names) == 0 {
		names = cat.Names()
		slices.Sort(names)
	}

	pkgs := make([]catalog.Package, 0, len(names))
	for _, name := range names {
		pkg, err := cat.Package(name)
		if err != nil {
			return err
		}
		pkgs = append(pkgs, pkg)
	}

	if asYAML {
		out, err := catalog.PackagesToYAML(pkgs)
		if err != nil {
			return err
		}
		_, err = fmt.Fprint(w, out)
		return err
	}

	for _, pkg := range pkgs {
		report.PackageInfo(w, cat, pkg)
		fmt.Fprintln(w)
	}
	return nil
}
