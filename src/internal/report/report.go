// Package report renders check and discovery results for the terminal.
package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/clideps/clideps/src/internal/catalog"
	"github.com/clideps/clideps/src/internal/discovery"
	"github.com/clideps/clideps/src/internal/platform"
	"github.com/clideps/clideps/src/internal/resolve"
	"github.com/clideps/clideps/src/internal/tui"
)

// Check writes one line per package: found packages first, then missing
// ones from most to least severe.
func Check(w io.Writer, res *resolve.Result) {
	fmt.Fprintln(w, tui.RenderTitle("Package check results"))

	for _, pkg := range res.Found {
		fmt.Fprintf(w, "%s %s: %s\n", tui.GetCheckMark(), tui.RenderPackage(pkg.Name), evidence(res, pkg.Name))
	}
	missing := []struct {
		pkgs  []catalog.Package
		mark  string
		label resolve.Severity
	}{
		{res.MissingRequired, tui.GetCrossMark(), resolve.Mandatory},
		{res.MissingRecommended, tui.GetWarningMark(), resolve.Recommended},
		{res.MissingOptional, tui.RenderMuted("-"), resolve.Optional},
	}
	for _, group := range missing {
		for _, pkg := range group.pkgs {
			fmt.Fprintf(w, "%s %s %s: %s\n", group.mark, tui.RenderPackage(pkg.Name),
				tui.RenderMuted("("+string(group.label)+")"), evidence(res, pkg.Name))
		}
	}
}

func evidence(res *resolve.Result, name string) string {
	info, _ := res.Evidence(name)
	return info
}

// Summary returns a one-line count of the result.
func Summary(res *resolve.Result) string {
	return fmt.Sprintf("%d found, %d missing (%d mandatory, %d recommended, %d optional)",
		len(res.Found), len(res.Missing()),
		len(res.MissingRequired), len(res.MissingRecommended), len(res.MissingOptional))
}

// InstallHints suggests how to install each missing package. The suggested
// command uses the best installed manager; the other options for the
// platform are listed after it.
func InstallHints(w io.Writer, cat *catalog.Catalog, plat platform.Platform, missing []catalog.Package, installed []discovery.Result) {
	if len(missing) == 0 {
		return
	}
	fmt.Fprintln(w, tui.RenderTitle("How to install"))

	for _, pkg := range missing {
		fmt.Fprintf(w, "%s %s\n", tui.Arrow, tui.RenderPackage(pkg.Name))
		best, ok := discovery.Best(installed, pkg)
		if ok {
			fmt.Fprintf(w, "  %s %s\n", tui.RenderMuted("run:"), tui.RenderCommand(best.InstallCommand(pkg)))
		}
		for _, opt := range pkg.InstallCommands(cat, plat) {
			if ok && opt.Manager.Name == best.Manager.Name {
				continue
			}
			fmt.Fprintf(w, "  %s %s: %s\n", tui.Bullet, tui.RenderManager(opt.Manager.Name), opt.Command)
		}
		if !ok && len(pkg.InstallCommands(cat, plat)) == 0 {
			fmt.Fprintf(w, "  %s\n", tui.RenderMuted("No known install command for "+plat.String()))
		}
		if pkg.Info.Comment != "" {
			fmt.Fprintf(w, "  %s\n", tui.RenderMuted(pkg.Info.Comment))
		}
	}
}

// PackageInfo describes a package and every way to install it.
func PackageInfo(w io.Writer, cat *catalog.Catalog, pkg catalog.Package) {
	fmt.Fprintln(w, tui.RenderPackage(pkg.Name))
	if len(pkg.Info.CommandNames) > 0 {
		cmds := make([]string, len(pkg.Info.CommandNames))
		for i, c := range pkg.Info.CommandNames {
			cmds[i] = "`" + c + "`"
		}
		fmt.Fprintf(w, "%s %s\n", tui.RenderMuted("Commands:"), strings.Join(cmds, ", "))
	}
	if pkg.Info.Comment != "" {
		fmt.Fprintln(w, tui.RenderMuted(pkg.Info.Comment))
	}
	options := pkg.AllInstallCommands(cat)
	if len(options) == 0 {
		return
	}
	fmt.Fprintln(w, tui.RenderMuted("Available via:"))
	for _, opt := range options {
		fmt.Fprintf(w, "  %s (%s): `%s`\n", tui.RenderManager(opt.Manager.Name), platform.Join(opt.Manager.Platforms), opt.Command)
	}
}

// Managers renders the installed package managers as a table.
func Managers(w io.Writer, results []discovery.Result) {
	table := tui.NewTable("Manager", "Version", "Path")
	table.SetTitle("Installed package managers")
	for _, r := range results {
		table.AddStatusRow(tui.RowFound, r.Manager.Name, r.Version(), r.Path)
	}
	fmt.Fprintln(w, table.Render())
}

// Platform renders the detected platform.
func Platform(w io.Writer, plat platform.Platform, description, shell string) {
	table := tui.NewTable("Property", "Value")
	table.SetTitle("Platform")
	table.HideHeader()
	table.AddRow("Platform", plat.String())
	table.AddRow("System", description)
	table.AddRow("Shell", shell)
	fmt.Fprintln(w, table.Render())
}
