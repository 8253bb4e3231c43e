// Package discovery detects which package managers are installed on the
// current platform.
package discovery

import (
	"context"
	"errors"
	"os/exec"
	"strings"

	"github.com/clideps/clideps/src/internal/catalog"
	"github.com/clideps/clideps/src/internal/platform"
	"github.com/clideps/clideps/src/internal/runner"
	"github.com/clideps/clideps/src/internal/ui"
	"golang.org/x/sync/errgroup"
)

// Result is an installed package manager.
type Result struct {
	Manager       catalog.PackageManager
	Path          string
	VersionOutput string
}

// Version returns the first line of the version probe output.
func (r Result) Version() string {
	line, _, _ := strings.Cut(r.VersionOutput, "\n")
	return strings.TrimSpace(line)
}

// Discoverer probes the catalog's package managers.
type Discoverer struct {
	catalog     *catalog.Catalog
	runner      runner.Runner
	platform    platform.Platform
	parallelism int
}

// Option configures a Discoverer.
type Option func(*Discoverer)

// WithRunner sets the runner used for PATH lookups and version probes.
func WithRunner(r runner.Runner) Option {
	return func(d *Discoverer) { d.runner = r }
}

// WithPlatform overrides the detected platform.
func WithPlatform(p platform.Platform) Option {
	return func(d *Discoverer) { d.platform = p }
}

// WithParallelism sets how many managers are probed at once.
func WithParallelism(n int) Option {
	return func(d *Discoverer) { d.parallelism = max(n, 1) }
}

// New creates a Discoverer for the managers in cat.
func New(cat *catalog.Catalog, opts ...Option) *Discoverer {
	d := &Discoverer{
		catalog:     cat,
		runner:      &runner.SystemRunner{},
		parallelism: 1,
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// Discover returns the installed managers in catalog order. A manager counts
// as installed when it supports the platform, its base command is on PATH
// and its version command succeeds. Probe failures only drop the manager.
func (d *Discoverer) Discover(ctx context.Context) []Result {
	plat := d.platform
	if plat == "" {
		plat = platform.Current()
	}

	managers := d.catalog.Managers()
	found := make([]*Result, len(managers))

	var g errgroup.Group
	g.SetLimit(d.parallelism)
	for i, m := range managers {
		if !m.Supports(plat) {
			ui.Debug("Skipping %s, not supported on %s", m.Name, plat)
			continue
		}
		g.Go(func() error {
			found[i] = d.probe(ctx, m)
			return nil
		})
	}
	_ = g.Wait()

	results := make([]Result, 0, len(managers))
	for _, r := range found {
		if r != nil {
			results = append(results, *r)
		}
	}
	return results
}

func (d *Discoverer) probe(ctx context.Context, m catalog.PackageManager) *Result {
	base := m.BaseCommand()
	p, err := d.runner.LookPath(base)
	if err != nil {
		ui.Debug("Command '%s' for %s not found in PATH", base, m.Name)
		return nil
	}

	ui.Debug("Checking for %s using: '%s'", m.Name, m.VersionCommand)
	out, err := d.runner.Shell(ctx, m.VersionCommand)
	if err != nil {
		switch {
		case runner.IsExitError(err):
			ui.Debug("Check command for %s failed: %v", m.Name, err)
		case errors.Is(err, exec.ErrNotFound):
			ui.Debug("Check command for %s not found: '%s'", m.Name, m.VersionCommand)
		default:
			ui.Warning("Error checking for %s with command '%s': %v", m.Name, m.VersionCommand, err)
		}
		return nil
	}

	ui.Debug("%s found at %s", m.Name, p)
	return &Result{Manager: m, Path: p, VersionOutput: strings.TrimSpace(string(out))}
}

// Discover is a convenience wrapper around New(cat).Discover(ctx).
func Discover(ctx context.Context, cat *catalog.Catalog) []Result {
	return New(cat).Discover(ctx)
}

// Best picks the installed manager to suggest for pkg: the lowest priority
// value among managers that can install it, ties going to the earlier
// result. It returns false when none can.
func Best(results []Result, pkg catalog.Package) (Result, bool) {
	var (
		best Result
		ok   bool
	)
	for _, r := range results {
		if pkg.Info.PkgManagers[r.Manager.Name] == "" {
			continue
		}
		if !ok || r.Manager.Priority < best.Manager.Priority {
			best, ok = r, true
		}
	}
	return best, ok
}

// InstallCommand returns the command that installs pkg with this manager, or
// "" when the manager has no name for it.
func (r Result) InstallCommand(pkg catalog.Package) string {
	name := pkg.Info.PkgManagers[r.Manager.Name]
	if name == "" {
		return ""
	}
	return r.Manager.InstallCommand(name)
}
