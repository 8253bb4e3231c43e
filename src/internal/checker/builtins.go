package checker

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/clideps/clideps/src/internal/path"
	"github.com/clideps/clideps/src/internal/platform"
	"github.com/clideps/clideps/src/internal/runner"
	"github.com/clideps/clideps/src/internal/ui"
)

// Names of the packages with built-in checkers. Each has a catalog entry
// without command names.
const (
	Libmagic      = "libmagic"
	XcodeCLITools = "xcode-cli-tools"
)

var libmagicPrefixes = []string{"libmagic", "magic1"}

// RegisterBuiltins adds the built-in checkers to r. Subprocess probes go
// through run; a nil run uses a SystemRunner with the default timeout.
func RegisterBuiltins(r *Registry, run runner.Runner) error {
	if run == nil {
		run = &runner.SystemRunner{}
	}
	builtins := []struct {
		name    string
		checker Checker
	}{
		{Libmagic, LibmagicChecker()},
		{XcodeCLITools, XcodeCLIToolsChecker(run, platform.Current())},
	}
	for _, b := range builtins {
		if err := r.Register(b.name, b.checker); err != nil {
			return err
		}
	}
	return nil
}

// LibmagicChecker looks for the libmagic shared library in the loader
// search path and the standard library directories.
func LibmagicChecker() Checker {
	return func(ctx context.Context) error {
		if lib, ok := path.FindSharedLibrary(libmagicPrefixes...); ok {
			ui.Debug("Found libmagic at %s", lib)
			return nil
		}
		return fmt.Errorf("%w: libmagic shared library not found in %s",
			ErrUnavailable, strings.Join(path.LibraryDirs(), ", "))
	}
}

// XcodeCLIToolsChecker asks xcode-select for the active developer directory
// and confirms it exists. It always fails off macOS.
func XcodeCLIToolsChecker(run runner.Runner, p platform.Platform) Checker {
	return func(ctx context.Context) error {
		if p != platform.Darwin {
			return fmt.Errorf("%w: Xcode command line tools are only available on macOS", ErrUnavailable)
		}
		out, err := run.Shell(ctx, "xcode-select -p")
		if err != nil {
			return fmt.Errorf("xcode-select -p: %w", err)
		}
		dir := strings.TrimSpace(string(out))
		if dir == "" {
			return fmt.Errorf("%w: xcode-select reported no developer directory", ErrUnavailable)
		}
		if _, err := os.Stat(dir); err != nil {
			return fmt.Errorf("%w: developer directory %s: %v", ErrUnavailable, dir, err)
		}
		return nil
	}
}
