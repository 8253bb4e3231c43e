package catalog

import (
	"slices"
	"strings"

	"github.com/clideps/clideps/src/internal/platform"
)

// PkgsPlaceholder is replaced by the space-separated package names in an
// install template.
const PkgsPlaceholder = "{pkgs}"

// PackageManager describes a tool that can install packages, such as brew
// or apt, and how to probe for it.
type PackageManager struct {
	Name       string
	URL        string
	InstallURL string
	Platforms  []platform.Platform
	// CommandNames are the executables the manager may be installed as.
	CommandNames []string
	// InstallTemplate contains PkgsPlaceholder, e.g. "brew install {pkgs}".
	InstallTemplate string
	VersionCommand  string
	// Priority orders managers when suggesting one; lower is preferred.
	Priority int
}

// InstallCommand returns the shell command that installs the given packages.
func (m PackageManager) InstallCommand(pkgNames ...string) string {
	return strings.ReplaceAll(m.InstallTemplate, PkgsPlaceholder, strings.Join(pkgNames, " "))
}

// Supports reports whether the manager runs on p.
func (m PackageManager) Supports(p platform.Platform) bool {
	return slices.Contains(m.Platforms, p)
}

// BaseCommand is the executable invoked by the version command.
func (m PackageManager) BaseCommand() string {
	fields := strings.Fields(m.VersionCommand)
	if len(fields) == 0 {
		return ""
	}
	return fields[0]
}
