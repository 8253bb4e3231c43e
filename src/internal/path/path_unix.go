//go:build !windows

package path

import (
	"os"
	"path/filepath"

	"github.com/clideps/clideps/src/internal/constants"
)

var sharedLibraryExts = []string{".so", ".dylib"}

var standardLibraryDirs = []string{
	"/opt/homebrew/lib",
	"/opt/local/lib",
	"/usr/local/lib",
	"/usr/lib",
	"/usr/lib64",
	"/usr/lib/x86_64-linux-gnu",
	"/usr/lib/aarch64-linux-gnu",
	"/lib",
	"/lib64",
	"/lib/x86_64-linux-gnu",
	"/lib/aarch64-linux-gnu",
}

// LibraryDirs returns the directories searched for shared libraries: the
// loader environment variables first, then the usual system locations.
func LibraryDirs() []string {
	return uniqueDirs(
		Dirs(constants.EnvLdLibraryPath),
		Dirs(constants.EnvDyldLibraryPath),
		standardLibraryDirs,
	)
}

// DetectShell returns the user's shell name (bash, zsh, fish, etc.)
func DetectShell() string {
	shell := os.Getenv("SHELL")
	if shell == "" {
		return "unknown"
	}
	return filepath.Base(shell)
}
