//go:build windows

package path

import (
	"os"
	"path/filepath"

	"github.com/clideps/clideps/src/internal/constants"
)

var sharedLibraryExts = []string{".dll"}

// LibraryDirs returns the directories searched for DLLs: PATH, then the
// system directory.
func LibraryDirs() []string {
	var system []string
	if root := os.Getenv("SystemRoot"); root != "" {
		system = append(system, filepath.Join(root, "System32"))
	}
	return uniqueDirs(Dirs(constants.EnvPath), system)
}

// DetectShell returns "powershell" or "cmd"
func DetectShell() string {
	if os.Getenv("PSModulePath") != "" {
		return "powershell"
	}
	return "cmd"
}
