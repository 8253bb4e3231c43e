package config

import (
	"fmt"
	"os"
	"path/filepath"
)

// FindLocalCatalog walks up from the working directory looking for a
// clideps.yml. It stops at a git repository root or the filesystem root.
func FindLocalCatalog() (string, error) {
	currentDir, err := os.Getwd()
	if err != nil {
		return "", err
	}
	return findCatalogFrom(currentDir)
}

func findCatalogFrom(currentDir string) (string, error) {
	for {
		candidate := filepath.Join(currentDir, CatalogFileName)
		if info, err := os.Stat(candidate); err == nil && !info.IsDir() {
			return candidate, nil
		}

		// A .git entry marks the repository root
		if _, err := os.Stat(filepath.Join(currentDir, ".git")); err == nil {
			break
		}

		parent := filepath.Dir(currentDir)
		if parent == currentDir {
			break
		}
		currentDir = parent
	}

	return "", fmt.Errorf("no local %s found", CatalogFileName)
}

// CatalogOverlays returns the catalog files to apply over the built-in
// catalog, in order: the user catalog, settings.CatalogFiles, the project
// catalog if one is found, then extra. Files that don't exist are left in;
// the catalog loader skips them.
func CatalogOverlays(paths *Paths, settings *Settings, extra ...string) []string {
	overlays := []string{paths.Catalog}
	overlays = append(overlays, settings.CatalogFiles...)
	if local, err := FindLocalCatalog(); err == nil {
		overlays = append(overlays, local)
	}
	return append(overlays, extra...)
}
