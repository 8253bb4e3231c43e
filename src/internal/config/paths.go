// Package config manages clideps configuration: file locations, user
// settings, and project-local catalog files.
package config

import (
	"os"
	"path/filepath"
	"sync"

	"github.com/clideps/clideps/src/internal/constants"
)

// File names used by clideps
const (
	// ConfigFileName is the user settings file inside the root directory
	ConfigFileName = "config.toml"
	// CatalogFileName is the catalog overlay name, both in the root directory
	// and in projects
	CatalogFileName = "clideps.yml"
	// CacheDirName holds fetched remote catalogs inside the root directory
	CacheDirName = "cache"
	// RootDirName is the name of the per-user directory under $HOME
	RootDirName = ".clideps"
)

// Paths holds the clideps file locations
type Paths struct {
	Root    string // Root directory (~/.clideps)
	Config  string // Settings file (~/.clideps/config.toml)
	Catalog string // User catalog overlay (~/.clideps/clideps.yml)
	Cache   string // Remote catalog cache (~/.clideps/cache)
}

var (
	defaultPaths *Paths
	pathsOnce    sync.Once
)

// DefaultPaths returns the default clideps paths.
// This function is thread-safe and guarantees single initialization.
func DefaultPaths() *Paths {
	pathsOnce.Do(func() {
		defaultPaths = PathsForRoot(getRootDir())
	})
	return defaultPaths
}

// PathsForRoot returns the paths under a given root directory
func PathsForRoot(root string) *Paths {
	return &Paths{
		Root:    root,
		Config:  filepath.Join(root, ConfigFileName),
		Catalog: filepath.Join(root, CatalogFileName),
		Cache:   filepath.Join(root, CacheDirName),
	}
}

// getRootDir returns the root clideps directory
func getRootDir() string {
	if root := os.Getenv(constants.EnvRoot); root != "" {
		return root
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return RootDirName
	}
	return filepath.Join(home, RootDirName)
}

// EnsureRoot creates the root directory if needed
func (p *Paths) EnsureRoot() error {
	return os.MkdirAll(p.Root, 0755)
}

// ResetPathsCache resets the cached paths, forcing reinitialization on next access.
// This is primarily useful for testing.
func ResetPathsCache() {
	pathsOnce = sync.Once{}
	defaultPaths = nil
}
