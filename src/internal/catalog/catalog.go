// Package catalog holds the known system packages and package managers,
// loaded from YAML files embedded in the binary and optional user overlays.
package catalog

import (
	"fmt"
	"maps"
	"slices"
	"strings"
)

// Catalog is an immutable, validated set of packages and package managers.
// It is safe for concurrent use.
type Catalog struct {
	packages     []Package
	packageIndex map[string]int
	managers     []PackageManager
	managerIndex map[string]int
}

// Build validates f and returns the catalog it describes.
func Build(f *File) (*Catalog, error) {
	var problems []string
	c := &Catalog{
		packageIndex: make(map[string]int, len(f.Packages)),
		managerIndex: make(map[string]int, len(f.Managers)),
	}

	for _, m := range f.Managers {
		problems = append(problems, validateManager(m)...)
		if _, dup := c.managerIndex[m.Name]; dup {
			problems = append(problems, fmt.Sprintf("duplicate package manager %q", m.Name))
			continue
		}
		c.managerIndex[m.Name] = len(c.managers)
		c.managers = append(c.managers, cloneManager(m))
	}

	for _, p := range f.Packages {
		if p.Name == "" {
			problems = append(problems, "package with empty name")
			continue
		}
		if _, dup := c.packageIndex[p.Name]; dup {
			problems = append(problems, fmt.Sprintf("duplicate package %q", p.Name))
			continue
		}
		for _, pm := range slices.Sorted(maps.Keys(p.Info.PkgManagers)) {
			if _, ok := c.managerIndex[pm]; !ok {
				problems = append(problems, fmt.Sprintf("package %q refers to unknown package manager %q", p.Name, pm))
			}
			if strings.TrimSpace(p.Info.PkgManagers[pm]) == "" {
				problems = append(problems, fmt.Sprintf("package %q has an empty name for %q", p.Name, pm))
			}
		}
		c.packageIndex[p.Name] = len(c.packages)
		c.packages = append(c.packages, clonePackage(p))
	}

	if len(problems) > 0 {
		return nil, &ErrInvalidCatalog{Problems: problems}
	}
	return c, nil
}

func validateManager(m PackageManager) []string {
	var problems []string
	if m.Name == "" {
		return []string{"package manager with empty name"}
	}
	if len(m.CommandNames) == 0 {
		problems = append(problems, fmt.Sprintf("package manager %q has no command names", m.Name))
	}
	if strings.TrimSpace(m.VersionCommand) == "" {
		problems = append(problems, fmt.Sprintf("package manager %q has no version command", m.Name))
	}
	if !strings.Contains(m.InstallTemplate, PkgsPlaceholder) {
		problems = append(problems, fmt.Sprintf("package manager %q install command lacks %s", m.Name, PkgsPlaceholder))
	}
	if len(m.Platforms) == 0 {
		problems = append(problems, fmt.Sprintf("package manager %q has no platforms", m.Name))
	}
	return problems
}

// Package looks up a package by name.
func (c *Catalog) Package(name string) (Package, error) {
	i, ok := c.packageIndex[name]
	if !ok {
		return Package{}, &ErrUnknownPackage{Name: name}
	}
	return clonePackage(c.packages[i]), nil
}

// Names returns all package names in catalog order.
func (c *Catalog) Names() []string {
	names := make([]string, len(c.packages))
	for i, p := range c.packages {
		names[i] = p.Name
	}
	return names
}

// Packages returns all packages in catalog order.
func (c *Catalog) Packages() []Package {
	out := make([]Package, len(c.packages))
	for i, p := range c.packages {
		out[i] = clonePackage(p)
	}
	return out
}

// Managers returns all package managers in catalog order.
func (c *Catalog) Managers() []PackageManager {
	out := make([]PackageManager, len(c.managers))
	for i, m := range c.managers {
		out[i] = cloneManager(m)
	}
	return out
}

// Manager looks up a package manager by name.
func (c *Catalog) Manager(name string) (PackageManager, bool) {
	i, ok := c.managerIndex[name]
	if !ok {
		return PackageManager{}, false
	}
	return cloneManager(c.managers[i]), true
}

// Copies keep callers from mutating the catalog through shared slices.
func clonePackage(p Package) Package {
	p.Info.CommandNames = slices.Clone(p.Info.CommandNames)
	p.Info.PkgManagers = maps.Clone(p.Info.PkgManagers)
	return p
}

func cloneManager(m PackageManager) PackageManager {
	m.Platforms = slices.Clone(m.Platforms)
	m.CommandNames = slices.Clone(m.CommandNames)
	return m
}
