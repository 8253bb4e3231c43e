package catalog

import (
	"fmt"

	"github.com/clideps/clideps/src/internal/platform"
	"gopkg.in/yaml.v3"
)

// PackageManagerNames maps a package manager name to the name that manager
// uses for the package. A missing entry means the manager can't install it.
type PackageManagerNames map[string]string

// PackageInfo describes a system package and how to install it.
type PackageInfo struct {
	// CommandNames are the executables the package provides. Packages
	// without commands, like libraries, need a registered checker.
	CommandNames []string            `yaml:"command_names,omitempty"`
	PkgManagers  PackageManagerNames `yaml:"pkg_managers,omitempty"`
	Comment      string              `yaml:"comment,omitempty"`
}

// ToYAML serializes the info, leaving out empty fields.
func (i PackageInfo) ToYAML() (string, error) {
	data, err := yaml.Marshal(i)
	if err != nil {
		return "", fmt.Errorf("failed to marshal package info: %w", err)
	}
	return string(data), nil
}

// PackageInfoFromYAML parses a single package info document.
func PackageInfoFromYAML(data []byte) (PackageInfo, error) {
	var info PackageInfo
	if err := yaml.Unmarshal(data, &info); err != nil {
		return PackageInfo{}, fmt.Errorf("failed to parse package info: %w", err)
	}
	return info, nil
}

// Package is a catalog name plus its info.
type Package struct {
	Name string
	Info PackageInfo
}

// InstallOption is one way of installing a package.
type InstallOption struct {
	Manager PackageManager
	Command string
}

// InstallCommands lists the install options for the package on p, in catalog
// manager order.
func (p Package) InstallCommands(c *Catalog, plat platform.Platform) []InstallOption {
	var options []InstallOption
	for _, m := range c.Managers() {
		name, ok := p.Info.PkgManagers[m.Name]
		if !ok || name == "" || !m.Supports(plat) {
			continue
		}
		options = append(options, InstallOption{Manager: m, Command: m.InstallCommand(name)})
	}
	return options
}

// AllInstallCommands lists install options for every platform, in catalog
// manager order.
func (p Package) AllInstallCommands(c *Catalog) []InstallOption {
	var options []InstallOption
	for _, m := range c.Managers() {
		if name := p.Info.PkgManagers[m.Name]; name != "" {
			options = append(options, InstallOption{Manager: m, Command: m.InstallCommand(name)})
		}
	}
	return options
}

// PackagesToYAML renders packages as a catalog file fragment under a
// pkg_info key, keeping their order. The output can be used as an overlay.
func PackagesToYAML(pkgs []Package) (string, error) {
	section := &yaml.Node{Kind: yaml.MappingNode}
	for _, p := range pkgs {
		value := &yaml.Node{}
		if err := value.Encode(p.Info); err != nil {
			return "", fmt.Errorf("failed to encode %s: %w", p.Name, err)
		}
		section.Content = append(section.Content,
			&yaml.Node{Kind: yaml.ScalarNode, Value: p.Name},
			value,
		)
	}
	doc := &yaml.Node{Kind: yaml.MappingNode, Content: []*yaml.Node{
		{Kind: yaml.ScalarNode, Value: "pkg_info"},
		section,
	}}
	data, err := yaml.Marshal(doc)
	if err != nil {
		return "", fmt.Errorf("failed to marshal packages: %w", err)
	}
	return string(data), nil
}
