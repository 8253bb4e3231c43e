package catalog

import (
	"fmt"

	"github.com/clideps/clideps/src/internal/platform"
	"gopkg.in/yaml.v3"
)

// File is the decoded contents of one catalog file. Entries keep the order
// they appear in.
type File struct {
	Packages []Package
	Managers []PackageManager
}

type rawFile struct {
	PkgInfo     yaml.Node `yaml:"pkg_info"`
	PkgManagers yaml.Node `yaml:"pkg_managers"`
}

type rawManager struct {
	URL             string   `yaml:"url"`
	InstallURL      string   `yaml:"install_url"`
	Platforms       []string `yaml:"platforms"`
	CommandNames    []string `yaml:"command_names"`
	InstallTemplate string   `yaml:"install_command"`
	VersionCommand  string   `yaml:"version_command"`
	Priority        int      `yaml:"priority"`
}

// ParseFile decodes a catalog file. Either section may be absent.
func ParseFile(data []byte) (*File, error) {
	var raw rawFile
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("failed to parse catalog: %w", err)
	}

	f := &File{}
	err := eachEntry(&raw.PkgInfo, "pkg_info", func(name string, value *yaml.Node) error {
		var info PackageInfo
		if err := value.Decode(&info); err != nil {
			return fmt.Errorf("package %s: %w", name, err)
		}
		f.Packages = append(f.Packages, Package{Name: name, Info: info})
		return nil
	})
	if err != nil {
		return nil, err
	}

	err = eachEntry(&raw.PkgManagers, "pkg_managers", func(name string, value *yaml.Node) error {
		var rm rawManager
		if err := value.Decode(&rm); err != nil {
			return fmt.Errorf("package manager %s: %w", name, err)
		}
		m := PackageManager{
			Name:            name,
			URL:             rm.URL,
			InstallURL:      rm.InstallURL,
			CommandNames:    rm.CommandNames,
			InstallTemplate: rm.InstallTemplate,
			VersionCommand:  rm.VersionCommand,
			Priority:        rm.Priority,
		}
		for _, s := range rm.Platforms {
			p, err := platform.Parse(s)
			if err != nil {
				return fmt.Errorf("package manager %s: %w", name, err)
			}
			m.Platforms = append(m.Platforms, p)
		}
		f.Managers = append(f.Managers, m)
		return nil
	})
	if err != nil {
		return nil, err
	}

	return f, nil
}

// eachEntry walks a YAML mapping in document order.
func eachEntry(node *yaml.Node, section string, fn func(name string, value *yaml.Node) error) error {
	if node.Kind == 0 {
		return nil
	}
	if node.Kind != yaml.MappingNode {
		return fmt.Errorf("failed to parse catalog: %s must be a mapping (line %d)", section, node.Line)
	}
	seen := make(map[string]bool, len(node.Content)/2)
	for i := 0; i+1 < len(node.Content); i += 2 {
		key := node.Content[i].Value
		if seen[key] {
			return fmt.Errorf("failed to parse catalog: duplicate %s entry %q (line %d)", section, key, node.Content[i].Line)
		}
		seen[key] = true
		if err := fn(key, node.Content[i+1]); err != nil {
			return fmt.Errorf("failed to parse catalog: %w", err)
		}
	}
	return nil
}

// Merge returns a copy of f with other's entries applied on top. An entry
// with an existing name replaces it in place, new entries are appended.
func (f *File) Merge(other *File) *File {
	out := &File{
		Packages: mergeByName(f.Packages, other.Packages, func(p Package) string { return p.Name }),
		Managers: mergeByName(f.Managers, other.Managers, func(m PackageManager) string { return m.Name }),
	}
	return out
}

func mergeByName[T any](base, overlay []T, name func(T) string) []T {
	out := make([]T, len(base), len(base)+len(overlay))
	copy(out, base)
	index := make(map[string]int, len(out))
	for i, v := range out {
		index[name(v)] = i
	}
	for _, v := range overlay {
		if i, ok := index[name(v)]; ok {
			out[i] = v
			continue
		}
		index[name(v)] = len(out)
		out = append(out, v)
	}
	return out
}
