package catalog

import (
	"embed"
	"fmt"
	"io/fs"
	"strings"
)

//go:embed data/*.yaml
var embeddedCatalog embed.FS

// EmbeddedSource reads the default catalog compiled into the binary.
// Every .yaml file in the data/ subdirectory is merged in name order.
type EmbeddedSource struct {
	fs fs.FS
}

// NewEmbeddedSource creates a Source that reads the embedded catalog files.
func NewEmbeddedSource() *EmbeddedSource {
	subFS, _ := fs.Sub(embeddedCatalog, "data")
	return &EmbeddedSource{fs: subFS}
}

// NewEmbeddedSourceFromFS creates a Source from a custom filesystem.
// This is useful for testing with mock filesystems.
func NewEmbeddedSourceFromFS(fsys fs.FS) *EmbeddedSource {
	return &EmbeddedSource{fs: fsys}
}

// Load parses and merges the embedded catalog files.
func (s *EmbeddedSource) Load() (*File, error) {
	entries, err := fs.ReadDir(s.fs, ".")
	if err != nil {
		return nil, fmt.Errorf("failed to read embedded catalog: %w", err)
	}

	merged := &File{}
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".yaml") {
			continue
		}
		data, err := fs.ReadFile(s.fs, entry.Name())
		if err != nil {
			return nil, fmt.Errorf("failed to read %s: %w", entry.Name(), err)
		}
		f, err := ParseFile(data)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", entry.Name(), err)
		}
		merged = merged.Merge(f)
	}
	return merged, nil
}
