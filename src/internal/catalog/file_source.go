package catalog

import (
	"fmt"
	"os"
)

// FileSource reads a catalog file such as clideps.yml from disk.
type FileSource struct {
	path string
}

// NewFileSource creates a Source for the catalog file at path.
func NewFileSource(path string) *FileSource {
	return &FileSource{path: path}
}

// Path returns the file the source reads.
func (s *FileSource) Path() string {
	return s.path
}

// Load reads and parses the file.
func (s *FileSource) Load() (*File, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, &ErrCatalogNotFound{Path: s.path}
		}
		return nil, err
	}

	f, err := ParseFile(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", s.path, err)
	}
	return f, nil
}
