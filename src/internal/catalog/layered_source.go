package catalog

import (
	"fmt"

	"github.com/clideps/clideps/src/internal/ui"
)

// LayeredSource applies overlay sources on top of a base source. Later
// layers win. Overlays that don't exist are skipped.
type LayeredSource struct {
	base     Source
	overlays []Source
}

// NewLayeredSource creates a Source that merges overlays onto base in order.
func NewLayeredSource(base Source, overlays ...Source) *LayeredSource {
	return &LayeredSource{base: base, overlays: overlays}
}

// Load loads the base and every overlay and merges them.
func (s *LayeredSource) Load() (*File, error) {
	merged, err := s.base.Load()
	if err != nil {
		return nil, err
	}

	for _, overlay := range s.overlays {
		f, err := overlay.Load()
		if err != nil {
			if IsCatalogNotFound(err) {
				ui.Debug("Skipping catalog overlay: %v", err)
				continue
			}
			return nil, fmt.Errorf("failed to load catalog overlay: %w", err)
		}
		merged = merged.Merge(f)
	}
	return merged, nil
}
