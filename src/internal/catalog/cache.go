package catalog

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/clideps/clideps/src/internal/ui"
)

// DefaultCacheTTL is how long a fetched remote catalog is reused.
const DefaultCacheTTL = 24 * time.Hour

// CachedSource keeps a copy of a remote catalog on disk. A copy younger
// than the TTL is used without fetching; an older one is still used when
// the fetch fails.
type CachedSource struct {
	source   *HTTPSource
	cacheDir string
	ttl      time.Duration
}

// NewCachedSource wraps source with a cache in cacheDir. A zero ttl always
// fetches.
func NewCachedSource(source *HTTPSource, cacheDir string, ttl time.Duration) *CachedSource {
	return &CachedSource{
		source:   source,
		cacheDir: cacheDir,
		ttl:      ttl,
	}
}

// Load returns the cached catalog if fresh, otherwise fetches it.
func (s *CachedSource) Load() (*File, error) {
	cachePath := s.cachePath()

	cached, fresh := s.readCache(cachePath)
	if fresh {
		ui.Debug("Using cached catalog for %s", s.source.URL())
		return s.parse(cached)
	}

	data, err := s.source.Fetch()
	if err != nil {
		if cached == nil || IsCatalogNotFound(err) {
			return nil, err
		}
		ui.Warning("Using stale cached catalog for %s: %v", s.source.URL(), err)
		return s.parse(cached)
	}

	f, err := s.parse(data)
	if err != nil {
		return nil, err
	}
	if err := s.writeCache(cachePath, data); err != nil {
		ui.Debug("Failed to cache catalog: %v", err)
	}
	return f, nil
}

// ClearCache removes every cached remote catalog in cacheDir and returns how
// many were removed. A missing directory is not an error.
func ClearCache(cacheDir string) (int, error) {
	entries, err := os.ReadDir(cacheDir)
	if err != nil {
		if os.IsNotExist(err) {
			return 0, nil
		}
		return 0, err
	}

	removed := 0
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		if err := os.Remove(filepath.Join(cacheDir, entry.Name())); err != nil {
			return removed, err
		}
		removed++
	}
	return removed, nil
}

func (s *CachedSource) cachePath() string {
	sum := sha256.Sum256([]byte(s.source.URL()))
	return filepath.Join(s.cacheDir, hex.EncodeToString(sum[:8])+".yml")
}

// readCache returns the cached bytes, or nil, and whether they are within
// the TTL.
func (s *CachedSource) readCache(cachePath string) ([]byte, bool) {
	info, err := os.Stat(cachePath)
	if err != nil {
		return nil, false
	}
	data, err := os.ReadFile(cachePath)
	if err != nil {
		return nil, false
	}
	return data, time.Since(info.ModTime()) < s.ttl
}

func (s *CachedSource) writeCache(cachePath string, data []byte) error {
	if err := os.MkdirAll(s.cacheDir, 0755); err != nil {
		return err
	}
	return os.WriteFile(cachePath, data, 0644)
}

func (s *CachedSource) parse(data []byte) (*File, error) {
	f, err := ParseFile(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", s.source.URL(), err)
	}
	return f, nil
}
