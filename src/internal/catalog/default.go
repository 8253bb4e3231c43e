package catalog

import "time"

// Default builds the catalog embedded in the binary.
func Default() (*Catalog, error) {
	return FromSource(NewEmbeddedSource())
}

// Load builds the embedded catalog with the given overlays applied in
// order. Overlays that don't exist are ignored. Remote overlays are fetched
// every time.
func Load(overlays ...string) (*Catalog, error) {
	return LoadCached("", 0, overlays...)
}

// LoadCached is Load with remote overlays cached in cacheDir for ttl. An
// empty cacheDir disables caching.
func LoadCached(cacheDir string, ttl time.Duration, overlays ...string) (*Catalog, error) {
	if len(overlays) == 0 {
		return Default()
	}
	sources := make([]Source, len(overlays))
	for i, location := range overlays {
		sources[i] = sourceFor(location, cacheDir, ttl)
	}
	return FromSource(NewLayeredSource(NewEmbeddedSource(), sources...))
}

func sourceFor(location, cacheDir string, ttl time.Duration) Source {
	if !IsRemote(location) {
		return NewFileSource(location)
	}
	src := NewHTTPSource(location)
	if cacheDir == "" {
		return src
	}
	return NewCachedSource(src, cacheDir, ttl)
}

// FromSource loads and validates the catalog a source provides.
func FromSource(s Source) (*Catalog, error) {
	f, err := s.Load()
	if err != nil {
		return nil, err
	}
	return Build(f)
}
