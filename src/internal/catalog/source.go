package catalog

// Source is the interface for retrieving catalog files from various backends.
// Implementations include embedded files, user files, and layered overlays.
type Source interface {
	// Load reads and parses the catalog entries the source provides.
	Load() (*File, error)
}
