package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/clideps/clideps/src/internal/path"
)

// Defaults for settings missing from config.toml
const (
	DefaultProbeTimeout = 10 * time.Second
	DefaultParallelism  = 4
	DefaultCacheTTL     = 24 * time.Hour
)

// Duration is a time.Duration written as a string such as "10s" in TOML.
type Duration struct {
	time.Duration
}

func (d *Duration) UnmarshalText(text []byte) error {
	v, err := time.ParseDuration(string(text))
	if err != nil {
		return fmt.Errorf("invalid duration %q: %w", text, err)
	}
	d.Duration = v
	return nil
}

func (d Duration) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}

// Settings are the user preferences stored in config.toml.
type Settings struct {
	// ProbeTimeout bounds each version probe and checker.
	ProbeTimeout Duration `toml:"probe_timeout"`
	// Parallelism is how many packages or managers are probed at once.
	Parallelism int `toml:"parallelism"`
	// CatalogFiles are extra catalog overlays applied after the user catalog.
	CatalogFiles []string `toml:"catalog_files"`
	// CacheTTL is how long a remote catalog overlay is reused before it is
	// fetched again. Zero fetches on every run.
	CacheTTL Duration `toml:"cache_ttl"`
}

// DefaultSettings returns the settings used when config.toml is absent.
func DefaultSettings() *Settings {
	return &Settings{
		ProbeTimeout: Duration{DefaultProbeTimeout},
		Parallelism:  DefaultParallelism,
		CacheTTL:     Duration{DefaultCacheTTL},
	}
}

// LoadSettings reads settings from file, falling back to defaults for the
// whole file when it doesn't exist and for each value it leaves out.
func LoadSettings(file string) (*Settings, error) {
	s := DefaultSettings()

	if _, err := os.Stat(file); err != nil {
		if os.IsNotExist(err) {
			return s, nil
		}
		return nil, err
	}
	if _, err := toml.DecodeFile(file, s); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", file, err)
	}

	if s.ProbeTimeout.Duration <= 0 {
		s.ProbeTimeout.Duration = DefaultProbeTimeout
	}
	if s.Parallelism < 1 {
		s.Parallelism = DefaultParallelism
	}
	if s.CacheTTL.Duration < 0 {
		s.CacheTTL.Duration = DefaultCacheTTL
	}
	for i, f := range s.CatalogFiles {
		s.CatalogFiles[i] = path.ExpandHome(f)
	}
	return s, nil
}

// Save writes the settings to file, creating its directory.
func (s *Settings) Save(file string) error {
	if err := os.MkdirAll(filepath.Dir(file), 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}
	f, err := os.Create(file)
	if err != nil {
		return err
	}
	defer func() { _ = f.Close() }()
	return toml.NewEncoder(f).Encode(s)
}
