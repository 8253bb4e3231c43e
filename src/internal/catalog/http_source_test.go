package catalog

import (
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"sync/atomic"
	"testing"
	"time"
)

const remoteYAML = `pkg_info:
  teamtool:
    command_names: [teamtool]
    pkg_managers:
      pip: teamtool
`

func newCatalogServer(t *testing.T, hits *atomic.Int32) *httptest.Server {
	t.Helper()
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if hits != nil {
			hits.Add(1)
		}
		switch r.URL.Path {
		case "/clideps.yml":
			_, _ = w.Write([]byte(remoteYAML))
		case "/missing.yml":
			w.WriteHeader(http.StatusNotFound)
		case "/broken.yml":
			_, _ = w.Write([]byte("pkg_info: [not, a, mapping]"))
		default:
			w.WriteHeader(http.StatusInternalServerError)
		}
	}))
	t.Cleanup(server.Close)
	return server
}

func TestIsRemote(t *testing.T) {
	tests := []struct {
		location string
		want     bool
	}{
		{"https://example.com/clideps.yml", true},
		{"http://example.com/clideps.yml", true},
		{"/home/user/.clideps/clideps.yml", false},
		{"clideps.yml", false},
		{"httpfile.yml", false},
	}
	for _, tt := range tests {
		t.Run(tt.location, func(t *testing.T) {
			if got := IsRemote(tt.location); got != tt.want {
				t.Errorf("IsRemote(%q) = %v, want %v", tt.location, got, tt.want)
			}
		})
	}
}

func TestHTTPSource(t *testing.T) {
	server := newCatalogServer(t, nil)

	t.Run("Load success", func(t *testing.T) {
		f, err := NewHTTPSource(server.URL + "/clideps.yml").Load()
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(f.Packages) != 1 || f.Packages[0].Name != "teamtool" {
			t.Errorf("packages = %+v, want teamtool", f.Packages)
		}
	})

	t.Run("Load not found", func(t *testing.T) {
		_, err := NewHTTPSource(server.URL + "/missing.yml").Load()
		if !IsCatalogNotFound(err) {
			t.Errorf("expected ErrCatalogNotFound, got %v", err)
		}
	})

	t.Run("Load server error", func(t *testing.T) {
		_, err := NewHTTPSource(server.URL + "/error.yml").Load()
		if err == nil || !strings.Contains(err.Error(), "HTTP 500") {
			t.Errorf("expected HTTP 500 error, got %v", err)
		}
	})

	t.Run("Load invalid catalog", func(t *testing.T) {
		_, err := NewHTTPSource(server.URL + "/broken.yml").Load()
		if err == nil || !strings.Contains(err.Error(), "must be a mapping") {
			t.Errorf("expected parse error, got %v", err)
		}
	})
}

func TestCachedSource(t *testing.T) {
	var hits atomic.Int32
	server := newCatalogServer(t, &hits)
	url := server.URL + "/clideps.yml"

	t.Run("fresh cache avoids fetch", func(t *testing.T) {
		hits.Store(0)
		src := NewCachedSource(NewHTTPSource(url), t.TempDir(), time.Hour)
		for i := 0; i < 3; i++ {
			f, err := src.Load()
			if err != nil {
				t.Fatalf("Load() error = %v", err)
			}
			if len(f.Packages) != 1 {
				t.Fatalf("packages = %+v", f.Packages)
			}
		}
		if got := hits.Load(); got != 1 {
			t.Errorf("server hits = %d, want 1", got)
		}
	})

	t.Run("zero ttl always fetches", func(t *testing.T) {
		hits.Store(0)
		src := NewCachedSource(NewHTTPSource(url), t.TempDir(), 0)
		for i := 0; i < 2; i++ {
			if _, err := src.Load(); err != nil {
				t.Fatalf("Load() error = %v", err)
			}
		}
		if got := hits.Load(); got != 2 {
			t.Errorf("server hits = %d, want 2", got)
		}
	})

	t.Run("stale cache used when fetch fails", func(t *testing.T) {
		dir := t.TempDir()
		failing := NewHTTPSource(server.URL + "/error.yml")
		src := NewCachedSource(failing, dir, time.Hour)

		stale := src.cachePath()
		if err := os.MkdirAll(filepath.Dir(stale), 0755); err != nil {
			t.Fatal(err)
		}
		if err := os.WriteFile(stale, []byte(remoteYAML), 0644); err != nil {
			t.Fatal(err)
		}
		old := time.Now().Add(-48 * time.Hour)
		if err := os.Chtimes(stale, old, old); err != nil {
			t.Fatal(err)
		}

		f, err := src.Load()
		if err != nil {
			t.Fatalf("Load() error = %v", err)
		}
		if len(f.Packages) != 1 || f.Packages[0].Name != "teamtool" {
			t.Errorf("packages = %+v, want teamtool from stale cache", f.Packages)
		}
	})

	t.Run("not found is not masked by cache", func(t *testing.T) {
		src := NewCachedSource(NewHTTPSource(server.URL+"/missing.yml"), t.TempDir(), time.Hour)
		if _, err := src.Load(); !IsCatalogNotFound(err) {
			t.Errorf("expected ErrCatalogNotFound, got %v", err)
		}
	})
}

func TestClearCache(t *testing.T) {
	server := newCatalogServer(t, nil)
	dir := t.TempDir()

	for _, name := range []string{"/clideps.yml", "/clideps.yml?team=a"} {
		src := NewCachedSource(NewHTTPSource(server.URL+name), dir, time.Hour)
		if _, err := src.Load(); err != nil {
			t.Fatal(err)
		}
	}
	if err := os.Mkdir(filepath.Join(dir, "keep"), 0755); err != nil {
		t.Fatal(err)
	}

	removed, err := ClearCache(dir)
	if err != nil {
		t.Fatalf("ClearCache() error = %v", err)
	}
	if removed != 2 {
		t.Errorf("ClearCache() removed %d, want 2", removed)
	}
	entries, _ := os.ReadDir(dir)
	if len(entries) != 1 || entries[0].Name() != "keep" {
		t.Errorf("cache dir = %v, want only the subdirectory", entries)
	}

	removed, err = ClearCache(filepath.Join(dir, "nope"))
	if err != nil || removed != 0 {
		t.Errorf("ClearCache() on missing dir = %d, %v", removed, err)
	}
}

func TestLoadCached_RemoteOverlay(t *testing.T) {
	server := newCatalogServer(t, nil)

	c, err := LoadCached(t.TempDir(), time.Hour, server.URL+"/clideps.yml", server.URL+"/missing.yml")
	if err != nil {
		t.Fatalf("LoadCached() error = %v", err)
	}
	if _, err := c.Package("teamtool"); err != nil {
		t.Errorf("remote package not merged: %v", err)
	}
	if _, err := c.Package("ripgrep"); err != nil {
		t.Errorf("embedded package lost: %v", err)
	}
}
