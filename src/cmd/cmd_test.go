package cmd

import (
	"testing"
	"testing/fstest"

	"github.com/clideps/clideps/src/internal/catalog"
	"github.com/clideps/clideps/src/internal/config"
	"github.com/clideps/clideps/src/internal/testutil"
)

const testCatalogYAML = `
pkg_managers:
  pip:
    url: https://pip.pypa.io/
    platforms: [Darwin, Linux, Windows]
    command_names: [pip]
    install_command: pip install {pkgs}
    version_command: pip --version
pkg_info:
  ripgrep:
    command_names: [rg]
    pkg_managers:
      pip: ripgrep
  uv:
    command_names: [uv]
    pkg_managers:
      pip: uv
    comment: Python tooling
  libfoo:
    comment: No way to detect this one
`

func testCatalog(t *testing.T) *catalog.Catalog {
	t.Helper()
	fsys := fstest.MapFS{
		"catalog.yaml": &fstest.MapFile{Data: []byte(testCatalogYAML)},
	}
	c, err := catalog.FromSource(catalog.NewEmbeddedSourceFromFS(fsys))
	if err != nil {
		t.Fatalf("failed to build test catalog: %v", err)
	}
	return c
}

func testEnvironment(t *testing.T, run *testutil.FakeRunner) *environment {
	t.Helper()
	return &environment{
		paths:    config.PathsForRoot(t.TempDir()),
		settings: config.DefaultSettings(),
		catalog:  testCatalog(t),
		runner:   run,
	}
}
