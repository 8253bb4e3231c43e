// Package catalogtest holds test helpers for catalog records.
package catalogtest

import (
	"strings"
	"testing"

	"github.com/clideps/clideps/src/internal/catalog"
)

// ManagerTestHarness checks that a package manager record is well formed.
// Every built-in manager is run through it, and overlay authors can use it
// for their own additions.
type ManagerTestHarness struct {
	Manager      catalog.PackageManager
	ExpectedName string
}

// RunAll runs all standard manager tests.
func (h *ManagerTestHarness) RunAll(t *testing.T) {
	t.Run("Name", h.TestName)
	t.Run("URLs", h.TestURLs)
	t.Run("Platforms", h.TestPlatforms)
	t.Run("CommandNames", h.TestCommandNames)
	t.Run("InstallCommand", h.TestInstallCommand)
	t.Run("VersionCommand", h.TestVersionCommand)
}

// TestName verifies the manager has the expected name.
func (h *ManagerTestHarness) TestName(t *testing.T) {
	if h.Manager.Name == "" {
		t.Error("Name is empty")
	}
	if h.Manager.Name != h.ExpectedName {
		t.Errorf("Name = %q, want %q", h.Manager.Name, h.ExpectedName)
	}
}

// TestURLs verifies documentation links look like URLs.
func (h *ManagerTestHarness) TestURLs(t *testing.T) {
	if !strings.HasPrefix(h.Manager.URL, "https://") {
		t.Errorf("URL = %q, want an https URL", h.Manager.URL)
	}
	if h.Manager.InstallURL != "" && !strings.HasPrefix(h.Manager.InstallURL, "https://") {
		t.Errorf("InstallURL = %q, want empty or an https URL", h.Manager.InstallURL)
	}
}

// TestPlatforms verifies at least one platform is listed without repeats.
func (h *ManagerTestHarness) TestPlatforms(t *testing.T) {
	if len(h.Manager.Platforms) == 0 {
		t.Fatal("Platforms is empty")
	}
	seen := map[string]bool{}
	for _, p := range h.Manager.Platforms {
		if seen[p.String()] {
			t.Errorf("platform %s listed twice", p)
		}
		seen[p.String()] = true
	}
}

// TestCommandNames verifies the aliases are non-empty single words.
func (h *ManagerTestHarness) TestCommandNames(t *testing.T) {
	if len(h.Manager.CommandNames) == 0 {
		t.Fatal("CommandNames is empty")
	}
	for _, name := range h.Manager.CommandNames {
		if name == "" || strings.ContainsAny(name, " \t") {
			t.Errorf("invalid command name %q", name)
		}
	}
}

// TestInstallCommand verifies package names are substituted.
func (h *ManagerTestHarness) TestInstallCommand(t *testing.T) {
	cmd := h.Manager.InstallCommand("pkg-one", "pkg-two")
	if !strings.Contains(cmd, "pkg-one pkg-two") {
		t.Errorf("InstallCommand() = %q, missing package names", cmd)
	}
	if strings.Contains(cmd, catalog.PkgsPlaceholder) {
		t.Errorf("InstallCommand() = %q, placeholder not replaced", cmd)
	}
}

// TestVersionCommand verifies the probe runs one of the manager's commands.
func (h *ManagerTestHarness) TestVersionCommand(t *testing.T) {
	base := h.Manager.BaseCommand()
	if base == "" {
		t.Fatal("BaseCommand() is empty")
	}
	for _, name := range h.Manager.CommandNames {
		if name == base {
			return
		}
	}
	t.Errorf("BaseCommand() = %q, not one of %v", base, h.Manager.CommandNames)
}
