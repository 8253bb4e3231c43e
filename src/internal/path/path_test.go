package path

import (
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"testing"

	"github.com/clideps/clideps/src/internal/constants"
)

func TestDirs(t *testing.T) {
	sep := string(os.PathListSeparator)
	t.Setenv("CLIDEPS_TEST_DIRS", "/a"+sep+sep+"/b/"+sep+"  ")

	got := Dirs("CLIDEPS_TEST_DIRS")
	want := []string{filepath.Clean("/a"), filepath.Clean("/b")}
	if len(got) != len(want) {
		t.Fatalf("Dirs() = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Dirs()[%d] = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestExpandHome(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Setenv("USERPROFILE", home)

	tests := []struct {
		in   string
		want string
	}{
		{"~", home},
		{"~/catalog.yml", filepath.Join(home, "catalog.yml")},
		{"/etc/clideps.yml", "/etc/clideps.yml"},
		{"relative/~/x", "relative/~/x"},
	}
	for _, tt := range tests {
		if got := ExpandHome(tt.in); got != tt.want {
			t.Errorf("ExpandHome(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestMatchesLibrary(t *testing.T) {
	tests := []struct {
		name string
		want bool
	}{
		{"libmagic.so.1", true},
		{"libmagic.so", true},
		{"libmagic.1.dylib", true},
		{"libmagic-1.dll", true},
		{"libMagickCore-6.Q16.so.6", false},
		{"libmagic.a", false},
		{"libz.so.1", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if runtime.GOOS == constants.OSWindows && strings.Contains(tt.name, ".so") {
				t.Skip("shared object names are not libraries on Windows")
			}
			if runtime.GOOS != constants.OSWindows && strings.HasSuffix(tt.name, ".dll") {
				t.Skip("DLL names are not libraries on Unix")
			}
			if got := matchesLibrary(tt.name, []string{"libmagic"}); got != tt.want {
				t.Errorf("matchesLibrary(%q) = %v, want %v", tt.name, got, tt.want)
			}
		})
	}
}

func TestFindSharedLibrary(t *testing.T) {
	if runtime.GOOS == constants.OSWindows {
		t.Skip("library search uses PATH on Windows")
	}
	dir := t.TempDir()
	lib := filepath.Join(dir, "libclidepstest.so.2")
	if err := os.WriteFile(lib, nil, 0644); err != nil {
		t.Fatal(err)
	}
	t.Setenv(constants.EnvLdLibraryPath, dir)

	got, ok := FindSharedLibrary("libclidepstest")
	if !ok || got != lib {
		t.Errorf("FindSharedLibrary() = %q, %v; want %q, true", got, ok, lib)
	}

	if _, ok := FindSharedLibrary("libdefinitelynotpresent"); ok {
		t.Error("FindSharedLibrary() found a library that does not exist")
	}
}

func TestLibraryDirs_EnvFirst(t *testing.T) {
	if runtime.GOOS == constants.OSWindows {
		t.Skip("library search uses PATH on Windows")
	}
	dir := t.TempDir()
	t.Setenv(constants.EnvLdLibraryPath, dir)
	t.Setenv(constants.EnvDyldLibraryPath, dir)

	dirs := LibraryDirs()
	if len(dirs) == 0 || dirs[0] != dir {
		t.Fatalf("LibraryDirs()[0] = %v, want %q first", dirs, dir)
	}
	count := 0
	for _, d := range dirs {
		if d == dir {
			count++
		}
	}
	if count != 1 {
		t.Errorf("LibraryDirs() lists %q %d times, want once", dir, count)
	}
}

func TestDetectShell(t *testing.T) {
	if runtime.GOOS == constants.OSWindows {
		t.Skip("SHELL is not used on Windows")
	}
	t.Setenv("SHELL", "/bin/zsh")
	if got := DetectShell(); got != "zsh" {
		t.Errorf("DetectShell() = %q, want zsh", got)
	}
	t.Setenv("SHELL", "")
	if got := DetectShell(); got != "unknown" {
		t.Errorf("DetectShell() = %q, want unknown", got)
	}
}
