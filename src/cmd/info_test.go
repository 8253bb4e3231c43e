package cmd

import (
	"bytes"
	"strings"
	"testing"

	"github.com/clideps/clideps/src/internal/catalog"
)

func TestRunInfo(t *testing.T) {
	cat := testCatalog(t)

	tests := []struct {
		name    string
		names   []string
		wantOut []string
	}{
		{"single package", []string{"uv"}, []string{"uv", "Python tooling", "pip install uv"}},
		{"all packages", nil, []string{"ripgrep", "uv", "libfoo"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			if err := runInfo(&buf, cat, tt.names, false); err != nil {
				t.Fatalf("runInfo() error = %v", err)
			}
			out := buf.String()
			for _, want := range tt.wantOut {
				if !strings.Contains(out, want) {
					t.Errorf("output missing %q:\n%s", want, out)
				}
			}
		})
	}
}

func TestRunInfo_Unknown(t *testing.T) {
	var buf bytes.Buffer
	err := runInfo(&buf, testCatalog(t), []string{"nope"}, false)
	if !catalog.IsUnknownPackage(err) {
		t.Fatalf("runInfo() error = %v, want unknown package", err)
	}
}

func TestRunInfo_YAMLIsValidOverlay(t *testing.T) {
	var buf bytes.Buffer
	if err := runInfo(&buf, testCatalog(t), []string{"uv", "ripgrep"}, true); err != nil {
		t.Fatalf("runInfo() error = %v", err)
	}

	f, err := catalog.ParseFile(buf.Bytes())
	if err != nil {
		t.Fatalf("--yaml output does not parse as a catalog: %v\n%s", err, buf.String())
	}
	if len(f.Packages) != 2 || f.Packages[0].Name != "uv" || f.Packages[1].Name != "ripgrep" {
		t.Errorf("packages = %+v, want uv then ripgrep", f.Packages)
	}
	if f.Packages[0].Info.PkgManagers["pip"] != "uv" {
		t.Errorf("uv pip name = %q", f.Packages[0].Info.PkgManagers["pip"])
	}
}
