package platform

import (
	"runtime"
	"strings"
	"testing"
)

func TestFromGOOS(t *testing.T) {
	tests := []struct {
		goos string
		want Platform
	}{
		{"darwin", Darwin},
		{"linux", Linux},
		{"windows", Windows},
		{"freebsd", Linux},
		{"openbsd", Linux},
	}

	for _, tt := range tests {
		t.Run(tt.goos, func(t *testing.T) {
			if got := FromGOOS(tt.goos); got != tt.want {
				t.Errorf("FromGOOS(%q) = %q, want %q", tt.goos, got, tt.want)
			}
		})
	}
}

func TestCurrent(t *testing.T) {
	got := Current()
	want := FromGOOS(runtime.GOOS)
	if got != want {
		t.Errorf("Current() = %q, want %q", got, want)
	}
}

func TestParse(t *testing.T) {
	tests := []struct {
		input   string
		want    Platform
		wantErr bool
	}{
		{"Darwin", Darwin, false},
		{"linux", Linux, false},
		{"WINDOWS", Windows, false},
		{"macos", "", true},
		{"", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := Parse(tt.input)
			if tt.wantErr {
				if err == nil {
					t.Errorf("Parse(%q) expected error, got %q", tt.input, got)
				}
				return
			}
			if err != nil {
				t.Fatalf("Parse(%q) unexpected error: %v", tt.input, err)
			}
			if got != tt.want {
				t.Errorf("Parse(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestJoin(t *testing.T) {
	if got := Join([]Platform{Darwin, Linux}); got != "Darwin, Linux" {
		t.Errorf("Join() = %q, want %q", got, "Darwin, Linux")
	}
	if got := Join(nil); got != "" {
		t.Errorf("Join(nil) = %q, want empty string", got)
	}
}

func TestDescribe(t *testing.T) {
	desc := Describe()
	if strings.TrimSpace(desc) == "" {
		t.Fatal("Describe() returned empty string")
	}
}
