// Package platform identifies the coarse OS family clideps runs on.
//
// Distribution differences (Debian vs Fedora, Homebrew vs MacPorts) are not
// modelled here; they show up as which package managers are present.
package platform

import (
	"fmt"
	"runtime"
	"strings"

	"github.com/clideps/clideps/src/internal/constants"
)

// Platform is one of the major OS families.
type Platform string

const (
	Darwin  Platform = "Darwin"
	Linux   Platform = "Linux"
	Windows Platform = "Windows"
)

// All returns every known platform in display order.
func All() []Platform {
	return []Platform{Darwin, Linux, Windows}
}

// Current returns the platform of the running process.
func Current() Platform {
	return FromGOOS(runtime.GOOS)
}

// FromGOOS maps a runtime.GOOS value to a Platform. Unix-likes other than
// macOS share the Linux tool ecosystem and are reported as Linux.
func FromGOOS(goos string) Platform {
	switch goos {
	case constants.OSDarwin:
		return Darwin
	case constants.OSWindows:
		return Windows
	default:
		return Linux
	}
}

// Parse reads a platform name case-insensitively.
func Parse(s string) (Platform, error) {
	for _, p := range All() {
		if strings.EqualFold(s, string(p)) {
			return p, nil
		}
	}
	return "", fmt.Errorf("unknown platform: %q", s)
}

func (p Platform) String() string {
	return string(p)
}

// Join renders a platform list as "Darwin, Linux".
func Join(platforms []Platform) string {
	names := make([]string, len(platforms))
	for i, p := range platforms {
		names[i] = string(p)
	}
	return strings.Join(names, ", ")
}
