//go:build windows

package platform

import (
	"fmt"

	"golang.org/x/sys/windows"
)

// Describe returns the Windows version, e.g. "Windows 10.0 (build 22631)".
func Describe() string {
	v := windows.RtlGetVersion()
	if v == nil {
		return Windows.String()
	}
	return fmt.Sprintf("Windows %d.%d (build %d)", v.MajorVersion, v.MinorVersion, v.BuildNumber)
}
