//go:build unix

package platform

import (
	"strings"

	"golang.org/x/sys/unix"
)

// Describe returns the kernel name, release and machine, e.g.
// "Linux 6.8.0-45-generic x86_64". Falls back to the platform name.
func Describe() string {
	var u unix.Utsname
	if err := unix.Uname(&u); err != nil {
		return Current().String()
	}
	parts := []string{
		unix.ByteSliceToString(u.Sysname[:]),
		unix.ByteSliceToString(u.Release[:]),
		unix.ByteSliceToString(u.Machine[:]),
	}
	return strings.Join(strings.Fields(strings.Join(parts, " ")), " ")
}
