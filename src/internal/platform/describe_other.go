//go:build !unix && !windows

package platform

// Describe returns the platform name; no kernel details are available.
func Describe() string {
	return Current().String()
}
