// Package path provides utilities for PATH-style search lists
package path

import (
	"os"
	"path/filepath"
	"strings"
)

// Dirs splits a PATH-style environment variable into cleaned directories,
// dropping empty entries.
func Dirs(envVar string) []string {
	var dirs []string
	for _, p := range filepath.SplitList(os.Getenv(envVar)) {
		if strings.TrimSpace(p) == "" {
			continue
		}
		dirs = append(dirs, filepath.Clean(p))
	}
	return dirs
}

// ExpandHome replaces a leading "~" with the user's home directory.
func ExpandHome(p string) string {
	if p != "~" && !strings.HasPrefix(p, "~/") && !strings.HasPrefix(p, `~\`) {
		return p
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return p
	}
	return filepath.Join(home, p[1:])
}

// FindSharedLibrary looks for a shared object whose file name starts with
// one of the prefixes and carries a shared-library extension, searching
// LibraryDirs in order. It returns the first match.
func FindSharedLibrary(prefixes ...string) (string, bool) {
	for _, dir := range LibraryDirs() {
		entries, err := os.ReadDir(dir)
		if err != nil {
			continue
		}
		for _, entry := range entries {
			if entry.IsDir() {
				continue
			}
			name := entry.Name()
			if matchesLibrary(name, prefixes) {
				return filepath.Join(dir, name), true
			}
		}
	}
	return "", false
}

func matchesLibrary(name string, prefixes []string) bool {
	lower := strings.ToLower(name)
	for _, prefix := range prefixes {
		prefix = strings.ToLower(prefix)
		if !strings.HasPrefix(lower, prefix) {
			continue
		}
		// libmagic must not match libMagickCore
		if rest := lower[len(prefix):]; rest != "" && !strings.ContainsRune(".-_0123456789", rune(rest[0])) {
			continue
		}
		for _, ext := range sharedLibraryExts {
			if strings.HasSuffix(lower, ext) || strings.Contains(lower, ext+".") {
				return true
			}
		}
	}
	return false
}

func uniqueDirs(groups ...[]string) []string {
	seen := map[string]bool{}
	var out []string
	for _, group := range groups {
		for _, d := range group {
			if d == "" || seen[d] {
				continue
			}
			seen[d] = true
			out = append(out, d)
		}
	}
	return out
}
