package catalog

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnknownPackage is returned when a package name is not in the catalog.
type ErrUnknownPackage struct {
	Name string
}

func (e *ErrUnknownPackage) Error() string {
	return fmt.Sprintf("unknown package: %s", e.Name)
}

// IsUnknownPackage checks if an error indicates an unknown package name.
func IsUnknownPackage(err error) bool {
	var target *ErrUnknownPackage
	return errors.As(err, &target)
}

// ErrCatalogNotFound is returned when a catalog file doesn't exist.
type ErrCatalogNotFound struct {
	Path string
}

func (e *ErrCatalogNotFound) Error() string {
	return fmt.Sprintf("catalog file not found: %s", e.Path)
}

// IsCatalogNotFound checks if an error indicates a missing catalog file.
func IsCatalogNotFound(err error) bool {
	var target *ErrCatalogNotFound
	return errors.As(err, &target)
}

// ErrInvalidCatalog lists every problem found while building a catalog.
type ErrInvalidCatalog struct {
	Problems []string
}

func (e *ErrInvalidCatalog) Error() string {
	return "invalid catalog: " + strings.Join(e.Problems, "; ")
}

// IsInvalidCatalog checks if an error indicates an invalid catalog.
func IsInvalidCatalog(err error) bool {
	var target *ErrInvalidCatalog
	return errors.As(err, &target)
}
