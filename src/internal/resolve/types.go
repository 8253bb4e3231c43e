// Package resolve checks which requested system packages are installed.
package resolve

import (
	"errors"
	"fmt"

	"github.com/clideps/clideps/src/internal/catalog"
)

// Severity says how much a caller needs a package.
type Severity string

const (
	Mandatory   Severity = "mandatory"
	Recommended Severity = "recommended"
	Optional    Severity = "optional"
)

// Dependency is a requested package with its severity.
type Dependency struct {
	Package  catalog.Package
	Severity Severity
}

// Request lists package names by severity. An empty request checks every
// package in the catalog as optional.
type Request struct {
	Mandatory   []string
	Recommended []string
	Optional    []string
}

// IsEmpty reports whether no package was requested.
func (r Request) IsEmpty() bool {
	return len(r.Mandatory) == 0 && len(r.Recommended) == 0 && len(r.Optional) == 0
}

// Result partitions the checked packages. Every requested package appears in
// exactly one slice and has evidence in exactly one of the info maps.
type Result struct {
	Found              []catalog.Package
	MissingRequired    []catalog.Package
	MissingRecommended []catalog.Package
	MissingOptional    []catalog.Package

	FoundInfo   map[string]string
	MissingInfo map[string]string
}

// HasMissingRequired reports whether any mandatory package is missing.
func (r *Result) HasMissingRequired() bool {
	return len(r.MissingRequired) > 0
}

// Missing returns all missing packages, most severe first.
func (r *Result) Missing() []catalog.Package {
	out := make([]catalog.Package, 0, len(r.MissingRequired)+len(r.MissingRecommended)+len(r.MissingOptional))
	out = append(out, r.MissingRequired...)
	out = append(out, r.MissingRecommended...)
	return append(out, r.MissingOptional...)
}

// Evidence returns the explanation recorded for a package.
func (r *Result) Evidence(name string) (string, bool) {
	if info, ok := r.FoundInfo[name]; ok {
		return info, true
	}
	info, ok := r.MissingInfo[name]
	return info, ok
}

// ErrDuplicateRequest is returned when a package name is requested more than
// once in a single check.
type ErrDuplicateRequest struct {
	Name   string
	First  Severity
	Second Severity
}

func (e *ErrDuplicateRequest) Error() string {
	if e.First == e.Second {
		return fmt.Sprintf("package %s requested twice as %s", e.Name, e.First)
	}
	return fmt.Sprintf("package %s requested as both %s and %s", e.Name, e.First, e.Second)
}

// IsDuplicateRequest checks if an error indicates a repeated package name.
func IsDuplicateRequest(err error) bool {
	var target *ErrDuplicateRequest
	return errors.As(err, &target)
}
