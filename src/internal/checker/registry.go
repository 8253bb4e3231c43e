// Package checker holds custom availability probes for packages that can't
// be found by looking for a command in PATH, such as shared libraries.
package checker

import (
	"context"
	"errors"
	"fmt"
	"runtime/debug"
	"slices"
	"sync"

	"github.com/clideps/clideps/src/internal/ui"
)

// Checker probes whether a package is available. It returns nil when the
// package is usable and an error describing what is missing otherwise.
type Checker func(ctx context.Context) error

// ErrUnavailable is a generic "not installed" result for checkers.
var ErrUnavailable = errors.New("not available")

// ErrAlreadyRegistered is returned when a second checker is registered under
// a name that is already taken.
type ErrAlreadyRegistered struct {
	Name string
}

func (e *ErrAlreadyRegistered) Error() string {
	return fmt.Sprintf("checker '%s' is already registered", e.Name)
}

// IsAlreadyRegistered checks if an error indicates a duplicate registration.
func IsAlreadyRegistered(err error) bool {
	var target *ErrAlreadyRegistered
	return errors.As(err, &target)
}

// PanicError reports a checker that panicked.
type PanicError struct {
	Name  string
	Value any
	Stack []byte
}

func (e *PanicError) Error() string {
	return fmt.Sprintf("checker '%s' panicked: %v", e.Name, e.Value)
}

// Registry maps package names to checkers. Register is safe to call from
// multiple goroutines, though registration normally finishes before any
// check runs.
type Registry struct {
	checkers map[string]Checker
	mu       sync.RWMutex
}

// NewRegistry creates an empty checker registry.
func NewRegistry() *Registry {
	return &Registry{
		checkers: make(map[string]Checker),
	}
}

// Register adds a checker for a package. A name can only be registered
// once; the first checker stays in place.
func (r *Registry) Register(name string, c Checker) error {
	if c == nil {
		return fmt.Errorf("checker '%s' is nil", name)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.checkers[name]; exists {
		return &ErrAlreadyRegistered{Name: name}
	}
	r.checkers[name] = c
	return nil
}

// Lookup returns the checker registered for name, if any.
func (r *Registry) Lookup(name string) (Checker, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	c, ok := r.checkers[name]
	return c, ok
}

// Has checks if a checker is registered for name.
func (r *Registry) Has(name string) bool {
	_, ok := r.Lookup(name)
	return ok
}

// Names returns the registered names, sorted.
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]string, 0, len(r.checkers))
	for name := range r.checkers {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

type runResult struct {
	err error
}

// Run invokes the checker for name. It reports false with a nil error when
// no checker is registered, and false with the failure when the checker
// errors, panics or outlives ctx. Run never panics and returns as soon as
// ctx is done, even if the checker keeps running.
func (r *Registry) Run(ctx context.Context, name string) (bool, error) {
	c, ok := r.Lookup(name)
	if !ok {
		return false, nil
	}

	done := make(chan runResult, 1)
	go func() {
		defer func() {
			if v := recover(); v != nil {
				done <- runResult{err: &PanicError{Name: name, Value: v, Stack: debug.Stack()}}
			}
		}()
		done <- runResult{err: c(ctx)}
	}()

	var err error
	select {
	case res := <-done:
		err = res.err
	case <-ctx.Done():
		err = ctx.Err()
	}

	if err != nil {
		ui.Debug("Package %q is not installed or not accessible (checker failed): %v", name, err)
		return false, err
	}
	return true, nil
}
