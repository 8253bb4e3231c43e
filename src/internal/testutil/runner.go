// Package testutil provides fakes shared by package tests.
package testutil

import (
	"context"
	"fmt"
	"os/exec"
	"sync"
)

// FakeResult is the canned outcome of a shell command.
type FakeResult struct {
	Output []byte
	Err    error
	// Block makes Shell wait for the context to end before returning.
	Block bool
}

// FakeRunner implements runner.Runner from in-memory tables. Commands not
// in Paths are not found, commands not in Commands fail with
// exec.ErrNotFound.
type FakeRunner struct {
	Paths    map[string]string
	Commands map[string]FakeResult

	mu    sync.Mutex
	calls []string
}

// NewFakeRunner creates an empty fake.
func NewFakeRunner() *FakeRunner {
	return &FakeRunner{
		Paths:    map[string]string{},
		Commands: map[string]FakeResult{},
	}
}

// WithPath registers name as found at path.
func (f *FakeRunner) WithPath(name, path string) *FakeRunner {
	f.Paths[name] = path
	return f
}

// WithCommand registers the result of a shell command.
func (f *FakeRunner) WithCommand(command string, result FakeResult) *FakeRunner {
	f.Commands[command] = result
	return f
}

func (f *FakeRunner) LookPath(name string) (string, error) {
	f.record("lookpath " + name)
	if p, ok := f.Paths[name]; ok {
		return p, nil
	}
	return "", &exec.Error{Name: name, Err: exec.ErrNotFound}
}

func (f *FakeRunner) Shell(ctx context.Context, command string) ([]byte, error) {
	f.record("shell " + command)
	res, ok := f.Commands[command]
	if !ok {
		return nil, fmt.Errorf("failed to run %q: %w", command, exec.ErrNotFound)
	}
	if res.Block {
		<-ctx.Done()
		return nil, ctx.Err()
	}
	return res.Output, res.Err
}

// Calls returns the recorded calls in order, e.g. "lookpath rg".
func (f *FakeRunner) Calls() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]string(nil), f.calls...)
}

func (f *FakeRunner) record(call string) {
	f.mu.Lock()
	f.calls = append(f.calls, call)
	f.mu.Unlock()
}
