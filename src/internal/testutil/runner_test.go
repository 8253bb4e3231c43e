package testutil

import (
	"context"
	"errors"
	"os/exec"
	"testing"
	"time"
)

func TestFakeRunner(t *testing.T) {
	f := NewFakeRunner().
		WithPath("brew", "/opt/homebrew/bin/brew").
		WithCommand("brew --version", FakeResult{Output: []byte("Homebrew 4.3.0\n")})

	if p, err := f.LookPath("brew"); err != nil || p != "/opt/homebrew/bin/brew" {
		t.Errorf("LookPath(brew) = %q, %v", p, err)
	}
	if _, err := f.LookPath("port"); !errors.Is(err, exec.ErrNotFound) {
		t.Errorf("LookPath(port) error = %v, want ErrNotFound", err)
	}

	out, err := f.Shell(context.Background(), "brew --version")
	if err != nil || string(out) != "Homebrew 4.3.0\n" {
		t.Errorf("Shell() = %q, %v", out, err)
	}
	if _, err := f.Shell(context.Background(), "port version"); !errors.Is(err, exec.ErrNotFound) {
		t.Errorf("Shell(unknown) error = %v, want ErrNotFound", err)
	}

	want := []string{"lookpath brew", "lookpath port", "shell brew --version", "shell port version"}
	calls := f.Calls()
	if len(calls) != len(want) {
		t.Fatalf("Calls() = %v, want %v", calls, want)
	}
	for i := range want {
		if calls[i] != want[i] {
			t.Errorf("Calls()[%d] = %q, want %q", i, calls[i], want[i])
		}
	}
}

func TestFakeRunner_Block(t *testing.T) {
	f := NewFakeRunner().WithCommand("hang", FakeResult{Block: true})
	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	if _, err := f.Shell(ctx, "hang"); !errors.Is(err, context.DeadlineExceeded) {
		t.Errorf("Shell() error = %v, want DeadlineExceeded", err)
	}
}
