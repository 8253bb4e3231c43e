package runner

import (
	"context"
	"errors"
	"runtime"
	"strings"
	"testing"
	"time"

	"github.com/clideps/clideps/src/internal/constants"
)

func skipOnWindows(t *testing.T) {
	t.Helper()
	if runtime.GOOS == constants.OSWindows {
		t.Skip("uses sh syntax")
	}
}

func TestSystemRunner_Shell(t *testing.T) {
	skipOnWindows(t)
	r := NewSystemRunner(5 * time.Second)

	out, err := r.Shell(context.Background(), "echo hello; echo ignored >&2")
	if err != nil {
		t.Fatalf("Shell() error = %v", err)
	}
	if strings.TrimSpace(string(out)) != "hello" {
		t.Errorf("Shell() = %q, want stdout only", out)
	}
}

func TestSystemRunner_ExitError(t *testing.T) {
	skipOnWindows(t)
	r := NewSystemRunner(5 * time.Second)

	_, err := r.Shell(context.Background(), "echo broken >&2; exit 3")
	if !IsExitError(err) {
		t.Fatalf("Shell() error = %v, want ExitError", err)
	}
	var exitErr *ExitError
	errors.As(err, &exitErr)
	if exitErr.Code != 3 {
		t.Errorf("Code = %d, want 3", exitErr.Code)
	}
	if exitErr.Stderr != "broken" {
		t.Errorf("Stderr = %q, want %q", exitErr.Stderr, "broken")
	}
	if !strings.Contains(err.Error(), "exit 3") {
		t.Errorf("Error() = %q, should name the command", err)
	}
}

func TestSystemRunner_NoStdin(t *testing.T) {
	skipOnWindows(t)
	r := NewSystemRunner(5 * time.Second)

	// cat would block forever if stdin were inherited.
	out, err := r.Shell(context.Background(), "cat; echo done")
	if err != nil {
		t.Fatalf("Shell() error = %v", err)
	}
	if strings.TrimSpace(string(out)) != "done" {
		t.Errorf("Shell() = %q, want %q", out, "done")
	}
}

func TestSystemRunner_Timeout(t *testing.T) {
	skipOnWindows(t)
	r := NewSystemRunner(200 * time.Millisecond)

	start := time.Now()
	_, err := r.Shell(context.Background(), "sleep 30 & sleep 30")
	elapsed := time.Since(start)

	if err == nil {
		t.Fatal("Shell() error = nil, want timeout")
	}
	if !errors.Is(err, context.DeadlineExceeded) {
		t.Errorf("Shell() error = %v, want DeadlineExceeded", err)
	}
	if IsExitError(err) {
		t.Error("timeout should not be reported as an exit status")
	}
	if elapsed > 5*time.Second {
		t.Errorf("Shell() took %s, the process group was not killed", elapsed)
	}
}

func TestSystemRunner_DefaultTimeout(t *testing.T) {
	skipOnWindows(t)
	r := &SystemRunner{}
	ctx, cancel := context.WithTimeout(context.Background(), 100*time.Millisecond)
	defer cancel()

	_, err := r.Shell(ctx, "sleep 30")
	if !errors.Is(err, context.DeadlineExceeded) {
		t.Errorf("Shell() error = %v, want the caller's deadline to apply", err)
	}
}

func TestSystemRunner_LookPath(t *testing.T) {
	skipOnWindows(t)
	r := &SystemRunner{}

	if _, err := r.LookPath("sh"); err != nil {
		t.Errorf("LookPath(sh) error = %v", err)
	}
	if _, err := r.LookPath("clideps-no-such-command"); err == nil {
		t.Error("LookPath() of a missing command should fail")
	}
}

func TestExitError_Error(t *testing.T) {
	e := &ExitError{Command: "brew --version", Code: 1}
	if got := e.Error(); got != `command "brew --version" exited with status 1` {
		t.Errorf("Error() = %q", got)
	}
	e.Stderr = "boom"
	if !strings.HasSuffix(e.Error(), ": boom") {
		t.Errorf("Error() = %q, want stderr appended", e.Error())
	}
}
