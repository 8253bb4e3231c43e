// Package runner executes the shell probes clideps uses to detect tools.
package runner

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os/exec"
	"runtime"
	"strings"
	"time"

	"github.com/clideps/clideps/src/internal/constants"
)

// DefaultTimeout bounds every command run by SystemRunner.
const DefaultTimeout = 10 * time.Second

// Runner executes system commands. Mockable for tests.
type Runner interface {
	// LookPath checks if a binary is in PATH.
	LookPath(name string) (string, error)
	// Shell runs a command line through the platform command interpreter
	// and returns its standard output.
	Shell(ctx context.Context, command string) ([]byte, error)
}

// ExitError is returned when a command exits with a non-zero status.
type ExitError struct {
	Command string
	Code    int
	Stderr  string
}

func (e *ExitError) Error() string {
	msg := fmt.Sprintf("command %q exited with status %d", e.Command, e.Code)
	if e.Stderr != "" {
		msg += ": " + e.Stderr
	}
	return msg
}

// IsExitError checks if an error is a non-zero exit.
func IsExitError(err error) bool {
	var target *ExitError
	return errors.As(err, &target)
}

// SystemRunner executes real system commands.
type SystemRunner struct {
	// Timeout applies to each command. Zero means DefaultTimeout.
	Timeout time.Duration
}

// NewSystemRunner creates a runner with the given per-command timeout.
func NewSystemRunner(timeout time.Duration) *SystemRunner {
	return &SystemRunner{Timeout: timeout}
}

func (r *SystemRunner) LookPath(name string) (string, error) {
	return exec.LookPath(name)
}

// Shell runs command with no stdin, capturing stdout and stderr. The
// command and anything it spawns are killed when the timeout expires.
func (r *SystemRunner) Shell(ctx context.Context, command string) ([]byte, error) {
	timeout := r.Timeout
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	name, args := shellCommand(command)
	cmd := exec.CommandContext(ctx, name, args...)
	var stdout, stderr bytes.Buffer
	cmd.Stdin = nil
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr
	// Grandchildren holding the pipes open must not stall Wait.
	cmd.WaitDelay = time.Second
	setProcessGroup(cmd)

	err := cmd.Run()
	if err == nil {
		return stdout.Bytes(), nil
	}
	if ctxErr := ctx.Err(); ctxErr != nil {
		return stdout.Bytes(), fmt.Errorf("command %q timed out after %s: %w", command, timeout, ctxErr)
	}

	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		return stdout.Bytes(), &ExitError{
			Command: command,
			Code:    exitErr.ExitCode(),
			Stderr:  strings.TrimSpace(stderr.String()),
		}
	}
	return stdout.Bytes(), fmt.Errorf("failed to run %q: %w", command, err)
}

func shellCommand(command string) (string, []string) {
	if runtime.GOOS == constants.OSWindows {
		return constants.ShellCmd, []string{constants.ShellCmdFlag, command}
	}
	return constants.ShellSh, []string{constants.ShellShFlag, command}
}
