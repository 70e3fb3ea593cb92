// Package process implements the ports.Executor boundary on top of os/exec.
package process

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os/exec"

	"github.com/aretw0/xdomcp/pkg/ports"
)

// DefaultBinary is the automation utility invoked when nothing else is
// configured.
const DefaultBinary = "xdotool"

// Executor runs the automation utility as a child process, one synchronous
// invocation per call, with stdout and stderr fully captured.
type Executor struct {
	binary string
	env    []string
}

// Option configures the executor.
type Option func(*Executor)

// WithBinary overrides the utility binary (name resolved via PATH, or an
// absolute path).
func WithBinary(binary string) Option {
	return func(e *Executor) {
		if binary != "" {
			e.binary = binary
		}
	}
}

// WithEnvironment appends KEY=VALUE entries to the child environment, on
// top of the parent process environment. Useful for DISPLAY/XAUTHORITY.
func WithEnvironment(env map[string]string) Option {
	return func(e *Executor) {
		for k, v := range env {
			e.env = append(e.env, fmt.Sprintf("%s=%s", k, v))
		}
	}
}

// NewExecutor creates an Executor for the configured binary.
func NewExecutor(opts ...Option) *Executor {
	e := &Executor{binary: DefaultBinary}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Binary returns the configured utility binary.
func (e *Executor) Binary() string {
	return e.binary
}

// Run implements ports.Executor. A process that starts and exits non-zero
// is not a Go error; it is reported through Outcome.Success so the caller
// can apply per-operation policy (window search treats it as zero matches).
func (e *Executor) Run(ctx context.Context, args ...string) (ports.Outcome, error) {
	cmd := exec.CommandContext(ctx, e.binary, args...)
	if len(e.env) > 0 {
		cmd.Env = append(cmd.Environ(), e.env...)
	}

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	err := cmd.Run()
	outcome := ports.Outcome{
		Success: err == nil,
		Stdout:  stdout.Bytes(),
		Stderr:  stderr.Bytes(),
	}

	var exitErr *exec.ExitError
	if err != nil && !errors.As(err, &exitErr) {
		// Launch failure: the utility never ran.
		return outcome, fmt.Errorf("failed to run %s: %w", e.binary, err)
	}
	return outcome, nil
}
