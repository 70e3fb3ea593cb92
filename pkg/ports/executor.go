package ports

import "context"

// Outcome is the captured result of one finished subprocess invocation.
// Success reflects the exit status; Stdout and Stderr are fully buffered
// (no streaming, the process has already exited when an Outcome exists).
type Outcome struct {
	Success bool
	Stdout  []byte
	Stderr  []byte
}

// Executor runs the external automation utility once, synchronously, with
// the given argument vector.
//
// A non-nil error means the process could not be started at all (missing
// binary, permission denied); it is distinct from the utility running and
// exiting non-zero, which is reported as Outcome.Success == false with the
// diagnostic text in Stderr.
type Executor interface {
	Run(ctx context.Context, args ...string) (Outcome, error)
}
