package ffmpeg

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
)

// ExitStatus is the exit code of one tool invocation. Zero means success.
type ExitStatus int

// ExitOK is the status of a successful run.
const ExitOK ExitStatus = 0

// ExecResult holds the outcome of a single invocation that ran to exit.
type ExecResult struct {
	Status ExitStatus
	Stderr string
}

// Transcoder runs the external media tool with args and blocks until it
// exits. A non-nil error means the tool could not be run at all (for
// example [ErrToolNotFound]) or ctx was cancelled; a tool that ran and
// failed is reported through ExecResult.Status.
type Transcoder interface {
	Run(ctx context.Context, args []string) (ExecResult, error)
}

// Exec is the Transcoder backed by a real process.
type Exec struct {
	Binary  string
	Verbose bool      // Tee stderr live to Stderr.
	Stdout  io.Writer // Defaults to discard.
	Stderr  io.Writer // Live sink used when Verbose; defaults to os.Stderr.
}

// NewExec returns an Exec for binary (resolved on PATH when it has no
// path separator).
func NewExec(binary string, verbose bool) *Exec {
	return &Exec{Binary: binary, Verbose: verbose}
}

// Run executes the binary with args. When verbose, stderr is tee'd to the
// live sink in real time; it is always captured for the failure report.
func (e *Exec) Run(ctx context.Context, args []string) (ExecResult, error) {
	cmd := exec.CommandContext(ctx, e.Binary, args...)

	var stderrBuf bytes.Buffer
	if e.Verbose {
		live := e.Stderr
		if live == nil {
			live = os.Stderr
		}
		cmd.Stderr = io.MultiWriter(&stderrBuf, live)
		cmd.Stdout = e.Stdout
		if cmd.Stdout == nil {
			cmd.Stdout = os.Stdout
		}
	} else {
		cmd.Stderr = &stderrBuf
		cmd.Stdout = e.Stdout
	}

	err := cmd.Run()
	if err == nil {
		return ExecResult{Status: ExitOK, Stderr: stderrBuf.String()}, nil
	}
	if errors.Is(err, exec.ErrNotFound) || errors.Is(err, os.ErrNotExist) {
		return ExecResult{}, fmt.Errorf("%w: %s", ErrToolNotFound, e.Binary)
	}
	if ctxErr := ctx.Err(); ctxErr != nil {
		return ExecResult{Stderr: stderrBuf.String()}, ctxErr
	}

	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		return ExecResult{
			Status: ExitStatus(exitErr.ExitCode()),
			Stderr: stderrBuf.String(),
		}, nil
	}
	return ExecResult{Stderr: stderrBuf.String()}, fmt.Errorf("run %s: %w", e.Binary, err)
}

var _ Transcoder = (*Exec)(nil)
