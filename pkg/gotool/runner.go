// Package gotool runs the Go toolchain on behalf of the checks.
package gotool

import (
	"bytes"
	"context"
	"os/exec"
	"time"
)

// DefaultTimeout bounds a single toolchain invocation.
const DefaultTimeout = 30 * time.Second

// Runner abstracts command execution for testability.
type Runner interface {
	LookPath(file string) (string, error)
	RunCommandContext(ctx context.Context, dir, name string, args ...string) (stdout, stderr string, err error)
}

// RealRunner implements Runner using actual OS commands.
type RealRunner struct{}

// LookPath searches for an executable in PATH.
func (r *RealRunner) LookPath(file string) (string, error) {
	return exec.LookPath(file)
}

// RunCommandContext executes a command in dir and returns its output.
// An empty dir runs in the current working directory.
func (r *RealRunner) RunCommandContext(ctx context.Context, dir, name string, args ...string) (stdout, stderr string, err error) {
	cmd := exec.CommandContext(ctx, name, args...)
	cmd.Dir = dir
	var outBuf, errBuf bytes.Buffer
	cmd.Stdout = &outBuf
	cmd.Stderr = &errBuf
	err = cmd.Run()
	return outBuf.String(), errBuf.String(), err
}
