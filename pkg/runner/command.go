package runner

import (
	"context"
	"time"
)

// CommandRunner is an interface for executing one external tool with an
// argument list and getting the result back
type CommandRunner interface {
	RunCommand(ctx context.Context, args []string, opts Options) (*Result, error)
}

// Options enumerates what a caller may ask of a single invocation.
type Options struct {
	// CaptureOutput records stdout and stderr into the Result.
	CaptureOutput bool
	// InheritStdio connects the child to this process's stdin, stdout and stderr.
	// Combined with CaptureOutput the output is both shown and recorded.
	InheritStdio bool
	// WorkingDir overrides the tool's default working directory for this call.
	WorkingDir string
	// Timeout bounds the call when positive.
	Timeout time.Duration
}

// Streamed is the common case: the child talks to the terminal directly.
func Streamed() Options {
	return Options{InheritStdio: true}
}

// Captured records output without showing it.
func Captured() Options {
	return Options{CaptureOutput: true}
}

// Result of a single invocation
type Result struct {
	ExitCode int
	Stdout   string
	Stderr   string
	Duration time.Duration
}

// Success reports a zero exit code.
func (r *Result) Success() bool {
	return r != nil && r.ExitCode == 0
}
