package runner

import (
	"bytes"
	"context"
	stderrors "errors"
	"fmt"
	"io"
	"os"
	"os/exec"
	"strings"
	"time"

	"metabuild/pkg/domain/errors"
	"metabuild/pkg/logger"
	"metabuild/pkg/progress"
)

// Injection points for unit tests.
var (
	lookPath    = exec.LookPath
	execCommand = exec.CommandContext
)

// Tool is a handle on one external executable. The executable is resolved
// once, when the handle is created.
type Tool struct {
	executable   string
	path         string
	workingDir   string
	checkSuccess bool
	progress     progress.Indicator
}

var _ CommandRunner = &Tool{}

// ToolOption configures a Tool at construction.
type ToolOption func(*Tool)

// WithWorkingDir sets the default working directory of every invocation.
func WithWorkingDir(dir string) ToolOption {
	return func(t *Tool) { t.workingDir = dir }
}

// WithCheckSuccess turns exit code enforcement on or off. It is on by default.
func WithCheckSuccess(check bool) ToolOption {
	return func(t *Tool) { t.checkSuccess = check }
}

// WithIndicator replaces the spinner shown during captured invocations.
func WithIndicator(ind progress.Indicator) ToolOption {
	return func(t *Tool) { t.progress = ind }
}

// NewTool resolves executable on the search path and returns a handle for it.
// It fails with a TOOL_NOT_FOUND error when the executable cannot be found.
func NewTool(executable string, opts ...ToolOption) (*Tool, error) {
	path, err := lookPath(executable)
	if err != nil {
		return nil, errors.ToolNotFound(executable, err)
	}
	t := &Tool{
		executable:   executable,
		path:         path,
		workingDir:   ".",
		checkSuccess: true,
	}
	for _, opt := range opts {
		opt(t)
	}
	if t.progress == nil {
		t.progress = progress.New()
	}
	return t, nil
}

// Executable returns the name the tool was created with.
func (t *Tool) Executable() string {
	return t.executable
}

// Path returns the resolved location of the executable.
func (t *Tool) Path() string {
	return t.path
}

// RunCommand runs the tool with args. When success enforcement is on, a
// non-zero exit is reported as a PROCESS_FAILED error carrying the exit code;
// the result is returned in both cases.
func (t *Tool) RunCommand(ctx context.Context, args []string, opts Options) (*Result, error) {
	command := append([]string{t.executable}, args...)
	logger.Command(command)

	if opts.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, opts.Timeout)
		defer cancel()
	}

	cmd := execCommand(ctx, t.path, args...)
	cmd.Dir = t.workingDir
	if opts.WorkingDir != "" {
		cmd.Dir = opts.WorkingDir
	}

	var stdout, stderr bytes.Buffer
	switch {
	case opts.CaptureOutput && opts.InheritStdio:
		cmd.Stdin = os.Stdin
		cmd.Stdout = io.MultiWriter(os.Stdout, &stdout)
		cmd.Stderr = io.MultiWriter(os.Stderr, &stderr)
	case opts.CaptureOutput:
		cmd.Stdout = &stdout
		cmd.Stderr = &stderr
	case opts.InheritStdio:
		cmd.Stdin = os.Stdin
		cmd.Stdout = os.Stdout
		cmd.Stderr = os.Stderr
	}

	quiet := opts.CaptureOutput && !opts.InheritStdio
	if quiet {
		t.progress.Start(strings.Join(command, " "))
	}
	start := time.Now()
	err := cmd.Run()
	if quiet {
		t.progress.Stop()
	}

	result := &Result{
		Stdout:   stdout.String(),
		Stderr:   stderr.String(),
		Duration: time.Since(start),
	}
	if err != nil {
		var exitErr *exec.ExitError
		if !stderrors.As(err, &exitErr) {
			return result, errors.New(errors.CodeToolExecutionFailed, t.executable, fmt.Sprintf("failed to run %v", command), err)
		}
		result.ExitCode = exitErr.ExitCode()
	}
	logger.Debugf("%s exited with code %d after %s", t.executable, result.ExitCode, result.Duration.Round(time.Millisecond))

	if t.checkSuccess && result.ExitCode != 0 {
		return result, errors.ProcessFailed(t.executable, command, result.ExitCode, err)
	}
	return result, nil
}
