package errors

import (
	"errors"
	"fmt"
)

// Error represents a structured error with code and context
type Error struct {
	Code     Code
	Domain   string
	Message  string
	Cause    error
	ExitCode int // child exit code, set for CodeProcessFailed
}

// New creates a new error with the given code, domain, message, and optional cause
func New(code Code, domain string, message string, cause error) *Error {
	return &Error{
		Code:    code,
		Domain:  domain,
		Message: message,
		Cause:   cause,
	}
}

// ToolNotFound reports an executable that is not on the host's search path.
func ToolNotFound(tool string, cause error) *Error {
	return New(CodeToolNotFound, tool, fmt.Sprintf("program not found: %s", tool), cause)
}

// ProcessFailed reports a child process that exited with a non-zero code.
func ProcessFailed(tool string, args []string, exitCode int, cause error) *Error {
	e := New(CodeProcessFailed, tool, fmt.Sprintf("command %v returned non-zero exit status %d", args, exitCode), cause)
	e.ExitCode = exitCode
	return e
}

// DirectoryNotFound reports a directory that was expected to exist.
func DirectoryNotFound(domain, dir string, cause error) *Error {
	return New(CodeDirectoryNotFound, domain, fmt.Sprintf("directory not found: %s", dir), cause)
}

// Error implements the error interface
func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("[%s:%s] %s: %v", e.Domain, e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("[%s:%s] %s", e.Domain, e.Code, e.Message)
}

// Unwrap returns the underlying error
func (e *Error) Unwrap() error {
	return e.Cause
}

// Is checks if the error matches the target error
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return e.Code == t.Code
}

// HasCode reports whether any error in err's chain carries code.
func HasCode(err error, code Code) bool {
	var e *Error
	if !errors.As(err, &e) {
		return false
	}
	if e.Code == code {
		return true
	}
	return HasCode(e.Cause, code)
}

// ExitCodeOf maps an error to a process exit status: the child's code for
// ProcessFailed, 1 for anything else, 0 for nil.
func ExitCodeOf(err error) int {
	if err == nil {
		return 0
	}
	var e *Error
	if errors.As(err, &e) && e.Code == CodeProcessFailed && e.ExitCode > 0 {
		return e.ExitCode
	}
	return 1
}
