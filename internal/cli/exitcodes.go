package cli

import (
	"errors"

	"github.com/yaklabco/gotexlint/internal/configloader"
	"github.com/yaklabco/gotexlint/pkg/runner"
)

// Exit codes for gotexlint.
const (
	// ExitSuccess indicates successful execution with no issues.
	ExitSuccess = 0

	// ExitLintErrors indicates lint found error-severity findings, or any
	// finding in strict mode.
	ExitLintErrors = 1

	// ExitInvalidUsage indicates invalid command-line usage.
	ExitInvalidUsage = 64

	// ExitConfigError indicates configuration file errors.
	ExitConfigError = 65

	// ExitInternalError indicates an internal error.
	ExitInternalError = 70

	// ExitIOError indicates file I/O errors.
	ExitIOError = 74
)

var (
	// ErrLintIssuesFound is returned when lint issues are found.
	ErrLintIssuesFound = errors.New("lint issues found")

	// ErrFilesUnreadable is returned when some files could not be read.
	ErrFilesUnreadable = errors.New("some files could not be read")
)

// exitError attaches a process exit code to an error.
type exitError struct {
	code int
	err  error
}

func (e *exitError) Error() string { return e.err.Error() }

func (e *exitError) Unwrap() error { return e.err }

func withExitCode(code int, err error) error {
	if err == nil {
		return nil
	}
	return &exitError{code: code, err: err}
}

// ExitCodeFromResult determines the exit code based on result and strict mode.
// Findings take precedence over unreadable files.
func ExitCodeFromResult(result *runner.Result, strict bool) int {
	if result == nil {
		return ExitSuccess
	}

	if result.HasFailures() {
		return ExitLintErrors
	}

	if strict && result.HasIssues() {
		return ExitLintErrors
	}

	if result.HasErrors() {
		return ExitIOError
	}

	return ExitSuccess
}

// ExitCode maps an error returned by the root command to a process exit code.
func ExitCode(err error) int {
	if err == nil {
		return ExitSuccess
	}

	var coded *exitError
	if errors.As(err, &coded) {
		return coded.code
	}

	var validation *configloader.ValidationError
	switch {
	case errors.Is(err, ErrLintIssuesFound):
		return ExitLintErrors
	case errors.Is(err, ErrFilesUnreadable):
		return ExitIOError
	case errors.As(err, &validation):
		return ExitConfigError
	default:
		return ExitInternalError
	}
}

// IsReportedError reports whether err only signals an exit status whose
// details have already been printed.
func IsReportedError(err error) bool {
	return errors.Is(err, ErrLintIssuesFound) || errors.Is(err, ErrFilesUnreadable)
}
