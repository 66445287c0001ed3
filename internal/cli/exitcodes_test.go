package cli_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/yaklabco/gotexlint/internal/cli"
	"github.com/yaklabco/gotexlint/internal/configloader"
	"github.com/yaklabco/gotexlint/pkg/config"
	"github.com/yaklabco/gotexlint/pkg/lint"
	"github.com/yaklabco/gotexlint/pkg/runner"
)

func outcome(path string, sev config.Severity) runner.FileOutcome {
	return runner.FileOutcome{
		Path: path,
		Report: &lint.Report{Entries: []lint.Entry{{
			RuleID:   "TEX005",
			RuleName: "unicode-dash",
			Label:    "Improper dash character",
			Severity: sev,
			Lines:    []int{1},
		}}},
	}
}

func TestExitCodeFromResult(t *testing.T) {
	t.Parallel()

	unreadable := runner.FileOutcome{Path: "gone.tex", Error: errors.New("read failed")}

	tests := []struct {
		name   string
		result *runner.Result
		strict bool
		want   int
	}{
		{name: "nil result", result: nil, want: cli.ExitSuccess},
		{name: "clean", result: runner.NewResult(runner.FileOutcome{Path: "a.tex", Report: &lint.Report{}}), want: cli.ExitSuccess},
		{name: "warnings", result: runner.NewResult(outcome("a.tex", config.SeverityWarning)), want: cli.ExitSuccess},
		{name: "warnings strict", result: runner.NewResult(outcome("a.tex", config.SeverityWarning)), strict: true, want: cli.ExitLintErrors},
		{name: "errors", result: runner.NewResult(outcome("a.tex", config.SeverityError)), want: cli.ExitLintErrors},
		{name: "unreadable", result: runner.NewResult(unreadable), want: cli.ExitIOError},
		{
			name:   "findings win over unreadable",
			result: runner.NewResult(unreadable, outcome("a.tex", config.SeverityError)),
			want:   cli.ExitLintErrors,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, cli.ExitCodeFromResult(tt.result, tt.strict))
		})
	}
}

func TestExitCode(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		err  error
		want int
	}{
		{name: "nil", err: nil, want: cli.ExitSuccess},
		{name: "lint issues", err: cli.ErrLintIssuesFound, want: cli.ExitLintErrors},
		{name: "unreadable files", err: cli.ErrFilesUnreadable, want: cli.ExitIOError},
		{
			name: "validation error",
			err:  fmt.Errorf("load: %w", &configloader.ValidationError{Field: "jobs", Message: "bad"}),
			want: cli.ExitConfigError,
		},
		{name: "unexpected", err: errors.New("boom"), want: cli.ExitInternalError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, cli.ExitCode(tt.err))
		})
	}
}

func TestIsReportedError(t *testing.T) {
	t.Parallel()

	assert.True(t, cli.IsReportedError(cli.ErrLintIssuesFound))
	assert.True(t, cli.IsReportedError(fmt.Errorf("wrapped: %w", cli.ErrFilesUnreadable)))
	assert.False(t, cli.IsReportedError(errors.New("boom")))
}
