package reporter_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaklabco/gotexlint/pkg/config"
	"github.com/yaklabco/gotexlint/pkg/lint"
	"github.com/yaklabco/gotexlint/pkg/reporter"
	"github.com/yaklabco/gotexlint/pkg/runner"
)

const testSource = "\\section{Intro}\npages 1–2 and 3—4\n\\cite{a}\\cite{b}\n"

// createTestResult returns one file with findings, one clean file, and one unreadable file.
func createTestResult() *runner.Result {
	return &runner.Result{
		Files: []runner.FileOutcome{
			{
				Path:   "paper.tex",
				Source: testSource,
				Report: &lint.Report{Entries: []lint.Entry{
					{
						RuleID:   "TEX005",
						RuleName: "unicode-dash",
						Label:    "Improper dash character",
						Severity: config.SeverityWarning,
						Lines:    []int{2},
					},
					{
						RuleID:   "TEX008",
						RuleName: "adjacent-citations",
						Label:    "Unmerged adjacent citations",
						Severity: config.SeverityError,
						Lines:    []int{3},
					},
				}},
			},
			{
				Path:   "clean.tex",
				Source: "fine\n",
				Report: &lint.Report{},
			},
			{
				Path:  "missing.tex",
				Error: errors.New("read missing.tex: no such file"),
			},
		},
		Stats: runner.Stats{
			FilesDiscovered: 3,
			FilesProcessed:  2,
			FilesErrored:    1,
			FilesWithIssues: 1,
			FindingsTotal:   2,
			FindingsBySeverity: map[config.Severity]int{
				config.SeverityWarning: 1,
				config.SeverityError:   1,
			},
		},
	}
}

func TestParseFormat(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		input   string
		want    reporter.Format
		wantErr bool
	}{
		{name: "empty defaults to text", input: "", want: reporter.FormatText},
		{name: "text", input: "text", want: reporter.FormatText},
		{name: "json", input: "json", want: reporter.FormatJSON},
		{name: "sarif", input: "sarif", want: reporter.FormatSARIF},
		{name: "html", input: "html", want: reporter.FormatHTML},
		{name: "unknown format", input: "xml", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := reporter.ParseFormat(tt.input)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestFormat_IsValid(t *testing.T) {
	t.Parallel()

	assert.True(t, reporter.FormatText.IsValid())
	assert.True(t, reporter.FormatJSON.IsValid())
	assert.True(t, reporter.FormatSARIF.IsValid())
	assert.True(t, reporter.FormatHTML.IsValid())
	assert.False(t, reporter.Format("diff").IsValid())
	assert.False(t, reporter.Format("").IsValid())
}

func TestNew(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		format  reporter.Format
		wantErr bool
	}{
		{name: "text reporter", format: reporter.FormatText},
		{name: "json reporter", format: reporter.FormatJSON},
		{name: "sarif reporter", format: reporter.FormatSARIF},
		{name: "html reporter", format: reporter.FormatHTML},
		{name: "empty defaults to text", format: ""},
		{name: "unknown format", format: "xml", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			var buf bytes.Buffer
			rep, err := reporter.New(reporter.Options{
				Writer: &buf,
				Format: tt.format,
				Color:  "never",
			})
			if tt.wantErr {
				require.Error(t, err)
				require.Nil(t, rep)
				return
			}
			require.NoError(t, err)
			assert.NotNil(t, rep)
		})
	}
}

func TestDefaultOptions(t *testing.T) {
	t.Parallel()

	opts := reporter.DefaultOptions()

	assert.NotNil(t, opts.Writer)
	assert.NotNil(t, opts.ErrorWriter)
	assert.Equal(t, reporter.FormatText, opts.Format)
	assert.Equal(t, "auto", opts.Color)
	assert.True(t, opts.ShowContext)
	assert.True(t, opts.ShowSummary)
	assert.False(t, opts.Compact)
	assert.Equal(t, config.RuleFormatName, opts.RuleFormat)
}

func TestTextReporter_NilResult(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	rep := reporter.NewTextReporter(reporter.Options{
		Writer:      &buf,
		Color:       "never",
		ShowSummary: true,
	})

	count, err := rep.Report(context.Background(), nil)
	require.NoError(t, err)
	assert.Equal(t, 0, count)
	assert.Contains(t, buf.String(), "No files to check")
}

func TestTextReporter_WithFindings(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	rep := reporter.NewTextReporter(reporter.Options{
		Writer:      &buf,
		Color:       "never",
		ShowSummary: true,
		RuleFormat:  config.RuleFormatID,
	})

	count, err := rep.Report(context.Background(), createTestResult())
	require.NoError(t, err)
	assert.Equal(t, 2, count)

	output := buf.String()
	assert.Contains(t, output, "paper.tex (2 findings)")
	assert.Contains(t, output, "Improper dash character  (TEX005)")
	assert.Contains(t, output, "2 │ pages 1–2 and 3—4")
	assert.Contains(t, output, "missing.tex: error: read missing.tex")
	assert.NotContains(t, output, "clean.tex")
	assert.Contains(t, output, "2 findings (1 errors, 1 warnings) in 1 file")
}

func TestTextReporter_NoContext(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	rep := reporter.NewTextReporter(reporter.Options{
		Writer: &buf,
		Color:  "never",
	})

	_, err := rep.Report(context.Background(), createTestResult())
	require.NoError(t, err)

	output := buf.String()
	assert.Contains(t, output, "(unicode-dash)  line 2")
	assert.NotContains(t, output, "│")
	assert.NotContains(t, output, "findings (")
}

func TestTextReporter_RelativePaths(t *testing.T) {
	t.Parallel()

	workDir := filepath.Join(string(filepath.Separator), "work")
	result := createTestResult()
	result.Files[0].Path = filepath.Join(workDir, "chapters", "paper.tex")

	var buf bytes.Buffer
	rep := reporter.NewTextReporter(reporter.Options{
		Writer:     &buf,
		Color:      "never",
		WorkingDir: workDir,
	})

	_, err := rep.Report(context.Background(), result)
	require.NoError(t, err)
	assert.Contains(t, buf.String(), filepath.Join("chapters", "paper.tex")+" (2 findings)")
	assert.NotContains(t, buf.String(), workDir+string(filepath.Separator))
}

func TestJSONReporter_NilResult(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	rep := reporter.NewJSONReporter(reporter.Options{Writer: &buf})

	count, err := rep.Report(context.Background(), nil)
	require.NoError(t, err)
	assert.Equal(t, 0, count)

	var output reporter.JSONOutput
	require.NoError(t, json.Unmarshal(buf.Bytes(), &output))
	assert.Equal(t, "1.0.0", output.Version)
	assert.Empty(t, output.Files)
}

func TestJSONReporter_WithFindings(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	rep := reporter.NewJSONReporter(reporter.Options{Writer: &buf})

	count, err := rep.Report(context.Background(), createTestResult())
	require.NoError(t, err)
	assert.Equal(t, 2, count)

	var output reporter.JSONOutput
	require.NoError(t, json.Unmarshal(buf.Bytes(), &output))

	require.Len(t, output.Files, 3)
	assert.Equal(t, "paper.tex", output.Files[0].Path)
	require.Len(t, output.Files[0].Findings, 2)
	assert.Equal(t, reporter.JSONFinding{
		RuleID:   "TEX005",
		RuleName: "unicode-dash",
		Label:    "Improper dash character",
		Severity: "warning",
		Lines:    []int{2},
	}, output.Files[0].Findings[0])
	assert.Empty(t, output.Files[1].Findings)
	assert.Contains(t, output.Files[2].Error, "no such file")

	assert.Equal(t, 2, output.Summary.FilesChecked)
	assert.Equal(t, 1, output.Summary.FilesWithIssues)
	assert.Equal(t, 1, output.Summary.FilesErrored)
	assert.Equal(t, 2, output.Summary.TotalFindings)
	assert.Equal(t, map[string]int{"warning": 1, "error": 1}, output.Summary.BySeverity)
}

func TestJSONReporter_Compact(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	rep := reporter.NewJSONReporter(reporter.Options{
		Writer:  &buf,
		Compact: true,
	})

	_, err := rep.Report(context.Background(), createTestResult())
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	assert.Len(t, lines, 1)
}

func TestSARIFReporter(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	opts := reporter.DefaultOptions()
	opts.Writer = &buf
	opts.ToolVersion = "1.2.3"

	count, err := reporter.NewSARIFReporter(opts).Report(context.Background(), createTestResult())
	require.NoError(t, err)
	assert.Equal(t, 2, count)

	var output reporter.SARIFOutput
	require.NoError(t, json.Unmarshal(buf.Bytes(), &output))

	assert.Equal(t, "2.1.0", output.Version)
	require.Len(t, output.Runs, 1)

	run := output.Runs[0]
	assert.Equal(t, "gotexlint", run.Tool.Driver.Name)
	assert.Equal(t, "1.2.3", run.Tool.Driver.Version)
	require.Len(t, run.Tool.Driver.Rules, 2)
	assert.Equal(t, "unicode-dash", run.Tool.Driver.Rules[0].Name)
	assert.Equal(t, "error", run.Tool.Driver.Rules[1].DefaultConfig.Level)

	require.Len(t, run.Results, 2)
	assert.Equal(t, "TEX008", run.Results[1].RuleID)
	assert.Equal(t, 1, run.Results[1].RuleIndex)
	assert.Equal(t, "paper.tex", run.Results[1].Locations[0].PhysicalLocation.ArtifactLocation.URI)
	assert.Equal(t, 3, run.Results[1].Locations[0].PhysicalLocation.Region.StartLine)
}

func TestSARIFReporter_OneResultPerLine(t *testing.T) {
	t.Parallel()

	result := &runner.Result{Files: []runner.FileOutcome{{
		Path: "a.tex",
		Report: &lint.Report{Entries: []lint.Entry{{
			RuleID:   "TEX009",
			RuleName: "self-reference",
			Label:    "Self-referential phrase",
			Severity: config.SeverityInfo,
			Lines:    []int{1, 4, 9},
		}}},
	}}}

	var buf bytes.Buffer
	count, err := reporter.NewSARIFReporter(reporter.Options{Writer: &buf}).Report(context.Background(), result)
	require.NoError(t, err)
	assert.Equal(t, 3, count)

	var output reporter.SARIFOutput
	require.NoError(t, json.Unmarshal(buf.Bytes(), &output))
	require.Len(t, output.Runs[0].Results, 3)
	assert.Equal(t, "note", output.Runs[0].Results[0].Level)
	assert.Len(t, output.Runs[0].Tool.Driver.Rules, 1)
}
