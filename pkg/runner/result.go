package runner

import (
	"github.com/yaklabco/gotexlint/pkg/config"
	"github.com/yaklabco/gotexlint/pkg/lint"
)

// FileOutcome is the result of linting one file.
type FileOutcome struct {
	// Path is the file path that was processed.
	Path string

	// Report holds the engine findings. Nil if Error is set.
	Report *lint.Report

	// Source is the original file content, used for context lines.
	Source string

	// Error is set if the file could not be read.
	Error error
}

// HasIssues reports whether the file has any findings.
func (o FileOutcome) HasIssues() bool {
	return !o.Report.Empty()
}

// Stats captures aggregate information about a run.
type Stats struct {
	// FilesDiscovered is the total number of files found during discovery.
	FilesDiscovered int

	// FilesProcessed is the number of files successfully linted.
	FilesProcessed int

	// FilesErrored is the number of files that could not be read.
	FilesErrored int

	// FilesWithIssues is the number of files with at least one finding.
	FilesWithIssues int

	// FindingsTotal is the total number of flagged lines across all files.
	FindingsTotal int

	// FindingsBySeverity maps severity levels to flagged line counts.
	FindingsBySeverity map[config.Severity]int

	// RuleFailures is the number of rule panics recovered by the engine.
	RuleFailures int
}

// Result is the overall runner result.
type Result struct {
	// Files contains the outcome for each processed file, sorted by path.
	Files []FileOutcome

	// Stats contains aggregate statistics for the run.
	Stats Stats
}

// HasFailures reports whether any finding with error severity occurred.
func (r *Result) HasFailures() bool {
	if r == nil {
		return false
	}
	return r.Stats.FindingsBySeverity[config.SeverityError] > 0
}

// HasIssues reports whether any finding occurred.
func (r *Result) HasIssues() bool {
	if r == nil {
		return false
	}
	return r.Stats.FindingsTotal > 0
}

// HasErrors reports whether any file could not be processed.
func (r *Result) HasErrors() bool {
	if r == nil {
		return false
	}
	return r.Stats.FilesErrored > 0
}

// NewResult aggregates outcomes produced outside a Runner, such as the
// single-document checks of the watch command.
func NewResult(outcomes ...FileOutcome) *Result {
	result := &Result{
		Files: make([]FileOutcome, 0, len(outcomes)),
		Stats: newStats(),
	}
	result.Stats.FilesDiscovered = len(outcomes)
	for _, outcome := range outcomes {
		result.accumulate(outcome)
	}
	return result
}

func newStats() Stats {
	return Stats{
		FindingsBySeverity: make(map[config.Severity]int),
	}
}

// accumulate updates the result with a file outcome.
func (r *Result) accumulate(outcome FileOutcome) {
	r.Files = append(r.Files, outcome)

	if outcome.Error != nil {
		r.Stats.FilesErrored++
		return
	}
	if outcome.Report == nil {
		return
	}

	r.Stats.FilesProcessed++
	r.Stats.RuleFailures += len(outcome.Report.RuleErrors)

	if outcome.HasIssues() {
		r.Stats.FilesWithIssues++
	}
	r.Stats.FindingsTotal += outcome.Report.FindingCount()
	for sev, count := range outcome.Report.CountBySeverity() {
		r.Stats.FindingsBySeverity[sev] += count
	}
}
