package analysis

import "github.com/yaklabco/gotexlint/pkg/config"

// Report contains pre-computed views of lint results.
// Computed once by Analyze and shared by renderers.
type Report struct {
	// ByFile groups flagged lines by file path. Files without findings are omitted.
	ByFile []FileAnalysis `json:"byFile,omitempty"`

	// ByRule groups flagged lines by rule.
	ByRule []RuleAnalysis `json:"byRule,omitempty"`

	// Totals contains aggregate statistics.
	Totals Totals `json:"summary"`
}

// Totals contains aggregate statistics for the report.
type Totals struct {
	Files           int `json:"filesChecked"`
	FilesWithIssues int `json:"filesWithIssues"`
	FilesErrored    int `json:"filesErrored"`
	Lines           int `json:"flaggedLines"`
	Errors          int `json:"errors"`
	Warnings        int `json:"warnings"`
	Infos           int `json:"infos"`
}

// HasIssues returns true if any line was flagged.
func (t Totals) HasIssues() bool {
	return t.Lines > 0
}

// HasErrors returns true if any error-severity line was flagged.
func (t Totals) HasErrors() bool {
	return t.Errors > 0
}

// FileAnalysis contains aggregated data for a single file.
type FileAnalysis struct {
	Path     string   `json:"path"`
	Lines    int      `json:"lines"`
	Errors   int      `json:"errors"`
	Warnings int      `json:"warnings"`
	Infos    int      `json:"infos"`
	Rules    []string `json:"rules,omitempty"`
}

// RuleAnalysis contains aggregated data for a single rule.
type RuleAnalysis struct {
	RuleID   string          `json:"ruleId"`
	RuleName string          `json:"ruleName"`
	Label    string          `json:"label"`
	Severity config.Severity `json:"severity"`
	Lines    int             `json:"lines"`
	Files    []string        `json:"files,omitempty"`
}

// addCounts adds n flagged lines of severity sev to the three counters.
func addCounts(sev config.Severity, n int, errors, warnings, infos *int) {
	switch sev {
	case config.SeverityError:
		*errors += n
	case config.SeverityInfo:
		*infos += n
	default:
		*warnings += n
	}
}
