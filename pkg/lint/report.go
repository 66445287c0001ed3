package lint

import "github.com/yaklabco/gotexlint/pkg/config"

// Entry holds the findings of one rule.
type Entry struct {
	RuleID   string          `json:"rule_id"`
	RuleName string          `json:"rule_name"`
	Label    string          `json:"label"`
	Severity config.Severity `json:"severity"`
	Lines    []int           `json:"lines"`
}

// Report is the result of running the engine over one document.
// Entries appear in registration order; rules without findings are absent.
type Report struct {
	Entries []Entry `json:"entries"`

	// RuleErrors maps rule IDs to the failures recovered while running them.
	// Failed rules never appear in Entries.
	RuleErrors map[string]error `json:"-"`
}

// Empty reports whether no rule produced findings.
func (r *Report) Empty() bool {
	return r == nil || len(r.Entries) == 0
}

// Lookup returns the entry for a rule ID, name or label.
func (r *Report) Lookup(key string) (Entry, bool) {
	if r == nil {
		return Entry{}, false
	}
	for _, e := range r.Entries {
		if e.RuleID == key || e.RuleName == key || e.Label == key {
			return e, true
		}
	}
	return Entry{}, false
}

// Lines returns the flagged lines for a rule ID, name or label, or nil.
func (r *Report) Lines(key string) []int {
	e, ok := r.Lookup(key)
	if !ok {
		return nil
	}
	return e.Lines
}

// Labels returns a label to lines view of the report.
func (r *Report) Labels() map[string][]int {
	out := make(map[string][]int)
	if r == nil {
		return out
	}
	for _, e := range r.Entries {
		out[e.Label] = e.Lines
	}
	return out
}

// FindingCount returns the total number of flagged lines across all rules.
func (r *Report) FindingCount() int {
	if r == nil {
		return 0
	}
	n := 0
	for _, e := range r.Entries {
		n += len(e.Lines)
	}
	return n
}

// CountBySeverity returns the number of flagged lines per severity.
func (r *Report) CountBySeverity() map[config.Severity]int {
	out := make(map[config.Severity]int)
	if r == nil {
		return out
	}
	for _, e := range r.Entries {
		out[e.Severity] += len(e.Lines)
	}
	return out
}

// FirstLine returns the smallest flagged line in the report.
// The boolean is false for an empty report.
func (r *Report) FirstLine() (int, bool) {
	first, found := 0, false
	if r == nil {
		return 0, false
	}
	for _, e := range r.Entries {
		if len(e.Lines) == 0 {
			continue
		}
		if !found || e.Lines[0] < first {
			first, found = e.Lines[0], true
		}
	}
	return first, found
}
