// Package lint provides the rule engine, reports, and registry for gotexlint.
package lint

import "github.com/yaklabco/gotexlint/pkg/config"

// Rule defines the interface that all lint rules must implement.
type Rule interface {
	// ID returns the unique identifier for this rule (e.g., "TEX001").
	ID() string

	// Name returns the kebab-case name of the rule (e.g., "ref-spacing").
	Name() string

	// Label returns the human-readable label used as the report key.
	Label() string

	// Description returns a detailed description of what the rule checks.
	Description() string

	// DefaultEnabled returns whether the rule is enabled by default.
	DefaultEnabled() bool

	// DefaultSeverity returns the default severity for this rule.
	DefaultSeverity() config.Severity

	// Tags returns categorization tags for this rule (e.g., ["floats"]).
	Tags() []string

	// DefaultOptions returns the option values the rule uses when the
	// configuration does not set them. The returned map is a fresh copy.
	DefaultOptions() map[string]any

	// Check runs the rule against the comment-stripped document and returns
	// the 1-based line numbers of its findings.
	//
	// Rules must:
	//   - Be total: any input, including "", yields a result without panicking.
	//   - Return ascending, distinct line numbers (LineSet does this).
	//   - Keep all state local to the call.
	Check(ctx *RuleContext) []int
}
