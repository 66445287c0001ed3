package lint

import (
	"maps"

	"github.com/yaklabco/gotexlint/pkg/config"
)

// BaseRule provides a default implementation of the Rule interface.
// Embed this in rule implementations and override methods as needed.
//
// Fields are unexported to avoid stutter and name collisions with interface methods.
// Use NewBaseRule to construct one.
type BaseRule struct {
	id       string         // Unique identifier (e.g., "TEX001")
	name     string         // Kebab-case name
	label    string         // Human-readable report label
	desc     string         // Detailed description
	tags     []string       // Categorization tags
	defaults map[string]any // Default option values
}

// NewBaseRule creates a BaseRule with the given properties.
func NewBaseRule(id, name, label, desc string, tags []string) BaseRule {
	return BaseRule{
		id:    id,
		name:  name,
		label: label,
		desc:  desc,
		tags:  tags,
	}
}

// WithDefaults returns a copy of the rule with the given default options.
func (r BaseRule) WithDefaults(defaults map[string]any) BaseRule {
	r.defaults = defaults
	return r
}

// ID returns the unique identifier for this rule.
func (r *BaseRule) ID() string {
	return r.id
}

// Name returns the kebab-case name of the rule.
func (r *BaseRule) Name() string {
	return r.name
}

// Label returns the human-readable label of the rule.
func (r *BaseRule) Label() string {
	return r.label
}

// Description returns a detailed description of what the rule checks.
func (r *BaseRule) Description() string {
	return r.desc
}

// DefaultEnabled returns whether the rule is enabled by default.
// Override this method to change the default.
func (r *BaseRule) DefaultEnabled() bool {
	return true
}

// DefaultSeverity returns the default severity for this rule.
// Override this method to change the default.
func (r *BaseRule) DefaultSeverity() config.Severity {
	return config.SeverityWarning
}

// Tags returns categorization tags for this rule.
func (r *BaseRule) Tags() []string {
	return r.tags
}

// DefaultOptions returns a copy of the rule's default options.
func (r *BaseRule) DefaultOptions() map[string]any {
	if len(r.defaults) == 0 {
		return nil
	}
	return maps.Clone(r.defaults)
}

// Check must be overridden by concrete rule implementations.
// The default implementation reports nothing.
func (r *BaseRule) Check(_ *RuleContext) []int {
	return nil
}
