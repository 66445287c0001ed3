package lint

import (
	"github.com/yaklabco/gotexlint/pkg/config"
	"github.com/yaklabco/gotexlint/pkg/texdoc"
)

// RuleContext provides all context needed by a rule to check a document.
// A new RuleContext is built for every rule invocation; the line index is
// shared read-only between them.
type RuleContext struct {
	// Text is the comment-stripped document.
	Text string

	// Index maps offsets in Text to 1-based line numbers.
	Index *texdoc.LineIndex

	// Config is the resolved configuration (may be nil).
	Config *config.Config

	// RuleConfig is the rule-specific configuration (may be nil).
	RuleConfig *config.RuleConfig

	// Defaults holds the rule's default option values (may be nil).
	Defaults map[string]any

	lines []string
}

// NewRuleContext creates a RuleContext for the given stripped text.
func NewRuleContext(
	index *texdoc.LineIndex,
	cfg *config.Config,
	ruleCfg *config.RuleConfig,
	defaults map[string]any,
) *RuleContext {
	return &RuleContext{
		Text:       index.Text(),
		Index:      index,
		Config:     cfg,
		RuleConfig: ruleCfg,
		Defaults:   defaults,
	}
}

// Lines returns the document split on "\n", without terminators.
// The slice is built on first use and must not be modified.
func (rc *RuleContext) Lines() []string {
	if rc.lines == nil {
		rc.lines = rc.Index.Lines()
	}
	return rc.lines
}

// LineAt returns the 1-based line containing the byte offset.
func (rc *RuleContext) LineAt(offset int) int {
	return rc.Index.LineAt(offset)
}

// Option returns a rule-specific option value.
// Lookup order is the rule configuration, then the rule's defaults, then defaultValue.
func (rc *RuleContext) Option(key string, defaultValue any) any {
	if rc.RuleConfig != nil && rc.RuleConfig.Options != nil {
		if v, ok := rc.RuleConfig.Options[key]; ok {
			return v
		}
	}
	if v, ok := rc.Defaults[key]; ok {
		return v
	}
	return defaultValue
}

// OptionString returns a rule-specific string option, or the default.
func (rc *RuleContext) OptionString(key string, defaultValue string) string {
	v := rc.Option(key, defaultValue)
	if s, ok := v.(string); ok {
		return s
	}
	return defaultValue
}

// OptionBool returns a rule-specific boolean option, or the default.
func (rc *RuleContext) OptionBool(key string, defaultValue bool) bool {
	v := rc.Option(key, defaultValue)
	if b, ok := v.(bool); ok {
		return b
	}
	return defaultValue
}

// OptionStringSlice returns a rule-specific string slice option, or the default.
// An explicitly configured empty list yields an empty slice.
func (rc *RuleContext) OptionStringSlice(key string, defaultValue []string) []string {
	v := rc.Option(key, defaultValue)
	if slice, ok := v.([]string); ok {
		return slice
	}
	// Handle []interface{} from YAML/JSON parsing
	if iface, ok := v.([]interface{}); ok {
		result := make([]string, 0, len(iface))
		for _, item := range iface {
			if s, ok := item.(string); ok {
				result = append(result, s)
			}
		}
		return result
	}
	return defaultValue
}
