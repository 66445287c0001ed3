package config

import (
	"bytes"
	"encoding/json"
	"fmt"
	"sort"
	"strings"
)

// commentWrapWidth is the maximum width for wrapped comments in templates.
const commentWrapWidth = 70

// TemplateOptions controls configuration template generation.
type TemplateOptions struct {
	// Full includes all rules with their documentation.
	// If false, generates a minimal template.
	Full bool

	// Format is the output format: "yaml" or "json".
	Format string

	// IncludeRules is a list of rule IDs to include.
	// If empty, all rules are included.
	IncludeRules []string
}

// RuleInfo contains rule metadata for template generation.
type RuleInfo struct {
	ID       string
	Name     string
	Label    string
	Enabled  bool
	Severity Severity
	Tags     []string

	// Options holds the rule's default option values.
	Options map[string]any
}

// RuleInfoProvider is a function that returns rule information.
// This allows decoupling from the lint package to avoid circular imports.
type RuleInfoProvider func() []RuleInfo

// DefaultRuleInfoProvider is set by the rules package during init.
//
//nolint:gochecknoglobals // Intentional extension point for rule info.
var DefaultRuleInfoProvider RuleInfoProvider

// GenerateTemplate creates a configuration file template.
func GenerateTemplate(opts TemplateOptions) ([]byte, error) {
	if opts.Format == "json" {
		return templateToJSON(opts)
	}
	if opts.Full {
		return generateFullTemplate(opts)
	}
	return generateMinimalTemplate(), nil
}

// generateMinimalTemplate creates a minimal commented template.
func generateMinimalTemplate() []byte {
	return []byte(DefaultTemplateHeader() + `

# Default severity for all rules: error, warning, or info
# severity_default: warning

# File extensions treated as LaTeX sources
# extensions:
#   - .tex
#   - .ltx

# File patterns to ignore (glob patterns)
# ignore:
#   - "build/**"

# Quiet period before the watch command re-checks a changed file
# watch:
#   debounce: 300ms

# Rule-specific configuration, keyed by ID, name or label
# rules:
#   TEX002:
#     options:
#       whitelist: [a, b, "1", "2", "3", lr]
#   self-reference:
#     enabled: false
`)
}

// generateFullTemplate creates a full template with all rules documented.
func generateFullTemplate(opts TemplateOptions) ([]byte, error) {
	var buf bytes.Buffer

	buf.WriteString(DefaultTemplateHeader() + `
#
# This template includes all available rules with their default settings.

severity_default: warning

extensions:
  - .tex
  - .ltx

ignore:
  - "build/**"

watch:
  debounce: 300ms

rules:
`)

	for _, rule := range selectRules(opts.IncludeRules) {
		fmt.Fprintf(&buf, "\n  # %s: %s\n", rule.ID, rule.Name)
		fmt.Fprintf(&buf, "  # %s\n", wrapComment(rule.Label, commentWrapWidth))
		if len(rule.Tags) > 0 {
			fmt.Fprintf(&buf, "  # Tags: %s\n", strings.Join(rule.Tags, ", "))
		}
		fmt.Fprintf(&buf, "  %s:\n", rule.ID)
		fmt.Fprintf(&buf, "    enabled: %t\n", rule.Enabled)
		fmt.Fprintf(&buf, "    severity: %s\n", rule.Severity)

		if len(rule.Options) == 0 {
			continue
		}
		buf.WriteString("    options:\n")
		for _, key := range sortedKeys(rule.Options) {
			encoded, err := json.Marshal(rule.Options[key])
			if err != nil {
				return nil, fmt.Errorf("encode option %s.%s: %w", rule.ID, key, err)
			}
			// JSON flow values are valid YAML.
			fmt.Fprintf(&buf, "      %s: %s\n", key, encoded)
		}
	}

	return buf.Bytes(), nil
}

// selectRules returns the known rules sorted by ID, filtered by include.
func selectRules(include []string) []RuleInfo {
	rules := getRuleInfos()

	if len(include) > 0 {
		includeSet := make(map[string]bool, len(include))
		for _, id := range include {
			includeSet[id] = true
		}
		filtered := make([]RuleInfo, 0, len(include))
		for _, r := range rules {
			if includeSet[r.ID] {
				filtered = append(filtered, r)
			}
		}
		rules = filtered
	}

	sort.Slice(rules, func(i, j int) bool {
		return rules[i].ID < rules[j].ID
	})

	return rules
}

// getRuleInfos returns information about all registered rules.
func getRuleInfos() []RuleInfo {
	if DefaultRuleInfoProvider != nil {
		return DefaultRuleInfoProvider()
	}
	return nil
}

func sortedKeys(m map[string]any) []string {
	keys := make([]string, 0, len(m))
	for key := range m {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}

// wrapComment wraps a comment to fit within maxWidth characters.
func wrapComment(text string, maxWidth int) string {
	if len(text) <= maxWidth {
		return text
	}

	var lines []string
	words := strings.Fields(text)
	currentLine := ""

	for _, word := range words {
		switch {
		case currentLine == "":
			currentLine = word
		case len(currentLine)+1+len(word) <= maxWidth:
			currentLine += " " + word
		default:
			lines = append(lines, currentLine)
			currentLine = word
		}
	}
	if currentLine != "" {
		lines = append(lines, currentLine)
	}

	return strings.Join(lines, "\n  # ")
}

// templateToJSON builds a JSON configuration with every rule at its defaults.
func templateToJSON(opts TemplateOptions) ([]byte, error) {
	cfg := map[string]any{
		"severity_default": string(SeverityWarning),
		"extensions":       DefaultExtensions(),
		"ignore":           []string{"build/**"},
		"watch": map[string]any{
			"debounce": DefaultDebounce.String(),
		},
	}

	rulesMap := make(map[string]any)
	for _, r := range selectRules(opts.IncludeRules) {
		entry := map[string]any{
			"enabled":  r.Enabled,
			"severity": string(r.Severity),
		}
		if opts.Full && len(r.Options) > 0 {
			entry["options"] = r.Options
		}
		rulesMap[r.ID] = entry
	}
	cfg["rules"] = rulesMap

	jsonBytes, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshal JSON: %w", err)
	}

	return jsonBytes, nil
}

// DefaultTemplateHeader returns the default header for generated configs.
func DefaultTemplateHeader() string {
	return `# gotexlint configuration
# See: https://github.com/yaklabco/gotexlint`
}
