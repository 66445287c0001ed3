package configloader

import (
	"fmt"
	"slices"
	"strings"

	"github.com/bmatcuk/doublestar/v4"

	"github.com/yaklabco/gotexlint/pkg/config"
	"github.com/yaklabco/gotexlint/pkg/lint"
)

// ValidationError represents a configuration validation error.
type ValidationError struct {
	// Field is the path to the invalid field (e.g., "rules.TEX002.severity").
	Field string

	// Value is the invalid value.
	Value any

	// Message describes the validation error.
	Message string

	// FilePath is the config file containing the error (if known).
	FilePath string
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	var parts []string

	if e.FilePath != "" {
		parts = append(parts, e.FilePath)
	}

	if e.Field != "" {
		parts = append(parts, e.Field)
	}

	parts = append(parts, e.Message)

	return strings.Join(parts, ": ")
}

// ValidationResult contains all validation findings.
type ValidationResult struct {
	// Errors are validation failures that prevent loading.
	Errors []ValidationError

	// Warnings are non-fatal issues (e.g., unknown rules).
	Warnings []ValidationError
}

// Valid returns true if there are no errors.
func (r *ValidationResult) Valid() bool {
	return len(r.Errors) == 0
}

// HasWarnings returns true if there are any warnings.
func (r *ValidationResult) HasWarnings() bool {
	return len(r.Warnings) > 0
}

// AllMessages returns all error and warning messages combined.
func (r *ValidationResult) AllMessages() []string {
	messages := make([]string, 0, len(r.Errors)+len(r.Warnings))
	for _, e := range r.Errors {
		messages = append(messages, "error: "+e.Error())
	}
	for _, w := range r.Warnings {
		messages = append(messages, "warning: "+w.Error())
	}
	return messages
}

// knownFormats lists valid output format values.
//
//nolint:gochecknoglobals // Read-only lookup table.
var knownFormats = map[config.OutputFormat]bool{
	config.FormatText:  true,
	config.FormatJSON:  true,
	config.FormatSARIF: true,
	config.FormatHTML:  true,
}

// Validate checks a configuration for errors and warnings.
// Rule keys and --enable/--disable selectors are checked against registry.
func Validate(cfg *config.Config, registry *lint.Registry) *ValidationResult {
	result := &ValidationResult{}
	if cfg == nil {
		return result
	}
	if registry == nil {
		registry = lint.DefaultRegistry
	}

	if cfg.SeverityDefault != "" && !IsValidSeverity(cfg.SeverityDefault) {
		result.Errors = append(result.Errors, ValidationError{
			Field:   "severity_default",
			Value:   cfg.SeverityDefault,
			Message: fmt.Sprintf("invalid severity %q; must be one of: error, warning, info", cfg.SeverityDefault),
		})
	}

	if cfg.Format != "" && !knownFormats[cfg.Format] {
		result.Errors = append(result.Errors, ValidationError{
			Field:   "format",
			Value:   cfg.Format,
			Message: fmt.Sprintf("invalid format %q; must be one of: text, json, sarif, html", cfg.Format),
		})
	}

	if cfg.RuleFormat != "" && !cfg.RuleFormat.IsValid() {
		result.Errors = append(result.Errors, ValidationError{
			Field:   "rule_format",
			Value:   cfg.RuleFormat,
			Message: fmt.Sprintf("invalid rule format %q; must be one of: name, id, label, combined", cfg.RuleFormat),
		})
	}

	if cfg.Jobs < 0 {
		result.Errors = append(result.Errors, ValidationError{
			Field:   "jobs",
			Value:   cfg.Jobs,
			Message: "jobs must be >= 0 (0 means auto)",
		})
	}

	if cfg.Watch.Debounce < 0 {
		result.Errors = append(result.Errors, ValidationError{
			Field:   "watch.debounce",
			Value:   cfg.Watch.Debounce,
			Message: "debounce must not be negative",
		})
	}

	for i, ext := range cfg.Extensions {
		if !strings.HasPrefix(ext, ".") || len(ext) < 2 {
			result.Errors = append(result.Errors, ValidationError{
				Field:   fmt.Sprintf("extensions[%d]", i),
				Value:   ext,
				Message: fmt.Sprintf("invalid extension %q; must start with a dot", ext),
			})
		}
	}

	validateRules(cfg, registry, result)
	validateSelectors("enable", cfg.EnableRules, registry, result)
	validateSelectors("disable", cfg.DisableRules, registry, result)
	validateIgnorePatterns(cfg, result)

	return result
}

// validateRules checks rule configurations for errors and warnings.
func validateRules(cfg *config.Config, registry *lint.Registry, result *ValidationResult) {
	for _, ruleID := range sortedRuleKeys(cfg.Rules) {
		ruleCfg := cfg.Rules[ruleID]

		rule, exists := registry.Get(ruleID)
		if !exists {
			result.Warnings = append(result.Warnings, ValidationError{
				Field:   "rules." + ruleID,
				Value:   ruleID,
				Message: fmt.Sprintf("unknown rule %q; it will be ignored", ruleID),
			})
		}

		if ruleCfg.Severity != nil && !IsValidSeverity(*ruleCfg.Severity) {
			result.Errors = append(result.Errors, ValidationError{
				Field:   "rules." + ruleID + ".severity",
				Value:   *ruleCfg.Severity,
				Message: fmt.Sprintf("invalid severity %q; must be one of: error, warning, info", *ruleCfg.Severity),
			})
		}

		if exists {
			validateRuleOptions(ruleID, rule.DefaultOptions(), ruleCfg.Options, result)
		}
	}
}

// validateRuleOptions checks configured options against the rule's defaults.
// Unknown options are warnings; a value whose shape differs from the default is an error.
func validateRuleOptions(ruleID string, defaults, options map[string]any, result *ValidationResult) {
	for _, name := range sortedOptionKeys(options) {
		field := "rules." + ruleID + ".options." + name

		def, known := defaults[name]
		if !known {
			result.Warnings = append(result.Warnings, ValidationError{
				Field:   field,
				Value:   name,
				Message: fmt.Sprintf("unknown option %q; it will be ignored", name),
			})
			continue
		}

		if want, ok := optionKind(def); ok {
			if got, _ := optionKind(options[name]); got != want {
				result.Errors = append(result.Errors, ValidationError{
					Field:   field,
					Value:   options[name],
					Message: fmt.Sprintf("expected %s", want),
				})
			}
		}
	}
}

// optionKind classifies option values the way rules read them.
func optionKind(value any) (string, bool) {
	switch v := value.(type) {
	case []string:
		return "a list of strings", true
	case []any:
		for _, item := range v {
			if _, ok := item.(string); !ok {
				return "a mixed list", true
			}
		}
		return "a list of strings", true
	case string:
		return "a string", true
	case bool:
		return "a boolean", true
	case int, int64, float64:
		return "a number", true
	default:
		return "", false
	}
}

// validateSelectors warns about --enable/--disable keys that match no rule or tag.
func validateSelectors(flag string, keys []string, registry *lint.Registry, result *ValidationResult) {
	for _, key := range keys {
		if _, ok := registry.Get(key); ok || registryHasTag(registry, key) {
			continue
		}
		result.Warnings = append(result.Warnings, ValidationError{
			Field:   flag,
			Value:   key,
			Message: fmt.Sprintf("%q matches no rule or tag", key),
		})
	}
}

func registryHasTag(registry *lint.Registry, tag string) bool {
	return slices.ContainsFunc(registry.Rules(), func(rule lint.Rule) bool {
		return slices.Contains(rule.Tags(), tag)
	})
}

// validateIgnorePatterns checks that ignore patterns are valid globs.
func validateIgnorePatterns(cfg *config.Config, result *ValidationResult) {
	for i, pattern := range cfg.Ignore {
		if !doublestar.ValidatePattern(pattern) {
			result.Errors = append(result.Errors, ValidationError{
				Field:   fmt.Sprintf("ignore[%d]", i),
				Value:   pattern,
				Message: "invalid glob pattern",
			})
		}
	}
}

// ValidateWithFile validates configuration and includes file path in errors.
func ValidateWithFile(cfg *config.Config, registry *lint.Registry, filePath string) *ValidationResult {
	result := Validate(cfg, registry)

	for i := range result.Errors {
		result.Errors[i].FilePath = filePath
	}
	for i := range result.Warnings {
		result.Warnings[i].FilePath = filePath
	}

	return result
}

// IsValidSeverity returns true if the severity string is valid.
func IsValidSeverity(s string) bool {
	return config.Severity(s).IsValid()
}

// IsValidFormat returns true if the format is valid.
func IsValidFormat(f config.OutputFormat) bool {
	return knownFormats[f]
}

func sortedOptionKeys(options map[string]any) []string {
	keys := make([]string, 0, len(options))
	for key := range options {
		keys = append(keys, key)
	}
	slices.Sort(keys)
	return keys
}
