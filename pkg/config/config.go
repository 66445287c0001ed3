// Package config defines core configuration types for gotexlint.
// These types are pure data structures; loading and merging live in internal/configloader.
package config

import "time"

// Severity represents the severity level of a lint finding.
type Severity string

const (
	SeverityError   Severity = "error"
	SeverityWarning Severity = "warning"
	SeverityInfo    Severity = "info"
)

// IsValid returns true if the severity is a known level.
func (s Severity) IsValid() bool {
	switch s {
	case SeverityError, SeverityWarning, SeverityInfo:
		return true
	default:
		return false
	}
}

// RuleConfig holds per-rule configuration options.
type RuleConfig struct {
	Enabled  *bool          `yaml:"enabled,omitempty"`
	Severity *string        `yaml:"severity,omitempty"`
	Options  map[string]any `yaml:"options,omitempty"`
}

// WatchConfig controls the watch command.
type WatchConfig struct {
	// Debounce is the quiet period after the last file event before a re-check.
	Debounce time.Duration `yaml:"debounce,omitempty"`
}

// OutputFormat specifies the output format for findings.
type OutputFormat string

const (
	FormatText  OutputFormat = "text"
	FormatJSON  OutputFormat = "json"
	FormatSARIF OutputFormat = "sarif"
	FormatHTML  OutputFormat = "html"
)

// RuleFormat controls how rule identifiers appear in output.
type RuleFormat string

const (
	RuleFormatName     RuleFormat = "name"     // "duplicate-abbreviation"
	RuleFormatID       RuleFormat = "id"       // "TEX002"
	RuleFormatLabel    RuleFormat = "label"    // "Duplicate abbreviation definition"
	RuleFormatCombined RuleFormat = "combined" // "TEX002/duplicate-abbreviation"
)

// IsValid returns true if the rule format is known.
func (f RuleFormat) IsValid() bool {
	switch f {
	case RuleFormatName, RuleFormatID, RuleFormatLabel, RuleFormatCombined:
		return true
	default:
		return false
	}
}

// DefaultDebounce is the watch debounce used when none is configured.
const DefaultDebounce = 300 * time.Millisecond

// Config is the root configuration structure for gotexlint.
type Config struct {
	// SeverityDefault overrides the built-in severity of every rule that
	// has no per-rule severity.
	SeverityDefault string `yaml:"severity_default,omitempty"`

	// Rules contains per-rule configuration keyed by rule ID.
	// Rule names and labels are accepted in files and normalized to IDs on load.
	Rules map[string]RuleConfig `yaml:"rules,omitempty"`

	// Ignore contains glob patterns for files to ignore.
	Ignore []string `yaml:"ignore,omitempty"`

	// Extensions lists the file extensions treated as LaTeX sources.
	Extensions []string `yaml:"extensions,omitempty"`

	// Watch configures the watch command.
	Watch WatchConfig `yaml:"watch,omitempty"`

	// CLI-level options (not persisted to config files).

	// Format specifies the output format.
	Format OutputFormat `yaml:"-"`

	// RuleFormat controls how rule identifiers appear in output.
	RuleFormat RuleFormat `yaml:"-"`

	// Jobs specifies the number of parallel workers.
	Jobs int `yaml:"-"`

	// EnableRules contains rule IDs to explicitly enable.
	EnableRules []string `yaml:"-"`

	// DisableRules contains rule IDs to explicitly disable.
	DisableRules []string `yaml:"-"`
}

// NewConfig returns a Config with sensible defaults.
func NewConfig() *Config {
	return &Config{
		Rules:      make(map[string]RuleConfig),
		Extensions: DefaultExtensions(),
		Watch: WatchConfig{
			Debounce: DefaultDebounce,
		},
		Format:     FormatText,
		RuleFormat: RuleFormatName,
		Jobs:       0, // 0 means use NumCPU
	}
}

// DefaultExtensions returns the default set of LaTeX file extensions.
func DefaultExtensions() []string {
	return []string{".tex", ".ltx"}
}

// EffectiveDebounce returns the configured debounce or DefaultDebounce.
func (c *Config) EffectiveDebounce() time.Duration {
	if c == nil || c.Watch.Debounce <= 0 {
		return DefaultDebounce
	}
	return c.Watch.Debounce
}
