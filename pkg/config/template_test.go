package config_test

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaklabco/gotexlint/pkg/config"
)

func withRuleInfos(t *testing.T, infos []config.RuleInfo) {
	t.Helper()

	original := config.DefaultRuleInfoProvider
	config.DefaultRuleInfoProvider = func() []config.RuleInfo { return infos }
	t.Cleanup(func() { config.DefaultRuleInfoProvider = original })
}

func TestGenerateTemplate_Minimal(t *testing.T) {
	content, err := config.GenerateTemplate(config.TemplateOptions{})
	require.NoError(t, err)

	text := string(content)
	assert.Contains(t, text, "# gotexlint configuration")
	assert.Contains(t, text, "# severity_default: warning")

	// Everything is commented out, so the template parses to an empty config.
	cfg, err := config.FromYAML(content)
	require.NoError(t, err)
	assert.Empty(t, cfg.Rules)
}

func TestGenerateTemplate_Full(t *testing.T) {
	withRuleInfos(t, []config.RuleInfo{
		{
			ID: "TEX002", Name: "duplicate-abbreviation", Label: "Duplicate abbreviation definition",
			Enabled: true, Severity: config.SeverityWarning, Tags: []string{"abbreviations"},
			Options: map[string]any{"whitelist": []string{"a", "lr"}},
		},
		{
			ID: "TEX001", Name: "equation-end-punctuation", Label: "Missing terminal punctuation before equation close",
			Enabled: true, Severity: config.SeverityWarning,
		},
	})

	content, err := config.GenerateTemplate(config.TemplateOptions{Full: true})
	require.NoError(t, err)

	text := string(content)
	assert.Contains(t, text, "# TEX001: equation-end-punctuation")
	assert.Less(t, strings.Index(text, "TEX001:"), strings.Index(text, "TEX002:"))

	cfg, err := config.FromYAML(content)
	require.NoError(t, err)
	require.Contains(t, cfg.Rules, "TEX002")
	assert.Equal(t, []any{"a", "lr"}, cfg.Rules["TEX002"].Options["whitelist"])
}

func TestGenerateTemplate_JSON(t *testing.T) {
	withRuleInfos(t, []config.RuleInfo{
		{ID: "TEX005", Name: "unicode-dash", Enabled: true, Severity: config.SeverityError},
	})

	content, err := config.GenerateTemplate(config.TemplateOptions{Format: "json"})
	require.NoError(t, err)

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(content, &decoded))

	rules, ok := decoded["rules"].(map[string]any)
	require.True(t, ok)
	assert.Contains(t, rules, "TEX005")
}
