package configloader

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/yaklabco/gotexlint/pkg/config"
	"github.com/yaklabco/gotexlint/pkg/lint"
	"github.com/yaklabco/gotexlint/pkg/lint/rules"
)

func newTestRegistry() *lint.Registry {
	registry := lint.NewRegistry()
	rules.RegisterAll(registry)
	return registry
}

// isolatedOptions loads only project/explicit config from dir.
func isolatedOptions(dir string) LoadOptions {
	return LoadOptions{
		WorkingDir:         dir,
		IgnoreSystemConfig: true,
		IgnoreUserConfig:   true,
		IgnoreEnv:          true,
		Registry:           newTestRegistry(),
	}
}

func writeConfig(t *testing.T, dir, name, content string) string {
	t.Helper()

	// A VCS marker stops the upward search at dir.
	if err := os.MkdirAll(filepath.Join(dir, ".git"), 0o755); err != nil {
		t.Fatalf("mkdir .git: %v", err)
	}

	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

func TestLoad_Defaults(t *testing.T) {
	t.Parallel()

	tmpDir := t.TempDir()
	writeConfig(t, tmpDir, "unrelated.txt", "")

	result, err := Load(context.Background(), isolatedOptions(tmpDir))
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if result.Config == nil {
		t.Fatal("Load() returned nil config")
	}
	if result.Config.Format != config.FormatText {
		t.Errorf("expected format %q, got %q", config.FormatText, result.Config.Format)
	}
	if result.Config.EffectiveDebounce() != config.DefaultDebounce {
		t.Errorf("expected default debounce, got %v", result.Config.EffectiveDebounce())
	}
	if len(result.LoadedFrom) != 0 {
		t.Errorf("expected no loaded files, got %v", result.LoadedFrom)
	}
}

func TestLoad_ProjectConfig(t *testing.T) {
	t.Parallel()

	tmpDir := t.TempDir()
	writeConfig(t, tmpDir, ".gotexlint.yml", `
severity_default: error
extensions: [".tex", ".latex"]
watch:
  debounce: 750ms
rules:
  TEX009:
    enabled: false
`)

	result, err := Load(context.Background(), isolatedOptions(tmpDir))
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	cfg := result.Config
	if cfg.SeverityDefault != "error" {
		t.Errorf("expected severity_default error, got %q", cfg.SeverityDefault)
	}
	if strings.Join(cfg.Extensions, ",") != ".tex,.latex" {
		t.Errorf("unexpected extensions %v", cfg.Extensions)
	}
	if cfg.Watch.Debounce != 750*time.Millisecond {
		t.Errorf("expected 750ms debounce, got %v", cfg.Watch.Debounce)
	}

	tex009, ok := cfg.Rules["TEX009"]
	if !ok {
		t.Fatal("TEX009 rule not found in config")
	}
	if tex009.Enabled == nil || *tex009.Enabled {
		t.Error("expected TEX009 to be disabled")
	}

	if len(result.LoadedFrom) != 1 {
		t.Errorf("expected 1 loaded file, got %d", len(result.LoadedFrom))
	}
}

func TestLoad_ProjectConfigFoundUpward(t *testing.T) {
	t.Parallel()

	root := t.TempDir()
	path := writeConfig(t, root, ".gotexlint.yaml", "severity_default: info\n")

	nested := filepath.Join(root, "chapters", "intro")
	if err := os.MkdirAll(nested, 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}

	result, err := Load(context.Background(), isolatedOptions(nested))
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if result.Paths.Project != path {
		t.Errorf("expected project config %q, got %q", path, result.Paths.Project)
	}
	if result.Config.SeverityDefault != "info" {
		t.Errorf("expected severity_default info, got %q", result.Config.SeverityDefault)
	}
}

func TestLoad_ExplicitOverridesProject(t *testing.T) {
	t.Parallel()

	tmpDir := t.TempDir()
	writeConfig(t, tmpDir, ".gotexlint.yml", `
severity_default: info
ignore: ["build/**"]
`)
	explicit := writeConfig(t, tmpDir, "strict.yml", "severity_default: error\n")

	opts := isolatedOptions(tmpDir)
	opts.ExplicitPath = explicit

	result, err := Load(context.Background(), opts)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if result.Config.SeverityDefault != "error" {
		t.Errorf("expected explicit severity to win, got %q", result.Config.SeverityDefault)
	}
	if len(result.Config.Ignore) != 1 || result.Config.Ignore[0] != "build/**" {
		t.Errorf("expected project ignore to survive, got %v", result.Config.Ignore)
	}
	if len(result.LoadedFrom) != 2 || result.LoadedFrom[1] != explicit {
		t.Errorf("unexpected load order %v", result.LoadedFrom)
	}
}

func TestLoad_CLIOverrides(t *testing.T) {
	t.Parallel()

	tmpDir := t.TempDir()
	writeConfig(t, tmpDir, ".gotexlint.yml", "severity_default: info\n")

	opts := isolatedOptions(tmpDir)
	opts.CLIConfig = &config.Config{
		SeverityDefault: "warning",
		Format:          config.FormatJSON,
		Jobs:            4,
		DisableRules:    []string{"punctuation"},
	}

	result, err := Load(context.Background(), opts)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	cfg := result.Config
	if cfg.SeverityDefault != "warning" || cfg.Format != config.FormatJSON || cfg.Jobs != 4 {
		t.Errorf("CLI overrides not applied: %+v", cfg)
	}
	if len(result.Warnings) != 0 {
		t.Errorf("tag selector should not warn, got %v", result.Warnings)
	}
}

func TestLoad_InvalidConfig(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		content string
		wantMsg string
	}{
		{
			name:    "bad severity",
			content: "severity_default: fatal\n",
			wantMsg: "severity_default",
		},
		{
			name:    "bad rule severity",
			content: "rules:\n  TEX005:\n    severity: loud\n",
			wantMsg: "rules.TEX005.severity",
		},
		{
			name:    "bad extension",
			content: "extensions: [tex]\n",
			wantMsg: "extensions[0]",
		},
		{
			name:    "bad option shape",
			content: "rules:\n  duplicate-abbreviation:\n    options:\n      whitelist: 3\n",
			wantMsg: "rules.TEX002.options.whitelist",
		},
		{
			name:    "malformed yaml",
			content: "rules: [unclosed\n",
			wantMsg: "parse YAML",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			tmpDir := t.TempDir()
			path := writeConfig(t, tmpDir, ".gotexlint.yml", tt.content)

			_, err := Load(context.Background(), isolatedOptions(tmpDir))
			if err == nil {
				t.Fatal("expected error for invalid config")
			}

			var validationErr *ValidationError
			if !errors.As(err, &validationErr) {
				t.Fatalf("expected *ValidationError, got %T: %v", err, err)
			}
			if !strings.Contains(err.Error(), tt.wantMsg) {
				t.Errorf("error %q does not mention %q", err, tt.wantMsg)
			}
			if validationErr.FilePath != path {
				t.Errorf("expected file path %q, got %q", path, validationErr.FilePath)
			}
		})
	}
}

func TestLoad_ContextCancellation(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := Load(ctx, isolatedOptions(t.TempDir()))
	if !errors.Is(err, context.Canceled) {
		t.Errorf("expected context.Canceled, got %v", err)
	}
}

func TestLoader_NormalizesRuleKeys(t *testing.T) {
	t.Parallel()

	tmpDir := t.TempDir()
	writeConfig(t, tmpDir, ".gotexlint.yml", `
rules:
  unicode-dash:
    severity: error
  "Self-referential phrase":
    enabled: false
  TEX002:
    options:
      whitelist: ["x"]
`)

	result, err := Load(context.Background(), isolatedOptions(tmpDir))
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	rulesCfg := result.Config.Rules
	for _, id := range []string{"TEX005", "TEX009", "TEX002"} {
		if _, ok := rulesCfg[id]; !ok {
			t.Errorf("expected %s in normalized rules, got keys %v", id, sortedRuleKeys(rulesCfg))
		}
	}
	if _, ok := rulesCfg["unicode-dash"]; ok {
		t.Error("name key should have been replaced by its ID")
	}
}

func TestLoader_WarnsDuplicateAndUnknownRules(t *testing.T) {
	t.Parallel()

	tmpDir := t.TempDir()
	writeConfig(t, tmpDir, ".gotexlint.yml", `
rules:
  TEX005:
    severity: error
  unicode-dash:
    severity: info
  TEX999:
    enabled: true
`)

	result, err := Load(context.Background(), isolatedOptions(tmpDir))
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	joined := strings.Join(result.Warnings, "\n")
	if !strings.Contains(joined, "duplicate rule configuration") {
		t.Errorf("expected duplicate warning, got %v", result.Warnings)
	}
	if strings.Count(joined, `unknown rule "TEX999"`) != 1 {
		t.Errorf("expected exactly one unknown-rule warning, got %v", result.Warnings)
	}

	// Keys are processed in sorted order, so the name wins over the ID.
	if sev := result.Config.Rules["TEX005"].Severity; sev == nil || *sev != "info" {
		t.Errorf("expected last key to win, got %v", sev)
	}
}
