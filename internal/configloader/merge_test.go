package configloader

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaklabco/gotexlint/pkg/config"
)

func ptr[T any](v T) *T { return &v }

func TestMerge_Scalars(t *testing.T) {
	t.Parallel()

	base := config.NewConfig()
	base.SeverityDefault = "info"
	base.Jobs = 2

	override := &config.Config{
		SeverityDefault: "error",
		Watch:           config.WatchConfig{Debounce: time.Second},
	}

	merged := merge(base, override)
	assert.Equal(t, "error", merged.SeverityDefault)
	assert.Equal(t, 2, merged.Jobs, "zero override keeps base")
	assert.Equal(t, time.Second, merged.Watch.Debounce)
	assert.Equal(t, config.FormatText, merged.Format)
}

func TestMerge_SlicesReplace(t *testing.T) {
	t.Parallel()

	base := config.NewConfig()
	base.Ignore = []string{"a"}

	merged := merge(base, &config.Config{Extensions: []string{".ltx"}})
	assert.Equal(t, []string{"a"}, merged.Ignore)
	assert.Equal(t, []string{".ltx"}, merged.Extensions)

	merged = merge(base, &config.Config{Ignore: []string{}})
	assert.Empty(t, merged.Ignore)
}

func TestMerge_RulesDeep(t *testing.T) {
	t.Parallel()

	base := &config.Config{Rules: map[string]config.RuleConfig{
		"TEX002": {
			Severity: ptr("info"),
			Options:  map[string]any{"whitelist": []any{"a"}},
		},
		"TEX005": {Enabled: ptr(false)},
	}}
	override := &config.Config{Rules: map[string]config.RuleConfig{
		"TEX002": {
			Enabled: ptr(true),
			Options: map[string]any{"extra": 1},
		},
	}}

	merged := merge(base, override)

	tex002 := merged.Rules["TEX002"]
	require.NotNil(t, tex002.Enabled)
	assert.True(t, *tex002.Enabled)
	assert.Equal(t, "info", *tex002.Severity)
	assert.Equal(t, map[string]any{"whitelist": []any{"a"}, "extra": 1}, tex002.Options)
	assert.False(t, *merged.Rules["TEX005"].Enabled)

	// Base options map is not mutated.
	assert.Len(t, base.Rules["TEX002"].Options, 1)
}

func TestMerge_Nil(t *testing.T) {
	t.Parallel()

	cfg := config.NewConfig()
	assert.Same(t, cfg, merge(cfg, nil))
	assert.Same(t, cfg, merge(nil, cfg))
}

func TestMergeAll(t *testing.T) {
	t.Parallel()

	assert.Nil(t, MergeAll())

	merged := MergeAll(
		config.NewConfig(),
		&config.Config{SeverityDefault: "info"},
		&config.Config{SeverityDefault: "error", Jobs: 8},
	)
	assert.Equal(t, "error", merged.SeverityDefault)
	assert.Equal(t, 8, merged.Jobs)
}
