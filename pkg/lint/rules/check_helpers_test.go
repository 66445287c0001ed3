package rules

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/yaklabco/gotexlint/pkg/config"
	"github.com/yaklabco/gotexlint/pkg/lint"
	"github.com/yaklabco/gotexlint/pkg/texdoc"
)

// ruleCase is a single detector scenario.
type ruleCase struct {
	name    string
	input   string
	options map[string]any
	want    []int
}

// checkRule runs rule over the comment-stripped input the way the engine does.
func checkRule(t *testing.T, rule lint.Rule, input string, options map[string]any) []int {
	t.Helper()

	var ruleCfg *config.RuleConfig
	if options != nil {
		ruleCfg = &config.RuleConfig{Options: options}
	}

	index := texdoc.NewLineIndex(texdoc.Strip(input))
	ctx := lint.NewRuleContext(index, config.NewConfig(), ruleCfg, rule.DefaultOptions())
	return rule.Check(ctx)
}

// runRuleCases runs table cases against a fresh rule per case.
func runRuleCases(t *testing.T, newRule func() lint.Rule, cases []ruleCase) {
	t.Helper()

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			got := checkRule(t, newRule(), tc.input, tc.options)
			assert.Equal(t, tc.want, got)
		})
	}
}
