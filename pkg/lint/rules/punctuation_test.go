package rules

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/yaklabco/gotexlint/pkg/lint"
)

func TestLatexQuotesRule(t *testing.T) {
	t.Parallel()

	runRuleCases(t, func() lint.Rule { return NewLatexQuotesRule() }, []ruleCase{
		{
			name:  "straight single quotes at line end",
			input: "it is 'quoted'\n",
			want:  []int{1},
		},
		{
			name:  "straight single quotes mid line",
			input: "it is 'quoted' here\n",
		},
		{
			name:  "closing double quotes on both sides",
			input: "a ''word''\n",
			want:  []int{1},
		},
		{
			name:  "straight double open",
			input: "say \"hello''\n",
			want:  []int{1},
		},
		{
			name:  "straight double close",
			input: "say ''hello\"\n",
			want:  []int{1},
		},
		{
			name:  "proper latex quotes",
			input: "say ``hello'' and `hi'\n",
		},
		{
			name:  "second line only",
			input: "fine\nthe ''x''`y`\n",
			want:  []int{2},
		},
		{
			name:  "unterminated",
			input: "don't\n",
		},
	})
}

func TestUnicodeDashRule(t *testing.T) {
	t.Parallel()

	runRuleCases(t, func() lint.Rule { return NewUnicodeDashRule() }, []ruleCase{
		{
			name:  "en and em dash",
			input: "pages 1–2\nplain -- dash\nwait — what\n",
			want:  []int{1, 3},
		},
		{
			name:  "ascii dashes",
			input: "a -- b --- c\n",
		},
	})
}

func TestPeriodUsageRule(t *testing.T) {
	t.Parallel()

	runRuleCases(t, func() lint.Rule { return NewPeriodUsageRule() }, []ruleCase{
		{
			name:  "space before period",
			input: "the end .\n",
			want:  []int{1},
		},
		{
			name:  "missing space after period",
			input: "first.Second\n",
			want:  []int{1},
		},
		{
			name:  "domain name",
			input: "see example.com and site.org\n",
		},
		{
			name:  "period after closing brace",
			input: "\\ref{fig}.Then\n",
		},
		{
			name:  "exempt phrase",
			input: "for e.g. this .\n",
		},
		{
			name:  "decimal number",
			input: "value 3.14 here\n",
		},
		{
			name:    "configured suffixes",
			input:   "go.dev\nexample.com\n",
			options: map[string]any{"domain_suffixes": []any{"dev"}},
			want:    []int{2},
		},
		{
			name:    "configured exempt phrases",
			input:   "i.e.this\ne.g.that\n",
			options: map[string]any{"exempt_phrases": []any{"i.e."}},
			want:    []int{2},
		},
		{
			name:  "sentence end",
			input: "A sentence. Another.\n",
		},
	})
}

func TestPunctuationRules_Metadata(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "TEX004", NewLatexQuotesRule().ID())
	assert.Equal(t, "TEX005", NewUnicodeDashRule().ID())

	period := NewPeriodUsageRule()
	assert.Equal(t, "TEX006", period.ID())
	assert.Equal(t, []string{"com", "org", "net", "gov", "edu"}, period.DefaultOptions()["domain_suffixes"])
}
