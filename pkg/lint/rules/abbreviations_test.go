package rules

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/yaklabco/gotexlint/pkg/lint"
)

func TestDuplicateAbbreviationRule(t *testing.T) {
	t.Parallel()

	runRuleCases(t, func() lint.Rule { return NewDuplicateAbbreviationRule() }, []ruleCase{
		{
			name:  "repeat on later line",
			input: "foo (ABC) bar\nbaz (ABC) qux\n",
			want:  []int{2},
		},
		{
			name:  "repeat on same line",
			input: "(CNN) and again (CNN)\n",
			want:  []int{1},
		},
		{
			name:  "whitelisted tokens never flag",
			input: "Figure (a) and (b)\nsee (a), (b), (1) and (lr)\nagain (1)\n",
		},
		{
			name:  "R is not whitelisted here",
			input: "(R)\n(R)\n",
			want:  []int{2},
		},
		{
			name:  "tokens with spaces are ignored",
			input: "(a b)\n(a b)\n",
		},
		{
			name:  "every repeat line is flagged",
			input: "(GAN)\n(GAN)\ntext\n(GAN)\n",
			want:  []int{2, 4},
		},
		{
			name:    "configured whitelist",
			input:   "(GAN)\n(GAN)\n(a)\n(a)\n",
			options: map[string]any{"whitelist": []any{"GAN"}},
			want:    []int{4},
		},
		{
			name:  "commented definition is ignored",
			input: "% (ABC)\n(ABC)\n",
		},
		{
			name:  "unbalanced parenthesis",
			input: "(ABC\n(ABC\n",
		},
	})
}

func TestDuplicateAbbreviationRule_NoStateBetweenRuns(t *testing.T) {
	t.Parallel()

	rule := NewDuplicateAbbreviationRule()
	input := "(ABC)\n"

	assert.Nil(t, checkRule(t, rule, input, nil))
	assert.Nil(t, checkRule(t, rule, input, nil))
}

func TestUnusedAbbreviationRule(t *testing.T) {
	t.Parallel()

	runRuleCases(t, func() lint.Rule { return NewUnusedAbbreviationRule() }, []ruleCase{
		{
			name:  "defined and never used",
			input: "convolutional neural network (CNN) is used\n",
			want:  []int{1},
		},
		{
			name:  "defined and used later",
			input: "neural network (CNN)\nthe CNN works\n",
		},
		{
			name:  "use as part of a longer word does not count",
			input: "network (CNN)\nCNNs work\n",
			want:  []int{1},
		},
		{
			name:  "non alphabetic tokens are skipped",
			input: "model (GPT4)\n",
		},
		{
			name:  "whitelist includes R",
			input: "(R) (a) (lr)\n",
		},
		{
			name:  "only the first definition line is reported",
			input: "line\n(XYZ)\n",
			want:  []int{2},
		},
		{
			name:  "second definition counts as use",
			input: "(XYZ)\n(XYZ)\n",
		},
		{
			name:    "empty configured whitelist",
			input:   "(R)\n",
			options: map[string]any{"whitelist": []any{}},
			want:    []int{1},
		},
		{
			name:  "empty",
			input: "",
		},
	})
}

func TestAbbreviationRules_DefaultOptions(t *testing.T) {
	t.Parallel()

	dup := NewDuplicateAbbreviationRule().DefaultOptions()
	unused := NewUnusedAbbreviationRule().DefaultOptions()

	assert.Equal(t, []string{"a", "b", "1", "2", "3", "lr"}, dup["whitelist"])
	assert.Equal(t, []string{"a", "b", "1", "2", "3", "lr", "R"}, unused["whitelist"])
}
