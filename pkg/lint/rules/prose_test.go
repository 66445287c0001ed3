package rules

import (
	"testing"

	"github.com/yaklabco/gotexlint/pkg/lint"
)

func TestSelfReferenceRule(t *testing.T) {
	t.Parallel()

	runRuleCases(t, func() lint.Rule { return NewSelfReferenceRule() }, []ruleCase{
		{
			name:  "lowercase with punctuation",
			input: "In our method, we\n",
			want:  []int{1},
		},
		{
			name:  "capitalized at end of line",
			input: "intro\nOur method\n",
			want:  []int{2},
		},
		{
			name:  "plural",
			input: "our methods are\n",
		},
		{
			name:  "inside another word",
			input: "four method\n",
		},
		{
			name:  "capital M",
			input: "Our Method\n",
		},
	})
}

func TestSectionCapitalizationRule(t *testing.T) {
	t.Parallel()

	runRuleCases(t, func() lint.Rule { return NewSectionCapitalizationRule() }, []ruleCase{
		{
			name:  "lowercase word",
			input: "\\section{Related work}\n",
			want:  []int{1},
		},
		{
			name:  "title case",
			input: "\\section{Related Work}\n\\subsection*{Results}\n",
		},
		{
			name:  "nested braces",
			input: "\\section{A \\textbf{Deep} Study}\n",
		},
		{
			name:  "lowercase after nested group",
			input: "\\subsubsection{The {GAN} model}\n",
			want:  []int{1},
		},
		{
			name:  "unbalanced braces are skipped",
			input: "\\section{Broken title\n",
		},
		{
			name:  "single lowercase word is not whitespace preceded",
			input: "\\section{introduction}\n",
		},
		{
			name:  "text after the title",
			input: "\\section{Intro} and more\n",
		},
		{
			name:    "ignored words",
			input:   "\\section{Results of the Study}\n",
			options: map[string]any{"ignore_words": []any{"of", "the"}},
		},
		{
			name:  "ignored words default to none",
			input: "\\section{Results of the Study}\n",
			want:  []int{1},
		},
		{
			name:  "other commands",
			input: "\\paragraph{lower case}\n",
		},
		{
			name:  "starred checked by default",
			input: "\\section*{Related work}\n",
			want:  []int{1},
		},
		{
			name:    "starred skipped when disabled",
			input:   "\\section*{Related work}\n\\section{Related work}\n",
			options: map[string]any{"check_starred": false},
			want:    []int{2},
		},
	})
}
