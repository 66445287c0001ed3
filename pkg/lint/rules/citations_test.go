package rules

import (
	"testing"

	"github.com/yaklabco/gotexlint/pkg/lint"
)

func TestAdjacentCitationsRule(t *testing.T) {
	t.Parallel()

	runRuleCases(t, func() lint.Rule { return NewAdjacentCitationsRule() }, []ruleCase{
		{
			name:  "adjacent",
			input: "text\\cite{a}\\cite{b} more\n",
			want:  []int{1},
		},
		{
			name:  "separated by space",
			input: "\\cite{a} \\cite{b}\n",
		},
		{
			name:  "merged",
			input: "\\cite{a,b}\n",
		},
		{
			name:  "empty key",
			input: "\\cite{}\\cite{b}\n",
		},
		{
			name:  "split across lines",
			input: "\\cite{a}\n\\cite{b}\n",
		},
		{
			name:    "configured command",
			input:   "\\citep{a}\\citep{b}\n\\cite{a}\\cite{b}\n",
			options: map[string]any{"command": "citep"},
			want:    []int{1},
		},
		{
			name:  "default command ignores natbib variants",
			input: "\\citep{a}\\citep{b}\n",
		},
		{
			name:    "empty command falls back to cite",
			input:   "\\cite{a}\\cite{b}\n",
			options: map[string]any{"command": ""},
			want:    []int{1},
		},
	})
}

func TestRefSpacingRule(t *testing.T) {
	t.Parallel()

	runRuleCases(t, func() lint.Rule { return NewRefSpacingRule() }, []ruleCase{
		{
			name:  "plain space",
			input: "word \\ref{fig1} text\n",
			want:  []int{1},
		},
		{
			name:  "tied",
			input: "Figure~\\ref{fig1}\n",
		},
		{
			name:  "at line start",
			input: "\\ref{x} at start\n",
			want:  []int{1},
		},
		{
			name:  "within first two characters",
			input: "~\\ref{x}\n",
			want:  []int{1},
		},
		{
			name:  "shortest tie",
			input: "a~\\ref{x}\n",
		},
		{
			name:  "digit before tie",
			input: "1~\\ref{x}\n",
			want:  []int{1},
		},
		{
			name:  "non ascii letter",
			input: "é~\\ref{x}\n",
		},
		{
			name:  "other commands containing ref",
			input: "see \\refname and \\eqref{x}\n",
		},
		{
			name:  "second occurrence untied",
			input: "Table~\\ref{a} and table \\ref{b}\nFigure~\\ref{a}\nsee \\ref{b}\n",
			want:  []int{1, 3},
		},
	})
}
