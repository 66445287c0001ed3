package rules

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/yaklabco/gotexlint/pkg/lint"
)

func TestFloatMissingLabelRule(t *testing.T) {
	t.Parallel()

	runRuleCases(t, func() lint.Rule { return NewFloatMissingLabelRule() }, []ruleCase{
		{
			name:  "table without label",
			input: "\\begin{table}\n\\end{table}\n",
			want:  []int{2},
		},
		{
			name:  "figure with label",
			input: "\\begin{figure}\n\\label{fig:a}\n\\end{figure}\n",
		},
		{
			name:  "label belongs to the inner float",
			input: "\\begin{figure}\n\\begin{table}\n\\label{t}\n\\end{table}\n\\end{figure}\n",
			want:  []int{5},
		},
		{
			name:  "starred",
			input: "\\begin{figure*}\n\\end{figure*}\n",
			want:  []int{2},
		},
		{
			name:  "untracked environment",
			input: "\\begin{center}\n\\end{center}\n",
		},
		{
			name:  "unclosed float",
			input: "\\begin{table}\n",
		},
		{
			name:  "stray end",
			input: "\\end{table}\n",
		},
		{
			name:  "single line",
			input: "\\begin{table}\\end{table}\n",
			want:  []int{1},
		},
		{
			name:    "configured environments",
			input:   "\\begin{algorithm}\n\\end{algorithm}\n\\begin{table}\n\\end{table}\n",
			options: map[string]any{"environments": []any{"algorithm"}},
			want:    []int{2},
		},
		{
			name:  "commented label does not count",
			input: "\\begin{table}\n% \\label{t}\n\\end{table}\n",
			want:  []int{3},
		},
	})
}

func TestFloatLabelUnreferencedRule(t *testing.T) {
	t.Parallel()

	runRuleCases(t, func() lint.Rule { return NewFloatLabelUnreferencedRule() }, []ruleCase{
		{
			name:  "referenced",
			input: "\\begin{figure}\n\\label{fig:a}\n\\end{figure}\nSee Figure~\\ref{fig:a}.\n",
		},
		{
			name:  "unreferenced",
			input: "\\begin{figure}\n\\label{fig:a}\n\\end{figure}\n",
			want:  []int{2},
		},
		{
			name:  "reference before the float",
			input: "Table~\\ref{t}\n\\begin{table}\n\\label{t}\n\\end{table}\n",
		},
		{
			name:  "label outside float",
			input: "\\label{sec:x}\n",
		},
		{
			name:  "nested labels",
			input: "\\begin{figure}\n\\label{f}\n\\begin{table}\n\\label{t}\n\\end{table}\n\\end{figure}\n\\ref{f}\n",
			want:  []int{4},
		},
		{
			name:  "other reference commands by default",
			input: "\\begin{table}\\label{t}\\end{table}\n\\cref{t}\n",
			want:  []int{1},
		},
		{
			name:    "configured reference commands",
			input:   "\\begin{table}\\label{t}\\end{table}\n\\cref{t}\n",
			options: map[string]any{"ref_commands": []any{"ref", "cref"}},
		},
	})
}

func TestScanFloats(t *testing.T) {
	t.Parallel()

	scan := scanFloats([]string{
		`\begin{figure}`,
		`\label{a}`,
		`\begin{table}`,
		`\end{figure}`,
		`\end{table}`,
	}, defaultFloatEnvironments())

	// The figure closes over the unclosed table; the later \end{table} is stray.
	assert.Empty(t, scan.unlabeled)
	assert.Equal(t, []floatLabel{{key: "a", line: 2}}, scan.labels)
}
