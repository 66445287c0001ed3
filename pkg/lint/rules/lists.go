package rules

import (
	"strings"

	"github.com/yaklabco/gotexlint/pkg/lint"
)

// ItemizeBlankLineRule checks that an itemize block does not follow a blank line.
type ItemizeBlankLineRule struct {
	lint.BaseRule
}

// NewItemizeBlankLineRule creates a new itemize-blank-line rule.
func NewItemizeBlankLineRule() *ItemizeBlankLineRule {
	return &ItemizeBlankLineRule{
		BaseRule: lint.NewBaseRule(
			"TEX015",
			"itemize-blank-line",
			"Itemize block abutting blank line",
			"A blank line before \\begin{itemize} starts a new paragraph and adds unwanted space.",
			[]string{"lists"},
		),
	}
}

// Check reports \begin{itemize} lines preceded by a blank line.
func (r *ItemizeBlankLineRule) Check(ctx *lint.RuleContext) []int {
	lines := ctx.Lines()

	var set lint.LineSet
	for idx := 1; idx < len(lines); idx++ {
		if !strings.Contains(lines[idx], `\begin{itemize}`) {
			continue
		}
		if strings.TrimSpace(lines[idx-1]) == "" {
			set.Add(idx + 1)
		}
	}
	return set.Sorted()
}
