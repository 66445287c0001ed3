package rules

import (
	"regexp"

	"github.com/yaklabco/gotexlint/pkg/lint"
)

// equationBreakPattern matches a non-terminator character, a \\ line break
// and the \end{equation} on a following line.
//
//nolint:gochecknoglobals // Compiled patterns are immutable.
var equationBreakPattern = regexp.MustCompile(`([^., ])(\s*)\\\\\s*\n\s*\\end\{equation\}`)

// whereAfterPattern matches \end{equation} separated from "where" by at least two newlines.
//
//nolint:gochecknoglobals // Compiled patterns are immutable.
var whereAfterPattern = regexp.MustCompile(`(?i)\\end\{equation\}\s*(?:\n\s*){2,}where\b`)

// EquationEndPunctuationRule checks that the last row of an equation ends
// with punctuation before the closing line break.
type EquationEndPunctuationRule struct {
	lint.BaseRule
}

// NewEquationEndPunctuationRule creates a new equation-end-punctuation rule.
func NewEquationEndPunctuationRule() *EquationEndPunctuationRule {
	return &EquationEndPunctuationRule{
		BaseRule: lint.NewBaseRule(
			"TEX001",
			"equation-end-punctuation",
			"Missing terminal punctuation before equation close",
			"The final row of an equation environment should end with '.' or ',' before its \\\\ break.",
			[]string{"equations", "punctuation"},
		),
	}
}

// Check reports the line where the unpunctuated final row starts.
func (r *EquationEndPunctuationRule) Check(ctx *lint.RuleContext) []int {
	var set lint.LineSet
	text := ctx.Text

	for from := 0; from < len(text); {
		loc := equationBreakPattern.FindStringSubmatchIndex(text[from:])
		if loc == nil {
			break
		}
		start := from + loc[0]

		// An escaped break (\\\) is not a row terminator; retry one byte later.
		if loc[5] == loc[4] && text[from+loc[2]] == '\\' {
			from = start + 1
			continue
		}

		set.Add(ctx.LineAt(start))
		from = from + loc[1]
	}

	return set.Sorted()
}

// WhereAfterEquationRule checks that a "where" clause directly follows its equation.
type WhereAfterEquationRule struct {
	lint.BaseRule
}

// NewWhereAfterEquationRule creates a new where-after-equation rule.
func NewWhereAfterEquationRule() *WhereAfterEquationRule {
	return &WhereAfterEquationRule{
		BaseRule: lint.NewBaseRule(
			"TEX007",
			"where-after-equation",
			`Misplaced "where" after equation`,
			`A "where" clause explaining an equation should not be separated from it by a blank line.`,
			[]string{"equations", "prose"},
		),
	}
}

// Check reports the \end{equation} line of each separated "where".
func (r *WhereAfterEquationRule) Check(ctx *lint.RuleContext) []int {
	var set lint.LineSet
	for _, loc := range whereAfterPattern.FindAllStringIndex(ctx.Text, -1) {
		set.Add(ctx.LineAt(loc[0]))
	}
	return set.Sorted()
}
