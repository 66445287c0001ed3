package rules

import (
	"regexp"
	"unicode/utf8"

	"github.com/yaklabco/gotexlint/pkg/lint"
)

const defaultCiteCommand = "cite"

// defaultAdjacentCitePattern matches two \cite commands with nothing between them.
//
//nolint:gochecknoglobals // Compiled patterns are immutable.
var defaultAdjacentCitePattern = adjacentCitePattern(defaultCiteCommand)

// adjacentCitePattern matches two back-to-back \command{...} calls.
func adjacentCitePattern(command string) *regexp.Regexp {
	call := `\\` + regexp.QuoteMeta(command) + `\{[^}]+\}`
	return regexp.MustCompile(call + call)
}

// AdjacentCitationsRule checks for citations that should be merged into one \cite.
type AdjacentCitationsRule struct {
	lint.BaseRule
}

// NewAdjacentCitationsRule creates a new adjacent-citations rule.
func NewAdjacentCitationsRule() *AdjacentCitationsRule {
	return &AdjacentCitationsRule{
		BaseRule: lint.NewBaseRule(
			"TEX008",
			"adjacent-citations",
			"Unmerged adjacent citations",
			`Adjacent citations should be merged: \cite{a,b} rather than \cite{a}\cite{b}.`,
			[]string{"citations"},
		).WithDefaults(map[string]any{
			"command": defaultCiteCommand,
		}),
	}
}

// Check reports lines containing back-to-back citation commands.
func (r *AdjacentCitationsRule) Check(ctx *lint.RuleContext) []int {
	pattern := defaultAdjacentCitePattern
	if command := ctx.OptionString("command", defaultCiteCommand); command != "" && command != defaultCiteCommand {
		pattern = adjacentCitePattern(command)
	}

	var set lint.LineSet
	for idx, line := range ctx.Lines() {
		if pattern.MatchString(line) {
			set.Add(idx + 1)
		}
	}
	return set.Sorted()
}

// RefSpacingRule checks that \ref is tied to the preceding word with '~'.
type RefSpacingRule struct {
	lint.BaseRule
}

// NewRefSpacingRule creates a new ref-spacing rule.
func NewRefSpacingRule() *RefSpacingRule {
	return &RefSpacingRule{
		BaseRule: lint.NewBaseRule(
			"TEX014",
			"ref-spacing",
			`Improper \ref spacing`,
			`A reference should be written Figure~\ref{key} so it never starts a new line.`,
			[]string{"references"},
		),
	}
}

// Check reports lines with a \ref not preceded by a letter and '~'.
func (r *RefSpacingRule) Check(ctx *lint.RuleContext) []int {
	var set lint.LineSet
	for idx, line := range ctx.Lines() {
		for _, start := range commandOffsets(line, "ref") {
			if utf8.RuneCountInString(line[:start]) < 2 || !letterBeforeTie(line, start) {
				set.Add(idx + 1)
				break
			}
		}
	}
	return set.Sorted()
}
