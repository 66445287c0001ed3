package rules

import (
	"regexp"
	"strings"

	"github.com/yaklabco/gotexlint/pkg/lint"
)

// newCommandPattern captures the name defined by \newcommand{\name}.
//
//nolint:gochecknoglobals // Compiled patterns are immutable.
var newCommandPattern = regexp.MustCompile(`\\newcommand\{\\([^}]+)\}`)

// UnbracedCommandRule checks that custom commands used as variables are
// followed by braces, so that trailing spaces are not swallowed.
type UnbracedCommandRule struct {
	lint.BaseRule
}

// NewUnbracedCommandRule creates a new unbraced-command rule.
func NewUnbracedCommandRule() *UnbracedCommandRule {
	return &UnbracedCommandRule{
		BaseRule: lint.NewBaseRule(
			"TEX003",
			"unbraced-command",
			"Unbraced custom-command variable",
			"A \\newcommand macro used in running text should be written \\name{} so the following space is kept.",
			[]string{"commands"},
		),
	}
}

// Check reports lines that use a custom command without a brace or line end after it.
func (r *UnbracedCommandRule) Check(ctx *lint.RuleContext) []int {
	var names []string
	seen := make(map[string]struct{})
	for _, match := range newCommandPattern.FindAllStringSubmatch(ctx.Text, -1) {
		if _, ok := seen[match[1]]; ok {
			continue
		}
		seen[match[1]] = struct{}{}
		names = append(names, match[1])
	}
	if len(names) == 0 {
		return nil
	}

	var set lint.LineSet
	for idx, line := range ctx.Lines() {
		if strings.Contains(line, `\newcommand`) {
			continue
		}
		if unbracedUse(line, names) {
			set.Add(idx + 1)
		}
	}
	return set.Sorted()
}

// unbracedUse reports whether any of the commands appears in line followed
// by something other than '{' or the end of the line.
func unbracedUse(line string, names []string) bool {
	for _, name := range names {
		for _, start := range commandOffsets(line, name) {
			end := start + 1 + len(name)
			if end < len(line) && line[end] != '{' {
				return true
			}
		}
	}
	return false
}
