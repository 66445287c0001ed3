package rules

import (
	"regexp"

	"github.com/yaklabco/gotexlint/pkg/lint"
)

// alphabeticToken matches tokens eligible for unused-abbreviation tracking.
//
//nolint:gochecknoglobals // Compiled patterns are immutable.
var alphabeticToken = regexp.MustCompile(`^[A-Za-z]+$`)

// defaultDuplicateWhitelist lists tokens that may be parenthesized repeatedly,
// such as sub-figure markers and equation numbers.
func defaultDuplicateWhitelist() []string {
	return []string{"a", "b", "1", "2", "3", "lr"}
}

// defaultUnusedWhitelist lists tokens never reported as unused.
func defaultUnusedWhitelist() []string {
	return []string{"a", "b", "1", "2", "3", "lr", "R"}
}

// DuplicateAbbreviationRule checks that an abbreviation is defined only once.
type DuplicateAbbreviationRule struct {
	lint.BaseRule
}

// NewDuplicateAbbreviationRule creates a new duplicate-abbreviation rule.
func NewDuplicateAbbreviationRule() *DuplicateAbbreviationRule {
	return &DuplicateAbbreviationRule{
		BaseRule: lint.NewBaseRule(
			"TEX002",
			"duplicate-abbreviation",
			"Duplicate abbreviation definition",
			"A parenthesized abbreviation such as (CNN) should be introduced only once.",
			[]string{"abbreviations"},
		).WithDefaults(map[string]any{
			"whitelist": defaultDuplicateWhitelist(),
		}),
	}
}

// Check reports every line that repeats an earlier parenthesized token.
func (r *DuplicateAbbreviationRule) Check(ctx *lint.RuleContext) []int {
	whitelist := stringSet(ctx.OptionStringSlice("whitelist", defaultDuplicateWhitelist()))
	seen := make(map[string]struct{})

	var set lint.LineSet
	for idx, line := range ctx.Lines() {
		for _, match := range abbreviationPattern.FindAllStringSubmatch(line, -1) {
			token := match[1]
			_, repeated := seen[token]
			_, allowed := whitelist[token]
			if repeated && !allowed {
				set.Add(idx + 1)
				continue
			}
			seen[token] = struct{}{}
		}
	}
	return set.Sorted()
}

// UnusedAbbreviationRule checks that every defined abbreviation is used again.
type UnusedAbbreviationRule struct {
	lint.BaseRule
}

// NewUnusedAbbreviationRule creates a new unused-abbreviation rule.
func NewUnusedAbbreviationRule() *UnusedAbbreviationRule {
	return &UnusedAbbreviationRule{
		BaseRule: lint.NewBaseRule(
			"TEX011",
			"unused-abbreviation",
			"Unused abbreviation",
			"An abbreviation that is defined but never used afterwards should be spelled out instead.",
			[]string{"abbreviations"},
		).WithDefaults(map[string]any{
			"whitelist": defaultUnusedWhitelist(),
		}),
	}
}

// Check reports the definition line of each abbreviation that occurs only once.
func (r *UnusedAbbreviationRule) Check(ctx *lint.RuleContext) []int {
	whitelist := stringSet(ctx.OptionStringSlice("whitelist", defaultUnusedWhitelist()))

	type definition struct {
		token string
		line  int
	}
	var defs []definition
	defined := make(map[string]struct{})

	for idx, line := range ctx.Lines() {
		for _, match := range abbreviationPattern.FindAllStringSubmatch(line, -1) {
			token := match[1]
			if !alphabeticToken.MatchString(token) {
				continue
			}
			if _, ok := whitelist[token]; ok {
				continue
			}
			if _, ok := defined[token]; ok {
				continue
			}
			defined[token] = struct{}{}
			defs = append(defs, definition{token: token, line: idx + 1})
		}
	}

	var set lint.LineSet
	for _, def := range defs {
		usage := regexp.MustCompile(`\b` + regexp.QuoteMeta(def.token) + `\b`)
		if len(usage.FindAllStringIndex(ctx.Text, 2)) == 1 {
			set.Add(def.line)
		}
	}
	return set.Sorted()
}
