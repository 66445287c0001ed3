package rules

import (
	"regexp"
	"strings"

	"github.com/yaklabco/gotexlint/pkg/lint"
)

// quoteAlternatives are the mismatched quote spans, each anchored at the
// candidate start. A span only counts when followed by the line end or one
// of the characters in follow.
//
//nolint:gochecknoglobals // Compiled patterns are immutable.
var quoteAlternatives = []struct {
	pattern *regexp.Regexp
	follow  string
}{
	{regexp.MustCompile("^'[^`']+'"), "'"},
	{regexp.MustCompile("^''[^`'\"]+''"), "`'"},
	{regexp.MustCompile("^\"[^`'\"]+''"), "`'"},
	{regexp.MustCompile("^''[^`'\"]+\""), "`'"},
}

// spaceBeforePeriod matches whitespace immediately before a period.
//
//nolint:gochecknoglobals // Compiled patterns are immutable.
var spaceBeforePeriod = regexp.MustCompile(`\s\.`)

func defaultDomainSuffixes() []string {
	return []string{"com", "org", "net", "gov", "edu"}
}

func defaultExemptPhrases() []string {
	return []string{"e.g."}
}

// LatexQuotesRule checks for straight or mismatched quotation marks.
type LatexQuotesRule struct {
	lint.BaseRule
}

// NewLatexQuotesRule creates a new latex-quotes rule.
func NewLatexQuotesRule() *LatexQuotesRule {
	return &LatexQuotesRule{
		BaseRule: lint.NewBaseRule(
			"TEX004",
			"latex-quotes",
			"Improper LaTeX quotation marks",
			"Quotations should open with ` or `` and close with ' or ''.",
			[]string{"punctuation", "quotes"},
		),
	}
}

// Check reports lines containing a mismatched quote span.
func (r *LatexQuotesRule) Check(ctx *lint.RuleContext) []int {
	var set lint.LineSet
	for idx, line := range ctx.Lines() {
		if hasMismatchedQuotes(line) {
			set.Add(idx + 1)
		}
	}
	return set.Sorted()
}

// hasMismatchedQuotes tries every start position in line, left to right.
func hasMismatchedQuotes(line string) bool {
	for start := 0; start < len(line); start++ {
		if line[start] != '\'' && line[start] != '"' {
			continue
		}
		rest := line[start:]
		for _, alt := range quoteAlternatives {
			loc := alt.pattern.FindStringIndex(rest)
			if loc == nil {
				continue
			}
			if loc[1] == len(rest) || strings.IndexByte(alt.follow, rest[loc[1]]) >= 0 {
				return true
			}
		}
	}
	return false
}

// UnicodeDashRule checks for typographic dash characters in the source.
type UnicodeDashRule struct {
	lint.BaseRule
}

// NewUnicodeDashRule creates a new unicode-dash rule.
func NewUnicodeDashRule() *UnicodeDashRule {
	return &UnicodeDashRule{
		BaseRule: lint.NewBaseRule(
			"TEX005",
			"unicode-dash",
			"Improper dash character",
			"Write dashes as -- or --- instead of the Unicode en dash or em dash.",
			[]string{"punctuation"},
		),
	}
}

// Check reports lines containing U+2013 or U+2014.
func (r *UnicodeDashRule) Check(ctx *lint.RuleContext) []int {
	var set lint.LineSet
	for idx, line := range ctx.Lines() {
		if strings.ContainsAny(line, "–—") {
			set.Add(idx + 1)
		}
	}
	return set.Sorted()
}

// PeriodUsageRule checks for spaces before periods and missing spaces after them.
type PeriodUsageRule struct {
	lint.BaseRule
}

// NewPeriodUsageRule creates a new period-usage rule.
func NewPeriodUsageRule() *PeriodUsageRule {
	return &PeriodUsageRule{
		BaseRule: lint.NewBaseRule(
			"TEX006",
			"period-usage",
			"Improper period usage",
			"A period should not follow whitespace and should be followed by a space before the next word.",
			[]string{"punctuation"},
		).WithDefaults(map[string]any{
			"domain_suffixes": defaultDomainSuffixes(),
			"exempt_phrases":  defaultExemptPhrases(),
		}),
	}
}

// Check reports lines with a misplaced period.
func (r *PeriodUsageRule) Check(ctx *lint.RuleContext) []int {
	suffixes := ctx.OptionStringSlice("domain_suffixes", defaultDomainSuffixes())
	exempt := ctx.OptionStringSlice("exempt_phrases", defaultExemptPhrases())

	var set lint.LineSet
	for idx, line := range ctx.Lines() {
		if containsAny(line, exempt) {
			continue
		}
		if spaceBeforePeriod.MatchString(line) || periodBeforeLetter(line, suffixes) {
			set.Add(idx + 1)
		}
	}
	return set.Sorted()
}

// periodBeforeLetter reports whether a period is directly followed by a
// letter, ignoring domain names and periods closing a brace group.
func periodBeforeLetter(line string, suffixes []string) bool {
	for idx := 0; idx+1 < len(line); idx++ {
		if line[idx] != '.' || !isASCIILetter(line[idx+1]) {
			continue
		}
		if idx > 0 && line[idx-1] == '}' {
			continue
		}
		if hasAnyPrefix(line[idx+1:], suffixes) {
			continue
		}
		return true
	}
	return false
}

func containsAny(s string, phrases []string) bool {
	for _, phrase := range phrases {
		if phrase != "" && strings.Contains(s, phrase) {
			return true
		}
	}
	return false
}

func hasAnyPrefix(s string, prefixes []string) bool {
	for _, prefix := range prefixes {
		if prefix != "" && strings.HasPrefix(s, prefix) {
			return true
		}
	}
	return false
}
