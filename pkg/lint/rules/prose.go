package rules

import (
	"regexp"
	"strings"

	"github.com/yaklabco/gotexlint/pkg/lint"
)

// selfReferencePattern matches "our method" as a phrase.
//
//nolint:gochecknoglobals // Compiled patterns are immutable.
var selfReferencePattern = regexp.MustCompile(`\b[Oo]ur method(?:[^a-zA-Z]|$)`)

// sectionCommandPattern matches the opening of \section, \subsection and
// similar commands, optionally starred.
//
//nolint:gochecknoglobals // Compiled patterns are immutable.
var sectionCommandPattern = regexp.MustCompile(`\\[a-z]*section\*?\{`)

// lowercaseWordPattern matches a whitespace-preceded word starting with a lowercase letter.
//
//nolint:gochecknoglobals // Compiled patterns are immutable.
var lowercaseWordPattern = regexp.MustCompile(`\s([a-z]\S*)`)

// SelfReferenceRule checks for the phrase "our method".
type SelfReferenceRule struct {
	lint.BaseRule
}

// NewSelfReferenceRule creates a new self-reference rule.
func NewSelfReferenceRule() *SelfReferenceRule {
	return &SelfReferenceRule{
		BaseRule: lint.NewBaseRule(
			"TEX009",
			"self-reference",
			"Self-referential phrase",
			`Refer to the proposed method by name instead of "our method".`,
			[]string{"prose"},
		),
	}
}

// Check reports lines containing "our method".
func (r *SelfReferenceRule) Check(ctx *lint.RuleContext) []int {
	var set lint.LineSet
	for idx, line := range ctx.Lines() {
		if selfReferencePattern.MatchString(line) {
			set.Add(idx + 1)
		}
	}
	return set.Sorted()
}

// SectionCapitalizationRule checks that section titles use title case.
type SectionCapitalizationRule struct {
	lint.BaseRule
}

// NewSectionCapitalizationRule creates a new section-capitalization rule.
func NewSectionCapitalizationRule() *SectionCapitalizationRule {
	return &SectionCapitalizationRule{
		BaseRule: lint.NewBaseRule(
			"TEX010",
			"section-capitalization",
			"Section title capitalization",
			"Every word of a section title after the first should start with a capital letter.",
			[]string{"sections"},
		).WithDefaults(map[string]any{
			"ignore_words":  []string{},
			"check_starred": true,
		}),
	}
}

// Check reports section lines whose title has a lowercase word.
func (r *SectionCapitalizationRule) Check(ctx *lint.RuleContext) []int {
	ignore := stringSet(ctx.OptionStringSlice("ignore_words", nil))
	checkStarred := ctx.OptionBool("check_starred", true)

	var set lint.LineSet
	for idx, line := range ctx.Lines() {
		for _, loc := range sectionCommandPattern.FindAllStringIndex(line, -1) {
			if !checkStarred && line[loc[1]-2] == '*' {
				continue
			}
			title, ok := balancedGroup(line, loc[1]-1)
			if !ok {
				continue
			}
			if hasLowercaseWord(title, ignore) {
				set.Add(idx + 1)
				break
			}
		}
	}
	return set.Sorted()
}

func hasLowercaseWord(title string, ignore map[string]struct{}) bool {
	for _, match := range lowercaseWordPattern.FindAllStringSubmatch(title, -1) {
		word := strings.TrimRight(match[1], ".,;:!?)}")
		if _, skip := ignore[word]; skip {
			continue
		}
		return true
	}
	return false
}
