package rules

import (
	"regexp"
	"strings"

	"github.com/yaklabco/gotexlint/pkg/lint"
)

// floatEventPattern matches the commands that drive float tracking.
//
//nolint:gochecknoglobals // Compiled patterns are immutable.
var floatEventPattern = regexp.MustCompile(`\\(begin|end|label)\{([^}]*)\}`)

func defaultFloatEnvironments() []string {
	return []string{"table", "table*", "figure", "figure*"}
}

func defaultRefCommands() []string {
	return []string{"ref"}
}

// floatLabel is a \label found inside a float.
type floatLabel struct {
	key  string
	line int
}

// floatScan is the result of walking a document's float environments.
type floatScan struct {
	// unlabeled holds the closing lines of floats without a \label.
	unlabeled []int

	// labels holds every \label defined inside a float, in document order.
	labels []floatLabel
}

type openFloat struct {
	env      string
	hasLabel bool
}

// scanFloats tracks float environments line by line. Floats may nest; an
// \end closes the innermost open float of the same name, discarding any
// unclosed floats inside it. Floats still open at the end are ignored.
func scanFloats(lines []string, environments []string) floatScan {
	tracked := stringSet(environments)

	var scan floatScan
	var stack []openFloat

	for idx, line := range lines {
		lineNum := idx + 1
		for _, match := range floatEventPattern.FindAllStringSubmatch(line, -1) {
			command, arg := match[1], match[2]

			switch command {
			case "begin":
				if _, ok := tracked[arg]; ok {
					stack = append(stack, openFloat{env: arg})
				}

			case "end":
				if _, ok := tracked[arg]; !ok {
					continue
				}
				pos := innermost(stack, arg)
				if pos < 0 {
					continue
				}
				if !stack[pos].hasLabel {
					scan.unlabeled = append(scan.unlabeled, lineNum)
				}
				stack = stack[:pos]

			case "label":
				if len(stack) == 0 {
					continue
				}
				stack[len(stack)-1].hasLabel = true
				scan.labels = append(scan.labels, floatLabel{key: arg, line: lineNum})
			}
		}
	}

	return scan
}

func innermost(stack []openFloat, env string) int {
	for pos := len(stack) - 1; pos >= 0; pos-- {
		if stack[pos].env == env {
			return pos
		}
	}
	return -1
}

// FloatMissingLabelRule checks that every float has a \label.
type FloatMissingLabelRule struct {
	lint.BaseRule
}

// NewFloatMissingLabelRule creates a new float-missing-label rule.
func NewFloatMissingLabelRule() *FloatMissingLabelRule {
	return &FloatMissingLabelRule{
		BaseRule: lint.NewBaseRule(
			"TEX012",
			"float-missing-label",
			"Float missing label",
			"Every table and figure should carry a \\label so it can be referenced.",
			[]string{"floats"},
		).WithDefaults(map[string]any{
			"environments": defaultFloatEnvironments(),
		}),
	}
}

// Check reports the closing line of each float without a \label.
func (r *FloatMissingLabelRule) Check(ctx *lint.RuleContext) []int {
	envs := ctx.OptionStringSlice("environments", defaultFloatEnvironments())
	scan := scanFloats(ctx.Lines(), envs)

	var set lint.LineSet
	for _, line := range scan.unlabeled {
		set.Add(line)
	}
	return set.Sorted()
}

// FloatLabelUnreferencedRule checks that every float label is referenced.
type FloatLabelUnreferencedRule struct {
	lint.BaseRule
}

// NewFloatLabelUnreferencedRule creates a new float-label-unreferenced rule.
func NewFloatLabelUnreferencedRule() *FloatLabelUnreferencedRule {
	return &FloatLabelUnreferencedRule{
		BaseRule: lint.NewBaseRule(
			"TEX013",
			"float-label-unreferenced",
			"Float label unreferenced",
			"Every labeled table and figure should be referenced from the text.",
			[]string{"floats", "references"},
		).WithDefaults(map[string]any{
			"environments": defaultFloatEnvironments(),
			"ref_commands": defaultRefCommands(),
		}),
	}
}

// Check reports the \label line of each float label that no reference command uses.
func (r *FloatLabelUnreferencedRule) Check(ctx *lint.RuleContext) []int {
	envs := ctx.OptionStringSlice("environments", defaultFloatEnvironments())
	refCommands := ctx.OptionStringSlice("ref_commands", defaultRefCommands())
	scan := scanFloats(ctx.Lines(), envs)

	var set lint.LineSet
	for _, label := range scan.labels {
		if !referenced(ctx.Text, label.key, refCommands) {
			set.Add(label.line)
		}
	}
	return set.Sorted()
}

func referenced(text, key string, commands []string) bool {
	for _, cmd := range commands {
		if strings.Contains(text, `\`+cmd+`{`+key+`}`) {
			return true
		}
	}
	return false
}
