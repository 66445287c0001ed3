package lint

import (
	"fmt"

	"github.com/yaklabco/gotexlint/pkg/config"
	"github.com/yaklabco/gotexlint/pkg/texdoc"
)

// Engine runs the enabled rules of a registry over LaTeX documents.
// An Engine is immutable after construction and safe for concurrent use.
type Engine struct {
	// Registry holds all available rules.
	Registry *Registry

	cfg   *config.Config
	rules []ResolvedRule
}

// NewEngine creates an Engine running the rules that cfg enables.
// A nil cfg runs every rule that is enabled by default.
func NewEngine(registry *Registry, cfg *config.Config) *Engine {
	return &Engine{
		Registry: registry,
		cfg:      cfg,
		rules:    ResolveRules(registry, cfg),
	}
}

// Rules returns the resolved rules the engine runs, in run order.
func (e *Engine) Rules() []ResolvedRule {
	return e.rules
}

// RunAll strips comments from text, runs every enabled rule, and returns
// the non-empty results in registration order.
//
// RunAll never fails: a rule that panics is recorded in Report.RuleErrors
// and left out of the entries.
func (e *Engine) RunAll(text string) *Report {
	index := texdoc.NewLineIndex(texdoc.Strip(text))

	report := &Report{
		RuleErrors: make(map[string]error),
	}

	for _, rr := range e.rules {
		ruleCtx := NewRuleContext(index, e.cfg, rr.Config, rr.Rule.DefaultOptions())

		lines, err := runRule(rr.Rule, ruleCtx)
		if err != nil {
			report.RuleErrors[rr.Rule.ID()] = err
			continue
		}

		lines = normalizeLines(lines, index.LineCount())
		if len(lines) == 0 {
			continue
		}

		report.Entries = append(report.Entries, Entry{
			RuleID:   rr.Rule.ID(),
			RuleName: rr.Rule.Name(),
			Label:    rr.Rule.Label(),
			Severity: rr.Severity,
			Lines:    lines,
		})
	}

	return report
}

// runRule executes a single rule, converting a panic into an error.
func runRule(rule Rule, ruleCtx *RuleContext) (lines []int, err error) {
	defer func() {
		if rec := recover(); rec != nil {
			lines = nil
			err = fmt.Errorf("rule %s panicked: %v", rule.ID(), rec)
		}
	}()

	return rule.Check(ruleCtx), nil
}
