package rules

import (
	"github.com/yaklabco/gotexlint/pkg/config"
	"github.com/yaklabco/gotexlint/pkg/lint"
)

// RegisterAll registers all built-in rules with the given registry.
// Registration order is the order of entries in every report.
func RegisterAll(registry *lint.Registry) {
	registry.Register(NewEquationEndPunctuationRule()) // TEX001
	registry.Register(NewDuplicateAbbreviationRule())  // TEX002
	registry.Register(NewUnbracedCommandRule())        // TEX003
	registry.Register(NewLatexQuotesRule())            // TEX004
	registry.Register(NewUnicodeDashRule())            // TEX005
	registry.Register(NewPeriodUsageRule())            // TEX006
	registry.Register(NewWhereAfterEquationRule())     // TEX007
	registry.Register(NewAdjacentCitationsRule())      // TEX008
	registry.Register(NewSelfReferenceRule())          // TEX009
	registry.Register(NewSectionCapitalizationRule())  // TEX010
	registry.Register(NewUnusedAbbreviationRule())     // TEX011
	registry.Register(NewFloatMissingLabelRule())      // TEX012
	registry.Register(NewFloatLabelUnreferencedRule()) // TEX013
	registry.Register(NewRefSpacingRule())             // TEX014
	registry.Register(NewItemizeBlankLineRule())       // TEX015
}

// RuleInfos describes the rules of a registry for configuration templates.
func RuleInfos(registry *lint.Registry) []config.RuleInfo {
	rules := registry.Rules()
	infos := make([]config.RuleInfo, 0, len(rules))
	for _, rule := range rules {
		infos = append(infos, config.RuleInfo{
			ID:       rule.ID(),
			Name:     rule.Name(),
			Label:    rule.Label(),
			Enabled:  rule.DefaultEnabled(),
			Severity: rule.DefaultSeverity(),
			Tags:     rule.Tags(),
			Options:  rule.DefaultOptions(),
		})
	}
	return infos
}

// init registers all built-in rules with the default registry.
//
//nolint:gochecknoinits // Init is intentional for automatic rule registration
func init() {
	RegisterAll(lint.DefaultRegistry)
	config.DefaultRuleInfoProvider = func() []config.RuleInfo {
		return RuleInfos(lint.DefaultRegistry)
	}
}
