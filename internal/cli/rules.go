package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"slices"
	"strings"

	"github.com/spf13/cobra"

	"github.com/yaklabco/gotexlint/internal/logging"
	"github.com/yaklabco/gotexlint/pkg/config"
	"github.com/yaklabco/gotexlint/pkg/lint"
)

type rulesFlags struct {
	ruleFormat string
	format     string
	tag        string
}

const formatJSON = "json"

// ruleInfo represents a rule in JSON output.
type ruleInfo struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Label       string   `json:"label"`
	Description string   `json:"description"`
	Severity    string   `json:"severity"`
	Enabled     bool     `json:"enabled"`
	Tags        []string `json:"tags"`
}

func newRulesCommand() *cobra.Command {
	flags := &rulesFlags{}

	cmd := &cobra.Command{
		Use:   "rules",
		Short: "List available lint rules",
		Long: `List all available lint rules with their IDs, names, labels,
default severity, and tags. Rules are listed in the order they run.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			rules := filterRulesByTag(lint.DefaultRegistry.Rules(), flags.tag)

			switch flags.format {
			case formatJSON:
				return outputRulesJSON(cmd.OutOrStdout(), rules)
			case "text", "":
			default:
				return withExitCode(ExitInvalidUsage,
					fmt.Errorf("invalid format %q: must be text or json", flags.format))
			}

			logger := logging.NewWithWriter(cmd.OutOrStdout(), "info")

			if len(rules) == 0 {
				logger.Info("no rules match", logging.FieldTags, flags.tag)
				return nil
			}

			logger.Info("available rules")

			ruleFormat := config.RuleFormat(flags.ruleFormat)

			for _, rule := range rules {
				ruleIdentifier := config.FormatRuleID(ruleFormat, rule.ID(), rule.Name(), rule.Label())

				logger.Info(ruleIdentifier,
					logging.FieldSeverity, rule.DefaultSeverity(),
					logging.FieldLabel, rule.Label(),
					logging.FieldEnabled, rule.DefaultEnabled(),
					logging.FieldTags, strings.Join(rule.Tags(), ","),
				)
			}

			return nil
		},
	}

	cmd.Flags().StringVar(&flags.ruleFormat, "rule-format", "name",
		"rule identifier format in output: name, id, label, or combined")
	cmd.Flags().StringVar(&flags.format, "format", "text",
		"output format: text, json")
	cmd.Flags().StringVar(&flags.tag, "tag", "", "only list rules with this tag")

	return cmd
}

// filterRulesByTag keeps the rules carrying tag. An empty tag keeps all rules.
func filterRulesByTag(rules []lint.Rule, tag string) []lint.Rule {
	if tag == "" {
		return rules
	}
	var kept []lint.Rule
	for _, rule := range rules {
		if slices.Contains(rule.Tags(), tag) {
			kept = append(kept, rule)
		}
	}
	return kept
}

// outputRulesJSON writes rules as a JSON array.
func outputRulesJSON(w io.Writer, rules []lint.Rule) error {
	infos := make([]ruleInfo, 0, len(rules))
	for _, rule := range rules {
		infos = append(infos, ruleInfo{
			ID:          rule.ID(),
			Name:        rule.Name(),
			Label:       rule.Label(),
			Description: rule.Description(),
			Severity:    string(rule.DefaultSeverity()),
			Enabled:     rule.DefaultEnabled(),
			Tags:        rule.Tags(),
		})
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(infos); err != nil {
		return fmt.Errorf("encoding rules: %w", err)
	}
	return nil
}
