package config

// FormatRuleID formats a rule identifier based on the given format.
// Falls back to the ID when the requested field is empty.
func FormatRuleID(format RuleFormat, ruleID, ruleName, label string) string {
	switch format {
	case RuleFormatID:
		return ruleID
	case RuleFormatLabel:
		if label == "" {
			return ruleID
		}
		return label
	case RuleFormatCombined:
		if ruleName == "" {
			return ruleID
		}
		return ruleID + "/" + ruleName
	default:
		if ruleName == "" {
			return ruleID
		}
		return ruleName
	}
}
