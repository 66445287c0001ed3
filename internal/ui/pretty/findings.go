package pretty

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/yaklabco/gotexlint/pkg/config"
	"github.com/yaklabco/gotexlint/pkg/lint"
	"github.com/yaklabco/gotexlint/pkg/texdoc"
)

// maxListedLines caps the line list shown when source context is off.
const maxListedLines = 12

// FormatSeverity returns a styled severity string.
func (s *Styles) FormatSeverity(sev config.Severity) string {
	switch sev {
	case config.SeverityError:
		return s.Error.Render("error")
	case config.SeverityWarning:
		return s.Warning.Render("warning")
	case config.SeverityInfo:
		return s.Info.Render("info")
	default:
		return string(sev)
	}
}

// FormatFileHeader formats a file header for grouped output.
func (s *Styles) FormatFileHeader(path string, findingCount int) string {
	header := s.FilePath.Render(path)
	if findingCount > 0 {
		noun := "findings"
		if findingCount == 1 {
			noun = "finding"
		}
		header += s.Dim.Render(fmt.Sprintf(" (%d %s)", findingCount, noun))
	}
	return header
}

// FormatEntry formats one rule's findings in a file.
//
// With context, every flagged line is printed below the rule header:
//
//	warning  Improper dash character  (unicode-dash)
//	     12 │ pages 1–2
//
// Without context the line numbers are listed on the header.
func (s *Styles) FormatEntry(entry lint.Entry, ruleFormat config.RuleFormat, source *texdoc.LineIndex) string {
	var builder strings.Builder

	ruleIdentifier := config.FormatRuleID(ruleFormat, entry.RuleID, entry.RuleName, entry.Label)

	header := fmt.Sprintf("  %s  %s  %s",
		s.FormatSeverity(entry.Severity),
		s.Label.Render(entry.Label),
		s.RuleID.Render("("+ruleIdentifier+")"),
	)

	if source == nil || len(entry.Lines) == 0 {
		builder.WriteString(header + "  " + s.FormatLineList(entry.Lines) + "\n")
		return builder.String()
	}

	builder.WriteString(header + "\n")
	width := len(strconv.Itoa(entry.Lines[len(entry.Lines)-1]))
	for _, line := range entry.Lines {
		builder.WriteString(s.FormatSourceLine(line, width, source.Line(line)))
	}
	return builder.String()
}

// FormatLineList renders "lines 3, 7, 12", eliding long lists.
func (s *Styles) FormatLineList(lines []int) string {
	noun := "lines"
	if len(lines) == 1 {
		noun = "line"
	}

	shown := lines
	if len(shown) > maxListedLines {
		shown = shown[:maxListedLines]
	}
	parts := make([]string, len(shown))
	for idx, line := range shown {
		parts[idx] = s.LineNumber.Render(strconv.Itoa(line))
	}

	out := s.Dim.Render(noun+" ") + strings.Join(parts, s.Dim.Render(", "))
	if extra := len(lines) - len(shown); extra > 0 {
		out += s.Dim.Render(fmt.Sprintf(" and %d more", extra))
	}
	return out
}

// FormatSourceLine renders a numbered source line with a gutter.
func (s *Styles) FormatSourceLine(line, width int, text string) string {
	number := fmt.Sprintf("%*d", width, line)
	return "      " + s.LineNumber.Render(number) + " " + s.Gutter.Render("│") + " " +
		s.SourceLine.Render(strings.TrimRight(text, " \t\r")) + "\n"
}
