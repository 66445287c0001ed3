package reporter

import (
	"bufio"
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"

	"github.com/yaklabco/gotexlint/pkg/analysis"
	"github.com/yaklabco/gotexlint/pkg/config"
	"github.com/yaklabco/gotexlint/pkg/runner"
	"github.com/yaklabco/gotexlint/pkg/texdoc"
)

const (
	htmlTitle = "gotexlint report"

	htmlHead = "<!DOCTYPE html>\n<html lang=\"en\">\n<head>\n<meta charset=\"utf-8\">\n<title>" +
		htmlTitle + "</title>\n</head>\n<body>\n"
	htmlTail = "</body>\n</html>\n"
)

// HTMLReporter renders results as a standalone HTML page.
// The page is composed as GitHub-flavored Markdown and converted with goldmark.
type HTMLReporter struct {
	opts Options
	md   goldmark.Markdown
	bw   *bufio.Writer
}

// NewHTMLReporter creates a new HTML reporter.
func NewHTMLReporter(opts Options) *HTMLReporter {
	return &HTMLReporter{
		opts: opts,
		md:   goldmark.New(goldmark.WithExtensions(extension.GFM)),
		bw:   bufio.NewWriterSize(opts.Writer, bufWriterSize),
	}
}

// Report implements Reporter.
func (r *HTMLReporter) Report(_ context.Context, result *runner.Result) (_ int, err error) {
	defer func() {
		if flushErr := r.bw.Flush(); err == nil {
			err = flushErr
		}
	}()

	markdown, total := r.buildMarkdown(result)

	if _, err := r.bw.WriteString(htmlHead); err != nil {
		return 0, fmt.Errorf("write HTML: %w", err)
	}
	if err := r.md.Convert([]byte(markdown), r.bw); err != nil {
		return 0, fmt.Errorf("render HTML: %w", err)
	}
	if _, err := r.bw.WriteString(htmlTail); err != nil {
		return 0, fmt.Errorf("write HTML: %w", err)
	}

	return total, nil
}

// BuildMarkdown returns the Markdown source of the HTML report.
func (r *HTMLReporter) BuildMarkdown(result *runner.Result) string {
	markdown, _ := r.buildMarkdown(result)
	return markdown
}

func (r *HTMLReporter) buildMarkdown(result *runner.Result) (string, int) {
	var builder strings.Builder
	var total int

	builder.WriteString("# " + htmlTitle + "\n\n")

	if result == nil || len(result.Files) == 0 {
		builder.WriteString("No files to check.\n")
		return builder.String(), 0
	}

	stats := result.Stats
	builder.WriteString("| Files checked | Files with issues | Flagged lines | Errors | Warnings | Info |\n")
	builder.WriteString("|---:|---:|---:|---:|---:|---:|\n")
	fmt.Fprintf(&builder, "| %d | %d | %d | %d | %d | %d |\n\n",
		stats.FilesProcessed,
		stats.FilesWithIssues,
		stats.FindingsTotal,
		stats.FindingsBySeverity[config.SeverityError],
		stats.FindingsBySeverity[config.SeverityWarning],
		stats.FindingsBySeverity[config.SeverityInfo],
	)

	r.writeRuleTable(&builder, result)

	for _, file := range result.Files {
		path := r.opts.displayPath(file.Path)

		if file.Error != nil {
			builder.WriteString("## " + codeSpan(path) + "\n\n")
			builder.WriteString("> **error:** " + escapeMarkdown(file.Error.Error()) + "\n\n")
			continue
		}
		if !file.HasIssues() {
			continue
		}

		builder.WriteString("## " + codeSpan(path) + "\n\n")

		var source *texdoc.LineIndex
		if r.opts.ShowContext && file.Source != "" {
			source = texdoc.NewLineIndex(file.Source)
		}

		for _, entry := range file.Report.Entries {
			ruleIdentifier := config.FormatRuleID(r.opts.RuleFormat, entry.RuleID, entry.RuleName, entry.Label)
			fmt.Fprintf(&builder, "### %s %s (%s)\n\n",
				"**"+string(entry.Severity)+"**",
				escapeMarkdown(entry.Label),
				codeSpan(ruleIdentifier),
			)

			if source == nil {
				builder.WriteString("Lines: " + joinLines(entry.Lines) + "\n\n")
			} else {
				builder.WriteString(contextBlock(source, entry.Lines))
			}
			total += len(entry.Lines)
		}
	}

	return builder.String(), total
}

// writeRuleTable renders the per-rule breakdown, busiest rules first.
func (r *HTMLReporter) writeRuleTable(builder *strings.Builder, result *runner.Result) {
	breakdown := analysis.Analyze(result, analysis.Options{
		IncludeByRule: true,
		SortBy:        analysis.SortByCount,
		SortDesc:      true,
		DisplayPath:   r.opts.displayPath,
	})
	if len(breakdown.ByRule) == 0 {
		return
	}

	builder.WriteString("## Rules\n\n")
	builder.WriteString("| Rule | Label | Severity | Lines | Files |\n")
	builder.WriteString("|---|---|---|---:|---:|\n")
	for _, rule := range breakdown.ByRule {
		ruleIdentifier := config.FormatRuleID(r.opts.RuleFormat, rule.RuleID, rule.RuleName, rule.Label)
		fmt.Fprintf(builder, "| %s | %s | %s | %d | %d |\n",
			codeSpan(ruleIdentifier),
			escapeMarkdown(rule.Label),
			rule.Severity,
			rule.Lines,
			len(rule.Files),
		)
	}
	builder.WriteString("\n")
}

func joinLines(lines []int) string {
	parts := make([]string, len(lines))
	for idx, line := range lines {
		parts[idx] = strconv.Itoa(line)
	}
	return strings.Join(parts, ", ")
}

// contextBlock renders the flagged lines as a fenced code block.
func contextBlock(source *texdoc.LineIndex, lines []int) string {
	width := len(strconv.Itoa(lines[len(lines)-1]))

	var body strings.Builder
	for _, line := range lines {
		fmt.Fprintf(&body, "%*d: %s\n", width, line, strings.TrimRight(source.Line(line), " \t\r"))
	}

	fence := strings.Repeat("`", max(3, longestRun(body.String(), '`')+1))
	return fence + "latex\n" + body.String() + fence + "\n\n"
}

// codeSpan wraps text in a backtick code span that cannot be closed early.
func codeSpan(text string) string {
	delim := strings.Repeat("`", longestRun(text, '`')+1)
	if strings.HasPrefix(text, "`") || strings.HasSuffix(text, "`") {
		text = " " + text + " "
	}
	return delim + text + delim
}

func longestRun(text string, ch byte) int {
	var best, run int
	for idx := range len(text) {
		if text[idx] == ch {
			run++
			best = max(best, run)
		} else {
			run = 0
		}
	}
	return best
}

// escapeMarkdown backslash-escapes ASCII punctuation so text renders literally.
func escapeMarkdown(text string) string {
	var builder strings.Builder
	builder.Grow(len(text))
	for _, r := range text {
		if r < 0x80 && strings.ContainsRune("\\`*_{}[]()<>#+-.!|~&\"'", r) {
			builder.WriteByte('\\')
		}
		builder.WriteRune(r)
	}
	return builder.String()
}
