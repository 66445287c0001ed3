// Package analysis aggregates runner results into per-rule and per-file views.
package analysis

import (
	"cmp"
	"slices"

	"github.com/yaklabco/gotexlint/pkg/config"
	"github.com/yaklabco/gotexlint/pkg/runner"
)

// analysisContext holds temporary state during analysis.
type analysisContext struct {
	ruleMap   map[string]*RuleAnalysis
	fileMap   map[string]*FileAnalysis
	ruleFiles map[string]map[string]bool
	fileRules map[string]map[string]bool
}

func newAnalysisContext() *analysisContext {
	return &analysisContext{
		ruleMap:   make(map[string]*RuleAnalysis),
		fileMap:   make(map[string]*FileAnalysis),
		ruleFiles: make(map[string]map[string]bool),
		fileRules: make(map[string]map[string]bool),
	}
}

func (ctx *analysisContext) file(path string) *FileAnalysis {
	if _, ok := ctx.fileMap[path]; !ok {
		ctx.fileMap[path] = &FileAnalysis{Path: path}
		ctx.fileRules[path] = make(map[string]bool)
	}
	return ctx.fileMap[path]
}

func (ctx *analysisContext) rule(id, name, label string, sev config.Severity) *RuleAnalysis {
	if _, ok := ctx.ruleMap[id]; !ok {
		ctx.ruleMap[id] = &RuleAnalysis{
			RuleID:   id,
			RuleName: name,
			Label:    label,
			Severity: sev,
		}
		ctx.ruleFiles[id] = make(map[string]bool)
	}
	return ctx.ruleMap[id]
}

// Analyze transforms a runner.Result into a Report in a single pass.
func Analyze(result *runner.Result, opts Options) *Report {
	report := &Report{}
	if result == nil {
		return report
	}

	displayPath := opts.DisplayPath
	if displayPath == nil {
		displayPath = func(path string) string { return path }
	}

	ctx := newAnalysisContext()

	for _, file := range result.Files {
		if file.Error != nil {
			report.Totals.FilesErrored++
			continue
		}
		report.Totals.Files++
		if !file.HasIssues() {
			continue
		}
		report.Totals.FilesWithIssues++

		path := displayPath(file.Path)
		fa := ctx.file(path)

		for _, entry := range file.Report.Entries {
			n := len(entry.Lines)
			report.Totals.Lines += n
			addCounts(entry.Severity, n, &report.Totals.Errors, &report.Totals.Warnings, &report.Totals.Infos)

			fa.Lines += n
			addCounts(entry.Severity, n, &fa.Errors, &fa.Warnings, &fa.Infos)
			ctx.fileRules[path][entry.RuleID] = true

			ra := ctx.rule(entry.RuleID, entry.RuleName, entry.Label, entry.Severity)
			ra.Lines += n
			ctx.ruleFiles[entry.RuleID][path] = true
		}
	}

	if opts.IncludeByRule {
		report.ByRule = ctx.buildByRule(opts)
	}
	if opts.IncludeByFile {
		report.ByFile = ctx.buildByFile(opts)
	}

	return report
}

func (ctx *analysisContext) buildByRule(opts Options) []RuleAnalysis {
	out := make([]RuleAnalysis, 0, len(ctx.ruleMap))
	for id, ra := range ctx.ruleMap {
		for f := range ctx.ruleFiles[id] {
			ra.Files = append(ra.Files, f)
		}
		slices.Sort(ra.Files)
		out = append(out, *ra)
	}

	slices.SortFunc(out, func(left, right RuleAnalysis) int {
		return compareBy(opts,
			cmp.Compare(left.RuleID, right.RuleID),
			cmp.Compare(severityRank(left.Severity), severityRank(right.Severity)),
			cmp.Compare(left.Lines, right.Lines))
	})
	return out
}

func (ctx *analysisContext) buildByFile(opts Options) []FileAnalysis {
	out := make([]FileAnalysis, 0, len(ctx.fileMap))
	for path, fa := range ctx.fileMap {
		for r := range ctx.fileRules[path] {
			fa.Rules = append(fa.Rules, r)
		}
		slices.Sort(fa.Rules)
		out = append(out, *fa)
	}

	slices.SortFunc(out, func(left, right FileAnalysis) int {
		rank := cmp.Or(cmp.Compare(left.Errors, right.Errors), cmp.Compare(left.Warnings, right.Warnings))
		return compareBy(opts,
			cmp.Compare(left.Path, right.Path),
			rank,
			cmp.Compare(left.Lines, right.Lines))
	})
	return out
}

// compareBy orders two rows from their key, severity rank and count
// comparisons. Ties fall back to the key.
func compareBy(opts Options, byKey, byRank, byCount int) int {
	switch opts.SortBy {
	case SortByAlpha:
		return byKey
	case SortBySeverity:
		return cmp.Or(-byRank, -byCount, byKey)
	default: // SortByCount
		if opts.SortDesc {
			byCount = -byCount
		}
		return cmp.Or(byCount, byKey)
	}
}

func severityRank(sev config.Severity) int {
	switch sev {
	case config.SeverityError:
		return 2
	case config.SeverityWarning:
		return 1
	default:
		return 0
	}
}
