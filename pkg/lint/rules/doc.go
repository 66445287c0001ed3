// Package rules provides the built-in lint rules for gotexlint.
//
// Every rule is a lexical detector over the comment-stripped LaTeX source.
// None of them parse LaTeX; they match patterns line by line or across the
// whole document and report 1-based line numbers.
//
// # Rule Domains
//
// Equations:
//   - TEX001 equation-end-punctuation: the final equation row ends with punctuation
//   - TEX007 where-after-equation: "where" directly follows its equation
//
// Abbreviations:
//   - TEX002 duplicate-abbreviation: an abbreviation is defined only once
//   - TEX011 unused-abbreviation: a defined abbreviation is used again
//
// Commands and references:
//   - TEX003 unbraced-command: custom command variables are followed by {}
//   - TEX008 adjacent-citations: adjacent \cite commands are merged
//   - TEX014 ref-spacing: \ref is tied to the preceding word with ~
//
// Punctuation:
//   - TEX004 latex-quotes: quotes use ` and ' pairs
//   - TEX005 unicode-dash: no Unicode en or em dashes
//   - TEX006 period-usage: periods are spaced correctly
//
// Prose and structure:
//   - TEX009 self-reference: no "our method"
//   - TEX010 section-capitalization: section titles are capitalized
//   - TEX015 itemize-blank-line: no blank line before \begin{itemize}
//
// Floats:
//   - TEX012 float-missing-label: tables and figures carry a \label
//   - TEX013 float-label-unreferenced: float labels are referenced
//
// # Options
//
// Rules with options read them through lint.RuleContext, falling back to the
// defaults returned by DefaultOptions. No option value is kept between runs.
package rules
