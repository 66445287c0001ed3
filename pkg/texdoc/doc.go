// Package texdoc provides the text-level view of a LaTeX document used by the
// lint engine: comment stripping and byte-offset to line-number mapping.
//
// Documents are plain strings with '\n' line separators. Line numbers are
// 1-based and counted by '\n' occurrences, so "a\nb\n" has three lines, the
// last of which is empty.
package texdoc
