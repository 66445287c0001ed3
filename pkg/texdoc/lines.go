package texdoc

import (
	"sort"
	"strings"
)

// LineInfo holds the byte offsets of a single line.
type LineInfo struct {
	// StartOffset is the byte index of the first character of the line.
	StartOffset int

	// NewlineStart is the byte index where the line terminator begins
	// (the '\r' of a CRLF pair, the '\n', or len(text) for the last line).
	NewlineStart int

	// EndOffset is the byte index just past the line terminator.
	EndOffset int
}

// BuildLines constructs line metadata for text.
// It always returns at least one line; the empty document has one empty line.
func BuildLines(text string) []LineInfo {
	lines := make([]LineInfo, 0, strings.Count(text, "\n")+1)
	lineStart := 0

	for idx := 0; idx < len(text); idx++ {
		if text[idx] != '\n' {
			continue
		}

		newlineStart := idx
		if idx > lineStart && text[idx-1] == '\r' {
			newlineStart = idx - 1
		}

		lines = append(lines, LineInfo{
			StartOffset:  lineStart,
			NewlineStart: newlineStart,
			EndOffset:    idx + 1,
		})
		lineStart = idx + 1
	}

	// The last line never has a terminator; it may be empty.
	lines = append(lines, LineInfo{
		StartOffset:  lineStart,
		NewlineStart: len(text),
		EndOffset:    len(text),
	})

	return lines
}

// LineCount returns the number of lines in text.
func LineCount(text string) int {
	return strings.Count(text, "\n") + 1
}

// LineIndex maps byte offsets of a document to 1-based line numbers.
// A LineIndex is immutable once built and safe for concurrent reads.
type LineIndex struct {
	text  string
	lines []LineInfo
}

// NewLineIndex builds the index for text.
func NewLineIndex(text string) *LineIndex {
	return &LineIndex{
		text:  text,
		lines: BuildLines(text),
	}
}

// Text returns the indexed document.
func (x *LineIndex) Text() string {
	return x.text
}

// LineCount returns the number of lines in the document.
func (x *LineIndex) LineCount() int {
	return len(x.lines)
}

// LineAt converts a byte offset to a 1-based line number.
// Offset 0 is line 1. The '\n' that terminates a line belongs to that line.
// Negative offsets clamp to line 1; offsets at or past the end of the text
// clamp to the last line.
func (x *LineIndex) LineAt(offset int) int {
	if offset <= 0 {
		return 1
	}
	if offset >= len(x.text) {
		return len(x.lines)
	}

	lineIdx := sort.Search(len(x.lines), func(i int) bool {
		return x.lines[i].EndOffset > offset
	})
	if lineIdx >= len(x.lines) {
		lineIdx = len(x.lines) - 1
	}

	return lineIdx + 1
}

// Info returns the offsets of a 1-based line.
// The boolean is false if the line is out of range.
func (x *LineIndex) Info(line int) (LineInfo, bool) {
	if line < 1 || line > len(x.lines) {
		return LineInfo{}, false
	}
	return x.lines[line-1], true
}

// Line returns the content of a 1-based line without its terminator.
// It returns "" for out-of-range lines.
func (x *LineIndex) Line(line int) string {
	info, ok := x.Info(line)
	if !ok {
		return ""
	}
	return x.text[info.StartOffset:info.NewlineStart]
}

// Lines returns the content of every line, without terminators.
// Element i holds line i+1.
func (x *LineIndex) Lines() []string {
	out := make([]string, len(x.lines))
	for idx, info := range x.lines {
		out[idx] = x.text[info.StartOffset:info.NewlineStart]
	}
	return out
}
