package texdoc

import "strings"

// Strip removes LaTeX line comments from text.
//
// A comment starts at the first '%' on a line that is not immediately
// preceded by a backslash and runs to the end of that line. The comment text
// is removed but the line terminator is kept, so Strip never changes the
// number of lines: LineCount(Strip(t)) == LineCount(t) for every t.
func Strip(text string) string {
	if strings.IndexByte(text, '%') < 0 {
		return text
	}

	var builder strings.Builder
	builder.Grow(len(text))

	lineStart := 0
	for lineStart <= len(text) {
		lineEnd := strings.IndexByte(text[lineStart:], '\n')
		last := lineEnd < 0
		if last {
			lineEnd = len(text)
		} else {
			lineEnd += lineStart
		}

		line := text[lineStart:lineEnd]
		if cut := CommentStart(line); cut >= 0 {
			line = line[:cut]
		}
		builder.WriteString(line)

		if last {
			break
		}
		builder.WriteByte('\n')
		lineStart = lineEnd + 1
	}

	return builder.String()
}

// CommentStart returns the byte index of the first unescaped '%' in line,
// or -1 if the line has no comment.
func CommentStart(line string) int {
	for idx := 0; idx < len(line); idx++ {
		if line[idx] != '%' {
			continue
		}
		if idx > 0 && line[idx-1] == '\\' {
			continue
		}
		return idx
	}
	return -1
}
