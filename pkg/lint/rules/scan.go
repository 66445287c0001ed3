package rules

import (
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"
)

// abbreviationPattern matches a parenthesized token without spaces or nested parentheses.
//
//nolint:gochecknoglobals // Compiled patterns are immutable.
var abbreviationPattern = regexp.MustCompile(`\(([^() ]+)\)`)

// isASCIILetter reports whether b is an ASCII letter.
func isASCIILetter(b byte) bool {
	return (b >= 'a' && b <= 'z') || (b >= 'A' && b <= 'Z')
}

// atCommandBoundary reports whether a control word ending at end is not
// continued by another letter, so that \ref does not match \refname.
func atCommandBoundary(s string, end int) bool {
	return end >= len(s) || !isASCIILetter(s[end])
}

// commandOffsets returns the byte offsets of every occurrence of the
// control word \name in s that ends at a command boundary.
func commandOffsets(s, name string) []int {
	needle := `\` + name
	checkBoundary := name != "" && isASCIILetter(name[len(name)-1])

	var offsets []int
	for from := 0; from < len(s); {
		idx := strings.Index(s[from:], needle)
		if idx < 0 {
			break
		}
		start := from + idx
		end := start + len(needle)
		if !checkBoundary || atCommandBoundary(s, end) {
			offsets = append(offsets, start)
		}
		from = start + 1
	}
	return offsets
}

// balancedGroup returns the content of the brace group opening at s[open].
// The boolean is false if s[open] is not '{' or the group is never closed.
func balancedGroup(s string, open int) (string, bool) {
	if open < 0 || open >= len(s) || s[open] != '{' {
		return "", false
	}
	depth := 0
	for idx := open; idx < len(s); idx++ {
		switch s[idx] {
		case '{':
			depth++
		case '}':
			depth--
			if depth == 0 {
				return s[open+1 : idx], true
			}
		}
	}
	return "", false
}

// letterBeforeTie reports whether the two runes before end are a letter followed by '~'.
func letterBeforeTie(s string, end int) bool {
	if end < 1 || s[end-1] != '~' {
		return false
	}
	r, size := utf8.DecodeLastRuneInString(s[:end-1])
	return size > 0 && unicode.IsLetter(r)
}

// stringSet builds a lookup set from a list.
func stringSet(items []string) map[string]struct{} {
	set := make(map[string]struct{}, len(items))
	for _, item := range items {
		set[item] = struct{}{}
	}
	return set
}
