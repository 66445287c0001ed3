package lint

import (
	"slices"
)

// LineSet collects flagged line numbers without duplicates.
// The zero value is ready to use.
type LineSet struct {
	seen map[int]struct{}
}

// Add records a line.
func (s *LineSet) Add(line int) {
	if s.seen == nil {
		s.seen = make(map[int]struct{})
	}
	s.seen[line] = struct{}{}
}

// Has reports whether the line was recorded.
func (s *LineSet) Has(line int) bool {
	_, ok := s.seen[line]
	return ok
}

// Len returns the number of distinct lines.
func (s *LineSet) Len() int {
	return len(s.seen)
}

// Sorted returns the recorded lines in ascending order.
func (s *LineSet) Sorted() []int {
	if len(s.seen) == 0 {
		return nil
	}
	out := make([]int, 0, len(s.seen))
	for line := range s.seen {
		out = append(out, line)
	}
	slices.Sort(out)
	return out
}

// normalizeLines sorts lines, removes duplicates and drops anything outside
// [1, lineCount]. The input is not modified.
func normalizeLines(lines []int, lineCount int) []int {
	if len(lines) == 0 {
		return nil
	}
	out := make([]int, 0, len(lines))
	for _, line := range lines {
		if line >= 1 && line <= lineCount {
			out = append(out, line)
		}
	}
	slices.Sort(out)
	out = slices.Compact(out)
	if len(out) == 0 {
		return nil
	}
	return out
}
