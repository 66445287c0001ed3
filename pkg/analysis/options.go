package analysis

// SortField specifies how to sort analysis results.
type SortField string

const (
	// SortByCount sorts by flagged line count (descending by default).
	SortByCount SortField = "count"
	// SortByAlpha sorts by rule ID or path.
	SortByAlpha SortField = "alpha"
	// SortBySeverity sorts errors first, then warnings, then by count.
	SortBySeverity SortField = "severity"
)

// IsValid returns true if the sort field is valid.
func (s SortField) IsValid() bool {
	switch s {
	case SortByCount, SortByAlpha, SortBySeverity:
		return true
	default:
		return false
	}
}

// Options configures the Analyze function.
type Options struct {
	// IncludeByFile includes the per-file analysis.
	IncludeByFile bool

	// IncludeByRule includes the per-rule analysis.
	IncludeByRule bool

	// SortBy specifies how to sort ByFile and ByRule.
	SortBy SortField

	// SortDesc sorts counts in descending order (highest first).
	SortDesc bool

	// DisplayPath maps file paths before they are recorded.
	// Nil keeps paths as-is.
	DisplayPath func(path string) string
}

// DefaultOptions returns Options with sensible defaults.
func DefaultOptions() Options {
	return Options{
		IncludeByFile: true,
		IncludeByRule: true,
		SortBy:        SortByCount,
		SortDesc:      true,
	}
}
