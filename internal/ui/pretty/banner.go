package pretty

import (
	"time"
)

// FormatBanner formats the header printed by watch before each report.
func (s *Styles) FormatBanner(path string, at time.Time) string {
	return s.Banner.Render("gotexlint watch") + " " +
		s.FilePath.Render(path) + " " +
		s.Dim.Render(at.Format(time.TimeOnly))
}
