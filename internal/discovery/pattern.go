package discovery

import "strings"

// Placeholders understood in the config's argument and path patterns
const (
	PlaceholderPDF     = "{pdf}"
	PlaceholderTest    = "{test_slug}"
	PlaceholderStem    = "{pdf_stem}"
	PlaceholderRunDate = "{e2e_run_date}"
)

// Expand replaces the given placeholders in pattern in a single pass. values alternates
// placeholder and replacement. Placeholders not listed are left as they are, and
// replacements are never expanded again.
func Expand(pattern string, values ...string) string {
	return strings.NewReplacer(values...).Replace(pattern)
}
