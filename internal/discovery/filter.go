package discovery

import (
	"path/filepath"
	"strings"

	"ppe2e/internal/domain"
)

// Filter narrows PDFs and tests down to the ones selected on the command line
type Filter struct{}

// NewFilter creates a new Filter
func NewFilter() *Filter {
	return &Filter{}
}

// Match reports whether name is selected by pattern. Patterns containing wildcards
// ("*", "?", "[") use filepath.Match semantics, anything else matches as a substring.
// An empty pattern selects everything.
func (f *Filter) Match(name, pattern string) bool {
	if pattern == "" {
		return true
	}
	if strings.ContainsAny(pattern, "*?[") {
		matched, err := filepath.Match(pattern, name)
		return err == nil && matched
	}
	return strings.Contains(name, pattern)
}

// FilterByName keeps the paths whose file name matches pattern, e.g. "*paper*.pdf"
func (f *Filter) FilterByName(paths []string, pattern string) []string {
	if pattern == "" {
		return paths
	}

	var filtered []string
	for _, p := range paths {
		if f.Match(filepath.Base(p), pattern) {
			filtered = append(filtered, p)
		}
	}
	return filtered
}

// FilterTests keeps the tests whose slug or name matches pattern, preserving config order
func (f *Filter) FilterTests(tests []domain.TestDefinition, pattern string) []domain.TestDefinition {
	if pattern == "" {
		return tests
	}

	var filtered []domain.TestDefinition
	for _, t := range tests {
		if f.Match(t.Slug, pattern) || f.Match(t.Name, pattern) {
			filtered = append(filtered, t)
		}
	}
	return filtered
}
