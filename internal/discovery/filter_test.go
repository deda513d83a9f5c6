package discovery

import (
	"testing"

	"ppe2e/internal/domain"
)

func TestFilter_FilterByName(t *testing.T) {
	filter := NewFilter()
	pdfs := []string{"/corpus/paper-1.pdf", "/corpus/paper-2.pdf", "/corpus/slides.pdf"}

	tests := []struct {
		name     string
		pattern  string
		expected int
	}{
		{name: "empty pattern returns all", pattern: "", expected: 3},
		{name: "wildcard pattern", pattern: "paper-*.pdf", expected: 2},
		{name: "single character wildcard", pattern: "paper-?.pdf", expected: 2},
		{name: "substring match", pattern: "slides", expected: 1},
		{name: "directory is not matched", pattern: "corpus", expected: 0},
		{name: "no matches", pattern: "*thesis*", expected: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := filter.FilterByName(pdfs, tt.pattern)
			if len(result) != tt.expected {
				t.Errorf("expected %d matches, got %d", tt.expected, len(result))
			}
		})
	}
}

func TestFilter_FilterTests(t *testing.T) {
	filter := NewFilter()
	tests := []domain.TestDefinition{
		{Name: "Plain text", Slug: "plain"},
		{Name: "Words", Slug: "words"},
		{Name: "Text blocks", Slug: "blocks"},
	}

	got := filter.FilterTests(tests, "*text*")
	if len(got) != 1 || got[0].Slug != "plain" {
		t.Errorf("expected only 'plain' for a case-sensitive name match, got %v", got)
	}

	got = filter.FilterTests(tests, "Text")
	if len(got) != 1 || got[0].Slug != "blocks" {
		t.Errorf("expected only 'blocks', got %v", got)
	}

	got = filter.FilterTests(tests, "")
	if len(got) != 3 {
		t.Errorf("expected all tests, got %d", len(got))
	}
}
