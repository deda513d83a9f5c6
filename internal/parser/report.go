package parser

import (
	"fmt"

	"gopkg.in/yaml.v3"

	"ppe2e/internal/domain"
)

// ParseReport decodes a report file. It fails with ErrEmptyReport, ErrNotMapping or
// ErrMissingOK when the document is not a usable report, and with the YAML error when it
// cannot be parsed at all.
func ParseReport(data []byte) (*domain.Report, error) {
	var doc yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, err
	}
	if doc.Kind != yaml.DocumentNode || len(doc.Content) == 0 {
		return nil, ErrEmptyReport
	}

	root := doc.Content[0]
	switch {
	case root.Kind == yaml.ScalarNode && root.Tag == "!!null":
		return nil, ErrEmptyReport
	case root.Kind != yaml.MappingNode:
		return nil, ErrNotMapping
	case len(root.Content) == 0:
		return nil, ErrEmptyReport
	}

	if !hasValue(root, "ok") {
		return nil, ErrMissingOK
	}

	var report domain.Report
	if err := root.Decode(&report); err != nil {
		return nil, fmt.Errorf("decode report: %w", err)
	}
	return &report, nil
}

// hasValue reports whether mapping contains key with a non-null value
func hasValue(mapping *yaml.Node, key string) bool {
	for i := 0; i+1 < len(mapping.Content); i += 2 {
		if mapping.Content[i].Value != key {
			continue
		}
		v := mapping.Content[i+1]
		return !(v.Kind == yaml.ScalarNode && v.Tag == "!!null")
	}
	return false
}
