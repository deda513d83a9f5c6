package storage

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"ppe2e/internal/domain"
	"ppe2e/internal/parser"
)

// WriteText writes content to path. The write is not atomic: a crash may leave a partial file.
func (s *FileStorage) WriteText(path, content string) error {
	return s.write(path, []byte(content))
}

// SaveReport writes report as a YAML document to path
func (s *FileStorage) SaveReport(path string, report *domain.Report) error {
	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(report); err != nil {
		return fmt.Errorf("marshal report: %w", err)
	}
	if err := enc.Close(); err != nil {
		return fmt.Errorf("marshal report: %w", err)
	}
	return s.write(path, buf.Bytes())
}

// LoadReport reads and validates the report at path. See parser.ParseReport for the
// errors returned for unusable files.
func (s *FileStorage) LoadReport(path string) (*domain.Report, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read report: %w", err)
	}
	return parser.ParseReport(data)
}

func (s *FileStorage) write(path string, data []byte) error {
	if err := os.MkdirAll(filepath.Dir(path), os.FileMode(s.dirMode)); err != nil {
		return fmt.Errorf("create output dir: %w", err)
	}
	if err := os.WriteFile(path, data, os.FileMode(s.fileMode)); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}
