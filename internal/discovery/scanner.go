package discovery

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Scanner lists the PDF files of a corpus directory
type Scanner struct {
	extension string
}

// NewScanner creates a new Scanner for ".pdf" files
func NewScanner() *Scanner {
	return &Scanner{extension: ".pdf"}
}

// Scan returns the PDF files directly inside dir, in lexical order. The extension is matched
// case-insensitively and subdirectories are not entered.
func (s *Scanner) Scan(dir string) ([]string, error) {
	dir = filepath.Clean(dir)
	info, err := os.Stat(dir)
	if err != nil {
		return nil, fmt.Errorf("PDF directory does not exist: %s", dir)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("PDF directory is not a directory: %s", dir)
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("read PDF directory: %w", err)
	}

	var pdfs []string
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		if strings.EqualFold(filepath.Ext(e.Name()), s.extension) {
			pdfs = append(pdfs, filepath.Join(dir, e.Name()))
		}
	}
	return pdfs, nil
}

// Stem returns the file name of path without directory and extension
func Stem(path string) string {
	base := filepath.Base(path)
	return strings.TrimSuffix(base, filepath.Ext(base))
}
