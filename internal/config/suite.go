package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"ppe2e/internal/domain"
)

// suiteFile mirrors the YAML layout of the suite config. Pointers tell missing keys apart
// from empty values.
type suiteFile struct {
	Paths *suitePaths  `yaml:"paths"`
	Tests *[]suiteTest `yaml:"tests"`
}

type suitePaths struct {
	PDFsDir            *string `yaml:"pdfs_dir"`
	ExpectedOutputFile *string `yaml:"expected_output_file"`
	ActualOutputFile   *string `yaml:"actual_output_file"`
	DiffFile           *string `yaml:"diff_file"`
	ReportFile         *string `yaml:"report_file"`
}

type suiteTest struct {
	Name    *string `yaml:"name"`
	Slug    *string `yaml:"slug"`
	PPPArgs *string `yaml:"ppp_args"`
}

// LoadSuite reads the suite config at path. Relative paths in the file are interpreted
// relative to the directory containing it.
func LoadSuite(path string) (*domain.Suite, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config file: %w", err)
	}

	var file suiteFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("parse config file: %w", err)
	}

	if file.Paths == nil {
		return nil, missingKey("paths")
	}
	p := file.Paths
	required := []struct {
		key   string
		value *string
	}{
		{"paths.pdfs_dir", p.PDFsDir},
		{"paths.expected_output_file", p.ExpectedOutputFile},
		{"paths.actual_output_file", p.ActualOutputFile},
		{"paths.diff_file", p.DiffFile},
		{"paths.report_file", p.ReportFile},
	}
	for _, r := range required {
		if r.value == nil {
			return nil, missingKey(r.key)
		}
	}
	if file.Tests == nil {
		return nil, missingKey("tests")
	}

	base := filepath.Dir(path)
	suite := &domain.Suite{
		PDFsDir: toAbs(base, *p.PDFsDir),
		Tests:   make([]domain.TestDefinition, 0, len(*file.Tests)),
	}

	for i, t := range *file.Tests {
		switch {
		case t.Name == nil:
			return nil, missingKey(fmt.Sprintf("tests[%d].name", i))
		case t.Slug == nil:
			return nil, missingKey(fmt.Sprintf("tests[%d].slug", i))
		case t.PPPArgs == nil:
			return nil, missingKey(fmt.Sprintf("tests[%d].ppp_args", i))
		}

		suite.Tests = append(suite.Tests, domain.TestDefinition{
			Name:                  *t.Name,
			Slug:                  *t.Slug,
			ArgsPattern:           *t.PPPArgs,
			ExpectedOutputPattern: toAbs(base, *p.ExpectedOutputFile),
			ActualOutputPattern:   toAbs(base, *p.ActualOutputFile),
			DiffPattern:           toAbs(base, *p.DiffFile),
			ReportPattern:         toAbs(base, *p.ReportFile),
		})
	}

	return suite, nil
}

func missingKey(key string) error {
	return fmt.Errorf("config file: missing key %q", key)
}

// toAbs joins a relative path onto base. Empty values stay empty so that discovery can
// report them.
func toAbs(base, path string) string {
	if path == "" || filepath.IsAbs(path) {
		return path
	}
	return filepath.Join(base, path)
}
