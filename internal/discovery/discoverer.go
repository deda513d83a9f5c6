package discovery

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"ppe2e/internal/domain"
)

// Discoverer resolves test definitions into test cases, one per PDF with ground truth
type Discoverer struct {
	scanner *Scanner
	filter  *Filter
}

// NewDiscoverer creates a new Discoverer
func NewDiscoverer(scanner *Scanner, filter *Filter) *Discoverer {
	return &Discoverer{scanner: scanner, filter: filter}
}

// SelectTests returns the tests matching pattern in config order
func (d *Discoverer) SelectTests(tests []domain.TestDefinition, pattern string) []domain.TestDefinition {
	return d.filter.FilterTests(tests, pattern)
}

// Discover lists the test cases of test. PDFs whose expected output file does not exist are
// not part of the test and are skipped silently. pdfPattern optionally narrows the PDFs.
func (d *Discoverer) Discover(run domain.RunContext, suite *domain.Suite, test domain.TestDefinition, pdfPattern string) ([]domain.TestCase, error) {
	if err := validate(suite, test); err != nil {
		return nil, err
	}

	pdfs, err := d.scanner.Scan(suite.PDFsDir)
	if err != nil {
		return nil, err
	}
	pdfs = d.filter.FilterByName(pdfs, pdfPattern)

	exe := run.Executable.Path
	runDate := run.FileNameDate()

	var cases []domain.TestCase
	for _, pdf := range pdfs {
		stem := Stem(pdf)

		expected := Expand(test.ExpectedOutputPattern,
			PlaceholderTest, test.Slug,
			PlaceholderStem, stem,
		)
		if _, err := os.Stat(expected); err != nil {
			if errors.Is(err, os.ErrNotExist) {
				continue
			}
			return nil, fmt.Errorf("check expected output file: %w", err)
		}

		paths := []string{
			PlaceholderRunDate, runDate,
			PlaceholderTest, test.Slug,
			PlaceholderStem, stem,
		}
		cases = append(cases, domain.TestCase{
			PDFPath:            pdf,
			ExpectedOutputPath: expected,
			ActualOutputPath:   Expand(test.ActualOutputPattern, paths...),
			DiffPath:           Expand(test.DiffPattern, paths...),
			ReportPath:         Expand(test.ReportPattern, paths...),
			Command:            exe + " " + Expand(test.ArgsPattern, PlaceholderPDF, pdf),
			ShortCommand:       filepath.Base(exe) + " " + Expand(test.ArgsPattern, PlaceholderPDF, filepath.Base(pdf)),
		})
	}
	return cases, nil
}

func validate(suite *domain.Suite, test domain.TestDefinition) error {
	switch {
	case suite == nil:
		return errors.New("no config given")
	case suite.PDFsDir == "":
		return errors.New("the config does not contain a path to a PDF directory")
	case test.Slug == "":
		return errors.New("no test slug given")
	case test.ArgsPattern == "":
		return errors.New("no arguments pattern for the pdftotext++ command given")
	case test.ExpectedOutputPattern == "":
		return errors.New("no expected output file path pattern given")
	case test.ActualOutputPattern == "":
		return errors.New("no actual output file path pattern given")
	case test.DiffPattern == "":
		return errors.New("no diff file path pattern given")
	case test.ReportPattern == "":
		return errors.New("no report file path pattern given")
	}
	return nil
}
