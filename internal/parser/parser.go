package parser

import "errors"

// Reasons a report file is not usable for analysis. The analyzer prints them next to the
// skipped file, so they read as a continuation of "ignoring '<file>'".
var (
	ErrEmptyReport   = errors.New("is empty")
	ErrNotMapping    = errors.New("not in YAML format")
	ErrMissingOK     = errors.New("doesn't contain 'ok' entry")
	ErrNumstatBinary = errors.New("numstat reports a binary file")
)
