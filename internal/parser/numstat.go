package parser

import (
	"fmt"
	"strconv"
	"strings"
)

// ParseNumstat extracts the insert and delete counts from the output of "git diff --numstat".
// The output has the form "<inserts>\t<deletes>\t<path>". Anything that does not split into
// exactly three fields (no differences, or an unexpected layout) yields 0/0.
func ParseNumstat(output string) (inserts, deletes int, err error) {
	fields := strings.Split(strings.TrimRight(output, "\r\n"), "\t")
	if len(fields) != 3 {
		return 0, 0, nil
	}

	if fields[0] == "-" || fields[1] == "-" {
		return 0, 0, ErrNumstatBinary
	}
	if inserts, err = strconv.Atoi(strings.TrimSpace(fields[0])); err != nil {
		return 0, 0, fmt.Errorf("parse numstat inserts %q: %w", fields[0], err)
	}
	if deletes, err = strconv.Atoi(strings.TrimSpace(fields[1])); err != nil {
		return 0, 0, fmt.Errorf("parse numstat deletes %q: %w", fields[1], err)
	}
	return inserts, deletes, nil
}
