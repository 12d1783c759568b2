// Package logfile reads workout log files as plain line sequences, leaving
// all interpretation of the lines to the core package.
package logfile

import (
	"bufio"
	"fmt"
	"os"

	"cloudeng.io/errors"
)

// ReadAll reads every path in order and returns their lines as one
// concatenated sequence. The first failure aborts the read, but every file
// that was opened is closed before ReadAll returns, whichever file or line
// the failure happened on.
func ReadAll(paths ...string) ([]string, error) {
	var lines []string
	for _, path := range paths {
		fileLines, err := readLines(path)
		if err != nil {
			return nil, err
		}
		lines = append(lines, fileLines...)
	}
	return lines, nil
}

func readLines(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	var out []string
	sc := bufio.NewScanner(f)
	for sc.Scan() {
		out = append(out, sc.Text())
	}
	errs := &errors.M{}
	if err := sc.Err(); err != nil {
		errs.Append(fmt.Errorf("read %s: %w", path, err))
	}
	if err := f.Close(); err != nil {
		errs.Append(fmt.Errorf("close %s: %w", path, err))
	}
	if err := errs.Err(); err != nil {
		return nil, err
	}
	return out, nil
}
