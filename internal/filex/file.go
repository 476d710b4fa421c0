// Package filex holds the small filesystem helpers shared by the
// flat-file record stores.
package filex

import (
	"bufio"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"
)

// EnsureDir creates dir (and parents) if it does not exist and returns
// dir unchanged.
func EnsureDir(dir string) (string, error) {
	if err := os.MkdirAll(dir, 0o770); err != nil {
		return "", fmt.Errorf("mkdir %s: %w", dir, err)
	}
	return dir, nil
}

// ReadLines reads path and returns its non-empty lines. A missing file
// is not an error: it returns (nil, false, nil) so callers can seed
// initial state.
func ReadLines(path string) ([]string, bool, error) {
	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, false, nil
		}
		return nil, false, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()

	var lines []string
	sc := bufio.NewScanner(f)
	for sc.Scan() {
		if line := sc.Text(); line != "" {
			lines = append(lines, line)
		}
	}
	if err := sc.Err(); err != nil {
		return nil, true, fmt.Errorf("read %s: %w", path, err)
	}
	return lines, true, nil
}

// WriteLines truncates path and writes one line per element, each
// terminated by a newline. This is the full-overwrite flush every
// mutating command ends with.
func WriteLines(path string, lines []string) error {
	var b strings.Builder
	for _, line := range lines {
		b.WriteString(line)
		b.WriteByte('\n')
	}
	if err := os.WriteFile(path, []byte(b.String()), 0o660); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}
