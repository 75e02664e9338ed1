package app

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
)

// ErrUsage is returned when the program is not given exactly one file.
var ErrUsage = errors.New("`burn` should be called with a single filepath.")

// OpenPage reads the file to burn. Errors carry the "failed to open file"
// prefix the terminal program reports.
func OpenPage(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open file: %w", err)
	}
	defer f.Close()
	lines, err := ReadPage(f, -1)
	if err != nil {
		return nil, fmt.Errorf("failed to open file: %w", err)
	}
	return lines, nil
}

// ReadPage splits r into lines without their terminators, stopping after
// limit lines when limit is non-negative. A trailing carriage return is
// dropped.
func ReadPage(r io.Reader, limit int) ([]string, error) {
	br := bufio.NewReader(r)
	var lines []string
	for limit < 0 || len(lines) < limit {
		line, err := br.ReadString('\n')
		if line != "" {
			line = strings.TrimSuffix(line, "\n")
			lines = append(lines, strings.TrimSuffix(line, "\r"))
		}
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return lines, err
		}
	}
	return lines, nil
}

// FitPage keeps the lines that fit inside a bordered rows-high grid.
func FitPage(lines []string, rows int) []string {
	room := max(rows-2, 0)
	if len(lines) > room {
		return lines[:room]
	}
	return lines
}
