// Package dataio holds small file helpers used alongside the generators.
package dataio

import (
	"bufio"
	"fmt"
	"os"
	"unicode/utf8"
)

// maxLineSize bounds a single line read by ReadLines.
const maxLineSize = 16 * 1024 * 1024

// ReadLines returns every line of the file at path without line terminators.
func ReadLines(path string) ([]string, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s: %w", path, err)
	}
	defer file.Close()

	var lines []string
	scanner := bufio.NewScanner(file)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineSize)
	for scanner.Scan() {
		lines = append(lines, scanner.Text())
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}
	return lines, nil
}

// LineStats summarizes a set of lines.
type LineStats struct {
	Lines      int
	Chars      int
	Longest    int
	EmptyLines int
}

// Stats counts lines and characters (runes) in lines.
func Stats(lines []string) LineStats {
	var s LineStats
	s.Lines = len(lines)
	for _, line := range lines {
		n := utf8.RuneCountInString(line)
		s.Chars += n
		s.Longest = max(s.Longest, n)
		if n == 0 {
			s.EmptyLines++
		}
	}
	return s
}
