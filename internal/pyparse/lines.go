package pyparse

import "strings"

// SplitLines splits source text into physical lines with terminators
// stripped. A trailing newline does not produce an empty final line.
func SplitLines(src []byte) []string {
	lines := strings.Split(string(src), "\n")
	if n := len(lines); n > 0 && lines[n-1] == "" {
		lines = lines[:n-1]
	}
	for i, l := range lines {
		lines[i] = strings.TrimSuffix(l, "\r")
	}
	return lines
}

// splitKeepEnds splits source text into physical lines that keep their
// terminators, so rejoining with "" reproduces the text.
func splitKeepEnds(src []byte) []string {
	var lines []string
	start := 0
	for i := 0; i < len(src); i++ {
		if src[i] == '\n' {
			lines = append(lines, string(src[start:i+1]))
			start = i + 1
		}
	}
	if start < len(src) {
		lines = append(lines, string(src[start:]))
	}
	return lines
}
