package pyparse

import "strings"

// The helpers in this file operate on masked text only: string literals and
// comments are already blanked, so every bracket and operator byte is code.

func isOpenBracket(c byte) bool  { return c == '(' || c == '[' || c == '{' }
func isCloseBracket(c byte) bool { return c == ')' || c == ']' || c == '}' }

// topIndexByte returns the offset of the first occurrence of sep outside
// any brackets, or -1.
func topIndexByte(text string, sep byte) int {
	depth := 0
	for i := 0; i < len(text); i++ {
		c := text[i]
		switch {
		case isOpenBracket(c):
			depth++
		case isCloseBracket(c):
			depth--
		case c == sep && depth == 0:
			return i
		}
	}
	return -1
}

// piece is a sub-span of a larger text, offset-tagged so its position can
// be mapped back to a physical line.
type piece struct {
	off  int
	text string
}

// topSplit splits text on sep occurrences outside brackets, keeping byte
// offsets of each piece.
func topSplit(text string, sep byte) []piece {
	var out []piece
	depth := 0
	start := 0
	for i := 0; i < len(text); i++ {
		c := text[i]
		switch {
		case isOpenBracket(c):
			depth++
		case isCloseBracket(c):
			depth--
		case c == sep && depth == 0:
			out = append(out, piece{off: start, text: text[start:i]})
			start = i + 1
		}
	}
	out = append(out, piece{off: start, text: text[start:]})
	return out
}

// assignOffsets returns the offsets of every top-level plain '=' in text:
// not part of '==', not the tail of an augmented or comparison operator,
// and not a walrus binding.
func assignOffsets(text string) []int {
	var out []int
	depth := 0
	for i := 0; i < len(text); i++ {
		c := text[i]
		switch {
		case isOpenBracket(c):
			depth++
		case isCloseBracket(c):
			depth--
		case c == '=' && depth == 0:
			if i+1 < len(text) && text[i+1] == '=' {
				i++ // skip both halves of '=='
				continue
			}
			if i > 0 && strings.IndexByte("=!<>+-*/%&|^:@", text[i-1]) >= 0 {
				continue
			}
			out = append(out, i)
		}
	}
	return out
}

// isIdent reports whether s is a plain identifier.
func isIdent(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c == '_' || ('a' <= c && c <= 'z') || ('A' <= c && c <= 'Z') {
			continue
		}
		if i > 0 && '0' <= c && c <= '9' {
			continue
		}
		return false
	}
	return true
}

// trailingBackslash reports whether the masked line ends with an explicit
// line-continuation backslash.
func trailingBackslash(masked string) bool {
	return strings.HasSuffix(strings.TrimRight(masked, " \t"), "\\")
}
