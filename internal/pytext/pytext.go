// Package pytext provides line-level text heuristics shared by the lexical
// rules and the parse-repair loop: comment offsets, the stray-semicolon
// finder, definition-header scanning, and the naming-style predicates.
package pytext

import "strings"

// CommentStart returns the offset of the first '#' that is not inside a
// single- or double-quoted span, or len(line) when the line has no comment.
func CommentStart(line string) int {
	var quote byte
	for i := 0; i < len(line); i++ {
		c := line[i]
		if quote != 0 {
			if c == '\\' {
				i++
				continue
			}
			if c == quote {
				quote = 0
			}
			continue
		}
		switch c {
		case '\'', '"':
			quote = c
		case '#':
			return i
		}
	}
	return len(line)
}

// FindStraySemicolon returns the offset of the first semicolon on the line
// that acts as a statement separator, or -1 when there is none.
//
// This is a heuristic, not a lexer: the comment boundary is the first '#'
// regardless of quoting, and any quote character between a candidate
// semicolon and that boundary is taken to mean the semicolon sits inside a
// string. It can misjudge lines that mix quotes, semicolons and '#' in
// unusual ways; that behavior is deliberate and relied upon by the repair
// loop.
func FindStraySemicolon(line string) int {
	hash := strings.IndexByte(line, '#')
	if hash < 0 {
		hash = len(line)
	}
	for i := 0; i < len(line); i++ {
		if line[i] != ';' {
			continue
		}
		if i > hash {
			continue
		}
		if strings.ContainsAny(line[i+1:hash], `"'`) {
			continue
		}
		return i
	}
	return -1
}

// IndentWidth returns the number of leading space characters. Tabs do not
// count as indentation.
func IndentWidth(line string) int {
	n := 0
	for n < len(line) && line[n] == ' ' {
		n++
	}
	return n
}
