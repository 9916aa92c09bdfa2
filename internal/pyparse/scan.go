package pyparse

// lineScanner masks string literals and comments out of physical lines
// while carrying triple-quoted string state from line to line. Masked text
// keeps the original length, so byte offsets remain valid line offsets.
type lineScanner struct {
	triple     byte // quote byte of an open triple-quoted string, 0 when none
	tripleLine int  // physical line where the open string started
}

// mask returns line with comments and string contents (quotes included)
// replaced by spaces. Brackets, operators and identifiers outside strings
// are preserved.
func (s *lineScanner) mask(line string, lineno int) string {
	buf := []byte(line)
	i := 0
	for i < len(buf) {
		if s.triple != 0 {
			if isTripleAt(line, i, s.triple) {
				blank(buf, i, i+3)
				s.triple = 0
				i += 3
				continue
			}
			buf[i] = ' '
			i++
			continue
		}

		switch c := buf[i]; c {
		case '#':
			blank(buf, i, len(buf))
			i = len(buf)
		case '\'', '"':
			if isTripleAt(line, i, c) {
				blank(buf, i, i+3)
				s.triple = c
				s.tripleLine = lineno
				i += 3
				continue
			}
			i = s.maskShortString(buf, i, c)
		default:
			i++
		}
	}
	return string(buf)
}

// maskShortString blanks a single-quoted or double-quoted string starting
// at the opening quote. An unterminated string runs to the end of the line.
func (s *lineScanner) maskShortString(buf []byte, i int, quote byte) int {
	buf[i] = ' '
	i++
	for i < len(buf) {
		c := buf[i]
		buf[i] = ' '
		i++
		if c == '\\' && i < len(buf) {
			buf[i] = ' '
			i++
			continue
		}
		if c == quote {
			break
		}
	}
	return i
}

func isTripleAt(line string, i int, quote byte) bool {
	return len(line)-i >= 3 &&
		line[i] == quote && line[i+1] == quote && line[i+2] == quote
}

func blank(buf []byte, from, to int) {
	for i := from; i < to; i++ {
		buf[i] = ' '
	}
}
