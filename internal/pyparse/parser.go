// Package pyparse builds a best-effort syntax tree from Python-ish source.
// It is a line-oriented recognizer, not a full grammar: it understands
// strings, comments, bracket continuations, indentation blocks, definition
// headers and assignments, which is enough for the structural rules. It
// reports the two failure kinds the repair loop knows how to patch.
package pyparse

import (
	"strings"

	"github.com/RomanSafe/static-code-analyser/internal/pyast"
	"github.com/RomanSafe/static-code-analyser/internal/pytext"
)

// logLine is one logical line: physical lines joined across bracket
// continuations, triple-quoted strings and trailing backslashes. The text
// is masked and keeps its newlines so offsets map back to physical lines.
type logLine struct {
	start  int // 1-based physical line of the first segment
	indent int // leading whitespace count of the first segment
	text   string
}

// lineAt maps a byte offset in the logical text to its physical line.
func (ll *logLine) lineAt(off int) int {
	if off > len(ll.text) {
		off = len(ll.text)
	}
	return ll.start + strings.Count(ll.text[:off], "\n")
}

// opens reports whether the logical line opens a block.
func (ll *logLine) opens() bool {
	return strings.HasSuffix(strings.TrimRight(ll.text, " \t"), ":")
}

type frame struct {
	indent int
	body   *[]pyast.Stmt
}

type parser struct {
	scan  lineScanner
	lines []string
	pos   int

	stack         []frame
	pending       *[]pyast.Stmt // opened block awaiting its first statement
	pendingIndent int
}

// Parse builds a tree from src or fails with a *ParseError naming the
// offending physical line.
func Parse(src []byte) (*pyast.Module, error) {
	p := &parser{lines: SplitLines(src)}
	m := &pyast.Module{}
	p.stack = []frame{{indent: 0, body: &m.Body}}

	for {
		ll, err := p.nextLogical()
		if err != nil {
			return nil, err
		}
		if ll == nil {
			break
		}
		if off := topIndexByte(ll.text, ';'); off >= 0 {
			return nil, &ParseError{Kind: ErrSyntax, Line: ll.lineAt(off), Msg: "unexpected ';'"}
		}
		if err := p.enter(ll); err != nil {
			return nil, err
		}
	}

	if p.pending != nil {
		return nil, &ParseError{Kind: ErrSyntax, Line: len(p.lines), Msg: "expected an indented block"}
	}
	return m, nil
}

// nextLogical returns the next logical line, nil at end of input.
func (p *parser) nextLogical() (*logLine, error) {
	var first, raw string
	var start int
	for {
		if p.pos >= len(p.lines) {
			return nil, nil
		}
		start = p.pos + 1
		raw = p.lines[p.pos]
		first = p.scan.mask(raw, start)
		p.pos++
		if p.scan.triple != 0 {
			break // the line opened a multi-line string
		}
		if !transparent(raw) {
			break
		}
	}

	text := first
	last := first
	depth, err := p.depthAfter(0, first, start)
	if err != nil {
		return nil, err
	}

	for p.scan.triple != 0 || depth > 0 || trailingBackslash(last) {
		if p.pos >= len(p.lines) {
			if p.scan.triple != 0 {
				return nil, &ParseError{Kind: ErrSyntax, Line: p.scan.tripleLine, Msg: "unterminated string literal"}
			}
			return nil, &ParseError{Kind: ErrSyntax, Line: start, Msg: "unexpected end of file"}
		}
		lineno := p.pos + 1
		seg := p.scan.mask(p.lines[p.pos], lineno)
		p.pos++
		text += "\n" + seg
		last = seg
		depth, err = p.depthAfter(depth, seg, lineno)
		if err != nil {
			return nil, err
		}
	}

	return &logLine{start: start, indent: indentOf(raw), text: text}, nil
}

// transparent reports whether a raw physical line is structurally
// transparent between logical lines: blank or comment-only. The check
// runs on the raw text, not the masked text, because masking also blanks
// string literals and a line holding only a string literal is still a
// statement.
func transparent(raw string) bool {
	t := strings.TrimLeft(raw, " \t")
	return t == "" || t[0] == '#'
}

// depthAfter advances the bracket depth across one masked segment. A close
// bracket below depth zero is a syntax error at that segment's line.
func (p *parser) depthAfter(depth int, seg string, lineno int) (int, error) {
	for i := 0; i < len(seg); i++ {
		c := seg[i]
		switch {
		case isOpenBracket(c):
			depth++
		case isCloseBracket(c):
			depth--
			if depth < 0 {
				return 0, &ParseError{Kind: ErrSyntax, Line: lineno, Msg: "unmatched closing bracket"}
			}
		}
	}
	return depth, nil
}

// enter places the logical line's statement into the block structure.
func (p *parser) enter(ll *logLine) error {
	ind := ll.indent
	if p.pending != nil {
		if ind <= p.pendingIndent {
			return &ParseError{Kind: ErrSyntax, Line: ll.start, Msg: "expected an indented block"}
		}
		p.stack = append(p.stack, frame{indent: ind, body: p.pending})
		p.pending = nil
	} else {
		if ind > p.stack[len(p.stack)-1].indent {
			return &ParseError{Kind: ErrIndentation, Line: ll.start, Msg: "unexpected indent"}
		}
		for len(p.stack) > 1 && ind < p.stack[len(p.stack)-1].indent {
			p.stack = p.stack[:len(p.stack)-1]
		}
		if ind != p.stack[len(p.stack)-1].indent {
			return &ParseError{Kind: ErrIndentation, Line: ll.start, Msg: "unindent does not match any outer level"}
		}
	}

	st, body := p.statement(ll)
	top := p.stack[len(p.stack)-1]
	*top.body = append(*top.body, st)

	if body != nil && ll.opens() {
		p.pending = body
		p.pendingIndent = ind
	}
	return nil
}

// statement classifies one logical line. The second return value is the
// statement's body slot when the statement can open a block.
func (p *parser) statement(ll *logLine) (pyast.Stmt, *[]pyast.Stmt) {
	shift := 0
	for shift < len(ll.text) && (ll.text[shift] == ' ' || ll.text[shift] == '\t') {
		shift++
	}

	head := ll.text[shift:]
	h := pytext.ScanDefHeader(head)
	if h == nil {
		if alt := withoutReturnAnnotation(head); alt != head {
			h = pytext.ScanDefHeader(alt)
		}
	}
	if h != nil {
		if h.Keyword == "def" {
			fd := &pyast.FuncDef{Line: ll.start, Name: h.Name}
			parseParams(fd, h, ll, shift)
			return fd, &fd.Body
		}
		cd := &pyast.ClassDef{Line: ll.start, Name: h.Name}
		return cd, &cd.Body
	}

	if st := assignment(ll); st != nil {
		return st, nil
	}

	o := &pyast.Other{Line: ll.start}
	return o, &o.Body
}

// withoutReturnAnnotation removes a depth-zero "->" return annotation
// between a definition header's argument list and its colon, so annotated
// routine headers still classify as routines. Unannotated text comes back
// unchanged.
func withoutReturnAnnotation(text string) string {
	depth := 0
	for i := 0; i+1 < len(text); i++ {
		c := text[i]
		switch {
		case isOpenBracket(c):
			depth++
		case isCloseBracket(c):
			depth--
		case c == '-' && text[i+1] == '>' && depth == 0:
			return strings.TrimRight(text[:i], " \t") + ":"
		}
	}
	return text
}

// assignment recognizes simple and annotated assignments, or returns nil.
func assignment(ll *logLine) pyast.Stmt {
	positions := assignOffsets(ll.text)
	if len(positions) == 0 {
		return nil
	}

	head := ll.text[:positions[0]]
	if c := topIndexByte(head, ':'); c >= 0 {
		a := &pyast.AnnAssign{Line: ll.start}
		if name := strings.TrimSpace(head[:c]); isIdent(name) {
			a.Target = &pyast.NameTarget{Line: ll.start, Name: name}
		}
		return a
	}

	a := &pyast.Assign{Line: ll.start}
	prev := 0
	for _, pos := range positions {
		if t := targetGroup(ll, prev, ll.text[prev:pos]); t != nil {
			a.Targets = append(a.Targets, t)
		}
		prev = pos + 1
	}
	return a
}

// targetGroup parses one pre-'=' segment into a name or tuple target.
// Segments that are neither (attributes, subscripts, lists) yield nil.
func targetGroup(ll *logLine, baseOff int, seg string) pyast.Target {
	off := baseOff
	for off-baseOff < len(seg) && strings.ContainsRune(" \t\n\r", rune(seg[off-baseOff])) {
		off++
	}
	s := strings.TrimSpace(seg)

	// A parenthesized tuple target sheds one bracket layer.
	if len(s) >= 2 && s[0] == '(' && s[len(s)-1] == ')' {
		s = s[1 : len(s)-1]
		off++
	}

	pieces := topSplit(s, ',')
	if len(pieces) == 1 {
		if isIdent(s) {
			return &pyast.NameTarget{Line: ll.lineAt(off), Name: s}
		}
		return nil
	}

	tt := &pyast.TupleTarget{Line: ll.lineAt(off)}
	for _, pc := range pieces {
		name := strings.TrimSpace(pc.text)
		if !isIdent(name) {
			continue
		}
		tt.Elts = append(tt.Elts, &pyast.NameTarget{Line: ll.lineAt(off + pc.off), Name: name})
	}
	return tt
}

func indentOf(line string) int {
	n := 0
	for n < len(line) && isWS(line[n]) {
		n++
	}
	return n
}

func isWS(c byte) bool { return c == ' ' || c == '\t' }
