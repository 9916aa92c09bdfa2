package pyparse

import (
	"strings"

	"github.com/RomanSafe/static-code-analyser/internal/pyast"
	"github.com/RomanSafe/static-code-analyser/internal/pytext"
)

// parseParams fills a routine definition's parameter list and default
// expressions from the header's raw argument text. Defaults declared after
// a star (keyword-only) land in KwDefaults, the rest in PosDefaults.
func parseParams(fd *pyast.FuncDef, h *pytext.DefHeader, ll *logLine, shift int) {
	base := shift + h.ArgsOff
	seenStar := false

	for _, pc := range topSplit(h.Args, ',') {
		s := pc.text
		off := base + pc.off
		for len(s) > 0 && strings.ContainsRune(" \t\n\r", rune(s[0])) {
			s = s[1:]
			off++
		}
		s = strings.TrimRight(s, " \t\n\r")
		if s == "" {
			continue
		}
		if s == "*" {
			seenStar = true
			continue
		}

		kwOnly := seenStar
		switch {
		case strings.HasPrefix(s, "**"):
			s = s[2:]
			off += 2
		case strings.HasPrefix(s, "*"):
			s = s[1:]
			off++
			seenStar = true
		}

		namePart := s
		defText := ""
		defOff := 0
		if eqs := assignOffsets(s); len(eqs) > 0 {
			namePart = s[:eqs[0]]
			defText = s[eqs[0]+1:]
			defOff = off + eqs[0] + 1
		}
		if c := topIndexByte(namePart, ':'); c >= 0 {
			namePart = namePart[:c]
		}
		name := strings.TrimSpace(namePart)
		if !isIdent(name) {
			continue
		}

		fd.Params = append(fd.Params, pyast.Param{Line: ll.lineAt(off), Name: name})

		if defText == "" {
			continue
		}
		expr := classifyExpr(defText, defOff, ll)
		if kwOnly {
			fd.KwDefaults = append(fd.KwDefaults, expr)
		} else {
			fd.PosDefaults = append(fd.PosDefaults, expr)
		}
	}
}

// classifyExpr tags a default expression: list, mapping or set literal
// constructions are what the mutable-default rule looks for.
func classifyExpr(text string, off int, ll *logLine) pyast.Expr {
	i := 0
	for i < len(text) && strings.ContainsRune(" \t\n\r", rune(text[i])) {
		i++
	}
	line := ll.lineAt(off + i)
	t := text[i:]

	switch {
	case strings.HasPrefix(t, "["):
		return &pyast.ListLit{Line: line}
	case strings.HasPrefix(t, "{"):
		if braceIsMapping(t) {
			return &pyast.DictLit{Line: line}
		}
		return &pyast.SetLit{Line: line}
	}
	return &pyast.OtherExpr{Line: line}
}

// braceIsMapping reports whether a brace literal is a mapping: empty
// braces or a top-level colon inside them.
func braceIsMapping(t string) bool {
	depth := 0
	for i := 0; i < len(t); i++ {
		c := t[i]
		switch {
		case isOpenBracket(c):
			depth++
		case isCloseBracket(c):
			depth--
			if depth == 0 {
				// literal closed without a top-level colon
				inner := strings.TrimSpace(t[1:i])
				return inner == ""
			}
		case c == ':' && depth == 1:
			return true
		}
	}
	return false
}
