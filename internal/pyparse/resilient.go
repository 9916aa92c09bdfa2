package pyparse

import (
	"bytes"
	"errors"
	"fmt"
	"strings"

	"github.com/RomanSafe/static-code-analyser/internal/pyast"
	"github.com/RomanSafe/static-code-analyser/internal/pytext"
)

// Repair records one fix applied during a resilient parse.
type Repair struct {
	Kind ErrorKind
	Line int
}

// Resilient parses src, repairing the two superficial failure patterns
// until a tree is built: an indentation failure strips the offending
// line's leading whitespace, a generic syntax failure deletes the stray
// semicolon located by the shared heuristic. It returns the tree, the
// repaired working text, and the repairs applied in order.
//
// Repairs operate on a single owned copy of the text; each iteration
// replaces the copy wholesale. A repair that cannot change the text (no
// whitespace to strip, no semicolon to remove) is fatal rather than
// retried, since retrying could not make progress.
func Resilient(src []byte) (*pyast.Module, []byte, []Repair, error) {
	text := append([]byte(nil), src...)
	var repairs []Repair
	for {
		tree, err := Parse(text)
		if err == nil {
			return tree, text, repairs, nil
		}

		var perr *ParseError
		if !errors.As(err, &perr) {
			return nil, nil, repairs, err
		}

		fixed, ferr := repairLine(text, perr)
		if ferr != nil {
			return nil, nil, repairs, ferr
		}
		if bytes.Equal(fixed, text) {
			return nil, nil, repairs, fmt.Errorf("repair made no progress: %w", perr)
		}
		text = fixed
		repairs = append(repairs, Repair{Kind: perr.Kind, Line: perr.Line})
	}
}

// repairLine rewrites the physical line named by the failure.
func repairLine(text []byte, perr *ParseError) ([]byte, error) {
	lines := splitKeepEnds(text)
	if perr.Line < 1 || perr.Line > len(lines) {
		return nil, fmt.Errorf("cannot repair: %w", perr)
	}
	l := lines[perr.Line-1]

	switch perr.Kind {
	case ErrIndentation:
		lines[perr.Line-1] = strings.TrimLeft(l, " \t")
	case ErrSyntax:
		idx := pytext.FindStraySemicolon(l)
		if idx < 0 {
			return nil, fmt.Errorf("no removable semicolon on line %d: %w", perr.Line, perr)
		}
		lines[perr.Line-1] = l[:idx] + l[idx+1:]
	default:
		return nil, perr
	}

	return []byte(strings.Join(lines, "")), nil
}
