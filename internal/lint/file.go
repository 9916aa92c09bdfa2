package lint

import (
	"fmt"

	"github.com/RomanSafe/static-code-analyser/internal/pyast"
	"github.com/RomanSafe/static-code-analyser/internal/pyparse"
)

// File holds one source file after the resilient parse: the working text
// (with any repairs applied), its physical lines, and the syntax tree.
// Both passes observe the same repaired content; Repairs keeps enough of
// the history for the line pass to still flag a semicolon the repair
// removed.
type File struct {
	Path    string
	Source  []byte
	Lines   []string
	Tree    *pyast.Module
	Repairs []pyparse.Repair
}

// SemicolonRemoved reports whether a repair deleted a semicolon from the
// given physical line.
func (f *File) SemicolonRemoved(line int) bool {
	for _, r := range f.Repairs {
		if r.Kind == pyparse.ErrSyntax && r.Line == line {
			return true
		}
	}
	return false
}

// NewFile parses source, repairing superficial syntax issues, and returns
// a File. A failure here is fatal for the file: neither pass runs on
// content that never reached a parseable state.
func NewFile(path string, source []byte) (*File, error) {
	tree, repaired, repairs, err := pyparse.Resilient(source)
	if err != nil {
		return nil, fmt.Errorf("parsing %q: %w", path, err)
	}

	return &File{
		Path:    path,
		Source:  repaired,
		Lines:   pyparse.SplitLines(repaired),
		Tree:    tree,
		Repairs: repairs,
	}, nil
}
