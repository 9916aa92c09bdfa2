package lint

import (
	"strings"

	"github.com/RomanSafe/static-code-analyser/internal/pytext"
)

// LineContext is the per-line view handed to line rules: the raw text
// (terminator stripped) plus the derived state the rules share, computed
// once per line instead of once per rule.
type LineContext struct {
	File         string
	Number       int
	Text         string
	CommentStart int              // offset of the first unquoted '#'; len(Text) when none
	BlanksBefore int              // consecutive blank lines immediately above
	Header       *pytext.DefHeader // non-nil when the line is a definition header

	// SemicolonRemoved is set when a parse repair deleted a semicolon
	// from this line, so the semicolon check can still see it.
	SemicolonRemoved bool
}

// NewLineContext derives the shared per-line state for one physical line.
func NewLineContext(file string, number int, text string, blanksBefore int) *LineContext {
	return &LineContext{
		File:         file,
		Number:       number,
		Text:         text,
		CommentStart: pytext.CommentStart(text),
		BlanksBefore: blanksBefore,
		Header:       pytext.ScanDefHeader(text),
	}
}

// HasComment reports whether the line carries a comment marker.
func (c *LineContext) HasComment() bool {
	return c.CommentStart < len(c.Text)
}

// WholeLineComment reports whether the comment marker is the line's first
// non-whitespace character.
func (c *LineContext) WholeLineComment() bool {
	return strings.HasPrefix(strings.TrimLeft(c.Text, " \t"), "#")
}

// Blank reports whether the line has no content at all.
func (c *LineContext) Blank() bool {
	return len(c.Text) == 0
}
