package pyparse

import "fmt"

// ErrorKind classifies a parse failure by how the repair loop may respond
// to it.
type ErrorKind int

const (
	// ErrIndentation is a failure repairable by stripping the leading
	// whitespace of the offending line.
	ErrIndentation ErrorKind = iota
	// ErrSyntax is a generic failure, repairable only when the offending
	// line carries a removable stray semicolon.
	ErrSyntax
)

func (k ErrorKind) String() string {
	switch k {
	case ErrIndentation:
		return "indentation error"
	case ErrSyntax:
		return "syntax error"
	}
	return "unknown error"
}

// ParseError reports a parse failure at a physical line.
type ParseError struct {
	Kind ErrorKind
	Line int
	Msg  string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("%s at line %d: %s", e.Kind, e.Line, e.Msg)
}
