package rule

import (
	"github.com/RomanSafe/static-code-analyser/internal/lint"
	"github.com/RomanSafe/static-code-analyser/internal/pyast"
)

// Info is the identity every rule carries.
type Info interface {
	ID() string
	Name() string
}

// LineRule is a lexical rule evaluated against one physical line.
type LineRule interface {
	Info
	Check(ctx *lint.LineContext) []lint.Diagnostic
}

// TreeRule is a structural rule evaluated against one routine definition
// of the parsed syntax tree.
type TreeRule interface {
	Info
	Check(path string, fn *pyast.FuncDef) []lint.Diagnostic
}
