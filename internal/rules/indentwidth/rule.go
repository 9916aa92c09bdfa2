package indentwidth

import (
	"github.com/RomanSafe/static-code-analyser/internal/lint"
	"github.com/RomanSafe/static-code-analyser/internal/pytext"
	"github.com/RomanSafe/static-code-analyser/internal/rule"
)

func init() {
	rule.RegisterLine(&Rule{})
}

// Rule checks that the leading-space indentation of every non-blank line
// is a multiple of four.
type Rule struct{}

// ID implements rule.LineRule.
func (r *Rule) ID() string { return "S002" }

// Name implements rule.LineRule.
func (r *Rule) Name() string { return "bad-indentation" }

// Check implements rule.LineRule.
func (r *Rule) Check(ctx *lint.LineContext) []lint.Diagnostic {
	if ctx.Blank() {
		return nil
	}
	if pytext.IndentWidth(ctx.Text)%4 == 0 {
		return nil
	}

	return []lint.Diagnostic{{
		File:     ctx.File,
		Line:     ctx.Number,
		RuleID:   r.ID(),
		RuleName: r.Name(),
		Severity: lint.Warning,
		Message:  "Indentation is not a multiple of four.",
	}}
}
