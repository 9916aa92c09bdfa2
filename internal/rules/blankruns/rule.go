package blankruns

import (
	"github.com/RomanSafe/static-code-analyser/internal/lint"
	"github.com/RomanSafe/static-code-analyser/internal/rule"
)

func init() {
	rule.RegisterLine(&Rule{})
}

// Rule flags a non-blank line preceded by exactly three blank lines.
// Longer runs are not reported.
type Rule struct{}

// ID implements rule.LineRule.
func (r *Rule) ID() string { return "S006" }

// Name implements rule.LineRule.
func (r *Rule) Name() string { return "excess-blank-run" }

// Check implements rule.LineRule.
func (r *Rule) Check(ctx *lint.LineContext) []lint.Diagnostic {
	if ctx.Blank() || ctx.BlanksBefore != 3 {
		return nil
	}

	return []lint.Diagnostic{{
		File:     ctx.File,
		Line:     ctx.Number,
		RuleID:   r.ID(),
		RuleName: r.Name(),
		Severity: lint.Warning,
		Message:  "More than two blank lines used before this line.",
	}}
}
