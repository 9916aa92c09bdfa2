package linelength

import (
	"unicode/utf8"

	"github.com/RomanSafe/static-code-analyser/internal/lint"
	"github.com/RomanSafe/static-code-analyser/internal/rule"
)

func init() {
	rule.RegisterLine(&Rule{Max: 79})
}

// Rule checks that no physical line exceeds Max characters, the line
// terminator excluded.
type Rule struct {
	Max int
}

// ID implements rule.LineRule.
func (r *Rule) ID() string { return "S001" }

// Name implements rule.LineRule.
func (r *Rule) Name() string { return "too-long-line" }

// Check implements rule.LineRule.
func (r *Rule) Check(ctx *lint.LineContext) []lint.Diagnostic {
	max := r.Max
	if max <= 0 {
		max = 79
	}

	if utf8.RuneCountInString(ctx.Text) <= max {
		return nil
	}

	return []lint.Diagnostic{{
		File:     ctx.File,
		Line:     ctx.Number,
		RuleID:   r.ID(),
		RuleName: r.Name(),
		Severity: lint.Warning,
		Message:  "Too long line.",
	}}
}
