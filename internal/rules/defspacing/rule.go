package defspacing

import (
	"fmt"

	"github.com/RomanSafe/static-code-analyser/internal/lint"
	"github.com/RomanSafe/static-code-analyser/internal/rule"
)

func init() {
	rule.RegisterLine(&Rule{})
}

// Rule checks that a definition keyword is followed by exactly one space
// before the name it introduces.
type Rule struct{}

// ID implements rule.LineRule.
func (r *Rule) ID() string { return "S007" }

// Name implements rule.LineRule.
func (r *Rule) Name() string { return "definition-header-spacing" }

// Check implements rule.LineRule.
func (r *Rule) Check(ctx *lint.LineContext) []lint.Diagnostic {
	h := ctx.Header
	if h == nil || h.Gap <= 1 {
		return nil
	}

	return []lint.Diagnostic{{
		File:     ctx.File,
		Line:     ctx.Number,
		RuleID:   r.ID(),
		RuleName: r.Name(),
		Severity: lint.Warning,
		Message:  fmt.Sprintf("Too many spaces after '%s'.", h.Keyword),
	}}
}
