package funccase

import (
	"fmt"

	"github.com/RomanSafe/static-code-analyser/internal/lint"
	"github.com/RomanSafe/static-code-analyser/internal/pytext"
	"github.com/RomanSafe/static-code-analyser/internal/rule"
)

func init() {
	rule.RegisterLine(&Rule{})
}

// Rule checks function headers for snake_case naming.
type Rule struct{}

// ID implements rule.LineRule.
func (r *Rule) ID() string { return "S009" }

// Name implements rule.LineRule.
func (r *Rule) Name() string { return "function-name-casing" }

// Check implements rule.LineRule.
func (r *Rule) Check(ctx *lint.LineContext) []lint.Diagnostic {
	h := ctx.Header
	if h == nil || h.Keyword != "def" {
		return nil
	}
	if pytext.IsSnakeCase(h.Name) {
		return nil
	}

	return []lint.Diagnostic{{
		File:     ctx.File,
		Line:     ctx.Number,
		RuleID:   r.ID(),
		RuleName: r.Name(),
		Severity: lint.Warning,
		Message:  fmt.Sprintf("Function name '%s' should use snake_case.", h.Name),
	}}
}
