package todocomment

import (
	"strings"

	"github.com/RomanSafe/static-code-analyser/internal/lint"
	"github.com/RomanSafe/static-code-analyser/internal/rule"
)

func init() {
	rule.RegisterLine(&Rule{})
}

// Rule flags lines whose comment text mentions "todo", in any letter
// case. The marker is only looked for inside the comment, never in code
// or string literals.
type Rule struct{}

// ID implements rule.LineRule.
func (r *Rule) ID() string { return "S005" }

// Name implements rule.LineRule.
func (r *Rule) Name() string { return "todo-marker" }

// Check implements rule.LineRule.
func (r *Rule) Check(ctx *lint.LineContext) []lint.Diagnostic {
	if !ctx.HasComment() {
		return nil
	}
	comment := ctx.Text[ctx.CommentStart+1:]
	if !strings.Contains(strings.ToLower(comment), "todo") {
		return nil
	}

	return []lint.Diagnostic{{
		File:     ctx.File,
		Line:     ctx.Number,
		RuleID:   r.ID(),
		RuleName: r.Name(),
		Severity: lint.Warning,
		Message:  "TODO found.",
	}}
}
