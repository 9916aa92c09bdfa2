package commentspacing

import (
	"strings"

	"github.com/RomanSafe/static-code-analyser/internal/lint"
	"github.com/RomanSafe/static-code-analyser/internal/rule"
)

func init() {
	rule.RegisterLine(&Rule{})
}

// Rule checks that inline comments are separated from the code before
// them by at least two spaces. Whole-line comments are exempt.
type Rule struct{}

// ID implements rule.LineRule.
func (r *Rule) ID() string { return "S004" }

// Name implements rule.LineRule.
func (r *Rule) Name() string { return "missing-comment-spacing" }

// Check implements rule.LineRule.
func (r *Rule) Check(ctx *lint.LineContext) []lint.Diagnostic {
	if !ctx.HasComment() || ctx.WholeLineComment() {
		return nil
	}
	if strings.HasSuffix(ctx.Text[:ctx.CommentStart], "  ") {
		return nil
	}

	return []lint.Diagnostic{{
		File:     ctx.File,
		Line:     ctx.Number,
		RuleID:   r.ID(),
		RuleName: r.Name(),
		Severity: lint.Warning,
		Message:  "At least two spaces before inline comments required.",
	}}
}
