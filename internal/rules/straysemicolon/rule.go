package straysemicolon

import (
	"strings"

	"github.com/RomanSafe/static-code-analyser/internal/lint"
	"github.com/RomanSafe/static-code-analyser/internal/pytext"
	"github.com/RomanSafe/static-code-analyser/internal/rule"
)

func init() {
	rule.RegisterLine(&Rule{})
}

// Rule flags semicolons left after statements. Semicolons inside string
// literals or trailing comments are tolerated; at most one finding is
// reported per line. A semicolon deleted by a parse repair is still
// reported, even though it is gone from the working text.
type Rule struct{}

// ID implements rule.LineRule.
func (r *Rule) ID() string { return "S003" }

// Name implements rule.LineRule.
func (r *Rule) Name() string { return "stray-semicolon" }

// Check implements rule.LineRule.
func (r *Rule) Check(ctx *lint.LineContext) []lint.Diagnostic {
	found := strings.Contains(ctx.Text, ";") && pytext.FindStraySemicolon(ctx.Text) >= 0
	if !found && !ctx.SemicolonRemoved {
		return nil
	}

	return []lint.Diagnostic{{
		File:     ctx.File,
		Line:     ctx.Number,
		RuleID:   r.ID(),
		RuleName: r.Name(),
		Severity: lint.Warning,
		Message:  "Unnecessary semicolon after a statement.",
	}}
}
