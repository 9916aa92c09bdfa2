package classcase

import (
	"fmt"

	"github.com/RomanSafe/static-code-analyser/internal/lint"
	"github.com/RomanSafe/static-code-analyser/internal/pytext"
	"github.com/RomanSafe/static-code-analyser/internal/rule"
)

func init() {
	rule.RegisterLine(&Rule{})
}

// Rule checks class headers for CamelCase naming. Both the class name
// and the raw base-class text between the parentheses are checked, in
// that order; an empty parenthesis list ends the scan.
type Rule struct{}

// ID implements rule.LineRule.
func (r *Rule) ID() string { return "S008" }

// Name implements rule.LineRule.
func (r *Rule) Name() string { return "class-name-casing" }

// Check implements rule.LineRule.
func (r *Rule) Check(ctx *lint.LineContext) []lint.Diagnostic {
	h := ctx.Header
	if h == nil || h.Keyword != "class" {
		return nil
	}

	var diags []lint.Diagnostic
	for _, name := range []string{h.Name, h.Args} {
		if len(name) == 0 {
			break
		}
		if pytext.IsCamelCase(name) {
			continue
		}
		diags = append(diags, lint.Diagnostic{
			File:     ctx.File,
			Line:     ctx.Number,
			RuleID:   r.ID(),
			RuleName: r.Name(),
			Severity: lint.Warning,
			Message:  fmt.Sprintf("Class name '%s' should use CamelCase.", name),
		})
	}
	return diags
}
