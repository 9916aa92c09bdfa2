package argcase

import (
	"fmt"

	"github.com/RomanSafe/static-code-analyser/internal/lint"
	"github.com/RomanSafe/static-code-analyser/internal/pyast"
	"github.com/RomanSafe/static-code-analyser/internal/pytext"
	"github.com/RomanSafe/static-code-analyser/internal/rule"
)

func init() {
	rule.RegisterTree(&Rule{})
}

// Rule checks routine parameters for snake_case naming. Only the first
// offending parameter of a routine is reported.
type Rule struct{}

// ID implements rule.TreeRule.
func (r *Rule) ID() string { return "S010" }

// Name implements rule.TreeRule.
func (r *Rule) Name() string { return "bad-argument-name" }

// Check implements rule.TreeRule.
func (r *Rule) Check(path string, fn *pyast.FuncDef) []lint.Diagnostic {
	for _, p := range fn.Params {
		if pytext.IsSnakeCase(p.Name) {
			continue
		}
		return []lint.Diagnostic{{
			File:     path,
			Line:     p.Line,
			RuleID:   r.ID(),
			RuleName: r.Name(),
			Severity: lint.Warning,
			Message:  fmt.Sprintf("Argument name '%s' should use snake_case.", p.Name),
		}}
	}
	return nil
}
