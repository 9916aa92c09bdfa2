package mutabledefault

import (
	"github.com/RomanSafe/static-code-analyser/internal/lint"
	"github.com/RomanSafe/static-code-analyser/internal/pyast"
	"github.com/RomanSafe/static-code-analyser/internal/rule"
)

func init() {
	rule.RegisterTree(&Rule{})
}

// Rule flags routines whose default argument value is a mutable literal
// (list, mapping or set construction). Keyword-only defaults are scanned
// before positional ones, and only the first hit is reported.
type Rule struct{}

// ID implements rule.TreeRule.
func (r *Rule) ID() string { return "S012" }

// Name implements rule.TreeRule.
func (r *Rule) Name() string { return "mutable-default-argument" }

// Check implements rule.TreeRule.
func (r *Rule) Check(path string, fn *pyast.FuncDef) []lint.Diagnostic {
	defaults := make([]pyast.Expr, 0, len(fn.KwDefaults)+len(fn.PosDefaults))
	defaults = append(defaults, fn.KwDefaults...)
	defaults = append(defaults, fn.PosDefaults...)

	for _, d := range defaults {
		var line int
		switch d := d.(type) {
		case *pyast.ListLit:
			line = d.Line
		case *pyast.DictLit:
			line = d.Line
		case *pyast.SetLit:
			line = d.Line
		default:
			continue
		}
		return []lint.Diagnostic{{
			File:     path,
			Line:     line,
			RuleID:   r.ID(),
			RuleName: r.Name(),
			Severity: lint.Warning,
			Message:  "Default argument value is mutable.",
		}}
	}
	return nil
}
