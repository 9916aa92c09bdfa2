package localvarcase

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

// Rule checks the names assigned in a routine's direct body for
// snake_case. Statements nested in deeper blocks belong to the routines
// that enclose them, so only the immediate body is scanned. A failing
// plain-name target ends the scan of that statement's targets; a failing
// tuple element ends the scan of that tuple only.
type Rule struct{}

// ID implements rule.TreeRule.
func (r *Rule) ID() string { return "S011" }

// Name implements rule.TreeRule.
func (r *Rule) Name() string { return "bad-local-variable-name" }

// Check implements rule.TreeRule.
func (r *Rule) Check(path string, fn *pyast.FuncDef) []lint.Diagnostic {
	var diags []lint.Diagnostic

	report := func(line int, name string) {
		diags = append(diags, lint.Diagnostic{
			File:     path,
			Line:     line,
			RuleID:   r.ID(),
			RuleName: r.Name(),
			Severity: lint.Warning,
			Message:  fmt.Sprintf("Variable '%s' in function should be snake_case.", name),
		})
	}

	for _, stmt := range fn.Body {
		switch stmt := stmt.(type) {
		case *pyast.Assign:
		targets:
			for _, tgt := range stmt.Targets {
				switch tgt := tgt.(type) {
				case *pyast.NameTarget:
					if !pytext.IsSnakeCase(tgt.Name) {
						report(tgt.Line, tgt.Name)
						break targets
					}
				case *pyast.TupleTarget:
					for _, elt := range tgt.Elts {
						if !pytext.IsSnakeCase(elt.Name) {
							report(elt.Line, elt.Name)
							break
						}
					}
				}
			}
		case *pyast.AnnAssign:
			if stmt.Target != nil && !pytext.IsSnakeCase(stmt.Target.Name) {
				report(stmt.Target.Line, stmt.Target.Name)
			}
		}
	}
	return diags
}
