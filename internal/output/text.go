package output

import (
	"fmt"
	"io"

	"github.com/fatih/color"

	"github.com/RomanSafe/static-code-analyser/internal/lint"
)

// TextFormatter outputs diagnostics in human-readable text format.
// When Color is true, the file path is printed in cyan and the rule ID
// in yellow.
type TextFormatter struct {
	Color bool
}

// Format writes each diagnostic as a single line in the pattern:
// path: Line n: rule message
func (f *TextFormatter) Format(w io.Writer, diagnostics []lint.Diagnostic) error {
	path := fmt.Sprint
	ruleID := fmt.Sprint
	if f.Color {
		cyan := color.New(color.FgCyan)
		cyan.EnableColor()
		yellow := color.New(color.FgYellow)
		yellow.EnableColor()
		path = cyan.Sprint
		ruleID = yellow.Sprint
	}

	for _, d := range diagnostics {
		_, err := fmt.Fprintf(w, "%s: Line %d: %s %s\n",
			path(d.File), d.Line, ruleID(d.RuleID), d.Message)
		if err != nil {
			return err
		}
	}
	return nil
}
