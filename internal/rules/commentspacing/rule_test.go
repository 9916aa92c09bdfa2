package commentspacing

import (
	"testing"

	"github.com/RomanSafe/static-code-analyser/internal/lint"
)

func check(t *testing.T, text string) []lint.Diagnostic {
	t.Helper()
	r := &Rule{}
	return r.Check(lint.NewLineContext("a.py", 1, text, 0))
}

func TestCheck(t *testing.T) {
	flagged := []string{
		"x = 1 # comment",
		"x = 1# comment",
		"x = 1\t # comment",
	}
	for _, text := range flagged {
		got := check(t, text)
		if len(got) != 1 {
			t.Errorf("%q: expected 1 diagnostic, got %d", text, len(got))
			continue
		}
		if got[0].RuleID != "S004" {
			t.Errorf("%q: unexpected diagnostic %+v", text, got[0])
		}
	}

	clean := []string{
		"x = 1  # comment",
		"x = 1    # comment",
		"# whole-line comment",
		"    # indented whole-line comment",
		"x = 1",
		`x = "#not a comment"`,
	}
	for _, text := range clean {
		if got := check(t, text); got != nil {
			t.Errorf("%q: expected no diagnostics, got %v", text, got)
		}
	}
}
