package classcase

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
	got := check(t, "class loader:")
	if len(got) != 1 {
		t.Fatalf("expected 1 diagnostic, got %d", len(got))
	}
	if got[0].RuleID != "S008" || got[0].Message != "Class name 'loader' should use CamelCase." {
		t.Fatalf("unexpected diagnostic: %+v", got[0])
	}
}

func TestCheckBaseClassText(t *testing.T) {
	got := check(t, "class Loader(base_type):")
	if len(got) != 1 {
		t.Fatalf("expected 1 diagnostic, got %d", len(got))
	}
	if got[0].Message != "Class name 'base_type' should use CamelCase." {
		t.Fatalf("unexpected message: %q", got[0].Message)
	}

	if got := check(t, "class bad(also_bad):"); len(got) != 2 {
		t.Fatalf("expected 2 diagnostics, got %d", len(got))
	}
}

func TestCheckEmptyParensStopScan(t *testing.T) {
	if got := check(t, "class bad():"); len(got) != 1 {
		t.Fatalf("expected only the class name finding, got %d", len(got))
	}
}

func TestCheckClean(t *testing.T) {
	clean := []string{
		"class Loader:",
		"class Loader(BaseLoader):",
		"def loader():",
		"x = 1",
	}
	for _, text := range clean {
		if got := check(t, text); got != nil {
			t.Errorf("%q: expected no diagnostics, got %v", text, got)
		}
	}
}
