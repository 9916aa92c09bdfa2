package output

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/RomanSafe/static-code-analyser/internal/lint"
)

func TestJSONFormatter_FieldNamesAndValues(t *testing.T) {
	f := &JSONFormatter{}
	var buf bytes.Buffer

	diagnostics := []lint.Diagnostic{
		{
			File:     "sample.py",
			Line:     3,
			RuleID:   "S003",
			RuleName: "stray-semicolon",
			Severity: lint.Warning,
			Message:  "Unnecessary semicolon after a statement.",
		},
	}

	if err := f.Format(&buf, diagnostics); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	var rawResult []map[string]any
	if err := json.Unmarshal(buf.Bytes(), &rawResult); err != nil {
		t.Fatalf("output is not valid JSON: %v\noutput: %s", err, buf.String())
	}
	if len(rawResult) != 1 {
		t.Fatalf("expected 1 element, got %d", len(rawResult))
	}

	item := rawResult[0]
	for _, field := range []string{"file", "line", "rule", "name", "severity", "message"} {
		if _, ok := item[field]; !ok {
			t.Errorf("missing field %q in JSON output", field)
		}
	}

	if item["file"] != "sample.py" {
		t.Errorf("file: got %v", item["file"])
	}
	if item["line"] != float64(3) {
		t.Errorf("line: got %v, want 3", item["line"])
	}
	if item["rule"] != "S003" {
		t.Errorf("rule: got %v", item["rule"])
	}
	if item["name"] != "stray-semicolon" {
		t.Errorf("name: got %v", item["name"])
	}
	if item["severity"] != "warning" {
		t.Errorf("severity: got %v", item["severity"])
	}
	if item["message"] != "Unnecessary semicolon after a statement." {
		t.Errorf("message: got %v", item["message"])
	}
}

func TestJSONFormatter_EmptyDiagnostics(t *testing.T) {
	f := &JSONFormatter{}
	var buf bytes.Buffer

	if err := f.Format(&buf, []lint.Diagnostic{}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// [] rather than null
	trimmed := bytes.TrimSpace(buf.Bytes())
	if string(trimmed) != "[]" {
		t.Errorf("expected raw output to be %q, got %q", "[]", string(trimmed))
	}
}

func TestJSONFormatter_ExactOutput(t *testing.T) {
	f := &JSONFormatter{}
	var buf bytes.Buffer

	diagnostics := []lint.Diagnostic{
		{
			File:     "sample.py",
			Line:     8,
			RuleID:   "S012",
			RuleName: "mutable-default-argument",
			Severity: lint.Warning,
			Message:  "Default argument value is mutable.",
		},
	}

	if err := f.Format(&buf, diagnostics); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	expected := `[
  {
    "file": "sample.py",
    "line": 8,
    "rule": "S012",
    "name": "mutable-default-argument",
    "severity": "warning",
    "message": "Default argument value is mutable."
  }
]
`
	if buf.String() != expected {
		t.Errorf("got:\n%s\nwant:\n%s", buf.String(), expected)
	}
}

func TestJSONFormatter_ImplementsFormatter(t *testing.T) {
	var _ Formatter = &JSONFormatter{}
}
