package pyparse

import (
	"errors"
	"testing"

	"github.com/RomanSafe/static-code-analyser/internal/pyast"
)

func mustParse(t *testing.T, src string) *pyast.Module {
	t.Helper()
	m, err := Parse([]byte(src))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	return m
}

func firstFunc(t *testing.T, m *pyast.Module) *pyast.FuncDef {
	t.Helper()
	var fns []*pyast.FuncDef
	pyast.WalkFuncDefs(m, func(fn *pyast.FuncDef) { fns = append(fns, fn) })
	if len(fns) == 0 {
		t.Fatal("no routine definitions in tree")
	}
	return fns[0]
}

func TestParse_FuncDefParams(t *testing.T) {
	m := mustParse(t, "def calc(first, Second, third=1):\n    return first\n")
	fn := firstFunc(t, m)

	if fn.Name != "calc" || fn.Line != 1 {
		t.Errorf("got %s at line %d, want calc at line 1", fn.Name, fn.Line)
	}
	if len(fn.Params) != 3 {
		t.Fatalf("got %d params, want 3", len(fn.Params))
	}
	if fn.Params[1].Name != "Second" {
		t.Errorf("param 1 = %q, want Second", fn.Params[1].Name)
	}
	if len(fn.PosDefaults) != 1 {
		t.Fatalf("got %d positional defaults, want 1", len(fn.PosDefaults))
	}
	if _, ok := fn.PosDefaults[0].(*pyast.OtherExpr); !ok {
		t.Errorf("default classified as %T, want OtherExpr", fn.PosDefaults[0])
	}
}

func TestParse_MutableDefaults(t *testing.T) {
	m := mustParse(t, "def f(a=[], b={}, c={1: 2}, d={1, 2}):\n    pass\n")
	fn := firstFunc(t, m)

	if len(fn.PosDefaults) != 4 {
		t.Fatalf("got %d defaults, want 4", len(fn.PosDefaults))
	}
	if _, ok := fn.PosDefaults[0].(*pyast.ListLit); !ok {
		t.Errorf("default 0 is %T, want ListLit", fn.PosDefaults[0])
	}
	if _, ok := fn.PosDefaults[1].(*pyast.DictLit); !ok {
		t.Errorf("default 1 is %T, want DictLit", fn.PosDefaults[1])
	}
	if _, ok := fn.PosDefaults[2].(*pyast.DictLit); !ok {
		t.Errorf("default 2 is %T, want DictLit", fn.PosDefaults[2])
	}
	if _, ok := fn.PosDefaults[3].(*pyast.SetLit); !ok {
		t.Errorf("default 3 is %T, want SetLit", fn.PosDefaults[3])
	}
}

func TestParse_KeywordOnlyDefaults(t *testing.T) {
	m := mustParse(t, "def f(a, *, b=[], c=1):\n    pass\n")
	fn := firstFunc(t, m)

	if len(fn.PosDefaults) != 0 {
		t.Errorf("got %d positional defaults, want 0", len(fn.PosDefaults))
	}
	if len(fn.KwDefaults) != 2 {
		t.Fatalf("got %d keyword defaults, want 2", len(fn.KwDefaults))
	}
	if _, ok := fn.KwDefaults[0].(*pyast.ListLit); !ok {
		t.Errorf("keyword default 0 is %T, want ListLit", fn.KwDefaults[0])
	}
}

func TestParse_StarParamsAreNamed(t *testing.T) {
	m := mustParse(t, "def f(*args, **kwargs):\n    pass\n")
	fn := firstFunc(t, m)

	if len(fn.Params) != 2 {
		t.Fatalf("got %d params, want 2", len(fn.Params))
	}
	if fn.Params[0].Name != "args" || fn.Params[1].Name != "kwargs" {
		t.Errorf("params = %v", fn.Params)
	}
}

func TestParse_AssignTargets(t *testing.T) {
	m := mustParse(t, "def f():\n    good = 1\n    Bad = 2\n    a, B = 1, 2\n")
	fn := firstFunc(t, m)

	if len(fn.Body) != 3 {
		t.Fatalf("got %d body statements, want 3", len(fn.Body))
	}
	a, ok := fn.Body[2].(*pyast.Assign)
	if !ok {
		t.Fatalf("statement 2 is %T, want Assign", fn.Body[2])
	}
	if len(a.Targets) != 1 {
		t.Fatalf("got %d targets, want 1", len(a.Targets))
	}
	tt, ok := a.Targets[0].(*pyast.TupleTarget)
	if !ok {
		t.Fatalf("target is %T, want TupleTarget", a.Targets[0])
	}
	if len(tt.Elts) != 2 || tt.Elts[1].Name != "B" {
		t.Errorf("tuple elements = %v", tt.Elts)
	}
	if tt.Elts[1].Line != 4 {
		t.Errorf("element line = %d, want 4", tt.Elts[1].Line)
	}
}

func TestParse_AnnotatedAssign(t *testing.T) {
	m := mustParse(t, "def f():\n    count: int = 0\n")
	fn := firstFunc(t, m)

	a, ok := fn.Body[0].(*pyast.AnnAssign)
	if !ok {
		t.Fatalf("statement is %T, want AnnAssign", fn.Body[0])
	}
	if a.Target == nil || a.Target.Name != "count" {
		t.Errorf("target = %v, want count", a.Target)
	}
}

func TestParse_ChainedAssign(t *testing.T) {
	m := mustParse(t, "def f():\n    a = b = 1\n")
	fn := firstFunc(t, m)

	a, ok := fn.Body[0].(*pyast.Assign)
	if !ok {
		t.Fatalf("statement is %T, want Assign", fn.Body[0])
	}
	if len(a.Targets) != 2 {
		t.Errorf("got %d targets, want 2", len(a.Targets))
	}
}

func TestParse_SubscriptTargetSkipped(t *testing.T) {
	m := mustParse(t, "def f():\n    x[0] = 1\n")
	fn := firstFunc(t, m)

	a, ok := fn.Body[0].(*pyast.Assign)
	if !ok {
		t.Fatalf("statement is %T, want Assign", fn.Body[0])
	}
	if len(a.Targets) != 0 {
		t.Errorf("got %d targets, want 0", len(a.Targets))
	}
}

func TestParse_ComparisonIsNotAssignment(t *testing.T) {
	m := mustParse(t, "def f():\n    x == 1\n    y <= 2\n")
	fn := firstFunc(t, m)
	for i, s := range fn.Body {
		if _, ok := s.(*pyast.Assign); ok {
			t.Errorf("statement %d parsed as Assign", i)
		}
	}
}

func TestParse_ClassWithMethod(t *testing.T) {
	m := mustParse(t, "class Box:\n    def get(self):\n        return 1\n")
	fn := firstFunc(t, m)
	if fn.Name != "get" || fn.Line != 2 {
		t.Errorf("got %s at line %d, want get at line 2", fn.Name, fn.Line)
	}
}

func TestParse_MultiLineArgList(t *testing.T) {
	m := mustParse(t, "def f(a,\n      b=[]):\n    pass\n")
	fn := firstFunc(t, m)

	if len(fn.Params) != 2 {
		t.Fatalf("got %d params, want 2", len(fn.Params))
	}
	if fn.Params[1].Line != 2 {
		t.Errorf("param b line = %d, want 2", fn.Params[1].Line)
	}
	if len(fn.PosDefaults) != 1 {
		t.Fatalf("got %d defaults, want 1", len(fn.PosDefaults))
	}
	if l, ok := fn.PosDefaults[0].(*pyast.ListLit); !ok || l.Line != 2 {
		t.Errorf("default = %#v, want ListLit at line 2", fn.PosDefaults[0])
	}
}

func TestParse_TripleQuotedDocstring(t *testing.T) {
	m := mustParse(t, "def f():\n    \"\"\"doc\n    with # and ; inside\n    \"\"\"\n    x = 1\n")
	fn := firstFunc(t, m)
	last := fn.Body[len(fn.Body)-1]
	if _, ok := last.(*pyast.Assign); !ok {
		t.Errorf("last statement is %T, want Assign", last)
	}
}

func TestParse_SingleLineDocstringBody(t *testing.T) {
	m := mustParse(t, "def f():\n    \"\"\"Summary line.\"\"\"\n")
	fn := firstFunc(t, m)
	if len(fn.Body) != 1 {
		t.Fatalf("got %d body statements, want 1", len(fn.Body))
	}
	if _, ok := fn.Body[0].(*pyast.Other); !ok {
		t.Errorf("body statement is %T, want Other", fn.Body[0])
	}
}

func TestParse_ShortStringStatementBody(t *testing.T) {
	m := mustParse(t, "def f():\n    \"note\"\nx = 1\n")
	if len(m.Body) != 2 {
		t.Fatalf("got %d statements, want 2", len(m.Body))
	}
	fn := firstFunc(t, m)
	if len(fn.Body) != 1 {
		t.Errorf("got %d body statements, want 1", len(fn.Body))
	}
}

func TestParse_ReturnAnnotatedDef(t *testing.T) {
	m := mustParse(t, "def f(BadArg) -> None:\n    return BadArg\n")
	fn := firstFunc(t, m)

	if fn.Name != "f" || fn.Line != 1 {
		t.Errorf("got %s at line %d, want f at line 1", fn.Name, fn.Line)
	}
	if len(fn.Params) != 1 || fn.Params[0].Name != "BadArg" {
		t.Fatalf("params = %v, want [BadArg]", fn.Params)
	}
}

func TestParse_ReturnAnnotatedDefWithDefaults(t *testing.T) {
	m := mustParse(t, "def f(items=[]) -> list[int]:\n    return items\n")
	fn := firstFunc(t, m)

	if len(fn.PosDefaults) != 1 {
		t.Fatalf("got %d defaults, want 1", len(fn.PosDefaults))
	}
	if _, ok := fn.PosDefaults[0].(*pyast.ListLit); !ok {
		t.Errorf("default is %T, want ListLit", fn.PosDefaults[0])
	}
}

func TestParse_SemicolonInStringIsFine(t *testing.T) {
	mustParse(t, "s = \"a;b\"\n")
}

func TestParse_SemicolonInCommentIsFine(t *testing.T) {
	mustParse(t, "x = 1  # comment; not code\n")
}

func TestParse_StraySemicolonError(t *testing.T) {
	_, err := Parse([]byte("x = 1\ny = 2\nz = 3;\n"))
	var perr *ParseError
	if !errors.As(err, &perr) {
		t.Fatalf("err = %v, want *ParseError", err)
	}
	if perr.Kind != ErrSyntax {
		t.Errorf("Kind = %v, want ErrSyntax", perr.Kind)
	}
	if perr.Line != 3 {
		t.Errorf("Line = %d, want 3", perr.Line)
	}
}

func TestParse_UnexpectedIndentError(t *testing.T) {
	_, err := Parse([]byte("x = 1\n   y = 2\n"))
	var perr *ParseError
	if !errors.As(err, &perr) {
		t.Fatalf("err = %v, want *ParseError", err)
	}
	if perr.Kind != ErrIndentation {
		t.Errorf("Kind = %v, want ErrIndentation", perr.Kind)
	}
	if perr.Line != 2 {
		t.Errorf("Line = %d, want 2", perr.Line)
	}
}

func TestParse_DedentMismatchError(t *testing.T) {
	_, err := Parse([]byte("if x:\n    a = 1\n  b = 2\n"))
	var perr *ParseError
	if !errors.As(err, &perr) {
		t.Fatalf("err = %v, want *ParseError", err)
	}
	if perr.Kind != ErrIndentation || perr.Line != 3 {
		t.Errorf("got %v at line %d, want ErrIndentation at line 3", perr.Kind, perr.Line)
	}
}

func TestParse_BackslashContinuation(t *testing.T) {
	m := mustParse(t, "total = 1 + \\\n    2\n")
	if len(m.Body) != 1 {
		t.Fatalf("got %d statements, want 1", len(m.Body))
	}
	if _, ok := m.Body[0].(*pyast.Assign); !ok {
		t.Errorf("statement is %T, want Assign", m.Body[0])
	}
}

func TestParse_EmptyFile(t *testing.T) {
	m := mustParse(t, "")
	if len(m.Body) != 0 {
		t.Errorf("got %d statements, want 0", len(m.Body))
	}
}
