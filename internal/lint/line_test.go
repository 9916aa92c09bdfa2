package lint

import "testing"

func TestNewLineContext(t *testing.T) {
	ctx := NewLineContext("a.py", 4, "x = 1  # note", 2)
	if ctx.File != "a.py" || ctx.Number != 4 || ctx.BlanksBefore != 2 {
		t.Fatalf("unexpected context: %+v", ctx)
	}
	if ctx.CommentStart != 7 {
		t.Errorf("CommentStart = %d, want 7", ctx.CommentStart)
	}
	if !ctx.HasComment() {
		t.Error("HasComment() = false")
	}
	if ctx.WholeLineComment() {
		t.Error("WholeLineComment() = true for an inline comment")
	}
	if ctx.Header != nil {
		t.Errorf("Header = %+v, want nil", ctx.Header)
	}
}

func TestNewLineContextNoComment(t *testing.T) {
	ctx := NewLineContext("a.py", 1, `s = "#quoted"`, 0)
	if ctx.HasComment() {
		t.Error("a quoted hash must not count as a comment")
	}
	if ctx.CommentStart != len(ctx.Text) {
		t.Errorf("CommentStart = %d, want end of line", ctx.CommentStart)
	}
}

func TestNewLineContextHeader(t *testing.T) {
	ctx := NewLineContext("a.py", 1, "def  run(count):", 0)
	if ctx.Header == nil {
		t.Fatal("Header = nil for a definition line")
	}
	if ctx.Header.Keyword != "def" || ctx.Header.Name != "run" || ctx.Header.Gap != 2 {
		t.Fatalf("Header = %+v", ctx.Header)
	}
}

func TestLineContextBlank(t *testing.T) {
	if !NewLineContext("a.py", 1, "", 0).Blank() {
		t.Error("empty text should be blank")
	}
	if NewLineContext("a.py", 1, " ", 0).Blank() {
		t.Error("whitespace-only text is not blank")
	}
}

func TestWholeLineComment(t *testing.T) {
	if !NewLineContext("a.py", 1, "   # note", 0).WholeLineComment() {
		t.Error("indented comment line should be whole-line")
	}
	if NewLineContext("a.py", 1, "x = 1  # note", 0).WholeLineComment() {
		t.Error("inline comment is not whole-line")
	}
}
