package engine

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/gobwas/glob"

	"github.com/RomanSafe/static-code-analyser/internal/config"
	"github.com/RomanSafe/static-code-analyser/internal/lint"
	"github.com/RomanSafe/static-code-analyser/internal/log"
	"github.com/RomanSafe/static-code-analyser/internal/pyast"
	"github.com/RomanSafe/static-code-analyser/internal/rule"
)

// Runner drives the checking pipeline: for each file it reads the content,
// parses it once with repairs applied, and interleaves the line checks with
// the buffered structural checks so findings come out in line order.
type Runner struct {
	Config    *config.Config
	LineRules []rule.LineRule
	TreeRules []rule.TreeRule
	Log       *log.Logger
}

// Result holds the output of a run.
type Result struct {
	Diagnostics []lint.Diagnostic
	Errors      []error
}

// Run checks the files at the given paths in order and returns a Result
// with all diagnostics and any errors encountered. A file that cannot be
// read or never reaches a parseable state contributes an error and no
// diagnostics.
func (r *Runner) Run(paths []string) *Result {
	res := &Result{}

	for _, path := range paths {
		if r.isIgnored(path) {
			r.logf("skipping %s: matches an ignore pattern", path)
			continue
		}

		source, err := os.ReadFile(path)
		if err != nil {
			res.Errors = append(res.Errors, fmt.Errorf("reading %q: %w", path, err))
			continue
		}

		diags, err := r.CheckSource(path, source)
		if err != nil {
			res.Errors = append(res.Errors, err)
			continue
		}
		res.Diagnostics = append(res.Diagnostics, diags...)
	}

	return res
}

// CheckSource checks one file's content and returns its diagnostics in
// report order: per line ascending, line findings before structural
// findings on the same line, and within each group the fixed rule order.
// All per-file state is built here, so consecutive files cannot bleed
// into each other.
func (r *Runner) CheckSource(path string, source []byte) ([]lint.Diagnostic, error) {
	f, err := lint.NewFile(path, source)
	if err != nil {
		return nil, err
	}
	if len(f.Repairs) > 0 {
		r.logf("%s: parsed after %d repairs", path, len(f.Repairs))
	}

	pending := &pendingQueue{}
	pyast.WalkFuncDefs(f.Tree, func(fn *pyast.FuncDef) {
		for _, tr := range r.TreeRules {
			for _, d := range tr.Check(f.Path, fn) {
				pending.add(d)
			}
		}
	})

	var diags []lint.Diagnostic
	blanks := 0
	for i, text := range f.Lines {
		ctx := lint.NewLineContext(f.Path, i+1, text, blanks)
		ctx.SemicolonRemoved = f.SemicolonRemoved(ctx.Number)

		for _, lr := range r.LineRules {
			diags = append(diags, lr.Check(ctx)...)
		}
		for line, ok := pending.headLine(); ok && line <= ctx.Number; line, ok = pending.headLine() {
			diags = append(diags, pending.take())
		}

		if ctx.Blank() {
			blanks++
		} else {
			blanks = 0
		}
	}
	for pending.Len() > 0 {
		diags = append(diags, pending.take())
	}

	return diags, nil
}

// isIgnored returns true if the file path matches any of the configured
// ignore patterns.
func (r *Runner) isIgnored(path string) bool {
	cleanPath := filepath.Clean(path)

	for _, pattern := range r.Config.Ignore {
		g, err := glob.Compile(pattern)
		if err != nil {
			continue
		}
		if g.Match(path) || g.Match(cleanPath) || g.Match(filepath.Base(path)) {
			return true
		}
	}
	return false
}

func (r *Runner) logf(format string, args ...any) {
	if r.Log == nil {
		return
	}
	r.Log.Printf(format, args...)
}
