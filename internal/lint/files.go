package lint

import (
	"fmt"
	"os"

	"github.com/RomanSafe/static-code-analyser/internal/discovery"
)

// ResolveFiles resolves the single path argument into the ordered list of
// files to check. A regular file is checked as-is, whatever its extension;
// a directory contributes its immediate regular entries, filtered to the
// given extensions and ignore patterns, in ascending name order. The
// directory is not walked recursively.
func ResolveFiles(arg string, extensions, ignore []string) ([]string, error) {
	info, err := os.Stat(arg)
	if err != nil {
		return nil, fmt.Errorf("cannot access %q: %w", arg, err)
	}

	if !info.IsDir() {
		// Explicitly named files are never filtered.
		return []string{arg}, nil
	}

	return discovery.List(discovery.Options{
		Dir:        arg,
		Extensions: extensions,
		Ignore:     ignore,
	})
}
