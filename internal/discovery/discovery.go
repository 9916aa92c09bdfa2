// Package discovery lists the checkable source files of a directory.
package discovery

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
)

// Options controls how file discovery behaves.
type Options struct {
	// Dir is the directory whose immediate entries are listed.
	Dir string

	// Extensions is the list of file extensions that count as source
	// files. Empty means the default, ".py".
	Extensions []string

	// Ignore is a list of glob patterns; entries whose name matches any
	// pattern are skipped.
	Ignore []string
}

// List returns the directory's immediate regular files that carry a source
// extension and are not ignored, sorted by name. Subdirectories are not
// entered.
func List(opts Options) ([]string, error) {
	entries, err := os.ReadDir(opts.Dir)
	if err != nil {
		return nil, fmt.Errorf("reading directory %q: %w", opts.Dir, err)
	}

	exts := opts.Extensions
	if len(exts) == 0 {
		exts = []string{".py"}
	}
	ignore := validatePatterns(opts.Ignore)

	var result []string
	for _, entry := range entries {
		if !entry.Type().IsRegular() {
			continue
		}
		name := entry.Name()
		if !hasExtension(name, exts) {
			continue
		}
		if matchesAny(ignore, name) {
			continue
		}
		result = append(result, filepath.Join(opts.Dir, name))
	}

	sort.Strings(result)
	return result, nil
}

// validatePatterns returns patterns that are syntactically valid.
func validatePatterns(patterns []string) []string {
	valid := make([]string, 0, len(patterns))
	for _, p := range patterns {
		if doublestar.ValidatePattern(p) {
			valid = append(valid, p)
		}
	}
	return valid
}

// hasExtension reports whether the file name ends in one of the given
// extensions, case-insensitively.
func hasExtension(name string, exts []string) bool {
	ext := strings.ToLower(filepath.Ext(name))
	for _, e := range exts {
		if ext == strings.ToLower(e) {
			return true
		}
	}
	return false
}

// matchesAny reports whether name matches any of the patterns.
func matchesAny(patterns []string, name string) bool {
	for _, p := range patterns {
		matched, err := doublestar.Match(p, name)
		if err == nil && matched {
			return true
		}
	}
	return false
}
