package rule

import "sort"

var (
	lineRegistry []LineRule
	treeRegistry []TreeRule
)

// RegisterLine adds a line rule to the global registry.
func RegisterLine(r LineRule) {
	lineRegistry = append(lineRegistry, r)
}

// RegisterTree adds a tree rule to the global registry.
func RegisterTree(r TreeRule) {
	treeRegistry = append(treeRegistry, r)
}

// Lines returns a copy of all registered line rules sorted by ID. Rule IDs
// are numbered in evaluation order, so this is also the order the checks
// run in on every line.
func Lines() []LineRule {
	result := make([]LineRule, len(lineRegistry))
	copy(result, lineRegistry)
	sort.Slice(result, func(i, j int) bool { return result[i].ID() < result[j].ID() })
	return result
}

// Trees returns a copy of all registered tree rules sorted by ID.
func Trees() []TreeRule {
	result := make([]TreeRule, len(treeRegistry))
	copy(result, treeRegistry)
	sort.Slice(result, func(i, j int) bool { return result[i].ID() < result[j].ID() })
	return result
}

// ByID returns the registered rule with the given ID, or nil.
func ByID(id string) Info {
	for _, r := range lineRegistry {
		if r.ID() == id {
			return r
		}
	}
	for _, r := range treeRegistry {
		if r.ID() == id {
			return r
		}
	}
	return nil
}

// Reset clears the registries. Used for testing.
func Reset() {
	lineRegistry = nil
	treeRegistry = nil
}
