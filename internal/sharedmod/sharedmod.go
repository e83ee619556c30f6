// Package sharedmod maintains the persistent shared module file that
// collects promoted declarations. The file is append-only: declarations
// already present are never rewritten, reordered, or duplicated.
package sharedmod

import (
	"regexp"
	"strings"
)

// DefaultFile is the shared module file name unless overridden.
const DefaultFile = "common.rs"

// Block is one declaration slated for the shared module.
type Block struct {
	Name string
	Text string
}

// namePattern extracts declared names from shared module content. It keys on
// the same header comment the declaration matcher recognizes, so the shared
// module can be re-read on later runs to seed the known-name set.
var namePattern = regexp.MustCompile(`// (\w+) \.\.\.\n`)

// Names returns the set of type names already declared in content.
func Names(content string) map[string]bool {
	names := make(map[string]bool)
	for _, m := range namePattern.FindAllStringSubmatch(content, -1) {
		names[m[1]] = true
	}
	return names
}

// Merge appends every block whose name is not in known to existing, in the
// given order, and returns the merged content plus the names actually added.
// Existing content is carried over verbatim apart from trailing newline
// trimming; when nothing qualifies, existing is returned unchanged.
func Merge(existing string, known map[string]bool, blocks []Block) (string, []string) {
	parts := []string{strings.TrimRight(existing, "\n")}
	var added []string
	for _, b := range blocks {
		if known[b.Name] {
			continue
		}
		parts = append(parts, strings.TrimRight(b.Text, "\n"))
		added = append(added, b.Name)
	}
	if len(added) == 0 {
		return existing, nil
	}
	return strings.Join(parts, "\n"), added
}
