package scan

import "regexp"

// fieldRefPattern matches one field declaration line: a non-comment line
// whose colon is followed by a type position and a closing comma. Only the
// wrappings the generator emits are recognized: a bare name, Option<T>,
// Vec<T>, and Option<Vec<T>>. One level of nesting, nothing deeper.
var fieldRefPattern = regexp.MustCompile(
	`(?m)^[^/\n]*?:\s*(?:Option<Vec<(\w+)>>|Option<(\w+)>|Vec<(\w+)>|(\w+))\s*,`)

// FieldRefs returns the innermost type name of every field declaration line
// in content, one entry per matching line, in file order. Names may repeat;
// callers reduce the sequence to counts when attributing usage.
func FieldRefs(content string) []string {
	matches := fieldRefPattern.FindAllStringSubmatch(content, -1)
	refs := make([]string, 0, len(matches))
	for _, m := range matches {
		for _, group := range m[1:] {
			if group != "" {
				refs = append(refs, group)
				break
			}
		}
	}
	return refs
}
