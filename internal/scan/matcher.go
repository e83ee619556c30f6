// Package scan recognizes generated type declarations and field-type
// references in raw Rust source text.
//
// Matching is purely structural: a declaration is visible to this package
// only when it follows the generator's template byte for byte. Declarations
// written by hand, or emitted with a different annotation set, are ignored
// rather than risked.
package scan

import "regexp"

// Decl is one matched declaration block within a single file.
type Decl struct {
	Name  string // declared type name, from the "// Name ..." header comment
	Text  string // full verbatim block text, annotation header included
	Start int    // byte offset of the block start in the original content
	End   int    // byte offset one past the block end
}

// declPattern matches the exact block shape the generator emits: a header
// comment naming the type, five capability-marker lines in fixed order, a
// struct or enum body, and the closing validate() idiom. The leading blank
// lines belong to the block, so removing a block removes its separator too.
var declPattern = regexp.MustCompile(`(?s)(\n\n// (\w+) \.\.\.\n` +
	`#\[cfg_attr\(feature = "derive_debug", derive\(Debug\)\)\]\n` +
	`#\[cfg_attr\(feature = "derive_default", derive\(Default\)\)\]\n` +
	`#\[cfg_attr\(feature = "derive_serde", derive\(Serialize, Deserialize\)\)\]\n` +
	`#\[cfg_attr\(feature = "derive_clone", derive\(Clone\)\)\]\n` +
	`#\[cfg_attr\(feature = "derive_partial_eq", derive\(PartialEq\)\)\]\n` +
	`(?:pub struct|pub enum)\s+\w+.*?\t\tOk\(\(\)\)\n\t\}\n\}\n)`)

// Decls returns every declaration block in content, in file order.
// Matches never overlap or nest; each spans content[Start:End) exactly.
func Decls(content string) []Decl {
	idx := declPattern.FindAllStringSubmatchIndex(content, -1)
	decls := make([]Decl, 0, len(idx))
	for _, m := range idx {
		decls = append(decls, Decl{
			Name:  content[m[4]:m[5]],
			Text:  content[m[2]:m[3]],
			Start: m[2],
			End:   m[3],
		})
	}
	return decls
}
