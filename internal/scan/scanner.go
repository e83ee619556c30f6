package scan

// FileScan is the result of one pass over one file: every declaration block
// plus every field-type reference, both taken from the same immutable
// content snapshot.
type FileScan struct {
	File  string
	Decls []Decl
	Refs  []string
}

// File scans one file's content. Content is read exactly once per run, so
// the Decl spans stay valid against it for the lifetime of the scan.
func File(file, content string) FileScan {
	return FileScan{
		File:  file,
		Decls: Decls(content),
		Refs:  FieldRefs(content),
	}
}
