// Package rewrite deletes matched byte spans from file contents.
//
// The whole deletion plan is computed before any content changes, then each
// file is rewritten once. Interleaving discovery and mutation would
// invalidate the remaining offsets; batching avoids that class of bug
// entirely.
package rewrite

import "sort"

// Span is a half-open byte range [Start,End) in a file's original content.
type Span struct {
	Start int
	End   int
}

// Plan maps a file name to the spans slated for deletion there. Spans for
// one file never overlap: declaration blocks are disjoint by construction of
// the matcher.
type Plan map[string][]Span

// Add records one span for file.
func (p Plan) Add(file string, start, end int) {
	p[file] = append(p[file], Span{Start: start, End: end})
}

// Files returns the planned file names in sorted order.
func (p Plan) Files() []string {
	files := make([]string, 0, len(p))
	for f := range p {
		files = append(files, f)
	}
	sort.Strings(files)
	return files
}

// Apply removes every span from content and returns the result. Spans are
// spliced out in descending start order so removing one never shifts the
// offsets of another still to be applied; everything outside the spans is
// preserved byte for byte.
func Apply(content string, spans []Span) string {
	ordered := make([]Span, len(spans))
	copy(ordered, spans)
	sort.Slice(ordered, func(i, j int) bool { return ordered[i].Start > ordered[j].Start })

	out := content
	for _, s := range ordered {
		out = out[:s.Start] + out[s.End:]
	}
	return out
}
