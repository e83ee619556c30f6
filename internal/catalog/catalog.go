// Package catalog aggregates per-file scan results into the run-scoped index
// of shareable types and naming violations.
package catalog

import (
	"sort"
	"unicode"
	"unicode/utf8"

	"commonize/internal/scan"
)

// Occurrence is one recognized declaration instance, pinned to the file and
// byte span it was found at. Usages counts field-type references to the name
// found in the same file during the same pass; it is only meaningful for
// shareable names.
type Occurrence struct {
	File   string
	Name   string
	Text   string
	Start  int
	End    int
	Usages int
}

// Catalog indexes every occurrence found during one run. Each occurrence is
// routed to exactly one of Promotable or Violations, decided solely by the
// case of the first letter of its name.
type Catalog struct {
	// Promotable maps a shareable name to its occurrences across all files,
	// in the order the files were scanned.
	Promotable map[string][]Occurrence
	// Violations lists occurrences whose name breaks the convention; they
	// are removed regardless of usage.
	Violations []Occurrence
}

// New returns an empty catalog.
func New() *Catalog {
	return &Catalog{Promotable: make(map[string][]Occurrence)}
}

// AddFile folds one file's scan result into the catalog. Usage is attributed
// per file: an occurrence records only the references found in the file that
// declares it.
func (c *Catalog) AddFile(fs scan.FileScan) {
	counts := make(map[string]int, len(fs.Refs))
	for _, ref := range fs.Refs {
		counts[ref]++
	}
	for _, d := range fs.Decls {
		occ := Occurrence{
			File:  fs.File,
			Name:  d.Name,
			Text:  d.Text,
			Start: d.Start,
			End:   d.End,
		}
		if shareable(d.Name) {
			occ.Usages = counts[d.Name]
			c.Promotable[d.Name] = append(c.Promotable[d.Name], occ)
		} else {
			c.Violations = append(c.Violations, occ)
		}
	}
}

// TotalUsage sums the per-file usage counts over every occurrence of name.
func (c *Catalog) TotalUsage(name string) int {
	total := 0
	for _, occ := range c.Promotable[name] {
		total += occ.Usages
	}
	return total
}

// Qualifying returns the shareable names whose total usage meets or exceeds
// threshold, sorted by descending total usage, ties broken by name. A
// threshold of 0 admits declared-but-never-referenced types as well.
func (c *Catalog) Qualifying(threshold int) []string {
	names := make([]string, 0, len(c.Promotable))
	for name := range c.Promotable {
		if c.TotalUsage(name) >= threshold {
			names = append(names, name)
		}
	}
	sort.Slice(names, func(i, j int) bool {
		ui, uj := c.TotalUsage(names[i]), c.TotalUsage(names[j])
		if ui != uj {
			return ui > uj
		}
		return names[i] < names[j]
	})
	return names
}

// Divergent reports whether name has occurrences whose block text differs.
// The first-seen copy still wins; callers surface the divergence so the
// discarded variants are not lost silently.
func (c *Catalog) Divergent(name string) bool {
	occs := c.Promotable[name]
	if len(occs) == 0 {
		return false
	}
	for _, occ := range occs[1:] {
		if occ.Text != occs[0].Text {
			return true
		}
	}
	return false
}

// shareable reports whether name follows the shared-type naming convention:
// an uppercase first letter.
func shareable(name string) bool {
	r, _ := utf8.DecodeRuneInString(name)
	return unicode.IsUpper(r)
}
