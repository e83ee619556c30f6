// Package report renders the end-of-run operator summary.
package report

import (
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/fatih/color"

	"commonize/comerr"
)

// FileUsage is one file's contribution to a type's total usage.
type FileUsage struct {
	File   string
	Usages int
}

// QualifyingType is one type that met the promotion threshold.
type QualifyingType struct {
	Name       string
	TotalUsage int
	PerFile    []FileUsage
	Divergent  bool // occurrences differ textually; first-seen copy won
}

// Summary is everything the operator sees at the end of a run.
type Summary struct {
	Threshold  int
	SharedFile string

	// Violations maps a file name to the violation names removed from it.
	Violations map[string][]string
	// Qualifying lists promoted types in descending total usage order.
	Qualifying []QualifyingType

	KnownNames int      // names already in the shared module before the run
	AddedNames []string // names appended this run

	RemovedViolations int
	RemovedDuplicates int

	// FileErrors aggregates the per-file failures recovered during the run;
	// nil when every file was processed.
	FileErrors *comerr.MultiError
	DryRun     bool
}

var (
	headerColor  = color.New(color.FgCyan, color.Bold)
	warnColor    = color.New(color.FgYellow)
	errColor     = color.New(color.FgRed)
	successColor = color.New(color.FgGreen)
)

// Print writes the summary to w in the order the run progressed: violations,
// qualifying types, shared module changes, rewrite counts, then any per-file
// errors.
func Print(w io.Writer, s Summary) {
	printViolations(w, s)
	printQualifying(w, s)
	printSharedModule(w, s)
	printRemovals(w, s)
	printErrors(w, s)
	if s.DryRun {
		warnColor.Fprintln(w, "Dry run: no files were written.")
	}
}

func printViolations(w io.Writer, s Summary) {
	if len(s.Violations) == 0 {
		return
	}
	headerColor.Fprintln(w, "\nLowercase types to be removed:")
	fmt.Fprintln(w, strings.Repeat("-", 40))

	files := make([]string, 0, len(s.Violations))
	for f := range s.Violations {
		files = append(files, f)
	}
	sort.Strings(files)
	for _, f := range files {
		fmt.Fprintf(w, "%s:\n", f)
		names := append([]string(nil), s.Violations[f]...)
		sort.Strings(names)
		for _, name := range names {
			fmt.Fprintf(w, "  - %s\n", name)
		}
	}
	fmt.Fprintln(w)
}

func printQualifying(w io.Writer, s Summary) {
	if len(s.Qualifying) == 0 {
		fmt.Fprintf(w, "\nNo qualifying types found with usage count >= %d.\n", s.Threshold)
		return
	}

	headerColor.Fprintf(w, "\nUppercase types with usage count >= %d:\n", s.Threshold)
	fmt.Fprintln(w, strings.Repeat("-", 40))
	for _, q := range s.Qualifying {
		fmt.Fprintf(w, "%s: used %d times across %d files\n", q.Name, q.TotalUsage, len(q.PerFile))
		for _, fu := range q.PerFile {
			fmt.Fprintf(w, "  - %s: %d uses\n", fu.File, fu.Usages)
		}
		if q.Divergent {
			warnColor.Fprintf(w, "  warning: %s has divergent copies; keeping the first-seen one\n", q.Name)
		}
	}
	fmt.Fprintln(w)
}

func printSharedModule(w io.Writer, s Summary) {
	if s.KnownNames > 0 {
		fmt.Fprintf(w, "Found %d existing types in %s\n", s.KnownNames, s.SharedFile)
	}
	if len(s.AddedNames) > 0 {
		successColor.Fprintf(w, "Added %d new types to %s\n", len(s.AddedNames), s.SharedFile)
		names := append([]string(nil), s.AddedNames...)
		sort.Strings(names)
		fmt.Fprintf(w, "New types: %s\n", strings.Join(names, ", "))
	} else if len(s.Qualifying) > 0 {
		fmt.Fprintln(w, "No new types to add")
	}
}

func printRemovals(w io.Writer, s Summary) {
	if s.RemovedViolations > 0 {
		fmt.Fprintf(w, "Removed %d lowercase types from original files\n", s.RemovedViolations)
	}
	if s.RemovedDuplicates > 0 {
		fmt.Fprintln(w, "Removed duplicate types from original files")
	}
}

func printErrors(w io.Writer, s Summary) {
	if s.FileErrors == nil || len(s.FileErrors.Errors) == 0 {
		return
	}
	errColor.Fprintf(w, "\n%d file(s) could not be processed:\n", len(s.FileErrors.Errors))
	for _, err := range s.FileErrors.Errors {
		fmt.Fprintf(w, "  - %v\n", err)
	}
}
