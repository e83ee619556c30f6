// Package runner drives one deduplication pass end to end:
// scan, classify, decide, merge, plan, rewrite.
package runner

import (
	"fmt"
	"os"
	"sort"

	"commonize/comerr"
	"commonize/internal/catalog"
	"commonize/internal/report"
	"commonize/internal/rewrite"
	"commonize/internal/scan"
	"commonize/internal/sharedmod"
	"commonize/internal/storage"
)

// Options configures one run.
type Options struct {
	Dir        string
	Threshold  int
	Extension  string
	SharedFile string
	// DryRun performs the full scan and decision pass but writes nothing.
	DryRun bool
}

// Result captures what one run did.
type Result struct {
	Summary       report.Summary
	FilesChanged  int
	SharedWritten bool
}

// Pass holds everything one scan decided, before anything is written.
// Callers can inspect it (HasChanges) to decide whether applying is worth
// the side effects.
type Pass struct {
	opts     Options
	dir      storage.Dir
	contents map[string]string
	plan     rewrite.Plan
	merged   string
	added    []string
	fileErrs []error
	summary  report.Summary
}

// Plan executes the read-only half of a run over opts.Dir: one scan pass,
// classification, the promotion decision, the shared-module merge, and the
// deletion plan. Nothing on disk changes. Per-file read failures are
// recovered and carried into the summary; only setup failures return an
// error.
func Plan(opts Options) (*Pass, error) {
	dir := storage.New(opts.Dir)

	// Seed already-known names from the shared module; a missing file is an
	// empty module. The shared file is excluded from the scan set below, so
	// its declarations are never planned for deletion and a re-run against
	// already-deduplicated output changes nothing.
	existing, err := dir.Read(opts.SharedFile)
	if err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("reading %s: %w", opts.SharedFile, err)
	}
	known := sharedmod.Names(existing)

	files, err := dir.List(opts.Extension)
	if err != nil {
		return nil, fmt.Errorf("listing %s: %w", opts.Dir, err)
	}

	// Single read pass: every file is scanned once and its content held in
	// memory; spans stay valid against these snapshots for the whole run.
	cat := catalog.New()
	contents := make(map[string]string, len(files))
	var fileErrs []error
	for _, name := range files {
		if name == opts.SharedFile {
			continue
		}
		content, err := dir.Read(name)
		if err != nil {
			fileErrs = append(fileErrs, comerr.NewFileError(name, err))
			continue
		}
		contents[name] = content
		cat.AddFile(scan.File(name, content))
	}

	qualifying := cat.Qualifying(opts.Threshold)

	// Merge newly qualifying declarations into the shared module in name
	// order, first-seen copy winning when a name has several.
	merged, added := sharedmod.Merge(existing, known, mergeBlocks(cat, qualifying))

	// Deletion plan: every origin copy of a qualifying name, plus every
	// violation regardless of usage.
	plan := rewrite.Plan{}
	removedDuplicates := 0
	for _, name := range qualifying {
		for _, occ := range cat.Promotable[name] {
			plan.Add(occ.File, occ.Start, occ.End)
			removedDuplicates++
		}
	}
	violationsByFile := make(map[string][]string)
	for _, occ := range cat.Violations {
		plan.Add(occ.File, occ.Start, occ.End)
		violationsByFile[occ.File] = append(violationsByFile[occ.File], occ.Name)
	}

	return &Pass{
		opts:     opts,
		dir:      dir,
		contents: contents,
		plan:     plan,
		merged:   merged,
		added:    added,
		fileErrs: fileErrs,
		summary: report.Summary{
			Threshold:         opts.Threshold,
			SharedFile:        opts.SharedFile,
			Violations:        violationsByFile,
			Qualifying:        qualifyingSummary(cat, qualifying),
			KnownNames:        len(known),
			AddedNames:        added,
			RemovedViolations: len(cat.Violations),
			RemovedDuplicates: removedDuplicates,
			DryRun:            opts.DryRun,
		},
	}, nil
}

// HasChanges reports whether applying the pass would write anything: new
// shared-module entries or planned deletions. A steady-state re-run over
// already-deduplicated output has no changes.
func (p *Pass) HasChanges() bool {
	return len(p.added) > 0 || len(p.plan) > 0
}

// Apply executes the write half of the pass. Under DryRun it still counts
// the files that would change but touches nothing. Per-file write failures
// are recovered; a shared-module write failure is fatal since every deletion
// depends on the canonical copy existing.
func (p *Pass) Apply() (*Result, error) {
	res := &Result{}
	if len(p.added) > 0 && !p.opts.DryRun {
		if err := p.dir.Write(p.opts.SharedFile, p.merged); err != nil {
			return nil, fmt.Errorf("writing %s: %w", p.opts.SharedFile, err)
		}
		res.SharedWritten = true
	}

	for _, file := range p.plan.Files() {
		newContent := rewrite.Apply(p.contents[file], p.plan[file])
		if newContent == p.contents[file] {
			continue
		}
		if !p.opts.DryRun {
			if err := p.dir.Write(file, newContent); err != nil {
				p.fileErrs = append(p.fileErrs, comerr.NewFileError(file, err))
				continue
			}
		}
		res.FilesChanged++
	}

	if len(p.fileErrs) > 0 {
		p.summary.FileErrors = &comerr.MultiError{Errors: p.fileErrs}
	}
	res.Summary = p.summary
	return res, nil
}

// Run executes one full pass: Plan followed by Apply.
func Run(opts Options) (*Result, error) {
	pass, err := Plan(opts)
	if err != nil {
		return nil, err
	}
	return pass.Apply()
}

// mergeBlocks selects the canonical block per qualifying name, in name order
// for a stable shared module layout.
func mergeBlocks(cat *catalog.Catalog, qualifying []string) []sharedmod.Block {
	names := append([]string(nil), qualifying...)
	sort.Strings(names)
	blocks := make([]sharedmod.Block, 0, len(names))
	for _, name := range names {
		blocks = append(blocks, sharedmod.Block{Name: name, Text: cat.Promotable[name][0].Text})
	}
	return blocks
}

func qualifyingSummary(cat *catalog.Catalog, qualifying []string) []report.QualifyingType {
	out := make([]report.QualifyingType, 0, len(qualifying))
	for _, name := range qualifying {
		occs := cat.Promotable[name]
		perFile := make([]report.FileUsage, 0, len(occs))
		for _, occ := range occs {
			perFile = append(perFile, report.FileUsage{File: occ.File, Usages: occ.Usages})
		}
		out = append(out, report.QualifyingType{
			Name:       name,
			TotalUsage: cat.TotalUsage(name),
			PerFile:    perFile,
			Divergent:  cat.Divergent(name),
		})
	}
	return out
}
