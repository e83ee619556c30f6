package commands

import (
	"fmt"
	"os"
	"strconv"

	"github.com/spf13/cobra"

	"commonize/comerr"
	"commonize/internal/project"
	"commonize/internal/report"
	"commonize/internal/runner"
	"commonize/internal/sharedmod"
	"commonize/internal/vcs"
)

const defaultExtension = ".rs"

var (
	dedupDryRun     bool
	dedupForce      bool
	dedupExtension  string
	dedupSharedFile string
)

func runDedup(cmd *cobra.Command, args []string) error {
	opts, err := resolveOptions(args)
	if err != nil {
		return err
	}

	// Planning is read-only, so it happens before the worktree guard: a
	// steady-state re-run has nothing to write and must succeed even though
	// the previous run left uncommitted modifications behind.
	pass, err := runner.Plan(opts)
	if err != nil {
		return err
	}

	// The rewrite is destructive: refuse to touch a dirty worktree so the
	// operator always has a checkpoint to diff against.
	if pass.HasChanges() && !opts.DryRun && !dedupForce {
		if err := vcs.CheckClean(opts.Dir); err != nil {
			return err
		}
	}

	res, err := pass.Apply()
	if err != nil {
		return err
	}
	report.Print(os.Stdout, res.Summary)
	return nil
}

// resolveOptions layers settings: built-in defaults, then the directory
// manifest, then command-line arguments and flags.
func resolveOptions(args []string) (runner.Options, error) {
	opts := runner.Options{
		Dir:        ".",
		Threshold:  1,
		Extension:  defaultExtension,
		SharedFile: sharedmod.DefaultFile,
		DryRun:     dedupDryRun,
	}
	if len(args) > 0 {
		opts.Dir = args[0]
	}

	manifest, err := project.Load(opts.Dir)
	if err != nil {
		return runner.Options{}, comerr.NewConfigError(err.Error())
	}
	if manifest.Scan.Extension != "" {
		opts.Extension = manifest.Scan.Extension
	}
	if manifest.Scan.SharedFile != "" {
		opts.SharedFile = manifest.Scan.SharedFile
	}
	if manifest.Promote.Threshold != nil {
		opts.Threshold = *manifest.Promote.Threshold
	}

	if len(args) > 1 {
		n, err := strconv.Atoi(args[1])
		if err != nil {
			return runner.Options{}, comerr.NewConfigError(
				fmt.Sprintf("invalid typecount %q: expected an integer", args[1]))
		}
		opts.Threshold = n
	}
	if dedupExtension != "" {
		opts.Extension = dedupExtension
	}
	if dedupSharedFile != "" {
		opts.SharedFile = dedupSharedFile
	}
	return opts, nil
}
