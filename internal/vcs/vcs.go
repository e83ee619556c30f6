// Package vcs guards destructive rewrites behind a clean git worktree.
package vcs

import (
	"errors"
	"fmt"
	"path/filepath"
	"sort"
	"strings"

	"github.com/go-git/go-git/v5"
)

// DirtyError reports uncommitted changes under the scanned directory.
type DirtyError struct {
	Dir   string
	Files []string
}

func (e *DirtyError) Error() string {
	return fmt.Sprintf("%s has %d uncommitted change(s) (e.g. %s); commit them or pass --force",
		e.Dir, len(e.Files), e.Files[0])
}

// CheckClean returns a DirtyError when dir sits inside a git worktree and
// tracked files under dir carry uncommitted changes. Untracked files do not
// block: the rewrite cannot lose state that was never committed anyway. A
// directory outside any repository passes the check.
func CheckClean(dir string) error {
	repo, err := git.PlainOpenWithOptions(dir, &git.PlainOpenOptions{DetectDotGit: true})
	if errors.Is(err, git.ErrRepositoryNotExists) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("opening repository at %s: %w", dir, err)
	}

	wt, err := repo.Worktree()
	if err != nil {
		return fmt.Errorf("resolving worktree: %w", err)
	}
	status, err := wt.Status()
	if err != nil {
		return fmt.Errorf("reading worktree status: %w", err)
	}

	absDir, err := filepath.Abs(dir)
	if err != nil {
		return fmt.Errorf("resolving %s: %w", dir, err)
	}
	root := wt.Filesystem.Root()

	var dirty []string
	for path, fs := range status {
		if fs.Worktree == git.Untracked && fs.Staging == git.Untracked {
			continue
		}
		if fs.Worktree == git.Unmodified && fs.Staging == git.Unmodified {
			continue
		}
		abs := filepath.Join(root, filepath.FromSlash(path))
		if abs == absDir || strings.HasPrefix(abs, absDir+string(filepath.Separator)) {
			dirty = append(dirty, path)
		}
	}
	if len(dirty) > 0 {
		sort.Strings(dirty)
		return &DirtyError{Dir: dir, Files: dirty}
	}
	return nil
}
