package commands

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing/object"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"commonize/comerr"
	"commonize/internal/vcs"
)

const markerLines = `#[cfg_attr(feature = "derive_debug", derive(Debug))]
#[cfg_attr(feature = "derive_default", derive(Default))]
#[cfg_attr(feature = "derive_serde", derive(Serialize, Deserialize))]
#[cfg_attr(feature = "derive_clone", derive(Clone))]
#[cfg_attr(feature = "derive_partial_eq", derive(PartialEq))]
`

func declBlock(name, fieldType string) string {
	return "\n\n// " + name + " ...\n" +
		markerLines +
		"pub struct " + name + " {\n" +
		"\tpub value: " + fieldType + ",\n" +
		"}\n\n" +
		"impl " + name + " {\n" +
		"\tpub fn validate(&self) -> Result<(), ValidationError> {\n" +
		"\t\tOk(())\n\t}\n}\n"
}

func commitAll(t *testing.T, dir string) {
	t.Helper()
	repo, err := git.PlainOpen(dir)
	require.NoError(t, err)
	wt, err := repo.Worktree()
	require.NoError(t, err)
	_, err = wt.Add(".")
	require.NoError(t, err)
	_, err = wt.Commit("checkpoint", &git.CommitOptions{
		Author: &object.Signature{Name: "test", Email: "test@example.com", When: time.Now()},
	})
	require.NoError(t, err)
}

func TestResolveOptions_Defaults(t *testing.T) {
	opts, err := resolveOptions([]string{t.TempDir()})
	require.NoError(t, err)
	assert.Equal(t, 1, opts.Threshold)
	assert.Equal(t, ".rs", opts.Extension)
	assert.Equal(t, "common.rs", opts.SharedFile)
}

func TestResolveOptions_InvalidTypecount(t *testing.T) {
	_, err := resolveOptions([]string{t.TempDir(), "abc"})
	require.Error(t, err)
	var cfg *comerr.ConfigError
	assert.ErrorAs(t, err, &cfg)
}

func TestResolveOptions_ManifestOverridesDefaults(t *testing.T) {
	dir := t.TempDir()
	manifest := "[scan]\nshared_file = \"shared.rs\"\n\n[promote]\nthreshold = 5\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, "commonize.toml"), []byte(manifest), 0644))

	opts, err := resolveOptions([]string{dir})
	require.NoError(t, err)
	assert.Equal(t, 5, opts.Threshold)
	assert.Equal(t, "shared.rs", opts.SharedFile)
}

func TestResolveOptions_PositionalTypecountBeatsManifest(t *testing.T) {
	dir := t.TempDir()
	manifest := "[promote]\nthreshold = 5\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, "commonize.toml"), []byte(manifest), 0644))

	opts, err := resolveOptions([]string{dir, "2"})
	require.NoError(t, err)
	assert.Equal(t, 2, opts.Threshold)
}

func TestRunDedup_SecondRunInWorktreeIsNoOp(t *testing.T) {
	dir := t.TempDir()
	_, err := git.PlainInit(dir, false)
	require.NoError(t, err)
	prefix := "use regex::Regex;\n"
	content := prefix + declBlock("Holder", "Widget") + declBlock("Widget", "String")
	require.NoError(t, os.WriteFile(filepath.Join(dir, "a.rs"), []byte(content), 0644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "b.rs"), []byte(content), 0644))
	commitAll(t, dir)

	// First run rewrites both files, leaving them as tracked uncommitted
	// modifications.
	require.NoError(t, runDedup(rootCmd, []string{dir}))
	rewritten, err := os.ReadFile(filepath.Join(dir, "a.rs"))
	require.NoError(t, err)
	require.NotEqual(t, content, string(rewritten))

	// The immediate re-run has nothing left to write, so the worktree guard
	// must not block it.
	require.NoError(t, runDedup(rootCmd, []string{dir}))
}

func TestRunDedup_DirtyWorktreeBlocksPendingChanges(t *testing.T) {
	dir := t.TempDir()
	_, err := git.PlainInit(dir, false)
	require.NoError(t, err)
	content := "use regex::Regex;\n" + declBlock("helper", "String")
	require.NoError(t, os.WriteFile(filepath.Join(dir, "a.rs"), []byte(content), 0644))
	commitAll(t, dir)

	// Uncommitted edit to a file the run wants to rewrite.
	require.NoError(t, os.WriteFile(filepath.Join(dir, "a.rs"), []byte(content+"// touched\n"), 0644))

	err = runDedup(rootCmd, []string{dir})
	var dirty *vcs.DirtyError
	require.ErrorAs(t, err, &dirty)
}
