package fileset

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dupemark/dupemark/pkg/duplog"
	"github.com/dupemark/dupemark/pkg/expression"
)

func TestNew_NonExistentRoot(t *testing.T) {
	set, err := New(filepath.Join(t.TempDir(), "missing"), Options{RepairMtime: true})
	require.NoError(t, err)
	assert.Equal(t, 0, set.Len())
	assert.Equal(t, 0, set.Existing)
}

func TestNew_SkipsHiddenDirectories(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "visible.txt", "data")

	hidden := filepath.Join(dir, ".hidden")
	require.NoError(t, os.Mkdir(hidden, 0o755))
	writeFile(t, hidden, "copy1.txt", "data")
	writeFile(t, hidden, "copy2.txt", "data")

	set := discover(t, dir)
	require.Equal(t, 1, set.Len())
	assert.Equal(t, filepath.Join(dir, "visible.txt"), set.Files[0].Path)

	// duplicate content inside the hidden subtree is never reported
	set.Sort()
	count, _, err := set.MarkDuplicates(duplog.New(), false)
	require.NoError(t, err)
	assert.Equal(t, 0, count)
}

func TestNew_HiddenRootIsWalked(t *testing.T) {
	parent := t.TempDir()
	root := filepath.Join(parent, ".dotroot")
	require.NoError(t, os.Mkdir(root, 0o755))
	writeFile(t, root, "a.txt", "data")

	set := discover(t, root)
	assert.Equal(t, 1, set.Len())
}

func TestNew_ExcludesExistingDuplicates(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "a.txt", "data")
	writeFile(t, dir, "b.txt"+Extension, "data")

	reporter := &recordingReporter{}
	set, err := New(dir, Options{RepairMtime: true, Reporter: reporter})
	require.NoError(t, err)

	assert.Equal(t, 1, set.Len())
	assert.Equal(t, 1, set.Existing)
	assert.Equal(t, 2, reporter.seen)
	assert.Equal(t, 1, reporter.existing)
}

func TestNew_RepairsZeroMtime(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "old.txt", "data")

	epoch := time.Unix(0, 0)
	require.NoError(t, os.Chtimes(path, epoch, epoch))

	set := discover(t, dir)
	require.Equal(t, 1, set.Len())

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.False(t, info.ModTime().Equal(epoch), "modified time should have been repaired")
}

func TestNew_DryRunLeavesZeroMtime(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "old.txt", "data")

	epoch := time.Unix(0, 0)
	require.NoError(t, os.Chtimes(path, epoch, epoch))

	_, err := New(dir, Options{RepairMtime: false})
	require.NoError(t, err)

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.True(t, info.ModTime().Equal(epoch))
}

func TestNew_IgnorePatterns(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "keep.txt", "data")
	writeFile(t, dir, "skip.bak", "data")

	set, err := New(dir, Options{
		IgnorePatterns: []string{`\.bak$`},
		RepairMtime:    true,
	})
	require.NoError(t, err)

	require.Equal(t, 1, set.Len())
	assert.Equal(t, filepath.Join(dir, "keep.txt"), set.Files[0].Path)
	assert.Equal(t, 1, set.Skipped)
}

func TestNew_SkipFilters(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "small.txt", "tiny")
	writeFile(t, dir, "large.txt", "this file is comfortably over the limit")

	filters, err := expression.Compile([]string{"Size < 16"})
	require.NoError(t, err)

	set, err := New(dir, Options{
		SkipFilters: filters,
		RepairMtime: true,
	})
	require.NoError(t, err)

	require.Equal(t, 1, set.Len())
	assert.Equal(t, filepath.Join(dir, "large.txt"), set.Files[0].Path)
	assert.Equal(t, 1, set.Skipped)
}

func TestNew_SkipsPermissionDeniedSubtree(t *testing.T) {
	if os.Geteuid() == 0 {
		t.Skip("running as root, permission checks are bypassed")
	}

	dir := t.TempDir()
	writeFile(t, dir, "visible.txt", "data")

	locked := filepath.Join(dir, "locked")
	require.NoError(t, os.Mkdir(locked, 0o755))
	writeFile(t, locked, "secret.txt", "data")
	require.NoError(t, os.Chmod(locked, 0o000))
	t.Cleanup(func() { _ = os.Chmod(locked, 0o755) })

	// the denied subtree is skipped, the walk continues
	set, err := New(dir, Options{RepairMtime: true})
	require.NoError(t, err)

	require.Equal(t, 1, set.Len())
	assert.Equal(t, filepath.Join(dir, "visible.txt"), set.Files[0].Path)
}

func TestNew_SkipsNonRegularFiles(t *testing.T) {
	dir := t.TempDir()
	target := writeFile(t, dir, "target.txt", "data")

	link := filepath.Join(dir, "link.txt")
	if err := os.Symlink(target, link); err != nil {
		t.Skipf("symlinks not supported: %v", err)
	}

	set := discover(t, dir)
	assert.Equal(t, 1, set.Len())
}
