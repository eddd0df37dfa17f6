package fs_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/fwojciec/newsgrab/fs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Story: Atomic Output
// Rendered pages replace the target file only once fully written.

func TestFile_CommitReplacesTarget(t *testing.T) {
	t.Parallel()

	// Given an existing output file
	dir := t.TempDir()
	target := filepath.Join(dir, "news.html")
	require.NoError(t, os.WriteFile(target, []byte("old"), 0o644))

	// When I write and commit a new page
	f, err := fs.Create(target)
	require.NoError(t, err)
	_, err = f.Write([]byte("new page"))
	require.NoError(t, err)

	// Then the target holds only the old content until commit
	got, err := os.ReadFile(target)
	require.NoError(t, err)
	assert.Equal(t, "old", string(got))

	require.NoError(t, f.Commit())

	// And the new content afterwards, with no temp files left behind
	got, err = os.ReadFile(target)
	require.NoError(t, err)
	assert.Equal(t, "new page", string(got))
	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Len(t, entries, 1)
}

func TestFile_AbortKeepsTarget(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	target := filepath.Join(dir, "news.html")
	require.NoError(t, os.WriteFile(target, []byte("old"), 0o644))

	f, err := fs.Create(target)
	require.NoError(t, err)
	_, err = f.Write([]byte("partial"))
	require.NoError(t, err)
	require.NoError(t, f.Abort())

	got, err := os.ReadFile(target)
	require.NoError(t, err)
	assert.Equal(t, "old", string(got))
	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Len(t, entries, 1)
}

func TestCreate_MakesParentDirectories(t *testing.T) {
	t.Parallel()

	target := filepath.Join(t.TempDir(), "out", "daily", "news.xml")

	f, err := fs.Create(target)
	require.NoError(t, err)
	_, err = f.Write([]byte("<rss/>"))
	require.NoError(t, err)
	require.NoError(t, f.Commit())

	got, err := os.ReadFile(target)
	require.NoError(t, err)
	assert.Equal(t, "<rss/>", string(got))
}
