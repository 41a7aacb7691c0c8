package fsenum

import (
	"errors"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func collect(t *testing.T, fsys afero.Fs, path string) []string {
	t.Helper()
	var got []string
	err := Walk(fsys, path, func(p string) error {
		got = append(got, p)
		return nil
	})
	require.NoError(t, err)
	return got
}

func TestWalk_SingleFile(t *testing.T) {
	fsys := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fsys, "/conf/real.conf", []byte("a"), 0o644))

	got := collect(t, fsys, "/conf/real.conf")
	assert.Equal(t, []string{"/conf/real.conf"}, got)
}

func TestWalk_MissingPathYieldedUnchanged(t *testing.T) {
	// A non-statable path is handed through as-is; the later open is what
	// reports the real problem.
	fsys := afero.NewMemMapFs()

	got := collect(t, fsys, "/no/such/file.conf")
	assert.Equal(t, []string{"/no/such/file.conf"}, got)
}

func TestWalk_SkipsHiddenAndBackupFiles(t *testing.T) {
	fsys := afero.NewMemMapFs()
	for _, name := range []string{"/conf/.hidden", "/conf/backup~", "/conf/real.conf"} {
		require.NoError(t, afero.WriteFile(fsys, name, []byte("a"), 0o644))
	}

	got := collect(t, fsys, "/conf")
	assert.Equal(t, []string{"/conf/real.conf"}, got)
}

func TestWalk_PrunesCVSDirectories(t *testing.T) {
	fsys := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fsys, "/conf/CVS/entries.conf", []byte("a"), 0o644))
	require.NoError(t, afero.WriteFile(fsys, "/conf/sub/CVS/more.conf", []byte("a"), 0o644))
	require.NoError(t, afero.WriteFile(fsys, "/conf/sub/keep.conf", []byte("a"), 0o644))

	got := collect(t, fsys, "/conf")
	assert.Equal(t, []string{"/conf/sub/keep.conf"}, got)
}

func TestWalk_CVSNamedRootIsTraversed(t *testing.T) {
	// Only child directories are pruned; pointing straight at a directory
	// called CVS still enumerates it.
	fsys := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fsys, "/CVS/entries.conf", []byte("a"), 0o644))

	got := collect(t, fsys, "/CVS")
	assert.Equal(t, []string{"/CVS/entries.conf"}, got)
}

func TestWalk_Recursive(t *testing.T) {
	fsys := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fsys, "/conf/a.conf", []byte("a"), 0o644))
	require.NoError(t, afero.WriteFile(fsys, "/conf/sub/deep/b.conf", []byte("b"), 0o644))
	require.NoError(t, afero.WriteFile(fsys, "/conf/sub/.swp", []byte("x"), 0o644))

	got := collect(t, fsys, "/conf")
	assert.ElementsMatch(t, []string{"/conf/a.conf", "/conf/sub/deep/b.conf"}, got)
}

func TestWalk_CallbackErrorStopsTraversal(t *testing.T) {
	fsys := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fsys, "/conf/a.conf", []byte("a"), 0o644))
	require.NoError(t, afero.WriteFile(fsys, "/conf/b.conf", []byte("b"), 0o644))

	boom := errors.New("boom")
	var seen int
	err := Walk(fsys, "/conf", func(string) error {
		seen++
		return boom
	})
	assert.ErrorIs(t, err, boom)
	assert.Equal(t, 1, seen)
}
