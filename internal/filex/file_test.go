package filex

import (
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/stretchr/testify/require"
)

func chdir(t *testing.T, dir string) func() {
	t.Helper()
	old, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	return func() { _ = os.Chdir(old) }
}

func TestEnsureDir_RelativeToCWD(t *testing.T) {
	tmp := t.TempDir()
	defer chdir(t, tmp)()

	got, err := EnsureDir("downloads")
	require.NoError(t, err)

	want := filepath.Join(tmp, "downloads")
	require.Equal(t, want, got)

	fi, err := os.Stat(want)
	require.NoError(t, err)
	require.True(t, fi.IsDir())

	if runtime.GOOS != "windows" {
		require.Equal(t, os.FileMode(0o700), fi.Mode().Perm()&0o700)
	}

	again, err := EnsureDir("downloads")
	require.NoError(t, err)
	require.Equal(t, got, again)
}

func TestEnsureDir_Absolute(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "a", "b")
	got, err := EnsureDir(dir)
	require.NoError(t, err)
	require.Equal(t, dir, got)
}

func TestEnsureDir_FileInTheWay(t *testing.T) {
	tmp := t.TempDir()
	defer chdir(t, tmp)()

	require.NoError(t, os.WriteFile("downloads", []byte("x"), 0o660))

	_, err := EnsureDir("downloads")
	require.Error(t, err)
}

func TestSave(t *testing.T) {
	dir := t.TempDir()

	p1, err := Save(dir, "../../etc/report.pdf", []byte("one"))
	require.NoError(t, err)
	require.Equal(t, filepath.Join(dir, "report.pdf"), p1)

	p2, err := Save(dir, "report.pdf", []byte("two"))
	require.NoError(t, err)
	require.Equal(t, filepath.Join(dir, "report (1).pdf"), p2)

	b, err := os.ReadFile(p1)
	require.NoError(t, err)
	require.Equal(t, "one", string(b))
	b, err = os.ReadFile(p2)
	require.NoError(t, err)
	require.Equal(t, "two", string(b))
}

func TestSave_BadName(t *testing.T) {
	for _, name := range []string{"", ".", "..", "/"} {
		_, err := Save(t.TempDir(), name, []byte("x"))
		require.ErrorIs(t, err, ErrBadName, name)
	}
}
