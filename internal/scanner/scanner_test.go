package scanner

import (
	"errors"
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mkdirs(t *testing.T, root string, names ...string) {
	t.Helper()
	for _, n := range names {
		require.NoError(t, os.MkdirAll(filepath.Join(root, n), 0o755))
	}
}

func readLines(t *testing.T, path string) string {
	t.Helper()
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	return string(data)
}

// ---------------------------------------------------------------------------
// ListDirs
// ---------------------------------------------------------------------------

func TestListDirs_SkipsHiddenAndFiles(t *testing.T) {
	root := t.TempDir()
	mkdirs(t, root, "a", "b", ".hidden")
	require.NoError(t, os.WriteFile(filepath.Join(root, "c.txt"), []byte("x"), 0o644))

	names, err := ListDirs(root, Options{})
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"a", "b"}, names)
}

func TestListDirs_FollowsDirectorySymlinks(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("symlinks need elevated privileges on windows")
	}
	root := t.TempDir()
	target := t.TempDir()
	mkdirs(t, root, "real")
	require.NoError(t, os.Symlink(target, filepath.Join(root, "linked")))
	require.NoError(t, os.Symlink(filepath.Join(root, "missing"), filepath.Join(root, "dangling")))

	names, err := ListDirs(root, Options{})
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"real", "linked"}, names)
}

func TestListDirs_NotFound(t *testing.T) {
	_, err := ListDirs(filepath.Join(t.TempDir(), "nope"), Options{})
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrNotFound)

	var se *ScanError
	require.True(t, errors.As(err, &se))
	assert.Contains(t, se.Error(), "directory not found at:")
}

func TestListDirs_FileIsNotADirectory(t *testing.T) {
	file := filepath.Join(t.TempDir(), "plain.txt")
	require.NoError(t, os.WriteFile(file, nil, 0o644))

	_, err := ListDirs(file, Options{})
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestListDirs_PathThroughFile(t *testing.T) {
	file := filepath.Join(t.TempDir(), "notes.txt")
	require.NoError(t, os.WriteFile(file, nil, 0o644))
	parent := filepath.Join(file, "sub")

	_, err := ListDirs(parent, Options{})
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrNotFound)
	assert.Equal(t, "directory not found at: "+parent, err.Error())
}

func TestScanError_UnknownKindReadsAsNotFound(t *testing.T) {
	err := &ScanError{Path: "/x"}
	assert.Equal(t, "directory not found at: /x", err.Error())
}

func TestListDirs_PermissionDenied(t *testing.T) {
	if runtime.GOOS == "windows" || os.Geteuid() == 0 {
		t.Skip("permission bits are not enforced for this user")
	}
	root := t.TempDir()
	locked := filepath.Join(root, "locked")
	mkdirs(t, root, "locked/inner")
	require.NoError(t, os.Chmod(locked, 0o000))
	t.Cleanup(func() { _ = os.Chmod(locked, 0o755) })

	_, err := ListDirs(locked, Options{})
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrPermission)
	assert.Contains(t, err.Error(), "permission denied accessing")
}

// ---------------------------------------------------------------------------
// Scan
// ---------------------------------------------------------------------------

func TestScan_WritesNames(t *testing.T) {
	root := t.TempDir()
	mkdirs(t, root, "a", "b", ".hidden")
	require.NoError(t, os.WriteFile(filepath.Join(root, "c.txt"), nil, 0o644))
	out := filepath.Join(t.TempDir(), "repo_names.txt")

	res, err := Scan(root, out, Options{})
	require.NoError(t, err)
	assert.False(t, res.Empty())
	assert.ElementsMatch(t, []string{"a", "b"}, res.Names)
	assert.Equal(t, out, res.Output)

	content := readLines(t, out)
	assert.ElementsMatch(t, []string{"a\n", "b\n"}, splitKeep(content))
}

func TestScan_OverwritesPreviousOutput(t *testing.T) {
	root := t.TempDir()
	mkdirs(t, root, "first", "second")
	out := filepath.Join(t.TempDir(), "names.txt")

	_, err := Scan(root, out, Options{})
	require.NoError(t, err)

	require.NoError(t, os.RemoveAll(filepath.Join(root, "first")))
	require.NoError(t, os.RemoveAll(filepath.Join(root, "second")))
	mkdirs(t, root, "third")

	_, err = Scan(root, out, Options{})
	require.NoError(t, err)
	assert.Equal(t, "third\n", readLines(t, out))
}

func TestScan_EmptyDirectoryLeavesOutputAlone(t *testing.T) {
	root := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(root, "only-a-file"), nil, 0o644))
	out := filepath.Join(t.TempDir(), "names.txt")

	res, err := Scan(root, out, Options{})
	require.NoError(t, err)
	assert.True(t, res.Empty())
	assert.Empty(t, res.Output)

	_, statErr := os.Stat(out)
	assert.True(t, os.IsNotExist(statErr), "output file should not be created")
}

func TestScan_MissingDirectoryDoesNotTouchOutput(t *testing.T) {
	out := filepath.Join(t.TempDir(), "names.txt")
	require.NoError(t, os.WriteFile(out, []byte("keep\n"), 0o644))

	res, err := Scan(filepath.Join(t.TempDir(), "missing"), out, Options{})
	assert.Nil(t, res)
	assert.ErrorIs(t, err, ErrNotFound)
	assert.Equal(t, "keep\n", readLines(t, out))
}

func TestScan_UnwritableOutput(t *testing.T) {
	root := t.TempDir()
	mkdirs(t, root, "a")
	out := filepath.Join(t.TempDir(), "no-such-dir", "names.txt")

	_, err := Scan(root, out, Options{})
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrWrite)
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestResult_EmptyNil(t *testing.T) {
	var r *Result
	assert.True(t, r.Empty())
}

// splitKeep splits s into lines, keeping each trailing newline.
func splitKeep(s string) []string {
	var lines []string
	start := 0
	for i := 0; i < len(s); i++ {
		if s[i] == '\n' {
			lines = append(lines, s[start:i+1])
			start = i + 1
		}
	}
	if start < len(s) {
		lines = append(lines, s[start:])
	}
	return lines
}
