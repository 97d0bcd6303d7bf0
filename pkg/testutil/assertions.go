package testutil

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// AssertSymlink checks that path is a symlink holding exactly target
func AssertSymlink(t *testing.T, path, target string) {
	t.Helper()

	info, err := os.Lstat(path)
	require.NoError(t, err)
	require.True(t, info.Mode()&fs.ModeSymlink != 0, "%s should be a symlink, got mode %s", path, info.Mode())

	got, err := os.Readlink(path)
	require.NoError(t, err)
	assert.Equal(t, target, got, "link target of %s", path)
}

// AssertRegularFile checks that path is a regular file (not a link) with content
func AssertRegularFile(t *testing.T, path, content string) {
	t.Helper()

	info, err := os.Lstat(path)
	require.NoError(t, err)
	require.True(t, info.Mode().IsRegular(), "%s should be a regular file, got mode %s", path, info.Mode())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, content, string(data), "content of %s", path)
}

// AssertNotExists checks that nothing, not even a dangling link, is at path
func AssertNotExists(t *testing.T, path string) {
	t.Helper()

	_, err := os.Lstat(path)
	assert.True(t, os.IsNotExist(err), "%s should not exist", path)
}

// AssertTreesEqual checks that two trees hold the same entries with the
// same kinds, permission bits, file contents and link targets.
func AssertTreesEqual(t *testing.T, expected, actual string) {
	t.Helper()

	want, err := Snapshot(expected)
	require.NoError(t, err)
	got, err := Snapshot(actual)
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

// Snapshot describes every entry under root, one line per entry, sorted
func Snapshot(root string) ([]string, error) {
	var lines []string
	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		rel, err := filepath.Rel(root, path)
		if err != nil {
			return err
		}
		info, err := d.Info()
		if err != nil {
			return err
		}

		switch {
		case info.Mode()&fs.ModeSymlink != 0:
			target, err := os.Readlink(path)
			if err != nil {
				return err
			}
			lines = append(lines, fmt.Sprintf("%s link -> %s", rel, target))
		case info.IsDir():
			lines = append(lines, fmt.Sprintf("%s dir %s", rel, info.Mode().Perm()))
		default:
			data, err := os.ReadFile(path)
			if err != nil {
				return err
			}
			lines = append(lines, fmt.Sprintf("%s file %s %q", rel, info.Mode().Perm(), data))
		}
		return nil
	})
	sort.Strings(lines)
	return lines, err
}
