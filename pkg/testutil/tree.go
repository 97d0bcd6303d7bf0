package testutil

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

// Tree builds a directory tree under a temporary root
type Tree struct {
	t    *testing.T
	Root string
}

// NewTree creates an empty tree rooted in a fresh temp directory.
// The root is resolved so that tests on systems where the temp dir is
// itself behind a symlink (macOS /var) compare clean paths.
func NewTree(t *testing.T) *Tree {
	t.Helper()
	root, err := filepath.EvalSymlinks(t.TempDir())
	require.NoError(t, err)
	return &Tree{t: t, Root: root}
}

// Path returns the absolute path of rel inside the tree
func (tr *Tree) Path(rel string) string {
	return filepath.Join(tr.Root, filepath.FromSlash(rel))
}

// Dir creates a directory (and its parents)
func (tr *Tree) Dir(rel string) *Tree {
	tr.t.Helper()
	require.NoError(tr.t, os.MkdirAll(tr.Path(rel), 0755))
	return tr
}

// File writes a file with mode 0644, creating parents as needed
func (tr *Tree) File(rel, content string) *Tree {
	tr.t.Helper()
	return tr.FileMode(rel, content, 0644)
}

// FileMode writes a file with the given mode
func (tr *Tree) FileMode(rel, content string, mode os.FileMode) *Tree {
	tr.t.Helper()
	path := tr.Path(rel)
	require.NoError(tr.t, os.MkdirAll(filepath.Dir(path), 0755))
	require.NoError(tr.t, os.WriteFile(path, []byte(content), mode))
	require.NoError(tr.t, os.Chmod(path, mode))
	return tr
}

// Symlink creates rel as a symlink holding target verbatim
func (tr *Tree) Symlink(rel, target string) *Tree {
	tr.t.Helper()
	path := tr.Path(rel)
	require.NoError(tr.t, os.MkdirAll(filepath.Dir(path), 0755))
	require.NoError(tr.t, os.Symlink(target, path))
	return tr
}

// Touch sets the modification time of rel
func (tr *Tree) Touch(rel string, stamp time.Time) *Tree {
	tr.t.Helper()
	require.NoError(tr.t, os.Chtimes(tr.Path(rel), stamp, stamp))
	return tr
}
