package fileutil

import (
	"io/fs"
	"path/filepath"

	"github.com/arthur-debert/treedump/pkg/errors"
)

// WalkFunc is called for every entry CopyTree would handle. d describes
// the source entry without following it.
type WalkFunc func(src, dst string, d fs.DirEntry) error

// Walk visits the entries of src in the order CopyTree copies them,
// mapping each onto dst, without writing anything. Exclusions and the
// nested destination skip apply as in CopyTree.
func (c *Copier) Walk(src, dst string, visit WalkFunc) error {
	src = filepath.Clean(src)
	dst = filepath.Clean(dst)

	info, err := c.fs.Stat(src)
	if err != nil {
		return err
	}
	if !info.IsDir() {
		return errors.Newf(errors.ErrNotADirectory, "%s is not a directory", src).
			WithDetail("path", src)
	}
	return c.walkDry(src, dst, ".", visit)
}

func (c *Copier) walkDry(srcRoot, dstRoot, rel string, visit WalkFunc) error {
	entries, err := c.fs.ReadDir(filepath.Join(srcRoot, rel))
	if err != nil {
		return err
	}

	for _, entry := range entries {
		childRel := filepath.Join(rel, entry.Name())
		excluded, err := c.excluded(childRel)
		if err != nil {
			return err
		}
		if excluded {
			continue
		}

		src := filepath.Join(srcRoot, childRel)
		if src == dstRoot {
			continue
		}
		if err := visit(src, filepath.Join(dstRoot, childRel), entry); err != nil {
			return err
		}
		if entry.Type()&fs.ModeSymlink == 0 && entry.IsDir() {
			if err := c.walkDry(srcRoot, dstRoot, childRel, visit); err != nil {
				return err
			}
		}
	}
	return nil
}
