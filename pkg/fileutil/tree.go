package fileutil

import (
	"io/fs"
	"path/filepath"

	"github.com/arthur-debert/treedump/pkg/errors"
	"github.com/bmatcuk/doublestar/v4"
)

// CopyFunc copies one non-directory entry from src to dst
type CopyFunc func(src, dst string) error

// ValidatePatterns checks exclude patterns for syntax errors
func ValidatePatterns(patterns []string) error {
	for _, pattern := range patterns {
		if !doublestar.ValidatePattern(pattern) {
			return errors.Newf(errors.ErrInvalidInput, "invalid exclude pattern %q", pattern).
				WithDetail("pattern", pattern)
		}
	}
	return nil
}

// CopyTree recreates the directory src at dst. Directories get the
// source permissions, every other entry goes through copyFn in
// lexical order, parents before children. Symlinks to directories are
// not descended: they are passed to copyFn like files. If dst lies inside
// src it is not copied into itself.
func (c *Copier) CopyTree(src, dst string, copyFn CopyFunc) error {
	return c.CopySubtree(src, dst, ".", copyFn)
}

// CopySubtree is CopyTree for a tree whose entries sit at base below the
// root the exclude patterns are written against, such as the target of a
// followed directory link.
func (c *Copier) CopySubtree(src, dst, base string, copyFn CopyFunc) error {
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
	if err := c.createDirectory(dst); err != nil {
		return err
	}

	if err := c.walk(src, dst, filepath.Clean(base), ".", copyFn); err != nil {
		return err
	}
	return c.finishDirectory(dst, info)
}

func (c *Copier) walk(srcRoot, dstRoot, base, rel string, copyFn CopyFunc) error {
	entries, err := c.fs.ReadDir(filepath.Join(srcRoot, rel))
	if err != nil {
		return err
	}

	for _, entry := range entries {
		childRel := filepath.Join(rel, entry.Name())
		excluded, err := c.excluded(filepath.Join(base, childRel))
		if err != nil {
			return err
		}
		if excluded {
			c.logger.Trace().Str("path", filepath.Join(base, childRel)).Msg("Excluded")
			continue
		}

		src := filepath.Join(srcRoot, childRel)
		dst := filepath.Join(dstRoot, childRel)
		if src == dstRoot {
			c.logger.Debug().Str("path", src).Msg("Skipping destination nested in source")
			continue
		}

		if entry.Type()&fs.ModeSymlink == 0 && entry.IsDir() {
			info, err := entry.Info()
			if err != nil {
				return err
			}
			if err := c.createDirectory(dst); err != nil {
				return err
			}
			if err := c.walk(srcRoot, dstRoot, base, childRel, copyFn); err != nil {
				return err
			}
			if err := c.finishDirectory(dst, info); err != nil {
				return err
			}
			if c.opts.OnDirectory != nil {
				c.opts.OnDirectory(src, dst)
			}
			continue
		}

		if err := copyFn(src, dst); err != nil {
			return err
		}
	}
	return nil
}

func (c *Copier) excluded(rel string) (bool, error) {
	slashed := filepath.ToSlash(rel)
	for _, pattern := range c.opts.Exclude {
		ok, err := doublestar.Match(pattern, slashed)
		if err != nil {
			return false, errors.Wrapf(err, errors.ErrInvalidInput, "invalid exclude pattern %q", pattern)
		}
		if ok {
			return true, nil
		}
	}
	return false, nil
}
