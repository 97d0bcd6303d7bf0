package fileutil

import (
	stderrors "errors"
	"io"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/arthur-debert/treedump/pkg/errors"
	"github.com/arthur-debert/treedump/pkg/logging"
	"github.com/arthur-debert/treedump/pkg/types"
	"github.com/rs/zerolog"
)

// modeBits are the mode bits carried over to copies
const modeBits = fs.ModePerm | fs.ModeSetuid | fs.ModeSetgid | fs.ModeSticky

// Options tune the copy primitives
type Options struct {
	// Exclude holds doublestar patterns matched against slash separated
	// paths relative to the root of the copy. A matching directory is
	// skipped with everything below it.
	Exclude []string
	// PreserveTimes copies modification times to files, links and
	// directories.
	PreserveTimes bool
	// OnDirectory, when set, is called once a directory below the tree
	// root has been fully copied.
	OnDirectory func(src, dst string)
}

// Copier performs copies through a types.FS
type Copier struct {
	fs     types.FS
	opts   Options
	logger zerolog.Logger
}

// NewCopier creates a Copier. Exclude patterns are validated here.
func NewCopier(fsys types.FS, opts Options) (*Copier, error) {
	if err := ValidatePatterns(opts.Exclude); err != nil {
		return nil, err
	}
	return &Copier{
		fs:     fsys,
		opts:   opts,
		logger: logging.GetLogger("fileutil"),
	}, nil
}

// IsSourceNotFound reports whether err says the content to copy is missing
func IsSourceNotFound(err error) bool {
	return errors.IsErrorCode(err, errors.ErrFileNotFound)
}

// LinkOrCopy copies src to dst. With followSymlinks false and src a
// symlink, the link is recreated at dst with the same target string.
// Otherwise the content src resolves to is copied, with its mode bits.
// An existing non-directory at dst is replaced.
func (c *Copier) LinkOrCopy(src, dst string, followSymlinks bool) error {
	if !followSymlinks {
		info, err := c.fs.Lstat(src)
		if err != nil {
			return err
		}
		if info.Mode()&fs.ModeSymlink != 0 {
			return c.copySymlink(src, dst, info)
		}
	}
	return c.copyFile(src, dst)
}

func (c *Copier) copySymlink(src, dst string, info fs.FileInfo) error {
	target, err := c.fs.Readlink(src)
	if err != nil {
		return err
	}
	if err := c.prepareDestination(dst); err != nil {
		return err
	}
	if err := c.fs.Symlink(target, dst); err != nil {
		return err
	}
	if c.opts.PreserveTimes {
		if err := c.fs.Lchtimes(dst, info.ModTime(), info.ModTime()); err != nil {
			return err
		}
	}

	c.logger.Trace().
		Str("source", src).
		Str("destination", dst).
		Str("link", target).
		Msg("Recreated symlink")
	return nil
}

func (c *Copier) copyFile(src, dst string) error {
	info, err := c.fs.Stat(src)
	if err != nil {
		return sourceError(src, err)
	}
	if info.IsDir() {
		return errors.Newf(errors.ErrInvalidInput,
			"cannot copy directory %s as a file", src).
			WithDetail("path", src)
	}
	// pipes, sockets and devices cannot be copied by content
	if !info.Mode().IsRegular() {
		return errors.Newf(errors.ErrInvalidInput,
			"cannot copy special file %s (%s)", src, info.Mode().Type()).
			WithDetail("path", src)
	}

	if err := c.prepareDestination(dst); err != nil {
		return err
	}

	in, err := c.fs.Open(src)
	if err != nil {
		return sourceError(src, err)
	}
	defer func() { _ = in.Close() }()

	out, err := c.fs.OpenFile(dst, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, info.Mode().Perm())
	if err != nil {
		return err
	}
	if _, err := io.Copy(out, in); err != nil {
		_ = out.Close()
		return err
	}
	if err := out.Close(); err != nil {
		return err
	}

	// OpenFile is subject to the umask
	if err := c.fs.Chmod(dst, info.Mode()&modeBits); err != nil {
		return err
	}
	if c.opts.PreserveTimes {
		if err := c.fs.Chtimes(dst, info.ModTime(), info.ModTime()); err != nil {
			return err
		}
	}

	c.logger.Trace().
		Str("source", src).
		Str("destination", dst).
		Int64("size", info.Size()).
		Msg("Copied file")
	return nil
}

// prepareDestination makes sure dst's parent exists and nothing but a
// directory is left at dst.
func (c *Copier) prepareDestination(dst string) error {
	if err := c.fs.MkdirAll(filepath.Dir(dst), 0755); err != nil {
		return err
	}

	existing, err := c.fs.Lstat(dst)
	switch {
	case err == nil && existing.IsDir():
		return errors.Newf(errors.ErrInvalidInput,
			"cannot overwrite directory %s", dst).
			WithDetail("path", dst)
	case err == nil:
		return c.fs.Remove(dst)
	case stderrors.Is(err, fs.ErrNotExist):
		return nil
	default:
		return err
	}
}

// CreateSimilarDirectory creates dst with the permission bits of src,
// which must be a directory. An existing directory at dst is kept and
// its mode updated.
func (c *Copier) CreateSimilarDirectory(src, dst string) error {
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
	return c.finishDirectory(dst, info)
}

// createDirectory makes dst a writable directory. The source mode is
// applied by finishDirectory once the children are in place, so that
// read-only source directories can still be filled.
func (c *Copier) createDirectory(dst string) error {
	if existing, err := c.fs.Lstat(dst); err == nil && !existing.IsDir() {
		return errors.Newf(errors.ErrNotADirectory,
			"cannot overwrite non-directory %s with directory", dst).
			WithDetail("path", dst)
	}
	return c.fs.MkdirAll(dst, 0755)
}

// finishDirectory applies the source mode and, when asked, the source
// modification time. Writing children moves a directory's mtime, so this
// runs after them.
func (c *Copier) finishDirectory(dst string, info fs.FileInfo) error {
	if err := c.fs.Chmod(dst, info.Mode()&modeBits); err != nil {
		return err
	}
	if !c.opts.PreserveTimes {
		return nil
	}
	return c.fs.Chtimes(dst, info.ModTime(), info.ModTime())
}

// sourceError tags a missing source so callers can tell it apart from
// other failures.
func sourceError(src string, err error) error {
	if stderrors.Is(err, fs.ErrNotExist) {
		return errors.Wrapf(err, errors.ErrFileNotFound, "source %s not found", src).
			WithDetail("path", src)
	}
	return err
}
