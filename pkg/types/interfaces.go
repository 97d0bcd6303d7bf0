package types

import (
	"io"
	"io/fs"
	"time"
)

// FS defines the filesystem operations needed by treedump
type FS interface {
	// File operations
	Stat(name string) (fs.FileInfo, error)
	Open(name string) (io.ReadCloser, error)
	OpenFile(name string, flag int, perm fs.FileMode) (io.WriteCloser, error)
	ReadFile(name string) ([]byte, error)
	WriteFile(name string, data []byte, perm fs.FileMode) error

	// Directory operations
	MkdirAll(path string, perm fs.FileMode) error
	ReadDir(name string) ([]fs.DirEntry, error)

	// Symlink operations
	Symlink(oldname, newname string) error
	Readlink(name string) (string, error)

	// Metadata operations
	Chmod(name string, mode fs.FileMode) error
	Chtimes(name string, atime, mtime time.Time) error
	// Lchtimes sets times on a symlink itself. Implementations that cannot
	// do this return nil.
	Lchtimes(name string, atime, mtime time.Time) error

	// Other operations
	Remove(name string) error
	RemoveAll(path string) error

	// Lstat must not follow a final symlink. Implementations without
	// symlink support may fall back to Stat.
	Lstat(name string) (fs.FileInfo, error)
}
