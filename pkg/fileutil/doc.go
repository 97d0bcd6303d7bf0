// Package fileutil holds the copy primitives treedump is built on.
//
// Copier.CopyTree walks a source directory, recreates its directories at
// the destination and hands every other entry (files and symlinks,
// including symlinks to directories) to a CopyFunc. Copier.LinkOrCopy is
// the usual CopyFunc building block: it either recreates a symlink with
// the same target string or copies the content it points at.
//
// When the content to copy does not exist, LinkOrCopy returns an error
// with code FILE_NOT_FOUND (see IsSourceNotFound). Every other failure is
// returned exactly as the filesystem reported it.
package fileutil
