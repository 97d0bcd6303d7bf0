// Package dump replicates a build tree into an install tree.
//
// Every entry under the source root is copied to the same relative
// location under the destination root. Directories and regular files are
// copied by content with their permission bits. Symlinks are handed to
// the resolver: a link whose target stays inside the destination tree is
// recreated verbatim, any other link is replaced by a copy of what it
// points at, unless the target is one of the system C library files.
//
// A followed link to a directory is replicated like any other
// directory, entry by entry, so links found inside it get their own
// decisions.
//
// A link that has to be followed but points at nothing fails the run
// with an INVALID_SYMLINK error naming the link. Every other I/O failure
// is returned unchanged. The first error stops the run and nothing is
// rolled back.
package dump
