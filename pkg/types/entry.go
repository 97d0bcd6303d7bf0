package types

import "fmt"

// EntryKind classifies a filesystem object met during a tree walk
type EntryKind string

const (
	KindFile      EntryKind = "file"
	KindDirectory EntryKind = "directory"
	KindSymlink   EntryKind = "symlink"
)

// LinkDecision tells the copier what to do with a symlink
type LinkDecision int

const (
	// Preserve recreates the link itself at the destination
	Preserve LinkDecision = iota
	// Follow copies the content the link points at
	Follow
)

// String returns the lowercase name of the decision
func (d LinkDecision) String() string {
	switch d {
	case Preserve:
		return "preserve"
	case Follow:
		return "follow"
	default:
		return fmt.Sprintf("LinkDecision(%d)", int(d))
	}
}

// FollowSymlinks reports whether the copy must follow the link
func (d LinkDecision) FollowSymlinks() bool {
	return d == Follow
}

// Entry is one filesystem object discovered during a replication walk.
// Link and Decision are only meaningful for KindSymlink.
type Entry struct {
	Source      string
	Destination string
	Kind        EntryKind
	Link        string
	Decision    LinkDecision
}

// IsSymlink reports whether the entry is a symbolic link
func (e Entry) IsSymlink() bool {
	return e.Kind == KindSymlink
}
