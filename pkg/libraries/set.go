// Package libraries builds the library exception set: files owned by a
// designated system package (the C library by default) that symlinks may
// keep pointing at even though they live outside the destination tree.
package libraries

import (
	"path/filepath"
	"sort"
)

// DefaultPackage is the package whose libraries are exempt by default
const DefaultPackage = "libc6"

// Set is a read-only set of absolute library paths
type Set map[string]struct{}

// NewSet returns a set holding the cleaned form of every path
func NewSet(paths ...string) Set {
	s := make(Set, len(paths))
	for _, p := range paths {
		s[filepath.Clean(p)] = struct{}{}
	}
	return s
}

// Contains reports whether path is a member. Matching is exact on the
// string given; callers pass the raw link target.
func (s Set) Contains(path string) bool {
	_, ok := s[path]
	return ok
}

// Len returns the number of paths in the set
func (s Set) Len() int {
	return len(s)
}

// Union returns a new set with the members of both sets
func (s Set) Union(other Set) Set {
	out := make(Set, len(s)+len(other))
	for p := range s {
		out[p] = struct{}{}
	}
	for p := range other {
		out[p] = struct{}{}
	}
	return out
}

// Paths returns the members in lexical order
func (s Set) Paths() []string {
	out := make([]string, 0, len(s))
	for p := range s {
		out = append(out, p)
	}
	sort.Strings(out)
	return out
}

// Lookup returns the library files owned by a named system package
type Lookup interface {
	PackageLibraries(pkg string) (Set, error)
}

// StaticLookup serves package libraries from memory. Unknown packages
// yield an empty set.
type StaticLookup map[string][]string

// PackageLibraries implements Lookup
func (s StaticLookup) PackageLibraries(pkg string) (Set, error) {
	return NewSet(s[pkg]...), nil
}

// WithExtra wraps a Lookup so every answer also holds the extra paths
func WithExtra(lookup Lookup, extra ...string) Lookup {
	if len(extra) == 0 {
		return lookup
	}
	return &extraLookup{inner: lookup, extra: NewSet(extra...)}
}

type extraLookup struct {
	inner Lookup
	extra Set
}

func (e *extraLookup) PackageLibraries(pkg string) (Set, error) {
	set, err := e.inner.PackageLibraries(pkg)
	if err != nil {
		return e.extra, err
	}
	return set.Union(e.extra), nil
}
