// Package paths provides the path arithmetic treedump relies on.
//
// Everything here is lexical: no function touches the filesystem. This
// matters for symlink decisions, which are taken against a destination
// tree that may not exist yet.
//
// # Containment
//
// A path is contained in a boundary when it lies at or below it. Two
// modes are supported:
//
//   - ContainmentSegment: the boundary must match whole path segments,
//     so /inst-2/lib is NOT inside /inst.
//   - ContainmentPrefix: plain string prefix, so /inst-2/lib IS inside
//     /inst. This mirrors older packaging tools and is kept for
//     compatibility.
//
// # Usage
//
//	target := paths.NormalizeLinkTarget("/inst/bin/x", "../lib/y.so")
//	// target == "/inst/lib/y.so"
//	paths.IsContained("/inst", target, paths.ContainmentSegment) // true
package paths
