// Package types defines the core types and interfaces used throughout treedump.
// This includes the FS abstraction every copy goes through, the Entry
// produced by a tree walk and the LinkDecision taken for symlinks.
package types
