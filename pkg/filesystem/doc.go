// Package filesystem provides filesystem implementations for treedump.
//
// This package contains implementations of the types.FS interface:
// the standard OS filesystem used by the CLI, and an afero-backed one
// used to run the copy machinery over any afero.Fs.
package filesystem
