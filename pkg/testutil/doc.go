// Package testutil provides utilities for testing treedump components.
//
// Key components:
//   - Tree: declarative builder for files, directories and symlinks
//     under a temporary root on the real filesystem
//   - AssertSymlink / AssertRegularFile / AssertTreesEqual: assertions
//     about what a copy produced
//
// Symlink behaviour cannot be exercised on in-memory filesystems, so
// everything here works on t.TempDir().
package testutil
