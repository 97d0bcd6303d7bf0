// Package output renders replication plans and run summaries for the
// command line.
//
// Plans come in three formats: a pterm table for people, and YAML or
// JSON for scripts. Colour is applied with lipgloss styles and is turned
// off when the writer is not a terminal, when NO_COLOR is set, or when
// the terminal has no colour support.
package output
