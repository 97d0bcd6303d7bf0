// Package config loads treedump's layered configuration.
//
// Values are read, later sources winning, from the embedded defaults,
// the user file under $XDG_CONFIG_HOME/treedump, a .treedump.toml or
// treedump.toml in the working directory, an explicit file, TREEDUMP_*
// environment variables and finally command line overrides.
package config
