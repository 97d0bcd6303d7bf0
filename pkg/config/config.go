package config

import (
	"github.com/arthur-debert/treedump/pkg/dump"
	"github.com/arthur-debert/treedump/pkg/libraries"
	"github.com/arthur-debert/treedump/pkg/paths"
	"github.com/arthur-debert/treedump/pkg/types"
)

// Config is the complete treedump configuration
type Config struct {
	Libraries   Libraries   `koanf:"libraries" toml:"libraries"`
	Containment Containment `koanf:"containment" toml:"containment"`
	Copy        Copy        `koanf:"copy" toml:"copy"`
}

// Libraries configures the library exception set
type Libraries struct {
	Package     string   `koanf:"package" toml:"package"`
	DpkgInfoDir string   `koanf:"dpkg_info_dir" toml:"dpkg_info_dir"`
	Extra       []string `koanf:"extra" toml:"extra"`
}

// Containment configures the boundary test
type Containment struct {
	Mode string `koanf:"mode" toml:"mode"`
}

// Copy configures the tree walk
type Copy struct {
	Exclude       []string `koanf:"exclude" toml:"exclude"`
	PreserveTimes bool     `koanf:"preserve_times" toml:"preserve_times"`
}

// ReplicatorOptions turns the configuration into dump.Options reading
// through fsys. The configuration must have passed Validate.
func (c *Config) ReplicatorOptions(fsys types.FS) (dump.Options, error) {
	mode, err := paths.ParseContainmentMode(c.Containment.Mode)
	if err != nil {
		return dump.Options{}, err
	}

	lookup := libraries.WithExtra(
		libraries.NewDpkgLookup(fsys, c.Libraries.DpkgInfoDir),
		c.Libraries.Extra...,
	)

	return dump.Options{
		FS:            fsys,
		Lookup:        lookup,
		Package:       c.Libraries.Package,
		Containment:   mode,
		Exclude:       c.Copy.Exclude,
		PreserveTimes: c.Copy.PreserveTimes,
	}, nil
}
