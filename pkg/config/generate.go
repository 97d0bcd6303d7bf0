package config

import (
	"github.com/arthur-debert/treedump/pkg/errors"
	"github.com/pelletier/go-toml/v2"
)

const generatedHeader = `# treedump configuration
# Save as $XDG_CONFIG_HOME/treedump/config.toml or .treedump.toml in
# the directory treedump runs from.

`

// Generate renders cfg as a TOML configuration file
func Generate(cfg *Config) ([]byte, error) {
	// empty lists stay visible in the output
	out := *cfg
	if out.Libraries.Extra == nil {
		out.Libraries.Extra = []string{}
	}
	if out.Copy.Exclude == nil {
		out.Copy.Exclude = []string{}
	}

	data, err := toml.Marshal(out)
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrInternal, "failed to render configuration")
	}
	return append([]byte(generatedHeader), data...), nil
}
