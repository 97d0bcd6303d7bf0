package config

import (
	"path/filepath"
	"strings"

	"github.com/arthur-debert/treedump/pkg/errors"
	"github.com/arthur-debert/treedump/pkg/fileutil"
	"github.com/arthur-debert/treedump/pkg/paths"
)

// Validate checks values the decoder cannot
func Validate(cfg *Config) error {
	if strings.TrimSpace(cfg.Libraries.Package) == "" {
		return errors.New(errors.ErrConfigValid, "libraries.package must not be empty")
	}

	for _, extra := range cfg.Libraries.Extra {
		if !filepath.IsAbs(extra) {
			return errors.Newf(errors.ErrConfigValid,
				"libraries.extra entry %q must be an absolute path", extra).
				WithDetail("key", "libraries.extra")
		}
	}

	if _, err := paths.ParseContainmentMode(cfg.Containment.Mode); err != nil {
		return errors.Wrap(err, errors.ErrConfigValid, "invalid containment.mode").
			WithDetail("key", "containment.mode")
	}

	if err := fileutil.ValidatePatterns(cfg.Copy.Exclude); err != nil {
		return errors.Wrap(err, errors.ErrConfigValid, "invalid copy.exclude").
			WithDetail("key", "copy.exclude")
	}

	return nil
}
