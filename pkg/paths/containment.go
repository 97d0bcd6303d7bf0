package paths

import (
	"path/filepath"
	"strings"

	"github.com/arthur-debert/treedump/pkg/errors"
)

// ContainmentMode selects how IsContained compares a path to a boundary
type ContainmentMode string

const (
	// ContainmentSegment requires the boundary to match whole path segments
	ContainmentSegment ContainmentMode = "segment"
	// ContainmentPrefix is a plain string prefix test
	ContainmentPrefix ContainmentMode = "prefix"
)

// ParseContainmentMode converts a configuration value into a mode.
// The empty string selects ContainmentSegment.
func ParseContainmentMode(value string) (ContainmentMode, error) {
	switch ContainmentMode(strings.ToLower(strings.TrimSpace(value))) {
	case "", ContainmentSegment:
		return ContainmentSegment, nil
	case ContainmentPrefix:
		return ContainmentPrefix, nil
	default:
		return "", errors.Newf(errors.ErrInvalidInput,
			"unknown containment mode %q (want %q or %q)", value, ContainmentSegment, ContainmentPrefix).
			WithDetail("mode", value)
	}
}

// NormalizeLinkTarget returns where link would point once a symlink
// holding it is placed at destination. Pure path arithmetic: the
// destination tree does not need to exist.
func NormalizeLinkTarget(destination, link string) string {
	if filepath.IsAbs(link) {
		return filepath.Clean(link)
	}
	return filepath.Clean(filepath.Join(filepath.Dir(destination), link))
}

// IsContained reports whether path lies at or below boundary.
// Both arguments are expected to be absolute and clean.
func IsContained(boundary, path string, mode ContainmentMode) bool {
	if mode == ContainmentPrefix {
		return strings.HasPrefix(path, boundary)
	}

	if path == boundary {
		return true
	}
	prefix := boundary
	if !strings.HasSuffix(prefix, string(filepath.Separator)) {
		prefix += string(filepath.Separator)
	}
	return strings.HasPrefix(path, prefix)
}
