// Package resolve decides, for one symlink about to be copied into a
// destination tree, whether the link itself can be kept or whether the
// content it points at must be copied instead.
//
// A link is kept when the path it names, read from where the copy will
// live, stays inside the destination root (the boundary). Links with an
// absolute target, or whose target climbs out of the boundary, are
// followed, unless the target is one of the exempt system library files.
//
// Only the immediate link target is inspected; chains are not resolved.
package resolve

import (
	"path/filepath"

	"github.com/arthur-debert/treedump/pkg/errors"
	"github.com/arthur-debert/treedump/pkg/libraries"
	"github.com/arthur-debert/treedump/pkg/logging"
	"github.com/arthur-debert/treedump/pkg/paths"
	"github.com/arthur-debert/treedump/pkg/types"
	"github.com/rs/zerolog"
)

// Resolver takes LinkDecisions against a fixed boundary
type Resolver struct {
	fs         types.FS
	boundary   string
	exceptions libraries.Set
	mode       paths.ContainmentMode
	logger     zerolog.Logger
}

// New creates a Resolver. boundary must be an absolute path; it is
// cleaned here. A nil exception set exempts nothing.
func New(fsys types.FS, boundary string, exceptions libraries.Set, mode paths.ContainmentMode) (*Resolver, error) {
	if !filepath.IsAbs(boundary) {
		return nil, errors.Newf(errors.ErrInvalidInput, "boundary %q must be absolute", boundary).
			WithDetail("boundary", boundary)
	}
	if mode == "" {
		mode = paths.ContainmentSegment
	}
	if exceptions == nil {
		exceptions = libraries.NewSet()
	}
	return &Resolver{
		fs:         fsys,
		boundary:   filepath.Clean(boundary),
		exceptions: exceptions,
		mode:       mode,
		logger:     logging.GetLogger("resolve"),
	}, nil
}

// Boundary returns the cleaned destination root
func (r *Resolver) Boundary() string {
	return r.boundary
}

// ResolveSymlink decides how the symlink at source is materialized at
// destination. source must be a symlink. The only I/O is one readlink
// of source; its error is returned unchanged.
func (r *Resolver) ResolveSymlink(source, destination string) (types.LinkDecision, error) {
	link, err := r.fs.Readlink(source)
	if err != nil {
		return types.Preserve, err
	}
	return r.Decide(link, destination), nil
}

// Decide is the pure part of ResolveSymlink: given the link string and
// the path the link will occupy, it returns the decision.
func (r *Resolver) Decide(link, destination string) types.LinkDecision {
	normalized := paths.NormalizeLinkTarget(destination, link)
	absolute := filepath.IsAbs(link)

	decision := types.Preserve
	reason := "inside boundary"
	if absolute || !paths.IsContained(r.boundary, normalized, r.mode) {
		if r.exceptions.Contains(link) {
			reason = "library exception"
		} else {
			decision = types.Follow
			reason = "outside boundary"
			if absolute {
				reason = "absolute target"
			}
		}
	}

	r.logger.Debug().
		Str("destination", destination).
		Str("link", link).
		Str("normalized", normalized).
		Str("decision", decision.String()).
		Str("reason", reason).
		Msg("Resolved symlink")

	return decision
}
