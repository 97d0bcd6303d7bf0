package dump

import (
	stderrors "errors"
	"io/fs"
	"os"

	"github.com/arthur-debert/treedump/pkg/errors"
	"github.com/arthur-debert/treedump/pkg/filesystem"
	"github.com/arthur-debert/treedump/pkg/fileutil"
	"github.com/arthur-debert/treedump/pkg/libraries"
	"github.com/arthur-debert/treedump/pkg/logging"
	"github.com/arthur-debert/treedump/pkg/paths"
	"github.com/arthur-debert/treedump/pkg/resolve"
	"github.com/arthur-debert/treedump/pkg/types"
	"github.com/rs/zerolog"
)

// Options configure a Replicator. The zero value replicates through the
// OS filesystem with libc6 libraries taken from the dpkg database.
type Options struct {
	FS types.FS
	// Lookup lists the libraries of Package. Defaults to the dpkg
	// database of the running system.
	Lookup libraries.Lookup
	// Package whose libraries links may keep pointing at
	Package     string
	Containment paths.ContainmentMode
	// Exclude holds doublestar patterns relative to the source root
	Exclude       []string
	PreserveTimes bool
}

// Result counts what a run did
type Result struct {
	Directories int
	Files       int
	Preserved   int
	Followed    int
}

// Replicator copies trees. It holds no state between runs.
type Replicator struct {
	opts   Options
	logger zerolog.Logger
}

// New validates opts and fills in defaults
func New(opts Options) (*Replicator, error) {
	if opts.FS == nil {
		opts.FS = filesystem.NewOS()
	}
	if opts.Lookup == nil {
		opts.Lookup = libraries.NewDpkgLookup(opts.FS, "")
	}
	if opts.Package == "" {
		opts.Package = libraries.DefaultPackage
	}

	mode, err := paths.ParseContainmentMode(string(opts.Containment))
	if err != nil {
		return nil, err
	}
	opts.Containment = mode

	if err := fileutil.ValidatePatterns(opts.Exclude); err != nil {
		return nil, err
	}

	return &Replicator{
		opts:   opts,
		logger: logging.GetLogger("dump"),
	}, nil
}

// Replicate copies sourceRoot into destinationRoot, which is created if
// needed. Content already under destinationRoot is kept unless an entry
// of the same name is copied over it.
func (r *Replicator) Replicate(sourceRoot, destinationRoot string) (*Result, error) {
	defer logging.LogOperationStart(r.logger, "replicate")()

	src, dst, rootInfo, err := r.roots(sourceRoot, destinationRoot)
	if err != nil {
		return nil, err
	}
	resolver, err := r.newResolver(dst)
	if err != nil {
		return nil, err
	}

	result := &Result{}
	copier, err := fileutil.NewCopier(r.opts.FS, fileutil.Options{
		Exclude:       r.opts.Exclude,
		PreserveTimes: r.opts.PreserveTimes,
		OnDirectory:   func(string, string) { result.Directories++ },
	})
	if err != nil {
		return nil, err
	}

	run := &run{
		root:     src,
		fs:       r.opts.FS,
		copier:   copier,
		resolver: resolver,
		result:   result,
		active:   []fs.FileInfo{rootInfo},
		logger:   r.logger,
	}
	if err := copier.CopyTree(src, dst, run.copyEntry); err != nil {
		return nil, err
	}

	r.logger.Info().
		Str("source", src).
		Str("destination", dst).
		Int("directories", result.Directories).
		Int("files", result.Files).
		Int("preserved", result.Preserved).
		Int("followed", result.Followed).
		Msg("Replicated tree")

	return result, nil
}

// Plan returns the entries Replicate would copy and the decision taken
// for every symlink, without writing anything. Followed links to
// directories are listed but not descended.
func (r *Replicator) Plan(sourceRoot, destinationRoot string) ([]types.Entry, error) {
	src, dst, _, err := r.roots(sourceRoot, destinationRoot)
	if err != nil {
		return nil, err
	}
	if existing, err := r.opts.FS.Lstat(dst); err == nil && !existing.IsDir() {
		return nil, errors.Newf(errors.ErrNotADirectory, "%s is not a directory", dst).
			WithDetail("path", dst)
	}

	resolver, err := r.newResolver(dst)
	if err != nil {
		return nil, err
	}
	copier, err := fileutil.NewCopier(r.opts.FS, fileutil.Options{Exclude: r.opts.Exclude})
	if err != nil {
		return nil, err
	}

	var entries []types.Entry
	err = copier.Walk(src, dst, func(s, d string, de fs.DirEntry) error {
		entry := types.Entry{Source: s, Destination: d, Kind: types.KindFile}
		switch {
		case de.Type()&fs.ModeSymlink != 0:
			link, err := r.opts.FS.Readlink(s)
			if err != nil {
				return err
			}
			entry.Kind = types.KindSymlink
			entry.Link = link
			entry.Decision = resolver.Decide(link, d)
		case de.IsDir():
			entry.Kind = types.KindDirectory
		}
		entries = append(entries, entry)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return entries, nil
}

// roots makes both roots absolute and checks the source is a directory
func (r *Replicator) roots(sourceRoot, destinationRoot string) (string, string, fs.FileInfo, error) {
	src, err := paths.Absolute(sourceRoot)
	if err != nil {
		return "", "", nil, err
	}
	dst, err := paths.Absolute(destinationRoot)
	if err != nil {
		return "", "", nil, err
	}

	info, err := r.opts.FS.Stat(src)
	if err != nil {
		if stderrors.Is(err, fs.ErrNotExist) {
			return "", "", nil, errors.Wrapf(err, errors.ErrFileNotFound, "source %s not found", src).
				WithDetail("path", src)
		}
		return "", "", nil, err
	}
	if !info.IsDir() {
		return "", "", nil, errors.Newf(errors.ErrNotADirectory, "source %s is not a directory", src).
			WithDetail("path", src)
	}
	return src, dst, info, nil
}

// newResolver looks the library exceptions up, once per run, and binds
// them to the destination boundary.
func (r *Replicator) newResolver(boundary string) (*resolve.Resolver, error) {
	exceptions, err := r.opts.Lookup.PackageLibraries(r.opts.Package)
	if err != nil {
		if !stderrors.Is(err, fs.ErrNotExist) {
			return nil, err
		}
		r.logger.Warn().
			Err(err).
			Str("package", r.opts.Package).
			Msg("Package database unavailable, no library exceptions apply")
	}
	if exceptions == nil {
		exceptions = libraries.NewSet()
	}

	r.logger.Debug().
		Str("package", r.opts.Package).
		Int("libraries", exceptions.Len()).
		Msg("Library exceptions loaded")

	return resolve.New(r.opts.FS, boundary, exceptions, r.opts.Containment)
}

// run is the state of one Replicate call
type run struct {
	root     string
	fs       types.FS
	copier   *fileutil.Copier
	resolver *resolve.Resolver
	result   *Result
	// active holds the source root and every followed directory being
	// replicated, outermost first
	active []fs.FileInfo
	logger zerolog.Logger
}

func (r *run) copyEntry(src, dst string) error {
	info, err := r.fs.Lstat(src)
	if err != nil {
		return err
	}
	if info.Mode()&fs.ModeSymlink == 0 {
		if err := r.copier.LinkOrCopy(src, dst, false); err != nil {
			return err
		}
		r.result.Files++
		return nil
	}

	decision, err := r.resolver.ResolveSymlink(src, dst)
	if err != nil {
		return err
	}
	if !decision.FollowSymlinks() {
		if err := r.copier.LinkOrCopy(src, dst, false); err != nil {
			return err
		}
		r.result.Preserved++
		return nil
	}

	target, err := r.fs.Stat(src)
	if err != nil {
		if stderrors.Is(err, fs.ErrNotExist) {
			return errors.NewInvalidSymlink(src, err)
		}
		return err
	}
	if target.IsDir() {
		return r.followDirectory(src, dst, target)
	}

	if err := r.copier.LinkOrCopy(src, dst, true); err != nil {
		if fileutil.IsSourceNotFound(err) {
			return errors.NewInvalidSymlink(src, err)
		}
		return err
	}
	r.result.Followed++
	return nil
}

func (r *run) followDirectory(src, dst string, target fs.FileInfo) error {
	for _, active := range r.active {
		if os.SameFile(active, target) {
			return errors.NewInvalidSymlink(src, nil).WithDetail("loop", true)
		}
	}

	r.logger.Debug().
		Str("source", src).
		Str("destination", dst).
		Int("depth", len(r.active)).
		Msg("Following directory symlink")

	r.active = append(r.active, target)
	defer func() { r.active = r.active[:len(r.active)-1] }()

	// exclusions stay relative to the source root inside followed links
	base, err := paths.RelativePath(r.root, src)
	if err != nil {
		return err
	}
	if err := r.copier.CopySubtree(src, dst, base, r.copyEntry); err != nil {
		return err
	}
	r.result.Followed++
	return nil
}
