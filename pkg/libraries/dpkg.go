package libraries

import (
	"bufio"
	"bytes"
	"fmt"
	"io/fs"
	"path/filepath"
	"strings"

	"github.com/arthur-debert/treedump/pkg/errors"
	"github.com/arthur-debert/treedump/pkg/logging"
	"github.com/arthur-debert/treedump/pkg/types"
	"github.com/rs/zerolog"
)

// DefaultDpkgInfoDir is where dpkg keeps the per-package file lists
const DefaultDpkgInfoDir = "/var/lib/dpkg/info"

// errNotInstalled marks a package without any dpkg list file. It wraps
// fs.ErrNotExist so callers can treat it like a missing database.
var errNotInstalled = fmt.Errorf("no dpkg file list: %w", fs.ErrNotExist)

// DpkgLookup answers PackageLibraries from dpkg's installed file lists
// (<info>/<pkg>.list and the multiarch <info>/<pkg>:<arch>.list). Only
// entries whose path mentions "lib" and that resolve to a regular file
// are kept.
type DpkgLookup struct {
	fsys    types.FS
	infoDir string
	logger  zerolog.Logger
}

// NewDpkgLookup creates a lookup reading list files under infoDir.
// An empty infoDir selects DefaultDpkgInfoDir.
func NewDpkgLookup(fsys types.FS, infoDir string) *DpkgLookup {
	if infoDir == "" {
		infoDir = DefaultDpkgInfoDir
	}
	return &DpkgLookup{
		fsys:    fsys,
		infoDir: infoDir,
		logger:  logging.GetLogger("libraries.dpkg"),
	}
}

// PackageLibraries implements Lookup. When the package has no list file
// the error wraps fs.ErrNotExist.
func (d *DpkgLookup) PackageLibraries(pkg string) (Set, error) {
	lists, err := d.listFiles(pkg)
	if err != nil {
		return nil, err
	}

	set := make(Set)
	for _, list := range lists {
		data, err := d.fsys.ReadFile(list)
		if err != nil {
			return nil, errors.Wrapf(err, errors.ErrLibraryLookup,
				"failed to read package list %s", list)
		}
		d.collect(data, set)
	}

	d.logger.Debug().
		Str("package", pkg).
		Strs("lists", lists).
		Int("libraries", set.Len()).
		Msg("Loaded package libraries")

	return set, nil
}

func (d *DpkgLookup) listFiles(pkg string) ([]string, error) {
	entries, err := d.fsys.ReadDir(d.infoDir)
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrLibraryLookup,
			"failed to read dpkg info directory %s", d.infoDir).
			WithDetail("package", pkg)
	}

	var lists []string
	for _, entry := range entries {
		name := entry.Name()
		if !strings.HasSuffix(name, ".list") {
			continue
		}
		base := strings.TrimSuffix(name, ".list")
		if base == pkg || strings.HasPrefix(base, pkg+":") {
			lists = append(lists, filepath.Join(d.infoDir, name))
		}
	}

	if len(lists) == 0 {
		return nil, errors.Wrapf(errNotInstalled, errors.ErrLibraryLookup,
			"package %s is not installed", pkg).
			WithDetail("package", pkg)
	}
	return lists, nil
}

func (d *DpkgLookup) collect(data []byte, set Set) {
	scanner := bufio.NewScanner(bytes.NewReader(data))
	for scanner.Scan() {
		path := strings.TrimSpace(scanner.Text())
		if path == "" || !strings.Contains(path, "lib") {
			continue
		}
		info, err := d.fsys.Stat(path)
		if err != nil || !info.Mode().IsRegular() {
			continue
		}
		set[path] = struct{}{}
	}
}
