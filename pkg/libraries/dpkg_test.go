package libraries

import (
	stderrors "errors"
	"io/fs"
	"testing"

	"github.com/arthur-debert/treedump/pkg/errors"
	"github.com/arthur-debert/treedump/pkg/filesystem"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newDpkgFS(t *testing.T) afero.Fs {
	t.Helper()
	mem := afero.NewMemMapFs()
	files := map[string]string{
		"/var/lib/dpkg/info/libc6:amd64.list": "/.\n/lib\n/lib/x86_64-linux-gnu\n" +
			"/lib/x86_64-linux-gnu/libc.so.6\n/lib/x86_64-linux-gnu/libm.so.6\n" +
			"/usr/share/doc/libc6/copyright\n/etc/ld.so.conf.d/x86_64-linux-gnu.conf\n" +
			"/lib/x86_64-linux-gnu/libgone.so.1\n",
		"/var/lib/dpkg/info/zlib1g.list":          "/usr/lib/libz.so.1\n",
		"/var/lib/dpkg/info/libc6:amd64.md5sums":  "ignored\n",
		"/lib/x86_64-linux-gnu/libc.so.6":         "ELF",
		"/lib/x86_64-linux-gnu/libm.so.6":         "ELF",
		"/usr/share/doc/libc6/copyright":          "text",
		"/etc/ld.so.conf.d/x86_64-linux-gnu.conf": "conf",
		"/usr/lib/libz.so.1":                      "ELF",
	}
	for path, content := range files {
		require.NoError(t, afero.WriteFile(mem, path, []byte(content), 0644))
	}
	return mem
}

func TestDpkgLookup_PackageLibraries(t *testing.T) {
	lookup := NewDpkgLookup(filesystem.NewAferoFS(newDpkgFS(t)), "/var/lib/dpkg/info")

	set, err := lookup.PackageLibraries("libc6")
	require.NoError(t, err)

	// Directories, non-lib paths and vanished files are dropped; docs
	// under a "libc6" directory still mention lib and are kept.
	assert.Equal(t, []string{
		"/lib/x86_64-linux-gnu/libc.so.6",
		"/lib/x86_64-linux-gnu/libm.so.6",
		"/usr/share/doc/libc6/copyright",
	}, set.Paths())
}

func TestDpkgLookup_PlainListName(t *testing.T) {
	lookup := NewDpkgLookup(filesystem.NewAferoFS(newDpkgFS(t)), "/var/lib/dpkg/info")

	set, err := lookup.PackageLibraries("zlib1g")
	require.NoError(t, err)
	assert.True(t, set.Contains("/usr/lib/libz.so.1"))
	assert.Equal(t, 1, set.Len())
}

func TestDpkgLookup_NotInstalled(t *testing.T) {
	lookup := NewDpkgLookup(filesystem.NewAferoFS(newDpkgFS(t)), "/var/lib/dpkg/info")

	_, err := lookup.PackageLibraries("musl")
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrLibraryLookup))
	assert.True(t, stderrors.Is(err, fs.ErrNotExist))
}

func TestDpkgLookup_MissingDatabase(t *testing.T) {
	lookup := NewDpkgLookup(filesystem.NewAferoFS(afero.NewMemMapFs()), "")

	_, err := lookup.PackageLibraries(DefaultPackage)
	require.Error(t, err)
	assert.True(t, stderrors.Is(err, fs.ErrNotExist))
	assert.Contains(t, err.Error(), DefaultDpkgInfoDir)
}
