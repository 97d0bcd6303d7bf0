//go:build unix

package fileutil

import (
	"testing"

	"github.com/arthur-debert/treedump/pkg/errors"
	"github.com/arthur-debert/treedump/pkg/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/sys/unix"
)

func TestLinkOrCopy_SpecialFile(t *testing.T) {
	src := testutil.NewTree(t).Symlink("link", "fifo")
	require.NoError(t, unix.Mkfifo(src.Path("fifo"), 0644))
	dst := testutil.NewTree(t)

	c := newCopier(t, Options{})
	for _, follow := range []bool{false, true} {
		err := c.LinkOrCopy(src.Path("fifo"), dst.Path("fifo"), follow)
		require.Error(t, err)
		assert.True(t, errors.IsErrorCode(err, errors.ErrInvalidInput))
		assert.False(t, IsSourceNotFound(err))
	}

	err := c.LinkOrCopy(src.Path("link"), dst.Path("link"), true)
	require.Error(t, err)
	assert.Equal(t, src.Path("link"), errors.GetErrorDetails(err)["path"])
	testutil.AssertNotExists(t, dst.Path("fifo"))
	testutil.AssertNotExists(t, dst.Path("link"))

	// a preserved link to a pipe is only a link
	require.NoError(t, c.LinkOrCopy(src.Path("link"), dst.Path("link"), false))
	testutil.AssertSymlink(t, dst.Path("link"), "fifo")
}
