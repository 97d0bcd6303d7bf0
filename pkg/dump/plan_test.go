package dump

import (
	"testing"

	"github.com/arthur-debert/treedump/pkg/errors"
	"github.com/arthur-debert/treedump/pkg/testutil"
	"github.com/arthur-debert/treedump/pkg/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPlan(t *testing.T) {
	ws := newWorkspace(t)
	ws.File("outside/ext/f", "f").
		File("part/lib/y.so", "y").
		Symlink("part/bin/x", "../lib/y.so").
		Symlink("part/a", "../outside/missing.so").
		Symlink("part/ext", "../outside/ext").
		Symlink("part/libc.so.6", libc)

	entries, err := newReplicator(t, Options{}).Plan(ws.src, ws.dst)
	require.NoError(t, err)

	want := []types.Entry{
		{Source: ws.Path("part/a"), Destination: ws.Path("inst/a"), Kind: types.KindSymlink,
			Link: "../outside/missing.so", Decision: types.Follow},
		{Source: ws.Path("part/bin"), Destination: ws.Path("inst/bin"), Kind: types.KindDirectory},
		{Source: ws.Path("part/bin/x"), Destination: ws.Path("inst/bin/x"), Kind: types.KindSymlink,
			Link: "../lib/y.so", Decision: types.Preserve},
		{Source: ws.Path("part/ext"), Destination: ws.Path("inst/ext"), Kind: types.KindSymlink,
			Link: "../outside/ext", Decision: types.Follow},
		{Source: ws.Path("part/lib"), Destination: ws.Path("inst/lib"), Kind: types.KindDirectory},
		{Source: ws.Path("part/lib/y.so"), Destination: ws.Path("inst/lib/y.so"), Kind: types.KindFile},
		{Source: ws.Path("part/libc.so.6"), Destination: ws.Path("inst/libc.so.6"), Kind: types.KindSymlink,
			Link: libc, Decision: types.Preserve},
	}
	assert.Equal(t, want, entries)
	testutil.AssertNotExists(t, ws.dst)
}

func TestPlan_Exclude(t *testing.T) {
	ws := newWorkspace(t)
	ws.File("part/keep", "k").File("part/drop.a", "d")

	entries, err := newReplicator(t, Options{Exclude: []string{"*.a"}}).Plan(ws.src, ws.dst)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, ws.Path("part/keep"), entries[0].Source)
}

func TestPlan_DestinationNotADirectory(t *testing.T) {
	ws := newWorkspace(t)
	ws.File("inst", "not a dir")

	_, err := newReplicator(t, Options{}).Plan(ws.src, ws.dst)
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrNotADirectory))
}
