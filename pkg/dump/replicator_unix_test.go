//go:build unix

package dump

import (
	"testing"
	"time"

	"github.com/arthur-debert/treedump/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/sys/unix"
)

// replicateWithin fails the test instead of hanging when Replicate blocks
func replicateWithin(t *testing.T, r *Replicator, src, dst string) error {
	t.Helper()
	done := make(chan error, 1)
	go func() {
		_, err := r.Replicate(src, dst)
		done <- err
	}()
	select {
	case err := <-done:
		return err
	case <-time.After(5 * time.Second):
		t.Fatal("Replicate did not return")
		return nil
	}
}

func TestReplicate_RejectsNamedPipe(t *testing.T) {
	tests := []struct {
		name      string
		link      bool
		offending string
	}{
		{name: "pipe in the tree", offending: "part/pipe"},
		{name: "followed link to a pipe", link: true, offending: "part/pipe-link"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ws := newWorkspace(t)
			ws.Dir("part").Dir("outside")
			if tt.link {
				require.NoError(t, unix.Mkfifo(ws.Path("outside/pipe"), 0644))
				ws.Symlink("part/pipe-link", "../outside/pipe")
			} else {
				require.NoError(t, unix.Mkfifo(ws.Path("part/pipe"), 0644))
			}

			err := replicateWithin(t, newReplicator(t, Options{}), ws.src, ws.dst)
			require.Error(t, err)
			assert.True(t, errors.IsErrorCode(err, errors.ErrInvalidInput))
			assert.Equal(t, ws.Path(tt.offending), errors.GetErrorDetails(err)["path"])
		})
	}
}
