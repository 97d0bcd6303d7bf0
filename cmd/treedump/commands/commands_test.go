package commands

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/arthur-debert/treedump/pkg/errors"
	"github.com/arthur-debert/treedump/pkg/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// run executes the root command in an isolated environment and returns
// its standard output.
func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	t.Setenv("XDG_STATE_HOME", t.TempDir())
	t.Setenv("TREEDUMP_LIBRARIES_DPKG_INFO_DIR", filepath.Join(t.TempDir(), "no-dpkg"))
	t.Setenv("NO_COLOR", "1")

	var out bytes.Buffer
	root := NewRootCmd()
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs(args)
	err := root.Execute()
	return out.String(), err
}

func buildTree(t *testing.T) (*testutil.Tree, string, string) {
	t.Helper()
	ws := testutil.NewTree(t).
		File("outside/lib.so", "outside").
		File("part/lib/y.so", "y").
		Symlink("part/bin/x", "../lib/y.so").
		Symlink("part/a", "../outside/lib.so")
	return ws, ws.Path("part"), ws.Path("inst")
}

func TestDump(t *testing.T) {
	ws, src, dst := buildTree(t)

	out, err := run(t, "dump", src, dst)
	require.NoError(t, err)

	testutil.AssertSymlink(t, ws.Path("inst/bin/x"), "../lib/y.so")
	testutil.AssertRegularFile(t, ws.Path("inst/a"), "outside")
	assert.Contains(t, out, "Replicated into "+dst)
	assert.Contains(t, out, "1 links kept, 1 links followed")
}

func TestDump_DryRun(t *testing.T) {
	_, src, dst := buildTree(t)

	out, err := run(t, "dump", "--dry-run", src, dst)
	require.NoError(t, err)

	assert.Contains(t, out, "keep link")
	assert.Contains(t, out, "follow")
	testutil.AssertNotExists(t, dst)
}

func TestDump_Flags(t *testing.T) {
	ws, src, dst := buildTree(t)
	ws.File("part/lib/y.a", "archive").
		File("inst-2/z.so", "z").
		Symlink("part/z", "../inst-2/z.so")

	_, err := run(t, "dump", "--exclude", "**/*.a", "--containment", "prefix", src, dst)
	require.NoError(t, err)

	testutil.AssertNotExists(t, ws.Path("inst/lib/y.a"))
	testutil.AssertSymlink(t, ws.Path("inst/z"), "../inst-2/z.so")
}

func TestDump_InvalidSymlink(t *testing.T) {
	ws := testutil.NewTree(t).Symlink("part/a", "../missing/lib.so")

	_, err := run(t, "dump", ws.Path("part"), ws.Path("inst"))
	require.Error(t, err)
	path, ok := errors.InvalidSymlinkPath(err)
	require.True(t, ok)
	assert.Equal(t, ws.Path("part/a"), path)
}

func TestDump_InvalidContainment(t *testing.T) {
	_, src, dst := buildTree(t)

	_, err := run(t, "dump", "--containment", "loose", src, dst)
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrConfigValid))
}

func TestDump_ConfigFile(t *testing.T) {
	ws, src, dst := buildTree(t)
	ws.File("part/share/doc/README", "docs").
		File("custom.toml", "[copy]\nexclude = [\"share/doc\"]\n")

	_, err := run(t, "dump", "--config", ws.Path("custom.toml"), src, dst)
	require.NoError(t, err)
	testutil.AssertNotExists(t, ws.Path("inst/share/doc"))
}

func TestDump_RequiresTwoArguments(t *testing.T) {
	_, err := run(t, "dump", "only-one")
	assert.Error(t, err)
}

func TestPlan_JSON(t *testing.T) {
	_, src, dst := buildTree(t)

	out, err := run(t, "plan", "--format", "json", src, dst)
	require.NoError(t, err)

	var entries []map[string]string
	require.NoError(t, json.Unmarshal([]byte(out), &entries))

	decisions := map[string]string{}
	for _, e := range entries {
		if e["kind"] == "symlink" {
			decisions[e["link"]] = e["decision"]
		}
	}
	assert.Equal(t, map[string]string{
		"../lib/y.so":       "preserve",
		"../outside/lib.so": "follow",
	}, decisions)
	testutil.AssertNotExists(t, dst)
}

func TestPlan_UnknownFormat(t *testing.T) {
	_, src, dst := buildTree(t)

	_, err := run(t, "plan", "--format", "xml", src, dst)
	assert.True(t, errors.IsErrorCode(err, errors.ErrInvalidInput))
}

func TestGenConfig(t *testing.T) {
	out, err := run(t, "genconfig")
	require.NoError(t, err)
	assert.Contains(t, out, "[libraries]")
	assert.Contains(t, out, "libc6")

	out, err = run(t, "genconfig", "--defaults")
	require.NoError(t, err)
	assert.Contains(t, out, "# treedump defaults")
}

func TestGenConfig_Write(t *testing.T) {
	dir := t.TempDir()
	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(wd) })

	out, err := run(t, "genconfig", "-w")
	require.NoError(t, err)
	assert.Contains(t, out, "Wrote configuration to .treedump.toml")
	assert.FileExists(t, filepath.Join(dir, ".treedump.toml"))

	_, err = run(t, "genconfig", "-w")
	assert.True(t, errors.IsErrorCode(err, errors.ErrInvalidInput), "an existing file is not overwritten")
}

func TestVersion(t *testing.T) {
	out, err := run(t, "version")
	require.NoError(t, err)
	assert.Contains(t, out, "treedump version dev")
}

func TestHelpTopics(t *testing.T) {
	out, err := run(t, "help", "topics")
	require.NoError(t, err)
	assert.Contains(t, out, "symlinks")
	assert.Contains(t, out, "configuration")

	out, err = run(t, "help", "symlinks")
	require.NoError(t, err)
	assert.Contains(t, out, "containment")
}

func TestMan(t *testing.T) {
	out, err := run(t, "man")
	require.NoError(t, err)
	assert.Contains(t, out, "TREEDUMP")
}

func TestCompletion(t *testing.T) {
	out, err := run(t, "completion", "bash")
	require.NoError(t, err)
	assert.Contains(t, out, "treedump")
}
