package config

import (
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerate(t *testing.T) {
	_, workDir := isolate(t)
	cfg, err := Load(LoadOptions{WorkDir: workDir})
	require.NoError(t, err)
	cfg.Copy.Exclude = []string{"**/*.a"}

	data, err := Generate(cfg)
	require.NoError(t, err)
	out := string(data)

	assert.True(t, strings.HasPrefix(out, "# treedump configuration"))
	assert.Contains(t, out, "[libraries]")
	assert.Regexp(t, `package = ["']libc6["']`, out)
	assert.Contains(t, out, "[containment]")
	assert.Contains(t, out, "preserve_times = true")

	// the output loads back to the same configuration
	path := writeFile(t, filepath.Join(t.TempDir(), "generated.toml"), out)
	reloaded, err := Load(LoadOptions{WorkDir: workDir, ExplicitPath: path})
	require.NoError(t, err)
	assert.Equal(t, cfg.Libraries.Package, reloaded.Libraries.Package)
	assert.Equal(t, cfg.Libraries.DpkgInfoDir, reloaded.Libraries.DpkgInfoDir)
	assert.Equal(t, cfg.Containment, reloaded.Containment)
	assert.Equal(t, []string{"**/*.a"}, reloaded.Copy.Exclude)
	assert.Equal(t, cfg.Copy.PreserveTimes, reloaded.Copy.PreserveTimes)
}
