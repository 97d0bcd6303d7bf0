package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/arthur-debert/treedump/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// isolate points every file source at empty temp directories
func isolate(t *testing.T) (configHome, workDir string) {
	t.Helper()
	configHome = t.TempDir()
	workDir = t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", configHome)
	return configHome, workDir
}

func writeFile(t *testing.T, path, content string) string {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestLoad_Defaults(t *testing.T) {
	_, workDir := isolate(t)

	cfg, err := Load(LoadOptions{WorkDir: workDir})
	require.NoError(t, err)

	assert.Equal(t, "libc6", cfg.Libraries.Package)
	assert.Equal(t, "/var/lib/dpkg/info", cfg.Libraries.DpkgInfoDir)
	assert.Empty(t, cfg.Libraries.Extra)
	assert.Equal(t, "segment", cfg.Containment.Mode)
	assert.Empty(t, cfg.Copy.Exclude)
	assert.True(t, cfg.Copy.PreserveTimes)
}

func TestLoad_Layering(t *testing.T) {
	configHome, workDir := isolate(t)

	writeFile(t, filepath.Join(configHome, "treedump", "config.toml"), `
[libraries]
package = "libc6-user"
extra = ["/opt/user/lib.so"]

[copy]
preserve_times = false
`)
	writeFile(t, filepath.Join(workDir, ".treedump.toml"), `
[libraries]
package = "libc6-project"

[containment]
mode = "prefix"
`)

	cfg, err := Load(LoadOptions{WorkDir: workDir})
	require.NoError(t, err)
	assert.Equal(t, "libc6-project", cfg.Libraries.Package, "project file wins over user file")
	assert.Equal(t, []string{"/opt/user/lib.so"}, cfg.Libraries.Extra, "user values survive")
	assert.Equal(t, "prefix", cfg.Containment.Mode)
	assert.False(t, cfg.Copy.PreserveTimes)

	explicit := writeFile(t, filepath.Join(t.TempDir(), "custom.toml"), `
[libraries]
package = "libc6-explicit"
`)
	cfg, err = Load(LoadOptions{WorkDir: workDir, ExplicitPath: explicit})
	require.NoError(t, err)
	assert.Equal(t, "libc6-explicit", cfg.Libraries.Package)

	t.Setenv("TREEDUMP_LIBRARIES_PACKAGE", "libc6-env")
	t.Setenv("TREEDUMP_COPY_EXCLUDE", "**/*.a,share/doc")
	cfg, err = Load(LoadOptions{WorkDir: workDir, ExplicitPath: explicit})
	require.NoError(t, err)
	assert.Equal(t, "libc6-env", cfg.Libraries.Package)
	assert.Equal(t, []string{"**/*.a", "share/doc"}, cfg.Copy.Exclude)

	cfg, err = Load(LoadOptions{
		WorkDir:      workDir,
		ExplicitPath: explicit,
		Overrides: map[string]interface{}{
			"libraries.package": "libc6-flag",
			"containment.mode":  "segment",
		},
	})
	require.NoError(t, err)
	assert.Equal(t, "libc6-flag", cfg.Libraries.Package)
	assert.Equal(t, "segment", cfg.Containment.Mode)
}

func TestLoad_ProjectFileNames(t *testing.T) {
	_, workDir := isolate(t)
	writeFile(t, filepath.Join(workDir, "treedump.toml"), `
[libraries]
package = "plain-name"
`)

	cfg, err := Load(LoadOptions{WorkDir: workDir})
	require.NoError(t, err)
	assert.Equal(t, "plain-name", cfg.Libraries.Package)

	writeFile(t, filepath.Join(workDir, ".treedump.toml"), `
[libraries]
package = "dot-name"
`)
	cfg, err = Load(LoadOptions{WorkDir: workDir})
	require.NoError(t, err)
	assert.Equal(t, "dot-name", cfg.Libraries.Package, "the dotted file is preferred")
}

func TestLoad_EnvironmentBool(t *testing.T) {
	_, workDir := isolate(t)
	t.Setenv("TREEDUMP_COPY_PRESERVE_TIMES", "false")
	t.Setenv("TREEDUMP_LIBRARIES_DPKG_INFO_DIR", "/srv/dpkg/info")

	cfg, err := Load(LoadOptions{WorkDir: workDir})
	require.NoError(t, err)
	assert.False(t, cfg.Copy.PreserveTimes)
	assert.Equal(t, "/srv/dpkg/info", cfg.Libraries.DpkgInfoDir)
}

func TestLoad_Errors(t *testing.T) {
	tests := []struct {
		name     string
		content  string
		explicit string
		code     errors.ErrorCode
	}{
		{
			name:     "missing explicit file",
			explicit: "/nonexistent/treedump.toml",
			code:     errors.ErrConfigLoad,
		},
		{
			name:    "malformed toml",
			content: "[libraries\npackage = ",
			code:    errors.ErrConfigParse,
		},
		{
			name:    "unknown containment mode",
			content: "[containment]\nmode = \"loose\"\n",
			code:    errors.ErrConfigValid,
		},
		{
			name:    "relative extra library",
			content: "[libraries]\nextra = [\"lib/libc.so.6\"]\n",
			code:    errors.ErrConfigValid,
		},
		{
			name:    "broken exclude pattern",
			content: "[copy]\nexclude = [\"[oops\"]\n",
			code:    errors.ErrConfigValid,
		},
		{
			name:    "empty package",
			content: "[libraries]\npackage = \"\"\n",
			code:    errors.ErrConfigValid,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, workDir := isolate(t)
			explicit := tt.explicit
			if explicit == "" {
				explicit = writeFile(t, filepath.Join(t.TempDir(), "bad.toml"), tt.content)
			}

			_, err := Load(LoadOptions{WorkDir: workDir, ExplicitPath: explicit})
			require.Error(t, err)
			assert.Equal(t, tt.code, errors.GetErrorCode(err))
		})
	}
}

func TestReplicatorOptions(t *testing.T) {
	_, workDir := isolate(t)
	cfg, err := Load(LoadOptions{
		WorkDir: workDir,
		Overrides: map[string]interface{}{
			"containment.mode": "prefix",
			"copy.exclude":     []string{"*.la"},
			"libraries.extra":  []string{"/opt/rt/ld.so"},
		},
	})
	require.NoError(t, err)

	opts, err := cfg.ReplicatorOptions(nil)
	require.NoError(t, err)
	assert.Equal(t, "prefix", string(opts.Containment))
	assert.Equal(t, []string{"*.la"}, opts.Exclude)
	assert.Equal(t, "libc6", opts.Package)
	assert.True(t, opts.PreserveTimes)
	require.NotNil(t, opts.Lookup)
}

func TestDefaultContent(t *testing.T) {
	assert.Contains(t, DefaultContent(), `package = "libc6"`)
}
