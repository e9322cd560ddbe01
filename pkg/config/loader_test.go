// pkg/config/loader_test.go
// TEST TYPE: Unit Tests
// DEPENDENCIES: Temporary XDG directories
// PURPOSE: Test configuration layering (defaults, user file, environment)

package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/adrg/xdg"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arthur-debert/envctl/pkg/config"
	"github.com/arthur-debert/envctl/pkg/errors"
)

// isolate points the XDG config lookup at a fresh directory and returns
// the envctl config directory inside it.
func isolate(t *testing.T) string {
	t.Helper()
	home := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", home)
	t.Setenv("XDG_CONFIG_DIRS", filepath.Join(home, "system"))
	t.Setenv("ENVCTL_VARIABLE", "")
	xdg.Reload()
	t.Cleanup(xdg.Reload)

	dir := filepath.Join(home, "envctl")
	require.NoError(t, os.MkdirAll(dir, 0755))
	return dir
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
}

func TestLoad_Defaults(t *testing.T) {
	isolate(t)

	cfg, err := config.Load(config.Options{})
	require.NoError(t, err)

	assert.Equal(t, "PATH", cfg.Variable)
	assert.Empty(t, cfg.Variables)
	assert.Empty(t, cfg.Source)
}

func TestLoad_TOMLUserFile(t *testing.T) {
	dir := isolate(t)
	path := filepath.Join(dir, "config.toml")
	writeFile(t, path, `
variable = "MANPATH"

[variables.PATH]
prepend = ["/opt/tools/bin"]
remove = ["."]

[variables.MANPATH]
append = "/usr/share/man:/usr/local/share/man"
`)

	cfg, err := config.Load(config.Options{})
	require.NoError(t, err)

	assert.Equal(t, path, cfg.Source)
	assert.Equal(t, "MANPATH", cfg.Variable)
	assert.Equal(t, []string{"/opt/tools/bin"}, cfg.RulesFor("PATH").Prepend)
	assert.Equal(t, []string{"."}, cfg.RulesFor("PATH").Remove)
	assert.Equal(t, []string{"/usr/share/man", "/usr/local/share/man"}, cfg.RulesFor("MANPATH").Append)
}

func TestLoad_YAMLUserFile(t *testing.T) {
	dir := isolate(t)
	writeFile(t, filepath.Join(dir, "config.yaml"), `
variables:
  PATH:
    append:
      - /usr/games
`)

	cfg, err := config.Load(config.Options{})
	require.NoError(t, err)

	assert.Equal(t, "PATH", cfg.Variable)
	assert.Equal(t, []string{"/usr/games"}, cfg.RulesFor("PATH").Append)
}

func TestLoad_ExplicitFile(t *testing.T) {
	dir := isolate(t)
	writeFile(t, filepath.Join(dir, "config.toml"), `variable = "IGNORED"`)
	explicit := filepath.Join(t.TempDir(), "custom.toml")
	writeFile(t, explicit, `variable = "PYTHONPATH"`)

	cfg, err := config.Load(config.Options{File: explicit})
	require.NoError(t, err)
	assert.Equal(t, "PYTHONPATH", cfg.Variable)
	assert.Equal(t, explicit, cfg.Source)
}

func TestLoad_SkipUserFile(t *testing.T) {
	dir := isolate(t)
	writeFile(t, filepath.Join(dir, "config.toml"), `variable = "IGNORED"`)

	cfg, err := config.Load(config.Options{SkipUserFile: true})
	require.NoError(t, err)
	assert.Equal(t, "PATH", cfg.Variable)
}

func TestLoad_EnvironmentOverride(t *testing.T) {
	dir := isolate(t)
	writeFile(t, filepath.Join(dir, "config.toml"), `variable = "MANPATH"`)
	t.Setenv("ENVCTL_VARIABLE", "INFOPATH")

	cfg, err := config.Load(config.Options{})
	require.NoError(t, err)
	assert.Equal(t, "INFOPATH", cfg.Variable)
}

func TestLoad_EnvironmentIgnoresOtherKeys(t *testing.T) {
	dir := isolate(t)
	writeFile(t, filepath.Join(dir, "config.toml"), `
variable = "MANPATH"

[variables.PATH]
prepend = ["/file/bin"]
`)
	t.Setenv("ENVCTL_VARIABLES", "oops")
	t.Setenv("ENVCTL_VARIABLES_PATH_PREPEND", "/env/bin")

	cfg, err := config.Load(config.Options{})
	require.NoError(t, err)

	assert.Equal(t, "MANPATH", cfg.Variable, "an empty ENVCTL_VARIABLE must not clear the file value")
	assert.Equal(t, []string{"/file/bin"}, cfg.RulesFor("PATH").Prepend)
	assert.NotContains(t, cfg.Variables, "path")

	cfg, err = config.Load(config.Options{SkipUserFile: true})
	require.NoError(t, err)
	assert.Equal(t, "PATH", cfg.Variable)
	assert.Empty(t, cfg.Variables)
}

func TestLoad_Errors(t *testing.T) {
	tests := []struct {
		name     string
		file     string
		content  string
		wantCode errors.ErrorCode
	}{
		{"missing explicit file", "missing.toml", "", errors.ErrConfigLoad},
		{"unsupported format", "config.ini", "variable=PATH", errors.ErrConfigLoad},
		{"malformed toml", "bad.toml", "variable = [", errors.ErrConfigLoad},
		{"invalid variable name", "bad-name.toml", `variable = "A=B"`, errors.ErrConfigParse},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			isolate(t)
			path := filepath.Join(t.TempDir(), tt.file)
			if tt.content != "" {
				writeFile(t, path, tt.content)
			}

			_, err := config.Load(config.Options{File: path})
			require.Error(t, err)
			assert.Equal(t, tt.wantCode, errors.GetErrorCode(err))
		})
	}
}
