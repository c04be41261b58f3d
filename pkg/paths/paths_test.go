package paths

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/adrg/xdg"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_RootPriority(t *testing.T) {
	envRoot := t.TempDir()
	explicit := t.TempDir()

	tests := []struct {
		name        string
		arg         string
		env         string
		want        string
		wantDefault bool
	}{
		{name: "explicit_wins", arg: explicit, env: envRoot, want: explicit},
		{name: "env_when_no_explicit", env: envRoot, want: envRoot},
		{name: "xdg_default", want: filepath.Join(xdg.DataHome, AppDirName), wantDefault: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv(EnvRoot, tt.env)

			p, err := New(tt.arg)
			require.NoError(t, err)
			assert.Equal(t, tt.want, p.StorageRoot())
			assert.Equal(t, tt.wantDefault, p.UsedDefaultRoot())
		})
	}
}

func TestNew_RelativeRootMadeAbsolute(t *testing.T) {
	t.Setenv(EnvRoot, "")
	p, err := New("relative/store")
	require.NoError(t, err)

	cwd, err := os.Getwd()
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(cwd, "relative", "store"), p.StorageRoot())
}

func TestXDGOverrides(t *testing.T) {
	configDir := t.TempDir()
	stateDir := t.TempDir()
	t.Setenv(EnvConfigDir, configDir)
	t.Setenv(EnvStateDir, stateDir)

	p, err := New(t.TempDir())
	require.NoError(t, err)

	assert.Equal(t, configDir, p.ConfigDir())
	assert.Equal(t, filepath.Join(configDir, ConfigFileName), p.ConfigFilePath())
	assert.Equal(t, stateDir, p.StateDir())
	assert.Equal(t, filepath.Join(stateDir, LogFileName), p.LogFilePath())
}

func TestXDGDefaults(t *testing.T) {
	t.Setenv(EnvConfigDir, "")
	t.Setenv(EnvStateDir, "")

	p, err := New(t.TempDir())
	require.NoError(t, err)

	assert.Equal(t, filepath.Join(xdg.ConfigHome, AppDirName), p.ConfigDir())
	assert.Equal(t, filepath.Join(xdg.StateHome, AppDirName), p.StateDir())
}

func TestExpandHome(t *testing.T) {
	home, err := os.UserHomeDir()
	require.NoError(t, err)

	assert.Equal(t, "", expandHome(""))
	assert.Equal(t, "/abs/path", expandHome("/abs/path"))
	assert.Equal(t, home, expandHome("~"))
	assert.Equal(t, filepath.Join(home, "diary"), expandHome("~/diary"))
	assert.Equal(t, "~other/diary", expandHome("~other/diary"))
}
