package paths

import (
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolveConfigDirFlagWins(t *testing.T) {
	t.Setenv(EnvConfigDir, "/ignored")

	dir, err := ResolveConfigDir("flagged")
	require.NoError(t, err)
	assert.True(t, filepath.IsAbs(dir))
	assert.Equal(t, "flagged", filepath.Base(dir))
}

func TestResolveConfigDirEnv(t *testing.T) {
	want := t.TempDir()
	t.Setenv(EnvConfigDir, want)

	dir, err := ResolveConfigDir("")
	require.NoError(t, err)
	assert.Equal(t, want, dir)
}

func TestResolveConfigDirLocalDir(t *testing.T) {
	t.Setenv(EnvConfigDir, "")
	tmp := t.TempDir()
	require.NoError(t, os.Mkdir(filepath.Join(tmp, DefaultConfigDirName), 0o755))
	t.Chdir(tmp)

	dir, err := ResolveConfigDir("")
	require.NoError(t, err)
	assert.Equal(t, DefaultConfigDirName, filepath.Base(dir))
}

func TestDefaultConfigDirLinuxXDG(t *testing.T) {
	if runtime.GOOS != "linux" {
		t.Skip("linux-only")
	}
	t.Setenv("XDG_CONFIG_HOME", "/xdg")

	dir, err := DefaultConfigDir()
	require.NoError(t, err)
	assert.Equal(t, filepath.Join("/xdg", "stockroom"), dir)
}

func TestResolveDataDirPrecedence(t *testing.T) {
	t.Setenv(EnvDataDir, "/from-env")

	dir, err := ResolveDataDir("/from-flag", "/from-config")
	require.NoError(t, err)
	assert.Equal(t, "/from-flag", dir)

	dir, err = ResolveDataDir("", "/from-config")
	require.NoError(t, err)
	assert.Equal(t, "/from-config", dir)

	dir, err = ResolveDataDir("", "")
	require.NoError(t, err)
	assert.Equal(t, "/from-env", dir)
}

func TestResolveDataDirDefault(t *testing.T) {
	t.Setenv(EnvDataDir, "")
	tmp := t.TempDir()
	t.Chdir(tmp)

	dir, err := ResolveDataDir("", "")
	require.NoError(t, err)
	assert.Equal(t, DefaultDataDirName, filepath.Base(dir))
}
