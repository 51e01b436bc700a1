package config

import (
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, k := range []string{EnvConfigDir, EnvDataDir, "HOMELISTS_BACKEND", "HOMELISTS_THEME"} {
		t.Setenv(k, "")
		os.Unsetenv(k)
	}
}

func TestLoad_WritesDefaultConfig(t *testing.T) {
	clearEnv(t)
	dir := filepath.Join(t.TempDir(), "cfg")

	cfg, err := Load(dir, filepath.Join(dir, "data"))
	require.NoError(t, err)
	assert.Equal(t, BackendJSON, cfg.Backend)
	assert.Equal(t, DefaultTheme, cfg.Theme)
	assert.Equal(t, filepath.Join(dir, "data"), cfg.DataDir)

	b, err := os.ReadFile(filepath.Join(dir, "config.yaml"))
	require.NoError(t, err)
	assert.Contains(t, string(b), "backend: json")
}

func TestLoad_ReadsFile(t *testing.T) {
	clearEnv(t)
	dir := t.TempDir()
	data := filepath.Join(dir, "elsewhere")
	yaml := "backend: sqlite\ntheme: neon\ndata_dir: " + data + "\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), []byte(yaml), 0o644))

	cfg, err := Load(dir, "")
	require.NoError(t, err)
	assert.Equal(t, BackendSQLite, cfg.Backend)
	assert.Equal(t, "neon", cfg.Theme)
	assert.Equal(t, data, cfg.DataDir)
}

func TestLoad_EnvOverridesFile(t *testing.T) {
	clearEnv(t)
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), []byte("backend: sqlite\n"), 0o644))
	t.Setenv("HOMELISTS_BACKEND", "memory")
	t.Setenv("HOMELISTS_THEME", "mono")

	cfg, err := Load(dir, t.TempDir())
	require.NoError(t, err)
	assert.Equal(t, BackendMemory, cfg.Backend)
	assert.Equal(t, "mono", cfg.Theme)
}

func TestLoad_UnknownBackend(t *testing.T) {
	clearEnv(t)
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), []byte("backend: redis\n"), 0o644))

	_, err := Load(dir, "")
	assert.ErrorIs(t, err, ErrUnknownBackend)
}

func TestResolveConfigDir(t *testing.T) {
	clearEnv(t)
	flagDir := t.TempDir()
	got, err := ResolveConfigDir(flagDir)
	require.NoError(t, err)
	assert.Equal(t, flagDir, got)

	envDir := t.TempDir()
	t.Setenv(EnvConfigDir, envDir)
	got, err = ResolveConfigDir("")
	require.NoError(t, err)
	assert.Equal(t, envDir, got)
}

func TestResolveDataDir_Precedence(t *testing.T) {
	clearEnv(t)
	flagDir, cfgDir, envDir := t.TempDir(), t.TempDir(), t.TempDir()
	t.Setenv(EnvDataDir, envDir)

	got, err := ResolveDataDir(flagDir, cfgDir)
	require.NoError(t, err)
	assert.Equal(t, flagDir, got)

	got, err = ResolveDataDir("", cfgDir)
	require.NoError(t, err)
	assert.Equal(t, cfgDir, got)

	got, err = ResolveDataDir("", "")
	require.NoError(t, err)
	assert.Equal(t, envDir, got)
}

func TestDefaultDirs_Linux(t *testing.T) {
	if runtime.GOOS != "linux" {
		t.Skip("XDG layout is linux only")
	}
	t.Setenv("XDG_CONFIG_HOME", "/xdg/config")
	t.Setenv("XDG_DATA_HOME", "/xdg/data")

	c, err := DefaultConfigDir()
	require.NoError(t, err)
	assert.Equal(t, "/xdg/config/homelists", c)

	d, err := DefaultDataDir()
	require.NoError(t, err)
	assert.Equal(t, "/xdg/data/homelists", d)

	t.Setenv("XDG_DATA_HOME", "")
	orig := platformDir.homeDir
	platformDir.homeDir = func() (string, error) { return "/home/tester", nil }
	t.Cleanup(func() { platformDir.homeDir = orig })

	d, err = DefaultDataDir()
	require.NoError(t, err)
	assert.Equal(t, "/home/tester/.local/share/homelists", d)
}
