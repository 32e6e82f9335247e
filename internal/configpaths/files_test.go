package configpaths

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFindUserConfig(t *testing.T) {
	t.Setenv(EnvConfig, "/env/spnavcfg.toml")

	assert.Equal(t, "a.yaml", FindUserConfig([]string{"snapshot", "--config", "a.yaml"}))
	assert.Equal(t, "b.json", FindUserConfig([]string{"--config=b.json", "trace"}))
	assert.Equal(t, "/env/spnavcfg.toml", FindUserConfig([]string{"run"}))
	// dangling flag falls back to the environment
	assert.Equal(t, "/env/spnavcfg.toml", FindUserConfig([]string{"--config"}))
}

func TestCandidatePathsRouteUserFileByExtension(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	js, ys, ts := ConfigCandidatePaths("/x/panel.yml")
	require.NotEmpty(t, ys)
	assert.Equal(t, "/x/panel.yml", ys[0])
	assert.NotContains(t, js, "/x/panel.yml")
	assert.NotContains(t, ts, "/x/panel.yml")

	js, _, ts = ConfigCandidatePaths("/x/panel.toml")
	assert.Equal(t, "/x/panel.toml", ts[0])
	assert.NotContains(t, js, "/x/panel.toml")

	js, _, _ = ConfigCandidatePaths("/x/panel")
	assert.Equal(t, "/x/panel", js[0])
}

func TestCandidatePathsIncludeConfigDir(t *testing.T) {
	xdg := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", xdg)

	js, ys, ts := ConfigCandidatePaths("")
	dir := filepath.Join(xdg, "spnavcfg")
	assert.Contains(t, js, filepath.Join(dir, "config.json"))
	assert.Contains(t, ys, filepath.Join(dir, "config.yaml"))
	assert.Contains(t, ys, filepath.Join(dir, "config.yml"))
	assert.Contains(t, ts, filepath.Join(dir, "config.toml"))
}

func TestDefaultConfigPath(t *testing.T) {
	xdg := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", xdg)

	p, err := DefaultConfigPath("yml")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(xdg, "spnavcfg", "config.yaml"), p)

	require.NoError(t, EnsureDir(p))
	assert.DirExists(t, filepath.Dir(p))
}
