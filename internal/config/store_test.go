package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"composectl/internal/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStoreDefaults(t *testing.T) {
	s := config.NewStore(nil)

	assert.Equal(t, "", s.String(config.KeyComposeFile, ""))
	assert.Equal(t, "docker-compose", s.String(config.KeyComposeCommand, "fallback"))
	assert.Empty(t, s.Strings(config.KeyComposeAdditionalFiles))
	assert.True(t, s.Bool(config.KeyComposeBuild, false))
	assert.True(t, s.Bool(config.KeyComposeDetached, false))

	// Unknown keys fall back to the caller's default
	assert.Equal(t, "x", s.String("docker.nope", "x"))
	assert.False(t, s.Bool("docker.nope", false))
	assert.Empty(t, s.Strings("docker.nope"))
}

func TestStoreUnsetBoolUsesDefault(t *testing.T) {
	cfg := &config.Config{}
	s := config.NewStore(cfg)
	assert.True(t, s.Bool(config.KeyComposeBuild, true))
	assert.False(t, s.Bool(config.KeyComposeDetached, false))
}

func TestStoreStringsReturnsCopy(t *testing.T) {
	cfg := config.New()
	cfg.Docker.ComposeAdditionalFiles = []string{"a.yml"}
	s := config.NewStore(cfg)

	got := s.Strings(config.KeyComposeAdditionalFiles)
	got[0] = "mutated.yml"
	assert.Equal(t, []string{"a.yml"}, s.Strings(config.KeyComposeAdditionalFiles))
}

func TestStoreReload(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("docker:\n  compose_detached: true\n"), 0644))

	s, err := config.OpenStore(path)
	require.NoError(t, err)
	assert.Equal(t, path, s.Path())
	assert.True(t, s.Bool(config.KeyComposeDetached, false))

	require.NoError(t, os.WriteFile(path, []byte("docker:\n  compose_detached: false\n  compose_file: app.yml\n"), 0644))
	require.NoError(t, s.Reload())
	assert.False(t, s.Bool(config.KeyComposeDetached, true))
	assert.Equal(t, "app.yml", s.String(config.KeyComposeFile, ""))

	// A broken file keeps the previous snapshot
	require.NoError(t, os.WriteFile(path, []byte("docker: ["), 0644))
	assert.Error(t, s.Reload())
	assert.Equal(t, "app.yml", s.String(config.KeyComposeFile, ""))
}

func TestInMemoryStoreReloadIsNoop(t *testing.T) {
	s := config.NewStore(config.New())
	assert.NoError(t, s.Reload())
	assert.Equal(t, "", s.Path())
}
