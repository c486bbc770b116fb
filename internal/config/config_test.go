package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), []byte(body), 0o644))
	return dir
}

func TestLoadConfigDefaults(t *testing.T) {
	viper.Reset()
	dir := writeConfig(t, "server:\n  mode: debug\nstorage:\n  type: memory\n")

	cfg, err := LoadConfig(dir)
	require.NoError(t, err)
	assert.Equal(t, "8080", cfg.Server.Port)
	assert.Equal(t, 72*time.Hour, cfg.Session.ExpireTime)
	assert.Equal(t, 15, cfg.Quiz.QuestionsPerDimension)
	assert.Equal(t, 24*time.Hour, cfg.Quiz.ProgressTTL())
	assert.Equal(t, int64(84532), cfg.NFT.ChainID)
	assert.False(t, cfg.NFT.Enabled)
}

func TestLoadConfigEnvOverride(t *testing.T) {
	viper.Reset()
	dir := writeConfig(t, "nft:\n  enabled: false\nstorage:\n  type: memory\n")
	t.Setenv("NFT_ENABLED", "true")
	t.Setenv("SESSION_SECRET", "from-env")

	cfg, err := LoadConfig(dir)
	require.NoError(t, err)
	assert.True(t, cfg.NFT.Enabled)
	assert.Equal(t, "from-env", cfg.Session.Secret)
}

func TestLoadConfigValidation(t *testing.T) {
	viper.Reset()
	dir := writeConfig(t, "server:\n  mode: release\nsession:\n  secret: short\nstorage:\n  type: memory\n")
	_, err := LoadConfig(dir)
	assert.ErrorContains(t, err, "session secret")

	viper.Reset()
	dir = writeConfig(t, "quiz:\n  questions_per_dimension: 0\nstorage:\n  type: memory\n")
	_, err = LoadConfig(dir)
	assert.ErrorContains(t, err, "questions_per_dimension")
}
