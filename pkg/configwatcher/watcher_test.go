package configwatcher

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"crypto_compass_backend/internal/config"

	"github.com/stretchr/testify/require"
)

func TestWatchConfigReloads(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "config.yaml")
	require.NoError(t, os.WriteFile(file, []byte("storage:\n  type: memory\nnft:\n  enabled: false\n"), 0o644))

	ctx, cancel := context.WithCancel(context.Background())
	reloaded := make(chan *config.Config, 1)
	done := make(chan error, 1)
	go func() {
		done <- WatchConfig(ctx, file, func(cfg *config.Config) {
			select {
			case reloaded <- cfg:
			default:
			}
		})
	}()

	// give the watcher time to register before writing
	time.Sleep(200 * time.Millisecond)
	require.NoError(t, os.WriteFile(file, []byte("storage:\n  type: memory\nnft:\n  enabled: true\n"), 0o644))

	select {
	case cfg := <-reloaded:
		require.True(t, cfg.NFT.Enabled)
	case <-time.After(5 * time.Second):
		t.Fatal("config was not reloaded")
	}

	cancel()
	require.NoError(t, <-done)
}
