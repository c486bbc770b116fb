package service

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"crypto_compass_backend/internal/config"
	"crypto_compass_backend/internal/util"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLocalStorage(t *testing.T) {
	dir := t.TempDir()
	svc := NewStorageService(&config.Config{Storage: config.StorageConfig{
		Type:      util.StorageLocal,
		LocalPath: dir,
	}})
	ctx := context.Background()

	url, err := svc.UploadBytes(ctx, "nft/a/b.svg", []byte("<svg/>"), util.MimeSVG)
	require.NoError(t, err)
	assert.Equal(t, "/uploads/nft/a/b.svg", url)

	data, err := os.ReadFile(filepath.Join(dir, "nft", "a", "b.svg"))
	require.NoError(t, err)
	assert.Equal(t, "<svg/>", string(data))

	require.NoError(t, svc.Delete(ctx, "nft/a/b.svg"))
	_, err = os.Stat(filepath.Join(dir, "nft", "a", "b.svg"))
	assert.True(t, os.IsNotExist(err))

	_, err = svc.UploadBytes(ctx, "../escape.svg", []byte("x"), util.MimeSVG)
	assert.Error(t, err)
}

func TestSessionService_Create(t *testing.T) {
	cfg := &config.SessionConfig{Secret: "0123456789abcdef0123456789abcdef", ExpireTime: time.Hour}
	tok, err := NewSessionService(cfg).Create()
	require.NoError(t, err)
	assert.Len(t, tok.SessionID, 36)

	claims, err := util.ParseSessionToken(tok.Token, cfg.Secret)
	require.NoError(t, err)
	assert.Equal(t, tok.SessionID, claims.SessionID)
}
