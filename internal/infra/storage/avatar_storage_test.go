package storage

import (
	"context"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"orda/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/fx/fxtest"
)

func newTestStorage(t *testing.T) (*avatarStorage, string) {
	t.Helper()

	dir := t.TempDir()

	cfg := &config.Config{}
	cfg.Storage = &config.StorageConfig{
		Provider:      ProviderFile,
		Bucket:        dir,
		PublicBaseURL: "https://cdn.example.com/avatars",
	}

	lc := fxtest.NewLifecycle(t)
	store, err := NewAvatarStorage(Params{
		Lc:     lc,
		Ctx:    context.Background(),
		Config: cfg,
		Logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	})
	require.NoError(t, err)
	lc.RequireStart()
	t.Cleanup(lc.RequireStop)

	return store.(*avatarStorage), dir
}

func TestAvatarStorage_UploadAndRemove(t *testing.T) {
	store, dir := newTestStorage(t)
	ctx := context.Background()

	url, err := store.Upload(ctx, "user123_1700000000.png", []byte("png-bytes"), "image/png")
	require.NoError(t, err)
	assert.Equal(t, "https://cdn.example.com/avatars/user123_1700000000.png", url)

	data, err := os.ReadFile(filepath.Join(dir, "user123_1700000000.png"))
	require.NoError(t, err)
	assert.Equal(t, []byte("png-bytes"), data)

	require.NoError(t, store.Remove(ctx, url))
	_, err = os.Stat(filepath.Join(dir, "user123_1700000000.png"))
	assert.True(t, os.IsNotExist(err))
}

func TestAvatarStorage_RemoveMissingObject(t *testing.T) {
	store, _ := newTestStorage(t)

	// Deleting something that was never uploaded is not an error.
	err := store.Remove(context.Background(), "https://cdn.example.com/avatars/ghost.png")
	assert.NoError(t, err)
}

func TestAvatarStorage_RemoveForeignURL(t *testing.T) {
	store, _ := newTestStorage(t)

	err := store.Remove(context.Background(), "https://other.example.com/elsewhere.png")
	assert.NoError(t, err)
}

func TestNewAvatarStorage_MissingBucket(t *testing.T) {
	lc := fxtest.NewLifecycle(t)
	_, err := NewAvatarStorage(Params{
		Lc:     lc,
		Ctx:    context.Background(),
		Config: &config.Config{},
		Logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	})
	assert.Error(t, err)
}
