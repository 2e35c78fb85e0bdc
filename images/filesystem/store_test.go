package filesystem

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSaveWritesFile(t *testing.T) {
	dir := t.TempDir()
	store := NewStore(dir)

	err := store.Save(context.Background(), "image_1700000000000.png", strings.NewReader("png-bytes"))
	require.NoError(t, err)

	data, err := os.ReadFile(filepath.Join(dir, "image_1700000000000.png"))
	require.NoError(t, err)
	require.Equal(t, "png-bytes", string(data))
}

func TestSaveFlattensPath(t *testing.T) {
	dir := t.TempDir()
	store := NewStore(dir)

	err := store.Save(context.Background(), "../escape.png", strings.NewReader("x"))
	require.NoError(t, err)

	// The file lands inside the base directory, not its parent.
	_, err = os.Stat(filepath.Join(dir, "escape.png"))
	require.NoError(t, err)
}

func TestRemove(t *testing.T) {
	dir := t.TempDir()
	store := NewStore(dir)

	require.NoError(t, store.Save(context.Background(), "a.png", strings.NewReader("x")))
	require.NoError(t, store.Remove(context.Background(), "a.png"))

	_, err := os.Stat(filepath.Join(dir, "a.png"))
	require.True(t, os.IsNotExist(err))
}

func TestRemoveMissingFileSucceeds(t *testing.T) {
	store := NewStore(t.TempDir())
	require.NoError(t, store.Remove(context.Background(), "never-saved.png"))
}

func TestNewStoreCreatesDirectory(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "images")
	NewStore(dir)

	info, err := os.Stat(dir)
	require.NoError(t, err)
	require.True(t, info.IsDir())
}
