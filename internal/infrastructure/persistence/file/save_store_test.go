package file

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSaveStore_ReadWriteRemove(t *testing.T) {
	ctx := context.Background()
	dir := filepath.Join(t.TempDir(), "nested", "saves")
	store, err := NewSaveStore(dir)
	require.NoError(t, err)

	_, found, err := store.Read(ctx, "slot")
	require.NoError(t, err)
	assert.False(t, found)

	require.NoError(t, store.Write(ctx, "slot", []byte("first")))
	require.NoError(t, store.Write(ctx, "slot", []byte("second")))

	data, found, err := store.Read(ctx, "slot")
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, "second", string(data))

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "slot.json", entries[0].Name())

	require.NoError(t, store.Remove(ctx, "slot"))
	require.NoError(t, store.Remove(ctx, "slot"))
	_, found, err = store.Read(ctx, "slot")
	require.NoError(t, err)
	assert.False(t, found)
}

func TestSaveStore_InvalidKeys(t *testing.T) {
	store, err := NewSaveStore(t.TempDir())
	require.NoError(t, err)

	for _, key := range []string{"", "..", "a/b", `a\b`} {
		assert.Error(t, store.Write(context.Background(), key, []byte("x")), key)
	}
}

func TestNewSaveStore_RequiresPath(t *testing.T) {
	_, err := NewSaveStore("  ")
	assert.Error(t, err)
}
