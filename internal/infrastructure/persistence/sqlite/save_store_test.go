package sqlite

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openTestStore(t *testing.T) (*SaveStore, string) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "saves.db")
	store, err := Open(context.Background(), path)
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close() })
	return store, path
}

func TestSaveStore_ReadWriteRemove(t *testing.T) {
	ctx := context.Background()
	store, _ := openTestStore(t)
	store.now = func() time.Time { return time.UnixMilli(1700000000000) }

	_, found, err := store.Read(ctx, "slot")
	require.NoError(t, err)
	assert.False(t, found)

	require.NoError(t, store.Write(ctx, "slot", []byte("first")))
	require.NoError(t, store.Write(ctx, "slot", []byte("second")))

	data, found, err := store.Read(ctx, "slot")
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, "second", string(data))

	at, found, err := store.UpdatedAt(ctx, "slot")
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, int64(1700000000000), at.UnixMilli())

	require.NoError(t, store.Remove(ctx, "slot"))
	require.NoError(t, store.Remove(ctx, "slot"))
	_, found, err = store.Read(ctx, "slot")
	require.NoError(t, err)
	assert.False(t, found)
}

func TestOpen_ReappliesMigrationsIdempotently(t *testing.T) {
	ctx := context.Background()
	store, path := openTestStore(t)
	require.NoError(t, store.Write(ctx, "slot", []byte("kept")))
	require.NoError(t, store.Close())

	reopened, err := Open(ctx, path)
	require.NoError(t, err)
	defer func() { _ = reopened.Close() }()

	data, found, err := reopened.Read(ctx, "slot")
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, "kept", string(data))
}

func TestOpen_RequiresPath(t *testing.T) {
	_, err := Open(context.Background(), "")
	assert.Error(t, err)
}

func TestExtractUp(t *testing.T) {
	content := "-- +migrate Up\nCREATE TABLE a (x INT);\n-- +migrate Down\nDROP TABLE a;\n"
	assert.Equal(t, "\nCREATE TABLE a (x INT);\n", extractUp(content))
	assert.Equal(t, "SELECT 1;", extractUp("SELECT 1;"))
}
