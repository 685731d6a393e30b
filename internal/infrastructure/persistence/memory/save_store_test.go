package memory

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSaveStore_ReadWriteRemove(t *testing.T) {
	ctx := context.Background()
	store := NewSaveStore()

	_, found, err := store.Read(ctx, "slot")
	require.NoError(t, err)
	assert.False(t, found)

	payload := []byte(`{"version":2}`)
	require.NoError(t, store.Write(ctx, "slot", payload))
	payload[0] = 'X'

	data, found, err := store.Read(ctx, "slot")
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, `{"version":2}`, string(data))
	assert.Equal(t, []string{"slot"}, store.Keys())

	require.NoError(t, store.Remove(ctx, "slot"))
	require.NoError(t, store.Remove(ctx, "slot"))
	_, found, err = store.Read(ctx, "slot")
	require.NoError(t, err)
	assert.False(t, found)
}

func TestSaveStore_CancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	store := NewSaveStore()
	assert.ErrorIs(t, store.Write(ctx, "slot", nil), context.Canceled)
	_, _, err := store.Read(ctx, "slot")
	assert.ErrorIs(t, err, context.Canceled)
}
