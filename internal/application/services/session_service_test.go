package services

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "github.com/elemcraft/elemcraft/internal/application/errors"
)

func TestSessionService_LoadEmptyStoreSavesSeed(t *testing.T) {
	store := newMemStore()
	h := newHarness(t, store)

	world := h.session.Load(context.Background())

	assert.True(t, world.Equals(seedWorld()))
	assert.NotEmpty(t, world.SessionID)
	assert.Equal(t, 1, store.writes)
	_, ok := store.data[testKey]
	assert.True(t, ok)
}

func TestSessionService_RoundTrip(t *testing.T) {
	ctx := context.Background()
	store := newMemStore()
	h := newHarness(t, store)

	world := h.session.Load(ctx)
	_, err := h.engine.Combine(world, "Water", "Fire")
	require.NoError(t, err)
	_, err = h.engine.Combine(world, "Steam", "Metal")
	require.NoError(t, err)
	require.NoError(t, h.session.Save(ctx, world))

	reloaded := newHarness(t, store).session.Load(ctx)
	assert.True(t, reloaded.Equals(world))
	assert.Equal(t, world.SessionID, reloaded.SessionID)
}

func TestSessionService_IncompatibleRecordFallsBackToSeed(t *testing.T) {
	tests := []struct {
		name    string
		payload string
	}{
		{"old version", `{"version":1,"discovered":["Water"],"recipes":{},"elements":{}}`},
		{"not json", `{{{`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := newMemStore()
			store.data[testKey] = []byte(tt.payload)
			h := newHarness(t, store)

			world := h.session.Load(context.Background())

			assert.True(t, world.Equals(seedWorld()))
			assert.Contains(t, string(store.data[testKey]), `"version":2`)
		})
	}
}

func TestSessionService_ReadFailureFallsBackToSeed(t *testing.T) {
	store := newMemStore()
	store.readErr = errors.New("storage unavailable")
	h := newHarness(t, store)

	world := h.session.Load(context.Background())
	assert.True(t, world.Equals(seedWorld()))
}

func TestSessionService_LoadReconciles(t *testing.T) {
	ctx := context.Background()
	store := newMemStore()
	h := newHarness(t, store)

	world := h.session.Load(ctx)
	world.Vocabulary.Delete("Fire")
	world.Discovered.Remove("Earth")
	world.Discovered.Add("Phantom")
	require.NoError(t, h.session.Save(ctx, world))

	loaded := newHarness(t, store).session.Load(ctx)
	assert.True(t, loaded.Vocabulary.Has("Fire"))
	assert.True(t, loaded.Discovered.Has("Earth"))
	assert.False(t, loaded.Discovered.Has("Phantom"))
	assert.NoError(t, loaded.Validate(testSeed().BaseElements))
}

func TestSessionService_SaveFailure(t *testing.T) {
	store := newMemStore()
	store.writeErr = errors.New("quota exceeded")
	h := newHarness(t, store)

	world := h.session.Load(context.Background())
	require.NotNil(t, world)

	err := h.session.Save(context.Background(), world)
	require.Error(t, err)
	assert.True(t, apperrors.IsPersistence(err))
}

func TestSessionService_Reset(t *testing.T) {
	ctx := context.Background()
	store := newMemStore()
	h := newHarness(t, store)

	world := h.session.Load(ctx)
	_, err := h.engine.Combine(world, "Water", "Fire")
	require.NoError(t, err)
	world.NextInstanceID()
	require.NoError(t, h.session.Save(ctx, world))

	fresh, err := h.session.Reset(ctx)
	require.NoError(t, err)
	assert.True(t, fresh.Equals(seedWorld()))
	assert.Zero(t, fresh.InstanceCounter)
	assert.NotEqual(t, world.SessionID, fresh.SessionID)

	loaded := newHarness(t, store).session.Load(ctx)
	assert.True(t, loaded.Equals(seedWorld()))
}

func TestSessionService_RevealSeedResults(t *testing.T) {
	seed := testSeed()
	s := NewSessionService(newMemStore(), jsonCodec{}, staticSeed{bundle: seed},
		SessionOptions{Key: testKey, RevealSeedResults: true}, discardLogger())

	world := s.Fresh()
	for _, name := range []string{"Steam", "Pressure", "Metal"} {
		assert.True(t, world.Discovered.Has(name), name)
	}
}
