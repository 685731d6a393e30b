package services

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/elemcraft/elemcraft/internal/domain/entities"
	"github.com/elemcraft/elemcraft/internal/domain/services"
	"github.com/elemcraft/elemcraft/internal/domain/values"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

type fixedRand struct{ value float64 }

func (r fixedRand) Float64() float64 { return r.value }

type fixedClock struct{ now time.Time }

func (c fixedClock) Now() time.Time { return c.now }

func rec(glyph string, tags ...string) entities.ElementRecord {
	return entities.ElementRecord{Glyph: glyph, Tags: tags}
}

func testSeed() *entities.SeedBundle {
	return &entities.SeedBundle{
		BaseElements: []string{"Water", "Fire", "Earth", "Air"},
		Elements: []entities.SeedElement{
			{Name: "Water", Record: rec("💧", "liquid", "wet", "cold", "flow", "natural", "base")},
			{Name: "Fire", Record: rec("🔥", "hot", "energy", "light", "danger", "transform", "base")},
			{Name: "Earth", Record: rec("🌍", "solid", "ground", "natural", "stable", "mineral", "base")},
			{Name: "Air", Record: rec("💨", "gas", "invisible", "flow", "sky", "natural", "base")},
			{Name: "Steam", Record: rec("💨", "gas", "hot", "watery", "airborne", "energy", "derived")},
			{Name: "Metal", Record: rec("⚙️", "solid", "hard", "mineral", "shiny", "conductive", "hot", "derived")},
			{Name: "Pressure", Record: rec("💨", "force", "gas", "dense", "invisible", "derived")},
		},
		Recipes: []entities.SeedRecipe{
			{Inputs: [2]string{"Water", "Fire"}, Result: "Steam"},
			{Inputs: [2]string{"Air", "Air"}, Result: "Pressure"},
			{Inputs: [2]string{"Earth", "Fire"}, Result: "Metal"},
		},
	}
}

type staticSeed struct{ bundle *entities.SeedBundle }

func (s staticSeed) Seed() *entities.SeedBundle { return s.bundle }

// memStore is an in-memory SaveStore with injectable failures.
type memStore struct {
	data     map[string][]byte
	readErr  error
	writeErr error
	writes   int
	mu       sync.Mutex
}

func newMemStore() *memStore {
	return &memStore{data: make(map[string][]byte)}
}

func (s *memStore) Read(_ context.Context, key string) ([]byte, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.readErr != nil {
		return nil, false, s.readErr
	}
	d, ok := s.data[key]
	return d, ok, nil
}

func (s *memStore) Write(_ context.Context, key string, data []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.writeErr != nil {
		return s.writeErr
	}
	s.writes++
	s.data[key] = append([]byte(nil), data...)
	return nil
}

func (s *memStore) Remove(_ context.Context, key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.data, key)
	return nil
}

// jsonCodec is a minimal codec with a version gate.
type jsonCodec struct{}

type jsonRecord struct {
	Version    int                               `json:"version"`
	Discovered []string                          `json:"discovered"`
	Recipes    map[string]string                 `json:"recipes"`
	Elements   map[string]entities.ElementRecord `json:"elements"`
	Session    string                            `json:"session"`
}

func (jsonCodec) Encode(w *entities.World) ([]byte, error) {
	r := jsonRecord{
		Version:    2,
		Discovered: w.Discovered.Names(),
		Recipes:    w.Recipes.Entries(),
		Elements:   make(map[string]entities.ElementRecord),
		Session:    w.SessionID,
	}
	for _, name := range w.Vocabulary.Names() {
		r.Elements[name] = w.Vocabulary.Get(name)
	}
	return json.Marshal(r)
}

func (jsonCodec) Decode(data []byte) (*entities.World, error) {
	var r jsonRecord
	if err := json.Unmarshal(data, &r); err != nil {
		return nil, err
	}
	if r.Version != 2 {
		return nil, errors.New("unsupported version")
	}
	w := entities.NewWorld()
	for _, name := range r.Discovered {
		w.Discovered.Add(name)
	}
	for k, v := range r.Recipes {
		key, err := values.ParseRecipeKey(k)
		if err != nil {
			return nil, err
		}
		w.Recipes.BindKey(key, v)
	}
	for name, e := range r.Elements {
		w.Vocabulary.Set(name, e)
	}
	w.SessionID = r.Session
	return w, nil
}

const testKey = "test-slot"

type harness struct {
	store   *memStore
	session *SessionService
	engine  *CombinationEngine
	game    *Game
}

func newHarness(t *testing.T, store *memStore) *harness {
	t.Helper()
	seed := testSeed()
	logger := discardLogger()

	session := NewSessionService(store, jsonCodec{}, staticSeed{bundle: seed}, SessionOptions{Key: testKey}, logger)
	gen, err := services.NewNameGenerator(
		services.DefaultGeneratorConfig(),
		seed.BaseElements,
		fixedRand{value: 0.1},
		fixedClock{now: time.UnixMilli(1700000000000)},
	)
	require.NoError(t, err)

	engine := NewCombinationEngine(gen, session.Reconciler(), logger)
	return &harness{
		store:   store,
		session: session,
		engine:  engine,
		game:    NewGame(engine, session, logger),
	}
}

func loadedHarness(t *testing.T) *harness {
	t.Helper()
	h := newHarness(t, newMemStore())
	h.game.Load(context.Background())
	return h
}

func seedWorld() *entities.World {
	w, _ := testSeed().NewWorld(false)
	return w
}
