// Package memory provides an in-memory save store.
package memory

import (
	"context"
	"slices"
	"sync"

	"github.com/elemcraft/elemcraft/internal/application/ports"
)

// Ensure interface compliance
var _ ports.SaveStore = (*SaveStore)(nil)

// SaveStore keeps payloads in process memory. Useful for testing and
// throwaway sessions.
type SaveStore struct {
	slots map[string][]byte
	mu    sync.RWMutex
}

// NewSaveStore creates an empty in-memory store.
func NewSaveStore() *SaveStore {
	return &SaveStore{
		slots: make(map[string][]byte),
	}
}

// Read returns a copy of the payload stored under key.
func (s *SaveStore) Read(ctx context.Context, key string) ([]byte, bool, error) {
	if err := ctx.Err(); err != nil {
		return nil, false, err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()

	data, ok := s.slots[key]
	if !ok {
		return nil, false, nil
	}
	return slices.Clone(data), true, nil
}

// Write stores a copy of data under key.
func (s *SaveStore) Write(ctx context.Context, key string, data []byte) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	s.slots[key] = slices.Clone(data)
	return nil
}

// Remove deletes key.
func (s *SaveStore) Remove(ctx context.Context, key string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.slots, key)
	return nil
}

// Keys returns the stored keys in sorted order.
func (s *SaveStore) Keys() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	keys := make([]string, 0, len(s.slots))
	for k := range s.slots {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	return keys
}
