// Package ports defines interfaces for infrastructure dependencies.
// These are the "ports" in hexagonal architecture - abstractions that
// the application layer depends on but doesn't implement.
package ports

import (
	"context"

	"github.com/elemcraft/elemcraft/internal/domain/entities"
)

// SaveStore is a key/value slot for serialized world state, in the manner of
// browser local storage.
type SaveStore interface {
	// Read returns the payload stored under key. found is false when the
	// key has never been written or was removed.
	Read(ctx context.Context, key string) (data []byte, found bool, err error)

	// Write replaces the payload stored under key.
	Write(ctx context.Context, key string, data []byte) error

	// Remove deletes key. Removing a missing key is not an error.
	Remove(ctx context.Context, key string) error
}

// RecordCodec converts worlds to and from the persisted record format.
type RecordCodec interface {
	// Encode serializes world under the current schema version.
	Encode(world *entities.World) ([]byte, error)

	// Decode validates and deserializes a record. Any version or shape
	// mismatch is an error; no partial world is returned.
	Decode(data []byte) (*entities.World, error)
}

// SeedProvider supplies the built-in seed bundle.
type SeedProvider interface {
	Seed() *entities.SeedBundle
}
