// Package seed provides the built-in element vocabulary and recipe book.
package seed

import (
	_ "embed"
	"fmt"
	"sync"

	"github.com/goccy/go-yaml"

	"github.com/elemcraft/elemcraft/internal/domain/entities"
)

//go:embed seed.yaml
var seedYAML []byte

// Parse decodes and validates a seed bundle from YAML.
func Parse(data []byte) (*entities.SeedBundle, error) {
	var bundle entities.SeedBundle
	if err := yaml.Unmarshal(data, &bundle); err != nil {
		return nil, fmt.Errorf("failed to parse seed data: %w", err)
	}
	if err := bundle.Validate(); err != nil {
		return nil, err
	}
	return &bundle, nil
}

// Provider serves the embedded seed bundle.
type Provider struct {
	bundle *entities.SeedBundle
	err    error
	once   sync.Once
}

// NewProvider creates a provider for the embedded seed bundle.
func NewProvider() *Provider {
	return &Provider{}
}

// Load parses the embedded bundle once and returns it.
func (p *Provider) Load() (*entities.SeedBundle, error) {
	p.once.Do(func() {
		p.bundle, p.err = Parse(seedYAML)
	})
	return p.bundle, p.err
}

// Seed returns the embedded bundle. It panics if the embedded data is
// invalid, which the package tests rule out.
func (p *Provider) Seed() *entities.SeedBundle {
	bundle, err := p.Load()
	if err != nil {
		panic(err)
	}
	return bundle
}
