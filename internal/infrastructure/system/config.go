// Package system provides infrastructure for system-level configuration.
// This covers loading the user config file (~/.elemcraft/config.yaml).
package system

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/goccy/go-yaml"

	"github.com/elemcraft/elemcraft/internal/domain/services"
	"github.com/elemcraft/elemcraft/internal/version"
)

// DefaultStorageKey is the slot saved progress is written under.
const DefaultStorageKey = "infiniteElementalCraftSave_v2"

// Config represents the global configuration file (~/.elemcraft/config.yaml).
type Config struct {
	// Requires is an optional semantic version constraint on elemcraft
	// itself, checked when the config is validated.
	Requires string `yaml:"requires,omitempty"`

	Storage   StorageConfig   `yaml:"storage"`
	Generator GeneratorConfig `yaml:"generator"`
	Game      GameConfig      `yaml:"game"`
}

// StorageBackend names a save store implementation.
type StorageBackend string

const (
	// StorageFile keeps one JSON file per key in a directory.
	StorageFile StorageBackend = "file"

	// StorageSQLite keeps save slots in a SQLite database file.
	StorageSQLite StorageBackend = "sqlite"

	// StorageMemory keeps progress for the lifetime of the process only.
	StorageMemory StorageBackend = "memory"
)

// StorageConfig selects where progress is saved.
type StorageConfig struct {
	// Backend is "file", "sqlite" or "memory".
	Backend StorageBackend `yaml:"backend"`

	// Path is a directory for the file backend and a database file for
	// sqlite. Empty means a default under ~/.elemcraft.
	Path string `yaml:"path"`

	Key string `yaml:"key"`
}

// GeneratorConfig tunes element generation.
type GeneratorConfig struct {
	// Seed fixes the random source. Zero seeds from the clock.
	Seed int64 `yaml:"seed"`

	AdjectiveThreshold   float64                 `yaml:"adjective_threshold"`
	SuffixThreshold      float64                 `yaml:"suffix_threshold"`
	MaxWords             int                     `yaml:"max_words"`
	MaxLength            int                     `yaml:"max_length"`
	MaxCollisionAttempts int                     `yaml:"max_collision_attempts"`
	MaxRomanAttempts     int                     `yaml:"max_roman_attempts"`
	Overrides            []services.OverrideSpec `yaml:"overrides"`
}

// GameConfig holds gameplay switches.
type GameConfig struct {
	// RevealSeedResults discovers every seed recipe result in a fresh world.
	RevealSeedResults bool `yaml:"reveal_seed_results"`
}

// ConfigLoader loads system configuration from disk.
type ConfigLoader struct{}

// NewConfigLoader creates a new system config loader.
func NewConfigLoader() *ConfigLoader {
	return &ConfigLoader{}
}

// DefaultConfig returns a Config with the reference tuning.
// This is used when no system config file exists.
func DefaultConfig() *Config {
	gen := services.DefaultGeneratorConfig()
	return &Config{
		Storage: StorageConfig{
			Backend: StorageFile,
			Key:     DefaultStorageKey,
		},
		Generator: GeneratorConfig{
			AdjectiveThreshold:   gen.AdjectiveThreshold,
			SuffixThreshold:      gen.SuffixThreshold,
			MaxWords:             gen.MaxWords,
			MaxLength:            gen.MaxLength,
			MaxCollisionAttempts: gen.MaxAttempts,
			MaxRomanAttempts:     gen.RomanLimit,
		},
	}
}

// DefaultDir returns ~/.elemcraft, or .elemcraft when the home directory
// cannot be determined.
func DefaultDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".elemcraft"
	}
	return filepath.Join(home, ".elemcraft")
}

// Load loads the system configuration from the specified path.
// If the file does not exist, returns DefaultConfig().
// Fields absent from the file keep their default values.
func (l *ConfigLoader) Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	//nolint:gosec // G304: path is user-provided config file
	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return cfg, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read system config: %w", err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse system config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid system config %s: %w", path, err)
	}
	return cfg, nil
}

// Validate checks value ranges.
func (c *Config) Validate() error {
	var errs []error

	if c.Requires != "" {
		ok, err := version.Satisfies(c.Requires)
		switch {
		case err != nil:
			errs = append(errs, fmt.Errorf("requires: %w", err))
		case !ok:
			errs = append(errs, fmt.Errorf("requires: elemcraft %s does not satisfy %q", version.Version, c.Requires))
		}
	}

	switch c.Storage.Backend {
	case StorageFile, StorageSQLite, StorageMemory:
	default:
		errs = append(errs, fmt.Errorf("storage.backend: unknown backend %q", c.Storage.Backend))
	}
	if strings.TrimSpace(c.Storage.Key) == "" {
		errs = append(errs, errors.New("storage.key: must not be empty"))
	}

	g := c.Generator
	if g.AdjectiveThreshold < 0 || g.AdjectiveThreshold > 1 {
		errs = append(errs, fmt.Errorf("generator.adjective_threshold: %v is outside [0,1]", g.AdjectiveThreshold))
	}
	if g.SuffixThreshold < 0 || g.SuffixThreshold > 1 {
		errs = append(errs, fmt.Errorf("generator.suffix_threshold: %v is outside [0,1]", g.SuffixThreshold))
	}
	if g.AdjectiveThreshold > g.SuffixThreshold {
		errs = append(errs, errors.New("generator.adjective_threshold: must not exceed suffix_threshold"))
	}
	for name, v := range map[string]int{
		"max_words":              g.MaxWords,
		"max_length":             g.MaxLength,
		"max_collision_attempts": g.MaxCollisionAttempts,
		"max_roman_attempts":     g.MaxRomanAttempts,
	} {
		if v <= 0 {
			errs = append(errs, fmt.Errorf("generator.%s: must be positive, got %d", name, v))
		}
	}
	for i, o := range g.Overrides {
		if strings.TrimSpace(o.When) == "" || strings.TrimSpace(o.Name) == "" {
			errs = append(errs, fmt.Errorf("generator.overrides[%d]: when and name are required", i))
		}
	}

	return errors.Join(errs...)
}

// StoragePath returns the configured storage path or the backend default.
func (c *Config) StoragePath() string {
	if c.Storage.Path != "" {
		return c.Storage.Path
	}
	switch c.Storage.Backend {
	case StorageSQLite:
		return filepath.Join(DefaultDir(), "saves.db")
	default:
		return filepath.Join(DefaultDir(), "saves")
	}
}

// GeneratorSettings converts the generator section for the name generator.
// Custom overrides are evaluated before the built-in list.
func (c *Config) GeneratorSettings() services.GeneratorConfig {
	gen := services.DefaultGeneratorConfig()
	gen.Overrides = append(append([]services.OverrideSpec(nil), c.Generator.Overrides...), gen.Overrides...)
	gen.AdjectiveThreshold = c.Generator.AdjectiveThreshold
	gen.SuffixThreshold = c.Generator.SuffixThreshold
	gen.MaxWords = c.Generator.MaxWords
	gen.MaxLength = c.Generator.MaxLength
	gen.MaxAttempts = c.Generator.MaxCollisionAttempts
	gen.RomanLimit = c.Generator.MaxRomanAttempts
	return gen
}
