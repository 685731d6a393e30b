// Package record implements the versioned persisted-record format for saved
// progress.
package record

import (
	"bytes"
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"maps"
	"slices"
	"strings"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v5"

	"github.com/elemcraft/elemcraft/internal/application/ports"
	"github.com/elemcraft/elemcraft/internal/domain/entities"
	"github.com/elemcraft/elemcraft/internal/domain/values"
)

// SchemaVersion is the only record version this codec reads or writes.
const SchemaVersion = 2

//go:embed record.schema.json
var schemaJSON []byte

// Ensure interface compliance
var _ ports.RecordCodec = (*Codec)(nil)

// Record is the on-disk shape of saved progress.
type Record struct {
	Version     int               `json:"version"`
	Discovered  []string          `json:"discovered"`
	Recipes     map[string]string `json:"recipes"`
	ElementData []Entry           `json:"elementData"`
	Session     string            `json:"session,omitempty"`
}

// Entry is one [name, record] pair of the elementData list.
type Entry struct {
	Name   string
	Record entities.ElementRecord
}

type entryBody struct {
	Glyph string   `json:"glyph"`
	Emoji string   `json:"emoji,omitempty"`
	Tags  []string `json:"tags"`
}

// MarshalJSON encodes the entry as a two-element array.
func (e Entry) MarshalJSON() ([]byte, error) {
	tags := e.Record.Tags
	if tags == nil {
		tags = []string{}
	}
	return json.Marshal([]any{e.Name, entryBody{Glyph: e.Record.Glyph, Tags: tags}})
}

// UnmarshalJSON decodes a two-element array. The legacy "emoji" field is
// accepted when "glyph" is absent.
func (e *Entry) UnmarshalJSON(data []byte) error {
	var pair []json.RawMessage
	if err := json.Unmarshal(data, &pair); err != nil {
		return err
	}
	if len(pair) != 2 {
		return fmt.Errorf("element entry must have 2 items, got %d", len(pair))
	}

	var body entryBody
	if err := json.Unmarshal(pair[0], &e.Name); err != nil {
		return fmt.Errorf("element entry name: %w", err)
	}
	if err := json.Unmarshal(pair[1], &body); err != nil {
		return fmt.Errorf("element entry %q: %w", e.Name, err)
	}

	glyph := body.Glyph
	if glyph == "" {
		glyph = body.Emoji
	}
	e.Record = entities.ElementRecord{Glyph: glyph, Tags: body.Tags}
	return nil
}

// Codec encodes and decodes worlds as schema-validated JSON records.
type Codec struct {
	schema    *jsonschema.Schema
	schemaErr error
	once      sync.Once
}

// NewCodec creates a record codec.
func NewCodec() *Codec {
	return &Codec{}
}

func (c *Codec) compiled() (*jsonschema.Schema, error) {
	c.once.Do(func() {
		compiler := jsonschema.NewCompiler()
		compiler.Draft = jsonschema.Draft2020
		if err := compiler.AddResource("record.schema.json", bytes.NewReader(schemaJSON)); err != nil {
			c.schemaErr = fmt.Errorf("failed to add record schema: %w", err)
			return
		}
		c.schema, c.schemaErr = compiler.Compile("record.schema.json")
	})
	return c.schema, c.schemaErr
}

// Encode serializes world as a version 2 record.
func (c *Codec) Encode(world *entities.World) ([]byte, error) {
	return json.Marshal(FromWorld(world))
}

// FromWorld builds the record for world.
func FromWorld(world *entities.World) Record {
	names := world.Vocabulary.Names()
	entries := make([]Entry, 0, len(names))
	for _, name := range names {
		entries = append(entries, Entry{Name: name, Record: world.Vocabulary.Get(name)})
	}
	discovered := world.Discovered.Names()
	if discovered == nil {
		discovered = []string{}
	}
	return Record{
		Version:     SchemaVersion,
		Discovered:  discovered,
		Recipes:     world.Recipes.Entries(),
		ElementData: entries,
		Session:     world.SessionID,
	}
}

// Decode validates data against the record schema and builds a world. Any
// failure rejects the whole record.
func (c *Codec) Decode(data []byte) (*entities.World, error) {
	schema, err := c.compiled()
	if err != nil {
		return nil, err
	}

	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	var doc any
	if err := dec.Decode(&doc); err != nil {
		return nil, fmt.Errorf("record is not valid JSON: %w", err)
	}
	if err := schema.Validate(doc); err != nil {
		var verr *jsonschema.ValidationError
		if errors.As(err, &verr) {
			return nil, formatValidationError(verr)
		}
		return nil, fmt.Errorf("record validation failed: %w", err)
	}

	var rec Record
	if err := json.Unmarshal(data, &rec); err != nil {
		return nil, fmt.Errorf("failed to decode record: %w", err)
	}
	return rec.ToWorld()
}

// ToWorld builds a world from a decoded record. Recipe keys written in
// non-canonical form are re-keyed; a key already in canonical form wins, and
// among re-keyed spellings of one pair the first in byte order wins.
func (r Record) ToWorld() (*entities.World, error) {
	if r.Version != SchemaVersion {
		return nil, fmt.Errorf("unsupported record version %d", r.Version)
	}

	world := entities.NewWorld()
	world.SessionID = r.Session
	for _, name := range r.Discovered {
		world.Discovered.Add(name)
	}
	for _, e := range r.ElementData {
		world.Vocabulary.Set(e.Name, e.Record)
	}

	type binding struct {
		key    values.RecipeKey
		result string
	}
	var rekeyed []binding
	for _, raw := range slices.Sorted(maps.Keys(r.Recipes)) {
		result := r.Recipes[raw]
		key, err := values.ParseRecipeKey(raw)
		if err != nil {
			return nil, fmt.Errorf("invalid recipe key: %w", err)
		}
		if key.String() != raw {
			rekeyed = append(rekeyed, binding{key: key, result: result})
			continue
		}
		world.Recipes.BindKey(key, result)
	}
	for _, rk := range rekeyed {
		world.Recipes.BindKey(rk.key, rk.result)
	}

	return world, nil
}

func formatValidationError(err *jsonschema.ValidationError) error {
	var messages []string

	var collect func(*jsonschema.ValidationError)
	collect = func(e *jsonschema.ValidationError) {
		if e.Message != "" {
			location := e.InstanceLocation
			if location == "" {
				location = "(root)"
			}
			messages = append(messages, fmt.Sprintf("%s: %s", location, e.Message))
		}
		for _, cause := range e.Causes {
			collect(cause)
		}
	}
	collect(err)

	if len(messages) == 0 {
		return errors.New("record validation failed")
	}
	return fmt.Errorf("record validation failed:\n    - %s", strings.Join(messages, "\n    - "))
}
