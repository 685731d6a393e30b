package entities

import (
	"slices"

	"github.com/elemcraft/elemcraft/internal/domain/values"
)

// Vocabulary holds the attribute record of every known element, keyed by
// canonical name. Insertion order is kept so serialized output is stable.
type Vocabulary struct {
	records map[string]ElementRecord
	order   []string
}

// NewVocabulary creates an empty vocabulary.
func NewVocabulary() *Vocabulary {
	return &Vocabulary{records: make(map[string]ElementRecord)}
}

// Get returns the record for name, or UnknownRecord if absent. It never fails.
func (v *Vocabulary) Get(name string) ElementRecord {
	if rec, ok := v.records[values.Canonicalize(name)]; ok {
		return rec.Clone()
	}
	return UnknownRecord()
}

// Lookup returns the record and whether it exists.
func (v *Vocabulary) Lookup(name string) (ElementRecord, bool) {
	rec, ok := v.records[values.Canonicalize(name)]
	if !ok {
		return ElementRecord{}, false
	}
	return rec.Clone(), true
}

// Set inserts or overwrites the record for name.
func (v *Vocabulary) Set(name string, rec ElementRecord) {
	name = values.Canonicalize(name)
	if _, ok := v.records[name]; !ok {
		v.order = append(v.order, name)
	}
	v.records[name] = rec.Clone()
}

// Has reports whether name has a record.
func (v *Vocabulary) Has(name string) bool {
	_, ok := v.records[values.Canonicalize(name)]
	return ok
}

// Delete removes the record for name.
func (v *Vocabulary) Delete(name string) {
	name = values.Canonicalize(name)
	if _, ok := v.records[name]; !ok {
		return
	}
	delete(v.records, name)
	v.order = slices.DeleteFunc(v.order, func(n string) bool { return n == name })
}

// Names returns every name in insertion order.
func (v *Vocabulary) Names() []string {
	return slices.Clone(v.order)
}

// Len returns the number of records.
func (v *Vocabulary) Len() int {
	return len(v.order)
}

// Clone returns a deep copy.
func (v *Vocabulary) Clone() *Vocabulary {
	out := &Vocabulary{
		records: make(map[string]ElementRecord, len(v.records)),
		order:   slices.Clone(v.order),
	}
	for name, rec := range v.records {
		out.records[name] = rec.Clone()
	}
	return out
}

// Equals compares contents, ignoring insertion order.
func (v *Vocabulary) Equals(other *Vocabulary) bool {
	if len(v.records) != len(other.records) {
		return false
	}
	for name, rec := range v.records {
		o, ok := other.records[name]
		if !ok || !rec.Equals(o) {
			return false
		}
	}
	return true
}
