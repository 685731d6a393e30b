package entities

import "slices"

// Reserved glyphs.
const (
	UnknownGlyph     = "❓"
	PlaceholderGlyph = "✨"
)

// Reserved tags with engine-level meaning.
const (
	TagUnknown   = "unknown"
	TagGenerated = "generated"
	TagBase      = "base"
	TagDerived   = "derived"
	TagRecovered = "recovered"
	TagError     = "error"
)

// ElementRecord is the attribute record of a single element.
// Tags keep their insertion order; duplicates are tolerated but the record
// is queried as a set.
type ElementRecord struct {
	Glyph string   `json:"glyph" yaml:"glyph"`
	Tags  []string `json:"tags" yaml:"tags"`
}

// UnknownRecord is the sentinel returned for names with no record.
func UnknownRecord() ElementRecord {
	return ElementRecord{Glyph: UnknownGlyph, Tags: []string{TagUnknown}}
}

// RecoveredRecord is installed when a recipe result has lost its record and
// no seed copy exists.
func RecoveredRecord() ElementRecord {
	return ElementRecord{Glyph: UnknownGlyph, Tags: []string{TagUnknown, TagRecovered}}
}

// BrokenBaseRecord is installed for a base element missing from both the
// save and the seed bundle.
func BrokenBaseRecord() ElementRecord {
	return ElementRecord{Glyph: UnknownGlyph, Tags: []string{TagUnknown, TagBase, TagError}}
}

// HasTag reports whether the record carries tag.
func (r ElementRecord) HasTag(tag string) bool {
	return slices.Contains(r.Tags, tag)
}

// HasMeaningfulGlyph is false for the empty, placeholder and unknown glyphs.
func (r ElementRecord) HasMeaningfulGlyph() bool {
	return r.Glyph != "" && r.Glyph != PlaceholderGlyph && r.Glyph != UnknownGlyph
}

// Clone returns a deep copy.
func (r ElementRecord) Clone() ElementRecord {
	return ElementRecord{Glyph: r.Glyph, Tags: slices.Clone(r.Tags)}
}

// Equals compares glyph and tag sequence.
func (r ElementRecord) Equals(other ElementRecord) bool {
	return r.Glyph == other.Glyph && slices.Equal(r.Tags, other.Tags)
}
