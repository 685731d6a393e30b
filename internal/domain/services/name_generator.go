package services

import (
	"fmt"
	"slices"

	"github.com/elemcraft/elemcraft/internal/domain/entities"
	"github.com/elemcraft/elemcraft/internal/domain/values"
)

// RandomSource yields uniform samples in [0, 1).
type RandomSource interface {
	Float64() float64
}

// GeneratorConfig holds the tuning knobs of the name generator. The values
// are arbitrary choices kept for behavioural parity.
type GeneratorConfig struct {
	Overrides []OverrideSpec

	// AdjectiveThreshold and SuffixThreshold split the [0,1) draw between
	// the three templates.
	AdjectiveThreshold float64
	SuffixThreshold    float64
	MaxWords           int
	MaxLength          int
	MaxAttempts        int
	RomanLimit         int
}

// DefaultGeneratorConfig returns the reference tuning.
func DefaultGeneratorConfig() GeneratorConfig {
	return GeneratorConfig{
		Overrides:          slices.Clone(DefaultOverrideSpecs),
		AdjectiveThreshold: 0.5,
		SuffixThreshold:    0.8,
		MaxWords:           3,
		MaxLength:          25,
		MaxAttempts:        15,
		RomanLimit:         5,
	}
}

// Template identifies which branch produced a candidate name.
type Template string

const (
	TemplateSelf      Template = "self"
	TemplateOverride  Template = "override"
	TemplateAdjective Template = "adjective"
	TemplateSuffix    Template = "suffix"
	TemplateNounPair  Template = "noun-pair"
	TemplateSubstance Template = "substance"
	TemplateMixture   Template = "mix"
	TemplateClamped   Template = "clamped"
	TemplateTruncated Template = "complex"
)

// Generation describes a freshly synthesized element.
type Generation struct {
	Name      string
	Candidate string
	Record    entities.ElementRecord
	Template  Template
	Attempts  int
	Exhausted bool
}

// NameGenerator synthesizes plausible elements for pairs with no recipe.
type NameGenerator struct {
	rand      RandomSource
	resolver  *CollisionResolver
	overrides []OverrideRule
	base      map[string]bool
	cfg       GeneratorConfig
}

// NewNameGenerator compiles the override rules and builds a generator.
// baseElements are never preferred as glyph donors.
func NewNameGenerator(cfg GeneratorConfig, baseElements []string, rand RandomSource, clock Clock) (*NameGenerator, error) {
	if rand == nil || clock == nil {
		return nil, fmt.Errorf("name generator: random source and clock are required")
	}
	overrides, err := CompileOverrides(cfg.Overrides)
	if err != nil {
		return nil, fmt.Errorf("name generator: %w", err)
	}
	base := make(map[string]bool, len(baseElements))
	for _, name := range baseElements {
		base[values.Canonicalize(name)] = true
	}
	return &NameGenerator{
		rand:      rand,
		resolver:  NewCollisionResolver(clock, cfg.RomanLimit, cfg.MaxAttempts),
		overrides: overrides,
		base:      base,
		cfg:       cfg,
	}, nil
}

// Generate synthesizes an element for a and b, registers its record in the
// world's vocabulary and returns it. The world's recipe table is not touched.
func (g *NameGenerator) Generate(world *entities.World, a, b string) Generation {
	a, b = values.Canonicalize(a), values.Canonicalize(b)
	recA := world.Vocabulary.Get(a)
	recB := world.Vocabulary.Get(b)
	union := entities.NewTagSet(recA.Tags, recB.Tags)

	nounA, nounB := values.BaseNoun(a), values.BaseNoun(b)
	sorted := []string{nounA, nounB}
	slices.Sort(sorted)

	var candidate string
	var tmpl Template
	if a == b {
		candidate, tmpl = g.selfName(a, recA)
	} else {
		candidate, tmpl = g.pairName(union, nounA, nounB, sorted)
	}
	candidate = values.Canonicalize(candidate)

	if wordCount(candidate) > g.cfg.MaxWords {
		candidate, tmpl = clampName(union, nounA, nounB, sorted), TemplateClamped
	}
	if values.Length(candidate) > g.cfg.MaxLength {
		candidate, tmpl = ComplexSubstance, TemplateTruncated
	}

	res := g.resolver.Resolve(candidate, world.KnownNames())

	tags := union.Slice()
	if !slices.Contains(tags, entities.TagGenerated) {
		tags = append(tags, entities.TagGenerated)
	}
	record := entities.ElementRecord{
		Glyph: g.inheritGlyph(a, recA, b, recB),
		Tags:  tags,
	}
	world.Vocabulary.Set(res.Name, record)

	return Generation{
		Name:      res.Name,
		Candidate: candidate,
		Record:    record,
		Template:  tmpl,
		Attempts:  res.Attempts,
		Exhausted: res.Exhausted,
	}
}

func (g *NameGenerator) selfName(name string, rec entities.ElementRecord) (string, Template) {
	tags := sliceTags(rec.Tags)
	for _, rule := range DefaultStateRules {
		if tags.Has(rule.Tag) {
			return rule.Prefix + " " + name, TemplateSelf
		}
	}
	adj, ok := FirstMatch(DefaultAdjectiveRules, tags)
	if !ok {
		adj = "Pure"
	}
	return adj + " " + values.BaseNoun(name), TemplateSelf
}

func (g *NameGenerator) pairName(union *entities.TagSet, nounA, nounB string, sorted []string) (string, Template) {
	if name, ok := MatchOverride(g.overrides, union.Slice()); ok {
		return name, TemplateOverride
	}

	draw := g.rand.Float64()
	switch {
	case draw < g.cfg.AdjectiveThreshold:
		adj, ok := FirstMatch(DefaultAdjectiveRules, union)
		noun := longerNoun(nounA, nounB)
		if ok && adj != noun {
			return adj + " " + noun, TemplateAdjective
		}
		return sorted[0] + "-" + sorted[1] + " Mix", TemplateMixture
	case draw < g.cfg.SuffixThreshold:
		suffix, ok := FirstMatch(DefaultSuffixRules, union)
		if !ok {
			suffix = DefaultSuffix
		}
		return shorterNoun(nounA, nounB) + " " + suffix, TemplateSuffix
	default:
		if sorted[0] != sorted[1] {
			return sorted[0] + "-" + sorted[1], TemplateNounPair
		}
		return values.Canonicalize(primaryTag(union)) + " Substance", TemplateSubstance
	}
}

// clampName collapses an over-long candidate into "{adjective} {noun}".
func clampName(union *entities.TagSet, nounA, nounB string, sorted []string) string {
	adj, ok := FirstMatch(DefaultAdjectiveRules, union)
	if !ok {
		adj = sorted[0]
	}
	noun := nounA
	if values.Length(nounB) > values.Length(nounA) {
		noun = nounB
	}
	if adj == noun {
		if sorted[0] == nounA {
			adj = sorted[1]
		} else {
			adj = sorted[0]
		}
	}
	return values.Canonicalize(adj + " " + noun)
}

// inheritGlyph prefers a derived, non-generated parent's glyph, then any
// parent with a meaningful glyph, then the placeholder.
func (g *NameGenerator) inheritGlyph(a string, recA entities.ElementRecord, b string, recB entities.ElementRecord) string {
	donor := func(name string, rec entities.ElementRecord) bool {
		return rec.HasMeaningfulGlyph() && !g.base[name] && !rec.HasTag(entities.TagGenerated)
	}
	switch {
	case donor(a, recA):
		return recA.Glyph
	case donor(b, recB):
		return recB.Glyph
	case recA.HasMeaningfulGlyph():
		return recA.Glyph
	case recB.HasMeaningfulGlyph():
		return recB.Glyph
	default:
		return entities.PlaceholderGlyph
	}
}

// longerNoun picks b on ties.
func longerNoun(a, b string) string {
	if values.Length(a) <= values.Length(b) {
		return b
	}
	return a
}

// shorterNoun picks a on ties.
func shorterNoun(a, b string) string {
	if values.Length(a) <= values.Length(b) {
		return a
	}
	return b
}

func primaryTag(union *entities.TagSet) string {
	for _, tag := range union.Slice() {
		if !GenericTags[tag] {
			return tag
		}
	}
	return "Compound"
}

func wordCount(name string) int {
	return len(wordSplitter.Split(name, -1))
}
