package services

// TagQuery is anything that can answer tag membership.
type TagQuery interface {
	Has(tag string) bool
}

// TagRule maps a tag to a word. Rule lists are evaluated in order and the
// first rule whose tag is present wins.
type TagRule struct {
	Tag  string
	Word string
}

// DefaultAdjectiveRules is the adjective priority list. Specific tags come
// first, the broad material tags last.
var DefaultAdjectiveRules = []TagRule{
	{"hot", "Burning"},
	{"cold", "Frozen"},
	{"wet", "Soaked"},
	{"dry", "Parched"},
	{"life", "Living"},
	{"energy", "Charged"},
	{"dark", "Shadow"},
	{"light", "Glowing"},
	{"liquid", "Molten"},
	{"solid", "Solidified"},
	{"gas", "Gaseous"},
	{"danger", "Hazardous"},
	{"complex", "Intricate"},
	{"sharp", "Sharp"},
	{"shiny", "Shiny"},
	{"mineral", "Mineral"},
	{"organic", "Organic"},
	{"earthy", "Earthy"},
	{"watery", "Watery"},
	{"airborne", "Floating"},
}

// DefaultSuffixRules picks the noun suffix for the "{noun} {suffix}" template.
// Highest priority first.
var DefaultSuffixRules = []TagRule{
	{"abstract", "Concept"},
	{"danger", "Hazard"},
	{"life", "Spirit"},
	{"energy", "Energy"},
}

// DefaultSuffix is used when no suffix rule matches.
const DefaultSuffix = "Mixture"

// StateRule names the self-combination template for a primary state tag.
type StateRule struct {
	Tag    string
	Prefix string
}

// DefaultStateRules drive "Ocean of X" style self-combinations.
var DefaultStateRules = []StateRule{
	{"liquid", "Ocean of"},
	{"solid", "Mountain of"},
	{"gas", "Atmosphere of"},
}

// GenericTags never serve as the primary tag of a "{tag} Substance" name.
var GenericTags = map[string]bool{
	"unknown":   true,
	"generated": true,
	"base":      true,
	"derived":   true,
}

// FirstMatch returns the word of the first rule whose tag is present.
func FirstMatch(rules []TagRule, tags TagQuery) (string, bool) {
	for _, rule := range rules {
		if tags.Has(rule.Tag) {
			return rule.Word, true
		}
	}
	return "", false
}

type sliceTags []string

func (s sliceTags) Has(tag string) bool {
	for _, t := range s {
		if t == tag {
			return true
		}
	}
	return false
}
