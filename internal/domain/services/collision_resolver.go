package services

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/elemcraft/elemcraft/internal/domain/values"
)

// ComplexSubstance replaces names that are too long to display.
const ComplexSubstance = "Complex Substance"

var (
	romanSuffix  = regexp.MustCompile(`(?i)^(.*)\s([IVXLCDM]+)$`)
	numberSuffix = regexp.MustCompile(`^(.*)\s(\d+)$`)
)

var nextRoman = map[string]string{
	"I":   "II",
	"II":  "III",
	"III": "IV",
	"IV":  "V",
}

// Clock supplies the current time.
type Clock interface {
	Now() time.Time
}

// CollisionResolver rewrites a candidate name until it no longer clashes
// with a known name.
type CollisionResolver struct {
	clock Clock

	// Counter starts at 2 and increments once per attempt. Roman numerals
	// are incremented while counter <= RomanLimit.
	RomanLimit int

	// Resolution gives up once counter exceeds MaxAttempts.
	MaxAttempts int
}

// Resolution is the outcome of a collision resolution.
type Resolution struct {
	Name      string
	Attempts  int
	Exhausted bool
}

// NewCollisionResolver creates a resolver.
func NewCollisionResolver(clock Clock, romanLimit, maxAttempts int) *CollisionResolver {
	return &CollisionResolver{clock: clock, RomanLimit: romanLimit, MaxAttempts: maxAttempts}
}

// Resolve returns a canonical name absent from known. Known must be keyed by
// canonical name. Resolution always terminates: when the attempt budget runs
// out the candidate gets a millisecond timestamp suffix, itself checked
// against known.
func (r *CollisionResolver) Resolve(candidate string, known map[string]bool) Resolution {
	final := values.Canonicalize(candidate)
	counter := 2
	attempts := 0

	for known[final] {
		attempts++
		switch {
		case candidate == ComplexSubstance:
			final = fmt.Sprintf("Substance %d", counter)
		case romanSuffix.MatchString(final):
			m := romanSuffix.FindStringSubmatch(final)
			next, ok := nextRoman[strings.ToUpper(m[2])]
			if ok && counter <= r.RomanLimit {
				final = m[1] + " " + next
			} else {
				final = fmt.Sprintf("%s %d", candidate, counter)
			}
		case numberSuffix.MatchString(final):
			m := numberSuffix.FindStringSubmatch(final)
			n, err := strconv.Atoi(m[2])
			if err != nil {
				final = fmt.Sprintf("%s %d", candidate, counter)
				break
			}
			final = fmt.Sprintf("%s %d", m[1], n+1)
		default:
			final = candidate + " II"
		}
		final = values.Canonicalize(final)

		counter++
		if counter > r.MaxAttempts {
			return Resolution{Name: r.stamped(candidate, known), Attempts: attempts, Exhausted: true}
		}
	}
	return Resolution{Name: final, Attempts: attempts}
}

// stamped suffixes candidate with the current millisecond, adding a counter
// when that name is itself taken.
func (r *CollisionResolver) stamped(candidate string, known map[string]bool) string {
	base := fmt.Sprintf("%s-%d", candidate, r.clock.Now().UnixMilli())
	final := values.Canonicalize(base)
	for n := 2; known[final]; n++ {
		final = values.Canonicalize(fmt.Sprintf("%s %d", base, n))
	}
	return final
}

var wordSplitter = regexp.MustCompile(`[\s-]+`)
