package values

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

// Canonicalize normalizes an element name for equality and lookup.
// Every space-separated word gets its first letter uppercased and the rest
// lowercased. Runs of spaces are preserved, so "fire  ball" stays two words
// apart. Canonicalize is idempotent.
func Canonicalize(name string) string {
	if name == "" {
		return ""
	}
	words := strings.Split(name, " ")
	for i, word := range words {
		words[i] = titleWord(word)
	}
	return strings.Join(words, " ")
}

func titleWord(word string) string {
	if word == "" {
		return word
	}
	r, size := utf8.DecodeRuneInString(word)
	return strings.ToUpper(string(r)) + strings.ToLower(word[size:])
}

// ParseElementName trims and canonicalizes user supplied input.
// Empty names are rejected.
func ParseElementName(raw string) (string, error) {
	name := strings.TrimSpace(raw)
	if name == "" {
		return "", fmt.Errorf("element name cannot be empty")
	}
	return Canonicalize(name), nil
}

// IsCanonical reports whether name is already in canonical form.
func IsCanonical(name string) bool {
	return Canonicalize(name) == name
}

// Length returns the display length of a name in characters.
func Length(name string) int {
	return utf8.RuneCountInString(name)
}

// BaseNoun returns the last space-separated token of a name.
func BaseNoun(name string) string {
	if name == "" {
		return "Thing"
	}
	parts := strings.Split(name, " ")
	return parts[len(parts)-1]
}
