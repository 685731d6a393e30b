package entities

import (
	"slices"

	"github.com/elemcraft/elemcraft/internal/domain/values"
)

// DiscoveredSet is the insertion-ordered set of unlocked element names.
type DiscoveredSet struct {
	members map[string]bool
	order   []string
}

// NewDiscoveredSet creates a set holding names.
func NewDiscoveredSet(names ...string) *DiscoveredSet {
	s := &DiscoveredSet{members: make(map[string]bool)}
	for _, name := range names {
		s.Add(name)
	}
	return s
}

// Add inserts name and reports whether it was new.
func (s *DiscoveredSet) Add(name string) bool {
	name = values.Canonicalize(name)
	if s.members[name] {
		return false
	}
	s.members[name] = true
	s.order = append(s.order, name)
	return true
}

// Has reports membership.
func (s *DiscoveredSet) Has(name string) bool {
	return s.members[values.Canonicalize(name)]
}

// Remove deletes name from the set.
func (s *DiscoveredSet) Remove(name string) {
	name = values.Canonicalize(name)
	if !s.members[name] {
		return
	}
	delete(s.members, name)
	s.order = slices.DeleteFunc(s.order, func(n string) bool { return n == name })
}

// Names returns members in discovery order.
func (s *DiscoveredSet) Names() []string {
	return slices.Clone(s.order)
}

// Len returns the number of members.
func (s *DiscoveredSet) Len() int {
	return len(s.order)
}

// Clone returns a deep copy.
func (s *DiscoveredSet) Clone() *DiscoveredSet {
	return NewDiscoveredSet(s.order...)
}

// Equals compares membership, ignoring order.
func (s *DiscoveredSet) Equals(other *DiscoveredSet) bool {
	if len(s.members) != len(other.members) {
		return false
	}
	for name := range s.members {
		if !other.members[name] {
			return false
		}
	}
	return true
}
