package entities

import "slices"

// TagSet is an insertion-ordered set of tags.
type TagSet struct {
	order   []string
	members map[string]bool
}

// NewTagSet builds a set from any number of tag lists, keeping first-seen order.
func NewTagSet(lists ...[]string) *TagSet {
	s := &TagSet{members: make(map[string]bool)}
	for _, list := range lists {
		for _, tag := range list {
			s.Add(tag)
		}
	}
	return s
}

// Add inserts tag if absent.
func (s *TagSet) Add(tag string) {
	if s.members[tag] {
		return
	}
	s.members[tag] = true
	s.order = append(s.order, tag)
}

// Has reports membership.
func (s *TagSet) Has(tag string) bool {
	return s.members[tag]
}

// Slice returns the tags in insertion order.
func (s *TagSet) Slice() []string {
	return slices.Clone(s.order)
}

// Len returns the number of distinct tags.
func (s *TagSet) Len() int {
	return len(s.order)
}
