package domain

import "slices"

// StringSet is an insertion-only set of strings that yields its members in
// byte-wise lexicographic order.
type StringSet map[string]struct{}

// NewStringSet creates a StringSet pre-populated with values.
func NewStringSet(values ...string) StringSet {
	s := make(StringSet, len(values))
	for _, v := range values {
		s.Add(v)
	}
	return s
}

// Add inserts value into the set.
func (s StringSet) Add(value string) {
	s[value] = struct{}{}
}

// Sorted returns the members of the set sorted lexicographically.
func (s StringSet) Sorted() []string {
	out := make([]string, 0, len(s))
	for v := range s {
		out = append(out, v)
	}
	slices.Sort(out)
	return out
}
