package xml

import "sort"

// FieldSet is a fixed set of element names, matched exactly.
type FieldSet map[string]struct{}

// NewFieldSet returns a FieldSet holding names.
func NewFieldSet(names ...string) FieldSet {
	s := make(FieldSet, len(names))
	for _, name := range names {
		s[name] = struct{}{}
	}
	return s
}

// Has reports whether name is in the set. Has is safe on a nil set.
func (s FieldSet) Has(name string) bool {
	_, ok := s[name]
	return ok
}

// Names returns the names in the set, sorted.
func (s FieldSet) Names() []string {
	names := make([]string, 0, len(s))
	for name := range s {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
