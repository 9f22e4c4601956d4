package rule

import (
	"fmt"
	"slices"
	"unicode"

	"github.com/AdamBrianBright/callbackreturn/internal/syntax"
)

// DefaultNames is used when no names are configured.
var DefaultNames = []string{"callback"}

// NameSet is the ordered set of callback identifiers. It is immutable once built.
type NameSet struct {
	names []string
	index map[string]struct{}
}

// NewNameSet validates names and builds the set. Duplicates are dropped keeping the
// first occurrence. An empty list is valid and matches nothing.
func NewNameSet(names []string) (NameSet, error) {
	set := NameSet{
		names: make([]string, 0, len(names)),
		index: make(map[string]struct{}, len(names)),
	}
	for _, name := range names {
		if !IsIdentifier(name) {
			return NameSet{}, fmt.Errorf("invalid callback name %q: must be a plain identifier", name)
		}
		if _, ok := set.index[name]; ok {
			continue
		}
		set.index[name] = struct{}{}
		set.names = append(set.names, name)
	}

	return set, nil
}

// Names returns a copy of the configured names in order.
func (s NameSet) Names() []string {
	return slices.Clone(s.names)
}

// Contains reports whether name is configured. Matching is exact and case-sensitive.
func (s NameSet) Contains(name string) bool {
	_, ok := s.index[name]
	return ok
}

// Match returns the callee name when the call's callee is a simple identifier
// from the set.
func (s NameSet) Match(call *syntax.Call) (string, bool) {
	if call == nil {
		return "", false
	}
	id, ok := call.Fun.(*syntax.Ident)
	if !ok || !s.Contains(id.Name) {
		return "", false
	}

	return id.Name, true
}

// IsIdentifier reports whether name is a bare identifier: letters, digits, '_' and '$',
// not starting with a digit.
func IsIdentifier(name string) bool {
	if name == "" {
		return false
	}
	for i, r := range name {
		switch {
		case r == '_' || r == '$' || unicode.IsLetter(r):
		case i > 0 && unicode.IsDigit(r):
		default:
			return false
		}
	}

	return true
}
