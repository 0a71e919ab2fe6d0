// Package xref defines identifiers for cross-reference lookups that fail
// to resolve during a documentation build.
package xref

import (
	"fmt"
	"sort"
	"strings"
)

// Key identifies a missing reference by what was looked up, independent
// of where in the documentation the lookup happened.
type Key struct {
	// DomainType is the host's categorization of the reference,
	// rendered as "domain:reftype" (e.g. "py:class").
	DomainType string
	// Target is the symbolic name the author tried to reference.
	Target string
}

// NewKey builds a Key from a reference's domain, type and target.
func NewKey(domain, reftype, target string) Key {
	return Key{DomainType: domain + ":" + reftype, Target: target}
}

// String renders the key for warning messages.
func (k Key) String() string {
	return fmt.Sprintf("%s %s", k.DomainType, k.Target)
}

// Compare orders keys by domain type, then target.
func (k Key) Compare(other Key) int {
	if c := strings.Compare(k.DomainType, other.DomainType); c != 0 {
		return c
	}
	return strings.Compare(k.Target, other.Target)
}

// SortKeys sorts keys in place by domain type, then target.
func SortKeys(keys []Key) {
	sort.Slice(keys, func(i, j int) bool {
		return keys[i].Compare(keys[j]) < 0
	})
}

// Reference is one unresolved cross-reference as reported by the host
// build tool. Source and Line are best-effort: the host resolves the
// originating document before dispatch, leaving Source empty when the
// origin is unknown and Line zero when no line information exists.
type Reference struct {
	Domain string
	Type   string
	Target string
	Source string
	Line   int
}

// Key returns the (domain:type, target) key for this reference.
func (r Reference) Key() Key {
	return NewKey(r.Domain, r.Type, r.Target)
}
