package subject

import (
	"sort"

	"golang.org/x/text/unicode/norm"

	"github.com/relateby/pattern-go/value"
)

// Subject is a self-descriptive record: a stable identity, an unordered
// label set, and a property map. Two subjects are equal when identity,
// label set, and property map are pairwise equal.
//
// The zero Subject has an empty identity and no labels or properties; it
// is a valid, if degenerate, value.
type Subject struct {
	identity   string
	labels     map[string]struct{}
	properties map[string]value.Value
}

// New constructs a Subject with the given identity and no labels or
// properties. Use [Subject.WithLabel] and [Subject.WithProperty], or
// [NewBuilder], to add them.
func New(identity string) Subject {
	return Subject{identity: normalizeText(identity)}
}

// IdentityOf implements the identity contract shared by the graph-layer
// packages: it returns the normalized identity text.
func (s Subject) IdentityOf() string { return s.identity }

// Identity returns the subject's identity text.
func (s Subject) Identity() string { return s.identity }

// Labels returns the subject's labels as a sorted slice. The returned
// slice is a fresh copy; mutating it does not affect s.
func (s Subject) Labels() []string {
	out := make([]string, 0, len(s.labels))
	for l := range s.labels {
		out = append(out, l)
	}
	sort.Strings(out)
	return out
}

// HasLabel reports whether s carries the given label.
func (s Subject) HasLabel(label string) bool {
	if len(s.labels) == 0 {
		return false
	}
	_, ok := s.labels[normalizeText(label)]
	return ok
}

// WithLabel returns a copy of s with label added to its label set. Adding
// a label it already has is a no-op copy.
func (s Subject) WithLabel(label string) Subject {
	out := s.clone()
	if out.labels == nil {
		out.labels = make(map[string]struct{}, 1)
	}
	out.labels[normalizeText(label)] = struct{}{}
	return out
}

// WithoutLabel returns a copy of s with label removed from its label set.
func (s Subject) WithoutLabel(label string) Subject {
	out := s.clone()
	delete(out.labels, normalizeText(label))
	return out
}

// Property returns the value stored under key and true, or the zero
// Value and false if key is absent.
func (s Subject) Property(key string) (value.Value, bool) {
	v, ok := s.properties[normalizeText(key)]
	return v, ok
}

// Properties returns a clone of the subject's property map.
func (s Subject) Properties() map[string]value.Value {
	out := make(map[string]value.Value, len(s.properties))
	for k, v := range s.properties {
		out[k] = v
	}
	return out
}

// WithProperty returns a copy of s with key set to v, replacing any
// existing value under that key.
func (s Subject) WithProperty(key string, v value.Value) Subject {
	out := s.clone()
	if out.properties == nil {
		out.properties = make(map[string]value.Value, 1)
	}
	out.properties[normalizeText(key)] = v
	return out
}

// WithoutProperty returns a copy of s with key removed.
func (s Subject) WithoutProperty(key string) Subject {
	out := s.clone()
	delete(out.properties, normalizeText(key))
	return out
}

// clone returns a deep copy of s's label set and property map, ready for
// one of the With*/Without* mutators to adjust.
func (s Subject) clone() Subject {
	out := Subject{identity: s.identity}
	if len(s.labels) > 0 {
		out.labels = make(map[string]struct{}, len(s.labels))
		for l := range s.labels {
			out.labels[l] = struct{}{}
		}
	}
	if len(s.properties) > 0 {
		out.properties = make(map[string]value.Value, len(s.properties))
		for k, v := range s.properties {
			out.properties[k] = v
		}
	}
	return out
}

// Equal reports whether s and other carry the same identity, the same
// label set, and pairwise-equal property maps.
func (s Subject) Equal(other Subject) bool {
	if s.identity != other.identity {
		return false
	}
	if len(s.labels) != len(other.labels) {
		return false
	}
	for l := range s.labels {
		if _, ok := other.labels[l]; !ok {
			return false
		}
	}
	if len(s.properties) != len(other.properties) {
		return false
	}
	for k, v := range s.properties {
		ov, ok := other.properties[k]
		if !ok || !v.Equal(ov) {
			return false
		}
	}
	return true
}

// Hashable reports whether every property value is hashable. A Subject
// containing a NaN-bearing Decimal anywhere in its properties is not
// Hashable.
func (s Subject) Hashable() bool {
	for _, v := range s.properties {
		if !v.Hashable() {
			return false
		}
	}
	return true
}

func normalizeText(s string) string {
	if s == "" {
		return s
	}
	return norm.NFC.String(s)
}
