package subject

import "github.com/relateby/pattern-go/value"

// Builder constructs Subject values fluently, for test fixtures and
// programmatic construction. Builder is not thread-safe; use one
// Builder per goroutine.
type Builder struct {
	identity   string
	labels     []string
	properties map[string]value.Value
}

// NewBuilder starts building a Subject with the given identity.
func NewBuilder(identity string) *Builder {
	return &Builder{
		identity:   identity,
		properties: make(map[string]value.Value),
	}
}

// Label adds a label to the subject under construction.
func (b *Builder) Label(label string) *Builder {
	b.labels = append(b.labels, label)
	return b
}

// Labels adds multiple labels to the subject under construction.
func (b *Builder) Labels(labels ...string) *Builder {
	b.labels = append(b.labels, labels...)
	return b
}

// Property sets a property on the subject under construction.
func (b *Builder) Property(key string, v value.Value) *Builder {
	b.properties[key] = v
	return b
}

// Build returns the constructed Subject. The builder may be reused
// afterward; later mutations do not affect previously built subjects.
func (b *Builder) Build() Subject {
	s := New(b.identity)
	for _, l := range b.labels {
		s = s.WithLabel(l)
	}
	for k, v := range b.properties {
		s = s.WithProperty(k, v)
	}
	return s
}
