package reconcile

// ElementMergeStrategy selects how two patterns' child lists combine
// under a Merge policy.
type ElementMergeStrategy int

const (
	// ReplaceElements keeps only the incoming pattern's elements.
	ReplaceElements ElementMergeStrategy = iota
	// AppendElements concatenates existing then incoming elements.
	AppendElements
	// UnionElements concatenates then deduplicates by identity,
	// keeping the first occurrence of each identity.
	UnionElements
)

type kind int

const (
	lastWriteWins kind = iota
	firstWriteWins
	merge
	strict
)

// Policy is a reconciliation policy over value type V: LastWriteWins,
// FirstWriteWins, Merge (with an element strategy and a value-merge
// function), or Strict (with an equality function).
type Policy[V any] struct {
	kind            kind
	elementStrategy ElementMergeStrategy
	mergeValue      func(existing, incoming V) V
	identity        func(V) string
	equal           func(a, b V) bool
}

// LastWriteWins returns a policy that always keeps the incoming
// occurrence.
func LastWriteWins[V any]() Policy[V] {
	return Policy[V]{kind: lastWriteWins}
}

// FirstWriteWins returns a policy that always keeps the existing
// occurrence.
func FirstWriteWins[V any]() Policy[V] {
	return Policy[V]{kind: firstWriteWins}
}

// Strict returns a policy that fails whenever the existing and incoming
// occurrences differ, as judged by equal.
func Strict[V any](equal func(a, b V) bool) Policy[V] {
	return Policy[V]{kind: strict, equal: equal}
}

// MergeOption configures a Merge policy.
type MergeOption[V any] func(*Policy[V])

// WithIdentity supplies the identity function a UnionElements element
// strategy needs to deduplicate by.
func WithIdentity[V any](identity func(V) string) MergeOption[V] {
	return func(p *Policy[V]) { p.identity = identity }
}

// Merge returns a policy that combines values with mergeValue and
// elements per elementStrategy. Merge never fails.
//
// elementStrategy == UnionElements requires WithIdentity; Merge panics
// if that requirement is not met, since it is a caller configuration
// error rather than a data-dependent failure.
func Merge[V any](elementStrategy ElementMergeStrategy, mergeValue func(existing, incoming V) V, opts ...MergeOption[V]) Policy[V] {
	p := Policy[V]{kind: merge, elementStrategy: elementStrategy, mergeValue: mergeValue}
	for _, opt := range opts {
		opt(&p)
	}
	if elementStrategy == UnionElements && p.identity == nil {
		panic("reconcile.Merge: UnionElements requires WithIdentity")
	}
	return p
}
