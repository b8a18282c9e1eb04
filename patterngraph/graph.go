package patterngraph

import (
	"log/slog"

	"github.com/relateby/pattern-go/pattern"
	"github.com/relateby/pattern-go/reconcile"
)

// otherEntry pairs a GOther pattern with the classifier tag it was
// classified under.
type otherEntry[Extra, V any] struct {
	extra   Extra
	pattern pattern.Pattern[V]
}

// PatternGraph is an identity-keyed collection of classified patterns.
// Every pattern merged into a PatternGraph ends up in exactly one of
// six slots: nodes, relationships, walks, annotations, other, or
// conflicts; nothing is ever silently dropped.
//
// PatternGraph values are immutable: Merge and MergeWithPolicy return a
// new graph rather than mutating the receiver.
type PatternGraph[Extra, V any] struct {
	nodes         map[string]pattern.Pattern[V]
	relationships map[string]pattern.Pattern[V]
	walks         map[string]pattern.Pattern[V]
	annotations   map[string]pattern.Pattern[V]
	other         map[string]otherEntry[Extra, V]
	conflicts     map[string][]pattern.Pattern[V]

	classifier GraphClassifier[Extra, V]
	identify   func(V) string
	policy     reconcile.Policy[V]
	logger     *slog.Logger
}

// New returns an empty PatternGraph configured with classifier and
// identify. The default reconciliation policy is
// reconcile.LastWriteWins; override it with [WithPolicy].
func New[Extra, V any](classifier GraphClassifier[Extra, V], identify func(V) string, opts ...Option[Extra, V]) PatternGraph[Extra, V] {
	cfg := config[Extra, V]{policy: reconcile.LastWriteWins[V]()}
	for _, opt := range opts {
		opt(&cfg)
	}
	return PatternGraph[Extra, V]{
		nodes:         make(map[string]pattern.Pattern[V]),
		relationships: make(map[string]pattern.Pattern[V]),
		walks:         make(map[string]pattern.Pattern[V]),
		annotations:   make(map[string]pattern.Pattern[V]),
		other:         make(map[string]otherEntry[Extra, V]),
		conflicts:     make(map[string][]pattern.Pattern[V]),
		classifier:    classifier,
		identify:      identify,
		policy:        cfg.policy,
		logger:        cfg.logger,
	}
}

// FromPatterns returns a new PatternGraph built by merging every
// pattern in ps, in order, using the graph's configured default policy.
func FromPatterns[Extra, V any](classifier GraphClassifier[Extra, V], identify func(V) string, ps []pattern.Pattern[V], opts ...Option[Extra, V]) PatternGraph[Extra, V] {
	g := New(classifier, identify, opts...)
	return g.mergeAll(ps, g.policy)
}

// FromPatternsWithPolicy is like FromPatterns but merges under policy
// instead of the graph's configured default.
func FromPatternsWithPolicy[Extra, V any](classifier GraphClassifier[Extra, V], identify func(V) string, policy reconcile.Policy[V], ps []pattern.Pattern[V], opts ...Option[Extra, V]) PatternGraph[Extra, V] {
	g := New(classifier, identify, opts...)
	return g.mergeAll(ps, policy)
}

// Merge returns a new graph with p inserted under the graph's
// configured default policy.
func (g PatternGraph[Extra, V]) Merge(p pattern.Pattern[V]) PatternGraph[Extra, V] {
	return g.MergeWithPolicy(p, g.policy)
}

// MergeWithPolicy returns a new graph with p inserted under policy,
// overriding the graph's configured default for this call only.
func (g PatternGraph[Extra, V]) MergeWithPolicy(p pattern.Pattern[V], policy reconcile.Policy[V]) PatternGraph[Extra, V] {
	ng := g.clone()
	ng.insertOne(p, policy)
	return ng
}

func (g PatternGraph[Extra, V]) mergeAll(ps []pattern.Pattern[V], policy reconcile.Policy[V]) PatternGraph[Extra, V] {
	ng := g.clone()
	for _, p := range ps {
		ng.insertOne(p, policy)
	}
	return ng
}

// clone produces a deep-enough copy of g: every collection map is
// copied so inserts against the clone never mutate g.
func (g PatternGraph[Extra, V]) clone() PatternGraph[Extra, V] {
	ng := g
	ng.nodes = cloneSimple(g.nodes)
	ng.relationships = cloneSimple(g.relationships)
	ng.walks = cloneSimple(g.walks)
	ng.annotations = cloneSimple(g.annotations)

	ng.other = make(map[string]otherEntry[Extra, V], len(g.other))
	for k, v := range g.other {
		ng.other[k] = v
	}

	ng.conflicts = make(map[string][]pattern.Pattern[V], len(g.conflicts))
	for k, v := range g.conflicts {
		cp := make([]pattern.Pattern[V], len(v))
		copy(cp, v)
		ng.conflicts[k] = cp
	}
	return ng
}

func cloneSimple[V any](m map[string]pattern.Pattern[V]) map[string]pattern.Pattern[V] {
	out := make(map[string]pattern.Pattern[V], len(m))
	for k, v := range m {
		out[k] = v
	}
	return out
}

// insertOne dispatches p to its slot by classification, recursively
// merging any pattern it contains first. It mutates g's own maps
// in-place; callers must have already cloned g via [PatternGraph.clone].
func (g *PatternGraph[Extra, V]) insertOne(p pattern.Pattern[V], policy reconcile.Policy[V]) {
	class := g.classifier.Classify(p)
	key := g.identify(p.Value())

	switch class.Kind {
	case GNode:
		g.insertKeyed(g.nodes, key, p, policy)

	case GRelationship:
		if src, ok := p.GetElement(0); ok {
			g.insertOne(src, policy)
		}
		if tgt, ok := p.GetElement(1); ok {
			g.insertOne(tgt, policy)
		}
		g.insertKeyed(g.relationships, key, p, policy)

	case GAnnotation:
		if inner, ok := p.GetElement(0); ok {
			g.insertOne(inner, policy)
		}
		g.insertKeyed(g.annotations, key, p, policy)

	case GWalk:
		for _, rel := range p.Elements() {
			g.insertOne(rel, policy)
		}
		g.insertKeyed(g.walks, key, p, policy)

	case GOther:
		g.insertOther(key, class.Extra, p, policy)
	}
}

// insertKeyed inserts incoming at key in dst, reconciling against any
// existing occupant under policy. A reconciliation failure pushes
// incoming onto conflicts[key] instead of replacing dst[key].
func (g *PatternGraph[Extra, V]) insertKeyed(dst map[string]pattern.Pattern[V], key string, incoming pattern.Pattern[V], policy reconcile.Policy[V]) {
	existing, collided := dst[key]
	if !collided {
		dst[key] = incoming
		return
	}
	merged, err := reconcile.Reconcile(policy, existing, incoming)
	if err != nil {
		g.recordConflict(key, incoming)
		return
	}
	dst[key] = merged
	if g.logger != nil {
		g.logger.Debug("patterngraph: reconciled collision", "identity", key)
	}
}

func (g *PatternGraph[Extra, V]) insertOther(key string, extra Extra, incoming pattern.Pattern[V], policy reconcile.Policy[V]) {
	existing, collided := g.other[key]
	if !collided {
		g.other[key] = otherEntry[Extra, V]{extra: extra, pattern: incoming}
		return
	}
	merged, err := reconcile.Reconcile(policy, existing.pattern, incoming)
	if err != nil {
		g.recordConflict(key, incoming)
		return
	}
	g.other[key] = otherEntry[Extra, V]{extra: extra, pattern: merged}
}

func (g *PatternGraph[Extra, V]) recordConflict(key string, incoming pattern.Pattern[V]) {
	g.conflicts[key] = append(g.conflicts[key], incoming)
	if g.logger != nil {
		g.logger.Debug("patterngraph: unreconcilable conflict", "identity", key)
	}
}
