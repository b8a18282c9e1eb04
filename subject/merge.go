package subject

import "github.com/relateby/pattern-go/value"

// LabelMergeStrategy selects how two subjects' label sets combine.
type LabelMergeStrategy int

const (
	// UnionLabels keeps every label from both subjects.
	UnionLabels LabelMergeStrategy = iota
	// IntersectLabels keeps only labels present on both subjects.
	IntersectLabels
	// ReplaceLabels keeps only the incoming subject's labels.
	ReplaceLabels
)

// PropertyMergeStrategy selects how two subjects' property maps
// combine.
type PropertyMergeStrategy int

const (
	// ReplaceProperties keeps only the incoming subject's properties.
	ReplaceProperties PropertyMergeStrategy = iota
	// ShallowMergeProperties takes the union of keys; for a key
	// present on both sides the incoming value wins outright.
	ShallowMergeProperties
	// DeepMergeProperties takes the union of keys; for a key present
	// on both sides where both values are Map, the maps are merged
	// key-by-key (incoming wins per-key); otherwise the incoming value
	// wins, same as ShallowMergeProperties.
	DeepMergeProperties
)

// MergeStrategy pairs a label-merge and a property-merge strategy, the
// shape reconcile.Merge's mergeValue function needs to combine two
// Subject occurrences sharing an identity.
type MergeStrategy struct {
	Labels     LabelMergeStrategy
	Properties PropertyMergeStrategy
}

// MergeValue returns a function suitable as the mergeValue argument to
// reconcile.Merge[Subject]: it combines existing and incoming under
// strategy, keeping incoming's identity.
func MergeValue(strategy MergeStrategy) func(existing, incoming Subject) Subject {
	return func(existing, incoming Subject) Subject {
		out := New(incoming.identity)
		for _, label := range mergeLabels(strategy.Labels, existing, incoming) {
			out = out.WithLabel(label)
		}
		for k, v := range mergeProperties(strategy.Properties, existing, incoming) {
			out = out.WithProperty(k, v)
		}
		return out
	}
}

func mergeLabels(strategy LabelMergeStrategy, existing, incoming Subject) []string {
	switch strategy {
	case ReplaceLabels:
		return incoming.Labels()
	case IntersectLabels:
		var out []string
		for _, l := range incoming.Labels() {
			if existing.HasLabel(l) {
				out = append(out, l)
			}
		}
		return out
	default: // UnionLabels
		seen := make(map[string]struct{})
		var out []string
		for _, l := range existing.Labels() {
			seen[l] = struct{}{}
			out = append(out, l)
		}
		for _, l := range incoming.Labels() {
			if _, ok := seen[l]; ok {
				continue
			}
			seen[l] = struct{}{}
			out = append(out, l)
		}
		return out
	}
}

func mergeProperties(strategy PropertyMergeStrategy, existing, incoming Subject) map[string]value.Value {
	if strategy == ReplaceProperties {
		return incoming.Properties()
	}

	out := existing.Properties()
	for k, incomingValue := range incoming.Properties() {
		if strategy == DeepMergeProperties {
			if existingValue, ok := out[k]; ok {
				if merged, ok := mergeMapValues(existingValue, incomingValue); ok {
					out[k] = merged
					continue
				}
			}
		}
		out[k] = incomingValue
	}
	return out
}

// mergeMapValues merges two Map values key-by-key, incoming winning per
// key, returning false when either side is not a Map.
func mergeMapValues(existing, incoming value.Value) (value.Value, bool) {
	existingMap, ok := existing.AsMap()
	if !ok {
		return value.Value{}, false
	}
	incomingMap, ok := incoming.AsMap()
	if !ok {
		return value.Value{}, false
	}
	merged := make(map[string]value.Value, len(existingMap)+len(incomingMap))
	for k, v := range existingMap {
		merged[k] = v
	}
	for k, v := range incomingMap {
		merged[k] = v
	}
	return value.NewMap(merged), true
}
