// Package patterngraph classifies patterns by shape and collects them
// into an identity-keyed graph.
//
// A GraphClassifier decides, for any Pattern[V], which of five
// categories it belongs to (node, relationship, annotation, walk, or a
// caller-tagged "other"). A PatternGraph inserts patterns under that
// classification into one of six collections, reconciling identity
// collisions under a caller-selected policy and recording anything that
// cannot be reconciled as a conflict rather than dropping it.
package patterngraph
