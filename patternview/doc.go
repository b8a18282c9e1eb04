// Package patternview provides GraphView: an immutable snapshot pairing
// a read-only [patternquery.GraphQuery] with its classified elements,
// plus a set of curried transforms (map, filter, fold, paramorphic
// fold, unfold) that consume and produce views without materializing
// an intermediate [patterngraph.PatternGraph] at every step.
//
// A view only becomes a graph again when the caller explicitly asks
// for one via Materialize, which re-runs classification and
// reconciliation over the view's current elements.
package patternview
