// Package patternquery provides read-only navigation over a
// [patterngraph.PatternGraph]: endpoint lookup, incidence, degree, and
// set-based higher navigation (which walks or annotations a node
// belongs to).
//
// A GraphQuery wraps a single PatternGraph snapshot. Because
// PatternGraph values are themselves immutable, a GraphQuery never
// observes a later mutation of the graph it was built from.
package patternquery
