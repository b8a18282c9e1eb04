// Package value implements the tagged-union property payload used
// throughout the pattern and gram packages.
//
// A [Value] is one of ten variants: Integer, Decimal, Boolean, String,
// Symbol, TaggedString, Array, Map, Range, and Measurement. Values are
// immutable after construction: Array and Map variants are defensively
// cloned at the construction boundary on the way in and on the way out,
// so no caller can mutate state a Value holds internally.
//
// Equality and hashability are conditional: a Decimal carrying NaN does
// not participate in Equal, and any Value transitively containing such a
// Decimal is not Hashable. See [Value.Equal] and [Value.Hashable].
package value
