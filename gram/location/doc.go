// Package location provides source positions and spans for gram parser
// diagnostics: a line/column/byte-offset Position and a half-open Span
// built from a pair of Positions.
package location
