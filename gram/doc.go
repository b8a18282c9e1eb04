// Package gram implements the gram textual notation: a parser that
// turns gram source text into a sequence of Pattern[subject.Subject]
// values, and a serializer that renders patterns back to gram text.
//
// The parser never surfaces a combinator or lexer library's own error
// types; every fallible operation returns a *gram.Error carrying a
// closed Kind, a source location, and a description of what was
// expected versus what was found. Validate performs a syntax-only pass,
// lexing and checking delimiter/value-grammar balance without building
// any Pattern, for callers that only need to know whether input is
// well-formed.
package gram
