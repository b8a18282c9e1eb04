package gram

import (
	"fmt"

	"github.com/relateby/pattern-go/gram/location"
)

// Kind is a closed, stable taxonomy of gram failure modes. Callers may
// match on Kind across releases; the set of values never grows without
// a documented release note.
type Kind int

const (
	// KindSyntax is a general grammar violation.
	KindSyntax Kind = iota
	// KindUnmatchedDelimiter is an unclosed '(', '[', '{', or a quote.
	KindUnmatchedDelimiter
	// KindInvalidValue is a malformed literal (number, string, range,
	// measurement, …).
	KindInvalidValue
	// KindUnexpectedInput is trailing or out-of-place input with no
	// more specific diagnosis.
	KindUnexpectedInput
	// KindInternal indicates a parser invariant failure; this should
	// never occur for any input and signals a bug in the parser
	// itself rather than a problem with the source text.
	KindInternal
)

// String returns a lowercase label for k.
func (k Kind) String() string {
	switch k {
	case KindSyntax:
		return "syntax"
	case KindUnmatchedDelimiter:
		return "unmatched-delimiter"
	case KindInvalidValue:
		return "invalid-value"
	case KindUnexpectedInput:
		return "unexpected-input"
	case KindInternal:
		return "internal"
	default:
		return "unknown"
	}
}

// maxFoundLen bounds the length of the Found snippet carried on an
// Error, per the external interface contract (a "found" snippet of at
// most ~20 characters).
const maxFoundLen = 20

// Error is the gram package's sole error type. Parse and Validate never
// surface a lexer or combinator library's own error type; every
// failure is reported as an *Error.
type Error struct {
	Kind     Kind
	Location location.Span
	Expected string
	Found    string
	Context  []string
}

func (e *Error) Error() string {
	msg := fmt.Sprintf("gram: %s at %s: expected %s, found %q", e.Kind, e.Location, e.Expected, e.Found)
	for _, c := range e.Context {
		msg += " (in " + c + ")"
	}
	return msg
}

func newError(kind Kind, loc location.Span, expected, found string, context ...string) *Error {
	if len(found) > maxFoundLen {
		found = found[:maxFoundLen]
	}
	return &Error{Kind: kind, Location: loc, Expected: expected, Found: found, Context: context}
}
