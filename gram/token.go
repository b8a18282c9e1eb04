package gram

import "github.com/relateby/pattern-go/gram/location"

// tokenKind enumerates the lexical categories the gram lexer produces.
type tokenKind int

const (
	tokEOF tokenKind = iota
	tokLParen
	tokRParen
	tokLBracket
	tokRBracket
	tokLBrace
	tokRBrace
	tokColon
	tokPipe
	tokComma
	tokAt
	tokArrow
	tokIdentifier
	tokString
	tokTaggedString
	tokInteger
	tokDecimal
	tokRangeDots
	tokDash
	tokLt
	tokGt
)

func (k tokenKind) String() string {
	switch k {
	case tokEOF:
		return "end of input"
	case tokLParen:
		return "'('"
	case tokRParen:
		return "')'"
	case tokLBracket:
		return "'['"
	case tokRBracket:
		return "']'"
	case tokLBrace:
		return "'{'"
	case tokRBrace:
		return "'}'"
	case tokColon:
		return "':'"
	case tokPipe:
		return "'|'"
	case tokComma:
		return "','"
	case tokAt:
		return "'@'"
	case tokArrow:
		return "arrow"
	case tokIdentifier:
		return "identifier"
	case tokString:
		return "string"
	case tokTaggedString:
		return "tagged string"
	case tokInteger:
		return "integer"
	case tokDecimal:
		return "decimal"
	case tokRangeDots:
		return "'..'"
	case tokDash:
		return "'-'"
	case tokLt:
		return "'<'"
	case tokGt:
		return "'>'"
	default:
		return "token"
	}
}

// token is one lexical unit, its raw text, and its source span. For
// tokString, text is the decoded (escape-processed) content. For
// tokTaggedString, tag holds the prefix identifier.
type token struct {
	kind tokenKind
	text string
	tag  string
	span location.Span
}
