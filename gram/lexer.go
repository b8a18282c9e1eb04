package gram

import (
	"strconv"
	"strings"
	"unicode"

	"golang.org/x/text/unicode/norm"

	"github.com/relateby/pattern-go/gram/location"
)

// lexer turns gram source text into tokens. It tracks line, column
// (counting runes), and byte offset so every token and error carries a
// precise location.
type lexer struct {
	src      []byte
	pos      int
	line     int
	col      int
	lastRune rune
}

func newLexer(src []byte) *lexer {
	return &lexer{src: src, pos: 0, line: 1, col: 1}
}

func (l *lexer) here() location.Position {
	return location.Position{Line: l.line, Column: l.col, Byte: l.pos}
}

func (l *lexer) eof() bool { return l.pos >= len(l.src) }

func (l *lexer) peekByte() byte {
	if l.eof() {
		return 0
	}
	return l.src[l.pos]
}

func (l *lexer) peekAt(offset int) byte {
	if l.pos+offset >= len(l.src) {
		return 0
	}
	return l.src[l.pos+offset]
}

func (l *lexer) advance() byte {
	b := l.src[l.pos]
	l.pos++
	if b == '\n' {
		l.line++
		l.col = 1
	} else if b&0xC0 != 0x80 {
		// UTF-8 continuation bytes do not start a new rune.
		l.col++
	}
	return b
}

func (l *lexer) skipWhitespaceAndComments() {
	for !l.eof() {
		b := l.peekByte()
		switch {
		case b == ' ' || b == '\t' || b == '\r' || b == '\n':
			l.advance()
		case b == '/' && l.peekAt(1) == '/':
			for !l.eof() && l.peekByte() != '\n' {
				l.advance()
			}
		default:
			return
		}
	}
}

func isIdentStart(b byte) bool {
	return b == '_' || unicode.IsLetter(rune(b))
}

func isIdentCont(b byte) bool {
	return b == '_' || b == '-' || unicode.IsLetter(rune(b)) || unicode.IsDigit(rune(b))
}

func isDigit(b byte) bool { return b >= '0' && b <= '9' }

// next returns the next token, or a *Error if the source text is
// malformed at the current position.
func (l *lexer) next() (token, error) {
	l.skipWhitespaceAndComments()
	if l.eof() {
		return token{kind: tokEOF, span: location.Span{Start: l.here(), End: l.here()}}, nil
	}

	start := l.here()
	b := l.peekByte()

	switch b {
	case '(':
		l.advance()
		return l.simple(tokLParen, "(", start), nil
	case ')':
		l.advance()
		return l.simple(tokRParen, ")", start), nil
	case '[':
		l.advance()
		return l.simple(tokLBracket, "[", start), nil
	case ']':
		l.advance()
		return l.simple(tokRBracket, "]", start), nil
	case '{':
		l.advance()
		return l.simple(tokLBrace, "{", start), nil
	case '}':
		l.advance()
		return l.simple(tokRBrace, "}", start), nil
	case ':':
		l.advance()
		return l.simple(tokColon, ":", start), nil
	case '|':
		l.advance()
		return l.simple(tokPipe, "|", start), nil
	case ',':
		l.advance()
		return l.simple(tokComma, ",", start), nil
	case '@':
		l.advance()
		return l.simple(tokAt, "@", start), nil
	case '"':
		return l.lexQuotedString(start)
	case '-':
		if l.peekAt(1) == '-' && l.peekAt(2) == '>' {
			l.advance()
			l.advance()
			l.advance()
			return l.simple(tokArrow, "-->", start), nil
		}
		if isDigit(l.peekAt(1)) {
			return l.lexNumber(start)
		}
		// A lone dash that isn't the start of a negative number is one
		// shaft of a decorated arrow: "-[:TYPE {..}]->" or the closing
		// dash of "<-[:TYPE {..}]-". The parser assembles the full form
		// token by token.
		l.advance()
		return l.simple(tokDash, "-", start), nil
	case '<':
		if l.peekAt(1) == '-' && l.peekAt(2) == '-' && l.peekAt(3) == '-' && l.peekAt(4) == '>' {
			l.advance()
			l.advance()
			l.advance()
			l.advance()
			l.advance()
			return l.simple(tokArrow, "<-->", start), nil
		}
		if l.peekAt(1) == '-' && l.peekAt(2) == '-' {
			l.advance()
			l.advance()
			l.advance()
			return l.simple(tokArrow, "<--", start), nil
		}
		if l.peekAt(1) == '-' {
			l.advance()
			return l.simple(tokLt, "<", start), nil
		}
		return token{}, newError(KindSyntax, point(start), "arrow", l.snippetFrom(start))
	case '>':
		l.advance()
		return l.simple(tokGt, ">", start), nil
	case '~':
		if l.peekAt(1) == '~' {
			l.advance()
			l.advance()
			return l.simple(tokArrow, "~~", start), nil
		}
		if l.peekAt(1) == '>' {
			l.advance()
			l.advance()
			return l.simple(tokArrow, "~>", start), nil
		}
		return token{}, newError(KindSyntax, point(start), "arrow", l.snippetFrom(start))
	case '.':
		if l.peekAt(1) == '.' {
			l.advance()
			l.advance()
			return l.simple(tokRangeDots, "..", start), nil
		}
		return token{}, newError(KindSyntax, point(start), "'..' or a number", l.snippetFrom(start))
	}

	if isDigit(b) {
		return l.lexNumber(start)
	}
	if isIdentStart(b) {
		return l.lexIdentifierOrTaggedString(start)
	}

	return token{}, newError(KindUnexpectedInput, point(start), "a token", l.snippetFrom(start))
}

func (l *lexer) simple(kind tokenKind, text string, start location.Position) token {
	return token{kind: kind, text: text, span: location.Span{Start: start, End: l.here()}}
}

func point(p location.Position) location.Span { return location.Span{Start: p, End: p} }

// snippetFrom returns up to maxFoundLen bytes starting at the current
// failure point, for use in an Error's Found field.
func (l *lexer) snippetFrom(start location.Position) string {
	from := start.Byte
	if from < 0 || from > len(l.src) {
		from = l.pos
	}
	end := from
	count := 0
	for end < len(l.src) && count < maxFoundLen {
		end++
		count++
	}
	return string(l.src[from:end])
}

func (l *lexer) lexNumber(start location.Position) (token, error) {
	var sb strings.Builder
	if l.peekByte() == '-' || l.peekByte() == '+' {
		sb.WriteByte(l.advance())
	}
	if !isDigit(l.peekByte()) {
		return token{}, newError(KindInvalidValue, point(start), "a digit", l.snippetFrom(start))
	}
	for isDigit(l.peekByte()) {
		sb.WriteByte(l.advance())
	}

	isDecimal := false
	if l.peekByte() == '.' && isDigit(l.peekAt(1)) {
		isDecimal = true
		sb.WriteByte(l.advance())
		for isDigit(l.peekByte()) {
			sb.WriteByte(l.advance())
		}
	}
	if l.peekByte() == 'e' || l.peekByte() == 'E' {
		isDecimal = true
		sb.WriteByte(l.advance())
		if l.peekByte() == '+' || l.peekByte() == '-' {
			sb.WriteByte(l.advance())
		}
		if !isDigit(l.peekByte()) {
			return token{}, newError(KindInvalidValue, point(start), "exponent digits", l.snippetFrom(start))
		}
		for isDigit(l.peekByte()) {
			sb.WriteByte(l.advance())
		}
	}

	kind := tokInteger
	if isDecimal {
		kind = tokDecimal
	}
	return token{kind: kind, text: sb.String(), span: location.Span{Start: start, End: l.here()}}, nil
}

func (l *lexer) lexIdentifierOrTaggedString(start location.Position) (token, error) {
	var sb strings.Builder
	for !l.eof() && isIdentCont(l.peekByte()) {
		sb.WriteByte(l.advance())
	}
	ident := norm.NFC.String(sb.String())

	if l.peekByte() == '"' && l.peekAt(1) == '"' && l.peekAt(2) == '"' {
		return l.lexTaggedString(start, ident)
	}
	return token{kind: tokIdentifier, text: ident, span: location.Span{Start: start, End: l.here()}}, nil
}

func (l *lexer) lexQuotedString(start location.Position) (token, error) {
	l.advance() // opening quote
	var sb strings.Builder
	for {
		if l.eof() {
			return token{}, newError(KindUnmatchedDelimiter, point(start), "closing '\"'", l.snippetFrom(start))
		}
		b := l.peekByte()
		if b == '"' {
			l.advance()
			break
		}
		if b == '\\' {
			l.advance()
			if l.eof() {
				return token{}, newError(KindUnmatchedDelimiter, point(start), "escape sequence", l.snippetFrom(start))
			}
			esc := l.advance()
			switch esc {
			case '"':
				sb.WriteByte('"')
			case '\\':
				sb.WriteByte('\\')
			case 'n':
				sb.WriteByte('\n')
			case 't':
				sb.WriteByte('\t')
			default:
				return token{}, newError(KindInvalidValue, point(start), `one of \" \\ \n \t`, string(esc))
			}
			continue
		}
		sb.WriteByte(l.advance())
	}
	return token{kind: tokString, text: sb.String(), span: location.Span{Start: start, End: l.here()}}, nil
}

func (l *lexer) lexTaggedString(start location.Position, tag string) (token, error) {
	l.advance()
	l.advance()
	l.advance()
	var sb strings.Builder
	for {
		if l.eof() {
			return token{}, newError(KindUnmatchedDelimiter, point(start), "closing '\"\"\"'", l.snippetFrom(start))
		}
		if l.peekByte() == '"' && l.peekAt(1) == '"' && l.peekAt(2) == '"' {
			l.advance()
			l.advance()
			l.advance()
			break
		}
		sb.WriteByte(l.advance())
	}
	return token{kind: tokTaggedString, text: sb.String(), tag: tag, span: location.Span{Start: start, End: l.here()}}, nil
}

// parseIntegerText and parseDecimalText convert lexed number text into
// Go numeric types, surfaced here so the parser and validator share one
// error path for malformed numeric literals.
func parseIntegerText(text string) (int64, error) {
	return strconv.ParseInt(text, 10, 64)
}

func parseDecimalText(text string) (float64, error) {
	return strconv.ParseFloat(text, 64)
}
