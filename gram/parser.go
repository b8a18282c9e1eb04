package gram

import (
	"github.com/google/uuid"

	"github.com/relateby/pattern-go/gram/location"
	"github.com/relateby/pattern-go/internal/stack"
	"github.com/relateby/pattern-go/pattern"
	"github.com/relateby/pattern-go/subject"
	"github.com/relateby/pattern-go/value"
)

// parser is a single-pass recursive-descent parser over a token stream
// with one token of lookahead. It never backtracks: every production
// decides what to parse from its current token alone.
type parser struct {
	lex *lexer
	cur token
}

func newParser(src []byte) (*parser, error) {
	p := &parser{lex: newLexer(src)}
	if err := p.advance(); err != nil {
		return nil, err
	}
	return p, nil
}

func (p *parser) advance() error {
	tok, err := p.lex.next()
	if err != nil {
		return err
	}
	p.cur = tok
	return nil
}

func (p *parser) expect(kind tokenKind, expected string) (token, error) {
	if p.cur.kind != kind {
		return token{}, p.errHere(expected)
	}
	t := p.cur
	if err := p.advance(); err != nil {
		return token{}, err
	}
	return t, nil
}

func (p *parser) errHere(expected string) *Error {
	found := p.cur.text
	if found == "" {
		found = p.cur.kind.String()
	}
	return newError(KindSyntax, p.cur.span, expected, found)
}

// Parse reads an entire gram document and returns its top-level
// patterns in order. A relationship chain such as (a)-->(b)-->(c)
// expands into one Pattern per hop. Parsing fails fast on the first
// malformed construct; there is no error-recovery mode.
func Parse(source []byte) ([]pattern.Pattern[subject.Subject], error) {
	p, err := newParser(source)
	if err != nil {
		return nil, err
	}
	var out []pattern.Pattern[subject.Subject]
	for p.cur.kind != tokEOF {
		pats, err := p.parseTopLevel()
		if err != nil {
			return nil, err
		}
		out = append(out, pats...)
	}
	return out, nil
}

func (p *parser) parseTopLevel() ([]pattern.Pattern[subject.Subject], error) {
	switch p.cur.kind {
	case tokAt:
		pat, err := p.parseAnnotation()
		if err != nil {
			return nil, err
		}
		return []pattern.Pattern[subject.Subject]{pat}, nil
	case tokLBracket:
		pat, err := p.parseSubjectPattern()
		if err != nil {
			return nil, err
		}
		return []pattern.Pattern[subject.Subject]{pat}, nil
	case tokLBrace:
		pat, err := p.parseBareRecordPattern()
		if err != nil {
			return nil, err
		}
		return []pattern.Pattern[subject.Subject]{pat}, nil
	case tokLParen:
		first, err := p.parseNode()
		if err != nil {
			return nil, err
		}
		return p.continueChain(first)
	default:
		return nil, p.errHere("a pattern")
	}
}

// parseSingleElement parses exactly one pattern with no arrow-chain
// expansion, for contexts (subject-pattern elements, annotation bodies)
// that hold a single nested pattern rather than a top-level sequence.
func (p *parser) parseSingleElement() (pattern.Pattern[subject.Subject], error) {
	switch p.cur.kind {
	case tokAt:
		return p.parseAnnotation()
	case tokLBracket:
		return p.parseSubjectPattern()
	case tokLBrace:
		return p.parseBareRecordPattern()
	case tokLParen:
		first, err := p.parseNode()
		if err != nil {
			return pattern.Pattern[subject.Subject]{}, err
		}
		chain, err := p.continueChain(first)
		if err != nil {
			return pattern.Pattern[subject.Subject]{}, err
		}
		if len(chain) != 1 {
			return pattern.Pattern[subject.Subject]{}, newError(KindSyntax, p.cur.span, "a single pattern", "a multi-hop relationship chain")
		}
		return chain[0], nil
	default:
		return pattern.Pattern[subject.Subject]{}, p.errHere("a pattern")
	}
}

// continueChain consumes zero or more arrows following an already
// parsed node, producing one relationship Pattern per hop. A bare node
// with no following arrow is returned unchanged as the sole element.
func (p *parser) continueChain(first pattern.Pattern[subject.Subject]) ([]pattern.Pattern[subject.Subject], error) {
	nodes := []pattern.Pattern[subject.Subject]{first}
	var edgeSubjects []subject.Subject
	var swapped []bool

	for {
		matched, edgeSubj, swap, err := p.tryParseArrow()
		if err != nil {
			return nil, err
		}
		if !matched {
			break
		}
		next, err := p.parseNode()
		if err != nil {
			return nil, err
		}
		nodes = append(nodes, next)
		edgeSubjects = append(edgeSubjects, edgeSubj)
		swapped = append(swapped, swap)
	}

	if len(edgeSubjects) == 0 {
		return nodes, nil
	}

	out := make([]pattern.Pattern[subject.Subject], 0, len(edgeSubjects))
	for i, edgeSubj := range edgeSubjects {
		src, tgt := nodes[i], nodes[i+1]
		if swapped[i] {
			src, tgt = nodes[i+1], nodes[i]
		}
		out = append(out, pattern.New(edgeSubj, src, tgt))
	}
	return out, nil
}

// tryParseArrow consumes one arrow (fixed-token or decorated) if the
// current token begins one, reporting whether the left node or the
// right node is the relationship's source.
func (p *parser) tryParseArrow() (matched bool, edgeSubj subject.Subject, swapped bool, err error) {
	switch p.cur.kind {
	case tokArrow:
		text := p.cur.text
		if err := p.advance(); err != nil {
			return false, subject.Subject{}, false, err
		}
		return true, subject.New(""), text == "<--", nil

	case tokDash:
		if err := p.advance(); err != nil {
			return false, subject.Subject{}, false, err
		}
		if _, err := p.expect(tokLBracket, "'['"); err != nil {
			return false, subject.Subject{}, false, err
		}
		subj, err := p.parseDecoration()
		if err != nil {
			return false, subject.Subject{}, false, err
		}
		if _, err := p.expect(tokRBracket, "']'"); err != nil {
			return false, subject.Subject{}, false, err
		}
		if _, err := p.expect(tokDash, "'-'"); err != nil {
			return false, subject.Subject{}, false, err
		}
		if _, err := p.expect(tokGt, "'>'"); err != nil {
			return false, subject.Subject{}, false, err
		}
		return true, subj, false, nil

	case tokLt:
		if err := p.advance(); err != nil {
			return false, subject.Subject{}, false, err
		}
		if _, err := p.expect(tokDash, "'-'"); err != nil {
			return false, subject.Subject{}, false, err
		}
		if _, err := p.expect(tokLBracket, "'['"); err != nil {
			return false, subject.Subject{}, false, err
		}
		subj, err := p.parseDecoration()
		if err != nil {
			return false, subject.Subject{}, false, err
		}
		if _, err := p.expect(tokRBracket, "']'"); err != nil {
			return false, subject.Subject{}, false, err
		}
		if _, err := p.expect(tokDash, "'-'"); err != nil {
			return false, subject.Subject{}, false, err
		}
		return true, subj, true, nil

	default:
		return false, subject.Subject{}, false, nil
	}
}

// parseDecoration reads the ":TYPE1:TYPE2 {props}" content of a
// decorated arrow shaft. The subject it produces carries no identity;
// gram relationship subjects are always anonymous.
func (p *parser) parseDecoration() (subject.Subject, error) {
	if p.cur.kind != tokColon {
		return subject.Subject{}, p.errHere("':'")
	}
	return p.parseSubjectBody(false, false)
}

// parseSubjectBody reads the shared "identifier? (':' label)* record?"
// shape used by node, subject-pattern, and decoration headers. The
// identifier and each label may be bare or a quoted string.
//
// allowIdentity controls whether a leading bare identifier is consumed
// as the subject's identity; syntheticIfAbsent controls whether a
// missing identity is backfilled with a generated uuid (nodes and
// subject-patterns get one so every element is addressable;
// relationship decorations never do).
func (p *parser) parseSubjectBody(allowIdentity, syntheticIfAbsent bool) (subject.Subject, error) {
	var identity string
	if allowIdentity && (p.cur.kind == tokIdentifier || p.cur.kind == tokString) {
		identity = p.cur.text
		if err := p.advance(); err != nil {
			return subject.Subject{}, err
		}
	}
	if identity == "" && syntheticIfAbsent {
		identity = uuid.New().String()
	}

	subj := subject.New(identity)
	for p.cur.kind == tokColon {
		if err := p.advance(); err != nil {
			return subject.Subject{}, err
		}
		if p.cur.kind != tokIdentifier && p.cur.kind != tokString {
			return subject.Subject{}, p.errHere("label")
		}
		label := p.cur.text
		if err := p.advance(); err != nil {
			return subject.Subject{}, err
		}
		subj = subj.WithLabel(label)
	}

	if p.cur.kind == tokLBrace {
		record, err := p.parseRecord()
		if err != nil {
			return subject.Subject{}, err
		}
		for k, v := range record {
			subj = subj.WithProperty(k, v)
		}
	}
	return subj, nil
}

// parseNode reads "(" subject-body? ")". An empty "()" is an anonymous
// node and receives a generated identity.
func (p *parser) parseNode() (pattern.Pattern[subject.Subject], error) {
	if _, err := p.expect(tokLParen, "'('"); err != nil {
		return pattern.Pattern[subject.Subject]{}, err
	}
	subj, err := p.parseSubjectBody(true, true)
	if err != nil {
		return pattern.Pattern[subject.Subject]{}, err
	}
	if _, err := p.expect(tokRParen, "')'"); err != nil {
		return pattern.Pattern[subject.Subject]{}, err
	}
	return pattern.Of(subj), nil
}

// parseSubjectPattern reads "[" subject-body? ("|" element ("," element)*)? "]".
func (p *parser) parseSubjectPattern() (pattern.Pattern[subject.Subject], error) {
	if _, err := p.expect(tokLBracket, "'['"); err != nil {
		return pattern.Pattern[subject.Subject]{}, err
	}

	subj, err := p.parseSubjectBody(true, true)
	if err != nil {
		return pattern.Pattern[subject.Subject]{}, err
	}

	var elements []pattern.Pattern[subject.Subject]
	if p.cur.kind == tokPipe {
		if err := p.advance(); err != nil {
			return pattern.Pattern[subject.Subject]{}, err
		}
		for {
			el, err := p.parseSingleElement()
			if err != nil {
				return pattern.Pattern[subject.Subject]{}, err
			}
			elements = append(elements, el)
			if p.cur.kind == tokComma {
				if err := p.advance(); err != nil {
					return pattern.Pattern[subject.Subject]{}, err
				}
				continue
			}
			break
		}
	}

	if _, err := p.expect(tokRBracket, "']'"); err != nil {
		return pattern.Pattern[subject.Subject]{}, err
	}
	return pattern.New(subj, elements...), nil
}

// parseAnnotation reads "@" identifier pattern, wrapping the inner
// pattern in a single-element Pattern labeled with the annotation key.
func (p *parser) parseAnnotation() (pattern.Pattern[subject.Subject], error) {
	if _, err := p.expect(tokAt, "'@'"); err != nil {
		return pattern.Pattern[subject.Subject]{}, err
	}
	keyTok, err := p.expect(tokIdentifier, "annotation key")
	if err != nil {
		return pattern.Pattern[subject.Subject]{}, err
	}
	inner, err := p.parseSingleElement()
	if err != nil {
		return pattern.Pattern[subject.Subject]{}, err
	}
	subj := subject.New(uuid.New().String()).WithLabel(keyTok.text)
	return pattern.New(subj, inner), nil
}

// parseBareRecordPattern reads a top-level "{...}" with no enclosing
// node or subject-pattern syntax: a record standing alone as a subject's
// property set on a freshly identified, labelless atomic pattern.
func (p *parser) parseBareRecordPattern() (pattern.Pattern[subject.Subject], error) {
	record, err := p.parseRecord()
	if err != nil {
		return pattern.Pattern[subject.Subject]{}, err
	}
	subj := subject.New(uuid.New().String())
	for k, v := range record {
		subj = subj.WithProperty(k, v)
	}
	return pattern.Of(subj), nil
}

func (p *parser) parseRecord() (map[string]value.Value, error) {
	if _, err := p.expect(tokLBrace, "'{'"); err != nil {
		return nil, err
	}
	m := make(map[string]value.Value)
	if p.cur.kind != tokRBrace {
		for {
			var key string
			switch p.cur.kind {
			case tokIdentifier:
				key = p.cur.text
				if err := p.advance(); err != nil {
					return nil, err
				}
			case tokString:
				key = p.cur.text
				if err := p.advance(); err != nil {
					return nil, err
				}
			default:
				return nil, p.errHere("a property key")
			}
			if _, err := p.expect(tokColon, "':'"); err != nil {
				return nil, err
			}
			v, err := p.parseValue()
			if err != nil {
				return nil, err
			}
			m[key] = v
			if p.cur.kind == tokComma {
				if err := p.advance(); err != nil {
					return nil, err
				}
				continue
			}
			break
		}
	}
	if _, err := p.expect(tokRBrace, "'}'"); err != nil {
		return nil, err
	}
	return m, nil
}

func (p *parser) parseArray() (value.Value, error) {
	if _, err := p.expect(tokLBracket, "'['"); err != nil {
		return value.Value{}, err
	}
	var elems []value.Value
	if p.cur.kind != tokRBracket {
		for {
			v, err := p.parseValue()
			if err != nil {
				return value.Value{}, err
			}
			elems = append(elems, v)
			if p.cur.kind == tokComma {
				if err := p.advance(); err != nil {
					return value.Value{}, err
				}
				continue
			}
			break
		}
	}
	if _, err := p.expect(tokRBracket, "']'"); err != nil {
		return value.Value{}, err
	}
	return value.NewArray(elems), nil
}

// parseValue reads one value literal: integer, decimal, boolean,
// string, symbol, tagged string, array, map, range, or measurement.
// Ranges and measurements are only distinguishable from a bare number
// by what follows it, so numeric parsing looks one token ahead.
func (p *parser) parseValue() (value.Value, error) {
	switch p.cur.kind {
	case tokString:
		s := p.cur.text
		if err := p.advance(); err != nil {
			return value.Value{}, err
		}
		return value.NewString(s), nil

	case tokTaggedString:
		tag, content := p.cur.tag, p.cur.text
		if err := p.advance(); err != nil {
			return value.Value{}, err
		}
		return value.NewTaggedString(tag, content), nil

	case tokLBracket:
		return p.parseArray()

	case tokLBrace:
		m, err := p.parseRecord()
		if err != nil {
			return value.Value{}, err
		}
		return value.NewMap(m), nil

	case tokRangeDots:
		return p.parseRangeTail(nil)

	case tokIdentifier:
		switch p.cur.text {
		case "true":
			if err := p.advance(); err != nil {
				return value.Value{}, err
			}
			return value.NewBoolean(true), nil
		case "false":
			if err := p.advance(); err != nil {
				return value.Value{}, err
			}
			return value.NewBoolean(false), nil
		default:
			s := p.cur.text
			if err := p.advance(); err != nil {
				return value.Value{}, err
			}
			return value.NewSymbol(s), nil
		}

	case tokInteger, tokDecimal:
		return p.parseNumericValue()

	default:
		return value.Value{}, p.errHere("a value")
	}
}

func (p *parser) parseNumericValue() (value.Value, error) {
	tok := p.cur
	isDecimal := tok.kind == tokDecimal
	mag, err := numberMagnitude(tok)
	if err != nil {
		return value.Value{}, err
	}
	if err := p.advance(); err != nil {
		return value.Value{}, err
	}

	switch {
	case p.cur.kind == tokRangeDots:
		return p.parseRangeTail(&mag)
	case p.cur.kind == tokIdentifier:
		unit := p.cur.text
		if err := p.advance(); err != nil {
			return value.Value{}, err
		}
		return value.NewMeasurement(unit, mag), nil
	case isDecimal:
		return value.NewDecimal(mag), nil
	default:
		i, err := parseIntegerText(tok.text)
		if err != nil {
			return value.Value{}, newError(KindInvalidValue, tok.span, "an integer", tok.text)
		}
		return value.NewInteger(i), nil
	}
}

func numberMagnitude(tok token) (float64, error) {
	f, err := parseDecimalText(tok.text)
	if err != nil {
		return 0, newError(KindInvalidValue, tok.span, "a number", tok.text)
	}
	return f, nil
}

// parseRangeTail consumes the ".." and optional upper bound of a Range
// literal. lower is nil when the range's lower bound was itself absent
// (a leading ".." with no number before it).
func (p *parser) parseRangeTail(lower *float64) (value.Value, error) {
	if _, err := p.expect(tokRangeDots, "'..'"); err != nil {
		return value.Value{}, err
	}
	var upper *float64
	if p.cur.kind == tokInteger || p.cur.kind == tokDecimal {
		tok := p.cur
		mag, err := numberMagnitude(tok)
		if err != nil {
			return value.Value{}, err
		}
		if err := p.advance(); err != nil {
			return value.Value{}, err
		}
		upper = &mag
	}
	return value.NewRange(lower, upper), nil
}

// Validate performs a syntax-only pass: it tokenizes the full source
// and checks paren/bracket/brace balance without constructing any
// Pattern. It is faster than Parse and is intended for callers that
// only need a well-formedness check, such as an editor's live
// diagnostics.
func Validate(source []byte) error {
	lex := newLexer(source)

	var frames stack.Stack[delimFrame]

	for {
		tok, err := lex.next()
		if err != nil {
			return err
		}
		if tok.kind == tokEOF {
			break
		}
		switch tok.kind {
		case tokLParen, tokLBracket, tokLBrace:
			frames.Push(delimFrame{kind: tok.kind, span: tok.span})
		case tokRParen:
			if err := popMatching(&frames, tokLParen, tok); err != nil {
				return err
			}
		case tokRBracket:
			if err := popMatching(&frames, tokLBracket, tok); err != nil {
				return err
			}
		case tokRBrace:
			if err := popMatching(&frames, tokLBrace, tok); err != nil {
				return err
			}
		}
	}

	if top, ok := frames.Peek(); ok {
		return newError(KindUnmatchedDelimiter, top.span, "matching closing delimiter", "end of input")
	}
	return nil
}

func popMatching(frames *stack.Stack[delimFrame], open tokenKind, closeTok token) error {
	top, ok := frames.Pop()
	if !ok || top.kind != open {
		return newError(KindUnmatchedDelimiter, closeTok.span, open.String(), closeTok.kind.String())
	}
	return nil
}

type delimFrame struct {
	kind tokenKind
	span location.Span
}
