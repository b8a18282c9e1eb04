package gram

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLexerTokenStream(t *testing.T) {
	lex := newLexer([]byte(`(a:Label {x: 1}) --> (b)`))
	var kinds []tokenKind
	for {
		tok, err := lex.next()
		require.NoError(t, err)
		kinds = append(kinds, tok.kind)
		if tok.kind == tokEOF {
			break
		}
	}
	assert.Equal(t, []tokenKind{
		tokLParen, tokIdentifier, tokColon, tokIdentifier,
		tokLBrace, tokIdentifier, tokColon, tokInteger, tokRBrace,
		tokRParen, tokArrow, tokLParen, tokIdentifier, tokRParen, tokEOF,
	}, kinds)
}

func TestLexerDecoratedArrowTokens(t *testing.T) {
	lex := newLexer([]byte(`-[:KNOWS]->`))
	var kinds []tokenKind
	for {
		tok, err := lex.next()
		require.NoError(t, err)
		kinds = append(kinds, tok.kind)
		if tok.kind == tokEOF {
			break
		}
	}
	assert.Equal(t, []tokenKind{
		tokDash, tokLBracket, tokColon, tokIdentifier, tokRBracket,
		tokDash, tokGt, tokEOF,
	}, kinds)
}

func TestLexerRejectsStrayDot(t *testing.T) {
	_, err := newLexer([]byte(`.x`)).next()
	require.Error(t, err)
	var gerr *Error
	require.ErrorAs(t, err, &gerr)
	assert.Equal(t, KindSyntax, gerr.Kind)
}

func TestLexerUnterminatedString(t *testing.T) {
	lex := newLexer([]byte(`"abc`))
	_, err := lex.next()
	require.Error(t, err)
	var gerr *Error
	require.ErrorAs(t, err, &gerr)
	assert.Equal(t, KindUnmatchedDelimiter, gerr.Kind)
}

func TestParseNode(t *testing.T) {
	ps, err := Parse([]byte(`(person:Person {name: "Ada"})`))
	require.NoError(t, err)
	require.Len(t, ps, 1)
	subj := ps[0].Value()
	assert.Equal(t, "person", subj.Identity())
	assert.True(t, subj.HasLabel("Person"))
	v, ok := subj.Property("name")
	require.True(t, ok)
	s, _ := v.AsString()
	assert.Equal(t, "Ada", s)
}

func TestParseAnonymousNodeGetsIdentity(t *testing.T) {
	ps, err := Parse([]byte(`()`))
	require.NoError(t, err)
	require.Len(t, ps, 1)
	assert.NotEmpty(t, ps[0].Value().Identity())
}

func TestParsePlainRelationship(t *testing.T) {
	ps, err := Parse([]byte(`(a) --> (b)`))
	require.NoError(t, err)
	require.Len(t, ps, 1)
	rel := ps[0]
	require.Equal(t, 2, rel.Length())
	src, _ := rel.GetElement(0)
	tgt, _ := rel.GetElement(1)
	assert.Equal(t, "a", src.Value().Identity())
	assert.Equal(t, "b", tgt.Value().Identity())
}

func TestParseReversedArrowSwapsEndpoints(t *testing.T) {
	ps, err := Parse([]byte(`(a) <-- (b)`))
	require.NoError(t, err)
	require.Len(t, ps, 1)
	src, _ := ps[0].GetElement(0)
	tgt, _ := ps[0].GetElement(1)
	assert.Equal(t, "b", src.Value().Identity())
	assert.Equal(t, "a", tgt.Value().Identity())
}

func TestParseDecoratedArrow(t *testing.T) {
	ps, err := Parse([]byte(`(a) -[:KNOWS {since: 2020}]-> (b)`))
	require.NoError(t, err)
	require.Len(t, ps, 1)
	rel := ps[0]
	assert.True(t, rel.Value().HasLabel("KNOWS"))
	v, ok := rel.Value().Property("since")
	require.True(t, ok)
	i, _ := v.AsInteger()
	assert.Equal(t, int64(2020), i)
	src, _ := rel.GetElement(0)
	tgt, _ := rel.GetElement(1)
	assert.Equal(t, "a", src.Value().Identity())
	assert.Equal(t, "b", tgt.Value().Identity())
}

func TestParseReverseDecoratedArrowSwapsEndpoints(t *testing.T) {
	ps, err := Parse([]byte(`(a) <-[:KNOWS]- (b)`))
	require.NoError(t, err)
	require.Len(t, ps, 1)
	rel := ps[0]
	src, _ := rel.GetElement(0)
	tgt, _ := rel.GetElement(1)
	assert.Equal(t, "b", src.Value().Identity())
	assert.Equal(t, "a", tgt.Value().Identity())
}

func TestParseRelationshipChainExpandsPerHop(t *testing.T) {
	ps, err := Parse([]byte(`(a) --> (b) --> (c)`))
	require.NoError(t, err)
	require.Len(t, ps, 2)
}

func TestParseSubjectPattern(t *testing.T) {
	ps, err := Parse([]byte(`[trip:Trip | (a), (b)]`))
	require.NoError(t, err)
	require.Len(t, ps, 1)
	assert.Equal(t, "trip", ps[0].Value().Identity())
	require.Equal(t, 2, ps[0].Length())
}

func TestParseAnnotation(t *testing.T) {
	ps, err := Parse([]byte(`@note (a:Person)`))
	require.NoError(t, err)
	require.Len(t, ps, 1)
	assert.True(t, ps[0].Value().HasLabel("note"))
	require.Equal(t, 1, ps[0].Length())
}

func TestParseValueLiterals(t *testing.T) {
	ps, err := Parse([]byte(`(x {
		i: 42,
		d: 1.5,
		b: true,
		s: "hi",
		sym: active,
		arr: [1, 2, 3],
		rng: 1..10,
		m: 5 kg
	})`))
	require.NoError(t, err)
	props := ps[0].Value().Properties()

	i, _ := props["i"].AsInteger()
	assert.Equal(t, int64(42), i)

	d, _ := props["d"].AsDecimal()
	assert.InDelta(t, 1.5, d, 1e-9)

	b, _ := props["b"].AsBoolean()
	assert.True(t, b)

	s, _ := props["s"].AsString()
	assert.Equal(t, "hi", s)

	sym, _ := props["sym"].AsSymbol()
	assert.Equal(t, "active", sym)

	arr, _ := props["arr"].AsArray()
	assert.Len(t, arr, 3)

	lo, hi, _ := props["rng"].AsRange()
	require.NotNil(t, lo)
	require.NotNil(t, hi)
	assert.Equal(t, 1.0, *lo)
	assert.Equal(t, 10.0, *hi)

	unit, mag, _ := props["m"].AsMeasurement()
	assert.Equal(t, "kg", unit)
	assert.Equal(t, 5.0, mag)
}

func TestParseEmptyInput(t *testing.T) {
	ps, err := Parse([]byte(`   // just a comment
	`))
	require.NoError(t, err)
	assert.Empty(t, ps)
}

func TestValidateAcceptsWellFormedInput(t *testing.T) {
	err := Validate([]byte(`(a:Person {name: "Ada"}) --> (b)`))
	assert.NoError(t, err)
}

func TestValidateRejectsUnmatchedDelimiter(t *testing.T) {
	err := Validate([]byte(`(a:Person {name: "Ada"}`))
	require.Error(t, err)
	var gerr *Error
	require.ErrorAs(t, err, &gerr)
	assert.Equal(t, KindUnmatchedDelimiter, gerr.Kind)
}

func TestValidateRejectsMismatchedDelimiter(t *testing.T) {
	err := Validate([]byte(`(a:Person}`))
	require.Error(t, err)
	var gerr *Error
	require.ErrorAs(t, err, &gerr)
	assert.Equal(t, KindUnmatchedDelimiter, gerr.Kind)
}

func TestSerializePlainRelationship(t *testing.T) {
	ps, err := Parse([]byte(`(a) --> (b)`))
	require.NoError(t, err)
	out, err := Serialize(ps)
	require.NoError(t, err)
	assert.Equal(t, "(a)-->(b)", out)
}

func TestSerializeCanonicalizesArrowDirection(t *testing.T) {
	ps, err := Parse([]byte(`(a) <-- (b)`))
	require.NoError(t, err)
	out, err := Serialize(ps)
	require.NoError(t, err)
	assert.Equal(t, "(b)-->(a)", out)
}

func TestSerializeDecoratedArrow(t *testing.T) {
	ps, err := Parse([]byte(`(a) -[:KNOWS {since: 2020}]-> (b)`))
	require.NoError(t, err)
	out, err := Serialize(ps)
	require.NoError(t, err)
	assert.Equal(t, `(a)-[:KNOWS {since: 2020}]->(b)`, out)
}

func TestSerializeSingleElementForcesSubjectPatternForm(t *testing.T) {
	ps, err := Parse([]byte(`[trip:Trip | (a)]`))
	require.NoError(t, err)
	out, err := Serialize(ps)
	require.NoError(t, err)
	assert.Equal(t, "[trip:Trip | (a)]", out)
}

func TestRoundTripSemantic(t *testing.T) {
	source := `(a:Person {age: 30}) -[:KNOWS {since: 2020}]-> (b:Person)`
	first, err := Parse([]byte(source))
	require.NoError(t, err)

	serialized, err := Serialize(first)
	require.NoError(t, err)

	second, err := Parse([]byte(serialized))
	require.NoError(t, err)
	require.Len(t, second, 1)

	reserialized, err := Serialize(second)
	require.NoError(t, err)
	assert.Equal(t, serialized, reserialized)
}
