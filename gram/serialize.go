package gram

import (
	"sort"
	"strconv"
	"strings"
	"unicode"

	"github.com/relateby/pattern-go/pattern"
	"github.com/relateby/pattern-go/subject"
	"github.com/relateby/pattern-go/value"
)

// Serialize renders patterns back to gram text, one pattern per line.
// Relationship direction always serializes through child order rather
// than arrow choice: every shaft emits as a forward "-->", decorated
// with "[:TYPE {props}]" only when the relationship's subject carries
// labels or properties.
//
// Serialize(Parse(Serialize(ps))) reproduces Serialize(ps) exactly
// (textual idempotence); Parse(Serialize(ps)) reproduces ps up to the
// synthetic identities the parser assigns to anonymous subjects
// (semantic round-trip).
func Serialize(patterns []pattern.Pattern[subject.Subject]) (string, error) {
	lines := make([]string, len(patterns))
	for i, p := range patterns {
		s, err := serializePattern(p)
		if err != nil {
			return "", err
		}
		lines[i] = s
	}
	return strings.Join(lines, "\n"), nil
}

func serializePattern(p pattern.Pattern[subject.Subject]) (string, error) {
	switch p.Length() {
	case 0:
		return "(" + renderSubjectFull(p.Value()) + ")", nil
	case 2:
		c0, _ := p.GetElement(0)
		c1, _ := p.GetElement(1)
		if c0.IsAtomic() && c1.IsAtomic() {
			return serializeRelationship(p, c0, c1)
		}
	}
	return serializeSubjectPatternForm(p)
}

func serializeRelationship(rel, left, right pattern.Pattern[subject.Subject]) (string, error) {
	leftText, err := serializePattern(left)
	if err != nil {
		return "", err
	}
	rightText, err := serializePattern(right)
	if err != nil {
		return "", err
	}
	decoration, hasDecoration := renderEdgeDecoration(rel.Value())
	if !hasDecoration {
		return leftText + "-->" + rightText, nil
	}
	return leftText + "-[" + decoration + "]->" + rightText, nil
}

// serializeSubjectPatternForm renders a pattern as "[subject | e1, e2, ...]".
// A one-element pattern is always forced into this form, even when its
// single child would otherwise qualify as a bare node or relationship,
// so a reader can never mistake "[subject | e1]" for an atomic node.
func serializeSubjectPatternForm(p pattern.Pattern[subject.Subject]) (string, error) {
	var sb strings.Builder
	sb.WriteByte('[')
	sb.WriteString(renderSubjectFull(p.Value()))
	if p.Length() > 0 {
		sb.WriteString(" | ")
		for i, el := range p.Elements() {
			if i > 0 {
				sb.WriteString(", ")
			}
			s, err := serializePattern(el)
			if err != nil {
				return "", err
			}
			sb.WriteString(s)
		}
	}
	sb.WriteByte(']')
	return sb.String(), nil
}

func renderSubjectFull(subj subject.Subject) string {
	var sb strings.Builder
	if identity := subj.Identity(); identity != "" {
		sb.WriteString(renderIdentifierText(identity))
	}
	for _, label := range subj.Labels() {
		sb.WriteByte(':')
		sb.WriteString(renderIdentifierText(label))
	}
	if props := subj.Properties(); len(props) > 0 {
		sb.WriteByte(' ')
		sb.WriteString(renderRecord(props))
	}
	return sb.String()
}

// renderEdgeDecoration renders a relationship subject's labels and
// properties for the "[:TYPE {props}]" form. Relationship subjects
// never carry an identity, so one is never emitted here.
func renderEdgeDecoration(subj subject.Subject) (string, bool) {
	labels := subj.Labels()
	props := subj.Properties()
	if len(labels) == 0 && len(props) == 0 {
		return "", false
	}
	var sb strings.Builder
	for _, label := range labels {
		sb.WriteByte(':')
		sb.WriteString(renderIdentifierText(label))
	}
	if len(props) > 0 {
		if len(labels) > 0 {
			sb.WriteByte(' ')
		}
		sb.WriteString(renderRecord(props))
	}
	return sb.String(), true
}

func renderRecord(props map[string]value.Value) string {
	keys := make([]string, 0, len(props))
	for k := range props {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var sb strings.Builder
	sb.WriteByte('{')
	for i, k := range keys {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString(renderIdentifierText(k))
		sb.WriteString(": ")
		sb.WriteString(renderValue(props[k]))
	}
	sb.WriteByte('}')
	return sb.String()
}

func renderValue(v value.Value) string {
	switch v.Kind() {
	case value.Integer:
		i, _ := v.AsInteger()
		return strconv.FormatInt(i, 10)
	case value.Decimal:
		f, _ := v.AsDecimal()
		return renderDecimal(f)
	case value.Boolean:
		b, _ := v.AsBoolean()
		return strconv.FormatBool(b)
	case value.String:
		s, _ := v.AsString()
		return renderStringLiteral(s)
	case value.Symbol:
		s, _ := v.AsSymbol()
		return s
	case value.TaggedString:
		tag, content, _ := v.AsTaggedString()
		return tag + `"""` + content + `"""`
	case value.Array:
		elems, _ := v.AsArray()
		parts := make([]string, len(elems))
		for i, e := range elems {
			parts[i] = renderValue(e)
		}
		return "[" + strings.Join(parts, ", ") + "]"
	case value.Map:
		m, _ := v.AsMap()
		return renderRecord(m)
	case value.Range:
		lower, upper, _ := v.AsRange()
		var lo, hi string
		if lower != nil {
			lo = renderDecimal(*lower)
		}
		if upper != nil {
			hi = renderDecimal(*upper)
		}
		return lo + ".." + hi
	case value.Measurement:
		unit, magnitude, _ := v.AsMeasurement()
		return renderDecimal(magnitude) + " " + unit
	default:
		return ""
	}
}

// renderDecimal always includes a decimal point or an exponent,
// distinguishing a Decimal's textual form from an Integer even when the
// magnitude is a whole number.
func renderDecimal(f float64) string {
	s := strconv.FormatFloat(f, 'g', -1, 64)
	if !strings.ContainsAny(s, ".eEnN") {
		s += ".0"
	}
	return s
}

func renderStringLiteral(s string) string {
	var sb strings.Builder
	sb.WriteByte('"')
	for _, r := range s {
		switch r {
		case '"':
			sb.WriteString(`\"`)
		case '\\':
			sb.WriteString(`\\`)
		case '\n':
			sb.WriteString(`\n`)
		case '\t':
			sb.WriteString(`\t`)
		default:
			sb.WriteRune(r)
		}
	}
	sb.WriteByte('"')
	return sb.String()
}

// renderIdentifierText renders s bare when it already matches the
// identifier grammar the lexer accepts unquoted, and as a quoted
// string otherwise.
func renderIdentifierText(s string) string {
	if isBareIdentifier(s) {
		return s
	}
	return renderStringLiteral(s)
}

func isBareIdentifier(s string) bool {
	if s == "" {
		return false
	}
	for i, r := range s {
		switch {
		case r == '_':
		case r == '-' && i > 0:
		case unicode.IsLetter(r):
		case unicode.IsDigit(r) && i > 0:
		default:
			return false
		}
	}
	return true
}
