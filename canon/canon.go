package canon

import (
	"bytes"
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/relateby/pattern-go/pattern"
	"github.com/relateby/pattern-go/subject"
	"github.com/relateby/pattern-go/value"
)

// ToJSON renders p as the canonical JSON projection: compact, with
// lowercase type discriminators on value variants that JSON cannot
// represent natively (symbol, tagged string, range, measurement).
func ToJSON(p pattern.Pattern[subject.Subject]) ([]byte, error) {
	tree, err := patternToJSON(p)
	if err != nil {
		return nil, err
	}
	return json.Marshal(tree)
}

// ToJSONIndent is ToJSON with indentation, for human-readable fixtures.
func ToJSONIndent(p pattern.Pattern[subject.Subject], prefix, indent string) ([]byte, error) {
	tree, err := patternToJSON(p)
	if err != nil {
		return nil, err
	}
	return json.MarshalIndent(tree, prefix, indent)
}

// FromJSON reconstructs a Pattern from its canonical JSON projection.
// Numeric literals are decoded via json.Number so integer-valued and
// decimal-valued properties round-trip to the correct Value variant.
func FromJSON(data []byte) (pattern.Pattern[subject.Subject], error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	var tree any
	if err := dec.Decode(&tree); err != nil {
		return pattern.Pattern[subject.Subject]{}, err
	}
	return patternFromJSON(tree)
}

func patternToJSON(p pattern.Pattern[subject.Subject]) (map[string]any, error) {
	subj, err := subjectToJSON(p.Value())
	if err != nil {
		return nil, err
	}
	elements := make([]any, 0, p.Length())
	for _, el := range p.Elements() {
		ej, err := patternToJSON(el)
		if err != nil {
			return nil, err
		}
		elements = append(elements, ej)
	}
	return map[string]any{"subject": subj, "elements": elements}, nil
}

func subjectToJSON(s subject.Subject) (map[string]any, error) {
	props := make(map[string]any, len(s.Properties()))
	for k, v := range s.Properties() {
		jv, err := valueToJSON(v)
		if err != nil {
			return nil, err
		}
		props[k] = jv
	}
	labels := s.Labels()
	if labels == nil {
		labels = []string{}
	}
	return map[string]any{
		"identity":   s.Identity(),
		"labels":     labels,
		"properties": props,
	}, nil
}

func valueToJSON(v value.Value) (any, error) {
	switch v.Kind() {
	case value.Integer:
		i, _ := v.AsInteger()
		return i, nil
	case value.Decimal:
		f, _ := v.AsDecimal()
		if f == math.Trunc(f) && !math.IsInf(f, 0) {
			// Keep a fractional part on integral decimals so FromJSON
			// reads them back as Decimal rather than Integer.
			return json.Number(strconv.FormatFloat(f, 'f', 1, 64)), nil
		}
		return f, nil
	case value.Boolean:
		b, _ := v.AsBoolean()
		return b, nil
	case value.String:
		s, _ := v.AsString()
		return s, nil
	case value.Symbol:
		s, _ := v.AsSymbol()
		return map[string]any{"type": "symbol", "value": s}, nil
	case value.TaggedString:
		tag, content, _ := v.AsTaggedString()
		return map[string]any{"type": "tagged", "tag": tag, "content": content}, nil
	case value.Array:
		elems, _ := v.AsArray()
		out := make([]any, len(elems))
		for i, e := range elems {
			jv, err := valueToJSON(e)
			if err != nil {
				return nil, err
			}
			out[i] = jv
		}
		return out, nil
	case value.Map:
		m, _ := v.AsMap()
		out := make(map[string]any, len(m))
		for k, mv := range m {
			jv, err := valueToJSON(mv)
			if err != nil {
				return nil, err
			}
			out[k] = jv
		}
		return out, nil
	case value.Range:
		lower, upper, _ := v.AsRange()
		obj := map[string]any{"type": "range"}
		if lower != nil {
			obj["lower"] = *lower
		}
		if upper != nil {
			obj["upper"] = *upper
		}
		return obj, nil
	case value.Measurement:
		unit, magnitude, _ := v.AsMeasurement()
		return map[string]any{"type": "measurement", "unit": unit, "value": magnitude}, nil
	default:
		return nil, fmt.Errorf("canon: unsupported value kind %v", v.Kind())
	}
}

func patternFromJSON(raw any) (pattern.Pattern[subject.Subject], error) {
	m, ok := raw.(map[string]any)
	if !ok {
		return pattern.Pattern[subject.Subject]{}, fmt.Errorf("canon: pattern must be a JSON object")
	}
	subj, err := subjectFromJSON(m["subject"])
	if err != nil {
		return pattern.Pattern[subject.Subject]{}, err
	}
	elementsRaw, _ := m["elements"].([]any)
	children := make([]pattern.Pattern[subject.Subject], 0, len(elementsRaw))
	for _, er := range elementsRaw {
		child, err := patternFromJSON(er)
		if err != nil {
			return pattern.Pattern[subject.Subject]{}, err
		}
		children = append(children, child)
	}
	return pattern.New(subj, children...), nil
}

func subjectFromJSON(raw any) (subject.Subject, error) {
	m, ok := raw.(map[string]any)
	if !ok {
		return subject.Subject{}, fmt.Errorf("canon: subject must be a JSON object")
	}
	identity, _ := m["identity"].(string)
	subj := subject.New(identity)

	if labelsRaw, ok := m["labels"].([]any); ok {
		for _, l := range labelsRaw {
			if s, ok := l.(string); ok {
				subj = subj.WithLabel(s)
			}
		}
	}
	if propsRaw, ok := m["properties"].(map[string]any); ok {
		for k, v := range propsRaw {
			val, err := valueFromJSON(v)
			if err != nil {
				return subject.Subject{}, err
			}
			subj = subj.WithProperty(k, val)
		}
	}
	return subj, nil
}

func valueFromJSON(raw any) (value.Value, error) {
	switch t := raw.(type) {
	case bool:
		return value.NewBoolean(t), nil
	case string:
		return value.NewString(t), nil
	case json.Number:
		if strings.ContainsAny(string(t), ".eE") {
			f, err := t.Float64()
			if err != nil {
				return value.Value{}, err
			}
			return value.NewDecimal(f), nil
		}
		i, err := t.Int64()
		if err != nil {
			f, ferr := t.Float64()
			if ferr != nil {
				return value.Value{}, err
			}
			return value.NewDecimal(f), nil
		}
		return value.NewInteger(i), nil
	case []any:
		elems := make([]value.Value, len(t))
		for i, e := range t {
			ev, err := valueFromJSON(e)
			if err != nil {
				return value.Value{}, err
			}
			elems[i] = ev
		}
		return value.NewArray(elems), nil
	case map[string]any:
		if typ, ok := t["type"].(string); ok {
			return valueFromTaggedJSON(typ, t)
		}
		m := make(map[string]value.Value, len(t))
		for k, v := range t {
			vv, err := valueFromJSON(v)
			if err != nil {
				return value.Value{}, err
			}
			m[k] = vv
		}
		return value.NewMap(m), nil
	case nil:
		return value.Value{}, fmt.Errorf("canon: null is not a representable value")
	default:
		return value.Value{}, fmt.Errorf("canon: unsupported JSON value %T", raw)
	}
}

func valueFromTaggedJSON(typ string, t map[string]any) (value.Value, error) {
	switch typ {
	case "symbol":
		s, _ := t["value"].(string)
		return value.NewSymbol(s), nil
	case "tagged":
		tag, _ := t["tag"].(string)
		content, _ := t["content"].(string)
		return value.NewTaggedString(tag, content), nil
	case "range":
		var lower, upper *float64
		if lv, ok := t["lower"]; ok {
			f, err := numberOf(lv)
			if err != nil {
				return value.Value{}, err
			}
			lower = &f
		}
		if uv, ok := t["upper"]; ok {
			f, err := numberOf(uv)
			if err != nil {
				return value.Value{}, err
			}
			upper = &f
		}
		return value.NewRange(lower, upper), nil
	case "measurement":
		unit, _ := t["unit"].(string)
		mag, err := numberOf(t["value"])
		if err != nil {
			return value.Value{}, err
		}
		return value.NewMeasurement(unit, mag), nil
	default:
		return value.Value{}, fmt.Errorf("canon: unknown value type discriminator %q", typ)
	}
}

func numberOf(raw any) (float64, error) {
	switch n := raw.(type) {
	case json.Number:
		return n.Float64()
	case float64:
		return n, nil
	default:
		return 0, fmt.Errorf("canon: expected a JSON number, got %T", raw)
	}
}
