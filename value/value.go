package value

import (
	"fmt"
	"math"
	"sort"
	"strconv"
	"strings"
)

// Kind identifies which variant a [Value] holds.
type Kind uint8

const (
	Integer Kind = iota
	Decimal
	Boolean
	String
	Symbol
	TaggedString
	Array
	Map
	Range
	Measurement
)

// String returns the lowercase discriminator used by the canonical JSON
// projection (see package canon) and in diagnostic messages.
func (k Kind) String() string {
	switch k {
	case Integer:
		return "integer"
	case Decimal:
		return "decimal"
	case Boolean:
		return "boolean"
	case String:
		return "string"
	case Symbol:
		return "symbol"
	case TaggedString:
		return "tagged"
	case Array:
		return "array"
	case Map:
		return "map"
	case Range:
		return "range"
	case Measurement:
		return "measurement"
	default:
		return "unknown"
	}
}

// Value is an immutable tagged-union property payload.
//
// The zero Value is an Integer(0); callers that need an explicit
// "absent" signal should use a (Value, bool) return, not a sentinel
// Value.
type Value struct {
	kind Kind

	i int64
	f float64
	b bool
	s string // String/Symbol content, or TaggedString content
	tag string

	arr []Value
	m   map[string]Value

	hasLower bool
	hasUpper bool
	lower    float64
	upper    float64
	unit     string
}

// NewInteger constructs an Integer value.
func NewInteger(i int64) Value { return Value{kind: Integer, i: i} }

// NewDecimal constructs a Decimal value. NaN and +/-Inf are permitted; see
// [Value.Equal] and [Value.Hashable] for the consequences.
func NewDecimal(f float64) Value { return Value{kind: Decimal, f: f} }

// NewBoolean constructs a Boolean value.
func NewBoolean(b bool) Value { return Value{kind: Boolean, b: b} }

// NewString constructs a String value.
func NewString(s string) Value { return Value{kind: String, s: s} }

// NewSymbol constructs a Symbol value (a bare, unquoted identifier-shaped
// token such as a relation type or an identity).
func NewSymbol(s string) Value { return Value{kind: Symbol, s: s} }

// NewTaggedString constructs a TaggedString value: a string carrying a
// syntactic tag hint (e.g. a MIME-like prefix on a triple-quoted gram
// literal).
func NewTaggedString(tag, content string) Value {
	return Value{kind: TaggedString, tag: tag, s: content}
}

// NewArray constructs an Array value. The input slice is cloned; the
// caller may freely mutate it afterward.
func NewArray(vs []Value) Value {
	cloned := make([]Value, len(vs))
	copy(cloned, vs)
	return Value{kind: Array, arr: cloned}
}

// NewMap constructs a Map value. The input map is cloned; the caller may
// freely mutate it afterward. Keys are unique by construction (Go map
// invariant).
func NewMap(m map[string]Value) Value {
	cloned := make(map[string]Value, len(m))
	for k, v := range m {
		cloned[k] = v
	}
	return Value{kind: Map, m: cloned}
}

// NewRange constructs a Range value. Either bound may be nil (absent,
// meaning unbounded on that side).
func NewRange(lower, upper *float64) Value {
	v := Value{kind: Range}
	if lower != nil {
		v.hasLower = true
		v.lower = *lower
	}
	if upper != nil {
		v.hasUpper = true
		v.upper = *upper
	}
	return v
}

// NewMeasurement constructs a Measurement value: a decimal quantity
// carrying a unit string.
func NewMeasurement(unit string, v float64) Value {
	return Value{kind: Measurement, unit: unit, f: v}
}

// Kind reports which variant v holds.
func (v Value) Kind() Kind { return v.kind }

// AsInteger returns the wrapped int64 and true, or (0, false) if v is not
// an Integer.
func (v Value) AsInteger() (int64, bool) {
	if v.kind != Integer {
		return 0, false
	}
	return v.i, true
}

// AsDecimal returns the wrapped float64 and true, or (0, false) if v is
// not a Decimal.
func (v Value) AsDecimal() (float64, bool) {
	if v.kind != Decimal {
		return 0, false
	}
	return v.f, true
}

// AsBoolean returns the wrapped bool and true, or (false, false) if v is
// not a Boolean.
func (v Value) AsBoolean() (bool, bool) {
	if v.kind != Boolean {
		return false, false
	}
	return v.b, true
}

// AsString returns the wrapped string and true, or ("", false) if v is
// not a String.
func (v Value) AsString() (string, bool) {
	if v.kind != String {
		return "", false
	}
	return v.s, true
}

// AsSymbol returns the wrapped text and true, or ("", false) if v is not
// a Symbol.
func (v Value) AsSymbol() (string, bool) {
	if v.kind != Symbol {
		return "", false
	}
	return v.s, true
}

// AsTaggedString returns the tag and content and true, or ("", "", false)
// if v is not a TaggedString.
func (v Value) AsTaggedString() (tag, content string, ok bool) {
	if v.kind != TaggedString {
		return "", "", false
	}
	return v.tag, v.s, true
}

// AsArray returns a clone of the wrapped sequence and true, or (nil,
// false) if v is not an Array.
func (v Value) AsArray() ([]Value, bool) {
	if v.kind != Array {
		return nil, false
	}
	cloned := make([]Value, len(v.arr))
	copy(cloned, v.arr)
	return cloned, true
}

// AsMap returns a clone of the wrapped mapping and true, or (nil, false)
// if v is not a Map.
func (v Value) AsMap() (map[string]Value, bool) {
	if v.kind != Map {
		return nil, false
	}
	cloned := make(map[string]Value, len(v.m))
	for k, val := range v.m {
		cloned[k] = val
	}
	return cloned, true
}

// AsRange returns the lower and upper bounds (nil where absent) and true,
// or (nil, nil, false) if v is not a Range.
func (v Value) AsRange() (lower, upper *float64, ok bool) {
	if v.kind != Range {
		return nil, nil, false
	}
	if v.hasLower {
		l := v.lower
		lower = &l
	}
	if v.hasUpper {
		u := v.upper
		upper = &u
	}
	return lower, upper, true
}

// AsMeasurement returns the unit and magnitude and true, or ("", 0,
// false) if v is not a Measurement.
func (v Value) AsMeasurement() (unit string, magnitude float64, ok bool) {
	if v.kind != Measurement {
		return "", 0, false
	}
	return v.unit, v.f, true
}

// Len returns the number of elements for Array and Map kinds, or 0 for
// every other kind.
func (v Value) Len() int {
	switch v.kind {
	case Array:
		return len(v.arr)
	case Map:
		return len(v.m)
	default:
		return 0
	}
}

// Equal reports structural equality between v and other.
//
// A Decimal carrying NaN never equals anything, including itself,
// mirroring IEEE 754 comparison semantics. Arrays compare element-wise in order;
// Maps compare by key set and per-key value.
func (v Value) Equal(other Value) bool {
	if v.kind != other.kind {
		return false
	}
	switch v.kind {
	case Integer:
		return v.i == other.i
	case Decimal:
		if math.IsNaN(v.f) || math.IsNaN(other.f) {
			return false
		}
		return v.f == other.f
	case Boolean:
		return v.b == other.b
	case String, Symbol:
		return v.s == other.s
	case TaggedString:
		return v.tag == other.tag && v.s == other.s
	case Array:
		if len(v.arr) != len(other.arr) {
			return false
		}
		for i := range v.arr {
			if !v.arr[i].Equal(other.arr[i]) {
				return false
			}
		}
		return true
	case Map:
		if len(v.m) != len(other.m) {
			return false
		}
		for k, val := range v.m {
			ov, ok := other.m[k]
			if !ok || !val.Equal(ov) {
				return false
			}
		}
		return true
	case Range:
		return v.hasLower == other.hasLower && v.hasUpper == other.hasUpper &&
			(!v.hasLower || v.lower == other.lower) &&
			(!v.hasUpper || v.upper == other.upper)
	case Measurement:
		return v.unit == other.unit && v.f == other.f
	default:
		return false
	}
}

// Hashable reports whether v may safely participate in a hash-based
// collection key. A Value is not hashable if it is a Decimal carrying
// NaN, or if it transitively contains such a Decimal (inside an Array or
// Map).
//
// This is a runtime discipline in this dynamically-checked port; a
// statically typed implementation would enforce the same rule at
// compile time via a conditional trait bound.
func (v Value) Hashable() bool {
	switch v.kind {
	case Decimal:
		return !math.IsNaN(v.f)
	case Array:
		for _, e := range v.arr {
			if !e.Hashable() {
				return false
			}
		}
		return true
	case Map:
		for _, e := range v.m {
			if !e.Hashable() {
				return false
			}
		}
		return true
	default:
		return true
	}
}

// String renders a debug form of v; it is not the gram serialization
// (see package gram for that).
func (v Value) String() string {
	switch v.kind {
	case Integer:
		return strconv.FormatInt(v.i, 10)
	case Decimal:
		return strconv.FormatFloat(v.f, 'g', -1, 64)
	case Boolean:
		return strconv.FormatBool(v.b)
	case String:
		return strconv.Quote(v.s)
	case Symbol:
		return v.s
	case TaggedString:
		return fmt.Sprintf("%s\"\"\"%s\"\"\"", v.tag, v.s)
	case Array:
		parts := make([]string, len(v.arr))
		for i, e := range v.arr {
			parts[i] = e.String()
		}
		return "[" + strings.Join(parts, ", ") + "]"
	case Map:
		keys := make([]string, 0, len(v.m))
		for k := range v.m {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		parts := make([]string, len(keys))
		for i, k := range keys {
			parts[i] = fmt.Sprintf("%s: %s", k, v.m[k].String())
		}
		return "{" + strings.Join(parts, ", ") + "}"
	case Range:
		var lo, hi string
		if v.hasLower {
			lo = strconv.FormatFloat(v.lower, 'g', -1, 64)
		}
		if v.hasUpper {
			hi = strconv.FormatFloat(v.upper, 'g', -1, 64)
		}
		return lo + ".." + hi
	case Measurement:
		return fmt.Sprintf("%s %s", strconv.FormatFloat(v.f, 'g', -1, 64), v.unit)
	default:
		return "<invalid>"
	}
}
