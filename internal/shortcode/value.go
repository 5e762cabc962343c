package shortcode

import (
	"regexp"
	"strconv"
	"strings"
)

var (
	integerPattern = regexp.MustCompile(`^-?\d+$`)
	floatPattern   = regexp.MustCompile(`^-?\d+\.\d+$`)
)

// ValueKind identifies which member of the Value union is populated.
type ValueKind uint8

const (
	KindString ValueKind = iota
	KindBool
	KindInt
	KindFloat
)

// String renders the kind label.
func (k ValueKind) String() string {
	switch k {
	case KindBool:
		return "bool"
	case KindInt:
		return "int"
	case KindFloat:
		return "float"
	default:
		return "string"
	}
}

// Value is a typed attribute value. The zero value is the empty string.
type Value struct {
	kind ValueKind
	str  string
	b    bool
	i    int64
	f    float64
}

// StringValue wraps s as a string value.
func StringValue(s string) Value { return Value{kind: KindString, str: s} }

// BoolValue wraps b as a boolean value.
func BoolValue(b bool) Value { return Value{kind: KindBool, b: b} }

// IntValue wraps i as an integer value.
func IntValue(i int64) Value { return Value{kind: KindInt, i: i} }

// FloatValue wraps f as a float value.
func FloatValue(f float64) Value { return Value{kind: KindFloat, f: f} }

// Kind reports the populated member.
func (v Value) Kind() ValueKind { return v.kind }

// AsString returns the string member.
func (v Value) AsString() (string, bool) { return v.str, v.kind == KindString }

// AsBool returns the boolean member.
func (v Value) AsBool() (bool, bool) { return v.b, v.kind == KindBool }

// AsInt returns the integer member.
func (v Value) AsInt() (int64, bool) { return v.i, v.kind == KindInt }

// AsFloat returns the float member. Integers are widened.
func (v Value) AsFloat() (float64, bool) {
	switch v.kind {
	case KindFloat:
		return v.f, true
	case KindInt:
		return float64(v.i), true
	default:
		return 0, false
	}
}

// Interface returns the populated member as a plain Go value.
func (v Value) Interface() any {
	switch v.kind {
	case KindBool:
		return v.b
	case KindInt:
		return v.i
	case KindFloat:
		return v.f
	default:
		return v.str
	}
}

// String renders the value in its textual form, suitable for HTML output.
func (v Value) String() string {
	switch v.kind {
	case KindBool:
		return strconv.FormatBool(v.b)
	case KindInt:
		return strconv.FormatInt(v.i, 10)
	case KindFloat:
		return strconv.FormatFloat(v.f, 'f', -1, 64)
	default:
		return v.str
	}
}

// Cast converts a textual attribute value into its typed form.
// Exact true/false literals become booleans, signed decimal integers become
// integers and single-point decimals become floats. Anything else, including
// ambiguous forms such as "1.2.3", is returned unchanged as a string.
func Cast(raw string) Value {
	switch strings.TrimSpace(raw) {
	case "true":
		return BoolValue(true)
	case "false":
		return BoolValue(false)
	}

	if integerPattern.MatchString(raw) {
		if i, err := strconv.ParseInt(raw, 10, 64); err == nil {
			return IntValue(i)
		}
		return StringValue(raw)
	}
	if floatPattern.MatchString(raw) {
		if f, err := strconv.ParseFloat(raw, 64); err == nil {
			return FloatValue(f)
		}
	}
	return StringValue(raw)
}

// CastValue is Cast lifted to values; non-string values pass through.
func CastValue(v Value) Value {
	if v.kind != KindString {
		return v
	}
	return Cast(v.str)
}
