// Package cell implements the tagged cell values held by tabular rows.
//
// A cell is one of four closed kinds: integer, floating-point, boolean,
// or string. Values loaded from text formats start out as strings and
// stay that way until a caller asks for coercion.
package cell

import (
	"strconv"
	"strings"
)

// Kind identifies the type of a cell value.
type Kind int

const (
	KindString Kind = iota
	KindInt
	KindFloat
	KindBool
)

// String returns the string representation of the kind.
func (k Kind) String() string {
	switch k {
	case KindString:
		return "string"
	case KindInt:
		return "int"
	case KindFloat:
		return "float"
	case KindBool:
		return "bool"
	default:
		return "unknown"
	}
}

// Value is a single cell: a closed tagged union over the four kinds.
// The zero Value is the empty string.
type Value struct {
	kind Kind
	i    int64
	f    float64
	b    bool
	s    string
}

// String constructs a string cell.
func String(s string) Value { return Value{kind: KindString, s: s} }

// Int constructs an integer cell.
func Int(i int64) Value { return Value{kind: KindInt, i: i} }

// Float constructs a floating-point cell.
func Float(f float64) Value { return Value{kind: KindFloat, f: f} }

// Bool constructs a boolean cell.
func Bool(b bool) Value { return Value{kind: KindBool, b: b} }

// Kind returns the kind tag of the value.
func (v Value) Kind() Kind { return v.kind }

// Text returns the stored string. It is only meaningful for KindString.
func (v Value) Text() string { return v.s }

// Int64 returns the stored integer. It is only meaningful for KindInt.
func (v Value) Int64() int64 { return v.i }

// Float64 returns the stored float. It is only meaningful for KindFloat.
func (v Value) Float64() float64 { return v.f }

// Boolean returns the stored bool. It is only meaningful for KindBool.
func (v Value) Boolean() bool { return v.b }

// Equal reports whether two values have the same kind and payload.
func (v Value) Equal(other Value) bool {
	if v.kind != other.kind {
		return false
	}
	switch v.kind {
	case KindInt:
		return v.i == other.i
	case KindFloat:
		return v.f == other.f
	case KindBool:
		return v.b == other.b
	default:
		return v.s == other.s
	}
}

// String renders the value the way it is written to text formats.
func (v Value) String() string {
	switch v.kind {
	case KindInt:
		return strconv.FormatInt(v.i, 10)
	case KindFloat:
		return strconv.FormatFloat(v.f, 'g', -1, 64)
	case KindBool:
		return strconv.FormatBool(v.b)
	default:
		return v.s
	}
}

// Classify determines the representative kind of a single value.
//
// Already-typed values pass through their own kind, except booleans,
// which classify as integer. String values classify by what they parse
// as: integer first, then float, then the literals "true"/"false"
// (case-insensitive), and finally string.
func Classify(v Value) Kind {
	switch v.kind {
	case KindInt, KindBool:
		return KindInt
	case KindFloat:
		return KindFloat
	}

	if _, err := strconv.ParseInt(v.s, 10, 64); err == nil {
		return KindInt
	}
	if _, err := strconv.ParseFloat(v.s, 64); err == nil {
		return KindFloat
	}
	if strings.EqualFold(v.s, "true") || strings.EqualFold(v.s, "false") {
		return KindBool
	}
	return KindString
}

// Infer determines the single representative kind of a column.
//
// If every value classifies to the same kind, that kind wins. Mixed
// columns fall back to string, the lossless representation. An empty
// column infers string as well.
func Infer(values []Value) Kind {
	kinds := make(map[Kind]struct{})
	for _, v := range values {
		kinds[Classify(v)] = struct{}{}
	}
	if len(kinds) == 1 {
		for k := range kinds {
			return k
		}
	}
	return KindString
}

// Coerce converts a value to the target kind.
//
// Conversions that cannot represent the value in the target kind fail
// with a ConvertError naming the offending value and target.
func Coerce(v Value, target Kind) (Value, error) {
	switch target {
	case KindInt:
		switch v.kind {
		case KindInt:
			return v, nil
		case KindBool:
			if v.b {
				return Int(1), nil
			}
			return Int(0), nil
		case KindFloat:
			return Int(int64(v.f)), nil
		default:
			i, err := strconv.ParseInt(v.s, 10, 64)
			if err != nil {
				return Value{}, &ConvertError{Value: v, Target: target}
			}
			return Int(i), nil
		}

	case KindFloat:
		switch v.kind {
		case KindFloat:
			return v, nil
		case KindInt:
			return Float(float64(v.i)), nil
		case KindBool:
			if v.b {
				return Float(1), nil
			}
			return Float(0), nil
		default:
			f, err := strconv.ParseFloat(v.s, 64)
			if err != nil {
				return Value{}, &ConvertError{Value: v, Target: target}
			}
			return Float(f), nil
		}

	case KindBool:
		switch v.kind {
		case KindBool:
			return v, nil
		case KindInt:
			return Bool(v.i != 0), nil
		case KindFloat:
			return Bool(v.f != 0), nil
		default:
			if strings.EqualFold(v.s, "true") {
				return Bool(true), nil
			}
			if strings.EqualFold(v.s, "false") {
				return Bool(false), nil
			}
			return Value{}, &ConvertError{Value: v, Target: target}
		}

	case KindString:
		return String(v.String()), nil
	}

	return Value{}, &ConvertError{Value: v, Target: target}
}
