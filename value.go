package cjson

import (
	"fmt"
	"math"
)

// Kind identifies the variant held by a Value.
type Kind uint8

const (
	KindInvalid Kind = iota
	KindNull
	KindBool
	KindNumber
	KindString
	KindArray
	KindObject
)

var kindNames = [...]string{
	KindInvalid: "invalid",
	KindNull:    "null",
	KindBool:    "boolean",
	KindNumber:  "number",
	KindString:  "string",
	KindArray:   "array",
	KindObject:  "object",
}

func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return "invalid"
}

// Value is the in-memory representation of a JSON-compatible datum: a tagged
// union over null, boolean, number (float64), string, array, and object.
//
// Object keys are either string or float64. The decoder only ever produces
// string keys; number keys exist for encoder input, where an all-number-keyed
// object may serialize as a JSON array (see Encode). Strings are 8-bit
// transparent byte sequences carried as Go strings.
//
// The zero Value has KindInvalid and cannot be encoded. Arrays and objects
// share their backing storage when a Value is copied; use constructors and
// the Append/Set mutators to build graphs.
type Value struct {
	kind Kind
	b    bool
	num  float64
	str  string
	arr  []Value
	obj  map[any]Value
}

// Null returns the JSON null value.
func Null() Value {
	return Value{kind: KindNull}
}

// Bool returns a boolean value.
func Bool(b bool) Value {
	return Value{kind: KindBool, b: b}
}

// Number returns a number value.
func Number(f float64) Value {
	return Value{kind: KindNumber, num: f}
}

// String returns a string value. The payload may contain arbitrary bytes;
// it is not required to be valid UTF-8.
func String(s string) Value {
	return Value{kind: KindString, str: s}
}

// Array returns an array value holding the given elements.
func Array(elems ...Value) Value {
	return Value{kind: KindArray, arr: append([]Value(nil), elems...)}
}

// Object returns an empty object value. Populate it with Set.
func Object() Value {
	return Value{kind: KindObject, obj: make(map[any]Value)}
}

// Kind reports the variant held by v.
func (v Value) Kind() Kind {
	return v.kind
}

// IsNull reports whether v is the JSON null value.
func (v Value) IsNull() bool {
	return v.kind == KindNull
}

// BoolVal returns the boolean payload, or false for other kinds.
func (v Value) BoolVal() bool {
	if v.kind == KindBool {
		return v.b
	}
	return false
}

// NumberVal returns the numeric payload, or 0 for other kinds.
func (v Value) NumberVal() float64 {
	if v.kind == KindNumber {
		return v.num
	}
	return 0
}

// StringVal returns the string payload, or "" for other kinds.
func (v Value) StringVal() string {
	if v.kind == KindString {
		return v.str
	}
	return ""
}

// Len returns the element count of an array or the key count of an object,
// and 0 for every other kind.
func (v Value) Len() int {
	switch v.kind {
	case KindArray:
		return len(v.arr)
	case KindObject:
		return len(v.obj)
	}
	return 0
}

// Index returns the i-th array element. Out-of-range indexes and non-array
// values yield the zero Value.
func (v Value) Index(i int) Value {
	if v.kind == KindArray && i >= 0 && i < len(v.arr) {
		return v.arr[i]
	}
	return Value{}
}

// Elems returns the backing element slice of an array, or nil.
func (v Value) Elems() []Value {
	if v.kind == KindArray {
		return v.arr
	}
	return nil
}

// Field returns the value stored under key in an object. The key must be a
// string or float64 to match anything.
func (v Value) Field(key any) (Value, bool) {
	if v.kind == KindObject {
		val, ok := v.obj[key]
		return val, ok
	}
	return Value{}, false
}

// Keys returns the object's keys in unspecified order, or nil.
func (v Value) Keys() []any {
	if v.kind != KindObject {
		return nil
	}
	keys := make([]any, 0, len(v.obj))
	for k := range v.obj {
		keys = append(keys, k)
	}
	return keys
}

// Append adds elements to an array value. It panics on other kinds; building
// a graph with the wrong constructor is a programming error, like writing to
// a nil map.
func (v *Value) Append(elems ...Value) {
	if v.kind != KindArray {
		panic("cjson: Append on non-array Value")
	}
	v.arr = append(v.arr, elems...)
}

// Set stores val under key in an object value and panics on other kinds.
// Key type validity (string or float64) is checked at encode time, matching
// the encoder's error contract.
func (v *Value) Set(key any, val Value) {
	if v.kind != KindObject {
		panic("cjson: Set on non-object Value")
	}
	v.obj[key] = val
}

// ValueOf builds a Value graph from native Go data: nil, booleans, numeric
// types, strings, []Value, []any, map[string]any, map[any]any, and Value
// itself. Map keys must be strings or numeric.
func ValueOf(data any) (Value, error) {
	switch d := data.(type) {
	case nil:
		return Null(), nil
	case Value:
		return d, nil
	case bool:
		return Bool(d), nil
	case string:
		return String(d), nil
	case float64:
		return Number(d), nil
	case float32:
		return Number(float64(d)), nil
	case int:
		return Number(float64(d)), nil
	case int8:
		return Number(float64(d)), nil
	case int16:
		return Number(float64(d)), nil
	case int32:
		return Number(float64(d)), nil
	case int64:
		return Number(float64(d)), nil
	case uint:
		return Number(float64(d)), nil
	case uint8:
		return Number(float64(d)), nil
	case uint16:
		return Number(float64(d)), nil
	case uint32:
		return Number(float64(d)), nil
	case uint64:
		return Number(float64(d)), nil
	case []Value:
		return Array(d...), nil
	case []any:
		arr := Value{kind: KindArray, arr: make([]Value, 0, len(d))}
		for _, elem := range d {
			ev, err := ValueOf(elem)
			if err != nil {
				return Value{}, err
			}
			arr.arr = append(arr.arr, ev)
		}
		return arr, nil
	case map[string]any:
		obj := Object()
		for k, elem := range d {
			ev, err := ValueOf(elem)
			if err != nil {
				return Value{}, err
			}
			obj.obj[k] = ev
		}
		return obj, nil
	case map[any]any:
		obj := Object()
		for k, elem := range d {
			key, err := objectKeyOf(k)
			if err != nil {
				return Value{}, err
			}
			ev, err := ValueOf(elem)
			if err != nil {
				return Value{}, err
			}
			obj.obj[key] = ev
		}
		return obj, nil
	default:
		return Value{}, fmt.Errorf("cannot convert %T to Value: %w", data, ErrUnsupportedType)
	}
}

// objectKeyOf normalizes a native map key to the string-or-float64 domain.
func objectKeyOf(key any) (any, error) {
	switch k := key.(type) {
	case string:
		return k, nil
	case float64:
		return k, nil
	case float32:
		return float64(k), nil
	case int:
		return float64(k), nil
	case int8:
		return float64(k), nil
	case int16:
		return float64(k), nil
	case int32:
		return float64(k), nil
	case int64:
		return float64(k), nil
	case uint:
		return float64(k), nil
	case uint8:
		return float64(k), nil
	case uint16:
		return float64(k), nil
	case uint32:
		return float64(k), nil
	case uint64:
		return float64(k), nil
	default:
		return nil, fmt.Errorf("cannot use %T as object key: %w", key, ErrInvalidKey)
	}
}

// Interface converts a Value graph back to native Go data: nil, bool,
// float64, string, []any, and map[string]any. Number keys are stringified
// at the default precision. Invalid values convert to nil.
func (v Value) Interface() any {
	switch v.kind {
	case KindNull:
		return nil
	case KindBool:
		return v.b
	case KindNumber:
		return v.num
	case KindString:
		return v.str
	case KindArray:
		out := make([]any, len(v.arr))
		for i, elem := range v.arr {
			out[i] = elem.Interface()
		}
		return out
	case KindObject:
		out := make(map[string]any, len(v.obj))
		for k, elem := range v.obj {
			switch key := k.(type) {
			case string:
				out[key] = elem.Interface()
			case float64:
				out[formatNumber(key, DefaultEncodeNumberPrecision)] = elem.Interface()
			}
		}
		return out
	default:
		return nil
	}
}

// Equal reports structural equality of two value graphs. Numbers compare by
// value with one exception: two NaNs compare equal, so decoded fixtures
// containing NaN can be compared directly.
func Equal(a, b Value) bool {
	if a.kind != b.kind {
		return false
	}
	switch a.kind {
	case KindBool:
		return a.b == b.b
	case KindNumber:
		if math.IsNaN(a.num) && math.IsNaN(b.num) {
			return true
		}
		return a.num == b.num
	case KindString:
		return a.str == b.str
	case KindArray:
		if len(a.arr) != len(b.arr) {
			return false
		}
		for i := range a.arr {
			if !Equal(a.arr[i], b.arr[i]) {
				return false
			}
		}
		return true
	case KindObject:
		if len(a.obj) != len(b.obj) {
			return false
		}
		for k, av := range a.obj {
			bv, ok := b.obj[k]
			if !ok || !Equal(av, bv) {
				return false
			}
		}
		return true
	default:
		return true
	}
}
