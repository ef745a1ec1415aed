package punt

import (
	"maps"
	"slices"
	"strconv"
	"strings"
)

// Kind discriminates the runtime shape of a Value.
type Kind uint8

const (
	KindNull Kind = iota
	KindBool
	KindInt
	KindFloat
	KindString
	KindList
	KindMap
)

// String returns the kind name as used in error reasons.
func (k Kind) String() string {
	switch k {
	case KindNull:
		return "null"
	case KindBool:
		return "boolean"
	case KindInt:
		return "integer"
	case KindFloat:
		return "float"
	case KindString:
		return "string"
	case KindList:
		return "list"
	case KindMap:
		return "map"
	default:
		return "unknown"
	}
}

// Value is an already-parsed dynamic value: null, boolean, integer, float,
// string, ordered list, or string-keyed map. It is a closed union; parsers
// dispatch on Kind and never see anything outside these seven shapes.
//
// Values are treated as immutable once constructed. Constructors take
// ownership of the slices/maps passed to them; callers must not mutate them
// afterwards. The zero Value is null.
type Value struct {
	kind Kind

	boolVal  bool
	intVal   int64
	floatVal float64
	strVal   string
	listVal  []Value
	mapVal   map[string]Value
}

// ---- constructors ----

// Null returns the null value.
func Null() Value { return Value{kind: KindNull} }

// Bool returns a boolean value.
func Bool(v bool) Value { return Value{kind: KindBool, boolVal: v} }

// Int returns an integer value.
func Int(v int64) Value { return Value{kind: KindInt, intVal: v} }

// Float returns a floating-point value.
func Float(v float64) Value { return Value{kind: KindFloat, floatVal: v} }

// Str returns a string value.
func Str(v string) Value { return Value{kind: KindString, strVal: v} }

// List returns an ordered list value.
func List(items ...Value) Value { return Value{kind: KindList, listVal: items} }

// Map returns a map value. Keys are plain Go strings; iteration order is
// never observable (enumeration sorts keys).
func Map(m map[string]Value) Value { return Value{kind: KindMap, mapVal: m} }

// ---- accessors ----

// Kind returns the value's runtime tag.
func (v Value) Kind() Kind { return v.kind }

// IsNull reports whether the value is null.
func (v Value) IsNull() bool { return v.kind == KindNull }

// AsBool returns the boolean payload.
func (v Value) AsBool() (bool, bool) { return v.boolVal, v.kind == KindBool }

// AsInt returns the integer payload.
func (v Value) AsInt() (int64, bool) { return v.intVal, v.kind == KindInt }

// AsFloat returns the float payload.
func (v Value) AsFloat() (float64, bool) { return v.floatVal, v.kind == KindFloat }

// AsString returns the string payload.
func (v Value) AsString() (string, bool) { return v.strVal, v.kind == KindString }

// AsList returns the list payload.
func (v Value) AsList() ([]Value, bool) { return v.listVal, v.kind == KindList }

// AsMap returns the map payload.
func (v Value) AsMap() (map[string]Value, bool) { return v.mapVal, v.kind == KindMap }

// Number returns an integer or float payload widened to float64.
func (v Value) Number() (float64, bool) {
	switch v.kind {
	case KindInt:
		return float64(v.intVal), true
	case KindFloat:
		return v.floatVal, true
	default:
		return 0, false
	}
}

// Len returns the element count of a list or map, 0 otherwise.
func (v Value) Len() int {
	switch v.kind {
	case KindList:
		return len(v.listVal)
	case KindMap:
		return len(v.mapVal)
	default:
		return 0
	}
}

// At returns the i-th element of a list.
func (v Value) At(i int) (Value, bool) {
	if v.kind != KindList || i < 0 || i >= len(v.listVal) {
		return Value{}, false
	}
	return v.listVal[i], true
}

// Get returns the value under key in a map.
func (v Value) Get(key string) (Value, bool) {
	if v.kind != KindMap {
		return Value{}, false
	}
	item, ok := v.mapVal[key]
	return item, ok
}

// Keys returns a map's keys in sorted order.
func (v Value) Keys() []string {
	if v.kind != KindMap {
		return nil
	}
	return slices.Sorted(maps.Keys(v.mapVal))
}

// ---- comparison and rendering ----

// Equal reports deep, kind-strict equality. Int(1) and Float(1) are not
// equal; lists compare element-wise in order; maps compare per key.
func (v Value) Equal(w Value) bool {
	if v.kind != w.kind {
		return false
	}
	switch v.kind {
	case KindNull:
		return true
	case KindBool:
		return v.boolVal == w.boolVal
	case KindInt:
		return v.intVal == w.intVal
	case KindFloat:
		return v.floatVal == w.floatVal
	case KindString:
		return v.strVal == w.strVal
	case KindList:
		if len(v.listVal) != len(w.listVal) {
			return false
		}
		for i := range v.listVal {
			if !v.listVal[i].Equal(w.listVal[i]) {
				return false
			}
		}
		return true
	case KindMap:
		if len(v.mapVal) != len(w.mapVal) {
			return false
		}
		for k, item := range v.mapVal {
			other, ok := w.mapVal[k]
			if !ok || !item.Equal(other) {
				return false
			}
		}
		return true
	default:
		return false
	}
}

// String renders a compact JSON-like form with sorted map keys, intended for
// error messages and test output, not for serialization.
func (v Value) String() string {
	b := &strings.Builder{}
	v.render(b)
	return b.String()
}

func (v Value) render(b *strings.Builder) {
	switch v.kind {
	case KindNull:
		b.WriteString("null")
	case KindBool:
		b.WriteString(strconv.FormatBool(v.boolVal))
	case KindInt:
		b.WriteString(strconv.FormatInt(v.intVal, 10))
	case KindFloat:
		b.WriteString(strconv.FormatFloat(v.floatVal, 'g', -1, 64))
	case KindString:
		b.WriteString(strconv.Quote(v.strVal))
	case KindList:
		b.WriteByte('[')
		for i, item := range v.listVal {
			if i > 0 {
				b.WriteByte(',')
			}
			item.render(b)
		}
		b.WriteByte(']')
	case KindMap:
		b.WriteByte('{')
		for i, k := range v.Keys() {
			if i > 0 {
				b.WriteByte(',')
			}
			b.WriteString(strconv.Quote(k))
			b.WriteByte(':')
			v.mapVal[k].render(b)
		}
		b.WriteByte('}')
	}
}

// Interface returns the value as plain Go data: nil, bool, int64, float64,
// string, []any, or map[string]any, recursively.
func (v Value) Interface() any {
	switch v.kind {
	case KindBool:
		return v.boolVal
	case KindInt:
		return v.intVal
	case KindFloat:
		return v.floatVal
	case KindString:
		return v.strVal
	case KindList:
		out := make([]any, len(v.listVal))
		for i, item := range v.listVal {
			out[i] = item.Interface()
		}
		return out
	case KindMap:
		out := make(map[string]any, len(v.mapVal))
		for k, item := range v.mapVal {
			out[k] = item.Interface()
		}
		return out
	default:
		return nil
	}
}
