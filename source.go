package punt

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"math"
	"strings"

	gojson "github.com/goccy/go-json"
	"gopkg.in/yaml.v3"
)

// The bridges below sit outside the combinator core: parsers only ever see
// already-structured Values. They exist so callers can feed decoder output
// straight into Parse without hand-rolling the conversion.

// FromGo converts plain Go data (the shape encoding/json-style decoders
// produce: nil, bool, string, numeric types, json.Number, []any,
// map[string]any) into a Value. Map keys must be strings.
func FromGo(v any) (Value, error) {
	switch t := v.(type) {
	case nil:
		return Null(), nil
	case Value:
		return t, nil
	case bool:
		return Bool(t), nil
	case string:
		return Str(t), nil
	case int:
		return Int(int64(t)), nil
	case int8:
		return Int(int64(t)), nil
	case int16:
		return Int(int64(t)), nil
	case int32:
		return Int(int64(t)), nil
	case int64:
		return Int(t), nil
	case uint:
		if uint64(t) > math.MaxInt64 {
			return Value{}, fmt.Errorf("punt: uint %d overflows int64", t)
		}
		return Int(int64(t)), nil
	case uint8:
		return Int(int64(t)), nil
	case uint16:
		return Int(int64(t)), nil
	case uint32:
		return Int(int64(t)), nil
	case uint64:
		if t > math.MaxInt64 {
			return Value{}, fmt.Errorf("punt: uint64 %d overflows int64", t)
		}
		return Int(int64(t)), nil
	case float32:
		return Float(float64(t)), nil
	case float64:
		return Float(t), nil
	case json.Number:
		return numberValue(t)
	case []Value:
		return List(t...), nil
	case []any:
		items := make([]Value, len(t))
		for i, raw := range t {
			item, err := FromGo(raw)
			if err != nil {
				return Value{}, err
			}
			items[i] = item
		}
		return List(items...), nil
	case map[string]Value:
		return Map(t), nil
	case map[string]any:
		m := make(map[string]Value, len(t))
		for k, raw := range t {
			item, err := FromGo(raw)
			if err != nil {
				return Value{}, err
			}
			m[k] = item
		}
		return Map(m), nil
	case map[any]any:
		m := make(map[string]Value, len(t))
		for k, raw := range t {
			ks, ok := k.(string)
			if !ok {
				return Value{}, fmt.Errorf("punt: map key %v (%T) is not a string", k, k)
			}
			item, err := FromGo(raw)
			if err != nil {
				return Value{}, err
			}
			m[ks] = item
		}
		return Map(m), nil
	default:
		return Value{}, fmt.Errorf("punt: cannot convert %T into a Value", v)
	}
}

// numberValue keeps the integer/float split: a literal without '.', 'e' or
// 'E' stays integral unless it overflows int64.
func numberValue(n json.Number) (Value, error) {
	s := n.String()
	if !strings.ContainsAny(s, ".eE") {
		if i, err := n.Int64(); err == nil {
			return Int(i), nil
		}
	}
	f, err := n.Float64()
	if err != nil {
		return Value{}, fmt.Errorf("punt: invalid number %q: %w", s, err)
	}
	return Float(f), nil
}

// JSONBytes decodes one JSON document into a Value. Numbers pass through
// json.Number so integer literals stay integral.
func JSONBytes(data []byte) (Value, error) {
	return JSONReader(bytes.NewReader(data))
}

// JSONReader decodes one JSON document from r into a Value.
func JSONReader(r io.Reader) (Value, error) {
	dec := gojson.NewDecoder(r)
	dec.UseNumber()
	var v any
	if err := dec.Decode(&v); err != nil {
		return Value{}, fmt.Errorf("punt: decode json: %w", err)
	}
	return FromGo(v)
}

// JSONBytesStrict decodes like JSONBytes but fails when an object repeats a
// key. Plain decoding keeps the last occurrence; the scan runs over
// encoding/json tokens before anything is materialized.
func JSONBytesStrict(data []byte) (Value, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	if err := scanJSONDuplicateKeys(dec); err != nil {
		return Value{}, err
	}
	return JSONBytes(data)
}

// JSONReaderStrict reads r fully and decodes as JSONBytesStrict.
func JSONReaderStrict(r io.Reader) (Value, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return Value{}, fmt.Errorf("punt: read json: %w", err)
	}
	return JSONBytesStrict(data)
}

// scanJSONDuplicateKeys walks the token stream and reports the first object
// key that appears twice within the same object. Nested objects track their
// own key sets.
func scanJSONDuplicateKeys(dec *json.Decoder) error {
	type frame struct {
		object       bool
		keys         map[string]struct{}
		expectingKey bool
	}
	var stack []frame
	for {
		tok, err := dec.Token()
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return fmt.Errorf("punt: scan json: %w", err)
		}
		switch v := tok.(type) {
		case json.Delim:
			switch v {
			case '{':
				stack = append(stack, frame{object: true, keys: make(map[string]struct{}), expectingKey: true})
			case '[':
				stack = append(stack, frame{})
			case '}', ']':
				if len(stack) > 0 {
					stack = stack[:len(stack)-1]
				}
				if len(stack) > 0 {
					top := &stack[len(stack)-1]
					if top.object && !top.expectingKey {
						top.expectingKey = true
					}
				}
			}
		case string:
			if len(stack) > 0 {
				top := &stack[len(stack)-1]
				if top.object && top.expectingKey {
					if _, dup := top.keys[v]; dup {
						return fmt.Errorf("punt: duplicate key %q in json object", v)
					}
					top.keys[v] = struct{}{}
					top.expectingKey = false
					continue
				}
				if top.object {
					top.expectingKey = true
				}
			}
		default:
			if len(stack) > 0 {
				top := &stack[len(stack)-1]
				if top.object && !top.expectingKey {
					top.expectingKey = true
				}
			}
		}
	}
}

// YAMLBytes decodes one YAML document into a Value. YAML distinguishes
// integer and float scalars natively, so no number mode is needed.
func YAMLBytes(data []byte) (Value, error) {
	var v any
	if err := yaml.Unmarshal(data, &v); err != nil {
		return Value{}, fmt.Errorf("punt: decode yaml: %w", err)
	}
	return FromGo(v)
}
