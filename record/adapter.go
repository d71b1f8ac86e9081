package record

import (
	"encoding/json"
	"fmt"
)

// FromAny converts a Go value into a typed Value.
//
// This exists as an adapter layer for loosely typed input such as decoded JSON.
func FromAny(v any) (Value, error) {
	switch x := v.(type) {
	case nil:
		return Null(), nil
	case Value:
		return x, nil
	case bool:
		return Bool(x), nil
	case string:
		return String(x), nil
	case json.Number:
		if i, err := x.Int64(); err == nil {
			return Int(i), nil
		}
		f, err := x.Float64()
		if err != nil {
			return Value{}, fmt.Errorf("invalid number %q: %w", x.String(), err)
		}
		return Float(f), nil
	case float64:
		return Float(x), nil
	case float32:
		return Float(float64(x)), nil
	case int:
		return Int(int64(x)), nil
	case int8:
		return Int(int64(x)), nil
	case int16:
		return Int(int64(x)), nil
	case int32:
		return Int(int64(x)), nil
	case int64:
		return Int(x), nil
	case uint:
		return Int(int64(x)), nil
	case uint8:
		return Int(int64(x)), nil
	case uint16:
		return Int(int64(x)), nil
	case uint32:
		return Int(int64(x)), nil
	case uint64:
		if x > uint64(1<<63-1) {
			return Value{}, fmt.Errorf("uint64 value out of range: %d", x)
		}
		return Int(int64(x)), nil
	case []Value:
		return Array(x), nil
	case []any:
		arr := make([]Value, len(x))
		for i := range x {
			vv, err := FromAny(x[i])
			if err != nil {
				return Value{}, err
			}
			arr[i] = vv
		}
		return Array(arr), nil
	case []string:
		return Strings(x...), nil
	case []int:
		arr := make([]Value, len(x))
		for i := range x {
			arr[i] = Int(int64(x[i]))
		}
		return Array(arr), nil
	case []float64:
		arr := make([]Value, len(x))
		for i := range x {
			arr[i] = Float(x[i])
		}
		return Array(arr), nil
	case map[string]struct{}:
		// Set-shaped input.
		arr := make([]Value, 0, len(x))
		for k := range x {
			arr = append(arr, String(k))
		}
		return Array(arr), nil
	default:
		return Value{}, fmt.Errorf("unsupported value type %T", v)
	}
}

// FieldError reports a field whose value could not be converted.
type FieldError struct {
	Field string
	Err   error
}

func (e *FieldError) Error() string {
	return fmt.Sprintf("field %q: %v", e.Field, e.Err)
}

func (e *FieldError) Unwrap() error { return e.Err }

// FromMap converts a loosely typed map into a Record.
//
// The "id" key becomes Record.ID (numbers are rendered as text) and
// "isDisabled" becomes Record.Disabled; both also stay addressable as fields.
// Keys prefixed with an underscore populate the
// shadow side-table under the unprefixed name. A missing id is not an error:
// the returned record simply has an empty ID.
func FromMap(m map[string]any) (Record, error) {
	rec := Record{Fields: make(Document, len(m))}
	for k, raw := range m {
		v, err := FromAny(raw)
		if err != nil {
			return Record{}, &FieldError{Field: k, Err: err}
		}
		switch {
		case k == FieldID:
			if v.Kind == KindString || v.IsNumber() {
				rec.ID = v.String()
			}
			rec.Fields[k] = v
		case k == FieldDisabled:
			rec.Disabled = v.Kind == KindBool && v.B
			rec.Fields[k] = v
		case len(k) > len(ShadowPrefix) && k[:len(ShadowPrefix)] == ShadowPrefix:
			if rec.Shadow == nil {
				rec.Shadow = make(Document)
			}
			rec.Shadow[k[len(ShadowPrefix):]] = v
		default:
			rec.Fields[k] = v
		}
	}
	return rec, nil
}

// ToMap converts a Record back into the loose map form accepted by FromMap.
func ToMap(rec Record) map[string]any {
	m := make(map[string]any, len(rec.Fields)+len(rec.Shadow)+2)
	for k, v := range rec.Fields {
		m[k] = v.Interface()
	}
	for k, v := range rec.Shadow {
		m[ShadowPrefix+k] = v.Interface()
	}
	m[FieldID] = rec.ID
	if rec.Disabled {
		m[FieldDisabled] = true
	}
	return m
}
