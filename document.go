package jsonfeed

import (
	"encoding/json"
	"math"
	"strconv"
)

// Document is the generic JSON object backing every typed value in this
// package. Values follow the encoding/json model: string, float64, bool,
// nil, []any, and map[string]any. Documents built in code may also hold
// json.Number and Go integer kinds; the accessors coerce them.
type Document map[string]any

// The field accessors below implement the per-kind contracts shared by
// every entity. Absence is (zero, false, nil); a present value of the wrong
// shape is ErrUnexpectedType. Setters and removers return the prior raw
// value, or nil if the key was absent.

func getString(d Document, key string) (string, bool, error) {
	v, ok := d[key]
	if !ok {
		return "", false, nil
	}
	s, ok := v.(string)
	if !ok {
		return "", false, ErrUnexpectedType
	}
	return s, true, nil
}

func setString(d Document, key, value string) any {
	prior := d[key]
	d[key] = value
	return prior
}

func getStringArray(d Document, key string) ([]string, bool, error) {
	v, ok := d[key]
	if !ok {
		return nil, false, nil
	}
	arr, ok := v.([]any)
	if !ok {
		return nil, false, ErrUnexpectedType
	}
	out := make([]string, len(arr))
	for i, elem := range arr {
		s, ok := elem.(string)
		if !ok {
			return nil, false, ErrUnexpectedType
		}
		out[i] = s
	}
	return out, true, nil
}

func setStringArray(d Document, key string, values []string) any {
	arr := make([]any, len(values))
	for i, s := range values {
		arr[i] = s
	}
	prior := d[key]
	d[key] = arr
	return prior
}

func getBool(d Document, key string) (bool, bool, error) {
	v, ok := d[key]
	if !ok {
		return false, false, nil
	}
	b, ok := v.(bool)
	if !ok {
		return false, false, ErrUnexpectedType
	}
	return b, true, nil
}

func setBool(d Document, key string, value bool) any {
	prior := d[key]
	d[key] = value
	return prior
}

func getUint(d Document, key string) (uint64, bool, error) {
	v, ok := d[key]
	if !ok {
		return 0, false, nil
	}
	n, err := asUint(v)
	if err != nil {
		return 0, false, err
	}
	return n, true, nil
}

// asUint coerces a JSON number to a non-negative 64-bit integer. Negative,
// fractional, and out-of-range values are type mismatches, as are
// non-number values.
func asUint(v any) (uint64, error) {
	switch n := v.(type) {
	case float64:
		if n < 0 || n != math.Trunc(n) || n >= 1<<64 {
			return 0, ErrUnexpectedType
		}
		return uint64(n), nil
	case json.Number:
		u, err := strconv.ParseUint(n.String(), 10, 64)
		if err != nil {
			return 0, ErrUnexpectedType
		}
		return u, nil
	case int:
		if n < 0 {
			return 0, ErrUnexpectedType
		}
		return uint64(n), nil
	case int64:
		if n < 0 {
			return 0, ErrUnexpectedType
		}
		return uint64(n), nil
	case uint64:
		return n, nil
	}
	return 0, ErrUnexpectedType
}

func setUint(d Document, key string, value uint64) any {
	prior := d[key]
	d[key] = value
	return prior
}

func getObject(d Document, key string) (Document, bool, error) {
	v, ok := d[key]
	if !ok {
		return nil, false, nil
	}
	obj, ok := asObject(v)
	if !ok {
		return nil, false, ErrUnexpectedType
	}
	return obj, true, nil
}

func setObject(d Document, key string, value Document) any {
	prior := d[key]
	d[key] = map[string]any(value)
	return prior
}

func getObjectArray(d Document, key string) ([]Document, bool, error) {
	v, ok := d[key]
	if !ok {
		return nil, false, nil
	}
	arr, ok := v.([]any)
	if !ok {
		return nil, false, ErrUnexpectedType
	}
	out := make([]Document, len(arr))
	for i, elem := range arr {
		obj, ok := asObject(elem)
		if !ok {
			return nil, false, ErrUnexpectedType
		}
		out[i] = obj
	}
	return out, true, nil
}

func setObjectArray(d Document, key string, values []Document) any {
	arr := make([]any, len(values))
	for i, obj := range values {
		arr[i] = map[string]any(obj)
	}
	prior := d[key]
	d[key] = arr
	return prior
}

func removeKey(d Document, key string) any {
	prior := d[key]
	delete(d, key)
	return prior
}

func asObject(v any) (Document, bool) {
	switch m := v.(type) {
	case map[string]any:
		return Document(m), true
	case Document:
		return m, true
	}
	return nil, false
}

// cloneDocument deep-copies a document, including extension values of any
// shape. Scalars are immutable and shared.
func cloneDocument(d Document) Document {
	out := make(Document, len(d))
	for k, v := range d {
		out[k] = cloneValue(v)
	}
	return out
}

func cloneValue(v any) any {
	switch x := v.(type) {
	case map[string]any:
		return map[string]any(cloneDocument(Document(x)))
	case Document:
		return map[string]any(cloneDocument(x))
	case []any:
		out := make([]any, len(x))
		for i, elem := range x {
			out[i] = cloneValue(elem)
		}
		return out
	}
	return v
}
