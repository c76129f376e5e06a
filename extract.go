package lottie

import (
	"encoding/json"
	"math"

	gojson "github.com/goccy/go-json"
)

// The Extract* accessors read one key of a decoded JSON object. A missing key
// yields MissingChild, a value of the wrong JSON shape yields IncorrectType.
// Errors carry a snapshot of bc taken at call time.

// ExtractValue returns the raw value under key.
func ExtractValue(bc *Breadcrumb, obj map[string]any, key string) (any, error) {
	v, ok := obj[key]
	if !ok {
		return nil, MissingChild(bc, key)
	}
	return v, nil
}

// ExtractString returns a string value.
func ExtractString(bc *Breadcrumb, obj map[string]any, key string) (string, error) {
	v, err := ExtractValue(bc, obj, key)
	if err != nil {
		return "", err
	}
	s, ok := v.(string)
	if !ok {
		return "", IncorrectType(bc, key, String)
	}
	return s, nil
}

// ExtractNumber returns a numeric value as float64.
func ExtractNumber(bc *Breadcrumb, obj map[string]any, key string) (float64, error) {
	v, err := ExtractValue(bc, obj, key)
	if err != nil {
		return 0, err
	}
	f, ok := AsNumber(v)
	if !ok {
		return 0, IncorrectType(bc, key, Number)
	}
	return f, nil
}

// ExtractBool returns a JSON boolean.
func ExtractBool(bc *Breadcrumb, obj map[string]any, key string) (bool, error) {
	v, err := ExtractValue(bc, obj, key)
	if err != nil {
		return false, err
	}
	b, ok := v.(bool)
	if !ok {
		return false, IncorrectType(bc, key, Bool)
	}
	return b, nil
}

// ExtractBoolInt returns a boolean coded as the number 0 or 1.
func ExtractBoolInt(bc *Breadcrumb, obj map[string]any, key string) (bool, error) {
	v, err := ExtractValue(bc, obj, key)
	if err != nil {
		return false, err
	}
	f, ok := AsNumber(v)
	if !ok || (f != 0 && f != 1) {
		return false, IncorrectType(bc, key, BoolInt)
	}
	return f == 1, nil
}

// ExtractArr returns a JSON array.
func ExtractArr(bc *Breadcrumb, obj map[string]any, key string) ([]any, error) {
	v, err := ExtractValue(bc, obj, key)
	if err != nil {
		return nil, err
	}
	arr, ok := v.([]any)
	if !ok {
		return nil, IncorrectType(bc, key, Array)
	}
	return arr, nil
}

// ExtractObj returns a JSON object.
func ExtractObj(bc *Breadcrumb, obj map[string]any, key string) (map[string]any, error) {
	v, err := ExtractValue(bc, obj, key)
	if err != nil {
		return nil, err
	}
	m, ok := v.(map[string]any)
	if !ok {
		return nil, IncorrectType(bc, key, Object)
	}
	return m, nil
}

// ExtractType converts the value under key into T by re-encoding it, so any
// shape encoding/json tags can describe is accepted. expected names the shape
// in the IncorrectType error.
func ExtractType[T any](bc *Breadcrumb, obj map[string]any, key string, expected ValueType) (T, error) {
	var out T
	v, err := ExtractValue(bc, obj, key)
	if err != nil {
		return out, err
	}
	if err := Convert(v, &out); err != nil {
		return out, IncorrectType(bc, key, expected)
	}
	return out, nil
}

// ExtractEnum reads an integer-coded enum. Values outside valid are reported
// as IncorrectType with expected EnumInt.
func ExtractEnum[E ~int](bc *Breadcrumb, obj map[string]any, key string, valid func(E) bool) (E, error) {
	f, err := ExtractNumber(bc, obj, key)
	if err != nil {
		if e, ok := AsError(err); ok && e.Code == CodeIncorrectType {
			e.Expected = EnumInt
		}
		return 0, err
	}
	if f != math.Trunc(f) || !valid(E(f)) {
		return 0, IncorrectType(bc, key, EnumInt)
	}
	return E(f), nil
}

// Convert re-encodes v into out with go-json.
func Convert(v any, out any) error {
	b, err := gojson.Marshal(v)
	if err != nil {
		return err
	}
	return gojson.Unmarshal(b, out)
}

// AsNumber reports the numeric value of a decoded JSON number of any of the
// representations the sources produce.
func AsNumber(v any) (float64, bool) {
	switch n := v.(type) {
	case json.Number:
		f, err := n.Float64()
		return f, err == nil
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	case int64:
		return float64(n), true
	case int32:
		return float64(n), true
	case uint64:
		return float64(n), true
	}
	return 0, false
}
