package schema

import (
	gojson "github.com/goccy/go-json"
)

// Marshal writes the document back to JSON. Only modelled fields are written.
func Marshal(doc *Lottie) ([]byte, error) { return gojson.Marshal(doc) }

// jsonObject collects the keys of one object being written.
type jsonObject map[string]any

func setOpt[T any](o jsonObject, key string, v *T) {
	if v != nil {
		o[key] = *v
	}
}

func setBoolInt(o jsonObject, key string, v *bool) {
	if v != nil {
		o[key] = boolToInt(*v)
	}
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}

func (o jsonObject) marshal() ([]byte, error) { return gojson.Marshal(map[string]any(o)) }

func jsonMarshal(v any) ([]byte, error) { return gojson.Marshal(v) }
