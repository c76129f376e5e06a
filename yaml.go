package lottie

import (
	"fmt"

	"gopkg.in/yaml.v3"

	eng "github.com/reoring/golottie/internal/engine"
)

// YAMLBytes decodes a YAML document and exposes it as a Source, so YAML
// authored animations go through the same enforcement and schema parsing as
// JSON ones. Decode failures surface as file_not_json when the source is read.
func YAMLBytes(b []byte) Source {
	var v any
	if err := yaml.Unmarshal(b, &v); err != nil {
		return errSource{err: fmt.Errorf("yaml: %w", err)}
	}
	return eng.NewTreeSource(yamlNormalizeValue(v))
}

func yamlNormalizeValue(v any) any {
	switch t := v.(type) {
	case map[string]any:
		out := make(map[string]any, len(t))
		for k, vv := range t {
			out[k] = yamlNormalizeValue(vv)
		}
		return out
	case map[any]any:
		out := make(map[string]any, len(t))
		for k, vv := range t {
			out[fmt.Sprint(k)] = yamlNormalizeValue(vv)
		}
		return out
	case []any:
		arr := make([]any, len(t))
		for i := range t {
			arr[i] = yamlNormalizeValue(t[i])
		}
		return arr
	default:
		return v
	}
}

type errSource struct{ err error }

func (s errSource) NextToken() (Token, error) { return Token{}, s.err }
func (s errSource) Location() int64           { return -1 }
