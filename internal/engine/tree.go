package engine

import (
	"encoding/json"
	"fmt"
	"io"
	"sort"
	"strconv"
)

// NewTreeSource replays an already-decoded value as a token stream, so that
// documents read by non-streaming decoders (YAML) pass through the same
// enforcement and decoding path as JSON. Object keys are emitted in sorted
// order.
func NewTreeSource(v any) TokenSource {
	t := &treeSource{}
	t.emit(v)
	return t
}

type treeSource struct {
	toks []Token
	pos  int
	err  error
}

func (t *treeSource) emit(v any) {
	if t.err != nil {
		return
	}
	switch x := v.(type) {
	case map[string]any:
		t.toks = append(t.toks, Token{Kind: KindBeginObject, Offset: -1})
		keys := make([]string, 0, len(x))
		for k := range x {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		for _, k := range keys {
			t.toks = append(t.toks, Token{Kind: KindKey, String: k, Offset: -1})
			t.emit(x[k])
		}
		t.toks = append(t.toks, Token{Kind: KindEndObject, Offset: -1})
	case []any:
		t.toks = append(t.toks, Token{Kind: KindBeginArray, Offset: -1})
		for _, e := range x {
			t.emit(e)
		}
		t.toks = append(t.toks, Token{Kind: KindEndArray, Offset: -1})
	case string:
		t.toks = append(t.toks, Token{Kind: KindString, String: x, Offset: -1})
	case bool:
		t.toks = append(t.toks, Token{Kind: KindBool, Bool: x, Offset: -1})
	case nil:
		t.toks = append(t.toks, Token{Kind: KindNull, Offset: -1})
	case json.Number:
		t.toks = append(t.toks, Token{Kind: KindNumber, Number: string(x), Offset: -1})
	case float64:
		t.toks = append(t.toks, Token{Kind: KindNumber, Number: strconv.FormatFloat(x, 'g', -1, 64), Offset: -1})
	case int:
		t.toks = append(t.toks, Token{Kind: KindNumber, Number: strconv.Itoa(x), Offset: -1})
	case int64:
		t.toks = append(t.toks, Token{Kind: KindNumber, Number: strconv.FormatInt(x, 10), Offset: -1})
	case uint64:
		t.toks = append(t.toks, Token{Kind: KindNumber, Number: strconv.FormatUint(x, 10), Offset: -1})
	default:
		t.err = fmt.Errorf("engine: unsupported tree value of type %T", v)
	}
}

func (t *treeSource) NextToken() (Token, error) {
	if t.err != nil {
		return Token{}, t.err
	}
	if t.pos >= len(t.toks) {
		return Token{}, io.EOF
	}
	tok := t.toks[t.pos]
	t.pos++
	return tok, nil
}

func (t *treeSource) Location() int64 { return -1 }
