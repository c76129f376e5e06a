// Package i18n renders diagnostic codes as human readable messages.
package i18n

import "strings"

// Translator retrieves localized messages for error codes.
// data provides values to substitute into {placeholders} such as
// "key", "expected", "path", "kind" and "cause".
type Translator interface {
	Message(code string, data map[string]string) string
}

// dictTranslator is the built-in dictionary-based Translator.
type dictTranslator struct {
	lang string
	dict map[string]string
}

func (t dictTranslator) Message(code string, data map[string]string) string {
	tmpl, ok := t.dict[code]
	if !ok {
		return code
	}
	if len(data) == 0 {
		return tmpl
	}
	pairs := make([]string, 0, 2*len(data))
	for k, v := range data {
		pairs = append(pairs, "{"+k+"}", v)
	}
	return strings.NewReplacer(pairs...).Replace(tmpl)
}

var en = map[string]string{
	"file_not_json":    "the file is not valid json: {cause}",
	"file_not_object":  "the root of the file is not an object",
	"missing_child":    "expected the child key '{key}' in path: {path}",
	"incorrect_type":   "'{key}' is the wrong type, expected: {expected} in path: {path}",
	"unexpected_child": "expected children to be '{expected}' in path: {path}",
	"unsupported":      "{kind} is not supported in path: {path}",
	"duplicate_key":    "duplicate key at {pointer}",
	"max_depth":        "maximum nesting depth exceeded at {pointer}",
	"truncated":        "maximum input size exceeded at {pointer}",
}

var ja = map[string]string{
	"file_not_json":    "有効な JSON ではありません: {cause}",
	"file_not_object":  "ルートがオブジェクトではありません",
	"missing_child":    "子キー '{key}' がありません (パス: {path})",
	"incorrect_type":   "'{key}' の型が不正です。期待: {expected} (パス: {path})",
	"unexpected_child": "子要素は '{expected}' であるべきです (パス: {path})",
	"unsupported":      "{kind} はサポートされていません (パス: {path})",
	"duplicate_key":    "キーが重複しています ({pointer})",
	"max_depth":        "ネストが深すぎます ({pointer})",
	"truncated":        "入力サイズの上限を超えました ({pointer})",
}

// English is the default translator.
var English Translator = &dictTranslator{lang: "en", dict: en}

// Japanese renders messages in Japanese.
var Japanese Translator = &dictTranslator{lang: "ja", dict: ja}

// For returns the built-in translator for lang ("en"/"ja"), falling back to English.
func For(lang string) Translator {
	if lang == "ja" {
		return Japanese
	}
	return English
}

// T renders a message with the English translator.
func T(code string, data map[string]string) string { return English.Message(code, data) }
