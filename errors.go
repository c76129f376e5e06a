package lottie

import (
	"errors"
	"fmt"
	"strings"

	"github.com/reoring/golottie/i18n"
)

// Error codes (exported consts for IDE completion and type safety by convention)
const (
	CodeFileNotJSON     = "file_not_json"
	CodeFileNotObject   = "file_not_object"
	CodeMissingChild    = "missing_child"
	CodeIncorrectType   = "incorrect_type"
	CodeUnexpectedChild = "unexpected_child"
	CodeUnsupported     = "unsupported"
	// Input enforcement
	CodeDuplicateKey = "duplicate_key"
	CodeMaxDepth     = "max_depth"
	CodeTruncated    = "truncated"
)

// Sentinels for errors.Is. Every *Error matches the sentinel of its Code.
var (
	ErrFileNotJSON     = errors.New("lottie: file is not json")
	ErrFileNotObject   = errors.New("lottie: file is not an object")
	ErrMissingChild    = errors.New("lottie: missing child")
	ErrIncorrectType   = errors.New("lottie: incorrect type")
	ErrUnexpectedChild = errors.New("lottie: unexpected child")
	ErrUnsupported     = errors.New("lottie: unsupported")
	ErrDuplicateKey    = errors.New("lottie: duplicate key")
	ErrMaxDepth        = errors.New("lottie: max depth exceeded")
	ErrTruncated       = errors.New("lottie: input too large")
)

var sentinels = map[string]error{
	CodeFileNotJSON:     ErrFileNotJSON,
	CodeFileNotObject:   ErrFileNotObject,
	CodeMissingChild:    ErrMissingChild,
	CodeIncorrectType:   ErrIncorrectType,
	CodeUnexpectedChild: ErrUnexpectedChild,
	CodeUnsupported:     ErrUnsupported,
	CodeDuplicateKey:    ErrDuplicateKey,
	CodeMaxDepth:        ErrMaxDepth,
	CodeTruncated:       ErrTruncated,
}

// Error is a single structured diagnostic.
type Error struct {
	Code string
	// Breadcrumb is the parser position when the error was raised.
	Breadcrumb Breadcrumb
	// Key is the offending field for missing_child and incorrect_type.
	Key string
	// Expected is the shape that was wanted (incorrect_type, unexpected_child).
	Expected ValueType
	// Kind describes the unsupported variant, e.g. `shape "zz" (zig zag)`.
	Kind string
	// Pointer is a JSON Pointer for input-level errors (duplicate_key, max_depth, truncated).
	Pointer string
	Cause   error
}

func (e *Error) Error() string { return e.Localize(i18n.English) }

// Localize renders the message with tr.
func (e *Error) Localize(tr i18n.Translator) string {
	data := map[string]string{
		"path":     e.Breadcrumb.String(),
		"key":      e.Key,
		"expected": e.Expected.String(),
		"kind":     e.Kind,
		"pointer":  e.Pointer,
		"cause":    "",
	}
	if e.Cause != nil {
		data["cause"] = e.Cause.Error()
	}
	return tr.Message(e.Code, data)
}

func (e *Error) Unwrap() error { return e.Cause }

// Is matches the sentinel for e.Code.
func (e *Error) Is(target error) bool {
	s, ok := sentinels[e.Code]
	return ok && s == target
}

// Path returns the rendered breadcrumb.
func (e *Error) Path() string { return e.Breadcrumb.String() }

// MissingChild reports a required key that is absent.
func MissingChild(bc *Breadcrumb, key string) *Error {
	return &Error{Code: CodeMissingChild, Breadcrumb: bc.Snapshot(), Key: key}
}

// IncorrectType reports a key whose value has the wrong JSON shape.
func IncorrectType(bc *Breadcrumb, key string, expected ValueType) *Error {
	return &Error{Code: CodeIncorrectType, Breadcrumb: bc.Snapshot(), Key: key, Expected: expected}
}

// UnexpectedChild reports a value that matches no known variant.
func UnexpectedChild(bc *Breadcrumb, expected ValueType) *Error {
	return &Error{Code: CodeUnexpectedChild, Breadcrumb: bc.Snapshot(), Expected: expected}
}

// Unsupported reports a recognised variant that has no implementation.
func Unsupported(bc *Breadcrumb, kind string) *Error {
	return &Error{Code: CodeUnsupported, Breadcrumb: bc.Snapshot(), Kind: kind}
}

// Unsupportedf is Unsupported with a formatted kind.
func Unsupportedf(bc *Breadcrumb, format string, args ...any) *Error {
	return Unsupported(bc, fmt.Sprintf(format, args...))
}

// AsError extracts an *Error from err using errors.As internally.
func AsError(err error) (*Error, bool) {
	if err == nil {
		return nil, false
	}
	var e *Error
	if errors.As(err, &e) {
		return e, true
	}
	return nil, false
}

// Issues is a collection of diagnostics that implements error. It is used for
// warnings gathered through an IssueSink.
type Issues []*Error

// Error summarizes the first few issues.
func (iss Issues) Error() string {
	if len(iss) == 0 {
		return ""
	}
	const maxShown = 3
	b := &strings.Builder{}
	lim := min(len(iss), maxShown)
	for i := 0; i < lim; i++ {
		if i > 0 {
			b.WriteString("; ")
		}
		// e.g. incorrect_type at (root)>"Layer"
		if iss[i].Pointer != "" {
			fmt.Fprintf(b, "%s at %s", iss[i].Code, iss[i].Pointer)
		} else {
			fmt.Fprintf(b, "%s at %s", iss[i].Code, iss[i].Path())
		}
	}
	if len(iss) > lim {
		fmt.Fprintf(b, "; ... (total %d)", len(iss))
	}
	return b.String()
}

// Collect returns an issue sink that appends to dst.
func Collect(dst *Issues) func(*Error) {
	return func(e *Error) { *dst = append(*dst, e) }
}
