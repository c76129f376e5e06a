package lottie

import (
	"io"
	"strings"

	eng "github.com/reoring/golottie/internal/engine"
	"github.com/reoring/golottie/source/gojson"
	jsonsrc "github.com/reoring/golottie/source/json"
)

// TokenKind enumerates JSON token kinds.
type TokenKind = eng.Kind

const (
	TokenBeginObject = eng.KindBeginObject
	TokenEndObject   = eng.KindEndObject
	TokenBeginArray  = eng.KindBeginArray
	TokenEndArray    = eng.KindEndArray
	TokenKey         = eng.KindKey
	TokenString      = eng.KindString
	TokenNumber      = eng.KindNumber
	TokenBool        = eng.KindBool
	TokenNull        = eng.KindNull
)

// Token describes a token in the input stream. Offset records the byte
// position when known (-1 otherwise).
type Token = eng.Token

// Source abstracts over input formats as a stream of JSON tokens.
type Source interface {
	NextToken() (Token, error)
	Location() int64 // byte offset; -1 if unknown
}

// JSONDriver converts JSON input into a Source. Drivers are chosen per call
// through ParseOpt.Driver; there is no global driver.
type JSONDriver interface {
	NewReader(r io.Reader) Source
	NewBytes(b []byte) Source
	Name() string
}

// GoJSON returns the driver backed by goccy/go-json. It is the default.
func GoJSON() JSONDriver { return goJSONDriver{} }

// StdJSON returns the driver backed by encoding/json.
func StdJSON() JSONDriver { return stdJSONDriver{} }

type goJSONDriver struct{}

func (goJSONDriver) NewReader(r io.Reader) Source { return gojson.NewReader(r) }
func (goJSONDriver) NewBytes(b []byte) Source     { return gojson.NewBytes(b) }
func (goJSONDriver) Name() string                 { return "go-json" }

type stdJSONDriver struct{}

func (stdJSONDriver) NewReader(r io.Reader) Source { return jsonsrc.NewReader(r) }
func (stdJSONDriver) NewBytes(b []byte) Source     { return jsonsrc.NewBytes(b) }
func (stdJSONDriver) Name() string                 { return "encoding/json" }

// DriverOf returns opt.Driver or the default driver.
func DriverOf(opt ParseOpt) JSONDriver {
	if opt.Driver != nil {
		return opt.Driver
	}
	return GoJSON()
}

// JSONBytes wraps a byte slice as a JSON Source using the default driver.
func JSONBytes(b []byte) Source { return GoJSON().NewBytes(b) }

// JSONReader wraps an io.Reader as a JSON Source using the default driver.
func JSONReader(r io.Reader) Source { return GoJSON().NewReader(r) }

// JSONString wraps a string as a JSON Source using the default driver.
func JSONString(s string) Source { return GoJSON().NewReader(strings.NewReader(s)) }

// SourceFromValue replays an already decoded value (maps, slices, strings,
// numbers, bools, nil) as a Source.
func SourceFromValue(v any) Source { return eng.NewTreeSource(v) }
