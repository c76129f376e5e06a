package schema

import (
	"io"
	"math"

	lottie "github.com/reoring/golottie"
)

// Parse reads a Lottie document from src.
func Parse(src lottie.Source, opts ...lottie.ParseOpt) (*Lottie, error) {
	opt := lottie.LastOpt(opts)
	obj, err := lottie.DecodeObject(src, opt)
	if err != nil {
		return nil, err
	}
	return FromObject(obj, opt)
}

// FromBytes parses JSON bytes with the driver selected in opts.
func FromBytes(data []byte, opts ...lottie.ParseOpt) (*Lottie, error) {
	opt := lottie.LastOpt(opts)
	return Parse(lottie.DriverOf(opt).NewBytes(data), opt)
}

// FromString parses a JSON string.
func FromString(s string, opts ...lottie.ParseOpt) (*Lottie, error) {
	return FromBytes([]byte(s), opts...)
}

// FromReader parses JSON read from r.
func FromReader(r io.Reader, opts ...lottie.ParseOpt) (*Lottie, error) {
	opt := lottie.LastOpt(opts)
	return Parse(lottie.DriverOf(opt).NewReader(r), opt)
}

// FromYAML parses a document written in YAML.
func FromYAML(data []byte, opts ...lottie.ParseOpt) (*Lottie, error) {
	return Parse(lottie.YAMLBytes(data), opts...)
}

// FromObject builds a document from an already decoded JSON object.
func FromObject(obj map[string]any, opts ...lottie.ParseOpt) (*Lottie, error) {
	p := newParser(lottie.LastOpt(opts))
	return p.lottie(obj)
}

// parser carries the per-call state of one parse. It is never shared.
type parser struct {
	bc  *lottie.Breadcrumb
	opt lottie.ParseOpt
}

func newParser(opt lottie.ParseOpt) *parser {
	bc := lottie.NewBreadcrumb()
	bc.SetLogger(opt.Logger)
	return &parser{bc: bc, opt: opt}
}

// skip reports whether err may be dropped in favour of leaving the variant out.
func (p *parser) skip(err error) bool {
	e, ok := lottie.AsError(err)
	if !ok || e.Code != lottie.CodeUnsupported || !p.opt.SkipUnsupported {
		return false
	}
	p.opt.Warn(e)
	return true
}

// extractFn reads key from obj.
type extractFn[T any] func(obj map[string]any, key string) (T, error)

// fields reads the keys of one object. The first required-field failure
// sticks and turns later reads into no-ops.
type fields struct {
	p   *parser
	obj map[string]any
	err error
}

func (p *parser) fields(obj map[string]any) *fields { return &fields{p: p, obj: obj} }

func req[T any](f *fields, key string, fn extractFn[T]) T {
	var zero T
	if f.err != nil {
		return zero
	}
	v, err := fn(f.obj, key)
	if err != nil {
		f.err = err
		return zero
	}
	return v
}

// opt reads an optional key. Absent keys give nil. A value of the wrong
// shape at the key itself is reported as a warning and gives nil, unless
// StrictOptional is set. Errors raised inside the value's own children and
// unsupported variants fail like required fields.
func opt[T any](f *fields, key string, fn extractFn[T]) *T {
	if f.err != nil {
		return nil
	}
	if _, ok := f.obj[key]; !ok {
		return nil
	}
	depth := f.p.bc.Len()
	v, err := fn(f.obj, key)
	if err != nil {
		e, ok := lottie.AsError(err)
		if !ok || f.p.opt.StrictOptional || e.Code == lottie.CodeUnsupported || e.Breadcrumb.Len() > depth {
			f.err = err
			return nil
		}
		f.p.opt.Warn(e)
		return nil
	}
	return &v
}

// ---- primitive extractors bound to the parser breadcrumb ----

func (p *parser) value(obj map[string]any, key string) (any, error) {
	return lottie.ExtractValue(p.bc, obj, key)
}

func (p *parser) str(obj map[string]any, key string) (string, error) {
	return lottie.ExtractString(p.bc, obj, key)
}

func (p *parser) num(obj map[string]any, key string) (float64, error) {
	return lottie.ExtractNumber(p.bc, obj, key)
}

func (p *parser) integer(obj map[string]any, key string) (int, error) {
	f, err := lottie.ExtractNumber(p.bc, obj, key)
	if err != nil {
		return 0, err
	}
	if f != math.Trunc(f) {
		return 0, lottie.IncorrectType(p.bc, key, lottie.Number)
	}
	return int(f), nil
}

func (p *parser) boolean(obj map[string]any, key string) (bool, error) {
	return lottie.ExtractBool(p.bc, obj, key)
}

func (p *parser) boolInt(obj map[string]any, key string) (bool, error) {
	return lottie.ExtractBoolInt(p.bc, obj, key)
}

func (p *parser) object(obj map[string]any, key string) (map[string]any, error) {
	return lottie.ExtractObj(p.bc, obj, key)
}

func (p *parser) vector(obj map[string]any, key string) ([]float64, error) {
	v, err := lottie.ExtractValue(p.bc, obj, key)
	if err != nil {
		return nil, err
	}
	out, ok := asVector(v)
	if !ok {
		return nil, lottie.IncorrectType(p.bc, key, lottie.Array)
	}
	return out, nil
}

func strEnum[E ~string](p *parser, valid func(E) bool) extractFn[E] {
	return func(obj map[string]any, key string) (E, error) {
		s, err := lottie.ExtractString(p.bc, obj, key)
		if err != nil {
			return "", err
		}
		if !valid(E(s)) {
			return "", lottie.IncorrectType(p.bc, key, lottie.EnumStr)
		}
		return E(s), nil
	}
}

func enum[E ~int](p *parser, valid func(E) bool) extractFn[E] {
	return func(obj map[string]any, key string) (E, error) {
		return lottie.ExtractEnum(p.bc, obj, key, valid)
	}
}

// objects reads key as an array of objects, calling each for every element.
func (p *parser) objects(obj map[string]any, key string, each func(i int, o map[string]any) error) error {
	arr, err := lottie.ExtractArr(p.bc, obj, key)
	if err != nil {
		return err
	}
	for i, it := range arr {
		o, ok := it.(map[string]any)
		if !ok {
			return lottie.IncorrectType(p.bc, key, lottie.Object)
		}
		if err := each(i, o); err != nil {
			return err
		}
	}
	return nil
}

// nameOf returns the "nm" of obj when it is a string.
func nameOf(obj map[string]any) *string {
	if s, ok := obj["nm"].(string); ok {
		return &s
	}
	return nil
}

func asVector(v any) ([]float64, bool) {
	arr, ok := v.([]any)
	if !ok {
		return nil, false
	}
	out := make([]float64, len(arr))
	for i, e := range arr {
		f, ok := lottie.AsNumber(e)
		if !ok {
			return nil, false
		}
		out[i] = f
	}
	return out, true
}
