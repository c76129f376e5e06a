package schema

import (
	lottie "github.com/reoring/golottie"
)

// Component is one coordinate of an easing handle. Lottie writes it either
// as a bare number or as a per-dimension array; Scalar remembers which.
type Component struct {
	Values []float64
	Scalar bool
}

// First returns the first value, or 0.
func (c Component) First() float64 {
	if len(c.Values) == 0 {
		return 0
	}
	return c.Values[0]
}

func (c Component) MarshalJSON() ([]byte, error) {
	if c.Scalar && len(c.Values) == 1 {
		return jsonMarshal(c.Values[0])
	}
	return jsonMarshal(c.Values)
}

// BezierHandle is a keyframe easing control point (i/o).
type BezierHandle struct {
	X, Y Component
}

func (h BezierHandle) MarshalJSON() ([]byte, error) {
	return jsonObject{"x": h.X, "y": h.Y}.marshal()
}

// Keyframe is one entry of an animated property's keyframe list.
type Keyframe struct {
	Time float64 // t
	// Value is the start value (s). Scalars are one-element arrays. Nil when
	// the keyframe only marks an end time.
	Value []float64
	// End is the deprecated end value (e).
	End  []float64
	Hold *bool // h
	// In and Out are the easing handles (i, o).
	In, Out *BezierHandle
	// InTangent and OutTangent are spatial tangents of position keyframes (ti, to).
	InTangent, OutTangent []float64
}

func (k Keyframe) MarshalJSON() ([]byte, error) {
	o := jsonObject{"t": k.Time}
	if k.Value != nil {
		o["s"] = k.Value
	}
	if k.End != nil {
		o["e"] = k.End
	}
	setBoolInt(o, "h", k.Hold)
	setOpt(o, "i", k.In)
	setOpt(o, "o", k.Out)
	if k.InTangent != nil {
		o["ti"] = k.InTangent
	}
	if k.OutTangent != nil {
		o["to"] = k.OutTangent
	}
	return o.marshal()
}

// AnimatedProperty is a property that is either a static value or a list of
// keyframes. Keyframes is nil for static properties.
type AnimatedProperty[T any] struct {
	Index      *int    // ix
	Expression *string // x
	SlotID     *string // sid
	// Animated is the a flag as written. Whether the property is keyframed is
	// decided by the shape of k.
	Animated *bool
	// Length is the dimension count some exporters write (l).
	Length    *int
	Static    T
	Keyframes []Keyframe
}

// IsAnimated reports whether the property holds keyframes.
func (a AnimatedProperty[T]) IsAnimated() bool { return a.Keyframes != nil }

func (a AnimatedProperty[T]) object() jsonObject {
	o := jsonObject{}
	setOpt(o, "ix", a.Index)
	setOpt(o, "x", a.Expression)
	setOpt(o, "sid", a.SlotID)
	setBoolInt(o, "a", a.Animated)
	setOpt(o, "l", a.Length)
	if a.Keyframes != nil {
		o["k"] = a.Keyframes
	} else {
		o["k"] = a.Static
	}
	return o
}

func (a AnimatedProperty[T]) MarshalJSON() ([]byte, error) { return a.object().marshal() }

// FloatValue is a scalar animated property.
type FloatValue = AnimatedProperty[float64]

// MultiDimensional is a vector animated property (scale, size, points).
type MultiDimensional = AnimatedProperty[[]float64]

// ColorValue is an RGB(A) animated property with components in 0..1.
type ColorValue = MultiDimensional

// Position is a spatial vector property. Its keyframes may carry spatial
// tangents (ti, to).
type Position struct {
	MultiDimensional
}

// SplitVector is a position animated per axis (s = true).
type SplitVector struct {
	X, Y FloatValue
	Z    *FloatValue
}

func (s SplitVector) MarshalJSON() ([]byte, error) {
	o := jsonObject{"s": true, "x": s.X, "y": s.Y}
	setOpt(o, "z", s.Z)
	return o.marshal()
}

// ---- parsing ----

func (p *parser) floatValue(obj map[string]any, key string) (FloatValue, error) {
	return parseAnimated(p, obj, key, staticNumber, lottie.StaticNumber)
}

func (p *parser) multiDim(obj map[string]any, key string) (MultiDimensional, error) {
	return parseAnimated(p, obj, key, asVector, lottie.StaticVector)
}

func (p *parser) position(obj map[string]any, key string) (Position, error) {
	md, err := parseAnimated(p, obj, key, asVector, lottie.StaticVector)
	return Position{MultiDimensional: md}, err
}

func (p *parser) splitVector(obj map[string]any, key string) (SplitVector, error) {
	sv, err := p.object(obj, key)
	if err != nil {
		return SplitVector{}, err
	}
	f := p.fields(sv)
	out := SplitVector{
		X: req(f, "x", p.floatValue),
		Y: req(f, "y", p.floatValue),
		Z: opt(f, "z", p.floatValue),
	}
	return out, f.err
}

func staticNumber(v any) (float64, bool) { return lottie.AsNumber(v) }

// parseAnimated reads the property object under key. static converts a
// non-keyframed k.
func parseAnimated[T any](p *parser, obj map[string]any, key string, static func(any) (T, bool), expected lottie.ValueType) (AnimatedProperty[T], error) {
	var out AnimatedProperty[T]
	prop, err := p.object(obj, key)
	if err != nil {
		return out, err
	}
	f := p.fields(prop)
	out.Index = opt(f, "ix", p.integer)
	out.Expression = opt(f, "x", p.str)
	out.SlotID = opt(f, "sid", p.str)
	out.Animated = opt(f, "a", p.boolInt)
	out.Length = opt(f, "l", p.integer)
	k := req(f, "k", p.value)
	if f.err != nil {
		return out, f.err
	}

	if isKeyframeList(k) {
		out.Keyframes, err = p.keyframes(prop)
		return out, err
	}
	v, ok := static(k)
	if !ok {
		return out, lottie.IncorrectType(p.bc, "k", expected)
	}
	out.Static = v
	return out, nil
}

func isKeyframeList(v any) bool {
	arr, ok := v.([]any)
	if !ok || len(arr) == 0 {
		return false
	}
	_, ok = arr[0].(map[string]any)
	return ok
}

func (p *parser) keyframes(prop map[string]any) ([]Keyframe, error) {
	var out []Keyframe
	err := p.objects(prop, "k", func(_ int, kf map[string]any) error {
		defer p.bc.EnterUnnamed(lottie.Keyframe)()
		f := p.fields(kf)
		k := Keyframe{
			Time:       req(f, "t", p.num),
			Hold:       opt(f, "h", p.boolInt),
			In:         opt(f, "i", p.bezierHandle),
			Out:        opt(f, "o", p.bezierHandle),
			InTangent:  deref(opt(f, "ti", p.vector)),
			OutTangent: deref(opt(f, "to", p.vector)),
		}
		if _, ok := kf["s"]; ok {
			k.Value = req(f, "s", p.vector)
		}
		k.End = deref(opt(f, "e", p.vector))
		if f.err != nil {
			return f.err
		}
		out = append(out, k)
		return nil
	})
	if err != nil {
		return nil, err
	}
	if out == nil {
		out = []Keyframe{}
	}
	return out, nil
}

func (p *parser) bezierHandle(obj map[string]any, key string) (BezierHandle, error) {
	h, err := p.object(obj, key)
	if err != nil {
		return BezierHandle{}, err
	}
	f := p.fields(h)
	out := BezierHandle{
		X: req(f, "x", p.component),
		Y: req(f, "y", p.component),
	}
	return out, f.err
}

func (p *parser) component(obj map[string]any, key string) (Component, error) {
	v, err := lottie.ExtractValue(p.bc, obj, key)
	if err != nil {
		return Component{}, err
	}
	if n, ok := lottie.AsNumber(v); ok {
		return Component{Values: []float64{n}, Scalar: true}, nil
	}
	if vec, ok := asVector(v); ok {
		return Component{Values: vec}, nil
	}
	return Component{}, lottie.IncorrectType(p.bc, key, lottie.Number)
}

func deref[T any](v *T) T {
	var zero T
	if v == nil {
		return zero
	}
	return *v
}
