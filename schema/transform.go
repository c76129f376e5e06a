package schema

import (
	lottie "github.com/reoring/golottie"
)

// TransformPosition is either a combined Position or a SplitVector.
type TransformPosition struct {
	Position *Position
	Split    *SplitVector
}

func (t TransformPosition) MarshalJSON() ([]byte, error) {
	if t.Split != nil {
		return t.Split.MarshalJSON()
	}
	if t.Position != nil {
		return t.Position.MarshalJSON()
	}
	return jsonMarshal(nil)
}

// Transform is the transform of a layer (ks) or the shape transform body.
type Transform struct {
	Anchor   *Position          // a
	Position *TransformPosition // p
	Scale    *MultiDimensional  // s, in percent
	Rotation *FloatValue        // r, in degrees
	// Split rotation of 3D layers.
	RotationX   *FloatValue       // rx
	RotationY   *FloatValue       // ry
	RotationZ   *FloatValue       // rz
	Orientation *MultiDimensional // or
	Skew        *FloatValue       // sk
	SkewAxis    *FloatValue       // sa
	Opacity     *FloatValue       // o
}

func (t Transform) object() jsonObject {
	o := jsonObject{}
	setOpt(o, "a", t.Anchor)
	setOpt(o, "p", t.Position)
	setOpt(o, "s", t.Scale)
	setOpt(o, "r", t.Rotation)
	setOpt(o, "rx", t.RotationX)
	setOpt(o, "ry", t.RotationY)
	setOpt(o, "rz", t.RotationZ)
	setOpt(o, "or", t.Orientation)
	setOpt(o, "sk", t.Skew)
	setOpt(o, "sa", t.SkewAxis)
	setOpt(o, "o", t.Opacity)
	return o
}

func (t Transform) MarshalJSON() ([]byte, error) { return t.object().marshal() }

// transformFields reads the transform keys of obj. Shape transforms share
// their object with the shape element keys.
func (p *parser) transformFields(obj map[string]any) (Transform, error) {
	f := p.fields(obj)
	t := Transform{
		Anchor:      opt(f, "a", p.position),
		Position:    opt(f, "p", p.transformPosition),
		Scale:       opt(f, "s", p.multiDim),
		Rotation:    opt(f, "r", p.floatValue),
		RotationX:   opt(f, "rx", p.floatValue),
		RotationY:   opt(f, "ry", p.floatValue),
		RotationZ:   opt(f, "rz", p.floatValue),
		Orientation: opt(f, "or", p.multiDim),
		Skew:        opt(f, "sk", p.floatValue),
		SkewAxis:    opt(f, "sa", p.floatValue),
		Opacity:     opt(f, "o", p.floatValue),
	}
	return t, f.err
}

// transform reads the transform object under key.
func (p *parser) transform(obj map[string]any, key string) (Transform, error) {
	ks, err := p.object(obj, key)
	if err != nil {
		return Transform{}, err
	}
	defer p.bc.EnterUnnamed(lottie.Transform)()
	return p.transformFields(ks)
}

func (p *parser) transformPosition(obj map[string]any, key string) (TransformPosition, error) {
	po, err := p.object(obj, key)
	if err != nil {
		return TransformPosition{}, err
	}
	if _, split := po["s"]; split {
		sv, err := p.splitVector(obj, key)
		if err != nil {
			return TransformPosition{}, err
		}
		return TransformPosition{Split: &sv}, nil
	}
	pos, err := p.position(obj, key)
	if err != nil {
		return TransformPosition{}, err
	}
	return TransformPosition{Position: &pos}, nil
}

// RepeaterTransform is a transform with opacity ramps across copies.
type RepeaterTransform struct {
	Transform
	StartOpacity *FloatValue // so
	EndOpacity   *FloatValue // eo
}

func (t RepeaterTransform) MarshalJSON() ([]byte, error) {
	o := t.object()
	setOpt(o, "so", t.StartOpacity)
	setOpt(o, "eo", t.EndOpacity)
	return o.marshal()
}

func (p *parser) repeaterTransform(obj map[string]any, key string) (RepeaterTransform, error) {
	tr, err := p.object(obj, key)
	if err != nil {
		return RepeaterTransform{}, err
	}
	defer p.bc.EnterUnnamed(lottie.Transform)()
	t, err := p.transformFields(tr)
	if err != nil {
		return RepeaterTransform{}, err
	}
	f := p.fields(tr)
	out := RepeaterTransform{
		Transform:    t,
		StartOpacity: opt(f, "so", p.floatValue),
		EndOpacity:   opt(f, "eo", p.floatValue),
	}
	return out, f.err
}
