package schema

import (
	lottie "github.com/reoring/golottie"
)

// Bezier is a cubic bezier path. Tangents are relative to their vertex.
type Bezier struct {
	Closed      *bool        // c
	Vertices    [][2]float64 // v
	InTangents  [][2]float64 // i
	OutTangents [][2]float64 // o
	// closedInt records a c written as 0/1 instead of a boolean.
	closedInt bool
}

func (b Bezier) MarshalJSON() ([]byte, error) {
	o := jsonObject{"v": nonNilPoints(b.Vertices), "i": nonNilPoints(b.InTangents), "o": nonNilPoints(b.OutTangents)}
	if b.Closed != nil {
		if b.closedInt {
			o["c"] = boolToInt(*b.Closed)
		} else {
			o["c"] = *b.Closed
		}
	}
	return o.marshal()
}

func nonNilPoints(p [][2]float64) [][2]float64 {
	if p == nil {
		return [][2]float64{}
	}
	return p
}

// ShapeKeyframe is a keyframe of an animated path.
type ShapeKeyframe struct {
	Time    float64  // t
	Value   []Bezier // s
	Hold    *bool    // h
	In, Out *BezierHandle
}

func (k ShapeKeyframe) MarshalJSON() ([]byte, error) {
	o := jsonObject{"t": k.Time}
	if k.Value != nil {
		o["s"] = k.Value
	}
	setBoolInt(o, "h", k.Hold)
	setOpt(o, "i", k.In)
	setOpt(o, "o", k.Out)
	return o.marshal()
}

// ShapeProperty is an animatable bezier path (ks of a path, pt of a mask).
type ShapeProperty struct {
	Index      *int    // ix
	Expression *string // x
	Animated   *bool   // a
	Static     *Bezier
	Keyframes  []ShapeKeyframe
}

// IsAnimated reports whether the path holds keyframes.
func (s ShapeProperty) IsAnimated() bool { return s.Keyframes != nil }

func (s ShapeProperty) MarshalJSON() ([]byte, error) {
	o := jsonObject{}
	setOpt(o, "ix", s.Index)
	setOpt(o, "x", s.Expression)
	setBoolInt(o, "a", s.Animated)
	if s.Keyframes != nil {
		o["k"] = s.Keyframes
	} else {
		o["k"] = s.Static
	}
	return o.marshal()
}

func (p *parser) shapeProperty(obj map[string]any, key string) (ShapeProperty, error) {
	var out ShapeProperty
	prop, err := p.object(obj, key)
	if err != nil {
		return out, err
	}
	f := p.fields(prop)
	out.Index = opt(f, "ix", p.integer)
	out.Expression = opt(f, "x", p.str)
	out.Animated = opt(f, "a", p.boolInt)
	k := req(f, "k", p.value)
	if f.err != nil {
		return out, f.err
	}

	if _, isObj := k.(map[string]any); isObj {
		b, err := p.bezier(prop, "k")
		if err != nil {
			return out, err
		}
		out.Static = &b
		return out, nil
	}
	if _, isArr := k.([]any); !isArr {
		return out, lottie.IncorrectType(p.bc, "k", lottie.Bezier)
	}
	out.Keyframes = []ShapeKeyframe{}
	err = p.objects(prop, "k", func(_ int, kf map[string]any) error {
		defer p.bc.EnterUnnamed(lottie.Keyframe)()
		f := p.fields(kf)
		sk := ShapeKeyframe{
			Time: req(f, "t", p.num),
			Hold: opt(f, "h", p.boolInt),
			In:   opt(f, "i", p.bezierHandle),
			Out:  opt(f, "o", p.bezierHandle),
		}
		if _, ok := kf["s"]; ok {
			sk.Value = req(f, "s", p.beziers)
		}
		if f.err != nil {
			return f.err
		}
		out.Keyframes = append(out.Keyframes, sk)
		return nil
	})
	return out, err
}

func (p *parser) beziers(obj map[string]any, key string) ([]Bezier, error) {
	out := []Bezier{}
	err := p.objects(obj, key, func(_ int, o map[string]any) error {
		b, err := p.bezier(o, "")
		if err != nil {
			return err
		}
		out = append(out, b)
		return nil
	})
	return out, err
}

// bezier reads obj[key], or obj itself when key is empty.
func (p *parser) bezier(obj map[string]any, key string) (Bezier, error) {
	defer p.bc.EnterUnnamed(lottie.Bezier)()
	bz := obj
	if key != "" {
		var err error
		if bz, err = p.object(obj, key); err != nil {
			return Bezier{}, err
		}
	}
	f := p.fields(bz)
	out := Bezier{
		Vertices:    req(f, "v", p.points),
		InTangents:  req(f, "i", p.points),
		OutTangents: req(f, "o", p.points),
	}
	if f.err != nil {
		return out, f.err
	}
	if c, ok := bz["c"]; ok {
		switch v := c.(type) {
		case bool:
			out.Closed = &v
		default:
			closed, err := p.boolInt(bz, "c")
			if err != nil {
				return out, lottie.IncorrectType(p.bc, "c", lottie.Bool)
			}
			out.Closed, out.closedInt = &closed, true
		}
	}
	return out, nil
}

func (p *parser) points(obj map[string]any, key string) ([][2]float64, error) {
	pts, err := lottie.ExtractType[[][2]float64](p.bc, obj, key, lottie.Array)
	if err != nil {
		return nil, err
	}
	if pts == nil {
		pts = [][2]float64{}
	}
	return pts, nil
}
