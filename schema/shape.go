package schema

import (
	lottie "github.com/reoring/golottie"
)

// Shape is one of the shape variants below, selected by the ty tag.
type Shape interface {
	Element() *ShapeElement
	shape()
}

// ShapeElement holds the properties every shape shares.
type ShapeElement struct {
	Name      *string    // nm
	MatchName *string    // mn
	Type      ShapeType  // ty
	Hidden    *bool      // hd
	BlendMode *BlendMode // bm
	Index     *int       // ix
	ClassName *string    // cl
	LayerID   *string    // ln
}

// Element returns the shared shape properties.
func (e *ShapeElement) Element() *ShapeElement { return e }

func (e *ShapeElement) shape() {}

// IsHidden reports whether hd is set.
func (e *ShapeElement) IsHidden() bool { return e.Hidden != nil && *e.Hidden }

func (e *ShapeElement) elementObject() jsonObject {
	o := jsonObject{"ty": string(e.Type)}
	setOpt(o, "nm", e.Name)
	setOpt(o, "mn", e.MatchName)
	setOpt(o, "hd", e.Hidden)
	setOpt(o, "bm", e.BlendMode)
	setOpt(o, "ix", e.Index)
	setOpt(o, "cl", e.ClassName)
	setOpt(o, "ln", e.LayerID)
	return o
}

// Group holds child shapes; its "tr" child is the group transform.
type Group struct {
	ShapeElement
	NumProperties *float64 // np
	Shapes        []Shape  // it
}

func (s *Group) MarshalJSON() ([]byte, error) {
	o := s.elementObject()
	setOpt(o, "np", s.NumProperties)
	o["it"] = s.Shapes
	return o.marshal()
}

// Rectangle geometry.
type Rectangle struct {
	ShapeElement
	Direction *ShapeDirection  // d
	Position  Position         // p, center
	Size      MultiDimensional // s
	Roundness FloatValue       // r
}

func (s *Rectangle) MarshalJSON() ([]byte, error) {
	o := s.elementObject()
	setOpt(o, "d", s.Direction)
	o["p"], o["s"], o["r"] = s.Position, s.Size, s.Roundness
	return o.marshal()
}

// Ellipse geometry.
type Ellipse struct {
	ShapeElement
	Direction *ShapeDirection  // d
	Position  Position         // p, center
	Size      MultiDimensional // s
}

func (s *Ellipse) MarshalJSON() ([]byte, error) {
	o := s.elementObject()
	setOpt(o, "d", s.Direction)
	o["p"], o["s"] = s.Position, s.Size
	return o.marshal()
}

// Path is a free-form bezier geometry.
type Path struct {
	ShapeElement
	Direction *ShapeDirection // d
	Shape     ShapeProperty   // ks
}

func (s *Path) MarshalJSON() ([]byte, error) {
	o := s.elementObject()
	setOpt(o, "d", s.Direction)
	o["ks"] = s.Shape
	return o.marshal()
}

// PolyStar is a star or regular polygon geometry.
type PolyStar struct {
	ShapeElement
	Direction      *ShapeDirection // d
	Position       Position        // p
	OuterRadius    FloatValue      // or
	OuterRoundness FloatValue      // os
	Rotation       FloatValue      // r
	Points         FloatValue      // pt
	StarType       StarType        // sy
	InnerRadius    *FloatValue     // ir
	InnerRoundness *FloatValue     // is
}

func (s *PolyStar) MarshalJSON() ([]byte, error) {
	o := s.elementObject()
	setOpt(o, "d", s.Direction)
	o["p"], o["or"], o["os"], o["r"], o["pt"], o["sy"] = s.Position, s.OuterRadius, s.OuterRoundness, s.Rotation, s.Points, s.StarType
	setOpt(o, "ir", s.InnerRadius)
	setOpt(o, "is", s.InnerRoundness)
	return o.marshal()
}

// Fill paints the geometries before it with a solid color.
type Fill struct {
	ShapeElement
	Opacity  *FloatValue // o
	Color    ColorValue  // c
	FillRule *FillRule   // r
}

func (s *Fill) MarshalJSON() ([]byte, error) {
	o := s.elementObject()
	setOpt(o, "o", s.Opacity)
	o["c"] = s.Color
	setOpt(o, "r", s.FillRule)
	return o.marshal()
}

// StrokeDash is one entry of a dash pattern.
type StrokeDash struct {
	Name      *string         // nm
	MatchName *string         // mn
	Type      *StrokeDashType // n
	Length    FloatValue      // v
}

func (d StrokeDash) MarshalJSON() ([]byte, error) {
	o := jsonObject{"v": d.Length}
	setOpt(o, "nm", d.Name)
	setOpt(o, "mn", d.MatchName)
	setOpt(o, "n", d.Type)
	return o.marshal()
}

// BaseStroke holds the properties shared by solid and gradient strokes.
type BaseStroke struct {
	LineCap         *LineCap     // lc
	LineJoin        *LineJoin    // lj
	MiterLimit      *float64     // ml
	MiterLimitValue *FloatValue  // ml2
	Opacity         FloatValue   // o
	Width           FloatValue   // w
	Dashes          []StrokeDash // d
}

func (b *BaseStroke) strokeInto(o jsonObject) {
	setOpt(o, "lc", b.LineCap)
	setOpt(o, "lj", b.LineJoin)
	setOpt(o, "ml", b.MiterLimit)
	setOpt(o, "ml2", b.MiterLimitValue)
	o["o"], o["w"] = b.Opacity, b.Width
	if b.Dashes != nil {
		o["d"] = b.Dashes
	}
}

// Stroke outlines the geometries before it with a solid color.
type Stroke struct {
	ShapeElement
	BaseStroke
	Color ColorValue // c
}

func (s *Stroke) MarshalJSON() ([]byte, error) {
	o := s.elementObject()
	s.strokeInto(o)
	o["c"] = s.Color
	return o.marshal()
}

// GradientColors is the flat stop list of a gradient (g).
//
// Colors holds Count quads of offset, r, g, b, optionally followed by
// offset, alpha pairs.
type GradientColors struct {
	Colors MultiDimensional // k
	Count  int              // p
}

func (g GradientColors) MarshalJSON() ([]byte, error) {
	return jsonObject{"k": g.Colors, "p": g.Count}.marshal()
}

// Gradient holds the properties shared by gradient fills and strokes.
type Gradient struct {
	StartPoint      MultiDimensional // s
	EndPoint        MultiDimensional // e
	GradientType    *GradientType    // t
	HighlightLength *FloatValue      // h
	HighlightAngle  *FloatValue      // a
	Colors          GradientColors   // g
}

func (g *Gradient) gradientInto(o jsonObject) {
	o["s"], o["e"], o["g"] = g.StartPoint, g.EndPoint, g.Colors
	setOpt(o, "t", g.GradientType)
	setOpt(o, "h", g.HighlightLength)
	setOpt(o, "a", g.HighlightAngle)
}

// IsRadial reports whether t is radial.
func (g *Gradient) IsRadial() bool {
	return g.GradientType != nil && *g.GradientType == GradientRadial
}

// GradientFill paints with a gradient.
type GradientFill struct {
	ShapeElement
	Gradient
	Opacity  FloatValue // o
	FillRule *FillRule  // r
}

func (s *GradientFill) MarshalJSON() ([]byte, error) {
	o := s.elementObject()
	s.gradientInto(o)
	o["o"] = s.Opacity
	setOpt(o, "r", s.FillRule)
	return o.marshal()
}

// GradientStroke outlines with a gradient.
type GradientStroke struct {
	ShapeElement
	BaseStroke
	Gradient
}

func (s *GradientStroke) MarshalJSON() ([]byte, error) {
	o := s.elementObject()
	s.strokeInto(o)
	s.gradientInto(o)
	return o.marshal()
}

// ShapeTransform is the transform of the enclosing group (ty "tr").
type ShapeTransform struct {
	ShapeElement
	Transform
}

func (s *ShapeTransform) MarshalJSON() ([]byte, error) {
	o := s.Transform.object()
	for k, v := range s.elementObject() {
		o[k] = v
	}
	return o.marshal()
}

// Trim trims the paths before it.
type Trim struct {
	ShapeElement
	Start    FloatValue    // s
	End      FloatValue    // e
	Offset   FloatValue    // o
	Multiple *TrimMultiple // m
}

func (s *Trim) MarshalJSON() ([]byte, error) {
	o := s.elementObject()
	o["s"], o["e"], o["o"] = s.Start, s.End, s.Offset
	setOpt(o, "m", s.Multiple)
	return o.marshal()
}

// Merge combines the paths before it.
type Merge struct {
	ShapeElement
	Mode *MergeMode // mm
}

func (s *Merge) MarshalJSON() ([]byte, error) {
	o := s.elementObject()
	setOpt(o, "mm", s.Mode)
	return o.marshal()
}

// Repeater duplicates the shapes before it.
type Repeater struct {
	ShapeElement
	Copies    FloatValue        // c
	Offset    *FloatValue       // o
	Composite *Composite        // m
	Transform RepeaterTransform // tr
}

func (s *Repeater) MarshalJSON() ([]byte, error) {
	o := s.elementObject()
	o["c"], o["tr"] = s.Copies, s.Transform
	setOpt(o, "o", s.Offset)
	setOpt(o, "m", s.Composite)
	return o.marshal()
}

// PuckerBloat pulls vertices in or pushes them out.
type PuckerBloat struct {
	ShapeElement
	Amount *FloatValue // a
}

func (s *PuckerBloat) MarshalJSON() ([]byte, error) {
	o := s.elementObject()
	setOpt(o, "a", s.Amount)
	return o.marshal()
}

// OffsetPath expands or shrinks paths.
type OffsetPath struct {
	ShapeElement
	Amount     *FloatValue // a
	LineJoin   *LineJoin   // lj
	MiterLimit *FloatValue // ml
}

func (s *OffsetPath) MarshalJSON() ([]byte, error) {
	o := s.elementObject()
	setOpt(o, "a", s.Amount)
	setOpt(o, "lj", s.LineJoin)
	setOpt(o, "ml", s.MiterLimit)
	return o.marshal()
}

// RoundedCorners rounds the corners of the paths before it.
type RoundedCorners struct {
	ShapeElement
	Radius FloatValue // r
}

func (s *RoundedCorners) MarshalJSON() ([]byte, error) {
	o := s.elementObject()
	o["r"] = s.Radius
	return o.marshal()
}

// ---- parsing ----

// shapes reads the shape list under key.
func (p *parser) shapes(obj map[string]any, key string) ([]Shape, error) {
	out := []Shape{}
	err := p.objects(obj, key, func(_ int, so map[string]any) error {
		s, err := p.shape(so)
		if err != nil {
			if p.skip(err) {
				return nil
			}
			return err
		}
		out = append(out, s)
		return nil
	})
	return out, err
}

func (p *parser) shape(obj map[string]any) (Shape, error) {
	defer p.bc.Enter(lottie.Shape, nameOf(obj))()

	tag, err := lottie.ExtractString(p.bc, obj, "ty")
	if err != nil {
		return nil, err
	}
	ty := ShapeType(tag)
	if what, ok := unsupportedShapes[ty]; ok {
		return nil, lottie.Unsupportedf(p.bc, "shape %q (%s)", tag, what)
	}

	f := p.fields(obj)
	el := ShapeElement{
		Type:      ty,
		Name:      opt(f, "nm", p.str),
		MatchName: opt(f, "mn", p.str),
		Hidden:    opt(f, "hd", p.boolean),
		BlendMode: opt(f, "bm", enum(p, BlendMode.valid)),
		Index:     opt(f, "ix", p.integer),
		ClassName: opt(f, "cl", p.str),
		LayerID:   opt(f, "ln", p.str),
	}
	direction := func() *ShapeDirection { return opt(f, "d", enum(p, ShapeDirection.valid)) }

	var s Shape
	switch ty {
	case ShapeGroup:
		s = &Group{
			ShapeElement:  el,
			NumProperties: opt(f, "np", p.num),
			Shapes:        req(f, "it", p.shapes),
		}
	case ShapeRectangle:
		s = &Rectangle{
			ShapeElement: el,
			Direction:    direction(),
			Position:     req(f, "p", p.position),
			Size:         req(f, "s", p.multiDim),
			Roundness:    req(f, "r", p.floatValue),
		}
	case ShapeEllipse:
		s = &Ellipse{
			ShapeElement: el,
			Direction:    direction(),
			Position:     req(f, "p", p.position),
			Size:         req(f, "s", p.multiDim),
		}
	case ShapePath:
		s = &Path{
			ShapeElement: el,
			Direction:    direction(),
			Shape:        req(f, "ks", p.shapeProperty),
		}
	case ShapePolyStar:
		s = &PolyStar{
			ShapeElement:   el,
			Direction:      direction(),
			Position:       req(f, "p", p.position),
			OuterRadius:    req(f, "or", p.floatValue),
			OuterRoundness: req(f, "os", p.floatValue),
			Rotation:       req(f, "r", p.floatValue),
			Points:         req(f, "pt", p.floatValue),
			StarType:       req(f, "sy", enum(p, StarType.valid)),
			InnerRadius:    opt(f, "ir", p.floatValue),
			InnerRoundness: opt(f, "is", p.floatValue),
		}
	case ShapeFill:
		s = &Fill{
			ShapeElement: el,
			Opacity:      opt(f, "o", p.floatValue),
			Color:        req(f, "c", p.multiDim),
			FillRule:     opt(f, "r", enum(p, FillRule.valid)),
		}
	case ShapeStroke:
		s = &Stroke{
			ShapeElement: el,
			BaseStroke:   p.baseStroke(f),
			Color:        req(f, "c", p.multiDim),
		}
	case ShapeGradientFill:
		s = &GradientFill{
			ShapeElement: el,
			Gradient:     p.gradient(f),
			Opacity:      req(f, "o", p.floatValue),
			FillRule:     opt(f, "r", enum(p, FillRule.valid)),
		}
	case ShapeGradientStroke:
		s = &GradientStroke{
			ShapeElement: el,
			BaseStroke:   p.baseStroke(f),
			Gradient:     p.gradient(f),
		}
	case ShapeTransformType:
		if f.err != nil {
			return nil, f.err
		}
		t, err := p.transformFields(obj)
		if err != nil {
			return nil, err
		}
		s = &ShapeTransform{ShapeElement: el, Transform: t}
	case ShapeTrim:
		s = &Trim{
			ShapeElement: el,
			Start:        req(f, "s", p.floatValue),
			End:          req(f, "e", p.floatValue),
			Offset:       req(f, "o", p.floatValue),
			Multiple:     opt(f, "m", enum(p, TrimMultiple.valid)),
		}
	case ShapeMerge:
		s = &Merge{ShapeElement: el, Mode: opt(f, "mm", enum(p, MergeMode.valid))}
	case ShapeRepeater:
		s = &Repeater{
			ShapeElement: el,
			Copies:       req(f, "c", p.floatValue),
			Offset:       opt(f, "o", p.floatValue),
			Composite:    opt(f, "m", enum(p, Composite.valid)),
			Transform:    req(f, "tr", p.repeaterTransform),
		}
	case ShapePuckerBloat:
		s = &PuckerBloat{ShapeElement: el, Amount: opt(f, "a", p.floatValue)}
	case ShapeOffsetPath:
		s = &OffsetPath{
			ShapeElement: el,
			Amount:       opt(f, "a", p.floatValue),
			LineJoin:     opt(f, "lj", enum(p, LineJoin.valid)),
			MiterLimit:   opt(f, "ml", p.floatValue),
		}
	case ShapeRoundedCorners:
		s = &RoundedCorners{ShapeElement: el, Radius: req(f, "r", p.floatValue)}
	default:
		return nil, lottie.UnexpectedChild(p.bc, lottie.Shape)
	}
	if f.err != nil {
		return nil, f.err
	}
	return s, nil
}

func (p *parser) baseStroke(f *fields) BaseStroke {
	return BaseStroke{
		LineCap:         opt(f, "lc", enum(p, LineCap.valid)),
		LineJoin:        opt(f, "lj", enum(p, LineJoin.valid)),
		MiterLimit:      opt(f, "ml", p.num),
		MiterLimitValue: opt(f, "ml2", p.floatValue),
		Opacity:         req(f, "o", p.floatValue),
		Width:           req(f, "w", p.floatValue),
		Dashes:          deref(opt(f, "d", p.dashes)),
	}
}

func (p *parser) gradient(f *fields) Gradient {
	return Gradient{
		StartPoint:      req(f, "s", p.multiDim),
		EndPoint:        req(f, "e", p.multiDim),
		GradientType:    opt(f, "t", enum(p, GradientType.valid)),
		HighlightLength: opt(f, "h", p.floatValue),
		HighlightAngle:  opt(f, "a", p.floatValue),
		Colors:          req(f, "g", p.gradientColors),
	}
}

func (p *parser) gradientColors(obj map[string]any, key string) (GradientColors, error) {
	g, err := p.object(obj, key)
	if err != nil {
		return GradientColors{}, err
	}
	defer p.bc.EnterUnnamed(lottie.Gradient)()
	f := p.fields(g)
	out := GradientColors{
		Count:  req(f, "p", p.integer),
		Colors: req(f, "k", p.multiDim),
	}
	if f.err == nil && out.Count < 0 {
		return out, lottie.IncorrectType(p.bc, "p", lottie.Number)
	}
	return out, f.err
}

func (p *parser) dashes(obj map[string]any, key string) ([]StrokeDash, error) {
	out := []StrokeDash{}
	err := p.objects(obj, key, func(_ int, do map[string]any) error {
		defer p.bc.Enter(lottie.Dash, nameOf(do))()
		f := p.fields(do)
		d := StrokeDash{
			Name:      opt(f, "nm", p.str),
			MatchName: opt(f, "mn", p.str),
			Type:      opt(f, "n", strEnum(p, StrokeDashType.valid)),
			Length:    req(f, "v", p.floatValue),
		}
		if f.err != nil {
			return f.err
		}
		out = append(out, d)
		return nil
	})
	return out, err
}
