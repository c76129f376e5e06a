package importer

import (
	lottie "github.com/reoring/golottie"
	"github.com/reoring/golottie/model"
	"github.com/reoring/golottie/schema"
)

func (im *importer) shapes(src []schema.Shape) []model.Shape {
	out := []model.Shape{}
	for _, s := range src {
		if m := im.shape(s); m != nil {
			out = append(out, m)
		}
	}
	return out
}

// shape converts one shape. Hidden shapes, group transforms outside a group
// and shapes the runtime model cannot express give nil; the latter are
// reported as warnings.
func (im *importer) shape(s schema.Shape) model.Shape {
	el := s.Element()
	defer im.bc.Enter(lottie.Shape, el.Name)()
	if el.IsHidden() {
		return nil
	}
	if d := im.draw(s); d != nil {
		return d
	}
	if g := im.geometry(s); g != nil {
		return &model.GeometryShape{Geometry: g}
	}
	switch v := s.(type) {
	case *schema.Group:
		return im.group(v)
	case *schema.ShapeTransform:
		return nil
	case *schema.Path:
		// A path without usable data.
		return nil
	default:
		im.warn(lottie.Unsupportedf(im.bc, "shape %q is not imported", string(el.Type)))
		return nil
	}
}

func (im *importer) group(g *schema.Group) model.Shape {
	var tr *model.GroupTransform
	shapes := []model.Shape{}
	for _, item := range g.Shapes {
		if t, ok := item.(*schema.ShapeTransform); ok {
			transform, opacity := im.transform(&t.Transform)
			tr = &model.GroupTransform{Transform: transform, Opacity: opacity}
			continue
		}
		if m := im.shape(item); m != nil {
			shapes = append(shapes, m)
		}
	}
	if len(shapes) == 0 {
		return nil
	}
	return &model.GroupShape{Shapes: shapes, Transform: tr}
}

func (im *importer) draw(s schema.Shape) *model.DrawShape {
	switch v := s.(type) {
	case *schema.Fill:
		return &model.DrawShape{
			Brush:   &model.SolidBrush{Color: im.color("c", v.Color)},
			Opacity: im.scalarOr("o", v.Opacity, 100),
		}
	case *schema.Stroke:
		return &model.DrawShape{
			Brush:   &model.SolidBrush{Color: im.color("c", v.Color)},
			Stroke:  im.stroke(&v.BaseStroke, model.JoinBevel, model.CapButt),
			Opacity: im.scalar("o", v.Opacity),
		}
	case *schema.GradientFill:
		return &model.DrawShape{
			Brush:   im.gradient(&v.Gradient),
			Opacity: model.Fixed(100.0),
		}
	case *schema.GradientStroke:
		return &model.DrawShape{
			Brush:   im.gradient(&v.Gradient),
			Stroke:  im.stroke(&v.BaseStroke, model.JoinRound, model.CapRound),
			Opacity: model.Fixed(100.0),
		}
	}
	return nil
}

func (im *importer) stroke(b *schema.BaseStroke, join model.Join, lineCap model.Cap) *model.Stroke {
	if b.LineJoin != nil {
		switch *b.LineJoin {
		case schema.JoinMiter:
			join = model.JoinMiter
		case schema.JoinRound:
			join = model.JoinRound
		case schema.JoinBevel:
			join = model.JoinBevel
		}
	}
	if b.LineCap != nil {
		switch *b.LineCap {
		case schema.CapButt:
			lineCap = model.CapButt
		case schema.CapRound:
			lineCap = model.CapRound
		case schema.CapSquare:
			lineCap = model.CapSquare
		}
	}
	return &model.Stroke{
		Width:      im.scalar("w", b.Width),
		Join:       join,
		Cap:        lineCap,
		MiterLimit: b.MiterLimit,
	}
}

func (im *importer) gradient(g *schema.Gradient) *model.GradientBrush {
	defer im.bc.EnterUnnamed(lottie.Gradient)()
	return &model.GradientBrush{
		IsRadial:   g.IsRadial(),
		StartPoint: im.point("s", g.StartPoint),
		EndPoint:   im.point("e", g.EndPoint),
		Stops:      im.stops(g.Colors),
	}
}

func (im *importer) geometry(s schema.Shape) model.Geometry {
	switch v := s.(type) {
	case *schema.Ellipse:
		return &model.EllipseGeometry{
			IsCCW:    reversed(v.Direction),
			Position: im.point("p", v.Position.MultiDimensional),
			Size:     im.size("s", v.Size),
		}
	case *schema.Rectangle:
		return &model.RectGeometry{
			IsCCW:        reversed(v.Direction),
			Position:     im.point("p", v.Position.MultiDimensional),
			Size:         im.size("s", v.Size),
			CornerRadius: im.scalar("r", v.Roundness),
		}
	case *schema.Path:
		return im.path(&v.Shape)
	}
	return nil
}

func reversed(d *schema.ShapeDirection) bool {
	return d != nil && *d == schema.DirectionReversed
}

// path converts a bezier property. Static paths become a fixed path; animated
// ones keep the first bezier of every keyframe as point triples and are
// closed when any keyframe is.
func (im *importer) path(sp *schema.ShapeProperty) model.Geometry {
	if !sp.IsAnimated() {
		if sp.Static == nil {
			return nil
		}
		points, closed := spline(sp.Static)
		return &model.FixedPathGeometry{Path: model.SplineToPath(points, closed)}
	}

	g := &model.SplineGeometry{}
	var prev []model.Point
	for _, k := range sp.Keyframes {
		points := prev
		if len(k.Value) > 0 {
			var closed bool
			points, closed = spline(&k.Value[0])
			g.Closed = g.Closed || closed
		}
		if points == nil {
			return nil
		}
		g.Times = append(g.Times, model.Time(k.Time))
		g.Values = append(g.Values, points)
		prev = points
	}
	if _, err := model.NewAnimated(g.Times, g.Values); err != nil {
		e := lottie.IncorrectType(im.bc, "ks", lottie.Keyframe)
		e.Cause = err
		im.warn(e)
		return &model.FixedPathGeometry{Path: model.SplineToPath(g.Values[0], g.Closed)}
	}
	return g
}

// spline interleaves vertices with their tangents as (vertex, in, out)
// triples. Missing tangents are zero.
func spline(b *schema.Bezier) ([]model.Point, bool) {
	points := make([]model.Point, 0, len(b.Vertices)*3)
	for i, v := range b.Vertices {
		var in, out [2]float64
		if i < len(b.InTangents) {
			in = b.InTangents[i]
		}
		if i < len(b.OutTangents) {
			out = b.OutTangents[i]
		}
		points = append(points,
			model.Point{X: v[0], Y: v[1]},
			model.Point{X: in[0], Y: in[1]},
			model.Point{X: out[0], Y: out[1]},
		)
	}
	return points, b.Closed != nil && *b.Closed
}
