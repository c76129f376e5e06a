package importer

import (
	"fmt"

	lottie "github.com/reoring/golottie"
	"github.com/reoring/golottie/model"
	"github.com/reoring/golottie/schema"
)

// convert turns an animated property into a model.Value. static converts
// the non-keyframed value and frame converts each keyframe's start value.
//
// A keyframe without s takes the previous keyframe's e, or failing that its
// s. The deprecated e is otherwise not carried over: consumers interpolate
// towards the next keyframe's start value.
func convert[S, T any](im *importer, key string, p schema.AnimatedProperty[S], static func(S) T, frame func([]float64) T) model.Value[T] {
	if !p.IsAnimated() {
		return model.Fixed(static(p.Static))
	}
	times := make([]model.Time, len(p.Keyframes))
	values := make([]T, len(p.Keyframes))
	var prev []float64
	for i, k := range p.Keyframes {
		v := k.Value
		if v == nil && i > 0 {
			if e := p.Keyframes[i-1].End; e != nil {
				v = e
			} else {
				v = prev
			}
		}
		times[i] = model.Time(k.Time)
		values[i] = frame(v)
		prev = v
	}
	out, err := model.NewAnimated(times, values)
	if err != nil {
		e := lottie.IncorrectType(im.bc, key, lottie.Keyframe)
		e.Cause = err
		im.warn(e)
		return model.Fixed(values[0])
	}
	return out
}

func at(v []float64, i int) float64 {
	if i < len(v) {
		return v[i]
	}
	return 0
}

func toPoint(v []float64) model.Point { return model.Point{X: at(v, 0), Y: at(v, 1)} }

func toSize(v []float64) model.Size { return model.Size{Width: at(v, 0), Height: at(v, 1)} }

// toScale converts a percent scale into a factor.
func toScale(v []float64) model.Vec2 { return model.Vec2{X: at(v, 0) / 100, Y: at(v, 1) / 100} }

// toColor reads r, g, b. Alpha comes from the opacity property instead.
func toColor(v []float64) model.Color {
	return model.Color{R: at(v, 0), G: at(v, 1), B: at(v, 2), A: 1}
}

func identity[T any](v T) T { return v }

func first(v []float64) float64 { return at(v, 0) }

func (im *importer) scalar(key string, v schema.FloatValue) model.Value[float64] {
	return convert(im, key, v, identity[float64], first)
}

// scalarOr converts v, or returns def when v is absent.
func (im *importer) scalarOr(key string, v *schema.FloatValue, def float64) model.Value[float64] {
	if v == nil {
		return model.Fixed(def)
	}
	return im.scalar(key, *v)
}

func (im *importer) point(key string, v schema.MultiDimensional) model.Value[model.Point] {
	return convert(im, key, v, toPoint, toPoint)
}

func (im *importer) size(key string, v schema.MultiDimensional) model.Value[model.Size] {
	return convert(im, key, v, toSize, toSize)
}

func (im *importer) color(key string, v schema.ColorValue) model.Value[model.Color] {
	return convert(im, key, v, toColor, toColor)
}

func (im *importer) stops(g schema.GradientColors) model.Value[[]model.ColorStop] {
	calc := func(v []float64) []model.ColorStop { return CalcStops(v, g.Count) }
	return convert(im, "g", g.Colors, calc, calc)
}

// transform converts a layer or group transform and returns its opacity
// separately. Absent parts take their identity values: anchor and position
// (0, 0), scale 100%, rotation and skew 0, opacity 100.
func (im *importer) transform(t *schema.Transform) (model.Transform, model.Value[float64]) {
	defer im.bc.EnterUnnamed(lottie.Transform)()
	out := model.Transform{
		Anchor:    model.Fixed(model.Point{}),
		Position:  model.PointPosition(model.Fixed(model.Point{})),
		Scale:     model.Fixed(model.Vec2{X: 1, Y: 1}),
		Skew:      im.scalarOr("sk", t.Skew, 0),
		SkewAngle: im.scalarOr("sa", t.SkewAxis, 0),
	}
	if t.Anchor != nil {
		out.Anchor = im.point("a", t.Anchor.MultiDimensional)
	}
	if p := t.Position; p != nil {
		switch {
		case p.Split != nil:
			out.Position = model.SplitPosition(im.scalar("x", p.Split.X), im.scalar("y", p.Split.Y))
		case p.Position != nil:
			out.Position = model.PointPosition(im.point("p", p.Position.MultiDimensional))
		}
	}
	if t.Scale != nil {
		out.Scale = convert(im, "s", *t.Scale, toScale, toScale)
	}
	// 2D layers written with split rotation carry the angle in rz.
	rotation := t.Rotation
	if rotation == nil {
		rotation = t.RotationZ
	}
	out.Rotation = im.scalarOr("r", rotation, 0)
	return out, im.scalarOr("o", t.Opacity, 100)
}

// parseHexColor reads #rrggbb.
func parseHexColor(s string) (model.Color, bool) {
	var r, g, b uint8
	if len(s) != 7 || s[0] != '#' {
		return model.Color{}, false
	}
	if _, err := fmt.Sscanf(s[1:], "%02x%02x%02x", &r, &g, &b); err != nil {
		return model.Color{}, false
	}
	return model.Color{R: float64(r) / 255, G: float64(g) / 255, B: float64(b) / 255, A: 1}, true
}
