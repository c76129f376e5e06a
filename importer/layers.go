package importer

import (
	lottie "github.com/reoring/golottie"
	"github.com/reoring/golottie/model"
	"github.com/reoring/golottie/schema"
)

// layer converts one layer. It returns nil for hidden layers and for
// unsupported layers being skipped.
func (im *importer) layer(sl schema.Layer) (*model.Layer, error) {
	c := sl.Common()
	defer im.bc.Enter(lottie.Layer, c.Name)()
	if c.IsHidden() {
		return nil, nil
	}

	l := &model.Layer{
		Name:       deref(c.Name),
		Frames:     model.Range{Start: model.Time(c.InPoint), End: model.Time(c.OutPoint)},
		Stretch:    1,
		StartFrame: model.Time(c.StartTime),
		IsMask:     c.MatteTarget != nil && *c.MatteTarget,
	}
	if c.TimeStretch != nil {
		l.Stretch = *c.TimeStretch
	}
	l.Transform, l.Opacity = im.transform(&c.Transform)
	bm, err := im.blend(c.BlendMode)
	if err != nil {
		return nil, err
	}
	l.BlendMode = bm
	l.Masks = im.masks(c.Masks)

	switch v := sl.(type) {
	case *schema.ShapeLayer:
		l.Content = &model.ShapeContent{Shapes: im.shapes(v.Shapes)}
	case *schema.PrecompositionLayer:
		l.Width, l.Height = v.Width, v.Height
		ic := &model.InstanceContent{Name: v.RefID}
		if v.TimeRemap != nil {
			tm := im.scalar("tm", *v.TimeRemap)
			ic.TimeRemap = &tm
		}
		l.Content = ic
	case *schema.SolidColorLayer:
		content, err := im.solid(v)
		if err != nil {
			return nil, err
		}
		l.Content = content
	case *schema.NullLayer:
		l.Content = &model.ShapeContent{Shapes: []model.Shape{}}
	case *schema.ImageLayer:
		return nil, im.unsupported(lottie.Unsupportedf(im.bc, "image layer %q", v.RefID))
	default:
		return nil, im.unsupported(lottie.Unsupportedf(im.bc, "layer %T", v))
	}
	return l, nil
}

// solid draws a solid color layer as a filled rectangle covering its bounds.
func (im *importer) solid(v *schema.SolidColorLayer) (*model.ShapeContent, error) {
	color, ok := parseHexColor(v.Color)
	if !ok {
		return nil, lottie.IncorrectType(im.bc, "sc", lottie.Color)
	}
	rect := &model.RectGeometry{
		Position:     model.Fixed(model.Point{X: v.Width / 2, Y: v.Height / 2}),
		Size:         model.Fixed(model.Size{Width: v.Width, Height: v.Height}),
		CornerRadius: model.Fixed(0.0),
	}
	fill := &model.DrawShape{
		Brush:   &model.SolidBrush{Color: model.Fixed(color)},
		Opacity: model.Fixed(100.0),
	}
	return &model.ShapeContent{Shapes: []model.Shape{
		&model.GeometryShape{Geometry: rect},
		fill,
	}}, nil
}

// masks converts the masks that have a path and a drawing mode.
func (im *importer) masks(src []schema.Mask) []model.Mask {
	var out []model.Mask
	for _, m := range src {
		done := im.bc.Enter(lottie.Mask, m.Name)
		mask, ok := im.mask(m)
		done()
		if ok {
			out = append(out, mask)
		}
	}
	return out
}

func (im *importer) mask(m schema.Mask) (model.Mask, bool) {
	if m.Shape == nil {
		return model.Mask{}, false
	}
	mode := model.FromCompose(model.ComposeSrcOver)
	if m.Mode != nil {
		var ok bool
		if mode, ok = mapMaskMode(*m.Mode); !ok {
			return model.Mask{}, false
		}
	}
	geometry := im.path(m.Shape)
	if geometry == nil {
		return model.Mask{}, false
	}
	return model.Mask{
		Mode:     mode,
		Geometry: geometry,
		Opacity:  im.scalarOr("o", m.Opacity, 100),
	}, true
}
