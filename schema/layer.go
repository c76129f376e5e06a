package schema

import (
	lottie "github.com/reoring/golottie"
)

// Layer is one of *PrecompositionLayer, *SolidColorLayer, *ImageLayer,
// *NullLayer or *ShapeLayer.
type Layer interface {
	Common() *VisualLayer
	layer()
}

// VisualLayer holds the properties every layer variant shares.
type VisualLayer struct {
	Name      *string   // nm
	MatchName *string   // mn
	ThreeD    *bool     // ddd
	Hidden    *bool     // hd
	Type      LayerType // ty
	Index     *int      // ind
	Parent    *int      // parent, the ind of the parent layer
	// TimeStretch multiplies the layer's local time (sr).
	TimeStretch *float64 // sr
	InPoint     float64  // ip
	OutPoint    float64  // op
	StartTime   float64  // st
	// MatteMode is how this layer uses the matte above it (tt).
	MatteMode *MatteMode // tt
	// MatteTarget marks this layer as the matte of the next one (td).
	MatteTarget *bool // td
	// MatteParent names the matte layer by ind instead of adjacency (tp).
	MatteParent *int       // tp
	Masks       []Mask     // masksProperties
	Transform   Transform  // ks
	AutoOrient  *bool      // ao
	HasMask     *bool      // hasMask
	MotionBlur  *bool      // mb
	BlendMode   *BlendMode // bm
	ClassName   *string    // cl
	LayerID     *string    // ln
	// CollapseTransform (ct).
	CollapseTransform *bool
}

// Common returns the shared layer properties.
func (l *VisualLayer) Common() *VisualLayer { return l }

func (l *VisualLayer) layer() {}

// IsHidden reports whether hd is set.
func (l *VisualLayer) IsHidden() bool { return l.Hidden != nil && *l.Hidden }

func (l *VisualLayer) object() jsonObject {
	o := jsonObject{
		"ty": int(l.Type),
		"ip": l.InPoint,
		"op": l.OutPoint,
		"st": l.StartTime,
		"ks": l.Transform,
	}
	setOpt(o, "nm", l.Name)
	setOpt(o, "mn", l.MatchName)
	setBoolInt(o, "ddd", l.ThreeD)
	setOpt(o, "hd", l.Hidden)
	setOpt(o, "ind", l.Index)
	setOpt(o, "parent", l.Parent)
	setOpt(o, "sr", l.TimeStretch)
	setOpt(o, "tt", l.MatteMode)
	setBoolInt(o, "td", l.MatteTarget)
	setOpt(o, "tp", l.MatteParent)
	if l.Masks != nil {
		o["masksProperties"] = l.Masks
	}
	setBoolInt(o, "ao", l.AutoOrient)
	setOpt(o, "hasMask", l.HasMask)
	setOpt(o, "mb", l.MotionBlur)
	setOpt(o, "bm", l.BlendMode)
	setOpt(o, "cl", l.ClassName)
	setOpt(o, "ln", l.LayerID)
	setBoolInt(o, "ct", l.CollapseTransform)
	return o
}

// PrecompositionLayer renders a precomposition asset.
type PrecompositionLayer struct {
	VisualLayer
	RefID     string      // refId
	Width     float64     // w
	Height    float64     // h
	TimeRemap *FloatValue // tm
}

func (l *PrecompositionLayer) MarshalJSON() ([]byte, error) {
	o := l.object()
	o["refId"] = l.RefID
	o["w"] = l.Width
	o["h"] = l.Height
	setOpt(o, "tm", l.TimeRemap)
	return o.marshal()
}

// SolidColorLayer is a rectangle filled with one color.
type SolidColorLayer struct {
	VisualLayer
	Color  string  // sc, as #rrggbb
	Width  float64 // sw
	Height float64 // sh
}

func (l *SolidColorLayer) MarshalJSON() ([]byte, error) {
	o := l.object()
	o["sc"] = l.Color
	o["sw"] = l.Width
	o["sh"] = l.Height
	return o.marshal()
}

// ImageLayer renders an image asset.
type ImageLayer struct {
	VisualLayer
	RefID string // refId
}

func (l *ImageLayer) MarshalJSON() ([]byte, error) {
	o := l.object()
	o["refId"] = l.RefID
	return o.marshal()
}

// NullLayer has no content; it exists to parent other layers.
type NullLayer struct {
	VisualLayer
}

func (l *NullLayer) MarshalJSON() ([]byte, error) { return l.object().marshal() }

// ShapeLayer holds vector shapes.
type ShapeLayer struct {
	VisualLayer
	Shapes []Shape // shapes
}

func (l *ShapeLayer) MarshalJSON() ([]byte, error) {
	o := l.object()
	o["shapes"] = l.Shapes
	return o.marshal()
}

// ---- parsing ----

// layers reads the layer list under key.
func (p *parser) layers(obj map[string]any, key string) ([]Layer, error) {
	out := []Layer{}
	err := p.objects(obj, key, func(_ int, lo map[string]any) error {
		l, err := p.layer(lo)
		if err != nil {
			if p.skip(err) {
				return nil
			}
			return err
		}
		out = append(out, l)
		return nil
	})
	return out, err
}

func (p *parser) layer(obj map[string]any) (Layer, error) {
	defer p.bc.Enter(lottie.Layer, nameOf(obj))()

	ty, err := lottie.ExtractNumber(p.bc, obj, "ty")
	if err != nil {
		return nil, err
	}
	lt := LayerType(ty)
	if float64(lt) != ty || lt < LayerPrecomposition || lt > LayerData {
		return nil, lottie.UnexpectedChild(p.bc, lottie.Layer)
	}
	switch lt {
	case LayerPrecomposition, LayerSolidColor, LayerImage, LayerNull, LayerShape:
	default:
		return nil, lottie.Unsupportedf(p.bc, "layer type %d (%s)", int(lt), lt)
	}

	f := p.fields(obj)
	base := VisualLayer{
		Type:              lt,
		Name:              opt(f, "nm", p.str),
		MatchName:         opt(f, "mn", p.str),
		ThreeD:            opt(f, "ddd", p.boolInt),
		Hidden:            opt(f, "hd", p.boolean),
		Index:             opt(f, "ind", p.integer),
		Parent:            opt(f, "parent", p.integer),
		TimeStretch:       opt(f, "sr", p.num),
		InPoint:           req(f, "ip", p.num),
		OutPoint:          req(f, "op", p.num),
		StartTime:         req(f, "st", p.num),
		MatteMode:         opt(f, "tt", enum(p, MatteMode.valid)),
		MatteTarget:       opt(f, "td", p.boolInt),
		MatteParent:       opt(f, "tp", p.integer),
		Masks:             deref(opt(f, "masksProperties", p.masks)),
		Transform:         req(f, "ks", p.transform),
		AutoOrient:        opt(f, "ao", p.boolInt),
		HasMask:           opt(f, "hasMask", p.boolean),
		MotionBlur:        opt(f, "mb", p.boolean),
		BlendMode:         opt(f, "bm", enum(p, BlendMode.valid)),
		ClassName:         opt(f, "cl", p.str),
		LayerID:           opt(f, "ln", p.str),
		CollapseTransform: opt(f, "ct", p.boolInt),
	}
	if f.err != nil {
		return nil, f.err
	}

	switch lt {
	case LayerPrecomposition:
		l := &PrecompositionLayer{
			VisualLayer: base,
			RefID:       req(f, "refId", p.str),
			Width:       req(f, "w", p.num),
			Height:      req(f, "h", p.num),
			TimeRemap:   opt(f, "tm", p.floatValue),
		}
		return l, f.err
	case LayerSolidColor:
		l := &SolidColorLayer{
			VisualLayer: base,
			Color:       req(f, "sc", p.str),
			Width:       req(f, "sw", p.num),
			Height:      req(f, "sh", p.num),
		}
		return l, f.err
	case LayerImage:
		l := &ImageLayer{VisualLayer: base, RefID: req(f, "refId", p.str)}
		return l, f.err
	case LayerShape:
		l := &ShapeLayer{VisualLayer: base, Shapes: req(f, "shapes", p.shapes)}
		return l, f.err
	default:
		return &NullLayer{VisualLayer: base}, nil
	}
}
