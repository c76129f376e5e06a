package model

// Composition is an imported animation ready for sampling.
type Composition struct {
	Frames    Range
	FrameRate float64
	Width     float64
	Height    float64
	// Assets maps precomposition ids to their layers.
	Assets map[string][]*Layer
	Layers []*Layer
}

// Duration returns the playable length in seconds.
func (c *Composition) Duration() float64 {
	if c.FrameRate == 0 {
		return 0
	}
	return float64(c.Frames.Len()) / c.FrameRate
}

// Layer is one entry of a composition's layer list.
type Layer struct {
	Name string
	// Parent is the position of the parent layer in the same list.
	Parent    *int
	Transform Transform
	// Opacity is in percent (0..100).
	Opacity Value[float64]
	// Width and Height are the bounds of precomposition instances.
	Width, Height float64
	// BlendMode is nil for Normal.
	BlendMode  *BlendMode
	Frames     Range
	Stretch    float64
	StartFrame Time
	// IsMask marks a matte source that is not drawn by itself.
	IsMask bool
	// MaskLayer is the matte applied to this layer, if any.
	MaskLayer *MaskLayer
	Masks     []Mask
	Content   Content
}

// MaskLayer links a layer to its matte source.
type MaskLayer struct {
	Mode  BlendMode
	Index int
}

// LocalFrame maps a composition frame into the layer's own timeline.
func (l *Layer) LocalFrame(frame Time) Time {
	stretch := l.Stretch
	if stretch == 0 {
		stretch = 1
	}
	return (frame - l.StartFrame) / Time(stretch)
}

// Content is *ShapeContent or *InstanceContent.
type Content interface {
	content()
}

// ShapeContent is a layer drawn from its own shapes.
type ShapeContent struct {
	Shapes []Shape
}

func (*ShapeContent) content() {}

// InstanceContent draws a precomposition asset.
type InstanceContent struct {
	Name string
	// TimeRemap maps layer time to asset time in seconds. Nil means no remap.
	TimeRemap *Value[float64]
}

func (*InstanceContent) content() {}

// Mask clips a layer's content.
type Mask struct {
	Mode     BlendMode
	Geometry Geometry
	// Opacity is in percent.
	Opacity Value[float64]
}
