package model

// Shape is *DrawShape, *GeometryShape or *GroupShape.
type Shape interface {
	shape()
}

// DrawShape paints the geometries accumulated before it in the same group.
type DrawShape struct {
	Brush Brush
	// Stroke is nil for fills.
	Stroke *Stroke
	// Opacity is in percent.
	Opacity Value[float64]
}

// GeometryShape contributes a path to the following draws.
type GeometryShape struct {
	Geometry Geometry
}

// GroupShape nests shapes under an optional transform.
type GroupShape struct {
	Shapes    []Shape
	Transform *GroupTransform
}

func (*DrawShape) shape()     {}
func (*GeometryShape) shape() {}
func (*GroupShape) shape()    {}

// GroupTransform is a group's transform plus its opacity in percent.
type GroupTransform struct {
	Transform Transform
	Opacity   Value[float64]
}

// Geometry is *RectGeometry, *EllipseGeometry, *FixedPathGeometry or
// *SplineGeometry.
type Geometry interface {
	geometry()
}

type RectGeometry struct {
	IsCCW        bool
	Position     Value[Point] // center
	Size         Value[Size]
	CornerRadius Value[float64]
}

type EllipseGeometry struct {
	IsCCW    bool
	Position Value[Point] // center
	Size     Value[Size]
}

// FixedPathGeometry is a static bezier path.
type FixedPathGeometry struct {
	Path Path
}

// SplineGeometry is an animated bezier path. Each entry of Values holds
// (vertex, in tangent, out tangent) triples; tangents are relative to their
// vertex.
type SplineGeometry struct {
	Closed bool
	Times  []Time
	Values [][]Point
}

func (*RectGeometry) geometry()      {}
func (*EllipseGeometry) geometry()   {}
func (*FixedPathGeometry) geometry() {}
func (*SplineGeometry) geometry()    {}

// PathAt builds the path at frame, interpolating linearly between keyframes.
func (s *SplineGeometry) PathAt(frame Time) Path {
	v := Value[[]Point]{Animated: &Animated[[]Point]{Times: s.Times, Values: s.Values}}
	return SplineToPath(Sample(v, frame, LerpPoints), s.Closed)
}

// Brush is *SolidBrush or *GradientBrush.
type Brush interface {
	brush()
}

type SolidBrush struct {
	Color Value[Color]
}

type GradientBrush struct {
	IsRadial   bool
	StartPoint Value[Point]
	EndPoint   Value[Point]
	Stops      Value[[]ColorStop]
}

func (*SolidBrush) brush()    {}
func (*GradientBrush) brush() {}

type Join int

const (
	JoinBevel Join = iota
	JoinMiter
	JoinRound
)

func (j Join) String() string {
	switch j {
	case JoinMiter:
		return "Miter"
	case JoinRound:
		return "Round"
	default:
		return "Bevel"
	}
}

type Cap int

const (
	CapButt Cap = iota
	CapSquare
	CapRound
)

func (c Cap) String() string {
	switch c {
	case CapSquare:
		return "Square"
	case CapRound:
		return "Round"
	default:
		return "Butt"
	}
}

// Stroke describes an outline.
type Stroke struct {
	Width Value[float64]
	Join  Join
	Cap   Cap
	// MiterLimit is nil when the document leaves it to the renderer.
	MiterLimit *float64
}
